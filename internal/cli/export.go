package cli

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SeamusWaldron/cubegen/internal/render"
	"github.com/SeamusWaldron/cubegen/internal/storage"
	"github.com/SeamusWaldron/cubegen/internal/tables"
)

func newExportCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Archive the generated tables in a SQLite database",
		Long: `Store the enumerations and the four lookup tables as a new generation in
the archive database, and print the generation ID.

Examples:
  cubegen export
  cubegen export --db ./build/cubegen.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := root.loadConfig(cmd)
			if err != nil {
				return err
			}

			db, err := openDB(v)
			if err != nil {
				return err
			}
			defer db.Close()

			enums := tables.Build()
			if err := enums.Validate(); err != nil {
				return fmt.Errorf("refusing to archive: %w", err)
			}
			ts := enums.Tables()

			sum, err := checksum(ts)
			if err != nil {
				return err
			}

			g, err := storage.NewGenerationRepository(db).Save(enums, ts, version, sum)
			if err != nil {
				return fmt.Errorf("failed to archive generation: %w", err)
			}

			root.log.WithField("db", db.Path()).Debugf("archived generation %s", g.GenerationID)
			fmt.Fprintln(cmd.OutOrStdout(), g.GenerationID)
			return nil
		},
	}
	addDBFlag(cmd)
	return cmd
}

func addDBFlag(cmd *cobra.Command) {
	cmd.Flags().String(cfgKeyDB, "", "Database file path (default: ~/.cubegen/cubegen.db)")
}

// openDB opens and migrates the archive database.
func openDB(v *viper.Viper) (*storage.DB, error) {
	path := v.GetString(cfgKeyDB)
	if path == "" {
		var err error
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// checksum hashes the C++ rendering, which covers every cell of every table.
func checksum(ts []*tables.Table) (string, error) {
	var buf bytes.Buffer
	if err := render.WriteCpp(&buf, ts); err != nil {
		return "", err
	}
	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:]), nil
}
