package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SeamusWaldron/cubegen/internal/render"
)

const (
	configFileName = "cubegen"
	configFileType = "yaml"
	envPrefix      = "CUBEGEN"

	// Config keys. Each may also be given as a flag of the same name or as
	// CUBEGEN_<KEY>.
	cfgKeyFormat  = "format"
	cfgKeyPackage = "package"
	cfgKeyOutput  = "output"
	cfgKeyDB      = "db"
)

// loadConfig reads cubegen.yaml (if any), CUBEGEN_* environment variables and
// the command's flags, in increasing order of precedence. No configuration
// is required: the defaults reproduce the plain C++ output.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyFormat, string(render.FormatCpp))
	v.SetDefault(cfgKeyPackage, render.DefaultPackage)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if o.configFile != "" {
		v.SetConfigFile(o.configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".cubegen"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if o.configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		o.log.WithField("file", v.ConfigFileUsed()).Debug("loaded config")
	}

	for _, key := range []string{cfgKeyFormat, cfgKeyPackage, cfgKeyOutput, cfgKeyDB} {
		if f := cmd.Flags().Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", key, err)
			}
		}
	}

	return v, nil
}
