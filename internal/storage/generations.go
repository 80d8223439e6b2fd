package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubegen/internal/cube"
	"github.com/SeamusWaldron/cubegen/internal/tables"
)

// timeLayout is fixed width so that created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// ErrGenerationNotFound is returned when a generation ID is not in the archive.
var ErrGenerationNotFound = errors.New("cubegen: generation not found")

// Generation is one archived run of the table generator.
type Generation struct {
	GenerationID string
	CreatedAt    time.Time
	AppVersion   *string
	// Checksum identifies the rendered output, so runs producing identical
	// tables can be spotted in the history.
	Checksum string
}

// Grouping is one archived enumeration entry.
type Grouping struct {
	Enumeration string
	Index       int
	Labels      []cube.Label
}

// GenerationRepository stores and reads generations.
type GenerationRepository struct {
	db *DB
}

// NewGenerationRepository creates a new generation repository.
func NewGenerationRepository(db *DB) *GenerationRepository {
	return &GenerationRepository{db: db}
}

// Save archives the enumerations and their tables as a new generation and
// returns it. Everything is written in one transaction.
func (r *GenerationRepository) Save(e *tables.Enumerations, ts []*tables.Table, appVersion, checksum string) (*Generation, error) {
	g := &Generation{
		GenerationID: uuid.New().String(),
		CreatedAt:    time.Now().UTC(),
		Checksum:     checksum,
	}
	if appVersion != "" {
		g.AppVersion = &appVersion
	}

	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO generations (generation_id, created_at, app_version, checksum)
			VALUES (?, ?, ?, ?)
		`, g.GenerationID, g.CreatedAt.Format(timeLayout), g.AppVersion, g.Checksum)
		if err != nil {
			return fmt.Errorf("failed to create generation: %w", err)
		}

		if err := insertGroupings(tx, g.GenerationID, e); err != nil {
			return err
		}
		return insertTables(tx, g.GenerationID, ts)
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

func insertGroupings(tx *sql.Tx, id string, e *tables.Enumerations) error {
	stmt, err := tx.Prepare(`
		INSERT INTO groupings (generation_id, enumeration, idx, label1, label2, label3)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare grouping insert: %w", err)
	}
	defer stmt.Close()

	for _, k := range tables.Kinds {
		for i, labels := range e.Entries(k) {
			var third *int
			if len(labels) == 3 {
				v := int(labels[2])
				third = &v
			}
			if _, err := stmt.Exec(id, string(k), i, int(labels[0]), int(labels[1]), third); err != nil {
				return fmt.Errorf("failed to insert %s grouping %d: %w", k, i, err)
			}
		}
	}
	return nil
}

func insertTables(tx *sql.Tx, id string, ts []*tables.Table) error {
	cellStmt, err := tx.Prepare(`
		INSERT INTO table_cells (generation_id, table_name, cell_offset, value)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare cell insert: %w", err)
	}
	defer cellStmt.Close()

	for _, t := range ts {
		_, err := tx.Exec(`
			INSERT INTO lookup_tables (generation_id, table_name, enumeration, table_rank)
			VALUES (?, ?, ?, ?)
		`, id, t.Name, string(t.Kind), t.Rank)
		if err != nil {
			return fmt.Errorf("failed to insert table %s: %w", t.Name, err)
		}

		for off, v := range t.Values {
			if _, err := cellStmt.Exec(id, t.Name, off, v); err != nil {
				return fmt.Errorf("failed to insert %s cell %d: %w", t.Name, off, err)
			}
		}
	}
	return nil
}

// Get retrieves a generation by ID.
func (r *GenerationRepository) Get(generationID string) (*Generation, error) {
	g, err := scanGeneration(r.db.QueryRow(`
		SELECT generation_id, created_at, app_version, checksum
		FROM generations
		WHERE generation_id = ?
	`, generationID))

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrGenerationNotFound, generationID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get generation: %w", err)
	}
	return g, nil
}

// GetLast retrieves the most recent generation, or nil if there is none.
func (r *GenerationRepository) GetLast() (*Generation, error) {
	gs, err := r.List(1)
	if err != nil {
		return nil, err
	}
	if len(gs) == 0 {
		return nil, nil
	}
	return &gs[0], nil
}

// List retrieves recent generations, newest first.
func (r *GenerationRepository) List(limit int) ([]Generation, error) {
	rows, err := r.db.Query(`
		SELECT generation_id, created_at, app_version, checksum
		FROM generations
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer rows.Close()

	var gs []Generation
	for rows.Next() {
		g, err := scanGeneration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}
		gs = append(gs, *g)
	}
	return gs, rows.Err()
}

// Delete removes a generation with its groupings and tables.
func (r *GenerationRepository) Delete(generationID string) error {
	_, err := r.db.Exec("DELETE FROM generations WHERE generation_id = ?", generationID)
	if err != nil {
		return fmt.Errorf("failed to delete generation: %w", err)
	}
	return nil
}

// Groupings returns the archived entries of one enumeration in index order.
func (r *GenerationRepository) Groupings(generationID string, k tables.Kind) ([]Grouping, error) {
	rows, err := r.db.Query(`
		SELECT enumeration, idx, label1, label2, label3
		FROM groupings
		WHERE generation_id = ? AND enumeration = ?
		ORDER BY idx
	`, generationID, string(k))
	if err != nil {
		return nil, fmt.Errorf("failed to get groupings: %w", err)
	}
	defer rows.Close()

	var out []Grouping
	for rows.Next() {
		var g Grouping
		var l1, l2 int
		var l3 sql.NullInt64
		if err := rows.Scan(&g.Enumeration, &g.Index, &l1, &l2, &l3); err != nil {
			return nil, fmt.Errorf("failed to scan grouping: %w", err)
		}
		g.Labels = []cube.Label{cube.Label(l1), cube.Label(l2)}
		if l3.Valid {
			g.Labels = append(g.Labels, cube.Label(l3.Int64))
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// Table loads an archived lookup table.
func (r *GenerationRepository) Table(generationID, name string) (*tables.Table, error) {
	t := &tables.Table{Name: name}
	var kind string
	err := r.db.QueryRow(`
		SELECT enumeration, table_rank FROM lookup_tables
		WHERE generation_id = ? AND table_name = ?
	`, generationID, name).Scan(&kind, &t.Rank)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", tables.ErrUnknownTable, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get table: %w", err)
	}
	t.Kind = tables.Kind(kind)

	rows, err := r.db.Query(`
		SELECT value FROM table_cells
		WHERE generation_id = ? AND table_name = ?
		ORDER BY cell_offset
	`, generationID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get cells: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan cell: %w", err)
		}
		t.Values = append(t.Values, v)
	}
	return t, rows.Err()
}

// Cell reads a single archived table cell.
func (r *GenerationRepository) Cell(generationID, name string, labels ...cube.Label) (int, error) {
	off := 0
	for _, l := range labels {
		if !l.Valid() {
			return 0, fmt.Errorf("%w: %d", cube.ErrInvalidLabel, l)
		}
		off = off*cube.NumLabels + int(l)
	}

	var rank, value int
	err := r.db.QueryRow(`
		SELECT t.table_rank, c.value
		FROM table_cells c
		JOIN lookup_tables t ON t.generation_id = c.generation_id AND t.table_name = c.table_name
		WHERE c.generation_id = ? AND c.table_name = ? AND c.cell_offset = ?
	`, generationID, name, off).Scan(&rank, &value)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("%w: %s in generation %s", tables.ErrUnknownTable, name, generationID)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get cell: %w", err)
	}
	if rank != len(labels) {
		return 0, fmt.Errorf("table %s has rank %d, got %d labels", name, rank, len(labels))
	}
	return value, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGeneration(row rowScanner) (*Generation, error) {
	var g Generation
	var createdAt string
	if err := row.Scan(&g.GenerationID, &createdAt, &g.AppVersion, &g.Checksum); err != nil {
		return nil, err
	}
	g.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	return &g, nil
}
