package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SeamusWaldron/cubegen/internal/cube"
	"github.com/SeamusWaldron/cubegen/internal/storage"
	"github.com/SeamusWaldron/cubegen/internal/tables"
)

func newBrowseCmd(root *rootOptions) *cobra.Command {
	var generationID string

	cmd := &cobra.Command{
		Use:   "browse [table]",
		Short: "Explore the lookup tables interactively",
		Long: `Open an interactive viewer over the lookup tables. 3-D tables are shown
one layer (first label) at a time.

Usage:
  cubegen browse                      # Browse freshly generated tables
  cubegen browse Faces3Ids            # Start on a specific table
  cubegen browse --generation <id>    # Browse an archived generation`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enums := tables.Build()
			ts := enums.Tables()

			if generationID != "" {
				v, err := root.loadConfig(cmd)
				if err != nil {
					return err
				}
				archived, err := loadGeneration(v, generationID)
				if err != nil {
					return err
				}
				ts = archived
			}

			m := newBrowseModel(enums, ts)
			if len(args) == 1 {
				if err := m.selectTable(args[0]); err != nil {
					return err
				}
			}

			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("browse error: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&generationID, "generation", "", "Archived generation ID to browse")
	addDBFlag(cmd)
	return cmd
}

// loadGeneration reads all four tables of an archived generation.
func loadGeneration(v *viper.Viper, id string) ([]*tables.Table, error) {
	db, err := openDB(v)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	repo := storage.NewGenerationRepository(db)
	if _, err := repo.Get(id); err != nil {
		return nil, err
	}

	var ts []*tables.Table
	for _, k := range tables.Kinds {
		t, err := repo.Table(id, tables.TableName(k))
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	return ts, nil
}

// browseModel is the bubbletea model of the table viewer.
type browseModel struct {
	enums    *tables.Enumerations
	tables   []*tables.Table
	current  int
	layer    cube.Label
	row      cube.Label
	col      cube.Label
	quitting bool
}

func newBrowseModel(enums *tables.Enumerations, ts []*tables.Table) *browseModel {
	return &browseModel{enums: enums, tables: ts}
}

func (m *browseModel) selectTable(name string) error {
	for i, t := range m.tables {
		if t.Name == name || string(t.Kind) == name {
			m.current = i
			return nil
		}
	}
	return fmt.Errorf("%w: %q", tables.ErrUnknownTable, name)
}

func (m *browseModel) table() *tables.Table {
	return m.tables[m.current]
}

// cursor returns the labels addressed by the cursor in the current table.
func (m *browseModel) cursor() []cube.Label {
	if m.table().Rank == 3 {
		return []cube.Label{m.layer, m.row, m.col}
	}
	return []cube.Label{m.row, m.col}
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m.row = step(m.row, -1)
	case "down", "j":
		m.row = step(m.row, 1)
	case "left", "h":
		m.col = step(m.col, -1)
	case "right", "l":
		m.col = step(m.col, 1)
	case "[", "pgup":
		m.layer = step(m.layer, -1)
	case "]", "pgdown":
		m.layer = step(m.layer, 1)
	case "tab":
		m.current = (m.current + 1) % len(m.tables)
	case "shift+tab":
		m.current = (m.current + len(m.tables) - 1) % len(m.tables)
	}
	return m, nil
}

// step moves a label cursor, wrapping around the cube's six labels.
func step(l cube.Label, d int) cube.Label {
	return cube.Label((int(l) + d + cube.NumLabels) % cube.NumLabels)
}

func (m *browseModel) View() string {
	if m.quitting {
		return ""
	}

	t := m.table()
	var b strings.Builder

	b.WriteString(titleStyle.Render("cubegen table browser"))
	b.WriteString("\n\n")

	b.WriteString(idStyle.Render(t.Name))
	b.WriteString(statusStyle.Render(fmt.Sprintf("  (%d/%d, %d ids)", m.current+1, len(m.tables), t.Distinct())))
	b.WriteString("\n")
	if t.Rank == 3 {
		b.WriteString(fmt.Sprintf("Layer: %s\n", labelName(t.Kind, m.layer)))
	}
	b.WriteString("\n")

	// Column header
	b.WriteString("      ")
	for c := cube.Label(0); c < cube.NumLabels; c++ {
		b.WriteString(fmt.Sprintf("%4s", shortName(t.Kind, c)))
	}
	b.WriteString("\n")

	for r := cube.Label(0); r < cube.NumLabels; r++ {
		b.WriteString(fmt.Sprintf("%6s", shortName(t.Kind, r)))
		for c := cube.Label(0); c < cube.NumLabels; c++ {
			labels := []cube.Label{r, c}
			if t.Rank == 3 {
				labels = []cube.Label{m.layer, r, c}
			}
			cell := fmt.Sprintf("%4d", t.At(labels...))
			if r == m.row && c == m.col {
				cell = cursorStyle.Render(cell)
			} else if t.At(labels...) == tables.NotFound {
				cell = statusStyle.Render(cell)
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.describeCursor())
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("arrows/hjkl=move  [ ]=layer  tab=next table  q=quit"))
	b.WriteString("\n")

	return b.String()
}

// describeCursor explains the selected cell and the grouping it points to.
func (m *browseModel) describeCursor() string {
	t := m.table()
	labels := m.cursor()
	id := t.At(labels...)

	desc := fmt.Sprintf("%s[%s] = %d", t.Name, labelNames(t.Kind, labels), id)
	if id == tables.NotFound {
		return desc + statusStyle.Render("  (never meet at a piece)")
	}

	entries := m.enums.Entries(t.Kind)
	if id < len(entries) {
		desc += statusStyle.Render(fmt.Sprintf("  -> %s", labelNames(t.Kind, entries[id])))
	}
	return desc
}

func shortName(k tables.Kind, l cube.Label) string {
	if k.IsFace() {
		return cube.Face(l).Short()
	}
	return cube.Color(l).Short()
}
