package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/arbor/pkg/tree"
)

// Browser styles.
var (
	browseSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	browseNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	browseHelpStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// browseModel is the bubbletea model for the interactive tree browser.
// It shows the pre-order node list with collapsible subtrees.
type browseModel struct {
	tree      tree.Tree
	indent    int
	cursor    int
	offset    int
	height    int
	collapsed map[tree.NodeID]bool
	rows      []tree.Node // currently visible nodes, pre-order
}

// newBrowseModel creates a browser over t with every subtree expanded.
func newBrowseModel(t tree.Tree, indent int) browseModel {
	m := browseModel{
		tree:      t,
		indent:    indent,
		height:    20,
		collapsed: make(map[tree.NodeID]bool),
	}
	m.rows = m.visible()
	return m
}

// visible returns the pre-order rows, skipping the descendants of
// collapsed nodes.
func (m browseModel) visible() []tree.Node {
	root, ok := m.tree.Root()
	if !ok {
		return nil
	}
	var rows []tree.Node
	stack := []tree.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		rows = append(rows, n)
		if m.collapsed[n.ID] {
			continue
		}
		kids := m.tree.Children(n)
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
	return rows
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-2, 1) // leave room for the help line

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.toggle()
		case "left", "h":
			m.collapse()
		case "right", "l":
			m.expand()
		}
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	return m, nil
}

func (m *browseModel) toggle() {
	if len(m.rows) == 0 {
		return
	}
	n := m.rows[m.cursor]
	if n.IsLeaf() {
		return
	}
	m.collapsed[n.ID] = !m.collapsed[n.ID]
	m.rows = m.visible()
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
}

func (m *browseModel) collapse() {
	if len(m.rows) == 0 {
		return
	}
	n := m.rows[m.cursor]
	if !n.IsLeaf() && !m.collapsed[n.ID] {
		m.collapsed[n.ID] = true
		m.rows = m.visible()
	}
}

func (m *browseModel) expand() {
	if len(m.rows) == 0 {
		return
	}
	n := m.rows[m.cursor]
	if m.collapsed[n.ID] {
		m.collapsed[n.ID] = false
		m.rows = m.visible()
	}
}

func (m browseModel) View() string {
	if len(m.rows) == 0 {
		return browseHelpStyle.Render("empty tree - q to quit") + "\n"
	}

	var b strings.Builder
	end := min(m.offset+m.height, len(m.rows))
	for i := m.offset; i < end; i++ {
		n := m.rows[i]
		marker := "-"
		switch {
		case n.IsLeaf():
		case m.collapsed[n.ID]:
			marker = "▸"
		default:
			marker = "▾"
		}
		line := fmt.Sprintf("%s%s %s", strings.Repeat(" ", n.Level*m.indent), marker, n.Name)
		if i == m.cursor {
			line = browseSelectedStyle.Render("> " + line)
		} else {
			line = browseNormalStyle.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(browseHelpStyle.Render("↑/↓ move · enter toggle · q quit"))
	b.WriteString("\n")
	return b.String()
}

// newBrowseCmd creates the browse command.
func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [outline]",
		Short: "Explore a tree interactively in the terminal",
		Long: `Explore a tree interactively in the terminal.

Moves a cursor through the pre-order node list; subtrees can be collapsed
and expanded. Reading the outline from a file (rather than stdin) is
recommended, since the browser takes over the terminal input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			t, err := loadTree(argOrStdin(args))
			if err != nil {
				return err
			}

			p := tea.NewProgram(newBrowseModel(t, cfg.Indent))
			_, err = p.Run()
			return err
		},
	}
}
