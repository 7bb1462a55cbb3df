// Package tui is a read-only bubbletea/lipgloss spectator: it steps a
// solver.Solver across a board.Board one round at a time and renders
// the board's current revealed state. The solver makes every move;
// player input is limited to pausing, starting a new board, and
// quitting.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avery-hale/minesweeper-solver/internal/board"
	"github.com/avery-hale/minesweeper-solver/internal/config"
	"github.com/avery-hale/minesweeper-solver/internal/solver"
	"github.com/avery-hale/minesweeper-solver/internal/solver/lstsq"
)

type stepMsg struct{}

func stepCmd() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(time.Time) tea.Msg {
		return stepMsg{}
	})
}

// Model is the bubbletea model driving one board's spectator view.
type Model struct {
	board   *board.Board
	solver  *solver.Solver
	preset  config.Preset
	paused  bool
	rounds  int
	width   int
	height  int
	done    bool
}

// New creates a spectator model for preset, seeded by seed.
func New(preset config.Preset, seed int64) Model {
	w, h, mines := preset.Dims()
	b := board.New()
	start := b.Configure(w, h, board.GenSettings{Mines: mines, Seed: &seed})

	s := solver.New(b, lstsq.DenseLstsq{})
	s.Start(start)

	return Model{board: b, solver: s, preset: preset}
}

// Init kicks off the step timer.
func (m Model) Init() tea.Cmd {
	return stepCmd()
}

// Done returns true once the user has asked to quit.
func (m Model) Done() bool {
	return m.done
}

// Update advances the solver one round per stepMsg, unless paused.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stepMsg:
		if m.paused || m.board.State() != board.Undefined {
			return m, stepCmd()
		}
		if m.solver.Step() {
			m.rounds++
		}
		return m, stepCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.done = true
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		case "n":
			return New(m.preset, int64(m.rounds)+1), stepCmd()
		}
	}
	return m, nil
}

// View renders the board, a status line, and a footer.
func (m Model) View() string {
	var sections []string

	title := titleStyle.Render(fmt.Sprintf("minesolver / %s", m.preset))
	sections = append(sections, title, "")

	status := statusStyle.Render(fmt.Sprintf(
		"state: %s  rounds: %d  opened: %d  flagged: %d",
		stateName(m.board.State()), m.rounds, m.board.OpenedCells(), m.board.FlaggedCells(),
	))
	sections = append(sections, status, "", m.renderGrid(), "")

	switch m.board.State() {
	case board.Won:
		sections = append(sections, winStyle.Render("SOLVED"), "")
	case board.Lost:
		sections = append(sections, loseStyle.Render("HIT A MINE"), "")
	}

	footer := "P Pause | N New Board | Q Quit"
	sections = append(sections, footerStyle.Render(footer))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func stateName(s board.GameState) string {
	switch s {
	case board.Won:
		return "won"
	case board.Lost:
		return "lost"
	default:
		return "solving"
	}
}

func (m Model) renderGrid() string {
	var rows []string
	for y := 0; y < m.board.Height(); y++ {
		var cells []string
		for x := 0; x < m.board.Width(); x++ {
			c := m.board.Cell(x, y)
			cells = append(cells, m.cellStyle(c).Render(m.renderCell(c)))
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderCell(c *board.Cell) string {
	switch {
	case c.Mine && c.State == board.Opened:
		return "**"
	case c.State == board.Flagged:
		return "FF"
	case c.State == board.Closed:
		return "##"
	case c.NeighborMineCount == 0:
		return "  "
	default:
		return fmt.Sprintf("%d ", c.NeighborMineCount)
	}
}

func (m Model) cellStyle(c *board.Cell) lipgloss.Style {
	base := lipgloss.NewStyle().Width(2)
	return base.Foreground(m.cellForeground(c))
}

func (m Model) cellForeground(c *board.Cell) lipgloss.Color {
	switch {
	case c.Mine && c.State == board.Opened:
		return lipgloss.Color("#FF0000")
	case c.State == board.Flagged:
		return lipgloss.Color("#FF0000")
	case c.State == board.Closed:
		return lipgloss.Color("#808080")
	default:
		return numberColor(c.NeighborMineCount)
	}
}

func numberColor(n int) lipgloss.Color {
	switch n {
	case 1:
		return lipgloss.Color("#0000FF")
	case 2:
		return lipgloss.Color("#008200")
	case 3:
		return lipgloss.Color("#FF0000")
	case 4:
		return lipgloss.Color("#000084")
	case 5:
		return lipgloss.Color("#840000")
	case 6:
		return lipgloss.Color("#008284")
	case 7:
		return lipgloss.Color("#840084")
	case 8:
		return lipgloss.Color("#808080")
	default:
		return lipgloss.Color("#FFFFFF")
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00E632"))

	loseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF0000"))
)
