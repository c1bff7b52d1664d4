// Package tui is a local chat front for the game: the same /command surface
// a chat platform would call, wired to a terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ebarkley/dungeoneer/internal/game"
	"github.com/ebarkley/dungeoneer/internal/repo"
)

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

const welcome = "Welcome to Dungeoneer!\n\nType /start to descend into the dungeon."

const commandHelp = "Commands: /start /continue /flee /escape /inventory /stats /shop /buy N /sell N|all /equip N /use N /quit"

type model struct {
	svc       *game.Service
	repo      repo.Repository
	player    string
	textInput textinput.Model
	viewport  viewport.Model
	gameLog   string
	width     int
	height    int
	waiting   bool
}

func NewModel(svc *game.Service, r repo.Repository, player string) model {
	ti := textinput.New()
	ti.Placeholder = "/start"
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	return model{
		svc:       svc,
		repo:      r,
		player:    player,
		textInput: ti,
		gameLog:   gameStyle.Render(welcome) + "\n",
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type commandResultMsg struct {
	response string
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}
			m.textInput.Reset()

			if input == "/quit" {
				return m, tea.Quit
			}

			logWidth := m.logWidth()
			m.gameLog += "\n" + userStyle.Width(logWidth).Render("> "+input) + "\n\n"

			command, args, ok := parseCommand(input)
			if !ok {
				m.gameLog += gameStyle.Width(logWidth).Render("Commands start with a slash. "+commandHelp) + "\n"
				m.viewport.SetContent(m.gameLog)
				m.viewport.GotoBottom()
				return m, nil
			}

			m.viewport.SetContent(m.gameLog)
			m.viewport.GotoBottom()
			m.waiting = true
			return m, m.runCommand(command, args)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.viewport.Width == 0 {
			m.viewport = viewport.New(m.logWidth(), msg.Height-6)
		} else {
			m.viewport.Width = m.logWidth()
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.gameLog)

	case commandResultMsg:
		m.waiting = false
		m.gameLog += gameStyle.Width(m.logWidth()).Render(msg.response) + "\n"
		m.viewport.SetContent(m.gameLog)
		m.viewport.GotoBottom()
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m model) View() string {
	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		m.renderSidebar(),
	)

	return "\n" + lipgloss.JoinVertical(lipgloss.Left,
		mainView,
		"\n"+m.textInput.View(),
		"\n"+helpStyle.Render(commandHelp),
	) + "\n"
}

func (m model) logWidth() int {
	return int(float64(m.width) * 0.75)
}

func (m model) renderSidebar() string {
	content := titleStyle.Render("ADVENTURER") + "\n" + m.player + "\n\n"

	p, err := m.repo.LoadPlayer(m.player)
	if err == nil {
		content += titleStyle.Render("STATS") + "\n"
		content += fmt.Sprintf("Health: %d/%d\nLevel: %d\nExp: %d\nDoubloons: %d\n\n",
			p.Health, p.MaxHealth, p.Level, p.Experience, p.Doubloons)
	}

	d, err := m.repo.LoadDungeon(m.player)
	switch {
	case err == nil:
		content += titleStyle.Render("DUNGEON") + "\n"
		content += fmt.Sprintf("Depth: %d\nThreat: %.1f\n", d.Depth, d.ThreatLevel)
	case errors.Is(err, repo.ErrNotFound):
		content += helpStyle.Render("No active adventure.")
	}

	if p != nil && len(p.Inventory) > 0 {
		content += "\n" + titleStyle.Render("TREASURES") + "\n"
		for _, t := range p.Inventory {
			marker := ""
			if t.IsArmor() {
				marker = " [armor]"
			}
			content += fmt.Sprintf("- %s %s%s\n", t.Material, t.TreasureType, marker)
		}
	}

	sidebarWidth := int(float64(m.width) * 0.23)
	return sidebarStyle.Width(sidebarWidth).Height(m.viewport.Height).Render(content)
}

func (m model) runCommand(command string, args []string) tea.Cmd {
	return func() tea.Msg {
		response := m.svc.Handle(context.Background(), command, m.player, args)
		return commandResultMsg{response: response}
	}
}

// parseCommand splits "/sell 2" into ("sell", ["2"]). Input without a
// leading slash is not a command.
func parseCommand(input string) (command string, args []string, ok bool) {
	if !strings.HasPrefix(input, "/") {
		return "", nil, false
	}
	fields := strings.Fields(strings.TrimPrefix(input, "/"))
	if len(fields) == 0 {
		return "", nil, false
	}
	return fields[0], fields[1:], true
}

// Run starts the terminal front and blocks until the player quits.
func Run(svc *game.Service, r repo.Repository, player string) error {
	p := tea.NewProgram(NewModel(svc, r, player), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
