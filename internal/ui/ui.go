package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tkaria/mlbase/internal/models"
)

// JobStore is the slice of the store the monitor needs.
type JobStore interface {
	GetDataIngestionJobs() []models.IngestionJob
	StartDataIngestionJob(id int64) error
	CompleteDataIngestionJob(id int64) error
	FailDataIngestionJob(id int64) error
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Padding(0, 1)
)

// keyMap defines the key bindings for the job monitor.
type keyMap struct {
	start    key.Binding
	complete key.Binding
	fail     key.Binding
	refresh  key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		complete: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "complete"),
		),
		fail: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fail"),
		),
		refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.start, k.complete, k.fail, k.refresh, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.start, k.complete, k.fail},
		{k.refresh, k.quit},
	}
}

type jobsRefreshedMsg struct {
	jobs []models.IngestionJob
}

type actionDoneMsg struct {
	err error
}

// Model represents the job monitor state.
type Model struct {
	store   JobStore
	jobList list.Model
	help    help.Model
	keys    keyMap
	status  string
	err     error
	width   int
	height  int
}

// NewModel creates a job monitor over the given store.
func NewModel(store JobStore) *Model {
	delegate := list.NewDefaultDelegate()
	jobList := list.New([]list.Item{}, delegate, 0, 0)
	jobList.Title = "Data Ingestion Jobs"
	jobList.SetShowHelp(false)

	return &Model{
		store:   store,
		jobList: jobList,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init loads the initial job listing.
func (m *Model) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m *Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return jobsRefreshedMsg{jobs: m.store.GetDataIngestionJobs()}
	}
}

func (m *Model) actionCmd(action func() error) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: action()}
	}
}

// selectedJobID returns the id of the highlighted job, or false when the
// list is empty.
func (m *Model) selectedJobID() (int64, bool) {
	item, ok := m.jobList.SelectedItem().(jobItem)
	if !ok {
		return 0, false
	}
	return item.job.ID, true
}

// Update handles bubbletea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.jobList.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case jobsRefreshedMsg:
		items := make([]list.Item, 0, len(msg.jobs))
		for _, job := range msg.jobs {
			items = append(items, jobItem{job: job})
		}
		m.jobList.SetItems(items)
		return m, nil

	case actionDoneMsg:
		m.err = msg.err
		if msg.err == nil {
			m.status = "updated"
		}
		return m, m.refreshCmd()

	case tea.KeyMsg:
		// let the list handle keys while filtering
		if m.jobList.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.refresh):
			m.err = nil
			m.status = "refreshed"
			return m, m.refreshCmd()

		case key.Matches(msg, m.keys.start):
			if id, ok := m.selectedJobID(); ok {
				m.status = fmt.Sprintf("starting job %d", id)
				return m, m.actionCmd(func() error { return m.store.StartDataIngestionJob(id) })
			}

		case key.Matches(msg, m.keys.complete):
			if id, ok := m.selectedJobID(); ok {
				m.status = fmt.Sprintf("completing job %d", id)
				return m, m.actionCmd(func() error { return m.store.CompleteDataIngestionJob(id) })
			}

		case key.Matches(msg, m.keys.fail):
			if id, ok := m.selectedJobID(); ok {
				m.status = fmt.Sprintf("failing job %d", id)
				return m, m.actionCmd(func() error { return m.store.FailDataIngestionJob(id) })
			}
		}
	}

	var cmd tea.Cmd
	m.jobList, cmd = m.jobList.Update(msg)
	return m, cmd
}

// View renders the monitor.
func (m *Model) View() string {
	header := titleStyle.Render("mlbase job monitor")

	footer := statusStyle.Render(m.status)
	if m.err != nil {
		footer = errorStyle.Render(fmt.Sprintf("error: %v", m.err))
	}

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, m.jobList.View(), footer, m.help.View(m.keys))
}

// Run starts the monitor and blocks until the user quits.
func Run(store JobStore) error {
	program := tea.NewProgram(NewModel(store), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("job monitor failed: %w", err)
	}
	return nil
}
