package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ekomkassa/hubctl/internal/hub"
)

// LogClient reads the delivery log and requeues failed dispatches.
type LogClient interface {
	ListLogs(ctx context.Context, limit int) ([]hub.LogEntry, error)
	RetryMessage(ctx context.Context, messageID string) error
}

var (
	logStatusDelivered = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	logStatusFailed    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	logStatusPending   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type logItem struct {
	e hub.LogEntry
}

func (i logItem) Title() string {
	style := logStatusPending

	switch i.e.Status {
	case "delivered", "sent":
		style = logStatusDelivered
	case "failed":
		style = logStatusFailed
	}

	return fmt.Sprintf("%s %s", style.Render(i.e.Status), i.e.Recipient)
}

func (i logItem) Description() string {
	desc := fmt.Sprintf("%s | attempt %d/%d | %s", i.e.Provider, i.e.Attempts, i.e.MaxAttempts, i.e.MessageID)

	if i.e.CreatedAt != "" {
		desc = fmt.Sprintf("%s | %s", desc, i.e.CreatedAt)
	}

	return desc
}

func (i logItem) FilterValue() string {
	return i.e.Recipient
}

type logsReloadedMsg struct {
	entries []hub.LogEntry
}

type LogListModel struct {
	client   LogClient
	limit    int
	list     list.Model
	spinner  spinner.Model
	retrying bool
	notice   string
	quitting bool
	Err      error
}

func NewLogList(client LogClient, entries []hub.LogEntry, limit int) LogListModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = focusedStyle

	l := list.New(logItems(entries), list.NewDefaultDelegate(), 0, 0)
	l.Title = "Delivery Log"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry failed")),
		}
	}

	return LogListModel{
		client:  client,
		limit:   limit,
		list:    l,
		spinner: s,
	}
}

func logItems(entries []hub.LogEntry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = logItem{e: e}
	}

	return items
}

func (m LogListModel) Init() tea.Cmd {
	return nil
}

func (m LogListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case spinner.TickMsg:
		if !m.retrying {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case logsReloadedMsg:
		m.retrying = false
		m.notice = "Retry requested, log refreshed."
		m.list.SetItems(logItems(msg.entries))

		return m, nil

	case errMsg:
		m.retrying = false
		m.Err = msg.err

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit

		case "r":
			if m.retrying {
				return m, nil
			}

			i, ok := m.list.SelectedItem().(logItem)
			if !ok {
				return m, nil
			}

			if !i.e.Failed() {
				m.notice = "Only failed dispatches can be retried."

				return m, nil
			}

			m.notice = ""
			m.Err = nil
			m.retrying = true

			return m, tea.Batch(m.spinner.Tick, m.retry(i.e.MessageID))
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m LogListModel) View() string {
	if m.quitting {
		return ""
	}

	s := docStyle.Render(m.list.View())

	if m.retrying {
		s += fmt.Sprintf("\n  %s Requeueing...\n", m.spinner.View())
	} else if m.notice != "" {
		s += "\n  " + blurredStyle.Render(m.notice) + "\n"
	}

	if m.Err != nil {
		s += "\n  " + logStatusFailed.Render(fmt.Sprintf("✗ %v", m.Err)) + "\n"
	}

	return s
}

// retry requeues the message and reloads the log so attempt counters and
// statuses reflect the hub's view.
func (m LogListModel) retry(messageID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := m.client.RetryMessage(ctx, messageID); err != nil {
			return errMsg{err}
		}

		entries, err := m.client.ListLogs(ctx, m.limit)
		if err != nil {
			return errMsg{err}
		}

		return logsReloadedMsg{entries: entries}
	}
}
