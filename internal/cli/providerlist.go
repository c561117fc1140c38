package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ekomkassa/hubctl/internal/hub"
	"github.com/ekomkassa/hubctl/internal/provider"
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	badgeWorking       = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("●")
	badgeConfigured    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Render("●")
	badgeError         = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("●")
	badgeNotConfigured = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("○")
)

// statusBadge renders a colored connection indicator for a provider.
func statusBadge(s provider.ConnectionStatus) string {
	switch s {
	case provider.StatusWorking:
		return badgeWorking
	case provider.StatusConfigured:
		return badgeConfigured
	case provider.StatusError:
		return badgeError
	default:
		return badgeNotConfigured
	}
}

type providerItem struct {
	p hub.Provider
}

func (i providerItem) Title() string {
	return fmt.Sprintf("%s %s", statusBadge(i.p.Status()), i.p.Name)
}

func (i providerItem) Description() string {
	desc := fmt.Sprintf("%s | %s | %s", i.p.Code, i.p.Type.Label(), i.p.Status().Label())

	if !i.p.IsActive {
		desc = fmt.Sprintf("%s | disabled", desc)
	}

	if i.p.LastAttemptAt != "" {
		desc = fmt.Sprintf("%s | Last attempt: %s", desc, i.p.LastAttemptAt)
	}

	return desc
}

func (i providerItem) FilterValue() string {
	return i.p.Name
}

type ProviderListModel struct {
	list     list.Model
	selected *hub.Provider
	action   string
	quitting bool
}

func (m ProviderListModel) Init() tea.Cmd {
	return nil
}

func (m ProviderListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(providerItem); ok {
				m.selected = &i.p
				m.action = "config"
			}

			return m, tea.Quit

		case "x":
			if i, ok := m.list.SelectedItem().(providerItem); ok {
				m.selected = &i.p
				m.action = "remove"
			}

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m ProviderListModel) View() string {
	if m.quitting || m.action != "" {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// GetSelected returns the provider chosen in the list, or nil.
func (m ProviderListModel) GetSelected() *hub.Provider {
	return m.selected
}

// GetAction returns "config" or "remove" for the selected provider.
func (m ProviderListModel) GetAction() string {
	return m.action
}

func NewProviderList(providers []hub.Provider) ProviderListModel {
	items := make([]list.Item, len(providers))
	for i, p := range providers {
		items[i] = providerItem{p: p}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Notification Providers"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "configure")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		}
	}

	return ProviderListModel{list: l}
}
