package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ekomkassa/hubctl/internal/hub"
)

type keyItem struct {
	k hub.APIKey
}

func (i keyItem) Title() string {
	state := ""
	if !i.k.IsActive {
		state = " (inactive)"
	}

	return fmt.Sprintf("%s%s", i.k.KeyName, state)
}

func (i keyItem) Description() string {
	desc := i.k.Masked()

	if i.k.ExpiryDate != "" {
		desc = fmt.Sprintf("%s | Expires: %s", desc, i.k.ExpiryDate)
	} else {
		desc = fmt.Sprintf("%s | Never expires", desc)
	}

	if i.k.LastUsedAt != "" {
		desc = fmt.Sprintf("%s | Last used: %s", desc, i.k.LastUsedAt)
	}

	return desc
}

func (i keyItem) FilterValue() string {
	return i.k.KeyName
}

type KeyListModel struct {
	list     list.Model
	selected *hub.APIKey
	action   string
	quitting bool
}

func (m KeyListModel) Init() tea.Cmd {
	return nil
}

func (m KeyListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case "r":
			if i, ok := m.list.SelectedItem().(keyItem); ok {
				m.selected = &i.k
				m.action = "regenerate"
			}

			return m, tea.Quit

		case "x":
			if i, ok := m.list.SelectedItem().(keyItem); ok {
				m.selected = &i.k
				m.action = "remove"
			}

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m KeyListModel) View() string {
	if m.quitting || m.action != "" {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// GetSelected returns the key chosen in the list, or nil.
func (m KeyListModel) GetSelected() *hub.APIKey {
	return m.selected
}

// GetAction returns "regenerate" or "remove" for the selected key.
func (m KeyListModel) GetAction() string {
	return m.action
}

func NewKeyList(keys []hub.APIKey) KeyListModel {
	items := make([]list.Item, len(keys))
	for i, k := range keys {
		items[i] = keyItem{k: k}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "API Keys"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "regenerate")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		}
	}

	return KeyListModel{list: l}
}
