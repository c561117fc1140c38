package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ekomkassa/hubctl/internal/hub"
)

// KeyCreator issues a new API key on the hub.
type KeyCreator interface {
	CreateKey(ctx context.Context, name, expiryDays string) (*hub.APIKey, error)
}

type keyCreatedMsg struct {
	key *hub.APIKey
}

var (
	createFocusedButton = focusedStyle.Render("[ Create ]")
	createBlurredButton = fmt.Sprintf("[ %s ]", blurredStyle.Render("Create"))
)

type KeyFormModel struct {
	creator     KeyCreator
	name        textinput.Model
	expiryIndex int
	focusIndex  int
	saving      bool
	hint        string
	Created     *hub.APIKey
	Err         error
}

func NewKeyForm(creator KeyCreator) KeyFormModel {
	t := textinput.New()
	t.Cursor.Style = cursorStyle
	t.CharLimit = 128
	t.Placeholder = "integration key name"
	t.Focus()
	t.PromptStyle = focusedStyle
	t.TextStyle = focusedStyle

	return KeyFormModel{
		creator: creator,
		name:    t,
	}
}

func (m KeyFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m KeyFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Focus positions: 0 name input, 1 expiry selector, 2 create button.
	const submitPos = 2

	switch msg := msg.(type) {
	case keyCreatedMsg:
		m.Created = msg.key

		return m, tea.Quit

	case errMsg:
		m.Err = msg.err
		m.saving = false

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "left", "right":
			if m.focusIndex == 1 {
				if msg.String() == "left" {
					m.expiryIndex--
				} else {
					m.expiryIndex++
				}

				if m.expiryIndex < 0 {
					m.expiryIndex = len(hub.ExpiryChoices) - 1
				} else if m.expiryIndex >= len(hub.ExpiryChoices) {
					m.expiryIndex = 0
				}

				return m, nil
			}

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == submitPos {
				if m.saving {
					return m, nil
				}

				if strings.TrimSpace(m.name.Value()) == "" {
					m.hint = "Key name is required."

					return m, nil
				}

				m.hint = ""
				m.Err = nil
				m.saving = true

				return m, m.create
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > submitPos {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = submitPos
			}

			if m.focusIndex == 0 {
				m.name.PromptStyle = focusedStyle
				m.name.TextStyle = focusedStyle

				return m, m.name.Focus()
			}

			m.name.Blur()
			m.name.PromptStyle = noStyle
			m.name.TextStyle = noStyle

			return m, nil
		}
	}

	var cmd tea.Cmd

	m.name, cmd = m.name.Update(msg)

	return m, cmd
}

func (m KeyFormModel) View() string {
	if m.Created != nil {
		return ""
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	expiry := hub.ExpiryChoices[m.expiryIndex]
	if expiry != "never" {
		expiry += " days"
	}

	expiryRow := fmt.Sprintf("< %s >", expiry)
	if m.focusIndex == 1 {
		expiryRow = focusedStyle.Render(expiryRow)
	}

	s := headerStyle.Render("New API Key") + "\n\n"
	s += fmt.Sprintf(fmtField, blurredStyle.Render("Key Name:"), m.name.View())
	s += fmt.Sprintf(fmtField, blurredStyle.Render("Expiry:"), expiryRow)

	button := createBlurredButton

	switch {
	case m.saving:
		button = blurredStyle.Render("[ Creating... ]")
	case m.focusIndex == 2:
		button = createFocusedButton
	}

	s += fmt.Sprintf("\n %s\n\n", button)

	if m.hint != "" {
		s += lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Render(" "+m.hint) + "\n"
	}

	if m.Err != nil {
		s += lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf(" ✗ %v", m.Err)) + "\n"
	}

	s += helpStyleForm.Render(" tab: navigate • left/right: expiry • enter: create • esc: quit")

	return s
}

func (m KeyFormModel) create() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created, err := m.creator.CreateKey(ctx, strings.TrimSpace(m.name.Value()), hub.ExpiryChoices[m.expiryIndex])
	if err != nil {
		return errMsg{err}
	}

	return keyCreatedMsg{key: created}
}
