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
	"github.com/ekomkassa/hubctl/internal/provider"
)

const fmtField = " %s\n %s\n"

var (
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle   = focusedStyle
	noStyle       = lipgloss.NewStyle()
	helpStyleForm = blurredStyle

	focusedButton  = focusedStyle.Render("[ Save ]")
	blurredButton  = fmt.Sprintf("[ %s ]", blurredStyle.Render("Save"))
	disabledButton = fmt.Sprintf("[ %s ]", blurredStyle.Render("Save (complete the form)"))
)

// ProviderSaver submits a provider connection to the hub.
type ProviderSaver interface {
	SaveProvider(ctx context.Context, req provider.CreateRequest) error
}

const (
	fldName = iota
	fldCode
	fldToken
	fldProfileID
	fldAccessKey
	fldSecretKey
	fldFromEmail
	fldCount
)

var fieldLabels = [fldCount]string{
	fldName:      "Display Name:",
	fldCode:      "Provider Code:",
	fldToken:     "Wappi Token:",
	fldProfileID: "Wappi Profile ID:",
	fldAccessKey: "Postbox Access Key:",
	fldSecretKey: "Postbox Secret Key:",
	fldFromEmail: "Sender Email:",
}

type ProviderFormModel struct {
	saver      ProviderSaver
	inputs     []textinput.Model
	types      []provider.Type
	typeIndex  int
	focusIndex int
	saving     bool
	hint       string
	Saved      bool
	Err        error
}

func NewProviderForm(saver ProviderSaver, existing *hub.Provider) ProviderFormModel {
	m := ProviderFormModel{
		saver:  saver,
		inputs: make([]textinput.Model, fldCount),
		types:  provider.Types(),
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 256

		switch i {
		case fldName:
			t.Placeholder = "EK WhatsApp"
		case fldCode:
			t.Placeholder = "ek_wa"
		case fldToken:
			t.Placeholder = "wappi API token"
			t.EchoMode = textinput.EchoPassword
			t.EchoCharacter = '•'
		case fldProfileID:
			t.Placeholder = "wappi profile id"
		case fldAccessKey:
			t.Placeholder = "postbox access key"
		case fldSecretKey:
			t.Placeholder = "postbox secret key"
			t.EchoMode = textinput.EchoPassword
			t.EchoCharacter = '•'
		case fldFromEmail:
			t.Placeholder = "noreply@example.com"
		}

		m.inputs[i] = t
	}

	if existing != nil {
		m.inputs[fldName].SetValue(existing.Name)
		m.inputs[fldCode].SetValue(existing.Code)

		for i, typ := range m.types {
			if typ == existing.Type {
				m.typeIndex = i
				break
			}
		}
	}

	return m
}

func (m ProviderFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// visibleFields returns the input indexes shown for the current channel
// family. Messenger channels take wappi credentials, mail channels take
// postbox credentials, the rest only need name and code.
func (m ProviderFormModel) visibleFields() []int {
	fields := []int{fldName, fldCode}

	switch provider.Classify(m.types[m.typeIndex]) {
	case provider.KindMessenger:
		fields = append(fields, fldToken, fldProfileID)
	case provider.KindMail:
		fields = append(fields, fldAccessKey, fldSecretKey, fldFromEmail)
	}

	return fields
}

func (m ProviderFormModel) draft() provider.Draft {
	return provider.Draft{
		Name:      strings.TrimSpace(m.inputs[fldName].Value()),
		Code:      provider.NormalizeCode(m.inputs[fldCode].Value()),
		Type:      m.types[m.typeIndex],
		Token:     strings.TrimSpace(m.inputs[fldToken].Value()),
		ProfileID: strings.TrimSpace(m.inputs[fldProfileID].Value()),
		AccessKey: strings.TrimSpace(m.inputs[fldAccessKey].Value()),
		SecretKey: strings.TrimSpace(m.inputs[fldSecretKey].Value()),
		FromEmail: strings.TrimSpace(m.inputs[fldFromEmail].Value()),
	}
}

func (m ProviderFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	visible := m.visibleFields()
	// Focus positions: 0 is the type selector, then the visible inputs,
	// then the save button.
	submitPos := len(visible) + 1

	switch msg := msg.(type) {
	case successMsg:
		m.Saved = true

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
			if m.focusIndex == 0 {
				if msg.String() == "left" {
					m.typeIndex--
				} else {
					m.typeIndex++
				}

				if m.typeIndex < 0 {
					m.typeIndex = len(m.types) - 1
				} else if m.typeIndex >= len(m.types) {
					m.typeIndex = 0
				}

				return m, nil
			}

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == submitPos {
				if m.saving {
					return m, nil
				}

				if !m.draft().Submittable() {
					m.hint = "Fill in all required fields for the selected channel."

					return m, nil
				}

				m.hint = ""
				m.Err = nil
				m.saving = true

				return m, m.save
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

			cmds := make([]tea.Cmd, 0, len(visible))
			for pos, idx := range visible {
				if pos+1 == m.focusIndex {
					cmds = append(cmds, m.inputs[idx].Focus())
					m.inputs[idx].PromptStyle = focusedStyle
					m.inputs[idx].TextStyle = focusedStyle

					continue
				}

				m.inputs[idx].Blur()
				m.inputs[idx].PromptStyle = noStyle
				m.inputs[idx].TextStyle = noStyle
			}

			return m, tea.Batch(cmds...)
		}
	}

	cmd := m.updateInputs(msg)

	return m, cmd
}

func (m *ProviderFormModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

func (m ProviderFormModel) View() string {
	if m.Saved {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Render("\n  ✓ Provider saved.\n\n")
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	typ := m.types[m.typeIndex]

	typeRow := fmt.Sprintf("< %s >", typ.Label())
	if m.focusIndex == 0 {
		typeRow = focusedStyle.Render(typeRow)
	}

	s := headerStyle.Render("Provider Connection") + "\n"
	s += blurredStyle.Render("Left/right to change channel, tab to navigate") + "\n\n"
	s += fmt.Sprintf(fmtField, blurredStyle.Render("Channel:"), typeRow)

	for _, idx := range m.visibleFields() {
		s += fmt.Sprintf(fmtField, blurredStyle.Render(fieldLabels[idx]), m.inputs[idx].View())

		if idx == fldCode {
			raw := m.inputs[fldCode].Value()
			if normalized := provider.NormalizeCode(raw); normalized != raw && raw != "" {
				s += blurredStyle.Render(fmt.Sprintf("   will be saved as %q", normalized)) + "\n"
			}
		}
	}

	visible := m.visibleFields()

	button := blurredButton

	switch {
	case m.saving:
		button = blurredStyle.Render("[ Saving... ]")
	case !m.draft().Submittable():
		button = disabledButton
	case m.focusIndex == len(visible)+1:
		button = focusedButton
	}

	s += fmt.Sprintf("\n %s\n\n", button)

	if m.hint != "" {
		s += lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Render(" "+m.hint) + "\n"
	}

	if m.Err != nil {
		s += lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf(" ✗ %v", m.Err)) + "\n"
	}

	s += helpStyleForm.Render(" tab/shift+tab: navigate • enter: save • esc: quit")

	return s
}

func (m ProviderFormModel) save() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := m.saver.SaveProvider(ctx, m.draft().CreateRequest()); err != nil {
		return errMsg{err}
	}

	return successMsg{}
}

type successMsg struct{}
type errMsg struct{ err error }
