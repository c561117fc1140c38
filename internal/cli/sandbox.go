package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ekomkassa/hubctl/internal/hub"
	"github.com/ekomkassa/hubctl/internal/provider"
)

// Sender dispatches a sandbox message through the hub.
type Sender interface {
	Send(ctx context.Context, req hub.SendRequest) (*hub.SendResult, error)
}

type sandboxPhase int

const (
	phasePick sandboxPhase = iota
	phaseCompose
	phaseResult
)

const (
	sandboxRecipient = iota
	sandboxSubject
	sandboxMessage
	sandboxFieldCount
)

type sendResultMsg struct {
	result *hub.SendResult
}

type SandboxModel struct {
	sender     Sender
	phase      sandboxPhase
	list       list.Model
	target     *hub.Provider
	inputs     []textinput.Model
	focusIndex int
	sending    bool
	hint       string
	quitting   bool

	// LastRequest and LastResult describe the most recent dispatch so the
	// caller can record it in the local send history.
	LastRequest *hub.SendRequest
	LastResult  *hub.SendResult
	Err         error
}

// NewSandbox builds the test sender. Only providers whose connection is
// working or configured are offered.
func NewSandbox(sender Sender, providers []hub.Provider) SandboxModel {
	var sendable []hub.Provider
	for _, p := range providers {
		if p.Sendable() {
			sendable = append(sendable, p)
		}
	}

	items := make([]list.Item, len(sendable))
	for i, p := range sendable {
		items[i] = providerItem{p: p}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Sandbox - Pick a Provider"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	m := SandboxModel{
		sender: sender,
		phase:  phasePick,
		list:   l,
		inputs: make([]textinput.Model, sandboxFieldCount),
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 1024

		switch i {
		case sandboxRecipient:
			t.Placeholder = "+79001234567 or user@example.com"
		case sandboxSubject:
			t.Placeholder = "subject"
		case sandboxMessage:
			t.Placeholder = "message text"
		}

		m.inputs[i] = t
	}

	return m
}

func (m SandboxModel) Init() tea.Cmd {
	return nil
}

// mailTarget reports whether the picked provider takes a subject line.
func (m SandboxModel) mailTarget() bool {
	return m.target != nil && provider.Classify(m.target.Type) == provider.KindMail
}

func (m SandboxModel) visibleFields() []int {
	if m.mailTarget() {
		return []int{sandboxRecipient, sandboxSubject, sandboxMessage}
	}

	return []int{sandboxRecipient, sandboxMessage}
}

func (m SandboxModel) request() hub.SendRequest {
	req := hub.SendRequest{
		Provider:  m.target.Code,
		Recipient: strings.TrimSpace(m.inputs[sandboxRecipient].Value()),
		Message:   strings.TrimSpace(m.inputs[sandboxMessage].Value()),
	}

	if m.mailTarget() {
		req.Subject = strings.TrimSpace(m.inputs[sandboxSubject].Value())
	}

	return req
}

func (m SandboxModel) composable() bool {
	req := m.request()

	return req.Recipient != "" && req.Message != ""
}

func (m SandboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phasePick:
		return m.updatePick(msg)
	case phaseCompose:
		return m.updateCompose(msg)
	default:
		return m.updateResult(msg)
	}
}

func (m SandboxModel) updatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
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
				m.target = &i.p
				m.phase = phaseCompose
				m.focusIndex = 0
				m.inputs[sandboxRecipient].PromptStyle = focusedStyle
				m.inputs[sandboxRecipient].TextStyle = focusedStyle

				return m, m.inputs[sandboxRecipient].Focus()
			}

			return m, nil
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m SandboxModel) updateCompose(msg tea.Msg) (tea.Model, tea.Cmd) {
	visible := m.visibleFields()
	submitPos := len(visible)

	switch msg := msg.(type) {
	case sendResultMsg:
		m.sending = false
		m.LastResult = msg.result
		m.phase = phaseResult

		return m, nil

	case errMsg:
		m.sending = false
		m.Err = msg.err

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true

			return m, tea.Quit

		case "ctrl+e":
			m.loadExample()

			return m, nil

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == submitPos {
				if m.sending {
					return m, nil
				}

				if !m.composable() {
					m.hint = "Recipient and message are required."

					return m, nil
				}

				m.hint = ""
				m.Err = nil
				m.sending = true

				req := m.request()
				m.LastRequest = &req

				return m, m.send(req)
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
				if pos == m.focusIndex {
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

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m SandboxModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "n":
			// Compose another message to the same provider.
			m.phase = phaseCompose
			m.LastResult = nil
			m.Err = nil
			m.inputs[sandboxMessage].SetValue("")

			return m, nil

		default:
			m.quitting = true

			return m, tea.Quit
		}
	}

	return m, nil
}

// loadExample fills the form with a canned test message for the picked
// channel.
func (m *SandboxModel) loadExample() {
	m.inputs[sandboxMessage].SetValue("Test message from the integration hub. Please ignore.")

	if m.mailTarget() {
		m.inputs[sandboxSubject].SetValue("Integration hub test")
	}
}

func (m SandboxModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phasePick:
		return docStyle.Render(m.list.View())
	case phaseCompose:
		return m.viewCompose()
	default:
		return m.viewResult()
	}
}

func (m SandboxModel) viewCompose() string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	s := headerStyle.Render(fmt.Sprintf("Sandbox - %s", m.target.Name)) + "\n"
	s += blurredStyle.Render(fmt.Sprintf("%s via %s", m.target.Code, m.target.Type.Label())) + "\n\n"

	labels := map[int]string{
		sandboxRecipient: "Recipient:",
		sandboxSubject:   "Subject:",
		sandboxMessage:   "Message:",
	}

	visible := m.visibleFields()
	for _, idx := range visible {
		s += fmt.Sprintf(fmtField, blurredStyle.Render(labels[idx]), m.inputs[idx].View())
	}

	button := fmt.Sprintf("[ %s ]", blurredStyle.Render("Send"))

	switch {
	case m.sending:
		button = blurredStyle.Render("[ Sending... ]")
	case !m.composable():
		button = fmt.Sprintf("[ %s ]", blurredStyle.Render("Send (fill the form)"))
	case m.focusIndex == len(visible):
		button = focusedStyle.Render("[ Send ]")
	}

	s += fmt.Sprintf("\n %s\n\n", button)

	if m.hint != "" {
		s += lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Render(" "+m.hint) + "\n"
	}

	if m.Err != nil {
		s += lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf(" ✗ %v", m.Err)) + "\n"
	}

	s += helpStyleForm.Render(" tab: navigate • ctrl+e: example • enter: send • esc: quit")

	return s
}

func (m SandboxModel) viewResult() string {
	res := m.LastResult

	var s string

	if res.Success {
		s = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("\n  ✓ Accepted by the hub") + "\n\n"
		s += fmt.Sprintf("  Message ID: %s\n", res.MessageID)

		if res.Status != "" {
			s += fmt.Sprintf("  Status: %s\n", res.Status)
		}
	} else {
		s = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("\n  ✗ Rejected") + "\n\n"
		s += fmt.Sprintf("  %s\n", res.Error)
	}

	s += "\n" + helpStyleForm.Render("  n: send another • any other key: quit")

	return s
}

func (m SandboxModel) send(req hub.SendRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		result, err := m.sender.Send(ctx, req)
		if err != nil {
			return errMsg{err}
		}

		return sendResultMsg{result: result}
	}
}
