package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/routercfg/internal/routerconfig"
)

// Field identifies a focusable element of the router form
type Field int

const (
	FieldAddress Field = iota
	FieldUsername
	FieldPassword
	FieldConnect
	FieldSSID
	FieldWiFiPassword
	FieldApply
)

// Messages for async operations
type connectDoneMsg struct {
	creds routerconfig.Credentials
	err   error
}

type applyDoneMsg struct {
	settings routerconfig.WiFiSettings
	result   *routerconfig.ApplyResult
	err      error
}

// connectCmd logs in to the router in the background
func connectCmd(ctx context.Context, router *routerconfig.Router, creds routerconfig.Credentials) tea.Cmd {
	return func() tea.Msg {
		err := router.Connect(ctx, creds)
		return connectDoneMsg{creds: creds, err: err}
	}
}

// applyCmd changes the WiFi settings in the background
func applyCmd(ctx context.Context, router *routerconfig.Router, settings routerconfig.WiFiSettings) tea.Cmd {
	return func() tea.Msg {
		result, err := router.ApplyWiFi(ctx, settings)
		return applyDoneMsg{settings: settings, result: result, err: err}
	}
}

// fields returns the focus order. The WiFi section exists only once connected.
func (m AppModel) fields() []Field {
	fields := []Field{FieldAddress, FieldUsername, FieldPassword, FieldConnect}
	if m.Router.Connected() {
		fields = append(fields, FieldSSID, FieldWiFiPassword, FieldApply)
	}
	return fields
}

// input returns the text input backing f, or nil for buttons
func (m *AppModel) input(f Field) *textinput.Model {
	switch f {
	case FieldAddress:
		return &m.AddressInput
	case FieldUsername:
		return &m.UsernameInput
	case FieldPassword:
		return &m.PasswordInput
	case FieldSSID:
		return &m.SSIDInput
	case FieldWiFiPassword:
		return &m.WiFiPasswordInput
	}
	return nil
}

// setFocus moves focus to f, blurring every other input
func (m *AppModel) setFocus(f Field) {
	for _, other := range []Field{FieldAddress, FieldUsername, FieldPassword, FieldSSID, FieldWiFiPassword} {
		if in := m.input(other); in != nil {
			in.Blur()
		}
	}
	m.Focus = f
	if in := m.input(f); in != nil {
		in.Focus()
	}
}

func (m *AppModel) moveFocus(delta int) {
	fields := m.fields()
	idx := 0
	for i, f := range fields {
		if f == m.Focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(fields)) % len(fields)
	m.setFocus(fields[idx])
}

// updateForm handles key presses on the router tab
func (m AppModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Next):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, m.Keys.Prev):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(msg, m.Keys.Scan):
		return m.startScan()
	case key.Matches(msg, m.Keys.Submit):
		if m.Focus >= FieldSSID {
			return m.startApply()
		}
		return m.startConnect()
	}

	return m.updateFocusedInput(msg)
}

// updateFocusedInput forwards a message to the focused text input
func (m AppModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	in := m.input(m.Focus)
	if in == nil {
		return m, nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return m, cmd
}

// credentials reads the router section
func (m AppModel) credentials() routerconfig.Credentials {
	return routerconfig.Credentials{
		Address:  strings.TrimSpace(m.AddressInput.Value()),
		Username: m.UsernameInput.Value(),
		Password: m.PasswordInput.Value(),
	}
}

// wifiSettings reads the WiFi section
func (m AppModel) wifiSettings() routerconfig.WiFiSettings {
	return routerconfig.WiFiSettings{
		SSID:     m.SSIDInput.Value(),
		Password: m.WiFiPasswordInput.Value(),
	}
}

// begin marks op as pending and starts the spinner if nothing else was running
func (m *AppModel) begin(op routerconfig.Operation) (tea.Cmd, bool) {
	wasBusy := m.busy()
	if !m.inFlight.Begin(op) {
		return nil, false
	}
	m.started[op] = time.Now()
	if wasBusy {
		return nil, true
	}
	return m.Spinner.Tick, true
}

func (m *AppModel) end(op routerconfig.Operation) {
	m.inFlight.End(op)
	delete(m.started, op)
}

func (m AppModel) startConnect() (tea.Model, tea.Cmd) {
	creds := m.credentials()
	if errs := routerconfig.ValidateCredentials(creds); len(errs) > 0 {
		m.notify(Notice{Title: "Cannot connect", Err: errs[0]})
		return m, nil
	}

	tick, ok := m.begin(routerconfig.OpConnect)
	if !ok {
		m.notify(Notice{Title: "Cannot connect", Err: routerconfig.NewBusyError(routerconfig.OpConnect)})
		return m, nil
	}

	return m, tea.Batch(connectCmd(m.ctx, m.Router, creds), tick)
}

func (m AppModel) startApply() (tea.Model, tea.Cmd) {
	if !m.Router.Connected() {
		m.notify(Notice{Title: "Cannot change WiFi settings", Err: routerconfig.NewNotConnectedError()})
		return m, nil
	}

	settings := m.wifiSettings()
	if errs := routerconfig.ValidateWiFiSettings(settings, m.Router.Policy); len(errs) > 0 {
		m.notify(Notice{Title: "Cannot change WiFi settings", Err: errs[0]})
		return m, nil
	}

	tick, ok := m.begin(routerconfig.OpApplyWiFi)
	if !ok {
		m.notify(Notice{Title: "Cannot change WiFi settings", Err: routerconfig.NewBusyError(routerconfig.OpApplyWiFi)})
		return m, nil
	}

	return m, tea.Batch(applyCmd(m.ctx, m.Router, settings), tick)
}

func (m AppModel) handleConnectDone(msg connectDoneMsg) AppModel {
	m.end(routerconfig.OpConnect)

	if msg.err != nil {
		m.notify(Notice{Title: "Connection failed", Err: msg.err})
		return m
	}

	m.notify(Notice{
		Title: "Connected",
		Body:  fmt.Sprintf("Logged in to %s as %s.\nYou can now change the WiFi settings.", msg.creds.Address, msg.creds.Username),
	})
	m.setFocus(FieldSSID)
	return m
}

func (m AppModel) handleApplyDone(msg applyDoneMsg) AppModel {
	m.end(routerconfig.OpApplyWiFi)

	if msg.err != nil {
		m.notify(Notice{Title: "WiFi change failed", Err: msg.err})
		return m
	}

	m.SSIDInput.SetValue("")
	m.WiFiPasswordInput.SetValue("")
	m.notify(Notice{
		Title: "WiFi settings changed",
		Body:  routerconfig.FormatApplyNotice(msg.settings, true),
	})
	m.setFocus(FieldSSID)
	return m
}

// opProgress returns how far along op is, capped below 1 until it completes
func (m AppModel) opProgress(op routerconfig.Operation, delay time.Duration) float64 {
	started, ok := m.started[op]
	if !ok || delay <= 0 {
		return 0
	}
	p := float64(time.Since(started)) / float64(delay)
	if p > 0.99 {
		p = 0.99
	}
	return p
}

// renderForm renders the router tab
func (m AppModel) renderForm() string {
	var b strings.Builder

	b.WriteString(SectionTitleStyle.Render("Router"))
	b.WriteString("\n")
	b.WriteString(m.renderField(FieldAddress, "Address", m.AddressInput))
	b.WriteString(m.renderField(FieldUsername, "Username", m.UsernameInput))
	b.WriteString(m.renderField(FieldPassword, "Password", m.PasswordInput))
	b.WriteString(m.renderButton(FieldConnect, "Connect", routerconfig.OpConnect, m.Router.ConnectDelay))
	b.WriteString("\n")
	b.WriteString(HintStyle.Render(m.Router.FormatSession()))
	b.WriteString("\n")

	if m.Scanning {
		b.WriteString(fmt.Sprintf("%s Searching for routers...\n", m.Spinner.View()))
	}

	if !m.Router.Connected() {
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(SectionTitleStyle.Render("WiFi"))
	b.WriteString("\n")
	b.WriteString(m.renderField(FieldSSID, "Network name", m.SSIDInput))
	b.WriteString(m.renderField(FieldWiFiPassword, "Network password", m.WiFiPasswordInput))
	b.WriteString(m.renderPasswordHint())
	b.WriteString(m.renderButton(FieldApply, "Apply", routerconfig.OpApplyWiFi, m.Router.ApplyDelay))

	return b.String()
}

func (m AppModel) renderField(f Field, label string, in textinput.Model) string {
	labelStyle := lipgloss.NewStyle().Width(FieldLabelWidth).Foreground(SubtleColor)
	cursor := "  "
	if m.Focus == f {
		labelStyle = labelStyle.Foreground(PrimaryColor).Bold(true)
		cursor = "▸ "
	}
	return cursor + labelStyle.Render(label) + in.View() + "\n"
}

func (m AppModel) renderButton(f Field, label string, op routerconfig.Operation, delay time.Duration) string {
	style := InactiveTabStyle
	cursor := "  "
	if m.Focus == f {
		style = ActiveTabStyle
		cursor = "▸ "
	}

	line := cursor + style.Render(label)
	if m.inFlight.Contains(op) {
		line += fmt.Sprintf("  %s %s", m.Spinner.View(), m.Bar.ViewAs(m.opProgress(op, delay)))
	}
	return line + "\n"
}

// renderPasswordHint shows the strength of the new network password and the
// rules it still fails
func (m AppModel) renderPasswordHint() string {
	password := m.WiFiPasswordInput.Value()
	if password == "" {
		return HintStyle.Render("  "+strings.Join(m.Router.Policy.Requirements(), " • ")) + "\n"
	}

	strength := m.Router.Policy.Strength(password)
	label := lipgloss.NewStyle().Foreground(strengthColors[string(strength)]).Render("Strength: " + string(strength))

	check := m.Router.Policy.Check(password)
	if check.OK() {
		return "  " + label + "\n"
	}

	problems := make([]string, len(check.Errors))
	for i, err := range check.Errors {
		problems[i] = routerconfig.GetShortErrorMessage(err)
	}
	return "  " + label + HintStyle.Render("  "+strings.Join(problems, "; ")) + "\n"
}
