package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/routercfg/internal/discovery"
	"github.com/muurk/routercfg/internal/routerconfig"
)

// Tab is one of the top-level sections of the form
type Tab int

const (
	TabRouter Tab = iota
	TabDevices
	TabSchedules
)

var tabNames = []string{"Router", "Devices", "Schedules"}

// String returns the tab label
func (t Tab) String() string {
	if int(t) < len(tabNames) {
		return tabNames[t]
	}
	return "Unknown"
}

// ScanFunc discovers routers on the network
type ScanFunc func(ctx context.Context, timeout time.Duration) ([]*discovery.Host, error)

// Options configures the wizard
type Options struct {
	// Router is the session the form drives. Required.
	Router *routerconfig.Router

	// Defaults pre-fills the router section. The password is never pre-filled.
	Defaults routerconfig.Credentials

	// Scan discovers routers (default: discovery.ScanForRouters)
	Scan ScanFunc

	// ScanTimeout bounds a discovery run
	ScanTimeout time.Duration
}

// Notice is a blocking notification shown as a modal until dismissed
type Notice struct {
	Title string
	Body  string
	Err   error
}

// appKeyMap defines the global key bindings
type appKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Submit   key.Binding
	Scan     key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Dismiss  key.Binding
	Quit     key.Binding
	quitOnly bool
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k appKeyMap) ShortHelp() []key.Binding {
	if k.quitOnly {
		return []key.Binding{k.NextTab, k.PrevTab, k.Quit}
	}
	return []key.Binding{k.Next, k.Submit, k.Scan, k.NextTab, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Submit, k.Scan},
		{k.NextTab, k.PrevTab, k.Quit},
	}
}

func newKeyMap() appKeyMap {
	return appKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "connect/apply"),
		),
		Scan: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "find router"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("ctrl+right", "f2"),
			key.WithHelp("ctrl+→", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("ctrl+left", "f1"),
			key.WithHelp("ctrl+←", "previous tab"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "dismiss"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// AppModel is the top-level wizard model: a tab bar, the router form and a
// queue of notifications shown one at a time.
type AppModel struct {
	ctx    context.Context
	cancel context.CancelFunc

	Router      *routerconfig.Router
	scan        ScanFunc
	scanTimeout time.Duration

	// Navigation
	ActiveTab Tab
	Focus     Field

	// Router section inputs
	AddressInput  textinput.Model
	UsernameInput textinput.Model
	PasswordInput textinput.Model

	// WiFi section inputs
	SSIDInput         textinput.Model
	WiFiPasswordInput textinput.Model

	// Operations started by this form that have not completed yet
	inFlight *routerconfig.InFlight
	started  map[routerconfig.Operation]time.Time
	Scanning bool

	// Notifications waiting to be dismissed, oldest first
	Notices []Notice

	// UI state
	Width   int
	Height  int
	Spinner spinner.Model
	Bar     progress.Model
	Help    help.Model
	Keys    appKeyMap
}

// NewAppModel creates the wizard model
func NewAppModel(ctx context.Context, opts Options) AppModel {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)

	router := opts.Router
	if router == nil {
		router = routerconfig.NewRouter()
	}
	scan := opts.Scan
	if scan == nil {
		scan = discovery.ScanForRouters
	}
	timeout := opts.ScanTimeout
	if timeout <= 0 {
		timeout = discovery.DefaultScanTimeout
	}

	defaults := opts.Defaults
	if defaults.Address == "" {
		defaults.Address = routerconfig.DefaultAddress
	}
	if defaults.Username == "" {
		defaults.Username = routerconfig.DefaultUsername
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	m := AppModel{
		ctx:               ctx,
		cancel:            cancel,
		Router:            router,
		scan:              scan,
		scanTimeout:       timeout,
		ActiveTab:         TabRouter,
		Focus:             FieldAddress,
		AddressInput:      newInput(routerconfig.DefaultAddress, 253, false),
		UsernameInput:     newInput(routerconfig.DefaultUsername, 64, false),
		PasswordInput:     newInput("Router password", 128, true),
		SSIDInput:         newInput("New network name", 64, false),
		WiFiPasswordInput: newInput("New network password", 128, true),
		inFlight:          routerconfig.NewInFlight(),
		started:           make(map[routerconfig.Operation]time.Time),
		Width:             80,
		Height:            30,
		Spinner:           s,
		Bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(20),
			progress.WithoutPercentage(),
		),
		Help: help.New(),
		Keys: newKeyMap(),
	}

	m.AddressInput.SetValue(defaults.Address)
	m.UsernameInput.SetValue(defaults.Username)
	m.AddressInput.Focus()

	return m
}

func newInput(placeholder string, limit int, secret bool) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 36
	ti.Prompt = ""
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return ti
}

// Run starts the wizard full-screen and blocks until the user quits
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(NewAppModel(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case spinner.TickMsg:
		// Ticking stops once nothing is pending
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case connectDoneMsg:
		return m.handleConnectDone(msg), nil

	case applyDoneMsg:
		return m.handleApplyDone(msg), nil

	case scanDoneMsg:
		return m.handleScanDone(msg), nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			return m, tea.Quit
		}

		if len(m.Notices) > 0 {
			if key.Matches(msg, m.Keys.Dismiss) {
				m.Notices = m.Notices[1:]
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.Keys.NextTab):
			m.ActiveTab = (m.ActiveTab + 1) % Tab(len(tabNames))
			return m, nil
		case key.Matches(msg, m.Keys.PrevTab):
			m.ActiveTab = (m.ActiveTab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
			return m, nil
		case msg.String() == "esc":
			m.cancel()
			return m, tea.Quit
		}

		if m.ActiveTab != TabRouter {
			return m, nil
		}
		return m.updateForm(msg)
	}

	return m.updateFocusedInput(msg)
}

// notify queues a notification
func (m *AppModel) notify(n Notice) {
	m.Notices = append(m.Notices, n)
}

// busy reports whether any operation or scan is pending
func (m AppModel) busy() bool {
	return m.inFlight.Len() > 0 || m.Scanning
}

// View renders the wizard
func (m AppModel) View() string {
	if len(m.Notices) > 0 {
		return RenderModal(m.renderNotice(m.Notices[0]), m.Width, m.Height)
	}

	keys := m.Keys
	keys.quitOnly = m.ActiveTab != TabRouter

	var body string
	switch m.ActiveTab {
	case TabRouter:
		body = m.renderForm()
	default:
		body = HintStyle.Render(m.ActiveTab.String() + " are not available yet.")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), "", body)
	return RenderApplicationContainer(content, m.Help.View(keys), m.Width, m.Height)
}

func (m AppModel) renderTabs() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.ActiveTab {
			tabs[i] = ActiveTabStyle.Render(name)
		} else {
			tabs[i] = InactiveTabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m AppModel) renderNotice(n Notice) string {
	style := ModalStyle
	title := "✓ " + n.Title
	titleColor := SecondaryColor

	var body strings.Builder
	if n.Err != nil {
		style = ModalErrorStyle
		title = "✗ " + n.Title
		titleColor = ErrorColor
		body.WriteString(routerconfig.GetShortErrorMessage(n.Err))
		body.WriteString("\n\n")
		body.WriteString(HintStyle.Render(routerconfig.GetTroubleshootingHint(n.Err)))
	} else {
		body.WriteString(n.Body)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(titleColor).Bold(true).Render(title),
		"",
		body.String(),
		"",
		HintStyle.Render("Press enter to continue"),
	)

	return style.Width(SafeModalWidth(56, m.Width)).Render(content)
}
