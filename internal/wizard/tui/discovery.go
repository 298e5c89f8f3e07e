package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/routercfg/internal/discovery"
)

type scanDoneMsg struct {
	hosts []*discovery.Host
	err   error
}

// scanCmd browses the network for routers in the background
func scanCmd(ctx context.Context, scan ScanFunc, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		hosts, err := scan(ctx, timeout)
		return scanDoneMsg{hosts: hosts, err: err}
	}
}

func (m AppModel) startScan() (tea.Model, tea.Cmd) {
	if m.Scanning {
		return m, nil
	}

	wasBusy := m.busy()
	m.Scanning = true

	cmds := []tea.Cmd{scanCmd(m.ctx, m.scan, m.scanTimeout)}
	if !wasBusy {
		cmds = append(cmds, m.Spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

func (m AppModel) handleScanDone(msg scanDoneMsg) AppModel {
	m.Scanning = false

	if msg.err != nil {
		m.notify(Notice{Title: "Router search failed", Err: msg.err})
		return m
	}

	if len(msg.hosts) == 0 {
		m.notify(Notice{
			Title: "No routers found",
			Body:  "Nothing answered on the local network.\nEnter the router address by hand.",
		})
		return m
	}

	m.AddressInput.SetValue(msg.hosts[0].Address())

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Found %d device(s):\n\n", len(msg.hosts)))
	for _, h := range msg.hosts {
		b.WriteString(fmt.Sprintf("  • %s\n", h))
	}
	b.WriteString(fmt.Sprintf("\nUsing %s", msg.hosts[0].Address()))

	m.notify(Notice{Title: "Routers found", Body: b.String()})
	return m
}
