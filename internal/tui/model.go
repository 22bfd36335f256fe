package tui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	lipgloss "github.com/charmbracelet/lipgloss/v2"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/flare/internal/core/banner"
	"github.com/colonyops/flare/internal/core/config"
	"github.com/colonyops/flare/internal/core/styles"
)

// Options configures the demo model.
type Options struct {
	// InitialBanners are shown as soon as the program starts.
	InitialBanners []banner.Kind
}

// Model is the main Bubble Tea model: an event log with a banner
// overlay in the top-right corner.
type Model struct {
	cfg        *config.Config
	store      *banner.Store
	controller *BannerController
	view       *BannerView
	buffer     *BannerBuffer
	signal     *storeSignal
	keys       keyMap

	eventLog viewport.Model
	events   []string

	flagRaised  bool
	flagBinding *FlagBinding

	width    int
	height   int
	seq      int
	quitting bool
}

func NewModel(cfg *config.Config, store *banner.Store, opts Options) *Model {
	controller := NewBannerController(store)

	m := &Model{
		cfg:        cfg,
		store:      store,
		controller: controller,
		view:       NewBannerView(controller),
		buffer:     NewBannerBuffer(),
		signal:     newStoreSignal(store),
		keys:       defaultKeyMap(),
		eventLog:   viewport.New(),
	}
	m.flagBinding = NewFlagBinding(&m.flagRaised, banner.Warning(
		"Flag raised",
		"This banner was queued through a presentation flag.",
	))

	for _, k := range opts.InitialBanners {
		m.buffer.Push(k)
	}

	return m
}

// Buffer exposes the async banner entry point for goroutines outside
// the update loop.
func (m *Model) Buffer() *BannerBuffer {
	return m.buffer
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.buffer.WaitForSignal(), m.signal.Wait())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)

	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if m.quitting {
			return m, tea.Quit
		}

	case tea.MouseClickMsg:
		m.handleMousePress(tea.Mouse(msg))
	case tea.MouseMotionMsg:
		m.handleMouseMotion(tea.Mouse(msg))
	case tea.MouseReleaseMsg:
		m.handleMouseRelease()

	case animTickMsg:
		m.controller.SetTicking(false)
		if m.controller.Step() {
			m.controller.SetTicking(true)
			cmds = append(cmds, scheduleAnimTick())
		}

	case drainBannersMsg:
		for _, k := range m.buffer.Drain() {
			m.addBanner(k)
		}
		cmds = append(cmds, m.buffer.WaitForSignal())

	case bannersChangedMsg:
		cmds = append(cmds, m.signal.Wait())
	}

	if r := m.flagBinding.Consume(m.store); r != nil {
		m.logEvent(fmt.Sprintf("flag consumed, banner %s queued", shortID(r.ID)))
	}

	m.controller.Refresh(m.width)

	if !m.controller.Ticking() && m.controller.NeedsTick() {
		m.controller.SetTicking(true)
		cmds = append(cmds, scheduleAnimTick())
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.eventLog = viewport.New(
		viewport.WithWidth(max(msg.Width-2, 1)),
		viewport.WithHeight(max(msg.Height-4, 1)),
	)
	m.refreshEventLog()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case keyQuit, keyCtrlC:
		m.quitting = true

	case "s":
		m.seq++
		m.addBanner(banner.Success(
			fmt.Sprintf("Saved #%d", m.seq),
			"Changes written to disk.",
		))

	case "w":
		m.seq++
		m.addBanner(banner.Warning(
			fmt.Sprintf("Heads up #%d", m.seq),
			"Disk usage is at **87%**. Consider pruning old sessions.",
		))

	case "e":
		m.seq++
		m.addBanner(banner.Error(
			fmt.Sprintf("Sync failed #%d", m.seq),
			"Could not reach the remote. This banner stays until dismissed.",
		))

	case "a":
		// Push through the buffer so the burst takes the same path as
		// banners enqueued from outside the update loop.
		for i := 0; i < 12; i++ {
			m.seq++
			m.buffer.Push(banner.Success(
				fmt.Sprintf("Batch item #%d", m.seq),
				"One of a burst.",
			))
		}
		m.logEvent("queued a burst of 12 banners")

	case "f":
		m.flagRaised = true
		m.logEvent("presentation flag raised")

	case "x":
		if visible := m.store.Visible(); len(visible) > 0 {
			m.store.Remove(visible[0])
			m.logEvent(fmt.Sprintf("dismissed banner %s", shortID(visible[0].ID)))
		}
	}

	return nil
}

func (m *Model) handleMousePress(mouse tea.Mouse) {
	if mouse.Button != tea.MouseLeft {
		return
	}
	if m.controller.MousePress(mouse.X, mouse.Y) {
		log.Debug().Int("x", mouse.X).Int("y", mouse.Y).Msg("banner grabbed")
	}
}

func (m *Model) handleMouseMotion(mouse tea.Mouse) {
	if !m.controller.Dragging() {
		return
	}
	m.controller.MouseMotion(mouse.Y)
}

func (m *Model) handleMouseRelease() {
	if !m.controller.Dragging() {
		return
	}
	m.controller.MouseRelease()
}

func (m *Model) addBanner(k banner.Kind) {
	r := m.store.Add(k)
	if r == nil {
		m.logEvent(fmt.Sprintf("muted banner %q", k.Title))
		return
	}
	m.logEvent(fmt.Sprintf("added %s banner %s (%s)", k.Level, shortID(r.ID), k.Title))
}

func (m *Model) logEvent(line string) {
	stamp := time.Now().Format("15:04:05")
	m.events = append(m.events, styles.TextMutedStyle.Render(stamp)+" "+line)
	m.refreshEventLog()
}

func (m *Model) refreshEventLog() {
	m.eventLog.SetContent(strings.Join(m.events, "\n"))
	m.eventLog.GotoBottom()
}

func (m *Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m *Model) render() string {
	var b strings.Builder
	b.WriteString(styles.HeaderStyle.Render("flare"))
	b.WriteString(styles.TextMutedStyle.Render("  banner overlay demo"))
	b.WriteString("\n")
	b.WriteString(styles.DividerStyle.Render(strings.Repeat("─", max(m.width, 1))))
	b.WriteString("\n")
	b.WriteString(m.eventLog.View())
	b.WriteString("\n")
	b.WriteString(m.keys.helpLine())

	content := lipgloss.NewStyle().
		Width(max(m.width, 1)).
		Height(max(m.height, 1)).
		Render(b.String())

	return m.view.Overlay(content)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
