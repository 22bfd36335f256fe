package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/colonyops/flare/internal/core/banner"
)

type (
	animTickMsg       time.Time
	drainBannersMsg   struct{}
	bannersChangedMsg struct{}
)

func scheduleAnimTick() tea.Cmd {
	return tea.Tick(animTickInterval, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

// storeSignal turns store subscription callbacks into coalesced tea
// messages, so dismissal timers firing off-loop still repaint the view.
type storeSignal struct {
	ch chan struct{}
}

func newStoreSignal(store *banner.Store) *storeSignal {
	s := &storeSignal{ch: make(chan struct{}, 1)}
	store.Subscribe(func() {
		select {
		case s.ch <- struct{}{}:
		default:
		}
	})
	return s
}

// Wait blocks until the store reports a change.
func (s *storeSignal) Wait() tea.Cmd {
	return func() tea.Msg {
		<-s.ch
		return bannersChangedMsg{}
	}
}
