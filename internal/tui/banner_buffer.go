package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/colonyops/flare/internal/core/banner"
)

// BannerBuffer buffers banner requests from outside the Update loop and
// emits coalesced drain signals, so goroutines never touch the store
// directly.
type BannerBuffer struct {
	mu     sync.Mutex
	kinds  []banner.Kind
	signal chan struct{}
}

// NewBannerBuffer constructs a buffer for async banner delivery.
func NewBannerBuffer() *BannerBuffer {
	return &BannerBuffer{
		kinds:  make([]banner.Kind, 0),
		signal: make(chan struct{}, 1),
	}
}

// Push appends a banner request and emits a non-blocking drain signal.
func (b *BannerBuffer) Push(k banner.Kind) {
	b.mu.Lock()
	b.kinds = append(b.kinds, k)
	b.mu.Unlock()

	select {
	case b.signal <- struct{}{}:
	default:
	}
}

// Drain returns all buffered requests and clears the buffer.
func (b *BannerBuffer) Drain() []banner.Kind {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.kinds) == 0 {
		return nil
	}

	out := make([]banner.Kind, len(b.kinds))
	copy(out, b.kinds)
	b.kinds = b.kinds[:0]
	return out
}

// WaitForSignal blocks until there are requests ready to drain.
func (b *BannerBuffer) WaitForSignal() tea.Cmd {
	return func() tea.Msg {
		<-b.signal
		return drainBannersMsg{}
	}
}
