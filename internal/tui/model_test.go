package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/flare/internal/core/banner"
	"github.com/colonyops/flare/internal/core/config"
	"github.com/colonyops/flare/pkg/tuitest"
)

func newTestModel(t *testing.T) (*Model, *banner.Store) {
	t.Helper()
	cfg := config.DefaultConfig()
	store := banner.NewStore(cfg.Banners.StoreConfig(), banner.WithScheduler(noopScheduler{}))
	m := NewModel(&cfg, store, Options{})

	updated, _ := m.Update(tuitest.WindowSize(100, 30))
	return updated.(*Model), store
}

func step(t *testing.T, m *Model, msg tea.Msg) *Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(*Model)
}

func settleModel(t *testing.T, m *Model) *Model {
	t.Helper()
	for range 100 {
		if !m.controller.NeedsTick() {
			break
		}
		m = step(t, m, animTickMsg{})
	}
	return m
}

func TestModel_key_adds_banner(t *testing.T) {
	m, store := newTestModel(t)

	m = step(t, m, tuitest.KeyPress('s'))
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, banner.LevelSuccess, store.All()[0].Kind.Level)

	m = step(t, m, tuitest.KeyPress('e'))
	assert.Equal(t, 2, store.Len())
	assert.True(t, store.All()[1].Kind.Persistent)
}

func TestModel_burst_goes_through_buffer(t *testing.T) {
	m, store := newTestModel(t)

	m = step(t, m, tuitest.KeyPress('a'))
	assert.Equal(t, 0, store.Len(), "burst is buffered, not added inline")

	step(t, m, drainBannersMsg{})

	assert.Equal(t, 12, store.Len())
	assert.Len(t, store.Visible(), store.Config().VisibleCap)
}

func TestModel_flag_key_queues_banner_through_binding(t *testing.T) {
	m, store := newTestModel(t)

	m = step(t, m, tuitest.KeyPress('f'))

	assert.False(t, m.flagRaised, "flag is consumed in the same update")
	require.Equal(t, 1, store.Len())
	assert.Equal(t, "Flag raised", store.All()[0].Kind.Title)
}

func TestModel_dismiss_key_removes_newest(t *testing.T) {
	m, store := newTestModel(t)
	m = step(t, m, tuitest.KeyPress('s'))
	m = step(t, m, tuitest.KeyPress('w'))

	newest := store.Visible()[0]
	step(t, m, tuitest.KeyPress('x'))

	assert.False(t, newest.Animating())
}

func TestModel_quit(t *testing.T) {
	m, _ := newTestModel(t)

	updated, cmd := m.Update(tuitest.KeyPress('q'))
	require.NotNil(t, cmd)
	assert.True(t, updated.(*Model).quitting)
}

func TestModel_view_shows_settled_banner(t *testing.T) {
	m, _ := newTestModel(t)
	m = step(t, m, tuitest.KeyPress('s'))
	m = settleModel(t, m)

	out := tuitest.StripANSI(m.render())
	assert.Contains(t, out, "✓ Saved #1")
	assert.Contains(t, out, "flare")
}

func TestModel_mouse_drag_dismisses_banner(t *testing.T) {
	m, store := newTestModel(t)
	m = step(t, m, tuitest.KeyPress('s'))
	m = settleModel(t, m)

	l := m.controller.Layouts()[0]
	r := l.Record
	grabY := l.Y + l.H - 1

	m = step(t, m, tuitest.MouseClick(l.X+1, grabY))
	assert.True(t, m.controller.Dragging())

	m = step(t, m, tuitest.MouseMotion(l.X+1, grabY-4))
	m = step(t, m, tuitest.MouseRelease(l.X+1, grabY-4))

	assert.False(t, r.Animating())
	assert.False(t, m.controller.Dragging())
	assert.Equal(t, 1, store.Len(), "record stays until exit duration elapses")
}

func TestModel_mouse_tap_expands_banner(t *testing.T) {
	m, _ := newTestModel(t)
	m = step(t, m, tuitest.KeyPress('w'))
	m = settleModel(t, m)

	l := m.controller.Layouts()[0]
	m = step(t, m, tuitest.MouseClick(l.X+1, l.Y+1))
	m = step(t, m, tuitest.MouseRelease(l.X+1, l.Y+1))

	assert.True(t, m.controller.Expanded(l.Record.ID))
}

func TestModel_drain_adds_buffered_banners(t *testing.T) {
	m, store := newTestModel(t)

	m.Buffer().Push(banner.Success("async", "from a goroutine"))
	m.Buffer().Push(banner.Warning("async too", ""))

	step(t, m, drainBannersMsg{})

	assert.Equal(t, 2, store.Len())
}

func TestModel_initial_banners_are_buffered(t *testing.T) {
	cfg := config.DefaultConfig()
	store := banner.NewStore(cfg.Banners.StoreConfig(), banner.WithScheduler(noopScheduler{}))
	m := NewModel(&cfg, store, Options{
		InitialBanners: []banner.Kind{banner.Success("hello", "")},
	})

	updated, _ := m.Update(tuitest.WindowSize(100, 30))
	step(t, updated.(*Model), drainBannersMsg{})

	assert.Equal(t, 1, store.Len())
}
