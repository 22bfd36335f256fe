package banner

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualScheduler collects scheduled calls and fires them when the test
// advances its clock, so deferred removals run deterministically.
type manualScheduler struct {
	now   time.Duration
	tasks []manualTask
}

type manualTask struct {
	due time.Duration
	fn  func()
}

func (m *manualScheduler) AfterFunc(d time.Duration, fn func()) {
	m.tasks = append(m.tasks, manualTask{due: m.now + d, fn: fn})
}

// Advance moves the scheduler clock forward and runs every due task in
// the order it was scheduled, including tasks scheduled by other tasks.
func (m *manualScheduler) Advance(d time.Duration) {
	m.now += d
	for {
		fired := false
		for i := 0; i < len(m.tasks); i++ {
			t := m.tasks[i]
			if t.due > m.now {
				continue
			}
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			t.fn()
			fired = true
			break
		}
		if !fired {
			return
		}
	}
}

// steppingClock returns a clock that moves forward by step on every read.
func steppingClock(start time.Time, step time.Duration) func() time.Time {
	n := 0
	return func() time.Time {
		t := start.Add(time.Duration(n) * step)
		n++
		return t
	}
}

func newTestStore(t *testing.T, opts ...Option) (*Store, *manualScheduler) {
	t.Helper()
	sched := &manualScheduler{}
	base := []Option{
		WithScheduler(sched),
		WithClock(steppingClock(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), time.Millisecond)),
	}
	return NewStore(Config{}, append(base, opts...)...), sched
}

func TestStore_Add_assigns_distinct_identities(t *testing.T) {
	s, _ := newTestStore(t)

	a := s.Add(Success("", "same"))
	b := s.Add(Success("", "same"))

	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, a.Kind, b.Kind)
	assert.NotEqual(t, a.ID, b.ID)
	assert.True(t, a.Animating())
	assert.Zero(t, a.Drag())
	assert.Zero(t, a.Anchor())
}

func TestStore_Visible_caps_and_orders_newest_first(t *testing.T) {
	s, _ := newTestStore(t)

	for i := range 15 {
		s.Add(Success("", fmt.Sprintf("banner %d", i)))
	}

	visible := s.Visible()
	require.Len(t, visible, 10)
	assert.Equal(t, 15, s.Len())

	// Newest first: banner 14 down to banner 5.
	for i, r := range visible {
		assert.Equal(t, fmt.Sprintf("banner %d", 14-i), r.Kind.Message)
	}
	for i := 1; i < len(visible); i++ {
		assert.False(t, visible[i].CreatedAt.After(visible[i-1].CreatedAt))
	}

	// The other five are still stored, just not presented.
	assert.Len(t, s.All(), 15)
}

func TestStore_Visible_ties_break_by_insertion_order(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	sched := &manualScheduler{}
	s := NewStore(Config{}, WithScheduler(sched), WithClock(func() time.Time { return fixed }))

	s.Add(Success("", "first"))
	s.Add(Success("", "second"))
	s.Add(Success("", "third"))

	visible := s.Visible()
	require.Len(t, visible, 3)
	assert.Equal(t, "third", visible[0].Kind.Message)
	assert.Equal(t, "second", visible[1].Kind.Message)
	assert.Equal(t, "first", visible[2].Kind.Message)
}

func TestStore_Visible_returns_shared_records(t *testing.T) {
	s, _ := newTestStore(t)
	r := s.Add(Success("", "shared"))
	s.ViewAppeared(r, Point{Y: 100})

	s.SetDrag(r, -25)

	visible := s.Visible()
	require.Len(t, visible, 1)
	assert.Same(t, r, visible[0])
	assert.Equal(t, -25.0, visible[0].Drag().Y)
}

func TestStore_Remove_two_phase(t *testing.T) {
	s, sched := newTestStore(t)
	r := s.Add(Error("boom", "it broke"))
	s.ViewAppeared(r, Point{Y: 40})
	s.SetDrag(r, 0) // settled after entrance

	s.Remove(r)

	// Phase (a): synchronous exit start.
	assert.False(t, r.Animating())
	assert.Equal(t, -40.0, r.Drag().Y)
	assert.Equal(t, 1, s.Len(), "record stays stored until the exit animation completes")

	// Phase (b): deletion after the exit duration.
	sched.Advance(DefaultExitDuration)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Visible())
}

func TestStore_Remove_twice_is_noop(t *testing.T) {
	s, sched := newTestStore(t)
	r := s.Add(Success("", "once"))

	s.Remove(r)
	s.Remove(r) // second call must not schedule or corrupt anything
	sched.Advance(DefaultExitDuration)
	s.Remove(r) // removal is terminal

	assert.Equal(t, 0, s.Len())
}

func TestStore_RemoveAfter_stale_fire_is_safe(t *testing.T) {
	s, sched := newTestStore(t)
	r := s.Add(Success("", "expiring"))
	s.RemoveAfter(r, DefaultAutoDismissAfter)

	// Manual dismissal wins the race.
	s.Remove(r)
	sched.Advance(DefaultExitDuration)
	require.Equal(t, 0, s.Len())

	// The pending delayed removal fires against a deleted record.
	sched.Advance(DefaultAutoDismissAfter + DefaultExitDuration)
	assert.Equal(t, 0, s.Len())
}

func TestStore_concurrent_reads_during_timer_removal(t *testing.T) {
	// Real timers here: deferred removals fire on runtime timer
	// goroutines while a reader takes frame snapshots, the interleaving
	// the record's lock exists for. Run with -race.
	s := NewStore(Config{
		ExitDuration:     time.Millisecond,
		AutoDismissAfter: time.Millisecond,
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			for _, r := range s.Visible() {
				_ = r.Animating()
				_ = r.Drag().Y
				_ = r.Opacity()
			}
		}
	}()

	for i := 0; i < 50; i++ {
		r := s.Add(Success("", "transient"))
		s.ViewAppeared(r, Point{Y: 30})
	}

	<-done
	assert.Eventually(t, func() bool { return s.Len() == 0 },
		time.Second, 5*time.Millisecond)
}

func TestStore_ViewAppeared_starts_entrance_and_arms_expiry(t *testing.T) {
	s, sched := newTestStore(t)
	r := s.Add(Success("saved", "all good"))

	s.ViewAppeared(r, Point{X: 4, Y: 30})

	assert.Equal(t, Point{X: 4, Y: 30}, r.Anchor())
	assert.Equal(t, -30.0, r.Drag().Y, "entrance starts fully above the anchor")

	// Auto-removed after the default delay plus the exit animation.
	sched.Advance(DefaultAutoDismissAfter)
	assert.False(t, r.Animating())
	sched.Advance(DefaultExitDuration)
	assert.Equal(t, 0, s.Len())
}

func TestStore_ViewAppeared_persistent_is_never_auto_removed(t *testing.T) {
	s, sched := newTestStore(t)
	r := s.Add(Error("fatal", "needs attention"))

	s.ViewAppeared(r, Point{Y: 30})
	sched.Advance(time.Hour)

	assert.Equal(t, 1, s.Len())
	assert.True(t, r.Animating())
}

func TestStore_ViewAppeared_sets_anchor_once(t *testing.T) {
	s, _ := newTestStore(t)
	r := s.Add(Error("", "anchored"))

	s.ViewAppeared(r, Point{Y: 30})
	s.SetDrag(r, 0)
	s.ViewAppeared(r, Point{Y: 90})

	assert.Equal(t, 30.0, r.Anchor().Y)
	assert.Equal(t, 0.0, r.Drag().Y, "repeat layout reports must not restart the entrance")
}

func TestStore_SetDrag_clamps_downward_motion(t *testing.T) {
	s, _ := newTestStore(t)
	r := s.Add(Error("", "dragged"))
	s.ViewAppeared(r, Point{Y: 100})

	s.SetDrag(r, -20)
	assert.Equal(t, -20.0, r.Drag().Y)

	s.SetDrag(r, 15)
	assert.Equal(t, 0.0, r.Drag().Y, "downward drag is clamped, not stored")
}

func TestStore_DragEnd_past_threshold_dismisses(t *testing.T) {
	s, sched := newTestStore(t)
	r := s.Add(Error("", "flick"))
	s.ViewAppeared(r, Point{Y: 100})

	s.SetDrag(r, -35)
	dismissed := s.DragEnd(r)

	assert.True(t, dismissed)
	assert.False(t, r.Animating())
	sched.Advance(DefaultExitDuration)
	assert.Equal(t, 0, s.Len())
}

func TestStore_DragEnd_below_threshold_snaps_back(t *testing.T) {
	s, _ := newTestStore(t)
	r := s.Add(Error("", "half-hearted"))
	s.ViewAppeared(r, Point{Y: 100})

	s.SetDrag(r, -20)
	dismissed := s.DragEnd(r)

	assert.False(t, dismissed)
	assert.True(t, r.Animating())
	assert.Equal(t, Offset{}, r.Drag())
	assert.Equal(t, 1, s.Len())
}

func TestStore_Subscribe_and_unsubscribe(t *testing.T) {
	s, sched := newTestStore(t)

	var calls int
	unsub := s.Subscribe(func() { calls++ })

	r := s.Add(Success("", "observed"))
	require.Equal(t, 1, calls)

	s.Remove(r)
	assert.Equal(t, 2, calls, "exit start notifies")

	sched.Advance(DefaultExitDuration)
	assert.Equal(t, 3, calls, "deletion notifies")

	unsub()
	s.Add(Success("", "unobserved"))
	assert.Equal(t, 3, calls)
}

func TestStore_WithMute_drops_matching_kinds(t *testing.T) {
	s, _ := newTestStore(t, WithMute(func(k Kind) bool {
		return k.Level == LevelSuccess
	}))

	assert.Nil(t, s.Add(Success("", "quiet")))
	assert.NotNil(t, s.Add(Warning("", "loud")))
	assert.Equal(t, 1, s.Len())
}

func TestConfig_applyDefaults(t *testing.T) {
	s := NewStore(Config{VisibleCap: 3})

	cfg := s.Config()
	assert.Equal(t, 3, cfg.VisibleCap)
	assert.Equal(t, DefaultExitDuration, cfg.ExitDuration)
	assert.Equal(t, DefaultAutoDismissAfter, cfg.AutoDismissAfter)
	assert.Equal(t, DefaultDragThreshold, cfg.DragThreshold)
}
