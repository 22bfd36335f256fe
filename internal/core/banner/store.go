package banner

import (
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Defaults for Config fields left at their zero value.
const (
	DefaultVisibleCap       = 10
	DefaultExitDuration     = 500 * time.Millisecond
	DefaultAutoDismissAfter = 1500 * time.Millisecond
	DefaultDragThreshold    = 30.0
)

// Config holds the banner policy parameters. The zero value is usable;
// unset fields fall back to the defaults above.
type Config struct {
	// VisibleCap is the maximum number of banners presented at once.
	// The underlying collection is never capped, only the visible view.
	VisibleCap int
	// ExitDuration is the length of the exit animation. Deletion from
	// the collection fires after it elapses.
	ExitDuration time.Duration
	// AutoDismissAfter is how long a non-persistent banner stays on
	// screen after its view first appears.
	AutoDismissAfter time.Duration
	// DragThreshold is the upward drag distance, in drag units, past
	// which releasing the gesture dismisses the banner.
	DragThreshold float64
}

// DefaultConfig returns the policy used when no configuration is given.
func DefaultConfig() Config {
	return Config{
		VisibleCap:       DefaultVisibleCap,
		ExitDuration:     DefaultExitDuration,
		AutoDismissAfter: DefaultAutoDismissAfter,
		DragThreshold:    DefaultDragThreshold,
	}
}

func (c *Config) applyDefaults() {
	if c.VisibleCap == 0 {
		c.VisibleCap = DefaultVisibleCap
	}
	if c.ExitDuration == 0 {
		c.ExitDuration = DefaultExitDuration
	}
	if c.AutoDismissAfter == 0 {
		c.AutoDismissAfter = DefaultAutoDismissAfter
	}
	if c.DragThreshold == 0 {
		c.DragThreshold = DefaultDragThreshold
	}
}

// Option configures a Store.
type Option func(*Store)

// WithScheduler replaces the timer scheduler. Tests inject a manual
// scheduler to fire deferred removals deterministically.
func WithScheduler(s Scheduler) Option {
	return func(st *Store) { st.scheduler = s }
}

// WithClock replaces the clock used for record creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(st *Store) { st.now = now }
}

// WithMute installs a filter that silently drops matching kinds before
// they are stored.
func WithMute(fn func(Kind) bool) Option {
	return func(st *Store) { st.mute = fn }
}

// Store is the single source of truth for active banners. One instance
// is created by the composition root and injected wherever banners are
// enqueued or rendered. All operations are total: removal of an unknown
// record is a silent no-op, never an error.
type Store struct {
	mu        sync.Mutex
	cfg       Config
	records   []*Record
	subs      map[int]func()
	nextSubID int
	scheduler Scheduler
	now       func() time.Time
	mute      func(Kind) bool
}

// NewStore creates a store with the given policy.
func NewStore(cfg Config, opts ...Option) *Store {
	cfg.applyDefaults()
	s := &Store{
		cfg:       cfg,
		subs:      make(map[int]func()),
		scheduler: TimerScheduler{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the store's effective policy.
func (s *Store) Config() Config {
	return s.cfg
}

// Add appends a new record for the given kind and notifies subscribers.
// There is no deduplication and no write-time cap. The returned record is
// nil when a mute filter dropped the kind.
func (s *Store) Add(k Kind) *Record {
	if s.mute != nil && s.mute(k) {
		log.Debug().Str("message", k.Message).Msg("banner muted")
		return nil
	}

	s.mu.Lock()
	r := newRecord(k, s.now())
	s.records = append(s.records, r)
	s.mu.Unlock()

	log.Debug().
		Str("id", r.ID).
		Str("level", string(k.Level)).
		Bool("persistent", k.Persistent).
		Msg("banner added")

	s.notify()
	return r
}

// Visible returns a snapshot of the stored records sorted newest first
// and truncated to the visible cap. Records added in the same clock tick
// keep newest-insertion-first order. The returned records are shared
// pointers, not copies, so in-flight drag state is always current.
func (s *Store) Visible() []*Record {
	s.mu.Lock()
	out := make([]*Record, len(s.records))
	copy(out, s.records)
	s.mu.Unlock()

	// Reverse insertion order first so the stable sort breaks CreatedAt
	// ties in favor of the most recently added record.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if len(out) > s.cfg.VisibleCap {
		out = out[:s.cfg.VisibleCap]
	}
	return out
}

// All returns a snapshot of the full underlying collection in insertion
// order, including records beyond the visible cap.
func (s *Store) All() []*Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the size of the underlying collection.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Remove dismisses a record in two phases: it synchronously starts the
// exit animation (Animating false, drag offset slid up off the anchor),
// then schedules the actual deletion to fire once the exit duration has
// elapsed. Calling Remove on a record that is no longer stored is a
// silent no-op, so a pending delayed removal racing a manual dismissal
// is always safe.
func (s *Store) Remove(r *Record) {
	if r == nil {
		return
	}

	s.mu.Lock()
	if !s.containsLocked(r.ID) {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	r.beginExit()

	log.Debug().Str("id", r.ID).Msg("banner exit started")
	s.notify()

	s.scheduler.AfterFunc(s.cfg.ExitDuration, func() {
		s.delete(r.ID)
	})
}

// RemoveAfter schedules Remove for the record after the given delay.
// Used for auto-expiry of non-persistent banners; stale fires no-op.
func (s *Store) RemoveAfter(r *Record, d time.Duration) {
	if r == nil {
		return
	}
	s.scheduler.AfterFunc(d, func() {
		s.Remove(r)
	})
}

// ViewAppeared records the on-screen anchor reported by the presentation
// layer on a record's first layout. The drag offset starts at the full
// negative anchor height, which the presentation layer animates back to
// zero for the slide-in entrance. Non-persistent kinds are armed for
// auto-dismissal here. Repeat reports are ignored; the anchor is set once.
func (s *Store) ViewAppeared(r *Record, origin Point) {
	if r == nil {
		return
	}

	if !r.setAnchor(origin) {
		return
	}

	s.notify()

	if !r.Kind.Persistent {
		s.RemoveAfter(r, s.cfg.AutoDismissAfter)
	}
}

// SetDrag sets the record's vertical drag translation. Only upward
// motion (negative y) is stored; downward translation clamps to rest.
func (s *Store) SetDrag(r *Record, y float64) {
	if r == nil {
		return
	}
	if y > 0 {
		y = 0
	}
	r.setDragY(y)

	s.notify()
}

// DragEnd resolves a finished drag gesture. Past the threshold the
// banner is removed and DragEnd reports true; otherwise the offset
// resets to zero, cancelling the dismissal.
func (s *Store) DragEnd(r *Record) bool {
	if r == nil {
		return false
	}

	if r.endDrag(s.cfg.DragThreshold) {
		s.Remove(r)
		return true
	}

	s.notify()
	return false
}

// Subscribe registers a callback invoked whenever the visible list may
// have changed: on add, on exit-animation start, on deletion, and on
// interaction-state writes. It returns an unsubscribe function.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// delete removes the first record whose ID matches. No-op when absent.
func (s *Store) delete(id string) {
	s.mu.Lock()
	idx := -1
	for i, rec := range s.records {
		if rec.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	s.mu.Unlock()

	log.Debug().Str("id", id).Msg("banner removed")
	s.notify()
}

func (s *Store) containsLocked(id string) bool {
	for _, rec := range s.records {
		if rec.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
