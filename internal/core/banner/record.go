package banner

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Offset is a 2D translation in drag units.
type Offset struct {
	X float64
	Y float64
}

// Point is an on-screen position in drag units.
type Point struct {
	X float64
	Y float64
}

// Record is one active banner. Kind and CreatedAt are immutable after
// construction. The interaction state is written by the store, including
// from timer goroutines firing deferred removals, while the presentation
// layer reads it on every frame, so all access goes through lock-guarded
// accessors. Records are shared by pointer so in-flight drag state is
// always current.
type Record struct {
	ID        string
	Kind      Kind
	CreatedAt time.Time

	// mu guards the interaction state below. Animating starts true and
	// flips false when the exit animation begins. drag and anchor are
	// zero until the presentation layer has reported the record's first
	// layout.
	mu        sync.Mutex
	animating bool
	drag      Offset
	anchor    Point
}

func newRecord(k Kind, now time.Time) *Record {
	return &Record{
		ID:        uuid.NewString(),
		Kind:      k,
		CreatedAt: now,
		animating: true,
	}
}

// Animating reports whether the record's exit animation has not started.
func (r *Record) Animating() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.animating
}

// Drag returns the current drag translation.
func (r *Record) Drag() Offset {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.drag
}

// Anchor returns the on-screen anchor reported by the presentation layer.
func (r *Record) Anchor() Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.anchor
}

// Anchored reports whether the presentation layer has reported this
// record's screen position yet.
func (r *Record) Anchored() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.anchor != (Point{})
}

// Opacity derives the fade progress from the drag offset and anchor:
// 1 at rest, approaching 0 as the banner slides up off its anchor point.
// Before layout has reported an anchor the banner is fully opaque, which
// also guards the division. Once the exit animation has started the
// banner is invisible.
func (r *Record) Opacity() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.animating {
		return 0
	}
	if r.anchor.Y == 0 {
		return 1
	}
	o := 1 + r.drag.Y/r.anchor.Y
	if o < 0 {
		return 0
	}
	if o > 1 {
		return 1
	}
	return o
}

// beginExit flips the record into its exit animation: invisible and slid
// fully up off its anchor.
func (r *Record) beginExit() {
	r.mu.Lock()
	r.animating = false
	r.drag.Y = -r.anchor.Y
	r.mu.Unlock()
}

// setAnchor records the first reported layout and starts the entrance
// offset. Repeat reports return false and change nothing.
func (r *Record) setAnchor(origin Point) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.anchor != (Point{}) {
		return false
	}
	r.anchor = origin
	r.drag.Y = -origin.Y
	return true
}

func (r *Record) setDragY(y float64) {
	r.mu.Lock()
	r.drag.Y = y
	r.mu.Unlock()
}

// endDrag resolves a finished gesture: past the threshold it reports
// dismissal, otherwise it resets the offset to rest.
func (r *Record) endDrag(threshold float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if -r.drag.Y > threshold {
		return true
	}
	r.drag = Offset{}
	return false
}
