package tui

import (
	"math"

	"github.com/colonyops/flare/internal/core/banner"
	"github.com/colonyops/flare/pkg/kv"
)

// BannerLayout is one banner's rendered content and screen rectangle for
// the current frame. Rectangles are in terminal cells.
type BannerLayout struct {
	Record  *banner.Record
	Content string
	X, Y    int
	W, H    int
}

// BannerController mediates between the banner store and the terminal:
// it computes the on-screen layout of the visible stack, reports first
// appearances back to the store, steps entrance/snap-back animations,
// and translates mouse gestures into the store's drag operations.
type BannerController struct {
	store    *banner.Store
	renderer *BannerRenderer

	layouts  []BannerLayout
	expanded *kv.Store[string, bool]
	ticking  bool

	// Active drag gesture, empty ID when none.
	dragID     string
	dragStartY int
	dragMoved  bool
}

func NewBannerController(store *banner.Store) *BannerController {
	return &BannerController{
		store:    store,
		renderer: NewBannerRenderer(),
		expanded: kv.New[string, bool](),
	}
}

// Refresh recomputes the layout of the visible stack for the given
// terminal width. Records rendered for the first time get their anchor
// origin reported to the store, which starts the slide-in entrance and
// arms auto-dismissal.
func (c *BannerController) Refresh(width int) {
	visible := c.store.Visible()

	x := max(width-bannerWidth-overlayRightPad, 0)
	restY := overlayTopMargin

	layouts := make([]BannerLayout, 0, len(visible))
	seen := make(map[string]bool, len(visible))

	for _, r := range visible {
		seen[r.ID] = true

		if !r.Anchored() {
			c.store.ViewAppeared(r, banner.Point{
				X: float64(x) * unitsPerRow,
				Y: float64(restY) * unitsPerRow,
			})
		}

		content := c.renderer.Render(r, c.Expanded(r.ID))
		h := contentHeight(content)

		if r.Opacity() > 0 {
			y := restY + int(math.Round(r.Drag().Y/unitsPerRow))
			layouts = append(layouts, BannerLayout{
				Record:  r,
				Content: content,
				X:       x,
				Y:       max(y, 0),
				W:       bannerWidth,
				H:       h,
			})
		}

		restY += h
	}

	// Forget presentation state for records that are gone.
	for _, id := range c.expanded.Keys() {
		if !seen[id] {
			c.expanded.Delete(id)
		}
	}
	if c.dragID != "" && !seen[c.dragID] {
		c.dragID = ""
	}

	c.layouts = layouts
}

// Layouts returns the current frame's banner layouts, newest first.
func (c *BannerController) Layouts() []BannerLayout {
	return c.layouts
}

// HasBanners reports whether anything is currently laid out.
func (c *BannerController) HasBanners() bool {
	return len(c.layouts) > 0
}

// Expanded reports whether the record is showing its full text.
func (c *BannerController) Expanded(id string) bool {
	v, _ := c.expanded.Get(id)
	return v
}

// MousePress begins a drag gesture when the press lands on a banner.
// Returns true when the press was consumed.
func (c *BannerController) MousePress(x, y int) bool {
	l := c.hit(x, y)
	if l == nil {
		return false
	}
	c.dragID = l.Record.ID
	c.dragStartY = y
	c.dragMoved = false
	return true
}

// MouseMotion applies drag translation to the grabbed banner. Upward
// rows map to negative drag units; the store clamps downward motion.
func (c *BannerController) MouseMotion(y int) {
	r := c.dragRecord()
	if r == nil {
		return
	}
	dy := y - c.dragStartY
	if dy != 0 {
		c.dragMoved = true
	}
	c.store.SetDrag(r, float64(dy)*unitsPerRow)
}

// MouseRelease ends the gesture: a press-and-release without motion is
// a tap that toggles the full-text view; a real drag is resolved by the
// store's threshold policy.
func (c *BannerController) MouseRelease() {
	r := c.dragRecord()
	id := c.dragID
	c.dragID = ""
	if r == nil {
		return
	}
	if !c.dragMoved {
		c.expanded.Set(id, !c.Expanded(id))
		return
	}
	c.store.DragEnd(r)
}

// Dragging reports whether a drag gesture is in progress.
func (c *BannerController) Dragging() bool {
	return c.dragID != ""
}

// Step advances entrance and snap-back animations by one tick: every
// settling banner's offset moves toward zero at a rate that covers the
// full anchor height in the store's exit duration. Returns true while
// anything is still moving.
func (c *BannerController) Step() bool {
	cfg := c.store.Config()
	active := false

	for _, r := range c.store.Visible() {
		if !r.Animating() || r.ID == c.dragID || r.Drag().Y == 0 {
			continue
		}

		step := r.Anchor().Y * float64(animTickInterval) / float64(cfg.ExitDuration)
		if step <= 0 {
			step = unitsPerRow
		}

		y := r.Drag().Y + step
		if y > 0 {
			y = 0
		}
		c.store.SetDrag(r, y)
		if y != 0 {
			active = true
		}
	}

	return active
}

// Ticking returns whether the animation timer is currently running.
func (c *BannerController) Ticking() bool {
	return c.ticking
}

// SetTicking sets the animation timer state.
func (c *BannerController) SetTicking(v bool) {
	c.ticking = v
}

// NeedsTick reports whether any banner still has animation work pending.
func (c *BannerController) NeedsTick() bool {
	for _, r := range c.store.Visible() {
		if r.Animating() && r.Drag().Y != 0 && r.ID != c.dragID {
			return true
		}
	}
	return false
}

func (c *BannerController) hit(x, y int) *BannerLayout {
	for i := range c.layouts {
		l := &c.layouts[i]
		if x >= l.X && x < l.X+l.W && y >= l.Y && y < l.Y+l.H {
			return l
		}
	}
	return nil
}

func (c *BannerController) dragRecord() *banner.Record {
	if c.dragID == "" {
		return nil
	}
	for _, r := range c.store.Visible() {
		if r.ID == c.dragID {
			return r
		}
	}
	return nil
}
