package banner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Opacity(t *testing.T) {
	tests := []struct {
		name      string
		animating bool
		anchorY   float64
		dragY     float64
		want      float64
	}{
		{"at rest", true, 100, 0, 1},
		{"half slid out", true, 100, -50, 0.5},
		{"past the anchor clamps at zero", true, 100, -150, 0},
		{"exit started is invisible", false, 100, -10, 0},
		{"exit started ignores offset", false, 100, 0, 0},
		{"anchor unknown is fully opaque", true, 0, -50, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecord(Success("", "msg"), time.Now())
			r.animating = tt.animating
			r.anchor.Y = tt.anchorY
			r.drag.Y = tt.dragY

			assert.InDelta(t, tt.want, r.Opacity(), 1e-9)
		})
	}
}

func TestRecord_Anchored(t *testing.T) {
	r := newRecord(Warning("", "msg"), time.Now())
	assert.False(t, r.Anchored())

	r.setAnchor(Point{Y: 12})
	assert.True(t, r.Anchored())
}
