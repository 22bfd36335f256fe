package banner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_constructors_default_persistence(t *testing.T) {
	assert.False(t, Success("t", "m").Persistent)
	assert.False(t, Warning("t", "m").Persistent)
	assert.True(t, Error("t", "m").Persistent, "errors stay until dismissed")
}

func TestLevel_Icon(t *testing.T) {
	for _, l := range []Level{LevelSuccess, LevelWarning, LevelError} {
		assert.NotEmpty(t, l.Icon())
		assert.True(t, l.Valid())
	}
	assert.False(t, Level("debug").Valid())
}
