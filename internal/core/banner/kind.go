// Package banner implements the lifecycle of transient in-app banners:
// the ordered collection of active banners, the visible-subset policy,
// timed expiry, and the drag-to-dismiss interaction state. Rendering is
// owned by the presentation layer; this package only tracks what should
// be visible and reacts to interaction callbacks.
package banner

// Level identifies the severity variant of a banner.
type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Icon returns the display icon for the level.
func (l Level) Icon() string {
	switch l {
	case LevelSuccess:
		return "✓"
	case LevelWarning:
		return "▲"
	case LevelError:
		return "✗"
	default:
		return "•"
	}
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelSuccess, LevelWarning, LevelError:
		return true
	default:
		return false
	}
}

// Kind is the immutable payload of a banner. Two Kind values that compare
// equal carry the same content; records still get distinct synthetic IDs
// so identical banners never collide on removal.
type Kind struct {
	Level      Level
	Title      string // optional
	Message    string // required by callers; empty renders empty
	Persistent bool   // no auto-expiry when true
}

// Success returns a non-persistent success Kind.
func Success(title, message string) Kind {
	return Kind{Level: LevelSuccess, Title: title, Message: message}
}

// Warning returns a non-persistent warning Kind.
func Warning(title, message string) Kind {
	return Kind{Level: LevelWarning, Title: title, Message: message}
}

// Error returns an error Kind. Error banners are persistent by default
// and stay on screen until manually dismissed.
func Error(title, message string) Kind {
	return Kind{Level: LevelError, Title: title, Message: message, Persistent: true}
}
