package tui

import "github.com/colonyops/flare/internal/core/banner"

// FlagBinding links a presentation flag to a banner kind: while the
// flag is raised the banner is due, and consuming the binding lowers
// the flag and enqueues the banner exactly once.
type FlagBinding struct {
	flag *bool
	kind banner.Kind
}

func NewFlagBinding(flag *bool, kind banner.Kind) *FlagBinding {
	return &FlagBinding{flag: flag, kind: kind}
}

// Raised reports whether the bound flag is currently set.
func (fb *FlagBinding) Raised() bool {
	return fb.flag != nil && *fb.flag
}

// Consume lowers the flag and adds the bound banner to the store.
// Returns the created record, or nil when the flag was not raised.
func (fb *FlagBinding) Consume(store *banner.Store) *banner.Record {
	if !fb.Raised() {
		return nil
	}
	*fb.flag = false
	return store.Add(fb.kind)
}
