package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/colonyops/flare/internal/core/styles"
)

type keyMap struct {
	Success    key.Binding
	Warning    key.Binding
	Error      key.Binding
	AddMany    key.Binding
	Flag       key.Binding
	ClearFront key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Success: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "success banner"),
		),
		Warning: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "warning banner"),
		),
		Error: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "error banner"),
		),
		AddMany: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "burst of banners"),
		),
		Flag: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "raise flag"),
		),
		ClearFront: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss newest"),
		),
		Quit: key.NewBinding(
			key.WithKeys(keyQuit, keyCtrlC),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) helpLine() string {
	bindings := []key.Binding{
		k.Success, k.Warning, k.Error, k.AddMany, k.Flag, k.ClearFront, k.Quit,
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.Help().Key+": "+b.Help().Desc)
	}

	return styles.HelpStyle.Render(strings.Join(parts, " • "))
}
