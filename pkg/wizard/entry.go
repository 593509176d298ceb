// Package wizard implements the menu-driven configuration engine.
//
// A wizard run walks an ordered list of menus. Each menu describes one
// configuration decision point: a single choice (for example which database
// to use) or a set of independent toggles (optional features). Answers are
// accumulated in a Context, which the driver hands to the downstream
// template renderer once every menu has been resolved.
//
// Menus are declarative: entries carry visibility predicates and optional
// hooks, and the driver decides which menus still need input, in declared
// order. A menu may only depend on context keys set by menus that appear
// earlier in the list; the driver never reorders or retries.
package wizard

// Predicate inspects the context, typically to decide entry visibility.
type Predicate func(*Context) bool

// Entry is one selectable value within a menu.
type Entry struct {
	// Code is the stable identifier, unique within the owning menu.
	// It is the value (single-select) or key (multi-select) written
	// into the context when the entry is chosen.
	Code string
	// CLIName overrides the flag name exposed on the CLI surface.
	CLIName string
	// UserView is the label shown in the picker.
	UserView string
	// Description is the long-form detail shown alongside the label.
	Description string
	// Hidden excludes the entry from presentation when it evaluates
	// true. A hidden entry stays addressable through flags and hooks.
	Hidden Predicate
	// AdditionalInfo is an opaque payload forwarded verbatim into the
	// context when the entry is chosen. The engine never interprets it.
	AdditionalInfo any
	// LegacyMode forces the sticky compatibility flag when the entry
	// is chosen.
	LegacyMode bool
}

// FlagName returns the name the entry exposes on the CLI surface:
// CLIName when set, Code otherwise.
func (e *Entry) FlagName() string {
	if e.CLIName != "" {
		return e.CLIName
	}
	return e.Code
}

// SkipEntry is the reserved "user skipped this menu" sentinel. It is never
// rendered as a real choice; presenters return it when the user declines
// to decide, and menus translate it into OutcomeSkipped.
var SkipEntry = &Entry{
	Code:        "skip",
	UserView:    "skip",
	Description: "skip",
}

// IsSkip reports whether the entry is the reserved skip sentinel.
func (e *Entry) IsSkip() bool {
	return e == SkipEntry
}
