package wizard

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

// ErrCancelled is returned when the user cancels an interactive prompt.
// Cancellation aborts the whole wizard pass; no partial context is handed
// downstream.
var ErrCancelled = errors.New("cancelled by user")

// UnknownOptionError reports a seeded value that matches no entry of the
// menu it was supplied for. This is a configuration error, not a user
// cancellation.
type UnknownOptionError struct {
	Menu  string
	Value string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown value %q for option %s", e.Value, e.Menu)
}

// NoVisibleChoicesError reports a menu that still needs input but has no
// visible entries and no BeforeAsk hook to resolve it. Failing fast here
// keeps a misdeclared menu from blocking the run on an empty picker.
type NoVisibleChoicesError struct {
	Menu string
}

func (e *NoVisibleChoicesError) Error() string {
	return fmt.Sprintf("menu %s needs input but has no visible choices", e.Menu)
}

// Outcome is the result of collecting one menu's answer.
type Outcome int

const (
	// OutcomeChosen means the user (or a hook, or a pre-seeded value)
	// selected one or more real entries.
	OutcomeChosen Outcome = iota
	// OutcomeSkipped means the menu was asked and explicitly skipped.
	// Its keys stay absent, and the driver does not re-prompt.
	OutcomeSkipped
)

// Prompt is the presentation request handed to a Presenter.
type Prompt struct {
	Title       string
	Description string
	// Entries holds only the currently visible entries, in declaration
	// order.
	Entries []*Entry
	// Multi selects between single-choice and multi-choice rendering.
	Multi bool
}

// Presenter renders a prompt and blocks until the user answers or cancels.
//
// Implementations return ErrCancelled when the user cancels, and may
// return SkipEntry (or a one-element slice of it) when the user declines
// to decide. They must release the terminal on every exit path.
type Presenter interface {
	SelectOne(p Prompt) (*Entry, error)
	SelectMany(p Prompt) ([]*Entry, error)
}

// Menu is one configuration decision point walked by the driver.
// SingleSelect and MultiSelect are the two implementations.
type Menu interface {
	// NeedsInput reports whether the menu still has unanswered keys.
	NeedsInput(ctx *Context) bool
	// Collect resolves the menu's answer into the context, prompting
	// through the presenter only when no hook or pre-seeded value
	// settles it first.
	Collect(ctx *Context, p Presenter) (Outcome, error)
	// PostProcess runs the menu's after-hook. The driver calls it
	// exactly once, strictly after a successful Collect.
	PostProcess(ctx *Context) error
	// RegisterFlags adds the menu's CLI surface to fs.
	RegisterFlags(fs *pflag.FlagSet)
	// Seed records values supplied through fs into the context before
	// the interactive pass begins.
	Seed(fs *pflag.FlagSet, ctx *Context) error
}

// visibleEntries filters entries whose Hidden predicate is absent or
// evaluates false against the current context.
func visibleEntries(entries []*Entry, ctx *Context) []*Entry {
	visible := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		if e.Hidden == nil || !e.Hidden(ctx) {
			visible = append(visible, e)
		}
	}
	return visible
}

// findByCode returns the entry with the given code, or nil.
func findByCode(entries []*Entry, code string) *Entry {
	for _, e := range entries {
		if e.Code == code {
			return e
		}
	}
	return nil
}
