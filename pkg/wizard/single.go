package wizard

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// BeforeAskFunc may pre-resolve a single-select menu without prompting,
// for example by deriving a default from already-answered menus. A nil
// result means "no opinion, ask normally".
type BeforeAskFunc func(*Context) *Entry

// AfterAskFunc post-processes the context after a single-select menu
// recorded its choice.
type AfterAskFunc func(*Context, *SingleSelect) error

// ParseFunc coerces a raw option value. Reserved for value
// transformation; the engine does not call it yet.
type ParseFunc func(string) (any, error)

// SingleSelect is a menu that records exactly one choice under Code.
type SingleSelect struct {
	// Code is the context key the chosen entry's code is written to.
	Code string
	// CLIName overrides the flag name, which defaults to Code.
	CLIName string
	Title   string
	// Description documents the menu on the CLI surface and in the
	// fallback dialog.
	Description string
	// Entries in declaration order; order is presentation order.
	Entries []*Entry

	BeforeAsk BeforeAskFunc
	AfterAsk  AfterAskFunc
	Parse     ParseFunc
}

// FlagName returns the CLI flag name for the menu.
func (m *SingleSelect) FlagName() string {
	if m.CLIName != "" {
		return m.CLIName
	}
	return m.Code
}

// NeedsInput reports true until a choice has been recorded under Code.
// A skipped menu keeps its key absent on purpose; the driver's single
// pass guarantees it is still asked at most once.
func (m *SingleSelect) NeedsInput(ctx *Context) bool {
	return !ctx.Has(m.Code)
}

// Collect resolves the menu's answer, in order of precedence: the
// BeforeAsk hook, a value already present in the context, then an
// interactive pick among the visible entries.
func (m *SingleSelect) Collect(ctx *Context, p Presenter) (Outcome, error) {
	var chosen *Entry
	if m.BeforeAsk != nil {
		chosen = m.BeforeAsk(ctx)
	}

	if chosen == nil {
		if raw, ok := ctx.Get(m.Code); ok {
			code, _ := raw.(string)
			chosen = findByCode(m.Entries, code)
			if chosen == nil {
				return 0, &UnknownOptionError{Menu: m.Code, Value: fmt.Sprint(raw)}
			}
		}
	}

	if chosen == nil {
		visible := visibleEntries(m.Entries, ctx)
		if len(visible) == 0 {
			return 0, &NoVisibleChoicesError{Menu: m.Code}
		}
		picked, err := p.SelectOne(Prompt{
			Title:       m.Title,
			Description: m.Description,
			Entries:     visible,
		})
		if err != nil {
			return 0, err
		}
		chosen = picked
	}

	if chosen.IsSkip() {
		return OutcomeSkipped, nil
	}

	m.record(ctx, chosen)
	return OutcomeChosen, nil
}

// PostProcess runs the AfterAsk hook, if any.
func (m *SingleSelect) PostProcess(ctx *Context) error {
	if m.AfterAsk != nil {
		return m.AfterAsk(ctx, m)
	}
	return nil
}

// RegisterFlags exposes the menu as a single choice flag.
func (m *SingleSelect) RegisterFlags(fs *pflag.FlagSet) {
	choices := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		choices[i] = e.FlagName()
	}
	usage := m.Description
	if usage == "" {
		usage = m.Title
	}
	fs.String(m.FlagName(), "", fmt.Sprintf("%s (one of: %s)", usage, strings.Join(choices, ", ")))
}

// Seed records a flag-supplied choice into the context. Hidden entries
// remain addressable here; hidden only affects presentation.
func (m *SingleSelect) Seed(fs *pflag.FlagSet, ctx *Context) error {
	flag := fs.Lookup(m.FlagName())
	if flag == nil || !flag.Changed {
		return nil
	}
	return m.Choose(ctx, flag.Value.String())
}

// Choose resolves value against the menu's entries, matching flag name or
// code case-insensitively, and records the match as the chosen entry.
func (m *SingleSelect) Choose(ctx *Context, value string) error {
	for _, e := range m.Entries {
		if strings.EqualFold(value, e.FlagName()) || strings.EqualFold(value, e.Code) {
			m.record(ctx, e)
			return nil
		}
	}
	return &UnknownOptionError{Menu: m.Code, Value: value}
}

// record writes the chosen entry's code under Code, forwards any
// additional payload verbatim under "<code>_info", and propagates the
// sticky legacy flag.
func (m *SingleSelect) record(ctx *Context, e *Entry) {
	ctx.Set(m.Code, e.Code)
	if e.AdditionalInfo != nil {
		ctx.Set(m.Code+"_info", e.AdditionalInfo)
	}
	if e.LegacyMode {
		ctx.ForceLegacyMode()
	}
}
