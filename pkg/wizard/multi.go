package wizard

import (
	"github.com/spf13/pflag"
)

// BeforeAskManyFunc may pre-resolve a multi-select menu without
// prompting. A nil result means "no opinion, ask normally".
type BeforeAskManyFunc func(*Context) []*Entry

// MultiSelect is a menu of independent toggles. Each chosen entry's own
// code becomes a boolean key in the context; unchosen entries stay
// absent, which downstream consumers read as "not selected".
type MultiSelect struct {
	Title       string
	Description string
	Entries     []*Entry

	BeforeAsk BeforeAskManyFunc
}

// NeedsInput reports true while any entry's key is absent from the
// context.
func (m *MultiSelect) NeedsInput(ctx *Context) bool {
	for _, e := range m.Entries {
		if !ctx.Has(e.Code) {
			return true
		}
	}
	return false
}

// Collect resolves the menu's answer: the BeforeAsk hook if it yields a
// list, otherwise an interactive multi-pick among the visible entries
// that are not already enabled.
func (m *MultiSelect) Collect(ctx *Context, p Presenter) (Outcome, error) {
	var chosen []*Entry
	if m.BeforeAsk != nil {
		chosen = m.BeforeAsk(ctx)
	}

	if chosen == nil {
		unknown := make([]*Entry, 0, len(m.Entries))
		for _, e := range m.Entries {
			if !ctx.Truthy(e.Code) {
				unknown = append(unknown, e)
			}
		}
		visible := visibleEntries(unknown, ctx)
		if len(visible) == 0 {
			// Every undecided entry is hidden under the current
			// context; there is nothing to present.
			return OutcomeSkipped, nil
		}
		picked, err := p.SelectMany(Prompt{
			Title:       m.Title,
			Description: m.Description,
			Entries:     visible,
			Multi:       true,
		})
		if err != nil {
			return 0, err
		}
		chosen = picked
	}

	if len(chosen) == 1 && chosen[0].IsSkip() {
		return OutcomeSkipped, nil
	}

	for _, e := range chosen {
		ctx.Set(e.Code, true)
		if e.LegacyMode {
			ctx.ForceLegacyMode()
		}
	}
	return OutcomeChosen, nil
}

// PostProcess is a no-op for multi-select menus.
func (m *MultiSelect) PostProcess(ctx *Context) error {
	return nil
}

// RegisterFlags exposes one boolean flag per entry.
func (m *MultiSelect) RegisterFlags(fs *pflag.FlagSet) {
	for _, e := range m.Entries {
		fs.Bool(e.FlagName(), false, e.UserView)
	}
}

// Seed records explicitly supplied entry flags. An explicit false is a
// recorded outcome, distinct from an absent key.
func (m *MultiSelect) Seed(fs *pflag.FlagSet, ctx *Context) error {
	for _, e := range m.Entries {
		flag := fs.Lookup(e.FlagName())
		if flag == nil || !flag.Changed {
			continue
		}
		on, err := fs.GetBool(e.FlagName())
		if err != nil {
			return err
		}
		if err := m.Choose(ctx, e.Code, on); err != nil {
			return err
		}
	}
	return nil
}

// Choose records an explicit outcome for the entry with the given code.
func (m *MultiSelect) Choose(ctx *Context, code string, on bool) error {
	e := findByCode(m.Entries, code)
	if e == nil {
		return &UnknownOptionError{Menu: m.Title, Value: code}
	}
	ctx.Set(e.Code, on)
	if on && e.LegacyMode {
		ctx.ForceLegacyMode()
	}
	return nil
}
