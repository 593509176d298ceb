package interactive

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/fastgen/fastgen/pkg/wizard"
)

// MenuPresenter renders prompts with pterm's interactive select and
// multiselect printers.
type MenuPresenter struct {
	// MaxHeight caps the number of list rows rendered at once.
	MaxHeight int
}

// NewMenuPresenter creates a MenuPresenter with default sizing.
func NewMenuPresenter() *MenuPresenter {
	return &MenuPresenter{MaxHeight: 10}
}

// SelectOne renders a single-choice list and blocks until the user picks
// an entry or interrupts. Interrupt maps to wizard.ErrCancelled.
func (m *MenuPresenter) SelectOne(p wizard.Prompt) (*wizard.Entry, error) {
	labels, byLabel := labelEntries(p.Entries)

	if p.Description != "" {
		pterm.Info.Println(p.Description)
	}

	cancelled := false
	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(labels).
		WithMaxHeight(m.MaxHeight).
		WithFilter(true).
		WithOnInterruptFunc(func() { cancelled = true }).
		Show(p.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}
	if cancelled {
		return nil, wizard.ErrCancelled
	}

	entry, ok := byLabel[choice]
	if !ok {
		return nil, wizard.ErrCancelled
	}
	return entry, nil
}

// SelectMany renders a multi-choice list and blocks until the user
// confirms a subset or interrupts. Confirming an empty subset is a skip.
func (m *MenuPresenter) SelectMany(p wizard.Prompt) ([]*wizard.Entry, error) {
	labels, byLabel := labelEntries(p.Entries)

	if p.Description != "" {
		pterm.Info.Println(p.Description)
	}

	cancelled := false
	choices, err := pterm.DefaultInteractiveMultiselect.
		WithOptions(labels).
		WithMaxHeight(m.MaxHeight).
		WithFilter(false).
		WithOnInterruptFunc(func() { cancelled = true }).
		Show(p.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}
	if cancelled {
		return nil, wizard.ErrCancelled
	}
	if len(choices) == 0 {
		return []*wizard.Entry{wizard.SkipEntry}, nil
	}

	entries := make([]*wizard.Entry, 0, len(choices))
	for _, choice := range choices {
		if entry, ok := byLabel[choice]; ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// labelEntries builds the rendered labels and the reverse mapping used to
// resolve pterm's string result back to an entry. The description rides
// along in gray as the preview detail.
func labelEntries(entries []*wizard.Entry) ([]string, map[string]*wizard.Entry) {
	labels := make([]string, len(entries))
	byLabel := make(map[string]*wizard.Entry, len(entries))
	for i, e := range entries {
		label := e.UserView
		if e.Description != "" {
			label = fmt.Sprintf("%s %s", e.UserView, pterm.Gray("("+e.Description+")"))
		}
		labels[i] = label
		byLabel[label] = e
	}
	return labels, byLabel
}
