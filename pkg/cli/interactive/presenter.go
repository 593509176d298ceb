// Package interactive provides the terminal presentation strategies for
// wizard menus.
//
// Two strategies implement wizard.Presenter: a rich pterm menu with
// fuzzy filtering for real terminals, and a plain numbered dialog for
// everything else (pipes, dumb terminals, CI). Detect picks one at
// startup; the engine is indifferent to which is active.
package interactive

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/fastgen/fastgen/pkg/wizard"
)

// Detect chooses a presentation strategy by environment capability:
// the rich pterm menu when both in and out are terminals, the plain
// dialog otherwise.
func Detect(in *os.File, out *os.File) wizard.Presenter {
	if term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd())) {
		return NewMenuPresenter()
	}
	return NewDialogPresenter(in, out)
}

// NonInteractive fails every prompt. It backs the --no-input mode, where
// every menu must be satisfied by flags or defaults before the pass.
type NonInteractive struct{}

// SelectOne always fails: prompts are disabled.
func (NonInteractive) SelectOne(p wizard.Prompt) (*wizard.Entry, error) {
	return nil, fmt.Errorf("option %q requires input but interactive prompts are disabled", p.Title)
}

// SelectMany always fails: prompts are disabled.
func (NonInteractive) SelectMany(p wizard.Prompt) ([]*wizard.Entry, error) {
	return nil, fmt.Errorf("option %q requires input but interactive prompts are disabled", p.Title)
}
