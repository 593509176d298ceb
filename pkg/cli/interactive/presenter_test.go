package interactive

import (
	"os"
	"testing"

	"github.com/fastgen/fastgen/pkg/wizard"
)

// TestDetectFallsBackWithoutTTY tests that non-terminal streams select
// the plain dialog strategy.
func TestDetectFallsBackWithoutTTY(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	p := Detect(r, w)
	if _, ok := p.(*DialogPresenter); !ok {
		t.Errorf("Detect() on pipes = %T, want *DialogPresenter", p)
	}
}

// TestNonInteractive tests that the no-input strategy fails every
// prompt with the menu named in the error.
func TestNonInteractive(t *testing.T) {
	p := NonInteractive{}
	prompt := wizard.Prompt{Title: "Database"}

	if _, err := p.SelectOne(prompt); err == nil {
		t.Error("SelectOne() did not fail with prompts disabled")
	}
	if _, err := p.SelectMany(prompt); err == nil {
		t.Error("SelectMany() did not fail with prompts disabled")
	}
}
