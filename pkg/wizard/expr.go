package wizard

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// HiddenWhen compiles cond into a visibility predicate evaluated against
// the context snapshot, so menu declarations can state dependencies
// declaratively, e.g. HiddenWhen(`db == "none"`).
//
// Context keys that have not been set yet evaluate as nil. HiddenWhen
// panics on a syntactically invalid expression, like regexp.MustCompile;
// menu catalogues are declared at init time, so this fails the process
// before any prompt is shown. A runtime evaluation error leaves the
// entry visible.
func HiddenWhen(cond string) Predicate {
	program, err := expr.Compile(cond, expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		panic(fmt.Sprintf("wizard: invalid visibility expression %q: %v", cond, err))
	}
	return func(ctx *Context) bool {
		return runHidden(program, ctx)
	}
}

func runHidden(program *vm.Program, ctx *Context) bool {
	out, err := expr.Run(program, ctx.Snapshot())
	if err != nil {
		return false
	}
	hidden, ok := out.(bool)
	return ok && hidden
}
