package wizard

// Run walks menus in declared order, asking each one only if it still
// needs input, and returns the finished context.
//
// The pass makes no attempt to reorder or retry: a menu's hooks and
// visibility predicates may only read keys set by menus that appear
// earlier in the list. Each menu is visited at most once, so a skipped
// menu is never re-prompted even though its keys stay absent.
//
// Any error aborts the whole pass and no context is returned; user
// cancellation surfaces as ErrCancelled.
func Run(ctx *Context, menus []Menu, p Presenter) (*Context, error) {
	for _, m := range menus {
		if !m.NeedsInput(ctx) {
			continue
		}
		if _, err := m.Collect(ctx, p); err != nil {
			return nil, err
		}
		if err := m.PostProcess(ctx); err != nil {
			return nil, err
		}
	}
	return ctx, nil
}
