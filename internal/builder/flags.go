// Package builder assembles the non-interactive CLI surface for a menu
// set: every menu contributes flags to one cobra command, and supplied
// flags pre-seed the wizard context so fully-flagged invocations run
// with zero prompts.
package builder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fastgen/fastgen/pkg/wizard"
)

// FlagBuilder aggregates the flag surfaces of an ordered menu set.
type FlagBuilder struct {
	menus []wizard.Menu
}

// NewFlagBuilder creates a flag builder over the given menus.
func NewFlagBuilder(menus []wizard.Menu) *FlagBuilder {
	return &FlagBuilder{menus: menus}
}

// AddMenuFlags registers every menu's flags on the command.
func (fb *FlagBuilder) AddMenuFlags(cmd *cobra.Command) {
	for _, m := range fb.menus {
		m.RegisterFlags(cmd.Flags())
	}
}

// SeedContext records every supplied menu flag into the context. A
// choice value that matches no entry is a configuration error.
func (fb *FlagBuilder) SeedContext(cmd *cobra.Command, ctx *wizard.Context) error {
	for _, m := range fb.menus {
		if err := m.Seed(cmd.Flags(), ctx); err != nil {
			return fmt.Errorf("failed to apply flags: %w", err)
		}
	}
	return nil
}

// SeedValues records defaults-file values into the context, with the
// same entry resolution the flag surface uses. Keys that belong to no
// menu are recorded verbatim as extension keys.
func SeedValues(menus []wizard.Menu, values map[string]any, ctx *wizard.Context) error {
	for key, value := range values {
		claimed, err := applyValue(menus, key, value, ctx)
		if err != nil {
			return err
		}
		if !claimed {
			ctx.Set(key, value)
		}
	}
	return nil
}

// applyValue routes one key/value pair to the menu that owns it.
// Reports whether any menu claimed the key.
func applyValue(menus []wizard.Menu, key string, value any, ctx *wizard.Context) (bool, error) {
	for _, m := range menus {
		switch menu := m.(type) {
		case *wizard.SingleSelect:
			if menu.Code != key && menu.FlagName() != key {
				continue
			}
			s, ok := value.(string)
			if !ok {
				return true, fmt.Errorf("default for option %s must be a string, got %T", key, value)
			}
			return true, menu.Choose(ctx, s)
		case *wizard.MultiSelect:
			for _, e := range menu.Entries {
				if e.Code != key && e.FlagName() != key {
					continue
				}
				on, ok := value.(bool)
				if !ok {
					return true, fmt.Errorf("default for option %s must be a bool, got %T", key, value)
				}
				return true, menu.Choose(ctx, e.Code, on)
			}
		}
	}
	return false, nil
}
