package menus

import (
	"github.com/fastgen/fastgen/pkg/wizard"
)

// defaultORM resolves the ORM menu without prompting when no database
// was chosen: every real ORM entry is hidden in that case, so the menu
// would otherwise present an empty picker.
func defaultORM(ctx *wizard.Context) *wizard.Entry {
	db, err := ctx.String("db")
	if err != nil {
		return nil
	}
	if db == "none" {
		return ormNone
	}
	return nil
}

// databaseDefaults derives the follow-up keys that only make sense with
// a real database. With db == "none" the migration and demo-model
// toggles are answered here so the features menu never offers them.
func databaseDefaults(ctx *wizard.Context, _ *wizard.SingleSelect) error {
	db, err := ctx.String("db")
	if err != nil {
		// The menu was skipped; leave the derived keys unanswered.
		return nil
	}
	if db == "none" {
		ctx.Set("enable_migrations", false)
		ctx.Set("add_dummy", false)
	}
	return nil
}
