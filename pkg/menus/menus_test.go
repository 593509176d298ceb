package menus

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastgen/fastgen/pkg/wizard"
)

// failingPresenter fails the test on any prompt. It backs scenarios that
// must resolve without interaction.
type failingPresenter struct {
	t *testing.T
}

func (f failingPresenter) SelectOne(p wizard.Prompt) (*wizard.Entry, error) {
	f.t.Fatalf("unexpected prompt for %q", p.Title)
	return nil, nil
}

func (f failingPresenter) SelectMany(p wizard.Prompt) ([]*wizard.Entry, error) {
	f.t.Fatalf("unexpected prompt for %q", p.Title)
	return nil, nil
}

func menuEntries(m wizard.Menu) (name string, entries []*wizard.Entry) {
	switch menu := m.(type) {
	case *wizard.SingleSelect:
		return menu.Code, menu.Entries
	case *wizard.MultiSelect:
		return menu.Title, menu.Entries
	}
	return "", nil
}

// TestCatalogueCodesUnique tests that entry codes are unique within each
// menu and flag names are unique across the whole CLI surface.
func TestCatalogueCodesUnique(t *testing.T) {
	flagNames := map[string]string{}
	for _, m := range All() {
		name, entries := menuEntries(m)
		require.NotEmpty(t, entries, "menu %s has no entries", name)

		codes := map[string]bool{}
		for _, e := range entries {
			assert.False(t, codes[e.Code], "menu %s repeats code %s", name, e.Code)
			codes[e.Code] = true
		}

		if single, ok := m.(*wizard.SingleSelect); ok {
			owner, taken := flagNames[single.FlagName()]
			assert.False(t, taken, "flag --%s taken by both %s and %s", single.FlagName(), owner, name)
			flagNames[single.FlagName()] = name
		} else {
			for _, e := range entries {
				owner, taken := flagNames[e.FlagName()]
				assert.False(t, taken, "flag --%s taken by both %s and %s", e.FlagName(), owner, name)
				flagNames[e.FlagName()] = name
			}
		}
	}
}

// TestDatabaseEntriesCarryInfo tests the connection payloads forwarded
// to the renderer.
func TestDatabaseEntriesCarryInfo(t *testing.T) {
	db := Database()
	for _, e := range db.Entries {
		require.NotNil(t, e.AdditionalInfo, "db entry %s has no payload", e.Code)
		info, ok := e.AdditionalInfo.(*DatabaseInfo)
		require.True(t, ok, "db entry %s payload is %T", e.Code, e.AdditionalInfo)
		assert.Equal(t, e.Code, info.Name)
	}

	ctx := wizard.NewContext()
	require.NoError(t, db.Choose(ctx, "postgres"))

	raw, ok := ctx.Get("db_info")
	require.True(t, ok, "db_info was not forwarded")
	info := raw.(*DatabaseInfo)
	assert.Equal(t, "postgresql", info.Name)
	assert.Equal(t, 5432, info.Port)
	assert.Equal(t, "asyncpg", info.AsyncDriver)
}

// TestORMHiddenWithoutPostgres tests per-entry visibility rules.
func TestORMHiddenWithoutPostgres(t *testing.T) {
	orm := ORM()
	tests := []struct {
		db         string
		wantHidden []string
	}{
		{db: "postgresql", wantHidden: []string{"none"}},
		{db: "sqlite", wantHidden: []string{"none", "psycopg", "piccolo"}},
		{db: "none", wantHidden: []string{"none", "sqlalchemy", "tortoise", "ormar", "psycopg", "piccolo"}},
	}

	for _, tt := range tests {
		t.Run(tt.db, func(t *testing.T) {
			ctx := wizard.NewContext()
			ctx.Set("db", tt.db)

			var hidden []string
			for _, e := range orm.Entries {
				if e.Hidden != nil && e.Hidden(ctx) {
					hidden = append(hidden, e.Code)
				}
			}
			assert.ElementsMatch(t, tt.wantHidden, hidden)
		})
	}
}

// dbOnlyPresenter answers the database prompt with the given code and
// fails the test on any other prompt.
type dbOnlyPresenter struct {
	t       *testing.T
	pick    string
	prompts int
}

func (p *dbOnlyPresenter) SelectOne(pr wizard.Prompt) (*wizard.Entry, error) {
	p.prompts++
	if pr.Title != "Database" {
		p.t.Fatalf("unexpected prompt for %q", pr.Title)
	}
	for _, e := range pr.Entries {
		if e.Code == p.pick {
			return e, nil
		}
	}
	p.t.Fatalf("entry %q not presented", p.pick)
	return nil, nil
}

func (p *dbOnlyPresenter) SelectMany(pr wizard.Prompt) ([]*wizard.Entry, error) {
	p.t.Fatalf("unexpected prompt for %q", pr.Title)
	return nil, nil
}

// TestWizardWithoutDatabase tests the dependent-menu scenario end to
// end: once the database prompt answers "none", the ORM menu's entries
// are all hidden and its hook resolves it without another prompt, and
// the database hook pre-answers the dependent feature toggles.
func TestWizardWithoutDatabase(t *testing.T) {
	catalogue := All()
	ctx := wizard.NewContext()

	// Pre-seed everything except the database question itself.
	seed := map[string]string{"api_type": "rest", "ci_type": "none"}
	for _, m := range catalogue {
		switch menu := m.(type) {
		case *wizard.SingleSelect:
			if v, found := seed[menu.Code]; found {
				require.NoError(t, menu.Choose(ctx, v))
			}
		case *wizard.MultiSelect:
			for _, e := range menu.Entries {
				if e.Code != "enable_migrations" && e.Code != "add_dummy" {
					require.NoError(t, menu.Choose(ctx, e.Code, false))
				}
			}
		}
	}

	p := &dbOnlyPresenter{t: t, pick: "none"}
	result, err := wizard.Run(ctx, catalogue, p)
	require.NoError(t, err)
	assert.Equal(t, 1, p.prompts, "only the database menu should prompt")

	// ORM resolved through its hook, not a prompt.
	orm, err := result.String("orm")
	require.NoError(t, err)
	assert.Equal(t, "none", orm)

	migrations, err := result.Bool("enable_migrations")
	require.NoError(t, err)
	assert.False(t, migrations, "migrations enabled without a database")

	dummy, err := result.Bool("add_dummy")
	require.NoError(t, err)
	assert.False(t, dummy, "demo model enabled without a database")
}

// TestDatabaseDefaultsHookSkipsRealDB tests that a real database leaves
// the derived toggles to the features menu.
func TestDatabaseDefaultsHookSkipsRealDB(t *testing.T) {
	db := Database()
	ctx := wizard.NewContext()
	require.NoError(t, db.Choose(ctx, "sqlite"))
	require.NoError(t, db.PostProcess(ctx))

	assert.False(t, ctx.Has("enable_migrations"))
	assert.False(t, ctx.Has("add_dummy"))
}

// TestLegacyModeEntries tests that the catalogue's legacy entries force
// the sticky compatibility flag.
func TestLegacyModeEntries(t *testing.T) {
	t.Run("graphql api", func(t *testing.T) {
		ctx := wizard.NewContext()
		require.NoError(t, APIType().Choose(ctx, "graphql"))
		assert.True(t, ctx.LegacyMode())
	})

	t.Run("ormar orm", func(t *testing.T) {
		ctx := wizard.NewContext()
		require.NoError(t, ORM().Choose(ctx, "ormar"))
		assert.True(t, ctx.LegacyMode())

		// Later non-legacy choices never lower the flag.
		require.NoError(t, CI().Choose(ctx, "github"))
		assert.True(t, ctx.LegacyMode())
	})

	t.Run("rest api stays current", func(t *testing.T) {
		ctx := wizard.NewContext()
		require.NoError(t, APIType().Choose(ctx, "rest"))
		assert.False(t, ctx.LegacyMode())
	})
}

// TestCatalogueFullySeeded tests the zero-prompt property over the real
// catalogue: every flag supplied means nothing is asked.
func TestCatalogueFullySeeded(t *testing.T) {
	catalogue := All()
	ctx := wizard.NewContext()

	for _, m := range catalogue {
		switch menu := m.(type) {
		case *wizard.SingleSelect:
			choice := menu.Entries[len(menu.Entries)-1]
			require.NoError(t, menu.Choose(ctx, choice.Code))
		case *wizard.MultiSelect:
			for i, e := range menu.Entries {
				require.NoError(t, menu.Choose(ctx, e.Code, i%2 == 0))
			}
		}
	}

	result, err := wizard.Run(ctx, catalogue, failingPresenter{t})
	require.NoError(t, err)

	for _, m := range catalogue {
		name, _ := menuEntries(m)
		assert.False(t, m.NeedsInput(result), fmt.Sprintf("menu %s still needs input", name))
	}
}
