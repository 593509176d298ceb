// Package menus declares the configuration decision points for generated
// FastAPI projects.
//
// The declaration order is load-bearing: later menus' hooks and
// visibility expressions read keys set by earlier ones, and the wizard
// driver walks the list in a single pass.
package menus

import (
	"github.com/fastgen/fastgen/pkg/wizard"
)

// DatabaseInfo carries the connection defaults attached to a database
// entry. It is forwarded verbatim into the context as "db_info" and
// interpreted only by the template renderer.
type DatabaseInfo struct {
	Name        string `yaml:"name"`
	Image       string `yaml:"image,omitempty"`
	Driver      string `yaml:"driver,omitempty"`
	AsyncDriver string `yaml:"async_driver,omitempty"`
	DriverShort string `yaml:"driver_short,omitempty"`
	Port        int    `yaml:"port,omitempty"`
}

// ormNone resolves the ORM menu when no database was chosen. It is never
// presented; the BeforeAsk hook is its only path into the context.
var ormNone = &wizard.Entry{
	Code:        "none",
	UserView:    "Without ORM",
	Description: "Skip ORM integration entirely.",
	Hidden:      func(*wizard.Context) bool { return true },
}

// APIType selects the web API flavour of the generated project.
func APIType() *wizard.SingleSelect {
	return &wizard.SingleSelect{
		Code:        "api_type",
		CLIName:     "api-type",
		Title:       "API type",
		Description: "API type for the project",
		Entries: []*wizard.Entry{
			{
				Code:        "rest",
				UserView:    "REST API",
				Description: "Standard JSON API over HTTP.",
			},
			{
				Code:        "graphql",
				UserView:    "GraphQL API",
				Description: "GraphQL API built with strawberry.",
				// strawberry still depends on the pydantic v1 surface
				LegacyMode: true,
			},
		},
	}
}

// Database selects the primary datastore. Each real entry carries its
// connection defaults, forwarded into the context as db_info.
func Database() *wizard.SingleSelect {
	return &wizard.SingleSelect{
		Code:        "db",
		Title:       "Database",
		Description: "Database for the project",
		AfterAsk:    databaseDefaults,
		Entries: []*wizard.Entry{
			{
				Code:        "none",
				UserView:    "Without database",
				Description: "The project runs without persistent storage.",
				AdditionalInfo: &DatabaseInfo{
					Name: "none",
				},
			},
			{
				Code:        "sqlite",
				UserView:    "SQLite",
				Description: "File-based database, no server required.",
				AdditionalInfo: &DatabaseInfo{
					Name:        "sqlite",
					AsyncDriver: "aiosqlite",
					DriverShort: "sqlite",
				},
			},
			{
				Code:        "mysql",
				UserView:    "MySQL",
				Description: "MySQL 8 running in docker-compose.",
				AdditionalInfo: &DatabaseInfo{
					Name:        "mysql",
					Image:       "bitnami/mysql:8.0.30",
					Driver:      "mysql",
					AsyncDriver: "aiomysql",
					DriverShort: "mysql",
					Port:        3306,
				},
			},
			{
				Code:        "postgresql",
				CLIName:     "postgres",
				UserView:    "PostgreSQL",
				Description: "PostgreSQL 13 running in docker-compose.",
				AdditionalInfo: &DatabaseInfo{
					Name:        "postgresql",
					Image:       "postgres:13.8-bullseye",
					Driver:      "postgresql",
					AsyncDriver: "asyncpg",
					DriverShort: "postgres",
					Port:        5432,
				},
			},
		},
	}
}

// ORM selects the database toolkit. Every entry is hidden when the
// database menu answered "none"; the BeforeAsk hook resolves the
// reserved "none" entry in that case so the menu never presents an
// empty picker.
func ORM() *wizard.SingleSelect {
	return &wizard.SingleSelect{
		Code:        "orm",
		Title:       "ORM",
		Description: "ORM for communicating with the database",
		BeforeAsk:   defaultORM,
		Entries: []*wizard.Entry{
			ormNone,
			{
				Code:        "sqlalchemy",
				UserView:    "SQLAlchemy",
				Description: "SQLAlchemy 2 with async sessions and alembic migrations.",
				Hidden:      wizard.HiddenWhen(`db == "none"`),
			},
			{
				Code:        "tortoise",
				UserView:    "Tortoise ORM",
				Description: "Async ORM inspired by Django, with aerich migrations.",
				Hidden:      wizard.HiddenWhen(`db == "none"`),
			},
			{
				Code:        "ormar",
				UserView:    "Ormar",
				Description: "Async mini ORM on top of databases and pydantic.",
				Hidden:      wizard.HiddenWhen(`db == "none"`),
				// ormar has no pydantic v2 release
				LegacyMode: true,
			},
			{
				Code:        "psycopg",
				UserView:    "Psycopg 3",
				Description: "Raw async queries through the native PostgreSQL driver.",
				Hidden:      wizard.HiddenWhen(`db != "postgresql"`),
			},
			{
				Code:        "piccolo",
				UserView:    "Piccolo",
				Description: "Query builder and ORM with its own migration engine.",
				Hidden:      wizard.HiddenWhen(`db != "postgresql"`),
			},
		},
	}
}

// CI selects the continuous-integration configuration shipped with the
// project.
func CI() *wizard.SingleSelect {
	return &wizard.SingleSelect{
		Code:        "ci_type",
		CLIName:     "ci",
		Title:       "CI",
		Description: "CI configuration to bundle with the project",
		Entries: []*wizard.Entry{
			{
				Code:        "none",
				UserView:    "Without CI",
				Description: "No CI configuration is generated.",
			},
			{
				Code:        "gitlab_ci",
				CLIName:     "gitlab",
				UserView:    "GitLab CI",
				Description: "Linting and tests in .gitlab-ci.yml.",
			},
			{
				Code:        "github",
				UserView:    "GitHub Actions",
				Description: "Linting and tests as GitHub workflows.",
			},
		},
	}
}

// Features is the multi-select of optional project add-ons. Unchosen
// entries stay absent from the context, which the renderer reads as
// disabled.
func Features() *wizard.MultiSelect {
	return &wizard.MultiSelect{
		Title:       "Features",
		Description: "Optional features for the project",
		Entries: []*wizard.Entry{
			{
				Code:        "enable_redis",
				CLIName:     "redis",
				UserView:    "Redis support",
				Description: "Async redis client and a connection pool on app startup.",
			},
			{
				Code:        "enable_rmq",
				CLIName:     "rabbit",
				UserView:    "RabbitMQ support",
				Description: "aio-pika client with connection and channel pools.",
			},
			{
				Code:        "enable_migrations",
				CLIName:     "migrations",
				UserView:    "Database migrations",
				Description: "Migration tooling matching the chosen ORM.",
				Hidden:      wizard.HiddenWhen(`db == "none"`),
			},
			{
				Code:        "add_dummy",
				CLIName:     "dummy",
				UserView:    "Demo model",
				Description: "Example model with CRUD routes to start from.",
				Hidden:      wizard.HiddenWhen(`db == "none"`),
			},
			{
				Code:        "enable_kube",
				CLIName:     "kube",
				UserView:    "Kubernetes config",
				Description: "Deployment manifests for running the project in kubernetes.",
			},
			{
				Code:        "enable_routers",
				CLIName:     "routers",
				UserView:    "Example routers",
				Description: "Echo and monitoring routers wired into the app.",
			},
			{
				Code:        "self_hosted_swagger",
				CLIName:     "swagger",
				UserView:    "Self-hosted swagger",
				Description: "Swagger UI served from the application itself.",
			},
			{
				Code:        "prometheus_enabled",
				CLIName:     "prometheus",
				UserView:    "Prometheus metrics",
				Description: "Request metrics exposed for scraping.",
			},
			{
				Code:        "sentry_enabled",
				CLIName:     "sentry",
				UserView:    "Sentry integration",
				Description: "Error reporting through the sentry SDK.",
			},
			{
				Code:        "otlp_enabled",
				CLIName:     "otlp",
				UserView:    "OpenTelemetry tracing",
				Description: "Traces exported over OTLP.",
			},
			{
				Code:        "traefik_labels",
				CLIName:     "traefik",
				UserView:    "Traefik labels",
				Description: "docker-compose labels for traefik routing.",
			},
			{
				Code:        "enable_taskiq",
				CLIName:     "taskiq",
				UserView:    "Taskiq support",
				Description: "Distributed task queue with a worker entrypoint.",
			},
			{
				Code:        "gunicorn",
				UserView:    "Gunicorn server",
				Description: "Production gunicorn runner instead of bare uvicorn.",
			},
		},
	}
}

// All returns the full menu catalogue in dependency order.
func All() []wizard.Menu {
	return []wizard.Menu{
		APIType(),
		Database(),
		ORM(),
		CI(),
		Features(),
	}
}
