package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// dialect fills the type placeholders of the schema for one driver.
type dialect struct {
	name     string
	replacer *strings.Replacer
}

var (
	sqliteDialect = dialect{
		name: "sqlite3",
		replacer: strings.NewReplacer(
			"{{pk}}", "INTEGER PRIMARY KEY AUTOINCREMENT",
			"{{bool}}", "INTEGER",
			"{{false}}", "0",
			"{{ts}}", "DATETIME",
			"{{real}}", "REAL",
		),
	}

	postgresDialect = dialect{
		name: "postgres",
		replacer: strings.NewReplacer(
			"{{pk}}", "BIGSERIAL PRIMARY KEY",
			"{{bool}}", "BOOLEAN",
			"{{false}}", "FALSE",
			"{{ts}}", "TIMESTAMPTZ",
			"{{real}}", "DOUBLE PRECISION",
		),
	}
)

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case "sqlite3":
		return sqliteDialect, nil
	case "postgres":
		return postgresDialect, nil
	default:
		return dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// References between tables are logical only. Hard deletes leave dependent
// rows in place, so no foreign key constraints are declared.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         {{pk}},
		name       TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		password   TEXT NOT NULL,
		role       TEXT NOT NULL DEFAULT 'buyer',
		created_at {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS properties (
		id          {{pk}},
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price       {{real}} NOT NULL,
		location    TEXT NOT NULL,
		type        TEXT NOT NULL,
		images      TEXT NOT NULL DEFAULT '[]',
		seller_id   INTEGER NOT NULL,
		is_approved {{bool}} NOT NULL DEFAULT {{false}},
		created_at  {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS favorites (
		user_id     INTEGER NOT NULL,
		property_id INTEGER NOT NULL,
		PRIMARY KEY (user_id, property_id)
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id          {{pk}},
		sender_id   INTEGER NOT NULL,
		receiver_id INTEGER NOT NULL,
		property_id INTEGER NOT NULL,
		content     TEXT NOT NULL,
		created_at  {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id          {{pk}},
		user_id     INTEGER NOT NULL,
		property_id INTEGER,
		amount      {{real}} NOT NULL,
		type        TEXT NOT NULL,
		status      TEXT NOT NULL,
		created_at  {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS reports (
		id          {{pk}},
		property_id INTEGER NOT NULL,
		user_id     INTEGER NOT NULL,
		reason      TEXT NOT NULL,
		created_at  {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS announcements (
		id         {{pk}},
		title      TEXT NOT NULL,
		content    TEXT NOT NULL,
		created_at {{ts}} NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_seller ON properties (seller_id)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_sender ON messages (sender_id)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_receiver ON messages (receiver_id)`,
	`CREATE INDEX IF NOT EXISTS idx_reports_property ON reports (property_id)`,
}

// Columns added after the first release. Existing databases pick them up at
// the next start.
var columnMigrations = []struct {
	table, column, definition string
}{
	{"users", "status", "TEXT NOT NULL DEFAULT 'active'"},
	{"properties", "status", "TEXT NOT NULL DEFAULT 'for sale'"},
	{"properties", "is_featured", "{{bool}} NOT NULL DEFAULT {{false}}"},
	{"properties", "details", "TEXT"},
	{"properties", "phone_contact", "TEXT NOT NULL DEFAULT ''"},
	{"properties", "email_contact", "TEXT NOT NULL DEFAULT ''"},
	{"payments", "method", "TEXT NOT NULL DEFAULT 'card'"},
	{"payments", "plan", "TEXT NOT NULL DEFAULT ''"},
	{"reports", "resolved", "{{bool}} NOT NULL DEFAULT {{false}}"},
}

// Migrate creates the schema for the connection's driver. It is safe to run
// on every start.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	d, err := dialectFor(db.DriverName())
	if err != nil {
		return err
	}

	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, d.replacer.Replace(stmt)); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}

	for _, cm := range columnMigrations {
		definition := d.replacer.Replace(cm.definition)
		if err := addColumnIfNotExists(ctx, db, d, cm.table, cm.column, definition); err != nil {
			return fmt.Errorf("adding %s.%s: %w", cm.table, cm.column, err)
		}
	}

	logrus.WithField("driver", d.name).Debug("database schema is up to date")
	return nil
}

func addColumnIfNotExists(ctx context.Context, db *sqlx.DB, d dialect, table, column, definition string) error {
	if d.name == "postgres" {
		_, err := db.ExecContext(ctx, fmt.Sprintf("ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s %s", table, column, definition))
		return err
	}

	rows, err := db.QueryxContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return fmt.Errorf("checking table info: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cid int
		var name, colType string
		var notNull, pk int
		var dfltValue interface{}
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return fmt.Errorf("scanning column info: %w", err)
		}
		if name == column {
			return nil
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating columns: %w", err)
	}
	rows.Close()

	_, err = db.ExecContext(ctx, fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, definition))
	return err
}
