package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	_ "modernc.org/sqlite"

	"github.com/padraicbc/gymapi/config"
	"github.com/padraicbc/gymapi/models"
)

// Setup opens a database connection using the provided config and exits on failure.
func Setup(cfg *config.Config) *bun.DB {
	db, err := Open(context.Background(), cfg)
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}
	return db
}

// Open connects to the configured dialect, applies pool settings and pings.
func Open(ctx context.Context, cfg *config.Config) (*bun.DB, error) {
	var db *bun.DB

	switch cfg.DBDriver {
	case config.DriverMySQL:
		sqldb, err := sql.Open("mysql", cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("open mysql: %w", err)
		}
		db = bun.NewDB(sqldb, mysqldialect.New())
	case config.DriverSQLite:
		sqldb, err := sql.Open("sqlite", cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		db = bun.NewDB(sqldb, sqlitedialect.New())
	case config.DriverPostgres, "":
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN())))
		db = bun.NewDB(sqldb, pgdialect.New())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", db.Dialect().Name(), err)
	}

	return db, nil
}

// table pairs a model with the foreign keys declared on its table.
type table struct {
	model       interface{}
	foreignKeys []string
}

// CreateTables creates all tables in dependency order. Foreign keys are
// declared without cascade rules.
func CreateTables(ctx context.Context, db bun.IDB) error {
	tables := []table{
		{model: (*models.Trainer)(nil)},
		{
			model: (*models.Member)(nil),
			foreignKeys: []string{
				`(trainer_id) REFERENCES trainers (id)`,
			},
		},
		{
			model: (*models.WorkoutSession)(nil),
			foreignKeys: []string{
				`(member_id) REFERENCES members (id)`,
				`(trainer_id) REFERENCES trainers (id)`,
			},
		},
	}

	for _, t := range tables {
		q := db.NewCreateTable().Model(t.model).IfNotExists()
		for _, fk := range t.foreignKeys {
			q = q.ForeignKey(fk)
		}
		if _, err := q.Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", t.model, err)
		}
	}

	return nil
}
