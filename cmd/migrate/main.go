// cmd/migrate/main.go
// Copies trainers, members and workout sessions from the legacy MySQL gym
// database into the database configured for the API.
//
// Usage:
//
//	LEGACY_MYSQL_DSN="user:pass@tcp(host:3306)/gym_db?parseTime=true" \
//	DB_PASS="pgpass" \
//	go run ./cmd/migrate
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"

	"github.com/padraicbc/gymapi/config"
	bundb "github.com/padraicbc/gymapi/db"
	"github.com/padraicbc/gymapi/models"
)

const batchSize = 500

func main() {
	var sourceDSN string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Import the legacy MySQL gym database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if sourceDSN == "" {
				sourceDSN = cfg.LegacyMySQLDSN
			}
			if sourceDSN == "" {
				return fmt.Errorf("LEGACY_MYSQL_DSN or --source required, e.g.: user:pass@tcp(host:3306)/gym_db?parseTime=true")
			}
			return migrate(cmd.Context(), cfg, sourceDSN)
		},
	}
	cmd.Flags().StringVar(&sourceDSN, "source", "", "legacy MySQL DSN (overrides LEGACY_MYSQL_DSN)")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func migrate(ctx context.Context, cfg *config.Config, sourceDSN string) error {
	// --- MySQL ---
	myDB, err := sql.Open("mysql", sourceDSN)
	if err != nil {
		return fmt.Errorf("open mysql: %w", err)
	}
	defer myDB.Close()
	myDB.SetMaxOpenConns(4)
	if err := myDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping mysql: %w", err)
	}
	log.Println("connected to MySQL")

	// --- target ---
	dst, err := bundb.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer dst.Close()
	log.Printf("connected to %s", dst.Dialect().Name())

	if err := bundb.CreateTables(ctx, dst); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	return copyAll(ctx, myDB, dst)
}

// copyAll runs every table step on one target connection so the session
// level FK switch applies to all inserts.
func copyAll(ctx context.Context, src *sql.DB, dst *bun.DB) error {
	conn, err := dst.Conn(ctx)
	if err != nil {
		return fmt.Errorf("target conn: %w", err)
	}
	defer conn.Close()

	name := dst.Dialect().Name()
	off, on := fkToggle(name)
	if _, err := conn.ExecContext(ctx, off); err != nil {
		return fmt.Errorf("disable FK: %w", err)
	}
	defer func() {
		if _, err := conn.ExecContext(ctx, on); err != nil {
			log.Printf("re-enable FK: %v", err)
		}
	}()

	steps := []struct {
		name string
		fn   func() (int, error)
	}{
		{"trainers", func() (int, error) { return migrateTrainers(ctx, src, conn, name) }},
		{"members", func() (int, error) { return migrateMembers(ctx, src, conn, name) }},
		{"Workout_Sessions", func() (int, error) { return migrateWorkoutSessions(ctx, src, conn, name) }},
	}

	for _, s := range steps {
		n, err := s.fn()
		if err != nil {
			return fmt.Errorf("migrate %s: %w", s.name, err)
		}
		log.Printf("%-17s %d rows migrated", s.name, n)
	}

	if name == dialect.PG {
		resetSequences(ctx, conn)
	}
	log.Println("migration complete")
	return nil
}

// fkToggle returns the statements disabling and re-enabling FK checks for
// the current session.
func fkToggle(name dialect.Name) (off, on string) {
	switch name {
	case dialect.MySQL:
		return "SET FOREIGN_KEY_CHECKS = 0", "SET FOREIGN_KEY_CHECKS = 1"
	case dialect.SQLite:
		return "PRAGMA foreign_keys = OFF", "PRAGMA foreign_keys = ON"
	default:
		return "SET session_replication_role = 'replica'", "SET session_replication_role = 'origin'"
	}
}

// bulkInsert inserts a batch, skipping rows that already exist (idempotent re-runs).
func bulkInsert[T any](ctx context.Context, db bun.IDB, name dialect.Name, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	q := db.NewInsert().Model(&rows)
	if name == dialect.MySQL {
		q = q.Ignore()
	} else {
		q = q.On("CONFLICT DO NOTHING")
	}
	_, err := q.Exec(ctx)
	return err
}

// copyRows streams query results from src into db in batches.
func copyRows[T any](
	ctx context.Context,
	src *sql.DB,
	db bun.IDB,
	name dialect.Name,
	query string,
	scan func(*sql.Rows) (T, error),
) (int, error) {
	rows, err := src.QueryContext(ctx, query)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	batch := make([]T, 0, batchSize)
	total := 0
	for rows.Next() {
		r, err := scan(rows)
		if err != nil {
			return total, err
		}
		batch = append(batch, r)
		if len(batch) >= batchSize {
			if err := bulkInsert(ctx, db, name, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := rows.Err(); err != nil {
		return total, err
	}
	if err := bulkInsert(ctx, db, name, batch); err != nil {
		return total, err
	}
	return total + len(batch), nil
}

// --- per-table migrations ---

func migrateTrainers(ctx context.Context, src *sql.DB, db bun.IDB, name dialect.Name) (int, error) {
	return copyRows(ctx, src, db, name,
		"SELECT id, name FROM trainers ORDER BY id",
		func(rows *sql.Rows) (models.Trainer, error) {
			var r models.Trainer
			err := rows.Scan(&r.ID, &r.Name)
			return r, err
		})
}

func migrateMembers(ctx context.Context, src *sql.DB, db bun.IDB, name dialect.Name) (int, error) {
	return copyRows(ctx, src, db, name,
		"SELECT id, name, age, trainer_id FROM members ORDER BY id",
		func(rows *sql.Rows) (models.Member, error) {
			var r models.Member
			err := rows.Scan(&r.ID, &r.Name, &r.Age, &r.TrainerID)
			return r, err
		})
}

func migrateWorkoutSessions(ctx context.Context, src *sql.DB, db bun.IDB, name dialect.Name) (int, error) {
	return copyRows(ctx, src, db, name,
		`SELECT id, date, duration_minutes, calories_burned, member_id, trainer_id
		 FROM Workout_Sessions ORDER BY id`,
		func(rows *sql.Rows) (models.WorkoutSession, error) {
			var r models.WorkoutSession
			err := rows.Scan(&r.ID, &r.Date, &r.DurationMinutes, &r.CaloriesBurned, &r.MemberID, &r.TrainerID)
			return r, err
		})
}

// resetSequences advances each PG sequence to MAX(id) so new inserts don't conflict.
func resetSequences(ctx context.Context, db bun.IDB) {
	for _, table := range []string{"trainers", "members", `"Workout_Sessions"`} {
		q := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 1))",
			table, table,
		)
		if _, err := db.ExecContext(ctx, q); err != nil {
			log.Printf("reset seq %s: %v", table, err)
		}
	}
	log.Println("sequences reset")
}
