package repo

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/padraicbc/gymapi/models"
)

// CreateTrainer inserts a trainer and returns it with its id set.
func CreateTrainer(ctx context.Context, db bun.IDB, name string) (*models.Trainer, error) {
	t := &models.Trainer{Name: name}
	if _, err := db.NewInsert().Model(t).Exec(ctx); err != nil {
		return nil, fmt.Errorf("insert trainer: %w", err)
	}
	return t, nil
}

// ListTrainers returns all trainers ordered by id.
func ListTrainers(ctx context.Context, db bun.IDB) ([]models.Trainer, error) {
	trainers := make([]models.Trainer, 0)
	if err := db.NewSelect().Model(&trainers).OrderExpr("t.id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("select trainers: %w", err)
	}
	return trainers, nil
}
