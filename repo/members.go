package repo

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/padraicbc/gymapi/models"
)

// ListMembers returns every member. Order is whatever the store yields.
func ListMembers(ctx context.Context, db bun.IDB) ([]models.Member, error) {
	members := make([]models.Member, 0)
	if err := db.NewSelect().Model(&members).Scan(ctx); err != nil {
		return nil, fmt.Errorf("select members: %w", err)
	}
	return members, nil
}

// CreateMember inserts a member. trainerID is not checked for existence.
func CreateMember(ctx context.Context, db bun.IDB, name string, age, trainerID int) (*models.Member, error) {
	m := &models.Member{Name: name, Age: age, TrainerID: trainerID}
	if _, err := db.NewInsert().Model(m).Exec(ctx); err != nil {
		return nil, fmt.Errorf("insert member: %w", err)
	}
	return m, nil
}

// GetMember returns the member with id or ErrNotFound.
func GetMember(ctx context.Context, db bun.IDB, id int) (*models.Member, error) {
	m := &models.Member{}
	err := db.NewSelect().Model(m).Where("m.id = ?", id).Scan(ctx)
	if err != nil {
		return nil, notFound(err)
	}
	return m, nil
}

// UpdateMember overwrites name, age and trainer_id of member id.
func UpdateMember(ctx context.Context, db bun.IDB, id int, name string, age, trainerID int) (*models.Member, error) {
	exists, err := db.NewSelect().Model((*models.Member)(nil)).Where("m.id = ?", id).Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("lookup member %d: %w", id, err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	m := &models.Member{ID: id, Name: name, Age: age, TrainerID: trainerID}
	_, err = db.NewUpdate().Model(m).
		Column("name", "age", "trainer_id").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("update member %d: %w", id, err)
	}
	return m, nil
}

// DeleteMember removes member id. Its workout sessions are left in place.
func DeleteMember(ctx context.Context, db bun.IDB, id int) error {
	res, err := db.NewDelete().Model((*models.Member)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete member %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete member %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
