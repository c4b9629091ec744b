package repo

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/padraicbc/gymapi/models"
)

// ListWorkoutSessions returns every workout session.
func ListWorkoutSessions(ctx context.Context, db bun.IDB) ([]models.WorkoutSession, error) {
	sessions := make([]models.WorkoutSession, 0)
	if err := db.NewSelect().Model(&sessions).Scan(ctx); err != nil {
		return nil, fmt.Errorf("select workout sessions: %w", err)
	}
	return sessions, nil
}

// CreateWorkoutSession inserts s and sets its id. Member and trainer ids are
// not checked for existence.
func CreateWorkoutSession(ctx context.Context, db bun.IDB, s *models.WorkoutSession) error {
	s.ID = 0
	if _, err := db.NewInsert().Model(s).Exec(ctx); err != nil {
		return fmt.Errorf("insert workout session: %w", err)
	}
	return nil
}

// GetWorkoutSession returns the session with id or ErrNotFound.
func GetWorkoutSession(ctx context.Context, db bun.IDB, id int) (*models.WorkoutSession, error) {
	s := &models.WorkoutSession{}
	err := db.NewSelect().Model(s).Where("ws.id = ?", id).Scan(ctx)
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

// UpdateWorkoutSession overwrites every column of session s.ID.
func UpdateWorkoutSession(ctx context.Context, db bun.IDB, s *models.WorkoutSession) error {
	exists, err := db.NewSelect().Model((*models.WorkoutSession)(nil)).Where("ws.id = ?", s.ID).Exists(ctx)
	if err != nil {
		return fmt.Errorf("lookup workout session %d: %w", s.ID, err)
	}
	if !exists {
		return ErrNotFound
	}

	_, err = db.NewUpdate().Model(s).
		Column("date", "duration_minutes", "calories_burned", "member_id", "trainer_id").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update workout session %d: %w", s.ID, err)
	}
	return nil
}

// ListWorkoutSessionsForMember returns the sessions whose member_id matches.
// An empty result is ErrNotFound whether or not the member exists.
func ListWorkoutSessionsForMember(ctx context.Context, db bun.IDB, memberID int) ([]models.WorkoutSession, error) {
	sessions := make([]models.WorkoutSession, 0)
	err := db.NewSelect().Model(&sessions).Where("ws.member_id = ?", memberID).Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select workout sessions for member %d: %w", memberID, err)
	}
	if len(sessions) == 0 {
		return nil, ErrNotFound
	}
	return sessions, nil
}
