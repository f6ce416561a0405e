package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shrimpsizemoose/klassrum/internal/models"
)

const selectClass = `
	SELECT
		course_class_id,
		course_id,
		start_date_time,
		end_date_time,
		learner_ids,
		trainer_id,
		class_size
	FROM course_classes
`

func (s *BaseStore) GetClass(ctx context.Context, id int) (*models.CourseClass, error) {
	var class models.CourseClass
	found, err := s.getOne(ctx, &class, selectClass+` WHERE course_class_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get class: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &class, nil
}

func (s *BaseStore) ListClassesByCourse(ctx context.Context, courseID int) ([]models.CourseClass, error) {
	var classes []models.CourseClass
	query := s.Converter(selectClass + ` WHERE course_id = ? ORDER BY course_class_id`)
	if err := s.DB.SelectContext(ctx, &classes, query, courseID); err != nil {
		return nil, fmt.Errorf("failed to list classes of course: %w", err)
	}
	return classes, nil
}

func (s *BaseStore) ListClassesByTrainer(ctx context.Context, trainerID int) ([]models.CourseClass, error) {
	var classes []models.CourseClass
	query := s.Converter(selectClass + ` WHERE trainer_id = ? ORDER BY course_class_id`)
	if err := s.DB.SelectContext(ctx, &classes, query, trainerID); err != nil {
		return nil, fmt.Errorf("failed to list classes of trainer: %w", err)
	}
	return classes, nil
}

func (s *BaseStore) CreateClass(ctx context.Context, class *models.CourseClass) error {
	if class.LearnerIDs == nil {
		class.LearnerIDs = models.Roster{}
	}

	query := s.Converter(`
		INSERT INTO course_classes (
			course_id,
			start_date_time,
			end_date_time,
			learner_ids,
			trainer_id,
			class_size
		)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING course_class_id
	`)
	err := s.DB.GetContext(ctx, &class.ID, query,
		class.CourseID,
		class.StartDateTime,
		class.EndDateTime,
		class.LearnerIDs,
		class.TrainerID,
		class.ClassSize,
	)
	if err != nil {
		return fmt.Errorf("failed to create class: %w", err)
	}
	return nil
}

func (s *BaseStore) UpdateClass(ctx context.Context, id int, mutate func(*models.CourseClass) error) (*models.CourseClass, error) {
	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin class update: %w", err)
	}
	defer tx.Rollback()

	var class models.CourseClass
	query := s.Converter(selectClass + ` WHERE course_class_id = ?` + s.ForUpdate)
	err = tx.GetContext(ctx, &class, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load class for update: %w", err)
	}

	if err := mutate(&class); err != nil {
		return nil, err
	}
	class.ID = id

	_, err = tx.ExecContext(ctx, s.Converter(`
		UPDATE course_classes SET
		course_id = ?,
		start_date_time = ?,
		end_date_time = ?,
		learner_ids = ?,
		trainer_id = ?,
		class_size = ?
		WHERE course_class_id = ?
	`),
		class.CourseID,
		class.StartDateTime,
		class.EndDateTime,
		class.LearnerIDs,
		class.TrainerID,
		class.ClassSize,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update class: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit class update: %w", err)
	}
	return &class, nil
}

func (s *BaseStore) DeleteClass(ctx context.Context, id int) (bool, error) {
	deleted, err := s.deleteByID(ctx, `DELETE FROM course_classes WHERE course_class_id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete class: %w", err)
	}
	return deleted, nil
}
