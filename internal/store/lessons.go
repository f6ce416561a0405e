package store

import (
	"context"
	"fmt"

	"github.com/shrimpsizemoose/klassrum/internal/models"
)

const selectLesson = `
	SELECT lesson_id, course_class_id, lesson_name, lesson_content, links
	FROM lessons
`

func (s *BaseStore) ListLessonsByClass(ctx context.Context, classID int) ([]models.Lesson, error) {
	var lessons []models.Lesson
	query := s.Converter(selectLesson + ` WHERE course_class_id = ? ORDER BY lesson_id`)
	if err := s.DB.SelectContext(ctx, &lessons, query, classID); err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}
	return lessons, nil
}

func (s *BaseStore) GetLesson(ctx context.Context, id int) (*models.Lesson, error) {
	var lesson models.Lesson
	found, err := s.getOne(ctx, &lesson, selectLesson+` WHERE lesson_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &lesson, nil
}

func (s *BaseStore) CreateLesson(ctx context.Context, lesson *models.Lesson) error {
	query := s.Converter(`
		INSERT INTO lessons (course_class_id, lesson_name, lesson_content, links)
		VALUES (?, ?, ?, ?)
		RETURNING lesson_id
	`)
	err := s.DB.GetContext(ctx, &lesson.ID, query,
		lesson.CourseClassID,
		lesson.Name,
		lesson.Content,
		lesson.Links,
	)
	if err != nil {
		return fmt.Errorf("failed to create lesson: %w", err)
	}
	return nil
}

func (s *BaseStore) DeleteLesson(ctx context.Context, id int) (bool, error) {
	deleted, err := s.deleteByID(ctx, `DELETE FROM lessons WHERE lesson_id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete lesson: %w", err)
	}
	return deleted, nil
}
