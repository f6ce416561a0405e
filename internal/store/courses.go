package store

import (
	"context"
	"fmt"

	"github.com/shrimpsizemoose/klassrum/internal/models"
)

const selectCourse = `
	SELECT course_id, course_name, course_desc, prerequisites, is_active
	FROM courses
`

func (s *BaseStore) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := s.DB.SelectContext(ctx, &courses, selectCourse+` ORDER BY course_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

func (s *BaseStore) GetCourse(ctx context.Context, id int) (*models.Course, error) {
	var course models.Course
	found, err := s.getOne(ctx, &course, selectCourse+` WHERE course_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &course, nil
}

func (s *BaseStore) GetCourseByName(ctx context.Context, name string) (*models.Course, error) {
	var course models.Course
	found, err := s.getOne(ctx, &course, selectCourse+` WHERE course_name = ? ORDER BY course_id LIMIT 1`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get course by name: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &course, nil
}

func (s *BaseStore) CreateCourse(ctx context.Context, course *models.Course) error {
	query := s.Converter(`
		INSERT INTO courses (course_name, course_desc, prerequisites, is_active)
		VALUES (?, ?, ?, ?)
		RETURNING course_id
	`)
	err := s.DB.GetContext(ctx, &course.ID, query,
		course.Name,
		course.Desc,
		course.Prerequisites,
		course.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

func (s *BaseStore) UpdateCourse(ctx context.Context, course *models.Course) error {
	_, err := s.DB.NamedExecContext(ctx, `
		UPDATE courses SET
		course_name = :course_name,
		course_desc = :course_desc,
		prerequisites = :prerequisites,
		is_active = :is_active
		WHERE course_id = :course_id
	`, course)
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	return nil
}

func (s *BaseStore) DeleteCourse(ctx context.Context, id int) (bool, error) {
	deleted, err := s.deleteByID(ctx, `DELETE FROM courses WHERE course_id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete course: %w", err)
	}
	return deleted, nil
}
