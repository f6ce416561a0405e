package store

import (
	"context"
	"fmt"

	"github.com/shrimpsizemoose/klassrum/internal/models"
)

const selectQuiz = `
	SELECT quiz_id, lesson_id, is_graded, passing_mark, num_of_qns, quiz_link, is_active
	FROM quizzes
`

func (s *BaseStore) GetQuiz(ctx context.Context, id int) (*models.Quiz, error) {
	var quiz models.Quiz
	found, err := s.getOne(ctx, &quiz, selectQuiz+` WHERE quiz_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &quiz, nil
}

func (s *BaseStore) ListQuizzesByLesson(ctx context.Context, lessonID int) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	query := s.Converter(selectQuiz + ` WHERE lesson_id = ? ORDER BY quiz_id`)
	if err := s.DB.SelectContext(ctx, &quizzes, query, lessonID); err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	return quizzes, nil
}

func (s *BaseStore) CreateQuiz(ctx context.Context, quiz *models.Quiz) error {
	query := s.Converter(`
		INSERT INTO quizzes (lesson_id, is_graded, passing_mark, num_of_qns, quiz_link, is_active)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING quiz_id
	`)
	err := s.DB.GetContext(ctx, &quiz.ID, query,
		quiz.LessonID,
		quiz.IsGraded,
		quiz.PassingMark,
		quiz.NumOfQns,
		quiz.QuizLink,
		quiz.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}
	return nil
}

func (s *BaseStore) UpdateQuiz(ctx context.Context, quiz *models.Quiz) error {
	_, err := s.DB.NamedExecContext(ctx, `
		UPDATE quizzes SET
		lesson_id = :lesson_id,
		is_graded = :is_graded,
		passing_mark = :passing_mark,
		num_of_qns = :num_of_qns,
		quiz_link = :quiz_link,
		is_active = :is_active
		WHERE quiz_id = :quiz_id
	`, quiz)
	if err != nil {
		return fmt.Errorf("failed to update quiz: %w", err)
	}
	return nil
}

func (s *BaseStore) DeleteQuiz(ctx context.Context, id int) (bool, error) {
	deleted, err := s.deleteByID(ctx, `DELETE FROM quizzes WHERE quiz_id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete quiz: %w", err)
	}
	return deleted, nil
}
