package app

import (
	"context"

	"github.com/shrimpsizemoose/klassrum/internal/models"
)

func (s *Service) CreateCourse(ctx context.Context, course *models.Course) error {
	existing, err := s.Store.GetCourseByName(ctx, course.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateName
	}
	return s.Store.CreateCourse(ctx, course)
}

func (s *Service) UpdateCourse(ctx context.Context, course *models.Course) error {
	existing, err := s.Store.GetCourse(ctx, course.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCourseNotFound
	}
	return s.Store.UpdateCourse(ctx, course)
}

func (s *Service) DeleteCourse(ctx context.Context, id int) error {
	deleted, err := s.Store.DeleteCourse(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCourseNotFound
	}
	return nil
}

// CreateLesson requires the class the lesson belongs to.
func (s *Service) CreateLesson(ctx context.Context, lesson *models.Lesson) error {
	class, err := s.Store.GetClass(ctx, lesson.CourseClassID)
	if err != nil {
		return err
	}
	if class == nil {
		return ErrClassNotFound
	}
	return s.Store.CreateLesson(ctx, lesson)
}

func (s *Service) DeleteLesson(ctx context.Context, id int) error {
	deleted, err := s.Store.DeleteLesson(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrLessonNotFound
	}
	return nil
}

func (s *Service) CreateUser(ctx context.Context, user *models.User) error {
	existing, err := s.Store.GetUserByName(ctx, user.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateName
	}
	return s.Store.CreateUser(ctx, user)
}

func (s *Service) UpdateUser(ctx context.Context, user *models.User) error {
	existing, err := s.Store.GetUser(ctx, user.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrUserNotFound
	}
	return s.Store.UpdateUser(ctx, user)
}

func (s *Service) DeleteUser(ctx context.Context, id int) error {
	deleted, err := s.Store.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

func (s *Service) FindEngineers(ctx context.Context, namePart string) ([]models.User, error) {
	return s.Store.SearchUsers(ctx, models.DepartmentEngineer, namePart)
}

// QuizzesByLesson returns the lesson name ("" if the lesson is gone) and its quizzes.
func (s *Service) QuizzesByLesson(ctx context.Context, lessonID int) (string, []models.Quiz, error) {
	quizzes, err := s.Store.ListQuizzesByLesson(ctx, lessonID)
	if err != nil {
		return "", nil, err
	}

	lesson, err := s.Store.GetLesson(ctx, lessonID)
	if err != nil {
		return "", nil, err
	}
	if lesson == nil {
		return "", quizzes, nil
	}
	return lesson.Name, quizzes, nil
}

func (s *Service) CreateQuiz(ctx context.Context, quiz *models.Quiz) error {
	return s.Store.CreateQuiz(ctx, quiz)
}

func (s *Service) UpdateQuiz(ctx context.Context, quiz *models.Quiz) error {
	existing, err := s.Store.GetQuiz(ctx, quiz.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrQuizNotFound
	}
	return s.Store.UpdateQuiz(ctx, quiz)
}

func (s *Service) DeleteQuiz(ctx context.Context, id int) error {
	deleted, err := s.Store.DeleteQuiz(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrQuizNotFound
	}
	return nil
}
