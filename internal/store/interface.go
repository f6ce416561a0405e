package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/klassrum/internal/models"
)

type LMSStore interface {
	Close() error
	ApplyMigrations() error

	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id int) (*models.Course, error)
	GetCourseByName(ctx context.Context, name string) (*models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) error
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id int) (bool, error)

	GetClass(ctx context.Context, id int) (*models.CourseClass, error)
	ListClassesByCourse(ctx context.Context, courseID int) ([]models.CourseClass, error)
	ListClassesByTrainer(ctx context.Context, trainerID int) ([]models.CourseClass, error)
	CreateClass(ctx context.Context, class *models.CourseClass) error
	// UpdateClass loads the class inside a transaction holding its row,
	// applies mutate and writes the result back. Returns nil, nil if no such class.
	UpdateClass(ctx context.Context, id int, mutate func(*models.CourseClass) error) (*models.CourseClass, error)
	DeleteClass(ctx context.Context, id int) (bool, error)

	ListLessonsByClass(ctx context.Context, classID int) ([]models.Lesson, error)
	GetLesson(ctx context.Context, id int) (*models.Lesson, error)
	CreateLesson(ctx context.Context, lesson *models.Lesson) error
	DeleteLesson(ctx context.Context, id int) (bool, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserByName(ctx context.Context, name string) (*models.User, error)
	SearchUsers(ctx context.Context, department, namePart string) ([]models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int) (bool, error)

	GetQuiz(ctx context.Context, id int) (*models.Quiz, error)
	ListQuizzesByLesson(ctx context.Context, lessonID int) ([]models.Quiz, error)
	CreateQuiz(ctx context.Context, quiz *models.Quiz) error
	UpdateQuiz(ctx context.Context, quiz *models.Quiz) error
	DeleteQuiz(ctx context.Context, id int) (bool, error)
}

// BaseStore provides common functionality for different DB implementations
type BaseStore struct {
	DB        *sqlx.DB
	Converter func(string) string
	// ForUpdate is appended to row reads inside UpdateClass
	ForUpdate string
}

func (s *BaseStore) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

// ApplyMigrations applies each .sql file of fsys once, in name order,
// translating dialect if needed
func (s *BaseStore) ApplyMigrations(fsys fs.FS, translateSQL func(string) string) error {
	if _, err := s.DB.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			name TEXT PRIMARY KEY,
			applied_at BIGINT NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	files, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var names []string
	for _, file := range files {
		if !file.IsDir() && strings.HasSuffix(file.Name(), ".sql") {
			names = append(names, file.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		var applied int
		if err := s.DB.Get(&applied, s.Converter(`SELECT COUNT(*) FROM schema_migrations WHERE name = ?`), name); err != nil {
			return fmt.Errorf("failed to check migration %s: %w", name, err)
		}
		if applied > 0 {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		sql := string(content)
		if translateSQL != nil {
			sql = translateSQL(sql)
		}

		logger.Info.Printf("Applying migration: %s", name)
		if _, err := s.DB.Exec(sql); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
		if _, err := s.DB.Exec(
			s.Converter(`INSERT INTO schema_migrations (name, applied_at) VALUES (?, ?)`),
			name,
			time.Now().Unix(),
		); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", name, err)
		}
	}

	return nil
}

// getOne runs a single-row query, mapping sql.ErrNoRows to found == false
func (s *BaseStore) getOne(ctx context.Context, dest any, query string, args ...any) (bool, error) {
	err := s.DB.GetContext(ctx, dest, s.Converter(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *BaseStore) deleteByID(ctx context.Context, query string, id int) (bool, error) {
	res, err := s.DB.ExecContext(ctx, s.Converter(query), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
