// internal/store/sqlite/store_test.go
package sqlite

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrimpsizemoose/klassrum/internal/models"
	"github.com/shrimpsizemoose/klassrum/internal/store"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) (*SQLiteStore, func()) {
	s, err := NewSQLiteStore(&store.DBConfig{DSN: ":memory:", Type: store.DBTypeSQLite})
	require.NoError(t, err, "Failed to create store")

	cleanup := func() {
		err := s.Close()
		require.NoError(t, err, "Failed to close database")
	}

	return s, cleanup
}

type testData struct {
	store  *SQLiteStore
	ctx    context.Context
	course models.Course
	class  models.CourseClass
}

func intPtr(v int) *int {
	return &v
}

func setupTestData(t *testing.T) (*testData, func()) {
	s, cleanup := setupTestDB(t)
	ctx := context.Background()

	course := models.Course{Name: "abc", Desc: "123", Prerequisites: "def", IsActive: 1}
	require.NoError(t, s.CreateCourse(ctx, &course), "Failed to insert course")

	class := models.CourseClass{
		CourseID:      course.ID,
		StartDateTime: models.NewDate(2021, time.October, 8),
		EndDateTime:   models.NewDate(2021, time.October, 9),
		LearnerIDs:    models.Roster{"a": models.Accepted, "b": models.Pending, "c": models.Accepted},
		TrainerID:     intPtr(1),
		ClassSize:     intPtr(10),
	}
	require.NoError(t, s.CreateClass(ctx, &class), "Failed to insert class")

	return &testData{
		store:  s,
		ctx:    ctx,
		course: course,
		class:  class,
	}, cleanup
}

func TestMain(m *testing.M) {
	log.Println("Starting SQLite store tests...")
	code := m.Run()
	log.Println("Finished SQLite store tests")
	os.Exit(code)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, s.ApplyMigrations())

	var applied int
	require.NoError(t, s.DB.Get(&applied, `SELECT COUNT(*) FROM schema_migrations`))
	assert.Equal(t, 3, applied)
}

func TestClassOperations(t *testing.T) {
	td, cleanup := setupTestData(t)
	defer cleanup()

	t.Run("get class", func(t *testing.T) {
		got, err := td.store.GetClass(td.ctx, td.class.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, td.course.ID, got.CourseID)
		assert.Equal(t, td.class.LearnerIDs, got.LearnerIDs)
		assert.True(t, got.StartDateTime.Valid)
		assert.True(t, td.class.StartDateTime.Time.Equal(got.StartDateTime.Time))
		assert.Equal(t, 1, *got.TrainerID)
		assert.Equal(t, 10, *got.ClassSize)
	})

	t.Run("get non-existent class", func(t *testing.T) {
		got, err := td.store.GetClass(td.ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("class without optional fields", func(t *testing.T) {
		bare := models.CourseClass{CourseID: td.course.ID}
		require.NoError(t, td.store.CreateClass(td.ctx, &bare))

		got, err := td.store.GetClass(td.ctx, bare.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, models.Roster{}, got.LearnerIDs)
		assert.False(t, got.StartDateTime.Valid)
		assert.Nil(t, got.TrainerID)
		assert.Nil(t, got.ClassSize)
	})

	t.Run("list by course and trainer", func(t *testing.T) {
		byCourse, err := td.store.ListClassesByCourse(td.ctx, td.course.ID)
		require.NoError(t, err)
		assert.Len(t, byCourse, 2)

		byTrainer, err := td.store.ListClassesByTrainer(td.ctx, 1)
		require.NoError(t, err)
		require.Len(t, byTrainer, 1)
		assert.Equal(t, td.class.ID, byTrainer[0].ID)

		none, err := td.store.ListClassesByTrainer(td.ctx, 42)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("delete class", func(t *testing.T) {
		deleted, err := td.store.DeleteClass(td.ctx, td.class.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = td.store.DeleteClass(td.ctx, td.class.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestUpdateClass(t *testing.T) {
	td, cleanup := setupTestData(t)
	defer cleanup()

	t.Run("mutation is persisted", func(t *testing.T) {
		updated, err := td.store.UpdateClass(td.ctx, td.class.ID, func(c *models.CourseClass) error {
			c.LearnerIDs["d"] = models.Pending
			c.TrainerID = intPtr(2)
			return nil
		})
		require.NoError(t, err)
		require.NotNil(t, updated)

		got, err := td.store.GetClass(td.ctx, td.class.ID)
		require.NoError(t, err)
		assert.Equal(t, models.Roster{"a": 1, "b": 0, "c": 1, "d": 0}, got.LearnerIDs)
		assert.Equal(t, 2, *got.TrainerID)
		assert.Equal(t, updated.LearnerIDs, got.LearnerIDs)
	})

	t.Run("mutation error rolls back", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := td.store.UpdateClass(td.ctx, td.class.ID, func(c *models.CourseClass) error {
			delete(c.LearnerIDs, "a")
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := td.store.GetClass(td.ctx, td.class.ID)
		require.NoError(t, err)
		assert.True(t, got.LearnerIDs.Has("a"))
	})

	t.Run("missing class", func(t *testing.T) {
		called := false
		got, err := td.store.UpdateClass(td.ctx, 999, func(c *models.CourseClass) error {
			called = true
			return nil
		})
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.False(t, called)
	})
}

func TestCourseOperations(t *testing.T) {
	td, cleanup := setupTestData(t)
	defer cleanup()

	t.Run("get by id and name", func(t *testing.T) {
		got, err := td.store.GetCourse(td.ctx, td.course.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, td.course, *got)

		byName, err := td.store.GetCourseByName(td.ctx, "abc")
		require.NoError(t, err)
		require.NotNil(t, byName)
		assert.Equal(t, td.course.ID, byName.ID)

		missing, err := td.store.GetCourseByName(td.ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("update and list", func(t *testing.T) {
		course := td.course
		course.Desc = "updated"
		course.IsActive = 0
		require.NoError(t, td.store.UpdateCourse(td.ctx, &course))

		courses, err := td.store.ListCourses(td.ctx)
		require.NoError(t, err)
		require.Len(t, courses, 1)
		assert.Equal(t, "updated", courses[0].Desc)
		assert.Equal(t, 0, courses[0].IsActive)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := td.store.DeleteCourse(td.ctx, td.course.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err := td.store.GetCourse(td.ctx, td.course.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestLessonOperations(t *testing.T) {
	td, cleanup := setupTestData(t)
	defer cleanup()

	full := models.Lesson{
		CourseClassID: td.class.ID,
		Name:          "abc",
		Content:       models.StringList{"abc", "123", "lol"},
		Links:         models.StringList{"www.google.com", "www.googledrive.com"},
	}
	bare := models.Lesson{CourseClassID: td.class.ID, Name: "bac"}
	require.NoError(t, td.store.CreateLesson(td.ctx, &full))
	require.NoError(t, td.store.CreateLesson(td.ctx, &bare))

	lessons, err := td.store.ListLessonsByClass(td.ctx, td.class.ID)
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, full, lessons[0])
	assert.Nil(t, lessons[1].Content)
	assert.Nil(t, lessons[1].Links)

	got, err := td.store.GetLesson(td.ctx, full.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "abc", got.Name)

	deleted, err := td.store.DeleteLesson(td.ctx, full.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestUserOperations(t *testing.T) {
	td, cleanup := setupTestData(t)
	defer cleanup()

	users := []models.User{
		{Name: "testengineer1", Subrole: "senior", Department: models.DepartmentEngineer, Email: "e1@email.com"},
		{Name: "testengineer2", Subrole: "junior", Department: models.DepartmentEngineer, Email: "e2@email.com"},
		{Name: "testuser1", Subrole: "hr", Department: "HR", Email: "u1@email.com"},
	}
	for i := range users {
		require.NoError(t, td.store.CreateUser(td.ctx, &users[i]))
	}

	t.Run("search engineers", func(t *testing.T) {
		found, err := td.store.SearchUsers(td.ctx, models.DepartmentEngineer, "engineer")
		require.NoError(t, err)
		assert.Len(t, found, 2)

		found, err = td.store.SearchUsers(td.ctx, models.DepartmentEngineer, "testuser")
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("update and get", func(t *testing.T) {
		u := users[2]
		u.Email = "new@email.com"
		require.NoError(t, td.store.UpdateUser(td.ctx, &u))

		got, err := td.store.GetUser(td.ctx, u.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "new@email.com", got.Email)

		byName, err := td.store.GetUserByName(td.ctx, "testuser1")
		require.NoError(t, err)
		require.NotNil(t, byName)
		assert.Equal(t, u.ID, byName.ID)
	})

	t.Run("list and delete", func(t *testing.T) {
		all, err := td.store.ListUsers(td.ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		deleted, err := td.store.DeleteUser(td.ctx, users[0].ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err := td.store.GetUser(td.ctx, users[0].ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestQuizOperations(t *testing.T) {
	td, cleanup := setupTestData(t)
	defer cleanup()

	link := "https://quiz-maker.com/1"
	quiz := models.Quiz{
		LessonID:    1,
		IsGraded:    intPtr(1),
		PassingMark: intPtr(5),
		NumOfQns:    intPtr(10),
		QuizLink:    &link,
		IsActive:    "True",
	}
	require.NoError(t, td.store.CreateQuiz(td.ctx, &quiz))

	got, err := td.store.GetQuiz(td.ctx, quiz.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, quiz, *got)

	quiz.PassingMark = intPtr(7)
	quiz.IsActive = "False"
	require.NoError(t, td.store.UpdateQuiz(td.ctx, &quiz))

	quizzes, err := td.store.ListQuizzesByLesson(td.ctx, 1)
	require.NoError(t, err)
	require.Len(t, quizzes, 1)
	assert.Equal(t, 7, *quizzes[0].PassingMark)
	assert.Equal(t, "False", quizzes[0].IsActive)

	deleted, err := td.store.DeleteQuiz(td.ctx, quiz.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}
