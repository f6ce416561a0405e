package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseEndpoints(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/courses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	courses := decode(t, rec)["data"].(map[string]any)["courses"].([]any)
	assert.Len(t, courses, 1)

	rec = ts.do(t, http.MethodGet, "/course/id/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data": {
		"courseId": 1,
		"courseName": "abc",
		"courseDesc": "123",
		"prerequisites": "def",
		"isActive": 1
	}}`, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/course/abc", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/course/nothing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Course Info not found.", message(t, rec))

	rec = ts.do(t, http.MethodPost, "/course/add", `{"courseName": "abc", "courseDesc": "x"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "There is an existing course with the same name.", message(t, rec))

	rec = ts.do(t, http.MethodPost, "/course/add", `{"courseDesc": "no name"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodPost, "/course/add", `{"courseName": "xyz", "courseDesc": "x", "isActive": 1}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(2), decode(t, rec)["data"].(map[string]any)["courseId"])

	rec = ts.do(t, http.MethodPost, "/course/update", `{"courseId": 2, "courseName": "xyz", "courseDesc": "y", "isActive": 0}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "y", decode(t, rec)["data"].(map[string]any)["courseDesc"])

	rec = ts.do(t, http.MethodPost, "/course/update", `{"courseId": 9, "courseName": "ghost"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "This course does not exist.", message(t, rec))

	rec = ts.do(t, http.MethodPost, "/course/delete/2", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Course was successfully deleted.", message(t, rec))

	rec = ts.do(t, http.MethodPost, "/course/delete/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Course was not found.", message(t, rec))
}

func TestLessonEndpoints(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/lessons/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Lessons for this course class cannot be found.", message(t, rec))

	rec = ts.do(t, http.MethodPost, "/lesson/add", `{"courseClassId": 9, "lessonName": "Intro"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "This class does not exist.", message(t, rec))

	rec = ts.do(t, http.MethodPost, "/lesson/add", `{
		"courseClassId": 1,
		"lessonName": "Intro",
		"lessonContent": ["slides", "video"],
		"links": null
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"data": {
		"lessonId": 1,
		"courseClassId": 1,
		"lessonName": "Intro",
		"lessonContent": ["slides", "video"],
		"links": null
	}}`, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/lessons/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	lessons := decode(t, rec)["data"].(map[string]any)["lessons"].([]any)
	assert.Len(t, lessons, 1)

	rec = ts.do(t, http.MethodPost, "/lesson/delete/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Lesson was successfully deleted.", message(t, rec))

	rec = ts.do(t, http.MethodPost, "/lesson/delete/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Lesson was not found.", message(t, rec))
}

func TestUserEndpoints(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/user", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "There are no available users.", message(t, rec))

	rec = ts.do(t, http.MethodPost, "/user", `{"name": "Alan", "subrole": "Trainer", "department": "Engineer", "email": "alan@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["data"].(map[string]any)["userId"])

	rec = ts.do(t, http.MethodPost, "/user", `{"name": "Alan"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "There is an existing user with the same name.", message(t, rec))

	rec = ts.do(t, http.MethodGet, "/user/name/Alan", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/user/id/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found.", message(t, rec))

	rec = ts.do(t, http.MethodGet, "/user/engineer/name/la", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["data"], 1)

	rec = ts.do(t, http.MethodGet, "/user/engineer/name/zz", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Engineer not found.", message(t, rec))

	rec = ts.do(t, http.MethodPatch, "/user", `{"userId": 1, "name": "Alan", "department": "HR"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "HR", decode(t, rec)["data"].(map[string]any)["department"])

	rec = ts.do(t, http.MethodPatch, "/user", `{"userId": 5, "name": "Ghost"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "This user does not exist.", message(t, rec))

	rec = ts.do(t, http.MethodDelete, "/user/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User was successfully deleted.", message(t, rec))

	rec = ts.do(t, http.MethodDelete, "/user/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User was not found.", message(t, rec))
}

func TestQuizEndpoints(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/lesson/add", `{"courseClassId": 1, "lessonName": "Intro"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(t, http.MethodPost, "/quiz/add", `{
		"lessonId": 1,
		"isGraded": 1,
		"passingMark": 50,
		"numOfQns": 10,
		"quizLink": "https://quiz.example.com/1",
		"isActive": "True"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"data": {
		"quizId": 1,
		"lessonId": 1,
		"isGraded": 1,
		"passingMark": 50,
		"numOfQns": 10,
		"quizLink": "https://quiz.example.com/1",
		"isActive": "True"
	}}`, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/quiz/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/quiz/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Quiz is not found.", message(t, rec))

	rec = ts.do(t, http.MethodGet, "/quiz/lessonId/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "Intro", data["name"])
	assert.Len(t, data["quizzes"], 1)

	rec = ts.do(t, http.MethodPost, "/quiz/update", `{"quizId": 1, "lessonId": 1, "isActive": "False"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "False", decode(t, rec)["data"].(map[string]any)["isActive"])

	rec = ts.do(t, http.MethodPost, "/quiz/update", `{"quizId": 7, "lessonId": 1, "isActive": "False"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "This quiz does not exist.", message(t, rec))

	rec = ts.do(t, http.MethodPost, "/quiz/delete/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Quiz was successfully deleted.", message(t, rec))

	rec = ts.do(t, http.MethodPost, "/quiz/delete/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Quiz was not found.", message(t, rec))
}
