package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shrimpsizemoose/klassrum/internal/app"
)

func NewRouter(service *app.Service) http.Handler {
	classes := NewClassHandler(service)
	courses := NewCourseHandler(service)
	lessons := NewLessonHandler(service)
	users := NewUserHandler(service)
	quizzes := NewQuizHandler(service)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("klassrum LMS API"))
	})

	mux.HandleFunc("GET /courses", courses.HandleList)
	mux.HandleFunc("GET /course/id/{courseId}", courses.HandleGetByID)
	mux.HandleFunc("GET /course/{courseName}", courses.HandleGetByName)
	mux.HandleFunc("POST /course/add", courses.HandleCreate)
	mux.HandleFunc("POST /course/delete/{courseId}", courses.HandleDelete)
	mux.HandleFunc("POST /course/update", courses.HandleUpdate)

	mux.HandleFunc("GET /class/course/{courseId}", classes.HandleListByCourse)
	mux.HandleFunc("GET /class/trainer/{trainerId}", classes.HandleListByTrainer)
	mux.HandleFunc("GET /class/{courseClassId}", classes.HandleGet)
	mux.HandleFunc("GET /class/learners/{courseClassId}", classes.HandleListLearners)
	mux.HandleFunc("POST /class/add", classes.HandleCreate)
	mux.HandleFunc("POST /class/delete/{courseClassId}", classes.HandleDelete)
	mux.HandleFunc("POST /class/add/learner", classes.HandleAddLearner)
	mux.HandleFunc("POST /class/accept/learner", classes.HandleAcceptLearner)
	mux.HandleFunc("POST /class/add/trainer", classes.HandleSetTrainer)
	mux.HandleFunc("POST /class/delete/learner", classes.HandleRemoveLearner)

	mux.HandleFunc("GET /lessons/{courseClassId}", lessons.HandleListByClass)
	mux.HandleFunc("POST /lesson/add", lessons.HandleCreate)
	mux.HandleFunc("POST /lesson/delete/{lessonId}", lessons.HandleDelete)

	mux.HandleFunc("GET /user", users.HandleList)
	mux.HandleFunc("GET /user/name/{name}", users.HandleGetByName)
	mux.HandleFunc("GET /user/id/{userId}", users.HandleGetByID)
	mux.HandleFunc("GET /user/engineer/name/{name}", users.HandleFindEngineers)
	mux.HandleFunc("POST /user", users.HandleCreate)
	mux.HandleFunc("PATCH /user", users.HandleUpdate)
	mux.HandleFunc("DELETE /user/{userId}", users.HandleDelete)

	mux.HandleFunc("POST /quiz/add", quizzes.HandleCreate)
	mux.HandleFunc("GET /quiz/{quizId}", quizzes.HandleGet)
	mux.HandleFunc("GET /quiz/lessonId/{lessonId}", quizzes.HandleListByLesson)
	mux.HandleFunc("POST /quiz/delete/{quizId}", quizzes.HandleDelete)
	mux.HandleFunc("POST /quiz/update", quizzes.HandleUpdate)

	mux.Handle("GET /metrics", promhttp.Handler())

	return withCORS(service.Config.Server.CORSOrigin, withRequestLog(mux))
}
