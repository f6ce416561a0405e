package handlers

import (
	"errors"
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/klassrum/internal/app"
	"github.com/shrimpsizemoose/klassrum/internal/models"
)

const msgQuizNotFound = "Quiz is not found."

type QuizHandler struct {
	service *app.Service
}

func NewQuizHandler(service *app.Service) *QuizHandler {
	return &QuizHandler{service: service}
}

type lessonQuizzes struct {
	Name    string        `json:"name"`
	Quizzes []models.Quiz `json:"quizzes"`
}

func (h *QuizHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var quiz models.Quiz
	if err := decodeModel(r, &quiz); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	quiz.ID = 0

	if err := h.service.CreateQuiz(r.Context(), &quiz); err != nil {
		logger.Error.Printf("Failed to create quiz for lesson %d: %v", quiz.LessonID, err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when creating quiz.")
		return
	}
	writeData(w, http.StatusCreated, quiz)
}

func (h *QuizHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	quizID, err := pathID(r, "quizId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid quiz id.")
		return
	}

	quiz, err := h.service.Store.GetQuiz(r.Context(), quizID)
	switch {
	case err != nil:
		logger.Error.Printf("Failed to fetch quiz %d: %v", quizID, err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when fetching the quiz.")
	case quiz == nil:
		writeMessage(w, http.StatusNotFound, msgQuizNotFound)
	default:
		writeData(w, http.StatusOK, quiz)
	}
}

func (h *QuizHandler) HandleListByLesson(w http.ResponseWriter, r *http.Request) {
	lessonID, err := pathID(r, "lessonId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid lesson id.")
		return
	}

	name, quizzes, err := h.service.QuizzesByLesson(r.Context(), lessonID)
	switch {
	case err != nil:
		logger.Error.Printf("Failed to list quizzes of lesson %d: %v", lessonID, err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when fetching quizzes.")
	case len(quizzes) == 0:
		writeMessage(w, http.StatusNotFound, msgQuizNotFound)
	default:
		writeData(w, http.StatusOK, lessonQuizzes{Name: name, Quizzes: quizzes})
	}
}

func (h *QuizHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	quizID, err := pathID(r, "quizId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid quiz id.")
		return
	}

	err = h.service.DeleteQuiz(r.Context(), quizID)
	switch {
	case errors.Is(err, app.ErrQuizNotFound):
		writeMessage(w, http.StatusNotFound, "Quiz was not found.")
	case err != nil:
		logger.Error.Printf("Failed to delete quiz %d: %v", quizID, err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when deleting the quiz.")
	default:
		writeMessage(w, http.StatusOK, "Quiz was successfully deleted.")
	}
}

func (h *QuizHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var quiz models.Quiz
	if err := decodeModel(r, &quiz); err != nil || quiz.ID == 0 {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	err := h.service.UpdateQuiz(r.Context(), &quiz)
	switch {
	case errors.Is(err, app.ErrQuizNotFound):
		writeMessage(w, http.StatusNotFound, "This quiz does not exist.")
	case err != nil:
		logger.Error.Printf("Failed to update quiz %d: %v", quiz.ID, err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when updating the quiz.")
	default:
		writeData(w, http.StatusCreated, quiz)
	}
}
