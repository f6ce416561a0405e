package handlers

import (
	"errors"
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/klassrum/internal/app"
	"github.com/shrimpsizemoose/klassrum/internal/models"
)

type LessonHandler struct {
	service *app.Service
}

func NewLessonHandler(service *app.Service) *LessonHandler {
	return &LessonHandler{service: service}
}

func (h *LessonHandler) HandleListByClass(w http.ResponseWriter, r *http.Request) {
	classID, err := pathID(r, "courseClassId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid class id.")
		return
	}

	lessons, err := h.service.Store.ListLessonsByClass(r.Context(), classID)
	if err != nil {
		logger.Error.Printf("Failed to list lessons of class %d: %v", classID, err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when fetching lessons.")
		return
	}
	if len(lessons) == 0 {
		writeMessage(w, http.StatusNotFound, "Lessons for this course class cannot be found.")
		return
	}
	writeData(w, http.StatusOK, map[string][]models.Lesson{"lessons": lessons})
}

func (h *LessonHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var lesson models.Lesson
	if err := decodeModel(r, &lesson); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	lesson.ID = 0

	err := h.service.CreateLesson(r.Context(), &lesson)
	switch {
	case errors.Is(err, app.ErrClassNotFound):
		writeMessage(w, http.StatusNotFound, msgClassMissing)
	case err != nil:
		logger.Error.Printf("Failed to create lesson %q: %v", lesson.Name, err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when creating the lesson.")
	default:
		writeData(w, http.StatusCreated, lesson)
	}
}

func (h *LessonHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	lessonID, err := pathID(r, "lessonId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid lesson id.")
		return
	}

	err = h.service.DeleteLesson(r.Context(), lessonID)
	switch {
	case errors.Is(err, app.ErrLessonNotFound):
		writeMessage(w, http.StatusNotFound, "Lesson was not found.")
	case err != nil:
		logger.Error.Printf("Failed to delete lesson %d: %v", lessonID, err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when deleting the lesson.")
	default:
		writeMessage(w, http.StatusOK, "Lesson was successfully deleted.")
	}
}
