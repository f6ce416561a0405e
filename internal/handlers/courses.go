package handlers

import (
	"errors"
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/klassrum/internal/app"
	"github.com/shrimpsizemoose/klassrum/internal/models"
)

type CourseHandler struct {
	service *app.Service
}

func NewCourseHandler(service *app.Service) *CourseHandler {
	return &CourseHandler{service: service}
}

func (h *CourseHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.Store.ListCourses(r.Context())
	if err != nil {
		logger.Error.Printf("Failed to list courses: %v", err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when fetching courses.")
		return
	}
	if len(courses) == 0 {
		writeMessage(w, http.StatusNotFound, "There is no available course information.")
		return
	}
	writeData(w, http.StatusOK, map[string][]models.Course{"courses": courses})
}

func (h *CourseHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathID(r, "courseId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid course id.")
		return
	}

	course, err := h.service.Store.GetCourse(r.Context(), courseID)
	h.writeCourse(w, course, err)
}

func (h *CourseHandler) HandleGetByName(w http.ResponseWriter, r *http.Request) {
	course, err := h.service.Store.GetCourseByName(r.Context(), r.PathValue("courseName"))
	h.writeCourse(w, course, err)
}

func (h *CourseHandler) writeCourse(w http.ResponseWriter, course *models.Course, err error) {
	switch {
	case err != nil:
		logger.Error.Printf("Failed to fetch course: %v", err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when fetching the course.")
	case course == nil:
		writeMessage(w, http.StatusNotFound, "Course Info not found.")
	default:
		writeData(w, http.StatusOK, course)
	}
}

func (h *CourseHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var course models.Course
	if err := decodeModel(r, &course); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	course.ID = 0

	err := h.service.CreateCourse(r.Context(), &course)
	switch {
	case errors.Is(err, app.ErrDuplicateName):
		writeMessage(w, http.StatusInternalServerError, "There is an existing course with the same name.")
	case err != nil:
		logger.Error.Printf("Failed to create course %q: %v", course.Name, err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when creating the course.")
	default:
		writeData(w, http.StatusCreated, course)
	}
}

func (h *CourseHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathID(r, "courseId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid course id.")
		return
	}

	err = h.service.DeleteCourse(r.Context(), courseID)
	switch {
	case errors.Is(err, app.ErrCourseNotFound):
		writeMessage(w, http.StatusNotFound, "Course was not found.")
	case err != nil:
		logger.Error.Printf("Failed to delete course %d: %v", courseID, err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when deleting the course.")
	default:
		writeMessage(w, http.StatusOK, "Course was successfully deleted.")
	}
}

func (h *CourseHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var course models.Course
	if err := decodeModel(r, &course); err != nil || course.ID == 0 {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	err := h.service.UpdateCourse(r.Context(), &course)
	switch {
	case errors.Is(err, app.ErrCourseNotFound):
		writeMessage(w, http.StatusNotFound, "This course does not exist.")
	case err != nil:
		logger.Error.Printf("Failed to update course %d: %v", course.ID, err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when updating the course.")
	default:
		writeData(w, http.StatusCreated, course)
	}
}
