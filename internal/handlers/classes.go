package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/klassrum/internal/app"
	"github.com/shrimpsizemoose/klassrum/internal/models"
	"github.com/shrimpsizemoose/klassrum/internal/roster"
)

const msgClassMissing = "This class does not exist."

type ClassHandler struct {
	service *app.Service
}

func NewClassHandler(service *app.Service) *ClassHandler {
	return &ClassHandler{service: service}
}

// learnerID accepts both "7" and 7 on the wire; roster keys are strings.
type learnerID string

func (l *learnerID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = learnerID(s)
		return nil
	}
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return err
	}
	*l = learnerID(n.String())
	return nil
}

// classRef carries the class id under its current name or the older sessionId.
type classRef struct {
	CourseClassID *int `json:"courseClassId"`
	SessionID     *int `json:"sessionId"`
}

func (c classRef) id() (int, bool) {
	switch {
	case c.CourseClassID != nil:
		return *c.CourseClassID, true
	case c.SessionID != nil:
		return *c.SessionID, true
	default:
		return 0, false
	}
}

type learnerRequest struct {
	classRef
	LearnerID learnerID `json:"learnerId" validate:"required"`
}

type trainerRequest struct {
	classRef
	TrainerID *int `json:"trainerId" validate:"required"`
}

type createClassRequest struct {
	CourseID      *int          `json:"courseId" validate:"required"`
	StartDateTime string        `json:"startDateTime"`
	EndDateTime   string        `json:"endDateTime"`
	LearnerIDs    models.Roster `json:"learnerIds"`
	TrainerID     *int          `json:"trainerId"`
	ClassSize     *int          `json:"classSize"`
}

func (h *ClassHandler) HandleListByCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathID(r, "courseId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid course id.")
		return
	}

	listing, err := h.service.ClassesByCourse(r.Context(), courseID)
	if err != nil {
		logger.Error.Printf("Failed to list classes of course %d: %v", courseID, err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when fetching classes.")
		return
	}
	if len(listing.Classes) == 0 {
		writeMessage(w, http.StatusNotFound, "Classes was not found.")
		return
	}
	writeData(w, http.StatusOK, listing)
}

func (h *ClassHandler) HandleListByTrainer(w http.ResponseWriter, r *http.Request) {
	trainerID, err := pathID(r, "trainerId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid trainer id.")
		return
	}

	listing, err := h.service.ClassesByTrainer(r.Context(), trainerID)
	if err != nil {
		logger.Error.Printf("Failed to list classes of trainer %d: %v", trainerID, err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when fetching classes.")
		return
	}
	if len(listing.Classes) == 0 {
		writeMessage(w, http.StatusNotFound, "Trainer has no classes.")
		return
	}
	writeData(w, http.StatusOK, listing)
}

func (h *ClassHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	classID, err := pathID(r, "courseClassId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid class id.")
		return
	}

	class, err := h.service.Store.GetClass(r.Context(), classID)
	if err != nil {
		logger.Error.Printf("Failed to fetch class %d: %v", classID, err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when fetching the class.")
		return
	}
	if class == nil {
		writeMessage(w, http.StatusNotFound, "No such class with this ID.")
		return
	}
	writeData(w, http.StatusOK, []models.CourseClass{*class})
}

func (h *ClassHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createClassRequest
	if err := decodeBody(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	class, err := h.service.CreateClass(r.Context(), app.NewClass{
		CourseID:   *req.CourseID,
		StartDate:  req.StartDateTime,
		EndDate:    req.EndDateTime,
		LearnerIDs: req.LearnerIDs,
		TrainerID:  req.TrainerID,
		ClassSize:  req.ClassSize,
	})
	switch {
	case errors.Is(err, app.ErrCourseNotFound):
		writeMessage(w, http.StatusNotFound, "This course does not exist.")
	case errors.Is(err, app.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, "Dates must be in DD/MM/YYYY format.")
	case err != nil:
		logger.Error.Printf("Failed to create class: %v", err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when creating the class.")
	default:
		writeData(w, http.StatusCreated, class)
	}
}

func (h *ClassHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	classID, err := pathID(r, "courseClassId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid class id.")
		return
	}

	err = h.service.DeleteClass(r.Context(), classID)
	switch {
	case errors.Is(err, app.ErrClassNotFound):
		writeMessage(w, http.StatusNotFound, "Class was not found.")
	case err != nil:
		logger.Error.Printf("Failed to delete class %d: %v", classID, err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when deleting the class.")
	default:
		writeMessage(w, http.StatusOK, "Class was successfully deleted.")
	}
}

func (h *ClassHandler) HandleAddLearner(w http.ResponseWriter, r *http.Request) {
	h.handleLearner(w, r, "adding", h.service.AddLearner)
}

func (h *ClassHandler) HandleAcceptLearner(w http.ResponseWriter, r *http.Request) {
	h.handleLearner(w, r, "accepting", h.service.AcceptLearner)
}

func (h *ClassHandler) HandleRemoveLearner(w http.ResponseWriter, r *http.Request) {
	h.handleLearner(w, r, "removing", h.service.RemoveLearner)
}

func (h *ClassHandler) HandleSetTrainer(w http.ResponseWriter, r *http.Request) {
	var req trainerRequest
	if err := decodeBody(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	classID, ok := req.id()
	if !ok {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	class, err := h.service.SetTrainer(r.Context(), classID, *req.TrainerID)
	h.writeMutation(w, "setting trainer", classID, class, err)
}

func (h *ClassHandler) HandleListLearners(w http.ResponseWriter, r *http.Request) {
	classID, err := pathID(r, "courseClassId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid class id.")
		return
	}

	learners, err := h.service.ListLearners(r.Context(), classID)
	switch {
	case errors.Is(err, app.ErrClassNotFound):
		writeMessage(w, http.StatusNotFound, "Class is not found.")
	case err != nil:
		logger.Error.Printf("Failed to list learners of class %d: %v", classID, err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when fetching learners.")
	case len(learners) == 0:
		writeMessage(w, http.StatusNotFound, "There are no learners in this class.")
	default:
		writeData(w, http.StatusOK, learners)
	}
}

func (h *ClassHandler) handleLearner(
	w http.ResponseWriter,
	r *http.Request,
	action string,
	op func(context.Context, int, string) (*models.CourseClass, error),
) {
	var req learnerRequest
	if err := decodeBody(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	classID, ok := req.id()
	if !ok {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	class, err := op(r.Context(), classID, string(req.LearnerID))
	h.writeMutation(w, action+" learner "+string(req.LearnerID), classID, class, err)
}

func (h *ClassHandler) writeMutation(w http.ResponseWriter, action string, classID int, class *models.CourseClass, err error) {
	switch {
	case errors.Is(err, app.ErrClassNotFound):
		writeMessage(w, http.StatusNotFound, msgClassMissing)
	case errors.Is(err, app.ErrLearnerNotFound):
		writeMessage(w, http.StatusNotFound, "Learner is not in this class.")
	case errors.Is(err, app.ErrLearnerExists):
		writeMessage(w, http.StatusInternalServerError, "Learner is already in this class.")
	case errors.Is(err, roster.ErrEmptyLearnerID):
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
	case err != nil:
		logger.Error.Printf("Failed %s on class %d: %v", action, classID, err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when updating the class.")
	default:
		writeData(w, http.StatusCreated, class)
	}
}
