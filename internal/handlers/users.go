package handlers

import (
	"errors"
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/klassrum/internal/app"
	"github.com/shrimpsizemoose/klassrum/internal/models"
)

const msgUserNotFound = "User not found."

type UserHandler struct {
	service *app.Service
}

func NewUserHandler(service *app.Service) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.Store.ListUsers(r.Context())
	if err != nil {
		logger.Error.Printf("Failed to list users: %v", err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when fetching users.")
		return
	}
	if len(users) == 0 {
		writeMessage(w, http.StatusNotFound, "There are no available users.")
		return
	}
	writeData(w, http.StatusOK, map[string][]models.User{"users": users})
}

func (h *UserHandler) HandleGetByName(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Store.GetUserByName(r.Context(), r.PathValue("name"))
	h.writeUser(w, user, err)
}

func (h *UserHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid user id.")
		return
	}

	user, err := h.service.Store.GetUser(r.Context(), userID)
	h.writeUser(w, user, err)
}

func (h *UserHandler) writeUser(w http.ResponseWriter, user *models.User, err error) {
	switch {
	case err != nil:
		logger.Error.Printf("Failed to fetch user: %v", err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when fetching the user.")
	case user == nil:
		writeMessage(w, http.StatusNotFound, msgUserNotFound)
	default:
		writeData(w, http.StatusOK, user)
	}
}

func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeModel(r, &user); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	user.ID = 0

	err := h.service.CreateUser(r.Context(), &user)
	switch {
	case errors.Is(err, app.ErrDuplicateName):
		writeMessage(w, http.StatusInternalServerError, "There is an existing user with the same name.")
	case err != nil:
		logger.Error.Printf("Failed to create user %q: %v", user.Name, err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when creating the user.")
	default:
		writeData(w, http.StatusCreated, user)
	}
}

func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid user id.")
		return
	}

	err = h.service.DeleteUser(r.Context(), userID)
	switch {
	case errors.Is(err, app.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "User was not found.")
	case err != nil:
		logger.Error.Printf("Failed to delete user %d: %v", userID, err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when deleting the user.")
	default:
		writeMessage(w, http.StatusOK, "User was successfully deleted.")
	}
}

func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeModel(r, &user); err != nil || user.ID == 0 {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	err := h.service.UpdateUser(r.Context(), &user)
	switch {
	case errors.Is(err, app.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "This user does not exist.")
	case err != nil:
		logger.Error.Printf("Failed to update user %d: %v", user.ID, err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when updating the user.")
	default:
		writeData(w, http.StatusCreated, user)
	}
}

func (h *UserHandler) HandleFindEngineers(w http.ResponseWriter, r *http.Request) {
	engineers, err := h.service.FindEngineers(r.Context(), r.PathValue("name"))
	if err != nil {
		logger.Error.Printf("Failed to search engineers: %v", err)
		writeMessage(w, http.StatusInternalServerError, "An error occurred when fetching engineers.")
		return
	}
	if len(engineers) == 0 {
		writeMessage(w, http.StatusNotFound, "Engineer not found.")
		return
	}
	writeData(w, http.StatusOK, engineers)
}
