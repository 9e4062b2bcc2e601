package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fmarques/corresponde/internal/domain"
	"github.com/fmarques/corresponde/internal/dto"
	"github.com/fmarques/corresponde/internal/service/authservice"
	"github.com/fmarques/corresponde/pkg/auth"
	"github.com/fmarques/corresponde/pkg/utils"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=users

type Service interface {
	GetUser(ctx context.Context, id int) (*domain.User, error)
	ListUsers(ctx context.Context, role, status string) ([]domain.User, error)
	UpdateUserStatus(ctx context.Context, id int, status string, adminID int, reason string) (*domain.User, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func toUserDTO(user *domain.User) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		ID:        user.ID,
		Login:     user.Login,
		Name:      user.Name,
		Role:      user.Role,
		Status:    user.Status,
		OABNumber: user.OABNumber,
		PixKey:    user.PixKey,
		City:      user.City,
		State:     user.State,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

// Me godoc
//
//	@Summary	Get the authenticated user's profile
//	@Tags		Users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.UserResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/users/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUserDTO(user))
}

// List godoc
//
//	@Summary	List users, optionally filtered by role and status
//	@Tags		Users
//	@Produce	json
//	@Param		role	query	string	false	"Role filter"
//	@Param		status	query	string	false	"Status filter"
//	@Security	BearerAuth
//	@Success	200	{array}		dto.UserResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Admin only"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	usersList, err := h.userService.ListUsers(r.Context(), r.URL.Query().Get("role"), r.URL.Query().Get("status"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.UserResponseDTO, 0, len(usersList))
	for i := range usersList {
		response = append(response, toUserDTO(&usersList[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateStatus godoc
//
//	@Summary	Change a user's status (approve, suspend, deactivate)
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		id		path	int								true	"User ID"
//	@Param		request	body	dto.UpdateUserStatusRequestDTO	true	"New status"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.UserResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid status"
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/users/{id}/status [patch]
func (h *UserHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.UpdateUserStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateUserStatus(r.Context(), id, req.Status, adminID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, authservice.ErrInvalidStatus):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUserDTO(user))
}
