package notifications

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fmarques/corresponde/internal/domain"
	"github.com/fmarques/corresponde/internal/dto"
	"github.com/fmarques/corresponde/internal/service/notificationservice"
	"github.com/fmarques/corresponde/pkg/auth"
	"github.com/fmarques/corresponde/pkg/utils"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=notifications.go -destination=notifications_mock.go -package=notifications

type Service interface {
	List(ctx context.Context, userID int, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID int) error
	MarkAllRead(ctx context.Context, userID int) error
}

type NotificationHandler struct {
	notificationService Service
}

func New(notificationService Service) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// List godoc
//
//	@Summary	List the caller's notifications
//	@Tags		Notifications
//	@Produce	json
//	@Param		unread	query	bool	false	"Only unread notifications"
//	@Security	BearerAuth
//	@Success	200	{array}		dto.NotificationResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	unreadOnly := r.URL.Query().Get("unread") == "true"

	notificationsList, err := h.notificationService.List(r.Context(), userID, unreadOnly)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.NotificationResponseDTO, 0, len(notificationsList))
	for _, n := range notificationsList {
		response = append(response, dto.NotificationResponseDTO{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Data:      n.Data,
			Read:      n.Read,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// MarkRead godoc
//
//	@Summary	Mark one notification as read
//	@Tags		Notifications
//	@Param		id	path	int	true	"Notification ID"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Notification not found"
//	@Router		/api/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid notification id")
		return
	}

	if err := h.notificationService.MarkRead(r.Context(), id, userID); err != nil {
		if errors.Is(err, notificationservice.ErrNotificationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// MarkAllRead godoc
//
//	@Summary	Mark all of the caller's notifications as read
//	@Tags		Notifications
//	@Security	BearerAuth
//	@Success	204
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/notifications/read-all [patch]
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	if err := h.notificationService.MarkAllRead(r.Context(), userID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}
