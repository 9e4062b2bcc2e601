package diligences

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fmarques/corresponde/internal/domain"
	"github.com/fmarques/corresponde/internal/dto"
	"github.com/fmarques/corresponde/internal/service/diligenceservice"
	"github.com/fmarques/corresponde/pkg/auth"
	"github.com/fmarques/corresponde/pkg/utils"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=diligences.go -destination=diligences_mock.go -package=diligences

type Service interface {
	Create(ctx context.Context, params diligenceservice.CreateParams) (*domain.Diligence, error)
	List(ctx context.Context, userID int, role, status string) ([]domain.Diligence, error)
	Get(ctx context.Context, id, userID int, role string) (*domain.Diligence, error)
	UpdatePending(ctx context.Context, id, userID int, role string, params diligenceservice.UpdateParams) (*domain.Diligence, error)
	Delete(ctx context.Context, id, userID int, role string) error
	Assign(ctx context.Context, id, correspondentID, actorID int) (*domain.Diligence, error)
	Accept(ctx context.Context, id, correspondentID int) (*domain.Diligence, error)
	Start(ctx context.Context, id, actorID int, role string) (*domain.Diligence, error)
	Complete(ctx context.Context, id, actorID int, role string) (*domain.Diligence, error)
	Cancel(ctx context.Context, id, actorID int, role, reason string) (*domain.Diligence, error)
	Dispute(ctx context.Context, id, actorID int, role, reason string) (*domain.Diligence, error)
	UpdateStatus(ctx context.Context, id int, status string, actorID int, reason string) (*domain.Diligence, error)
	RevertStatus(ctx context.Context, id, actorID int, reason string) (*domain.Diligence, error)
	StatusHistory(ctx context.Context, id, userID int, role string) ([]domain.StatusHistory, error)
}

type DiligenceHandler struct {
	diligenceService Service
}

func New(diligenceService Service) *DiligenceHandler {
	return &DiligenceHandler{
		diligenceService: diligenceService,
	}
}

func toDiligenceDTO(d *domain.Diligence) dto.DiligenceResponseDTO {
	resp := dto.DiligenceResponseDTO{
		ID:                 d.ID,
		Protocol:           d.Protocol,
		Title:              d.Title,
		Description:        d.Description,
		Type:               d.Type,
		Status:             d.Status,
		Priority:           d.Priority,
		Value:              d.Value,
		CorrespondentValue: d.CorrespondentValue,
		ClientID:           d.ClientID,
		CorrespondentID:    d.CorrespondentID,
		City:               d.City,
		State:              d.State,
		CreatedAt:          d.CreatedAt.Format(time.RFC3339),
	}
	if d.Deadline != nil {
		resp.Deadline = d.Deadline.Format(time.RFC3339)
	}
	return resp
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, diligenceservice.ErrDiligenceNotFound),
		errors.Is(err, diligenceservice.ErrClientNotFound),
		errors.Is(err, diligenceservice.ErrCorrespondentNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, diligenceservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, diligenceservice.ErrStatusConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, diligenceservice.ErrIllegalTransition),
		errors.Is(err, diligenceservice.ErrNotCorrespondent),
		errors.Is(err, diligenceservice.ErrNotPending),
		errors.Is(err, diligenceservice.ErrReasonRequired),
		errors.Is(err, diligenceservice.ErrNoHistory),
		errors.Is(err, diligenceservice.ErrUnknownStatus):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func diligenceID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// Create godoc
//
//	@Summary		Create a new diligence
//	@Description	Clients create diligences for themselves; admins may create on behalf of a client. Ledger rows are created in the same transaction.
//	@Tags			Diligences
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateDiligenceRequestDTO	true	"Diligence to create"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.DiligenceResponseDTO
//	@Failure		400	{object}	utils.Response	"Bad input"
//	@Failure		404	{object}	utils.Response	"Client or correspondent not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/diligences [post]
func (h *DiligenceHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)

	var req dto.CreateDiligenceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}
	if req.Value <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Value must be positive")
		return
	}

	clientID := userID
	if role == auth.RoleAdmin && req.ClientID != 0 {
		clientID = req.ClientID
	}

	var deadline *time.Time
	if req.Deadline != "" {
		parsed, err := time.Parse(time.RFC3339, req.Deadline)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid deadline format")
			return
		}
		deadline = &parsed
	}

	diligence, err := h.diligenceService.Create(r.Context(), diligenceservice.CreateParams{
		Title:              req.Title,
		Description:        req.Description,
		Type:               req.Type,
		Priority:           req.Priority,
		Value:              req.Value,
		CorrespondentValue: req.CorrespondentValue,
		Deadline:           deadline,
		ClientID:           clientID,
		CorrespondentID:    req.CorrespondentID,
		City:               req.City,
		State:              req.State,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDiligenceDTO(diligence))
}

// List godoc
//
//	@Summary	List diligences visible to the caller
//	@Tags		Diligences
//	@Produce	json
//	@Param		status	query	string	false	"Status filter"
//	@Security	BearerAuth
//	@Success	200	{array}		dto.DiligenceResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/diligences [get]
func (h *DiligenceHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)

	diligencesList, err := h.diligenceService.List(r.Context(), userID, role, r.URL.Query().Get("status"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.DiligenceResponseDTO, 0, len(diligencesList))
	for i := range diligencesList {
		response = append(response, toDiligenceDTO(&diligencesList[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary	Get one diligence
//	@Tags		Diligences
//	@Produce	json
//	@Param		id	path	int	true	"Diligence ID"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.DiligenceResponseDTO
//	@Failure	403	{object}	utils.Response	"Not a participant"
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Router		/api/diligences/{id} [get]
func (h *DiligenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)

	id, err := diligenceID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid diligence id")
		return
	}

	diligence, err := h.diligenceService.Get(r.Context(), id, userID, role)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDiligenceDTO(diligence))
}

// Update godoc
//
//	@Summary	Edit a pending diligence
//	@Tags		Diligences
//	@Accept		json
//	@Produce	json
//	@Param		id		path	int								true	"Diligence ID"
//	@Param		request	body	dto.UpdateDiligenceRequestDTO	true	"Fields to change"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.DiligenceResponseDTO
//	@Failure	400	{object}	utils.Response	"Diligence is not pending"
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Router		/api/diligences/{id} [patch]
func (h *DiligenceHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)

	id, err := diligenceID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid diligence id")
		return
	}

	var req dto.UpdateDiligenceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params := diligenceservice.UpdateParams{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Value:       req.Value,
	}
	if req.Deadline != nil {
		params.HasDeadline = true
		if *req.Deadline != "" {
			parsed, err := time.Parse(time.RFC3339, *req.Deadline)
			if err != nil {
				utils.RespondWithError(w, http.StatusBadRequest, "Invalid deadline format")
				return
			}
			params.Deadline = &parsed
		}
	}

	diligence, err := h.diligenceService.UpdatePending(r.Context(), id, userID, role, params)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDiligenceDTO(diligence))
}

// Delete godoc
//
//	@Summary	Delete a pending diligence
//	@Tags		Diligences
//	@Param		id	path	int	true	"Diligence ID"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	400	{object}	utils.Response	"Diligence is not pending"
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Router		/api/diligences/{id} [delete]
func (h *DiligenceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)

	id, err := diligenceID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid diligence id")
		return
	}

	if err := h.diligenceService.Delete(r.Context(), id, userID, role); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// Assign godoc
//
//	@Summary	Assign a correspondent to a diligence
//	@Tags		Diligences
//	@Accept		json
//	@Produce	json
//	@Param		id		path	int								true	"Diligence ID"
//	@Param		request	body	dto.AssignDiligenceRequestDTO	true	"Correspondent"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.DiligenceResponseDTO
//	@Failure	404	{object}	utils.Response	"Diligence or correspondent not found"
//	@Failure	409	{object}	utils.Response	"Concurrent status change"
//	@Router		/api/diligences/{id}/assign [patch]
func (h *DiligenceHandler) Assign(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.UserIDKey).(int)

	id, err := diligenceID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid diligence id")
		return
	}

	var req dto.AssignDiligenceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CorrespondentID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Correspondent id is required")
		return
	}

	diligence, err := h.diligenceService.Assign(r.Context(), id, req.CorrespondentID, actorID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDiligenceDTO(diligence))
}

// Accept godoc
//
//	@Summary	Accept an assigned diligence
//	@Tags		Diligences
//	@Produce	json
//	@Param		id	path	int	true	"Diligence ID"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.DiligenceResponseDTO
//	@Failure	400	{object}	utils.Response	"Diligence is not assigned"
//	@Failure	404	{object}	utils.Response	"Not found or not the assignee"
//	@Router		/api/diligences/{id}/accept [patch]
func (h *DiligenceHandler) Accept(w http.ResponseWriter, r *http.Request) {
	correspondentID := r.Context().Value(auth.UserIDKey).(int)

	id, err := diligenceID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid diligence id")
		return
	}

	diligence, err := h.diligenceService.Accept(r.Context(), id, correspondentID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDiligenceDTO(diligence))
}

// Start godoc
//
//	@Summary	Move an assigned diligence to in_progress
//	@Tags		Diligences
//	@Produce	json
//	@Param		id	path	int	true	"Diligence ID"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.DiligenceResponseDTO
//	@Failure	400	{object}	utils.Response	"Diligence is not assigned"
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Router		/api/diligences/{id}/start [patch]
func (h *DiligenceHandler) Start(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)

	id, err := diligenceID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid diligence id")
		return
	}

	diligence, err := h.diligenceService.Start(r.Context(), id, actorID, role)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDiligenceDTO(diligence))
}

// Complete godoc
//
//	@Summary	Complete an in-progress diligence
//	@Tags		Diligences
//	@Produce	json
//	@Param		id	path	int	true	"Diligence ID"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.DiligenceResponseDTO
//	@Failure	400	{object}	utils.Response	"Diligence is not in progress"
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Router		/api/diligences/{id}/complete [patch]
func (h *DiligenceHandler) Complete(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)

	id, err := diligenceID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid diligence id")
		return
	}

	diligence, err := h.diligenceService.Complete(r.Context(), id, actorID, role)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDiligenceDTO(diligence))
}

// Cancel godoc
//
//	@Summary	Cancel a diligence
//	@Tags		Diligences
//	@Accept		json
//	@Produce	json
//	@Param		id		path	int								true	"Diligence ID"
//	@Param		request	body	dto.CancelDiligenceRequestDTO	true	"Reason"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.DiligenceResponseDTO
//	@Failure	400	{object}	utils.Response	"Terminal status or missing reason"
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Router		/api/diligences/{id}/cancel [patch]
func (h *DiligenceHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)

	id, err := diligenceID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid diligence id")
		return
	}

	var req dto.CancelDiligenceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	diligence, err := h.diligenceService.Cancel(r.Context(), id, actorID, role, req.Reason)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDiligenceDTO(diligence))
}

// Dispute godoc
//
//	@Summary	Open a dispute on an assigned or in-progress diligence
//	@Tags		Diligences
//	@Accept		json
//	@Produce	json
//	@Param		id		path	int								true	"Diligence ID"
//	@Param		request	body	dto.DisputeDiligenceRequestDTO	true	"Reason"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.DiligenceResponseDTO
//	@Failure	400	{object}	utils.Response	"Status cannot be disputed"
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Router		/api/diligences/{id}/dispute [patch]
func (h *DiligenceHandler) Dispute(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)

	id, err := diligenceID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid diligence id")
		return
	}

	var req dto.DisputeDiligenceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	diligence, err := h.diligenceService.Dispute(r.Context(), id, actorID, role, req.Reason)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDiligenceDTO(diligence))
}

// UpdateStatus godoc
//
//	@Summary		Set a diligence status directly
//	@Description	Admin-only escape hatch; transitions outside the validity table are applied but logged.
//	@Tags			Diligences
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Diligence ID"
//	@Param			request	body	dto.UpdateStatusRequestDTO	true	"Destination status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DiligenceResponseDTO
//	@Failure		400	{object}	utils.Response	"Unknown status"
//	@Failure		404	{object}	utils.Response	"Not found"
//	@Router			/api/diligences/{id}/status [patch]
func (h *DiligenceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.UserIDKey).(int)

	id, err := diligenceID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid diligence id")
		return
	}

	var req dto.UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Status is required")
		return
	}

	diligence, err := h.diligenceService.UpdateStatus(r.Context(), id, req.Status, actorID, req.Reason)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDiligenceDTO(diligence))
}

// RevertStatus godoc
//
//	@Summary	Revert the last status transition
//	@Tags		Diligences
//	@Accept		json
//	@Produce	json
//	@Param		id		path	int							true	"Diligence ID"
//	@Param		request	body	dto.RevertStatusRequestDTO	false	"Reason"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.DiligenceResponseDTO
//	@Failure	400	{object}	utils.Response	"No history to revert"
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Router		/api/diligences/{id}/revert-status [post]
func (h *DiligenceHandler) RevertStatus(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.UserIDKey).(int)

	id, err := diligenceID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid diligence id")
		return
	}

	var req dto.RevertStatusRequestDTO
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	diligence, err := h.diligenceService.RevertStatus(r.Context(), id, actorID, req.Reason)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDiligenceDTO(diligence))
}

// StatusHistory godoc
//
//	@Summary	List the status audit trail of a diligence
//	@Tags		Diligences
//	@Produce	json
//	@Param		id	path	int	true	"Diligence ID"
//	@Security	BearerAuth
//	@Success	200	{array}		dto.StatusHistoryResponseDTO
//	@Failure	403	{object}	utils.Response	"Not a participant"
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Router		/api/diligences/{id}/status-history [get]
func (h *DiligenceHandler) StatusHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)

	id, err := diligenceID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid diligence id")
		return
	}

	history, err := h.diligenceService.StatusHistory(r.Context(), id, userID, role)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	response := make([]dto.StatusHistoryResponseDTO, 0, len(history))
	for _, h := range history {
		response = append(response, dto.StatusHistoryResponseDTO{
			PreviousStatus: h.PreviousStatus,
			NewStatus:      h.NewStatus,
			UserID:         h.UserID,
			Reason:         h.Reason,
			CreatedAt:      h.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
