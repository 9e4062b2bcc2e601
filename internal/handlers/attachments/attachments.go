package attachments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fmarques/corresponde/internal/domain"
	"github.com/fmarques/corresponde/internal/dto"
	"github.com/fmarques/corresponde/internal/service/attachmentservice"
	"github.com/fmarques/corresponde/pkg/auth"
	"github.com/fmarques/corresponde/pkg/utils"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=attachments.go -destination=attachments_mock.go -package=attachments

type Service interface {
	Upload(ctx context.Context, diligenceID, uploaderID int, role, name, url, ctype string, size int64) (*domain.Attachment, error)
	List(ctx context.Context, diligenceID, userID int, role string) ([]domain.Attachment, error)
	Delete(ctx context.Context, id, userID int, role string) error
}

type AttachmentHandler struct {
	attachmentService Service
}

func New(attachmentService Service) *AttachmentHandler {
	return &AttachmentHandler{
		attachmentService: attachmentService,
	}
}

func toAttachmentDTO(a *domain.Attachment) dto.AttachmentResponseDTO {
	return dto.AttachmentResponseDTO{
		ID:           a.ID,
		DiligenceID:  a.DiligenceID,
		Name:         a.Name,
		URL:          a.URL,
		Type:         a.Type,
		Size:         a.Size,
		UploadedByID: a.UploadedByID,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, attachmentservice.ErrDiligenceNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, attachmentservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Upload godoc
//
//	@Summary	Attach a document to a diligence
//	@Tags		Attachments
//	@Accept		json
//	@Produce	json
//	@Param		diligenceID	path	int								true	"Diligence ID"
//	@Param		request		body	dto.UploadAttachmentRequestDTO	true	"Attachment metadata"
//	@Security	BearerAuth
//	@Success	201	{object}	dto.AttachmentResponseDTO
//	@Failure	400	{object}	utils.Response	"Bad input"
//	@Failure	403	{object}	utils.Response	"Not a participant"
//	@Failure	404	{object}	utils.Response	"Diligence not found"
//	@Router		/api/attachments/{diligenceID} [post]
func (h *AttachmentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)

	diligenceID, err := strconv.Atoi(chi.URLParam(r, "diligenceID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid diligence id")
		return
	}

	var req dto.UploadAttachmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.URL == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and url are required")
		return
	}

	attachment, err := h.attachmentService.Upload(r.Context(), diligenceID, userID, role, req.Name, req.URL, req.Type, req.Size)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toAttachmentDTO(attachment))
}

// List godoc
//
//	@Summary	List the attachments of a diligence
//	@Tags		Attachments
//	@Produce	json
//	@Param		diligenceID	path	int	true	"Diligence ID"
//	@Security	BearerAuth
//	@Success	200	{array}		dto.AttachmentResponseDTO
//	@Failure	403	{object}	utils.Response	"Not a participant"
//	@Failure	404	{object}	utils.Response	"Diligence not found"
//	@Router		/api/attachments/{diligenceID} [get]
func (h *AttachmentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)

	diligenceID, err := strconv.Atoi(chi.URLParam(r, "diligenceID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid diligence id")
		return
	}

	attachmentsList, err := h.attachmentService.List(r.Context(), diligenceID, userID, role)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	response := make([]dto.AttachmentResponseDTO, 0, len(attachmentsList))
	for i := range attachmentsList {
		response = append(response, toAttachmentDTO(&attachmentsList[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Delete godoc
//
//	@Summary		Delete an attachment
//	@Description	Deleting an attachment that no longer exists succeeds with no effect.
//	@Tags			Attachments
//	@Param			id	path	int	true	"Attachment ID"
//	@Security		BearerAuth
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Not the uploader"
//	@Router			/api/attachments/{id} [delete]
func (h *AttachmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid attachment id")
		return
	}

	if err := h.attachmentService.Delete(r.Context(), id, userID, role); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}
