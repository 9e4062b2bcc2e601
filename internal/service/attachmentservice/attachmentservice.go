package attachmentservice

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/fmarques/corresponde/internal/domain"
	"github.com/fmarques/corresponde/pkg/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=attachmentservice.go -destination=attachmentservice_mock.go -package=attachmentservice

var (
	ErrDiligenceNotFound = errors.New("diligence not found")
	ErrForbidden         = errors.New("operation not allowed for this user")
)

type Repo interface {
	Save(ctx context.Context, a *domain.Attachment) error
	FindByID(ctx context.Context, id int) (*domain.Attachment, error)
	FindByDiligenceID(ctx context.Context, diligenceID int) ([]domain.Attachment, error)
	Delete(ctx context.Context, id int) error
}

type DiligenceRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Diligence, error)
}

type URLProber interface {
	Head(url string) (statusCode int, respHeaders http.Header, err error)
}

type Service struct {
	repo          Repo
	diligenceRepo DiligenceRepo
	prober        URLProber
}

func New(repo Repo, diligenceRepo DiligenceRepo, prober URLProber) *Service {
	return &Service{
		repo:          repo,
		diligenceRepo: diligenceRepo,
		prober:        prober,
	}
}

// Upload records metadata for an externally hosted file. Missing size or
// content type is best-effort filled from a HEAD probe of the URL; a failed
// probe is not an error, the metadata just stays empty.
func (s *Service) Upload(ctx context.Context, diligenceID, uploaderID int, role, name, url, ctype string, size int64) (*domain.Attachment, error) {
	diligence, err := s.diligenceRepo.FindByID(ctx, diligenceID)
	if err != nil {
		return nil, err
	}
	if diligence == nil {
		return nil, ErrDiligenceNotFound
	}
	if !isParticipant(diligence, uploaderID, role) {
		return nil, ErrForbidden
	}

	if size == 0 || ctype == "" {
		size, ctype = s.probe(url, size, ctype)
	}

	attachment := &domain.Attachment{
		DiligenceID:  diligenceID,
		Name:         name,
		URL:          url,
		StorageKey:   uuid.New().String(),
		Type:         ctype,
		Size:         size,
		UploadedByID: uploaderID,
	}
	if err := s.repo.Save(ctx, attachment); err != nil {
		return nil, err
	}
	return attachment, nil
}

func (s *Service) probe(url string, size int64, ctype string) (int64, string) {
	status, headers, err := s.prober.Head(url)
	if err != nil || status != http.StatusOK {
		zap.L().Debug("attachment url probe failed", zap.String("url", url), zap.Error(err))
		return size, ctype
	}
	if size == 0 {
		if n, err := strconv.ParseInt(headers.Get("Content-Length"), 10, 64); err == nil {
			size = n
		}
	}
	if ctype == "" {
		ctype = headers.Get("Content-Type")
	}
	return size, ctype
}

func (s *Service) List(ctx context.Context, diligenceID, userID int, role string) ([]domain.Attachment, error) {
	diligence, err := s.diligenceRepo.FindByID(ctx, diligenceID)
	if err != nil {
		return nil, err
	}
	if diligence == nil {
		return nil, ErrDiligenceNotFound
	}
	if !isParticipant(diligence, userID, role) {
		return nil, ErrForbidden
	}
	return s.repo.FindByDiligenceID(ctx, diligenceID)
}

// Delete removes an attachment row. A missing row, or a parent diligence that
// is already gone, is not an error: the outcome the caller wanted holds.
func (s *Service) Delete(ctx context.Context, id, userID int, role string) error {
	attachment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if attachment == nil {
		return nil
	}
	if role != auth.RoleAdmin && attachment.UploadedByID != userID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

func isParticipant(d *domain.Diligence, userID int, role string) bool {
	if role == auth.RoleAdmin {
		return true
	}
	if d.ClientID == userID {
		return true
	}
	return d.CorrespondentID != nil && *d.CorrespondentID == userID
}
