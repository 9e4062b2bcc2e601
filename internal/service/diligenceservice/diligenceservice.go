package diligenceservice

import (
	"context"
	"errors"
	"time"

	"github.com/fmarques/corresponde/internal/domain"
	"github.com/fmarques/corresponde/internal/pg"
	"github.com/fmarques/corresponde/pkg/auth"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=diligenceservice.go -destination=diligenceservice_mock.go -package=diligenceservice

const (
	// StatusPending diligence created and waiting for a correspondent.
	StatusPending = "pending"
	// StatusAssigned a correspondent was chosen but has not accepted yet.
	StatusAssigned = "assigned"
	// StatusInProgress the correspondent accepted and is working.
	StatusInProgress = "in_progress"
	// StatusCompleted the work is done. Terminal.
	StatusCompleted = "completed"
	// StatusCancelled aborted by a participant or admin. Terminal.
	StatusCancelled = "cancelled"
	// StatusDisputed a participant contested the diligence outcome.
	StatusDisputed = "disputed"
)

// DefaultCorrespondentShare of the client charge paid out to the correspondent
// when no explicit payout value is given.
const DefaultCorrespondentShare = 0.7

// transitions is the central validity table. The source system accepted any
// destination status; that gap is closed here and only the admin escape hatch
// may step outside the table (logged, never silent).
var transitions = map[string][]string{
	StatusPending:    {StatusAssigned, StatusCancelled},
	StatusAssigned:   {StatusInProgress, StatusCancelled, StatusDisputed, StatusPending},
	StatusInProgress: {StatusCompleted, StatusCancelled, StatusDisputed},
	StatusDisputed:   {StatusInProgress, StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

func transitionAllowed(from, to string) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func isTerminal(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}

var (
	ErrClientNotFound        = errors.New("client not found")
	ErrCorrespondentNotFound = errors.New("correspondent not found")
	ErrDiligenceNotFound     = errors.New("diligence not found")
	ErrNotCorrespondent      = errors.New("user is not a correspondent")
	ErrIllegalTransition     = errors.New("illegal status transition")
	ErrStatusConflict        = errors.New("diligence status changed concurrently")
	ErrNotPending            = errors.New("diligence is not pending")
	ErrForbidden             = errors.New("operation not allowed for this user")
	ErrReasonRequired        = errors.New("reason is required")
	ErrNoHistory             = errors.New("diligence has no status history")
	ErrUnknownStatus         = errors.New("unknown status")
)

type Repo interface {
	Save(ctx context.Context, d *domain.Diligence) error
	FindByID(ctx context.Context, id int) (*domain.Diligence, error)
	FindByClientID(ctx context.Context, clientID int, status string) ([]domain.Diligence, error)
	FindByCorrespondentID(ctx context.Context, correspondentID int, status string) ([]domain.Diligence, error)
	FindAll(ctx context.Context, status string) ([]domain.Diligence, error)
	Update(ctx context.Context, d *domain.Diligence) error
	UpdateStatus(ctx context.Context, id int, from, to string) (bool, error)
	Assign(ctx context.Context, id, correspondentID int, from string) (bool, error)
	ClearCorrespondent(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
	FindForReminder(ctx context.Context, before time.Time, limit uint32) ([]domain.Diligence, error)
	MarkReminded(ctx context.Context, id int) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type HistoryRepo interface {
	Save(ctx context.Context, h *domain.StatusHistory) error
	FindByEntity(ctx context.Context, entityType string, entityID int) ([]domain.StatusHistory, error)
}

type Ledger interface {
	CreateForDiligence(ctx context.Context, d *domain.Diligence) error
	DeleteForDiligence(ctx context.Context, diligenceID int) error
}

type Notifier interface {
	Notify(ctx context.Context, userID int, ntype, title, message string, data map[string]any) error
}

type Service struct {
	repo        Repo
	userRepo    UserRepo
	historyRepo HistoryRepo
	ledger      Ledger
	notifier    Notifier
	txManager   pg.TXManager
}

func New(repo Repo, userRepo UserRepo, historyRepo HistoryRepo, ledger Ledger, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		repo:        repo,
		userRepo:    userRepo,
		historyRepo: historyRepo,
		ledger:      ledger,
		notifier:    notifier,
		txManager:   txManager,
	}
}

type CreateParams struct {
	Title              string
	Description        string
	Type               string
	Priority           string
	Value              float64
	CorrespondentValue float64
	Deadline           *time.Time
	ClientID           int
	CorrespondentID    *int
	City               string
	State              string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*domain.Diligence, error) {
	client, err := s.userRepo.FindByID(ctx, params.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil || client.Role != auth.RoleClient {
		return nil, ErrClientNotFound
	}

	if params.CorrespondentID != nil {
		correspondent, err := s.userRepo.FindByID(ctx, *params.CorrespondentID)
		if err != nil {
			return nil, err
		}
		if correspondent == nil {
			return nil, ErrCorrespondentNotFound
		}
		if correspondent.Role != auth.RoleCorrespondent {
			return nil, ErrNotCorrespondent
		}
	}

	status := StatusPending
	if params.CorrespondentID != nil {
		status = StatusAssigned
	}

	if params.Priority == "" {
		params.Priority = "normal"
	}
	if params.CorrespondentValue == 0 {
		params.CorrespondentValue = params.Value * DefaultCorrespondentShare
	}

	diligence := &domain.Diligence{
		Protocol:           ksuid.New().String(),
		Title:              params.Title,
		Description:        params.Description,
		Type:               params.Type,
		Status:             status,
		Priority:           params.Priority,
		Value:              params.Value,
		CorrespondentValue: params.CorrespondentValue,
		Deadline:           params.Deadline,
		ClientID:           params.ClientID,
		CorrespondentID:    params.CorrespondentID,
		City:               params.City,
		State:              params.State,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.Save(ctx, diligence); err != nil {
			return err
		}
		return s.ledger.CreateForDiligence(ctx, diligence)
	})
	if err != nil {
		zap.L().Error("can't create diligence", zap.Error(err))
		return nil, err
	}

	if diligence.CorrespondentID != nil {
		s.notify(ctx, *diligence.CorrespondentID, "diligence_assigned", "New diligence assigned",
			"You were assigned to diligence "+diligence.Protocol, diligence.ID)
	}

	return diligence, nil
}

func (s *Service) List(ctx context.Context, userID int, role, status string) ([]domain.Diligence, error) {
	switch role {
	case auth.RoleClient:
		return s.repo.FindByClientID(ctx, userID, status)
	case auth.RoleCorrespondent:
		return s.repo.FindByCorrespondentID(ctx, userID, status)
	default:
		return s.repo.FindAll(ctx, status)
	}
}

func (s *Service) Get(ctx context.Context, id, userID int, role string) (*domain.Diligence, error) {
	diligence, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if diligence == nil {
		return nil, ErrDiligenceNotFound
	}
	if !canView(diligence, userID, role) {
		return nil, ErrForbidden
	}
	return diligence, nil
}

func canView(d *domain.Diligence, userID int, role string) bool {
	if role == auth.RoleAdmin {
		return true
	}
	if d.ClientID == userID {
		return true
	}
	return d.CorrespondentID != nil && *d.CorrespondentID == userID
}

type UpdateParams struct {
	Title       *string
	Description *string
	Priority    *string
	Value       *float64
	Deadline    *time.Time
	HasDeadline bool
}

func (s *Service) UpdatePending(ctx context.Context, id, userID int, role string, params UpdateParams) (*domain.Diligence, error) {
	diligence, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if diligence == nil {
		return nil, ErrDiligenceNotFound
	}
	if role != auth.RoleAdmin && diligence.ClientID != userID {
		return nil, ErrForbidden
	}
	if diligence.Status != StatusPending {
		return nil, ErrNotPending
	}

	if params.Title != nil {
		diligence.Title = *params.Title
	}
	if params.Description != nil {
		diligence.Description = *params.Description
	}
	if params.Priority != nil {
		diligence.Priority = *params.Priority
	}
	if params.Value != nil {
		diligence.Value = *params.Value
		diligence.CorrespondentValue = *params.Value * DefaultCorrespondentShare
	}
	if params.HasDeadline {
		diligence.Deadline = params.Deadline
	}

	if err := s.repo.Update(ctx, diligence); err != nil {
		return nil, err
	}
	return diligence, nil
}

func (s *Service) Delete(ctx context.Context, id, userID int, role string) error {
	diligence, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if diligence == nil {
		return ErrDiligenceNotFound
	}
	if role != auth.RoleAdmin && diligence.ClientID != userID {
		return ErrForbidden
	}
	if diligence.Status != StatusPending {
		return ErrNotPending
	}
	// The ledger rows created alongside the diligence reference it, so they
	// go first or the delete hits their foreign keys.
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.ledger.DeleteForDiligence(ctx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, id)
	})
}

// Assign picks a correspondent for a pending diligence, or re-assigns an
// already assigned one. The repo update is conditional on the status the
// caller saw, so two admins racing on the same row cannot both succeed.
func (s *Service) Assign(ctx context.Context, id, correspondentID, actorID int) (*domain.Diligence, error) {
	diligence, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if diligence == nil {
		return nil, ErrDiligenceNotFound
	}
	if diligence.Status != StatusPending && diligence.Status != StatusAssigned {
		return nil, ErrIllegalTransition
	}

	correspondent, err := s.userRepo.FindByID(ctx, correspondentID)
	if err != nil {
		return nil, err
	}
	if correspondent == nil {
		return nil, ErrCorrespondentNotFound
	}
	if correspondent.Role != auth.RoleCorrespondent {
		return nil, ErrNotCorrespondent
	}

	previousStatus := diligence.Status
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.repo.Assign(ctx, id, correspondentID, previousStatus)
		if err != nil {
			return err
		}
		if !ok {
			return ErrStatusConflict
		}
		return s.historyRepo.Save(ctx, &domain.StatusHistory{
			EntityType:     domain.EntityDiligence,
			EntityID:       id,
			PreviousStatus: previousStatus,
			NewStatus:      StatusAssigned,
			UserID:         actorID,
		})
	})
	if err != nil {
		return nil, err
	}

	diligence.Status = StatusAssigned
	diligence.CorrespondentID = &correspondentID

	s.notify(ctx, correspondentID, "diligence_assigned", "New diligence assigned",
		"You were assigned to diligence "+diligence.Protocol, diligence.ID)

	return diligence, nil
}

// Accept is the correspondent taking on an assigned diligence. A mismatched
// correspondent gets a not-found answer rather than a hint the row exists.
func (s *Service) Accept(ctx context.Context, id, correspondentID int) (*domain.Diligence, error) {
	diligence, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if diligence == nil || diligence.CorrespondentID == nil || *diligence.CorrespondentID != correspondentID {
		return nil, ErrDiligenceNotFound
	}
	if diligence.Status != StatusAssigned {
		return nil, ErrIllegalTransition
	}

	if err := s.applyTransition(ctx, diligence, StatusInProgress, correspondentID, "", false); err != nil {
		return nil, err
	}

	s.notify(ctx, diligence.ClientID, "diligence_accepted", "Diligence accepted",
		"The correspondent accepted diligence "+diligence.Protocol, diligence.ID)

	return diligence, nil
}

func (s *Service) Start(ctx context.Context, id, actorID int, role string) (*domain.Diligence, error) {
	diligence, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if diligence == nil {
		return nil, ErrDiligenceNotFound
	}
	if role != auth.RoleAdmin && !isAssignee(diligence, actorID) {
		return nil, ErrForbidden
	}
	if diligence.Status != StatusAssigned {
		return nil, ErrIllegalTransition
	}

	if err := s.applyTransition(ctx, diligence, StatusInProgress, actorID, "", false); err != nil {
		return nil, err
	}
	return diligence, nil
}

func (s *Service) Complete(ctx context.Context, id, actorID int, role string) (*domain.Diligence, error) {
	diligence, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if diligence == nil {
		return nil, ErrDiligenceNotFound
	}
	if role != auth.RoleAdmin && !isAssignee(diligence, actorID) {
		return nil, ErrForbidden
	}
	if diligence.Status != StatusInProgress {
		return nil, ErrIllegalTransition
	}

	if err := s.applyTransition(ctx, diligence, StatusCompleted, actorID, "", false); err != nil {
		return nil, err
	}

	s.notify(ctx, diligence.ClientID, "diligence_completed", "Diligence completed",
		"Diligence "+diligence.Protocol+" was completed", diligence.ID)

	return diligence, nil
}

func (s *Service) Cancel(ctx context.Context, id, actorID int, role, reason string) (*domain.Diligence, error) {
	if reason == "" {
		return nil, ErrReasonRequired
	}
	diligence, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if diligence == nil {
		return nil, ErrDiligenceNotFound
	}
	if !canView(diligence, actorID, role) {
		return nil, ErrForbidden
	}
	if isTerminal(diligence.Status) {
		return nil, ErrIllegalTransition
	}

	if err := s.applyTransition(ctx, diligence, StatusCancelled, actorID, reason, false); err != nil {
		return nil, err
	}

	s.notifyParticipants(ctx, diligence, actorID, "diligence_cancelled", "Diligence cancelled",
		"Diligence "+diligence.Protocol+" was cancelled: "+reason)

	return diligence, nil
}

func (s *Service) Dispute(ctx context.Context, id, actorID int, role, reason string) (*domain.Diligence, error) {
	if reason == "" {
		return nil, ErrReasonRequired
	}
	diligence, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if diligence == nil {
		return nil, ErrDiligenceNotFound
	}
	if !canView(diligence, actorID, role) {
		return nil, ErrForbidden
	}
	if diligence.Status != StatusAssigned && diligence.Status != StatusInProgress {
		return nil, ErrIllegalTransition
	}

	if err := s.applyTransition(ctx, diligence, StatusDisputed, actorID, reason, false); err != nil {
		return nil, err
	}

	s.notifyParticipants(ctx, diligence, actorID, "diligence_disputed", "Diligence disputed",
		"Diligence "+diligence.Protocol+" was disputed: "+reason)

	return diligence, nil
}

// UpdateStatus is the admin escape hatch. Transitions outside the validity
// table are applied but logged loudly instead of failing, so the permissive
// behaviour of the legacy system stays observable.
func (s *Service) UpdateStatus(ctx context.Context, id int, status string, actorID int, reason string) (*domain.Diligence, error) {
	if _, ok := transitions[status]; !ok {
		return nil, ErrUnknownStatus
	}
	diligence, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if diligence == nil {
		return nil, ErrDiligenceNotFound
	}
	if diligence.Status == status {
		// Degenerate call, but the audit trail still records who asked.
		if err := s.historyRepo.Save(ctx, &domain.StatusHistory{
			EntityType:     domain.EntityDiligence,
			EntityID:       id,
			PreviousStatus: status,
			NewStatus:      status,
			UserID:         actorID,
			Reason:         reason,
		}); err != nil {
			return nil, err
		}
		return diligence, nil
	}

	force := !transitionAllowed(diligence.Status, status)
	if force {
		zap.L().Warn("forcing status transition outside the validity table",
			zap.Int("diligenceID", id),
			zap.String("from", diligence.Status),
			zap.String("to", status),
			zap.Int("actorID", actorID),
		)
	}

	if err := s.applyTransition(ctx, diligence, status, actorID, reason, force); err != nil {
		return nil, err
	}
	return diligence, nil
}

// RevertStatus restores the previous status recorded in the latest history
// row, itself appending a new row. Reverting to pending detaches the
// correspondent so a pending diligence never carries one.
func (s *Service) RevertStatus(ctx context.Context, id, actorID int, reason string) (*domain.Diligence, error) {
	diligence, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if diligence == nil {
		return nil, ErrDiligenceNotFound
	}

	history, err := s.historyRepo.FindByEntity(ctx, domain.EntityDiligence, id)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, ErrNoHistory
	}
	target := history[len(history)-1].PreviousStatus

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.repo.UpdateStatus(ctx, id, diligence.Status, target)
		if err != nil {
			return err
		}
		if !ok {
			return ErrStatusConflict
		}
		if target == StatusPending && diligence.CorrespondentID != nil {
			if err := s.repo.ClearCorrespondent(ctx, id); err != nil {
				return err
			}
		}
		return s.historyRepo.Save(ctx, &domain.StatusHistory{
			EntityType:     domain.EntityDiligence,
			EntityID:       id,
			PreviousStatus: diligence.Status,
			NewStatus:      target,
			UserID:         actorID,
			Reason:         reason,
		})
	})
	if err != nil {
		return nil, err
	}

	diligence.Status = target
	if target == StatusPending {
		diligence.CorrespondentID = nil
	}
	return diligence, nil
}

func (s *Service) StatusHistory(ctx context.Context, id, userID int, role string) ([]domain.StatusHistory, error) {
	diligence, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if diligence == nil {
		return nil, ErrDiligenceNotFound
	}
	if !canView(diligence, userID, role) {
		return nil, ErrForbidden
	}
	return s.historyRepo.FindByEntity(ctx, domain.EntityDiligence, id)
}

// applyTransition performs the conditional status update and the history
// append in one transaction. Exactly one history row is written per call and
// its previousStatus is the status read immediately before the update.
func (s *Service) applyTransition(ctx context.Context, d *domain.Diligence, to string, actorID int, reason string, force bool) error {
	if !force && !transitionAllowed(d.Status, to) {
		return ErrIllegalTransition
	}

	previousStatus := d.Status
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.repo.UpdateStatus(ctx, d.ID, previousStatus, to)
		if err != nil {
			return err
		}
		if !ok {
			return ErrStatusConflict
		}
		return s.historyRepo.Save(ctx, &domain.StatusHistory{
			EntityType:     domain.EntityDiligence,
			EntityID:       d.ID,
			PreviousStatus: previousStatus,
			NewStatus:      to,
			UserID:         actorID,
			Reason:         reason,
		})
	})
	if err != nil {
		return err
	}

	d.Status = to
	return nil
}

func isAssignee(d *domain.Diligence, userID int) bool {
	return d.CorrespondentID != nil && *d.CorrespondentID == userID
}

func (s *Service) notify(ctx context.Context, userID int, ntype, title, message string, diligenceID int) {
	err := s.notifier.Notify(ctx, userID, ntype, title, message, map[string]any{"diligence_id": diligenceID})
	if err != nil {
		zap.L().Error("can't send notification", zap.String("type", ntype), zap.Error(err))
	}
}

func (s *Service) notifyParticipants(ctx context.Context, d *domain.Diligence, actorID int, ntype, title, message string) {
	if d.ClientID != actorID {
		s.notify(ctx, d.ClientID, ntype, title, message, d.ID)
	}
	if d.CorrespondentID != nil && *d.CorrespondentID != actorID {
		s.notify(ctx, *d.CorrespondentID, ntype, title, message, d.ID)
	}
}
