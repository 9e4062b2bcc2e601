package handlers

import (
	"net/http"

	_ "github.com/fmarques/corresponde/docs"
	attachmenthandlers "github.com/fmarques/corresponde/internal/handlers/attachments"
	authhandlers "github.com/fmarques/corresponde/internal/handlers/auth"
	diligencehandlers "github.com/fmarques/corresponde/internal/handlers/diligences"
	financialhandlers "github.com/fmarques/corresponde/internal/handlers/financial"
	notificationhandlers "github.com/fmarques/corresponde/internal/handlers/notifications"
	userhandlers "github.com/fmarques/corresponde/internal/handlers/users"
	"github.com/fmarques/corresponde/internal/service"
	"github.com/fmarques/corresponde/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type DiligenceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Start(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Dispute(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	RevertStatus(w http.ResponseWriter, r *http.Request)
	StatusHistory(w http.ResponseWriter, r *http.Request)
}

type FinancialHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	Data(w http.ResponseWriter, r *http.Request)
	DiligenceFinance(w http.ResponseWriter, r *http.Request)
	SubmitProof(w http.ResponseWriter, r *http.Request)
	VerifyProof(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
}

type AttachmentHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	UserHandler         UserHandler
	DiligenceHandler    DiligenceHandler
	FinancialHandler    FinancialHandler
	NotificationHandler NotificationHandler
	AttachmentHandler   AttachmentHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		UserHandler:         userhandlers.New(s.UserService),
		DiligenceHandler:    diligencehandlers.New(s.DiligenceService),
		FinancialHandler:    financialhandlers.New(s.FinancialService),
		NotificationHandler: notificationhandlers.New(s.NotificationService),
		AttachmentHandler:   attachmenthandlers.New(s.AttachmentService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", h.UserHandler.Me)
				r.With(auth.RequireRoles(auth.RoleAdmin)).Get("/", h.UserHandler.List)
				r.With(auth.RequireRoles(auth.RoleAdmin)).Patch("/{id}/status", h.UserHandler.UpdateStatus)
			})

			r.Route("/diligences", func(r chi.Router) {
				r.With(auth.RequireRoles(auth.RoleClient, auth.RoleAdmin)).Post("/", h.DiligenceHandler.Create)
				r.Get("/", h.DiligenceHandler.List)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.DiligenceHandler.Get)
					r.With(auth.RequireRoles(auth.RoleClient, auth.RoleAdmin)).Patch("/", h.DiligenceHandler.Update)
					r.With(auth.RequireRoles(auth.RoleClient, auth.RoleAdmin)).Delete("/", h.DiligenceHandler.Delete)
					r.With(auth.RequireRoles(auth.RoleAdmin)).Patch("/assign", h.DiligenceHandler.Assign)
					r.With(auth.RequireRoles(auth.RoleCorrespondent)).Patch("/accept", h.DiligenceHandler.Accept)
					r.With(auth.RequireRoles(auth.RoleCorrespondent, auth.RoleAdmin)).Patch("/start", h.DiligenceHandler.Start)
					r.With(auth.RequireRoles(auth.RoleCorrespondent, auth.RoleAdmin)).Patch("/complete", h.DiligenceHandler.Complete)
					r.Patch("/cancel", h.DiligenceHandler.Cancel)
					r.Patch("/dispute", h.DiligenceHandler.Dispute)
					r.With(auth.RequireRoles(auth.RoleAdmin)).Patch("/status", h.DiligenceHandler.UpdateStatus)
					r.With(auth.RequireRoles(auth.RoleAdmin)).Post("/revert-status", h.DiligenceHandler.RevertStatus)
					r.Get("/status-history", h.DiligenceHandler.StatusHistory)
				})
			})

			r.Route("/financial", func(r chi.Router) {
				r.With(auth.RequireRoles(auth.RoleAdmin)).Get("/summary", h.FinancialHandler.Summary)
				r.With(auth.RequireRoles(auth.RoleAdmin)).Get("/data", h.FinancialHandler.Data)
				r.Get("/diligence/{id}", h.FinancialHandler.DiligenceFinance)
				r.With(auth.RequireRoles(auth.RoleClient)).Post("/payment-proof/{diligenceID}", h.FinancialHandler.SubmitProof)
				r.With(auth.RequireRoles(auth.RoleAdmin)).Patch("/payment-proof/{proofID}/verify", h.FinancialHandler.VerifyProof)
				r.With(auth.RequireRoles(auth.RoleAdmin)).Patch("/payments/{id}/paid", h.FinancialHandler.MarkPaid)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.NotificationHandler.List)
				r.Patch("/read-all", h.NotificationHandler.MarkAllRead)
				r.Patch("/{id}/read", h.NotificationHandler.MarkRead)
			})

			r.Route("/attachments", func(r chi.Router) {
				r.Post("/{diligenceID}", h.AttachmentHandler.Upload)
				r.Get("/{diligenceID}", h.AttachmentHandler.List)
				r.Delete("/{id}", h.AttachmentHandler.Delete)
			})
		})
	})

	return r
}
