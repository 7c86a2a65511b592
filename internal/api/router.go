package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/okan-kantar/portfolio-backend/internal/api/handlers"
	mw "github.com/okan-kantar/portfolio-backend/internal/api/middleware"
	"github.com/okan-kantar/portfolio-backend/internal/api/types"
	"github.com/okan-kantar/portfolio-backend/internal/models"
	"github.com/okan-kantar/portfolio-backend/internal/repository"
	"github.com/okan-kantar/portfolio-backend/internal/services"
	"github.com/okan-kantar/portfolio-backend/pkg/config"
)

// Deps carries everything the router needs. Repositories and services
// are built once in main and shared across handlers.
type Deps struct {
	Config *config.Config
	DB     *gorm.DB

	Pages   services.PagesService
	Contact services.ContactService

	PersonalInfo repository.PersonalInfoRepository
	SiteSettings repository.SiteSettingsRepository
	Education    repository.EducationRepository
	Experience   repository.ExperienceRepository
	Skills       repository.SkillRepository
	Projects     repository.ProjectRepository
	Certificates repository.CertificateRepository
	Messages     repository.ContactMessageRepository
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS)
	r.Use(mw.RateLimit(10, 20))
	r.Use(chimid.Compress(5))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeFailure(w, http.StatusNotFound, "not_found", "resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeFailure(w, http.StatusMethodNotAllowed, "invalid", "method not allowed")
	})

	health := handlers.NewHealthHandler(d.DB)
	r.Get("/healthz", health.Live)
	r.Get("/readyz", health.Ready)

	media := handlers.NewMediaHandler(d.Config.MediaDir)
	r.Handle("/media/*", media.FileServer())

	auth := handlers.NewAuthHandler(d.Config.AdminEmail, d.Config.AdminPasswordHash, d.Config.JWTSecret)
	pages := handlers.NewPagesHandler(d.Pages)
	contact := handlers.NewContactHandler(d.Contact)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", auth.Login)

		r.Route("/pages", func(r chi.Router) {
			r.Get("/home", pages.Home)
			r.Get("/about", pages.About)
			r.Get("/skills", pages.Skills)
			r.Get("/projects", pages.Projects)
			r.Get("/projects/{slug}", pages.ProjectDetail)
			r.Get("/contact", pages.Contact)
		})

		r.Post("/contact", contact.Submit)

		r.Route("/admin", func(r chi.Router) {
			r.Use(mw.Auth([]byte(d.Config.JWTSecret)))

			profile := handlers.NewAdminProfileHandler(d.PersonalInfo, d.SiteSettings)
			r.Get("/personal-info", profile.GetPersonalInfo)
			r.Put("/personal-info", profile.PutPersonalInfo)
			r.Post("/personal-info", profile.CreatePersonalInfo)
			r.Delete("/personal-info", profile.DeletePersonalInfo)
			r.Get("/site-settings", profile.GetSiteSettings)
			r.Put("/site-settings", profile.PutSiteSettings)
			r.Post("/site-settings", profile.CreateSiteSettings)
			r.Delete("/site-settings", profile.DeleteSiteSettings)

			r.Route("/education", handlers.NewCRUDHandler[models.Education](
				d.Education, d.Education.List,
				func(m *models.Education, id uuid.UUID) { m.ID = id },
			).Routes)
			r.Route("/experience", handlers.NewCRUDHandler[models.Experience](
				d.Experience, d.Experience.List,
				func(m *models.Experience, id uuid.UUID) { m.ID = id },
			).Routes)
			r.Route("/skills", handlers.NewCRUDHandler[models.Skill](
				d.Skills, d.Skills.List,
				func(m *models.Skill, id uuid.UUID) { m.ID = id },
			).Routes)
			r.Route("/projects", handlers.NewCRUDHandler[models.Project](
				d.Projects, allProjects(d.Projects),
				func(m *models.Project, id uuid.UUID) { m.ID = id },
			).Routes)
			r.Route("/certificates", handlers.NewCRUDHandler[models.Certificate](
				d.Certificates, d.Certificates.List,
				func(m *models.Certificate, id uuid.UUID) { m.ID = id },
			).Routes)

			messages := handlers.NewAdminMessagesHandler(d.Messages)
			r.Route("/messages", func(r chi.Router) {
				r.Get("/", messages.List)
				r.Get("/{id}", messages.Get)
				r.Delete("/{id}", messages.Delete)
				r.Post("/{id}/read", messages.MarkRead)
				r.Post("/{id}/unread", messages.MarkUnread)
			})

			r.Post("/uploads", media.Upload)
		})
	})

	return r
}

// allProjects adapts the filtered project listing to the plain listing
// the admin surface uses.
func allProjects(repo repository.ProjectRepository) func(ctx context.Context) ([]models.Project, error) {
	return func(ctx context.Context) ([]models.Project, error) {
		return repo.List(ctx, "")
	}
}

func writeFailure(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.APIResponse{
		Success: false,
		Message: msg,
		Error:   &types.APIError{Code: code, Message: msg},
	})
}
