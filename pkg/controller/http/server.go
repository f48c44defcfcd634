package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/storesafe-app/storesafe/pkg/scoring"
	"github.com/storesafe-app/storesafe/pkg/usecase"
)

type Server struct {
	router   *chi.Mux
	uc       *usecase.UseCases
	registry *scoring.Registry
}

type Options func(*Server)

// WithRegistry overrides the category registry exposed on the categories
// endpoint; defaults to the use cases' registry
func WithRegistry(registry *scoring.Registry) Options {
	return func(s *Server) {
		s.registry = registry
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:   r,
		uc:       uc,
		registry: uc.Registry(),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", categoriesHandler(s.registry))
		r.Post("/assessments", assessScoresHandler(s.uc.Assessment))
		r.Get("/summary", summaryHandler(s.uc.Management))
		r.Post("/recommendations", recommendHandler(s.uc.Recommend))

		r.Route("/properties", func(r chi.Router) {
			r.Post("/", createPropertyHandler(s.uc.Property))
			r.Get("/", listPropertiesHandler(s.uc.Property))
			r.Get("/assessments", assessPortfolioHandler(s.uc.Assessment))

			r.Route("/{propertyID}", func(r chi.Router) {
				r.Get("/", getPropertyHandler(s.uc.Property))
					r.Put("/", updatePropertyHandler(s.uc.Property))
				r.Delete("/", deletePropertyHandler(s.uc.Property))
				r.Get("/score", inspectionScoreHandler(s.uc.Property))
				r.Post("/reports", addReportHandler(s.uc.Property))
				r.Get("/reports", listReportsHandler(s.uc.Property))
				r.Get("/assessment", assessPropertyHandler(s.uc.Assessment))
			})
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
