package web

import (
	"io/fs"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"bill-generator/internal/app"
	webassets "bill-generator/web"
)

// Server is the HTTP adapter over the application service.
type Server struct {
	app app.ApplicationService
}

func NewServer(appService app.ApplicationService) *Server {
	return &Server{app: appService}
}

// Router builds the full middleware chain and route table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(os.Getenv("ALLOWED_ORIGINS")))

	r.Get("/api/health", s.handleHealth)
	r.Post("/api/bills", s.handleGenerateBill)
	r.Post("/api/bills/documents", s.handleGenerateDocuments)
	r.Get("/api/runs", s.handleListRuns)

	static, err := fs.Sub(webassets.Static, "static")
	if err != nil {
		panic(err)
	}
	r.Handle("/*", http.FileServer(http.FS(static)))

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
