package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Alexgr8080/papercoverterieee/internal/handlers"
	"github.com/Alexgr8080/papercoverterieee/internal/middleware"
	"github.com/Alexgr8080/papercoverterieee/internal/services"
	"github.com/Alexgr8080/papercoverterieee/internal/utils"
)

func NewRouter(paperService services.PaperService, logger *utils.Logger) http.Handler {
	r := mux.NewRouter()

	// Middlewares
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Recovery(logger))

	// Paper handler
	paperHandler := handlers.NewPaperHandler(paperService, logger)

	// Routes
	api := r.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods(http.MethodGet)

	// Paper endpoints
	api.HandleFunc("/papers/diag", paperHandler.Diag).Methods(http.MethodGet)
	api.HandleFunc("/papers/upload", paperHandler.UploadPaper).Methods(http.MethodPost)
	api.HandleFunc("/papers/{id}/generate", paperHandler.GeneratePaper).Methods(http.MethodPost)
	api.HandleFunc("/papers/{id}/download", paperHandler.DownloadArchive).Methods(http.MethodGet)

	return r
}
