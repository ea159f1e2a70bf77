package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/dhananjayaDev/trivity/internal/service"
	"github.com/dhananjayaDev/trivity/internal/transport/rest/handler"
	"github.com/dhananjayaDev/trivity/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService   *service.AuthService
	UserService   *service.UserService
	SRIService    *service.SRIService
	CarbonService *service.CarbonService
	SDGService    *service.SDGService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.UserService)
	userHandler := handler.NewUserHandler(c.UserService)
	sriHandler := handler.NewSRIHandler(c.SRIService)
	carbonHandler := handler.NewCarbonHandler(c.CarbonService)
	sdgHandler := handler.NewSDGHandler(c.SDGService)
	reportHandler := handler.NewReportHandler(c.UserService, c.SRIService, c.CarbonService, c.SDGService)
	dashboardHandler := handler.NewDashboardHandler(c.UserService, c.SRIService, c.CarbonService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Authenticated routes
	authed := v1.NewRoute().Subrouter()
	authed.Use(authMW.RequireAuth)

	authed.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST", "OPTIONS")

	authed.HandleFunc("/sri/questions", sriHandler.Questions).Methods("GET", "OPTIONS")
	authed.HandleFunc("/sri/submit", sriHandler.Submit).Methods("POST", "OPTIONS")
	authed.HandleFunc("/sri/scores", sriHandler.Scores).Methods("GET", "OPTIONS")
	authed.HandleFunc("/sri/latest", sriHandler.Latest).Methods("GET", "OPTIONS")
	authed.HandleFunc("/sri/history", sriHandler.History).Methods("GET", "OPTIONS")

	authed.HandleFunc("/users/me", userHandler.Me).Methods("GET", "OPTIONS")
	authed.HandleFunc("/users/me", userHandler.UpdateMe).Methods("PUT", "OPTIONS")
	authed.HandleFunc("/users/me/password", userHandler.ChangePassword).Methods("POST", "OPTIONS")

	authed.HandleFunc("/carbon", carbonHandler.Save).Methods("POST", "OPTIONS")
	authed.HandleFunc("/carbon", carbonHandler.Latest).Methods("GET", "OPTIONS")
	authed.HandleFunc("/carbon/history", carbonHandler.History).Methods("GET", "OPTIONS")
	authed.HandleFunc("/carbon/analyze", carbonHandler.Analyze).Methods("POST", "OPTIONS")

	authed.HandleFunc("/sdg/recommendations", sdgHandler.Generate).Methods("POST", "OPTIONS")
	authed.HandleFunc("/sdg/recommendations", sdgHandler.Latest).Methods("GET", "OPTIONS")

	authed.HandleFunc("/reports/{kind}", reportHandler.Download).Methods("GET", "OPTIONS")

	authed.HandleFunc("/dashboard", dashboardHandler.Overview).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
