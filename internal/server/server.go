package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/raptorsgg/orgdash/internal/analytics"
	"github.com/raptorsgg/orgdash/internal/attendance"
	"github.com/raptorsgg/orgdash/internal/database"
	"github.com/raptorsgg/orgdash/internal/finance"
	"github.com/raptorsgg/orgdash/internal/handler"
	"github.com/raptorsgg/orgdash/internal/logger"
	"github.com/raptorsgg/orgdash/internal/metrics"
	"github.com/raptorsgg/orgdash/internal/performance"
	"github.com/raptorsgg/orgdash/internal/recruitment"
	"github.com/raptorsgg/orgdash/internal/roster"
)

// Services bundles everything the router needs
type Services struct {
	Roster      roster.Service
	Performance performance.Service
	Attendance  attendance.Service
	Finance     finance.Service
	Analytics   analytics.Service
	Recruitment recruitment.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance with the full middleware chain
// and route tree.
func NewServer(port int, keyring *Keyring, trustedProxies, allowedOrigins []string, dbPool database.Pool, svcs Services) *Server {
	r := chi.NewRouter()

	// Middleware stack, outermost first.
	detector := NewSuspiciousActivityDetector()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", HeaderAPIKey},
		MaxAge:         300,
	})

	r.Use(corsHandler.Handler)
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(keyring, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Team routes
		r.Route("/teams", func(r chi.Router) {
			r.Get("/", handler.HandleListTeams(svcs.Roster))
			r.Get("/{teamID}", handler.HandleGetTeam(svcs.Roster))
			r.Get("/{teamID}/players", handler.HandleListPlayers(svcs.Roster))

			r.Group(func(r chi.Router) {
				r.Use(RequireRole(RoleAdmin))
				r.Post("/", handler.HandleCreateTeam(svcs.Roster))
				r.Patch("/{teamID}", handler.HandleUpdateTeam(svcs.Roster))
				r.Delete("/{teamID}", handler.HandleDeleteTeam(svcs.Roster))
			})

			r.With(RequireRole(RoleManager)).Post("/{teamID}/players", handler.HandleAddPlayer(svcs.Roster))
		})

		r.With(RequireRole(RoleManager)).Delete("/players/{playerID}", handler.HandleRemovePlayer(svcs.Roster))

		// Performance routes
		r.Route("/performances", func(r chi.Router) {
			r.Get("/", handler.HandleListPerformances(svcs.Performance))
			r.With(RequireRole(RoleManager)).Post("/", handler.HandleSubmitPerformance(svcs.Performance))
		})

		// Attendance routes
		r.Route("/attendance", func(r chi.Router) {
			r.Post("/", handler.HandleRecordAttendance(svcs.Attendance))
			r.Get("/summary", handler.HandleAttendanceSummary(svcs.Attendance))
			r.With(RequireRole(RoleManager)).Post("/{recordID}/verify", handler.HandleReviewAttendance(svcs.Attendance))
		})

		// Finance routes
		r.Route("/finance", func(r chi.Router) {
			r.Get("/monthly", handler.HandleListMonthly(svcs.Finance))
			r.Get("/monthly/{teamID}", handler.HandleGetMonthly(svcs.Finance))
			r.Get("/tier-rates", handler.HandleGetTierRates(svcs.Finance))

			r.Group(func(r chi.Router) {
				r.Use(RequireRole(RoleManager))
				r.Post("/monthly", handler.HandleSubmitMonthly(svcs.Finance))
				r.Post("/expenses", handler.HandleRecordExpense(svcs.Finance))
			})

			r.With(RequireRole(RoleAdmin)).Put("/tier-rates", handler.HandlePutTierRate(svcs.Finance))
		})

		// Analytics routes
		r.Route("/analytics", func(r chi.Router) {
			r.Get("/overview", handler.HandleAnalyticsOverview(svcs.Analytics))
			r.Get("/team/{teamID}", handler.HandleTeamAnalytics(svcs.Analytics))
			r.Get("/player/{playerID}", handler.HandlePlayerAnalytics(svcs.Analytics))
		})

		// Recruitment routes
		r.Route("/recruitment/applications", func(r chi.Router) {
			r.Post("/", handler.HandleSubmitApplication(svcs.Recruitment)) // public

			r.Group(func(r chi.Router) {
				r.Use(RequireRole(RoleManager))
				r.Get("/", handler.HandleListApplications(svcs.Recruitment))
				r.Get("/{ref}", handler.HandleGetApplication(svcs.Recruitment))
				r.Post("/{ref}/review", handler.HandleReviewApplication(svcs.Recruitment))
			})
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health checks and metrics scrapes would drown the log.
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, "Authorization") {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"role", RoleFromContext(ctx).String())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
