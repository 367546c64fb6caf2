package http

import (
	"log/slog"
	"os"

	"github.com/clockwise-hr/attendance-backend-go/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	attendanceHandler AttendanceHandler,
	anomalyHandler AnomalyHandler,
	leaveHandler LeaveHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/clock-in", attendanceHandler.ClockIn)
			r.Post("/clock-out", attendanceHandler.ClockOut)

			r.Route("/breaks", func(r chi.Router) {
				r.Post("/", attendanceHandler.StartBreak)
				r.Post("/{breakID}/end", attendanceHandler.EndBreak)
			})

			r.Route("/{workerID}/{date}", func(r chi.Router) {
				r.Get("/", attendanceHandler.Get)
				r.Patch("/", attendanceHandler.Correct)
				r.Post("/validate", attendanceHandler.Validate)
				r.Get("/anomalies", anomalyHandler.GetDaily)
			})
		})

		r.Route("/workers/{workerID}", func(r chi.Router) {
			r.Get("/anomalies", anomalyHandler.GetRange)

			r.Route("/leave-balances", func(r chi.Router) {
				r.Post("/adjust", leaveHandler.AdjustBalance)
				r.Post("/reset", leaveHandler.ResetBalances)
			})
		})

		r.Route("/leave-requests", func(r chi.Router) {
			r.Post("/", leaveHandler.CreateRequest)
			r.Post("/{requestID}/approve", leaveHandler.Approve)
			r.Post("/{requestID}/reject", leaveHandler.Reject)
		})
	})

	return r
}
