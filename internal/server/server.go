package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/vincera/internal/store"
	"github.com/claude/vincera/internal/timer"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	splits    *store.SplitStore
	days      *store.DayStore
	workouts  *store.WorkoutStore
	exercises *store.ExerciseStore
	products  *store.ProductStore
	rest      *timer.RestTimer
	log       *slog.Logger
	apiKey    string
	router    chi.Router
}

// Stores bundles the domain stores the server exposes.
type Stores struct {
	Splits    *store.SplitStore
	Days      *store.DayStore
	Workouts  *store.WorkoutStore
	Exercises *store.ExerciseStore
	Products  *store.ProductStore
}

// New creates a new Server with all routes configured. apiKey may be empty,
// in which case no auth is enforced (tsnet handles access).
func New(stores Stores, rest *timer.RestTimer, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		splits:    stores.Splits,
		days:      stores.Days,
		workouts:  stores.Workouts,
		exercises: stores.Exercises,
		products:  stores.Products,
		rest:      rest,
		log:       log,
		apiKey:    apiKey,
		router:    chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		if s.apiKey != "" {
			r.Use(APIKeyAuth(s.apiKey))
		}

		r.Get("/splits", s.handleListSplits)
		r.Post("/splits", s.handleCreateSplit)
		r.Get("/splits/current", s.handleCurrentSplit)
		r.Put("/splits/current", s.handleSelectSplit)
		r.Post("/splits/current/next-day", s.handleNextDay)
		r.Post("/splits/current/prev-day", s.handlePrevDay)
		r.Put("/splits/current/day-index", s.handleSetDayIndex)
		r.Post("/splits/import", s.handleImportSplit)
		r.Get("/splits/{id}", s.handleGetSplit)
		r.Put("/splits/{id}", s.handleEditSplit)
		r.Delete("/splits/{id}", s.handleDeleteSplit)
		r.Get("/splits/{id}/export", s.handleExportSplit)

		r.Get("/days", s.handleListDays)
		r.Post("/days", s.handleCreateDay)
		r.Get("/days/{id}", s.handleGetDay)
		r.Put("/days/{id}", s.handleEditDay)
		r.Delete("/days/{id}", s.handleDeleteDay)

		r.Get("/workouts", s.handleListWorkouts)
		r.Post("/workouts", s.handleCreateWorkout)
		r.Get("/workouts/{id}", s.handleGetWorkout)
		r.Put("/workouts/{id}", s.handleEditWorkout)
		r.Delete("/workouts/{id}", s.handleDeleteWorkout)

		r.Post("/session/start", s.handleStartWorkout)
		r.Get("/session", s.handleActiveWorkout)
		r.Put("/session", s.handleUpdateActive)
		r.Post("/session/finish", s.handleFinishWorkout)
		r.Post("/session/cancel", s.handleCancelWorkout)

		r.Get("/timer", s.handleTimerState)
		r.Post("/timer/{action}", s.handleTimerAction)

		r.Get("/records", s.handlePersonalRecords)
		r.Get("/records/trackers", s.handleListTrackers)
		r.Post("/records/trackers", s.handleAddTrackers)
		r.Delete("/records/trackers", s.handleDeleteTracker)
		r.Get("/volume", s.handleVolume)
		r.Get("/previous-exercises", s.handlePreviousExercises)

		r.Get("/exercises", s.handleListExercises)
		r.Post("/exercises", s.handleCreateExercise)
		r.Get("/exercises/{id}", s.handleGetExercise)
		r.Put("/exercises/{id}", s.handleEditExercise)
		r.Delete("/exercises/{id}", s.handleDeleteExercise)

		r.Get("/settings/units", s.handleGetUnits)
		r.Put("/settings/units", s.handleSetUnits)

		r.Get("/products", s.handleListProducts)
		r.Post("/products/{id}/purchase", s.handlePurchaseProduct)
	})
}
