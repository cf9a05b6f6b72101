package router

import (
	"database/sql"
	"net/http"
	"time"

	_ "vet-clinic/docs"
	"vet-clinic/internal/adapters/directory"
	mem "vet-clinic/internal/adapters/storage/memory"
	pg "vet-clinic/internal/adapters/storage/postgres"
	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/notifications"
	"vet-clinic/internal/domain/owners"
	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/middleware"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/ports/auth"
	"vet-clinic/internal/realtime"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger

	// Bus de cambios de citas. Si es nil se crea uno; main lo pasa para poder esperar en shutdown.
	Bus *appointments.Bus

	// Hub atiende /ws. Broadcaster es por donde sale el push (el Hub o un relay Redis sobre él).
	Hub         *realtime.Hub
	Broadcaster notifications.Broadcaster

	AllowedOrigins  []string
	NotifierTimeout time.Duration
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(chimw.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Debug-User-ID", "X-Debug-Role"},
		AllowCredentials: true,
	}).Handler)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		ownerRepo owners.Repository
		petRepo   pets.Repository
		apptRepo  appointments.Repository
		notifRepo notifications.Repository
	)
	if opts.DB != nil {
		ownerRepo = pg.NewOwnersRepo(opts.DB)
		petRepo = pg.NewPetsRepo(opts.DB)
		apptRepo = pg.NewAppointmentsRepo(opts.DB)
		notifRepo = pg.NewNotificationsRepo(opts.DB)
	} else {
		ownerRepo = mem.NewOwnerRepo()
		petRepo = mem.NewPetRepo()
		apptRepo = mem.NewAppointmentRepo()
		notifRepo = mem.NewNotificationRepo()
	}

	hub := opts.Hub
	if hub == nil {
		hub = realtime.NewHub(realtime.HubOptions{Logger: log})
	}
	var broadcaster notifications.Broadcaster = hub
	if opts.Broadcaster != nil {
		broadcaster = opts.Broadcaster
	}

	bus := opts.Bus
	if bus == nil {
		bus = appointments.NewBus(log, opts.NotifierTimeout)
	}

	// Services por módulo
	ownersSvc := owners.NewService(ownerRepo)
	petsSvc := pets.NewService(petRepo)
	dir := directory.New(petsSvc, ownersSvc)

	apptSvc := appointments.NewService(apptRepo,
		appointments.WithPublisher(bus),
		appointments.WithDirectory(dir),
		appointments.WithLogger(log.With(map[string]any{"component": "appointments"})),
	)
	notifSvc := notifications.NewService(notifRepo)

	// El notifier es el único suscriptor: persiste y empuja por el broadcaster.
	notifier := notifications.NewNotifier(notifRepo, dir, broadcaster, log)
	bus.OnAppointmentChanged(notifier.HandleChange)

	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireAuth)

		owners.RegisterRoutes(pr, ownersSvc)
		pets.RegisterRoutes(pr, petsSvc, ownersSvc)
		appointments.RegisterRoutes(pr, apptSvc, petsSvc)
		notifications.RegisterRoutes(pr, notifSvc)

		pr.Get("/ws", hub.ServeHTTP)
	})

	return otelhttp.NewHandler(r, "http.server",
		otelhttp.WithFilter(func(req *http.Request) bool {
			return req.URL.Path != "/health" && req.URL.Path != "/metrics"
		}),
	)
}
