package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sethrock/AppointmentManager/configuration"
	"github.com/sethrock/AppointmentManager/controllers"
	"github.com/sethrock/AppointmentManager/formsite"
	"github.com/sethrock/AppointmentManager/models"
	"github.com/sethrock/AppointmentManager/notify"
	"github.com/sethrock/AppointmentManager/routes"
	"github.com/sethrock/AppointmentManager/storage"
	"github.com/sethrock/AppointmentManager/webhooks"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("LOG_PRETTY") == "true" {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	cfg, err := configuration.Load(log)
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}

	var store storage.Store
	if cfg.DatabaseURL != "" {
		db, err := configuration.ConnectDB(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("database error")
		}
		store = storage.NewGormStore(db)
		log.Info().Msg("using postgres store")
	} else {
		mem := storage.NewMemoryStore()
		seedDevStaffUser(mem, log)
		store = mem
		log.Warn().Msg("DATABASE_URL not set, using in-memory store")
	}

	var cache *configuration.ResultsCache
	if cfg.RedisAddr != "" {
		cache, err = configuration.InitRedis(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("redis error")
		}
		log.Info().Str("addr", cfg.RedisAddr).Msg("results cache enabled")
	}

	client := formsite.NewClient(formsite.ClientConfig{
		Server:   cfg.FormsiteServer,
		UserDir:  cfg.FormsiteUserDir,
		FormDir:  cfg.FormsiteFormDir,
		APIToken: cfg.FormsiteToken,
	}, nil)

	appointmentCtl := controllers.NewAppointmentController(client, store, cache, cfg.FallbackMode, log)
	staffCtl := controllers.NewStaffController(store, cfg.JWTSecret, log)

	reconciler := webhooks.NewReconciler(store, log).
		WithCacheInvalidation(appointmentCtl.InvalidateCache)
	if cfg.SMTPHost != "" && cfg.NotifyTo != "" {
		mailer := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.NotifyTo, log)
		reconciler = reconciler.WithNotifier(mailer)
		log.Info().Str("to", cfg.NotifyTo).Msg("email notifications enabled")
	}

	r := routes.Setup(log, cfg.JWTSecret, appointmentCtl, staffCtl, webhooks.NewHandler(reconciler))

	addr := ":" + getPort()
	log.Info().Str("addr", addr).Msg("starting server")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "5000"
}

// seedDevStaffUser provisions a login for the in-memory store so the
// dashboard is usable without a database. Credentials come from
// STAFF_USERNAME / STAFF_PASSWORD, defaulting to admin/admin.
func seedDevStaffUser(mem *storage.MemoryStore, log zerolog.Logger) {
	username := os.Getenv("STAFF_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("STAFF_PASSWORD")
	if password == "" {
		password = "admin"
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash staff password")
	}
	mem.SeedStaffUser(models.StaffUser{Username: username, Password: string(hashed)})
	log.Info().Str("username", username).Msg("seeded staff user")
}
