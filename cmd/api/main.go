package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Directorio-api/internal/application/auth"
	"github.com/jhoicas/Directorio-api/internal/application/session"
	"github.com/jhoicas/Directorio-api/internal/application/usecase"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/sessionstore"
	httpRouter "github.com/jhoicas/Directorio-api/internal/interfaces/http"
	"github.com/jhoicas/Directorio-api/pkg/config"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Int("applied", applied).Msg("migraciones al día")

	// Almacén de sesiones: Redis en despliegue, memoria para desarrollo con una sola instancia.
	var store session.Store
	switch cfg.Session.Backend {
	case "redis":
		rdb, err := sessionstore.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		store = sessionstore.NewRedisStore(rdb)
	default:
		log.Warn().Msg("sesiones en memoria: se pierden al reiniciar")
		store = sessionstore.NewMemoryStore()
	}
	if !cfg.Admin.Enabled() {
		log.Warn().Msg("ADMIN_USERNAME/ADMIN_PASSWORD_HASH sin definir: login de administrador deshabilitado")
	}

	userRepo := postgres.NewUserRepository(pool)
	businessRepo := postgres.NewBusinessRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	menuRepo := postgres.NewMenuRepository(pool)
	wifiRepo := postgres.NewWifiRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	sessions := session.NewManager(userRepo, store, session.Config{
		KeyPrefix:     cfg.Session.KeyPrefix,
		TTL:           cfg.Session.TTL,
		LookupTimeout: cfg.DB.Timeout,
		Admin: session.AdminCredential{
			Username:     cfg.Admin.Username,
			PasswordHash: cfg.Admin.PasswordHash,
		},
	}, log.Component("session"))

	authUC := auth.NewAuthUseCase(userRepo, sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	businessUC := usecase.NewBusinessUseCase(businessRepo, categoryRepo, txRunner)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	menuUC := usecase.NewMenuUseCase(menuRepo, businessRepo, txRunner)
	wifiUC := usecase.NewWifiUseCase(wifiRepo, businessRepo, txRunner)
	userUC := usecase.NewUserUseCase(userRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		ExposeHeaders: "X-Request-ID",
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Directorio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		Sessions:   sessions,
		BusinessUC: businessUC,
		CategoryUC: categoryUC,
		MenuUC:     menuUC,
		WifiUC:     wifiUC,
		UserUC:     userUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
