package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ethernalpaths/gamecore/api/handlers"
	"github.com/ethernalpaths/gamecore/api/middleware"
	"github.com/ethernalpaths/gamecore/gamecore"
	"github.com/ethernalpaths/gamecore/gamecore/catalog"
	"github.com/ethernalpaths/gamecore/gamecore/database"
	"github.com/ethernalpaths/gamecore/gamecore/database/repositories"
	"github.com/ethernalpaths/gamecore/gamecore/logger"
	"github.com/ethernalpaths/gamecore/gamecore/migration"
	"github.com/ethernalpaths/gamecore/gamecore/progression"
	"github.com/ethernalpaths/gamecore/gamecore/services"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	var (
		configPath   = flag.String("config", "config.toml", "path to config")
		importLegacy = flag.String("import-legacy", "", "import MongoDB dump files from this directory and exit")
	)
	flag.Parse()

	customHandler := logger.NewHandler("EthernalPaths")
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting Ethernal Paths game core",
		slog.String("version", version),
		slog.String("commit", commit),
		slog.String("type", "sys"))

	cfg, err := gamecore.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}

	cat, err := catalog.New()
	if err != nil {
		slog.Error("Failed to load content catalog", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.Info("Content catalog loaded",
		slog.String("type", "sys"),
		slog.Int("cards", len(cat.Cards)),
		slog.Int("achievements", len(cat.Achievements)),
		slog.Int("challenges", len(cat.Challenges)))

	slog.Info("Initializing database connection...", slog.String("type", "db"))
	dbStartTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	slog.Info("Database connected successfully",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema",
			slog.String("error", err.Error()))
		os.Exit(-1)
	}

	playerRepo := repositories.NewPlayerRepository(db.BunDB())
	statsRepo := repositories.NewStatsRepository(db.BunDB())
	questRepo := repositories.NewQuestRepository(db.BunDB())
	cardRepo := repositories.NewCardRepository(db.BunDB())
	achievementRepo := repositories.NewAchievementRepository(db.BunDB())
	claimRepo := repositories.NewClaimRepository(db.BunDB())

	if *importLegacy != "" {
		migrator := migration.NewMigrator(cat, playerRepo, statsRepo, cardRepo, questRepo, achievementRepo, claimRepo, *importLegacy)
		importCtx, importCancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer importCancel()
		if err := migrator.ImportAll(importCtx); err != nil {
			slog.Error("Legacy import failed", slog.Any("error", err))
			db.Close()
			os.Exit(-1)
		}
		slog.Info("Legacy import complete")
		db.Close()
		return
	}

	notifier := progression.NewUnlockNotifier(nil, cfg.Game.NotifyDelay())
	unsubscribe := notifier.Subscribe(func(event progression.UnlockEvent) {
		slog.Info("Achievement unlocked",
			slog.String("type", "engine"),
			slog.String("key", event.Achievement.Key),
			slog.String("name", event.Achievement.Name))
	})
	defer unsubscribe()

	engine := progression.NewEngine(cat, notifier)

	statsService := services.NewStatsService(playerRepo, statsRepo, questRepo)
	bonusService, err := services.NewBonusService(cat, cardRepo, cfg.Game.CacheSize())
	if err != nil {
		slog.Error("Failed to create bonus service", slog.Any("error", err))
		os.Exit(-1)
	}
	progService := services.NewProgressionService(cat, engine, playerRepo, statsRepo, questRepo, cardRepo, achievementRepo, statsService, bonusService)
	claimService := services.NewClaimService(cat, claimRepo, questRepo, statsService, progService)

	var assetsService *services.AssetsService
	if cfg.Spaces.Key != "" {
		assetsService, err = services.NewAssetsService(
			cfg.Spaces.Key,
			cfg.Spaces.Secret,
			cfg.Spaces.Region,
			cfg.Spaces.Bucket,
			cfg.Spaces.CardRoot,
		)
		if err != nil {
			slog.Error("Failed to create assets service", slog.Any("error", err))
			os.Exit(-1)
		}
	} else {
		slog.Warn("Asset storage not configured, card art URLs disabled", slog.String("type", "sys"))
	}

	app := fiber.New(fiber.Config{
		AppName:      "Ethernal Paths API",
		ServerHeader: "EthernalPaths",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.SecurityHeaders())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(middleware.LoggingMiddleware())
	app.Use(middleware.RateLimit(middleware.NewRateLimiter(120, time.Minute)))

	server := &handlers.Server{
		DB:           db,
		Catalog:      cat,
		Engine:       engine,
		Players:      playerRepo,
		Achievements: achievementRepo,
		Cards:        cardRepo,
		Stats:        statsService,
		Prog:         progService,
		Claims:       claimService,
		Bonuses:      bonusService,
		Assets:       assetsService,
		Version:      version,
	}

	setupRoutes(app, server)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	slog.Info("Starting API server", slog.String("address", address), slog.String("type", "api"))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := app.Listen(address); err != nil {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-sig
	slog.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", slog.String("error", err.Error()))
	}

	db.Close()

	slog.Info("Shutdown complete")
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, server *handlers.Server) {
	app.Get("/health", handlers.HealthCheck(server))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Ethernal Paths API",
			"version": server.Version,
			"status":  "running",
		})
	})

	app.Post("/players", handlers.RegisterPlayer(server))

	players := app.Group("/players/:id")
	players.Get("/", handlers.PlayerSummary(server))
	players.Get("/achievements", handlers.PlayerAchievements(server))
	players.Get("/challenges", handlers.PlayerChallenges(server))
	players.Post("/challenges/:challengeId/claim", handlers.ClaimChallenge(server))
	players.Get("/cards", handlers.PlayerCards(server))

	events := players.Group("/events")
	events.Post("/quest", handlers.QuestCompleted(server))
	events.Post("/card-scan", handlers.CardScanned(server))
	events.Post("/friend", handlers.FriendAdded(server))
	events.Post("/team", handlers.TeamFormed(server))
	events.Post("/workshop", handlers.WorkshopVisited(server))
	events.Post("/login", handlers.LoggedIn(server))
	events.Post("/reward", handlers.RewardRedeemed(server))
	events.Post("/distance", handlers.DistanceWalked(server))

	catalogGroup := app.Group("/catalog")
	catalogGroup.Get("/cards/search", handlers.SearchCards(server))
	catalogGroup.Get("/cards/missing-art", handlers.MissingCardArt(server))

	app.Use(func(c *fiber.Ctx) error {
		slog.Warn("No route matched for request",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()),
		)
		return c.Status(404).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested endpoint does not exist",
		})
	})
}
