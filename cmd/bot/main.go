package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/sipdeck/internal/cardpack"
	"github.com/KirkDiggler/sipdeck/internal/common/clock"
	"github.com/KirkDiggler/sipdeck/internal/common/logger"
	"github.com/KirkDiggler/sipdeck/internal/common/uuid"
	"github.com/KirkDiggler/sipdeck/internal/config"
	"github.com/KirkDiggler/sipdeck/internal/dice"
	"github.com/KirkDiggler/sipdeck/internal/handlers/discord"
	"github.com/KirkDiggler/sipdeck/internal/metrics"
	"github.com/KirkDiggler/sipdeck/internal/repositories/card"
	"github.com/KirkDiggler/sipdeck/internal/repositories/drink_ledger"
	"github.com/KirkDiggler/sipdeck/internal/repositories/player"
	"github.com/KirkDiggler/sipdeck/internal/repositories/session"
	"github.com/KirkDiggler/sipdeck/internal/scheduler"
	gameService "github.com/KirkDiggler/sipdeck/internal/services/game"
	"github.com/KirkDiggler/sipdeck/internal/services/messaging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logr, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logr.Sync() }()

	if err := run(cfg, logr); err != nil {
		logr.Fatal("bot stopped", zap.Error(err))
	}
	logr.Info("bot has been shut down")
}

func run(cfg *config.Config, logr *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	// Initialize repositories
	sessionRepo, err := session.NewRedis(&session.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create session repository: %w", err)
	}
	cardRepo, err := card.NewRedis(&card.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create card repository: %w", err)
	}
	playerRepo, err := player.NewRedis(&player.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create player repository: %w", err)
	}
	drinkLedgerRepo, err := drink_ledger.NewRedis(&drink_ledger.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create drink ledger repository: %w", err)
	}

	if cfg.Cards.Import {
		loader, err := cardpack.NewLoader(&cardpack.Config{CardRepo: cardRepo, Logger: logr})
		if err != nil {
			return fmt.Errorf("failed to create card loader: %w", err)
		}
		if _, err := loader.Import(ctx, &cardpack.ImportInput{Dir: cfg.Cards.Dir}); err != nil {
			logr.Error("failed to import cards", zap.String("dir", cfg.Cards.Dir), zap.Error(err))
		}
	}

	realClock := &clock.DefaultClock{}
	diceRoller := dice.New(&dice.Config{})

	sched, err := scheduler.New(&scheduler.Config{Clock: realClock, Logger: logr})
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	msgService, err := messaging.NewService(&messaging.ServiceConfig{Roller: diceRoller})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	m := metrics.New()
	if cfg.MetricsAddr != "" {
		go func() {
			if err := m.Serve(ctx, cfg.MetricsAddr, logr); err != nil {
				logr.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	// Discord session and transport come before the game service, the bot after it
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	transport, err := discord.NewTransport(&discord.TransportConfig{
		API:        dg,
		PlayerRole: cfg.Discord.PlayerRole,
		Logger:     logr,
	})
	if err != nil {
		return fmt.Errorf("failed to create transport: %w", err)
	}

	gameSvc, err := gameService.NewService(&gameService.Config{
		MinPlayers:      cfg.Game.MinPlayers,
		MaxPlayers:      cfg.Game.MaxPlayers,
		MaxSessions:     cfg.Game.MaxGames,
		CardTimeout:     cfg.Game.CardTimeout,
		AllowNSFW:       cfg.Game.AllowNSFW,
		SessionRepo:     sessionRepo,
		CardRepo:        cardRepo,
		PlayerRepo:      playerRepo,
		DrinkLedgerRepo: drinkLedgerRepo,
		Transport:       transport,
		Messaging:       msgService,
		Scheduler:       sched,
		DiceRoller:      diceRoller,
		Clock:           realClock,
		UUIDGenerator:   uuid.New(),
		Metrics:         m,
		Logger:          logr,
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	recovered, err := gameSvc.Recover(ctx, &gameService.RecoverInput{})
	if err != nil {
		return fmt.Errorf("failed to recover sessions: %w", err)
	}
	logr.Info("recovered sessions",
		zap.Int("sessions", recovered.Sessions),
		zap.Int("rescheduled", recovered.Rescheduled))

	bot, err := discord.New(&discord.Config{
		Session:         dg,
		Prefix:          cfg.Prefix(),
		SendInputErrors: cfg.Discord.SendInputErrors,
		GameService:     gameSvc,
		Messaging:       msgService,
		Transport:       transport,
		Logger:          logr,
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	if err := bot.Start(); err != nil {
		return err
	}

	// Wait for interrupt signal to gracefully shutdown
	<-ctx.Done()

	if err := bot.Stop(); err != nil {
		logr.Warn("error stopping bot", zap.Error(err))
	}
	return nil
}
