// Package main is the entry point for the Number Hunt Telegram bot.
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"number-hunt-bot/internal/bot"
	"number-hunt-bot/internal/config"
	"number-hunt-bot/internal/game"
	"number-hunt-bot/internal/game/numbers"
	"number-hunt-bot/internal/pkg/lock"
	"number-hunt-bot/internal/service"
)

func main() {
	// Configure zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration
	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().Msg("Configuration loaded successfully")

	// Initialize ranking service
	rankingService := service.NewRankingService()

	// Initialize user lock
	userLock := lock.NewUserLock()

	// Initialize number hunt game
	numbersGame := numbers.New(&numbers.Config{
		PenaltyDelay: cfg.Games.Numbers.PenaltyDelay,
	})

	// Initialize game registry and register games
	gameRegistry := game.NewRegistry()
	if err := gameRegistry.Register(numbersGame); err != nil {
		log.Fatal().Err(err).Msg("Failed to register number hunt game")
	}

	log.Info().
		Int("game_count", gameRegistry.Count()).
		Strs("games", gameRegistry.Commands()).
		Msg("Games registered")

	// Create bot dependencies
	deps := &bot.Dependencies{
		Config:         cfg,
		NumbersGame:    numbersGame,
		RankingService: rankingService,
		GameRegistry:   gameRegistry,
		UserLock:       userLock,
	}

	// Initialize bot
	telegramBot, err := bot.New(deps)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create bot")
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start bot in a goroutine
	go func() {
		log.Info().Msg("Bot is starting...")
		telegramBot.Start()
	}()

	// Wait for shutdown signal
	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

	// Graceful shutdown
	telegramBot.Stop()
	log.Info().Msg("Bot stopped gracefully")
}
