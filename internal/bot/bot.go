// Package bot provides the Telegram bot initialization and handler registration.
// Requirements: 8.1 - Gateway wiring and callback routing
package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"number-hunt-bot/internal/config"
	"number-hunt-bot/internal/game"
	"number-hunt-bot/internal/game/numbers"
	"number-hunt-bot/internal/handler"
	"number-hunt-bot/internal/pkg/lock"
	"number-hunt-bot/internal/service"
)

// Bot wraps the telebot instance with application dependencies.
type Bot struct {
	bot            *tele.Bot
	cfg            *config.Config
	numbersGame    *numbers.Game
	rankingService *service.RankingService
	gameRegistry   *game.Registry
	userLock       *lock.UserLock

	// Handlers
	gameHandler    *handler.GameHandler
	rankingHandler *handler.RankingHandler
}

// Dependencies holds all the dependencies needed by the bot handlers.
type Dependencies struct {
	Config         *config.Config
	NumbersGame    *numbers.Game
	RankingService *service.RankingService
	GameRegistry   *game.Registry
	UserLock       *lock.UserLock
}

// New creates a new Bot instance with the given dependencies.
func New(deps *Dependencies) (*Bot, error) {
	if deps.Config.Bot.Token == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	pref := tele.Settings{
		Token:  deps.Config.Bot.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	teleBot, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	b := &Bot{
		bot:            teleBot,
		cfg:            deps.Config,
		numbersGame:    deps.NumbersGame,
		rankingService: deps.RankingService,
		gameRegistry:   deps.GameRegistry,
		userLock:       deps.UserLock,
	}

	// Initialize handlers
	b.gameHandler = handler.NewGameHandler(deps.Config, deps.NumbersGame, deps.RankingService, deps.UserLock)
	b.rankingHandler = handler.NewRankingHandler(deps.RankingService)

	// Register middleware
	b.registerMiddleware()

	// Register handlers
	b.registerHandlers()

	return b, nil
}

// registerMiddleware registers all middleware.
func (b *Bot) registerMiddleware() {
	// Whitelist middleware - check if chat is allowed
	b.bot.Use(WhitelistMiddleware(b.cfg))

	// Logging middleware
	b.bot.Use(LoggingMiddleware())

	// Recovery middleware - a broken update must not kill the process
	b.bot.Use(RecoveryMiddleware())
}

// registerHandlers registers all command and callback handlers.
func (b *Bot) registerHandlers() {
	b.bot.Handle("/start", b.handleHelp)
	b.bot.Handle("/help", b.handleHelp)

	// Game handlers
	b.bot.Handle("/play", b.gameHandler.HandlePlay)

	// Ranking handler
	b.bot.Handle("/best", b.rankingHandler.HandleBest)

	// Generic callback handler for game buttons
	b.bot.Handle(tele.OnCallback, b.handleCallback)
}

// handleHelp lists the registered games.
func (b *Bot) handleHelp(c tele.Context) error {
	msg := "🎮 欢迎！可用游戏:\n"
	for _, g := range b.gameRegistry.List() {
		msg += fmt.Sprintf("/%s - %s: %s\n", g.Command(), g.Name(), g.Description())
	}
	msg += "/best - 查看最速通关榜"
	return c.Reply(msg)
}

// handleCallback routes button callbacks to the owning game by the
// prefix their callback data carries.
func (b *Bot) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	data := callback.Data

	// Telebot v3 may add a \f prefix to callback data
	data = strings.TrimPrefix(data, "\f")
	callback.Data = data

	g, ok := b.gameRegistry.ByCallbackData(data)
	if !ok {
		log.Debug().Str("data", data).Msg("Callback with no owning game")
		return nil
	}

	switch g.Command() {
	case b.numbersGame.Command():
		return b.gameHandler.HandleNumbersCallback(c)
	default:
		log.Debug().Str("command", g.Command()).Msg("No callback handler for game")
		return nil
	}
}

// Start starts the bot polling.
func (b *Bot) Start() {
	log.Info().Msg("Starting bot...")

	// Start message cleaner for auto-deleting old bot messages
	b.gameHandler.StartMessageCleaner(b.bot)
	log.Info().Msg("Message cleaner started (30 min interval)")

	b.bot.Start()
}

// Stop stops the bot gracefully.
func (b *Bot) Stop() {
	log.Info().Msg("Stopping bot...")
	b.bot.Stop()
}

// GetBot returns the underlying telebot instance.
func (b *Bot) GetBot() *tele.Bot {
	return b.bot
}
