// Package handler provides Telegram bot command and callback handlers.
// Requirements: 3.1, 5.1, 5.2 - Click handling and single-flight guarding
package handler

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"number-hunt-bot/internal/config"
	"number-hunt-bot/internal/game/numbers"
	"number-hunt-bot/internal/pkg/lock"
	"number-hunt-bot/internal/service"
)

const (
	// DefaultMessageTTL is how long finished or stale game boards stay in
	// the chat before the cleaner removes them, unless configured.
	DefaultMessageTTL = 30 * time.Minute
)

// TrackedMessage represents a message to be deleted later.
type TrackedMessage struct {
	ChatID    int64
	MessageID int
	SentAt    time.Time
}

// GameHandler handles the number hunt commands and button clicks.
type GameHandler struct {
	cfg             *config.Config
	game            *numbers.Game
	rankingService  *service.RankingService
	userLock        *lock.UserLock
	messageTTL      time.Duration
	trackedMessages []TrackedMessage
	messagesMu      sync.Mutex
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(
	cfg *config.Config,
	numbersGame *numbers.Game,
	rankingService *service.RankingService,
	userLock *lock.UserLock,
) *GameHandler {
	ttl := DefaultMessageTTL
	if cfg != nil && cfg.Games.Numbers.MessageTTL > 0 {
		ttl = cfg.Games.Numbers.MessageTTL
	}
	return &GameHandler{
		cfg:             cfg,
		game:            numbersGame,
		rankingService:  rankingService,
		userLock:        userLock,
		messageTTL:      ttl,
		trackedMessages: make([]TrackedMessage, 0),
	}
}

// StartMessageCleaner starts the background goroutine to delete old messages.
func (h *GameHandler) StartMessageCleaner(bot *tele.Bot) {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			h.cleanOldMessages(bot)
		}
	}()
}

// cleanOldMessages deletes messages older than the configured TTL.
func (h *GameHandler) cleanOldMessages(bot *tele.Bot) {
	h.messagesMu.Lock()
	defer h.messagesMu.Unlock()

	now := time.Now()
	remaining := make([]TrackedMessage, 0)

	for _, msg := range h.trackedMessages {
		if now.Sub(msg.SentAt) >= h.messageTTL {
			err := bot.Delete(&tele.Message{
				ID:   msg.MessageID,
				Chat: &tele.Chat{ID: msg.ChatID},
			})
			if err != nil {
				log.Debug().Err(err).Int("msg_id", msg.MessageID).Msg("Failed to delete old message")
			}
		} else {
			remaining = append(remaining, msg)
		}
	}

	h.trackedMessages = remaining
}

// trackMessage adds a message to the tracking list for later deletion.
func (h *GameHandler) trackMessage(chatID int64, messageID int) {
	h.messagesMu.Lock()
	defer h.messagesMu.Unlock()

	h.trackedMessages = append(h.trackedMessages, TrackedMessage{
		ChatID:    chatID,
		MessageID: messageID,
		SentAt:    time.Now(),
	})
}

// HandlePlay handles the /play command: a fresh session always replaces
// any existing one for the sender.
// Requirements: 2.1, 3.1
func (h *GameHandler) HandlePlay(c tele.Context) error {
	sender := c.Sender()
	chat := c.Chat()
	if sender == nil || chat == nil {
		return nil
	}

	render := h.game.StartSession(sender.ID)
	markup := numbers.ToReplyMarkup(render)

	msg, err := c.Bot().Send(chat, render.Text, markup)
	if err != nil {
		log.Error().Err(err).Int64("user_id", sender.ID).Msg("Failed to send game board")
		return err
	}
	h.trackMessage(chat.ID, msg.ID)

	log.Info().Int64("user_id", sender.ID).Msg("Number hunt session started")
	return nil
}

// HandleNumbersCallback handles board button clicks.
// The callback is acknowledged immediately so the button stops showing a
// loading indicator, then the single-flight guard decides whether this
// click is processed or silently dropped.
// Requirements: 3.1, 5.1, 5.2
func (h *GameHandler) HandleNumbersCallback(c tele.Context) error {
	callback := c.Callback()
	sender := c.Sender()
	if callback == nil || sender == nil || callback.Message == nil {
		return nil
	}

	// Ack before any processing.
	if err := c.Respond(&tele.CallbackResponse{}); err != nil {
		log.Debug().Err(err).Msg("Failed to acknowledge callback")
	}

	slot := numbers.DecodeSlot(callback.Data)
	if slot < 0 {
		return nil
	}

	userID := sender.ID
	if !h.userLock.TryAcquire(userID) {
		// A click for this user is already in flight (double-tap or
		// duplicate delivery). Drop without touching any state.
		log.Debug().Int64("user_id", userID).Msg("Dropping click while guard is held")
		return nil
	}

	res := h.game.HandleClick(userID, slot)

	switch res.Outcome {
	case numbers.OutcomeNone:
		h.userLock.Release(userID)
		return nil

	case numbers.OutcomeAdvance:
		h.editBoard(c.Bot(), callback.Message, res.Render)
		h.userLock.Release(userID)
		return nil

	case numbers.OutcomeComplete:
		h.editBoard(c.Bot(), callback.Message, res.Render)

		username := sender.Username
		if username == "" {
			username = sender.FirstName
		}
		if h.rankingService.Record(userID, username, res.Elapsed) {
			log.Info().
				Int64("user_id", userID).
				Dur("elapsed", res.Elapsed).
				Msg("New personal best")
		}

		h.userLock.Release(userID)
		return nil

	case numbers.OutcomeMistake:
		h.editBoard(c.Bot(), callback.Message, res.Render)

		// The guard stays held for the whole penalty, so every click
		// arriving before the reset render lands is dropped. The delay
		// is a timer continuation, not a sleep: other users' clicks are
		// unaffected.
		bot := c.Bot()
		boardMsg := callback.Message
		time.AfterFunc(h.game.PenaltyDelay(), func() {
			defer h.userLock.Release(userID)

			render, ok := h.game.ResolvePenalty(userID)
			if !ok {
				return
			}
			h.editBoard(bot, boardMsg, render)
		})
		return nil
	}

	h.userLock.Release(userID)
	return nil
}

// editBoard edits the game board message in place. Delivery failures are
// fire-and-forget: the session already reflects the new truth.
// Requirements: 7.1
func (h *GameHandler) editBoard(bot *tele.Bot, msg *tele.Message, render numbers.RenderModel) {
	markup := numbers.ToReplyMarkup(render)

	var err error
	if markup != nil {
		_, err = bot.Edit(msg, render.Text, markup)
	} else {
		_, err = bot.Edit(msg, render.Text)
	}
	if err != nil {
		log.Debug().Err(err).Int("msg_id", msg.ID).Msg("Failed to edit game board")
	}
}
