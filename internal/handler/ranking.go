// Requirements: 9.2 - Best time leaderboard display
package handler

import (
	"fmt"

	tele "gopkg.in/telebot.v3"

	"number-hunt-bot/internal/game/numbers"
	"number-hunt-bot/internal/service"
)

// RankingHandler handles ranking-related commands.
type RankingHandler struct {
	rankingService *service.RankingService
}

// NewRankingHandler creates a new RankingHandler.
func NewRankingHandler(rankingService *service.RankingService) *RankingHandler {
	return &RankingHandler{
		rankingService: rankingService,
	}
}

// HandleBest handles the /best command.
// Displays the fastest solves since the bot started.
// Requirements: 9.2
func (h *RankingHandler) HandleBest(c tele.Context) error {
	best := h.rankingService.Best(10)

	msg := "🏁 最速通关榜 TOP 10\n"
	msg += "━━━━━━━━━━━━━━━\n"

	if len(best) == 0 {
		msg += "暂无数据，输入 /play 开始第一局！"
		return c.Reply(msg)
	}

	medals := []string{"🥇", "🥈", "🥉"}
	for i, entry := range best {
		rank := fmt.Sprintf("%d.", i+1)
		if i < 3 {
			rank = medals[i]
		}

		displayName := entry.Username
		if displayName == "" {
			displayName = fmt.Sprintf("User%d", entry.UserID)
		}

		msg += fmt.Sprintf("%s %s: %s\n", rank, displayName, numbers.FormatElapsed(entry.Elapsed))
	}

	msg += "━━━━━━━━━━━━━━━"

	sender := c.Sender()
	if sender != nil {
		if bt, ok := h.rankingService.PersonalBest(sender.ID); ok {
			msg += fmt.Sprintf("\n⏱ 你的最佳: %s", numbers.FormatElapsed(bt.Elapsed))
		}
	}

	return c.Reply(msg)
}
