// Requirements: 4.1, 4.2, 4.3 - Board presentation
package numbers

import (
	"fmt"
	"strconv"
	"time"
)

// ButtonColor classifies how a button should be displayed.
type ButtonColor string

const (
	// ColorNeutral is an unrevealed slot.
	ColorNeutral ButtonColor = "neutral"
	// ColorFound is a slot whose value has been found.
	ColorFound ButtonColor = "found"
	// ColorWrong is the slot that was just tapped by mistake.
	ColorWrong ButtonColor = "wrong"
)

// MaskLabel is shown on slots whose value is still hidden.
const MaskLabel = "❓"

// Button is one cell of the rendered grid.
type Button struct {
	Label string
	Color ButtonColor
	Data  string // opaque payload carrying the slot id
}

// RenderModel is a platform-agnostic description of one board update:
// message text plus, for in-progress games, a 3×3 button grid.
type RenderModel struct {
	Text    string
	Buttons [][]Button
}

// renderBoard renders an in-progress session: revealed numbers shown,
// everything else masked, the mistake slot (if any) highlighted, and the
// prompt naming the value to find next.
// Requirements: 4.1, 4.2
func renderBoard(s *Session) RenderModel {
	buttons := make([][]Button, 0, BoardSize/GridWidth)

	var row []Button
	for slot := 0; slot < BoardSize; slot++ {
		value := s.Board.Value(slot)

		btn := Button{
			Label: MaskLabel,
			Color: ColorNeutral,
			Data:  EncodeCallback("cell", strconv.Itoa(slot)),
		}
		switch {
		case value == s.MistakeHighlight && s.MistakeHighlight != 0:
			btn.Label = strconv.Itoa(value)
			btn.Color = ColorWrong
		case s.Revealed[value]:
			btn.Label = strconv.Itoa(value)
			btn.Color = ColorFound
		}

		row = append(row, btn)
		if len(row) == GridWidth {
			buttons = append(buttons, row)
			row = nil
		}
	}

	text := "🔢 数字寻宝\n"
	text += "按顺序找出隐藏的数字 1-9\n"
	text += "━━━━━━━━━━━━━━━\n"
	if s.MistakeHighlight != 0 {
		text += fmt.Sprintf("💥 点错了！2 秒后重新开始\n👉 应该找的是 %d", s.NextTarget)
	} else {
		text += fmt.Sprintf("👉 请找出数字 %d", s.NextTarget)
	}

	return RenderModel{Text: text, Buttons: buttons}
}

// renderComplete renders the terminal congratulation. No buttons: the
// finished board accepts no further input.
// Requirements: 4.3
func renderComplete(elapsed time.Duration) RenderModel {
	text := "🎉 恭喜通关！\n"
	text += "━━━━━━━━━━━━━━━\n"
	text += fmt.Sprintf("⏱ 用时 %s\n", FormatElapsed(elapsed))
	text += "输入 /play 再来一局"

	return RenderModel{Text: text}
}

// FormatElapsed formats a solve time as minutes and seconds.
func FormatElapsed(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}
	minutes := int(elapsed.Minutes())
	seconds := int(elapsed.Seconds()) % 60
	return fmt.Sprintf("%d 分 %d 秒", minutes, seconds)
}
