// Requirements: 4.4 - Telegram inline keyboard translation
package numbers

import (
	"fmt"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v3"
)

const (
	// CallbackPrefix is the prefix for all number hunt callback data.
	CallbackPrefix = "num_"
)

// EncodeCallback encodes an action and parameter into callback data.
func EncodeCallback(action string, param string) string {
	if param != "" {
		return fmt.Sprintf("%s%s_%s", CallbackPrefix, action, param)
	}
	return fmt.Sprintf("%s%s", CallbackPrefix, action)
}

// DecodeCallback decodes callback data into action and parameter.
func DecodeCallback(data string) (action string, param string) {
	if !strings.HasPrefix(data, CallbackPrefix) {
		return "", ""
	}

	content := strings.TrimPrefix(data, CallbackPrefix)
	parts := strings.SplitN(content, "_", 2)
	action = parts[0]
	if len(parts) > 1 {
		param = parts[1]
	}
	return action, param
}

// DecodeSlot extracts the slot id from button callback data.
// Returns -1 if the payload is not a valid cell click.
func DecodeSlot(data string) int {
	action, param := DecodeCallback(data)
	if action != "cell" {
		return -1
	}
	slot, err := strconv.Atoi(param)
	if err != nil || slot < 0 || slot >= BoardSize {
		return -1
	}
	return slot
}

// ToReplyMarkup translates a render model into a Telegram inline keyboard.
// Telegram buttons have no colors, so the color is folded into the label.
// Returns nil for terminal renders with no buttons.
func ToReplyMarkup(rm RenderModel) *tele.ReplyMarkup {
	if len(rm.Buttons) == 0 {
		return nil
	}

	markup := &tele.ReplyMarkup{}
	rows := make([][]tele.InlineButton, 0, len(rm.Buttons))

	for _, row := range rm.Buttons {
		teleRow := make([]tele.InlineButton, 0, len(row))
		for _, btn := range row {
			label := btn.Label
			switch btn.Color {
			case ColorWrong:
				label = "❌" + btn.Label
			case ColorFound:
				label = "✅" + btn.Label
			}
			teleRow = append(teleRow, tele.InlineButton{
				Text: label,
				Data: btn.Data,
			})
		}
		rows = append(rows, teleRow)
	}

	markup.InlineKeyboard = rows
	return markup
}
