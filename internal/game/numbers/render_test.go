package numbers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(t *testing.T) *Session {
	t.Helper()
	b, err := BoardFromSlots([BoardSize]int{0, 1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	return &Session{
		UserID:     1,
		NextTarget: 1,
		Revealed:   make(map[int]bool),
		Board:      b,
		StartTime:  time.Now(),
	}
}

// TestRenderBoard_Fresh tests the initial board render.
// Requirements: 4.1
func TestRenderBoard_Fresh(t *testing.T) {
	s := testSession(t)

	rm := renderBoard(s)

	assert.Contains(t, rm.Text, "请找出数字 1")
	require.Len(t, rm.Buttons, 3)
	for _, row := range rm.Buttons {
		require.Len(t, row, 3)
		for _, btn := range row {
			assert.Equal(t, MaskLabel, btn.Label)
			assert.Equal(t, ColorNeutral, btn.Color)
			assert.NotEmpty(t, btn.Data)
		}
	}
}

// TestRenderBoard_Progress tests revealed numbers and the prompt.
// Requirements: 4.1, 4.2
func TestRenderBoard_Progress(t *testing.T) {
	s := testSession(t)
	s.Revealed = map[int]bool{1: true, 2: true, 3: true}
	s.NextTarget = 4

	rm := renderBoard(s)

	assert.Contains(t, rm.Text, "请找出数字 4")

	labels := map[string]ButtonColor{}
	for _, row := range rm.Buttons {
		for _, btn := range row {
			labels[btn.Label] = btn.Color
		}
	}
	assert.Equal(t, ColorFound, labels["1"])
	assert.Equal(t, ColorFound, labels["2"])
	assert.Equal(t, ColorFound, labels["3"])
	assert.Equal(t, ColorNeutral, labels[MaskLabel])
}

// TestRenderBoard_Mistake tests the interim mistake render.
// Requirements: 4.2
func TestRenderBoard_Mistake(t *testing.T) {
	s := testSession(t)
	s.Revealed = map[int]bool{1: true}
	s.NextTarget = 2
	s.MistakeHighlight = 7

	rm := renderBoard(s)

	assert.Contains(t, rm.Text, "点错")
	assert.Contains(t, rm.Text, "应该找的是 2")

	var wrong *Button
	for _, row := range rm.Buttons {
		for i := range row {
			if row[i].Color == ColorWrong {
				wrong = &row[i]
			}
		}
	}
	require.NotNil(t, wrong)
	assert.Equal(t, "7", wrong.Label)
}

// TestRenderBoard_SlotOrder tests that buttons follow slot order, not
// value order, so the layout is stable across renders.
// Requirements: 1.2, 4.1
func TestRenderBoard_SlotOrder(t *testing.T) {
	b, err := BoardFromSlots([BoardSize]int{8, 7, 6, 5, 4, 3, 2, 1, 0})
	require.NoError(t, err)

	s := testSession(t)
	s.Board = b
	s.Revealed = map[int]bool{1: true}
	s.NextTarget = 2

	rm := renderBoard(s)

	// Value 1 sits at slot 8, the last cell of the grid.
	assert.Equal(t, "1", rm.Buttons[2][2].Label)
	assert.Equal(t, ColorFound, rm.Buttons[2][2].Color)
	assert.Equal(t, EncodeCallback("cell", "8"), rm.Buttons[2][2].Data)
}

// TestRenderComplete tests the terminal render.
// Requirements: 4.3
func TestRenderComplete(t *testing.T) {
	rm := renderComplete(83 * time.Second)

	assert.Empty(t, rm.Buttons)
	assert.Contains(t, rm.Text, "恭喜")
	assert.Contains(t, rm.Text, "1 分 23 秒")
}

// TestFormatElapsed tests elapsed time formatting.
func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  time.Duration
		expected string
	}{
		{"zero", 0, "0 分 0 秒"},
		{"seconds only", 42 * time.Second, "0 分 42 秒"},
		{"minutes and seconds", 2*time.Minute + 5*time.Second, "2 分 5 秒"},
		{"exact minute", time.Minute, "1 分 0 秒"},
		{"negative clamps to zero", -time.Second, "0 分 0 秒"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatElapsed(tt.elapsed))
		})
	}
}

// TestEncodeDecodeCallback tests the callback data codec.
// Requirements: 4.4
func TestEncodeDecodeCallback(t *testing.T) {
	data := EncodeCallback("cell", "4")
	assert.Equal(t, "num_cell_4", data)

	action, param := DecodeCallback(data)
	assert.Equal(t, "cell", action)
	assert.Equal(t, "4", param)

	action, param = DecodeCallback("other_cell_4")
	assert.Empty(t, action)
	assert.Empty(t, param)
}

// TestDecodeSlot tests slot extraction from callback payloads.
// Requirements: 4.4
func TestDecodeSlot(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected int
	}{
		{"valid slot", "num_cell_0", 0},
		{"last slot", "num_cell_8", 8},
		{"out of range", "num_cell_9", -1},
		{"negative", "num_cell_-1", -1},
		{"not a number", "num_cell_x", -1},
		{"wrong action", "num_start", -1},
		{"wrong prefix", "shop_cell_1", -1},
		{"empty", "", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodeSlot(tt.data))
		})
	}
}

// TestToReplyMarkup tests translation into the Telegram keyboard.
// Requirements: 4.4
func TestToReplyMarkup(t *testing.T) {
	s := testSession(t)
	s.Revealed = map[int]bool{1: true}
	s.NextTarget = 2
	s.MistakeHighlight = 3

	markup := ToReplyMarkup(renderBoard(s))
	require.NotNil(t, markup)
	require.Len(t, markup.InlineKeyboard, 3)

	assert.Equal(t, "✅1", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "❌3", markup.InlineKeyboard[0][2].Text)
	assert.Equal(t, MaskLabel, markup.InlineKeyboard[1][0].Text)
	assert.Equal(t, "num_cell_0", markup.InlineKeyboard[0][0].Data)

	// Terminal render has no keyboard.
	assert.Nil(t, ToReplyMarkup(renderComplete(time.Second)))
}
