// Package game defines the game interface and registry for the bot.
// Requirements: 6.1 - Common interface for all interactive games
// Requirements: 6.3 - Adding a new game only requires implementing the interface
package game

// Game defines the interface that all interactive games must implement.
// This enables a plugin-style architecture where new games can be added
// by simply implementing this interface.
// Requirements: 6.1, 6.3
type Game interface {
	// Name returns the game's display name (e.g., "数字寻宝")
	Name() string

	// Command returns the command that starts this game (e.g., "play")
	Command() string

	// Description returns a brief description of the game
	Description() string

	// CallbackPrefix returns the prefix carried by all of this game's
	// inline button callback data, used to route clicks back to it.
	CallbackPrefix() string
}
