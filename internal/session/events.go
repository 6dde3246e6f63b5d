// internal/session/events.go
package session

import (
	"github.com/google/uuid"

	"github.com/mwhitten/boardwalk/engine"
)

// EventType represents the type of a game-related event delivered to clients.
type EventType string

// Constants defining the various Event types delivered through the broadcast
// callbacks.
const (
	EventGameStart       EventType = "game_start"         // Public: Game began, includes seating.
	EventPlayerTurn      EventType = "game_player_turn"   // Public: Notification of the current player's turn.
	EventPlayerRoll      EventType = "player_roll"        // Public: Player rolled, includes both dice.
	EventPlayerMoveStart EventType = "player_move_start"  // Public: Token movement began, includes the path.
	EventPlayerMoveEnd   EventType = "player_move_end"    // Public: Token came to rest.
	EventPopup           EventType = "game_popup"         // Public: A buy/rent/card popup opened.
	EventPlayerBuy       EventType = "player_buy"         // Public: Player bought the space they stand on.
	EventPlayerBankrupt  EventType = "player_bankrupt"    // Public: Player left the game broke.
	EventPlayerJailed    EventType = "player_jailed"      // Public: Player was sent to jail.
	EventTurnSkipped     EventType = "game_turn_skipped"  // Public: A turn was abandoned after a fault.
	EventPrivateSync     EventType = "private_sync_state" // Private: Full board sync for one player.
	EventGameEnd         EventType = "game_end"           // Public: Game has ended, includes results.
)

// EventSeat identifies a player within an Event payload.
type EventSeat struct {
	ID   uuid.UUID `json:"id"`
	Seat uint8     `json:"seat"`
}

// Event is the standard structure for broadcasting game state changes and
// actions to clients.
type Event struct {
	Type EventType  `json:"type"`
	Seat *EventSeat `json:"seat,omitempty"` // The player initiating or targeted by the event.

	Dice  []uint8      `json:"dice,omitempty"`  // Both dice, for roll events.
	Path  []int        `json:"path,omitempty"`  // Movement path, for move events.
	Space int          `json:"space,omitempty"` // Board index involved, where relevant.
	Popup *engine.Popup `json:"popup,omitempty"` // Popup contents, for popup events.

	Payload map[string]interface{} `json:"payload,omitempty"` // Additional arbitrary data.

	State *ViewState `json:"state,omitempty"` // Full view for sync events.
}
