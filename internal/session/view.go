// internal/session/view.go
package session

import (
	"github.com/google/uuid"

	"github.com/mwhitten/boardwalk/engine"
)

// ViewSpace represents one board space for client synchronization.
type ViewSpace struct {
	Index     int       `json:"index"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Price     int       `json:"price,omitempty"`
	Owner     uuid.UUID `json:"owner,omitempty"` // Nil while unowned.
	Houses    uint8     `json:"houses,omitempty"`
	Mortgaged bool      `json:"mortgaged,omitempty"`
}

// ViewPlayer represents the state of a single player as clients see it.
type ViewPlayer struct {
	PlayerID      uuid.UUID `json:"playerId"`
	Seat          uint8     `json:"seat"`
	Cash          int       `json:"cash"`
	Position      int       `json:"position"`
	Owned         []int     `json:"owned,omitempty"`
	InJail        bool      `json:"inJail"`
	JailCards     uint8     `json:"jailCards"`
	Bankrupt      bool      `json:"bankrupt"`
	IsCurrentTurn bool      `json:"isCurrentTurn"`
	// MovePath is populated only while this player's token is in flight.
	MovePath []int `json:"movePath,omitempty"`
}

// ViewState represents the overall game state for one observer. Monopoly's
// board is public knowledge; the only hidden information is the order of the
// two card piles, which the view reduces to their sizes.
type ViewState struct {
	SessionID       uuid.UUID    `json:"sessionId"`
	GameOver        bool         `json:"gameOver"`
	CurrentPlayerID uuid.UUID    `json:"currentPlayerId"`
	Phase           string       `json:"phase"`
	Dice            []uint8      `json:"dice,omitempty"`
	TurnCount       int          `json:"turnCount"`
	ChanceSize      int          `json:"chanceSize"`
	CommunitySize   int          `json:"communitySize"`
	Popup           *engine.Popup `json:"popup,omitempty"`
	Players         []ViewPlayer `json:"players"`
	Spaces          []ViewSpace  `json:"spaces"`
}

// BuildView generates a snapshot of the game state for the given observer.
// Reads from engine state as the authoritative source.
// This function assumes the session lock is HELD by the caller.
func (s *Session) BuildView(forUser uuid.UUID) ViewState {
	g := s.Game
	view := ViewState{
		SessionID:     s.ID,
		GameOver:      g.IsGameOver(),
		Phase:         g.Phase.String(),
		TurnCount:     int(g.TurnCount),
		ChanceSize:    g.Chance.Len(),
		CommunitySize: g.Community.Len(),
	}

	if !view.GameOver {
		view.CurrentPlayerID = s.seatToPlayer[g.Current]
	}
	if g.Phase != engine.PhaseRoll {
		view.Dice = []uint8{g.Dice[0], g.Dice[1]}
	}
	if g.Popup.Kind != engine.PopupNone {
		popup := g.Popup
		view.Popup = &popup
	}

	view.Players = make([]ViewPlayer, len(g.Players))
	for i := range g.Players {
		p := &g.Players[i]
		vp := ViewPlayer{
			PlayerID:      s.seatToPlayer[p.ID],
			Seat:          p.ID,
			Cash:          p.Cash,
			Position:      p.Position,
			Owned:         append([]int(nil), p.Owned...),
			InJail:        p.InJail,
			JailCards:     p.JailCards,
			Bankrupt:      p.Bankrupt,
			IsCurrentTurn: !view.GameOver && g.Current == p.ID,
		}
		if p.Move.Active {
			vp.MovePath = append([]int(nil), p.Move.Path...)
		}
		view.Players[i] = vp
	}

	view.Spaces = make([]ViewSpace, engine.BoardSize)
	for i := range g.Board.Spaces {
		sp := &g.Board.Spaces[i]
		vs := ViewSpace{
			Index: sp.Index,
			Name:  sp.Name,
			Kind:  sp.Kind.String(),
			Price: sp.Price,
		}
		if sp.Deed.Owner != engine.NoOwner {
			vs.Owner = s.seatToPlayer[uint8(sp.Deed.Owner)]
			vs.Houses = sp.Deed.Houses
			vs.Mortgaged = sp.Deed.Mortgaged
		}
		view.Spaces[i] = vs
	}

	_ = forUser // nothing on the board is hidden per-observer
	return view
}
