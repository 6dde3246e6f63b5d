package engine

// Input gating. Events arriving outside their accepting phase are expected
// (player input races the state machine) and must be silent no-ops, never
// errors. These predicates are the single source of truth for both the
// engine's own entry points and the session layer's pre-checks.

// CanRoll reports whether a roll request from player would be accepted:
// the game is live, it is that player's turn, the machine is in the Roll
// phase, and no popup is pending.
func (g *Game) CanRoll(player uint8) bool {
	if g.IsGameOver() || int(player) >= len(g.Players) {
		return false
	}
	return player == g.Current &&
		g.Phase == PhaseRoll &&
		g.Popup.Kind == PopupNone &&
		!g.Players[player].Bankrupt
}

// AcceptsAck reports whether a popup acknowledgment from player would be
// accepted: a transaction-resolution phase is active and the popup belongs
// to that player.
func (g *Game) AcceptsAck(player uint8) bool {
	if g.IsGameOver() || int(player) >= len(g.Players) {
		return false
	}
	switch g.Phase {
	case PhaseBuying, PhasePayingRent, PhaseCardPending:
		return g.Popup.Kind != PopupNone && g.Popup.Player == player
	}
	return false
}
