package engine

// RequestRoll handles a roll request from player, drawing both dice from the
// engine RNG. Requests outside the accepting phase (or from a non-current
// player) are silently ignored; the return value reports whether the event
// was accepted.
func (g *Game) RequestRoll(player uint8) bool {
	if !g.CanRoll(player) {
		return false
	}
	g.applyRoll(g.rollDie(), g.rollDie())
	return true
}

// ForceRoll is RequestRoll with a caller-supplied dice result, for
// deterministic replays and tests. Same gating as RequestRoll.
func (g *Game) ForceRoll(player, d1, d2 uint8) bool {
	if !g.CanRoll(player) {
		return false
	}
	if d1 < 1 || d1 > 6 || d2 < 1 || d2 > 6 {
		panic("engine: die face out of range")
	}
	g.applyRoll(d1, d2)
	return true
}

// applyRoll resolves a dice result for the current player: doubles tracking,
// the speeding rule, jail escapes, and the start of movement.
func (g *Game) applyRoll(d1, d2 uint8) {
	g.Dice = [2]uint8{d1, d2}
	p := g.CurrentPlayer()

	if p.InJail {
		g.rollFromJail(p, d1, d2)
		return
	}

	if d1 == d2 {
		p.Doubles++
		if p.Doubles >= SpeedingLimit {
			// Speeding: straight to jail, no movement, turn over.
			g.sendToJail(p)
			g.endTurn()
			return
		}
	} else {
		p.Doubles = 0
	}
	g.beginMove(int(d1)+int(d2), moveOptions{})
}

// rollFromJail resolves a jailed player's roll. Release comes from a
// get-out-of-jail card, from doubles, or from forced bail after the third
// failed attempt. Doubles never grant a repeat turn out of jail.
func (g *Game) rollFromJail(p *Player, d1, d2 uint8) {
	p.Doubles = 0
	switch {
	case p.JailCards > 0:
		p.JailCards--
	case d1 == d2:
		// released, move below
	default:
		p.JailTurns++
		if p.JailTurns < MaxJailTurns {
			g.endTurn()
			return
		}
		if !g.chargeBank(p, JailBail) {
			g.endTurn()
			return
		}
	}
	p.InJail = false
	p.JailTurns = 0
	g.beginMove(int(d1)+int(d2), moveOptions{})
}

// AcknowledgePopup handles a popup acknowledgment from player. For a Buying
// popup, choice 0 accepts the purchase and any other choice declines; other
// popups treat any choice as a plain acknowledgment. Out-of-phase events are
// silently ignored; the return value reports acceptance.
func (g *Game) AcknowledgePopup(player uint8, choice int) bool {
	if !g.AcceptsAck(player) {
		return false
	}
	if g.Phase == PhaseBuying && choice == 0 {
		g.buyCurrent()
	}
	g.endTurn()
	return true
}

// buyCurrent executes an accepted purchase. Insufficient funds degrade to a
// decline: the space stays unowned and biddable at the next landing.
func (g *Game) buyCurrent() {
	p := g.CurrentPlayer()
	sp := g.Board.Space(g.Popup.Space)
	if sp.Deed.Owner != NoOwner || p.Cash < sp.Price {
		return
	}
	p.Cash -= sp.Price
	sp.Deed.Owner = int8(p.ID)
	p.Owned = append(p.Owned, sp.Index)
}

// endTurn closes the current transaction and decides who rolls next: the
// same player when doubles are pending (and they are neither jailed nor
// bankrupt), otherwise the next eligible player in circular order.
func (g *Game) endTurn() {
	g.Popup = Popup{}
	g.Phase = PhaseRoll
	if g.IsGameOver() {
		return
	}
	p := g.CurrentPlayer()
	if !p.Bankrupt && !p.InJail && p.Doubles > 0 {
		return // doubles: same player rolls again
	}
	p.Doubles = 0
	g.advanceTurn()
}

// advanceTurn selects the next non-bankrupt player, scanning forward
// circularly and wrapping at most once. A sole survivor keeps taking
// consecutive turns. An empty player list is a corrupted-state violation.
func (g *Game) advanceTurn() {
	n := len(g.Players)
	if n == 0 {
		panic("engine: turn advancement with no players")
	}
	if g.ActiveCount() == 0 {
		g.Flags |= FlagGameOver
		return
	}
	for i := 1; i <= n; i++ {
		idx := (int(g.Current) + i) % n
		if !g.Players[idx].Bankrupt {
			g.Current = uint8(idx)
			g.TurnCount++
			return
		}
	}
	panic("engine: no eligible player in rotation")
}

// SkipTurn abandons whatever is in flight for the current player — popup,
// movement, doubles bonus — and hands the turn to the next eligible player.
// This is the production degrade path the session layer takes after
// recovering from an invariant violation.
func (g *Game) SkipTurn() {
	if g.IsGameOver() {
		return
	}
	p := g.CurrentPlayer()
	p.Move = MoveState{}
	p.Doubles = 0
	g.Popup = Popup{}
	g.Phase = PhaseRoll
	g.advanceTurn()
}
