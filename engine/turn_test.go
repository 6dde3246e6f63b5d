package engine

import "testing"

// TestDoublesDetection drives every dice pair through a fresh game and checks
// the doubles counter and path length.
func TestDoublesDetection(t *testing.T) {
	for d1 := uint8(1); d1 <= 6; d1++ {
		for d2 := uint8(1); d2 <= 6; d2++ {
			g := NewGame(1, 2)
			neutralize(g)
			if !g.ForceRoll(0, d1, d2) {
				t.Fatalf("roll (%d,%d) rejected", d1, d2)
			}
			p := &g.Players[0]
			wantDoubles := uint8(0)
			if d1 == d2 {
				wantDoubles = 1
			}
			if p.Doubles != wantDoubles {
				t.Errorf("roll (%d,%d): doubles = %d, want %d", d1, d2, p.Doubles, wantDoubles)
			}
			if got := len(p.Move.Path); got != int(d1)+int(d2) {
				t.Errorf("roll (%d,%d): path length = %d, want %d", d1, d2, got, int(d1)+int(d2))
			}
		}
	}
}

// TestDoublesRepeatTurn verifies a doubles roll keeps the turn with the same
// player and a subsequent non-doubles roll passes it.
func TestDoublesRepeatTurn(t *testing.T) {
	g := NewGame(1, 2)
	neutralize(g)

	g.ForceRoll(0, 2, 2)
	finishCurrentMove(t, g)
	if g.Current != 0 || g.Phase != PhaseRoll {
		t.Fatalf("after doubles: current=%d phase=%v, want 0/roll", g.Current, g.Phase)
	}

	g.ForceRoll(0, 3, 4)
	finishCurrentMove(t, g)
	if g.Current != 1 {
		t.Errorf("after plain roll: current = %d, want 1", g.Current)
	}
	if g.Players[0].Doubles != 0 {
		t.Error("doubles counter survived a non-doubles roll")
	}
}

// TestSpeedingRule verifies the third consecutive doubles jails the player
// with no movement and ends the turn.
func TestSpeedingRule(t *testing.T) {
	g := NewGame(1, 2)
	neutralize(g)
	g.Players[0].Doubles = 2
	g.Players[0].Position = 14

	g.ForceRoll(0, 5, 5)
	p := &g.Players[0]
	if !p.InJail || p.Position != JailIndex {
		t.Errorf("speeding: jailed=%v at %d, want jailed at %d", p.InJail, p.Position, JailIndex)
	}
	if p.Move.Active {
		t.Error("speeding roll started a movement")
	}
	if g.Current != 1 {
		t.Error("speeding did not end the turn")
	}
}

// TestJailReleaseByCard verifies a held get-out card is consumed before any
// other release path, regardless of the roll.
func TestJailReleaseByCard(t *testing.T) {
	g := NewGame(1, 2)
	neutralize(g)
	p := &g.Players[0]
	g.sendToJail(p)
	p.JailCards = 1

	g.ForceRoll(0, 1, 2)
	if p.InJail || p.JailCards != 0 {
		t.Errorf("jail state = %v, cards = %d; want released with card spent", p.InJail, p.JailCards)
	}
	if !p.Move.Active || len(p.Move.Path) != 3 {
		t.Error("released player did not start moving by the roll")
	}
}

// TestJailReleaseByDoubles verifies doubles release and move the player but
// never grant a repeat turn.
func TestJailReleaseByDoubles(t *testing.T) {
	g := NewGame(1, 2)
	neutralize(g)
	p := &g.Players[0]
	g.sendToJail(p)

	g.ForceRoll(0, 4, 4)
	if p.InJail {
		t.Fatal("doubles did not release from jail")
	}
	finishCurrentMove(t, g)
	if p.Position != (JailIndex+8)%BoardSize {
		t.Errorf("position = %d, want %d", p.Position, (JailIndex+8)%BoardSize)
	}
	if g.Current != 1 {
		t.Error("doubles out of jail granted a repeat turn")
	}
}

// TestJailFailedAttemptsThenBail verifies two failed rolls pass the turn in
// place, and the third forces the bail payment and moves the player.
func TestJailFailedAttemptsThenBail(t *testing.T) {
	g := NewGame(1, 2)
	neutralize(g)
	p := &g.Players[0]
	g.sendToJail(p)

	for attempt := 1; attempt <= 2; attempt++ {
		g.ForceRoll(0, 1, 2)
		if !p.InJail || int(p.JailTurns) != attempt {
			t.Fatalf("attempt %d: jailed=%v turns=%d", attempt, p.InJail, p.JailTurns)
		}
		if g.Current != 1 {
			t.Fatalf("attempt %d did not pass the turn", attempt)
		}
		// Bring the turn back around.
		g.ForceRoll(1, 1, 2)
		finishCurrentMove(t, g)
	}

	g.ForceRoll(0, 1, 2)
	if p.InJail {
		t.Fatal("third failed attempt did not force bail")
	}
	if p.Cash != StartingCash-JailBail {
		t.Errorf("cash = %d, want %d after bail", p.Cash, StartingCash-JailBail)
	}
	if !p.Move.Active {
		t.Error("bailed player did not start moving")
	}
}

// TestJailBailBankruptcy verifies a player who cannot afford the forced bail
// goes bankrupt to the bank and stays put.
func TestJailBailBankruptcy(t *testing.T) {
	g := NewGame(1, 2)
	neutralize(g)
	p := &g.Players[0]
	g.sendToJail(p)
	p.JailTurns = MaxJailTurns - 1
	p.Cash = 20

	g.ForceRoll(0, 1, 2)
	if !p.Bankrupt {
		t.Fatal("unaffordable bail did not bankrupt")
	}
	if p.Cash != 20 {
		t.Errorf("cash = %d, want untouched 20", p.Cash)
	}
	if p.Move.Active {
		t.Error("bankrupt player started moving")
	}
	if g.Current != 1 {
		t.Error("turn did not pass to the survivor")
	}
}

// TestRotationSkipsBankrupt verifies circular rotation with wraparound past
// bankrupt seats.
func TestRotationSkipsBankrupt(t *testing.T) {
	g := NewGame(1, 4)
	neutralize(g)
	g.Players[1].Bankrupt = true
	g.Players[3].Bankrupt = true

	g.ForceRoll(0, 1, 2)
	finishCurrentMove(t, g)
	if g.Current != 2 {
		t.Errorf("current = %d, want 2 (seat 1 skipped)", g.Current)
	}

	g.ForceRoll(2, 1, 2)
	finishCurrentMove(t, g)
	if g.Current != 0 {
		t.Errorf("current = %d, want 0 (seat 3 skipped, wrapped)", g.Current)
	}
}

// TestSoleSurvivorKeepsTurn verifies a single remaining player keeps taking
// consecutive turns and is reported as the winner.
func TestSoleSurvivorKeepsTurn(t *testing.T) {
	g := NewGame(1, 3)
	neutralize(g)
	g.Players[0].Bankrupt = true
	g.Players[2].Bankrupt = true
	g.Current = 1

	g.ForceRoll(1, 1, 2)
	finishCurrentMove(t, g)
	if g.Current != 1 {
		t.Errorf("current = %d, want sole survivor 1", g.Current)
	}
	if got := g.Winner(); got != 1 {
		t.Errorf("Winner() = %d, want 1", got)
	}
}

// TestWinnerUndecided verifies Winner reports no result while two or more
// players remain.
func TestWinnerUndecided(t *testing.T) {
	g := NewGame(1, 3)
	if got := g.Winner(); got != -1 {
		t.Errorf("Winner() = %d, want -1 with all players active", got)
	}
	g.Players[2].Bankrupt = true
	if got := g.Winner(); got != -1 {
		t.Errorf("Winner() = %d, want -1 with two players active", got)
	}
}

// TestInputGating verifies out-of-phase and wrong-player events are silent
// no-ops that leave the state untouched.
func TestInputGating(t *testing.T) {
	g := NewGame(1, 2)
	neutralize(g)

	if g.RequestRoll(1) {
		t.Error("non-current player's roll accepted")
	}
	if g.AcknowledgePopup(0, 0) {
		t.Error("acknowledgment accepted with no popup pending")
	}

	g.ForceRoll(0, 1, 2)
	if g.ForceRoll(0, 1, 2) {
		t.Error("roll accepted during the Moving phase")
	}
	if g.RequestRoll(0) {
		t.Error("roll accepted during the Moving phase")
	}

	// A pending popup gates rolls and rejects other players' acks.
	g2 := NewGame(1, 2)
	g2.ForceRoll(0, 2, 4) // lands on Oriental, buy popup
	finishCurrentMove(t, g2)
	if g2.RequestRoll(0) {
		t.Error("roll accepted while a popup is pending")
	}
	if g2.AcknowledgePopup(1, 0) {
		t.Error("another player's acknowledgment accepted")
	}
	if g2.Phase != PhaseBuying {
		t.Error("rejected events mutated the phase")
	}

	// Gating runs before the face check, so an out-of-phase forced roll with
	// a bad die is rejected, not a panic.
	if g.ForceRoll(0, 9, 1) {
		t.Error("out-of-phase forced roll accepted")
	}
}

// TestForceRollBadDiePanics verifies an in-turn forced roll with an invalid
// die face is a contract violation.
func TestForceRollBadDiePanics(t *testing.T) {
	g := NewGame(1, 2)
	defer func() {
		if recover() == nil {
			t.Error("ForceRoll with die face 7 did not panic")
		}
	}()
	g.ForceRoll(0, 7, 1)
}

// TestSkipTurn verifies the degrade path abandons the pending popup, the
// doubles bonus, and any in-flight movement, then rotates.
func TestSkipTurn(t *testing.T) {
	g := NewGame(1, 2)
	g.ForceRoll(0, 2, 4)
	finishCurrentMove(t, g)
	g.Players[0].Doubles = 1

	g.SkipTurn()
	if g.Popup.Kind != PopupNone || g.Phase != PhaseRoll {
		t.Errorf("popup/phase = %v/%v, want cleared/roll", g.Popup.Kind, g.Phase)
	}
	if g.Players[0].Doubles != 0 || g.Players[0].Move.Active {
		t.Error("skip left player state in flight")
	}
	if g.Current != 1 {
		t.Errorf("current = %d, want 1", g.Current)
	}
}
