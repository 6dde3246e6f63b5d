package engine

import (
	"reflect"
	"testing"
)

// stepGame advances the game by one scripted input: roll when rolling, tick
// when moving, accept every popup (always buying).
func stepGame(g *Game) {
	switch g.Phase {
	case PhaseRoll:
		g.RequestRoll(g.Current)
	case PhaseMoving:
		g.Tick(0.5)
	case PhaseBuying, PhasePayingRent, PhaseCardPending:
		g.AcknowledgePopup(g.Popup.Player, 0)
	}
}

// checkInvariants asserts the structural laws that must hold between any two
// engine events.
func checkInvariants(t *testing.T, g *Game, step int) {
	t.Helper()

	ownedBy := make(map[int]uint8)
	for i := range g.Players {
		p := &g.Players[i]
		if p.Cash < 0 {
			t.Fatalf("step %d: player %d cash negative: %d", step, i, p.Cash)
		}
		if p.Position < 0 || p.Position >= BoardSize {
			t.Fatalf("step %d: player %d position out of range: %d", step, i, p.Position)
		}
		if p.Doubles >= SpeedingLimit {
			t.Fatalf("step %d: player %d doubles counter reached %d", step, i, p.Doubles)
		}
		if p.Bankrupt && len(p.Owned) != 0 {
			t.Fatalf("step %d: bankrupt player %d still owns %v", step, i, p.Owned)
		}
		for _, idx := range p.Owned {
			if g.Board.Spaces[idx].Deed.Owner != int8(i) {
				t.Fatalf("step %d: player %d lists space %d owned by %d",
					step, i, idx, g.Board.Spaces[idx].Deed.Owner)
			}
			if _, dup := ownedBy[idx]; dup {
				t.Fatalf("step %d: space %d listed by two players", step, idx)
			}
			ownedBy[idx] = uint8(i)
		}
	}
	for i := range g.Board.Spaces {
		owner := g.Board.Spaces[i].Deed.Owner
		if owner == NoOwner {
			continue
		}
		if _, ok := ownedBy[i]; !ok {
			t.Fatalf("step %d: space %d owned by %d but missing from their list", step, i, owner)
		}
		if g.Players[owner].Bankrupt {
			t.Fatalf("step %d: space %d owned by bankrupt player %d", step, i, owner)
		}
	}

	if g.Chance.Len() != 16 || g.Community.Len() != 16 {
		t.Fatalf("step %d: deck sizes drifted to %d/%d", step, g.Chance.Len(), g.Community.Len())
	}
	if g.Phase == PhaseMoving && !g.CurrentPlayer().Move.Active {
		t.Fatalf("step %d: Moving phase with no in-flight movement", step)
	}
	if g.Popup.Kind != PopupNone && g.Phase == PhaseRoll {
		t.Fatalf("step %d: popup pending in the Roll phase", step)
	}
	if !g.IsGameOver() && g.CurrentPlayer().Bankrupt {
		t.Fatalf("step %d: turn held by bankrupt player %d", step, g.Current)
	}
}

// TestSelfPlayInvariants drives randomized always-buy games across several
// seeds and asserts the structural invariants after every input.
func TestSelfPlayInvariants(t *testing.T) {
	for _, seed := range []uint64{1, 2, 42, 1337} {
		g := NewGame(seed, 4)
		for step := 0; step < 3000; step++ {
			if g.IsGameOver() {
				break
			}
			stepGame(g)
			checkInvariants(t, g, step)
		}
		// The drive must have left the Roll state reachable or the game over;
		// a stuck phase means an event was dropped on the floor.
		if !g.IsGameOver() && g.TurnCount == 0 {
			t.Errorf("seed %d: no turns completed in 3000 steps", seed)
		}
	}
}

// TestSelfPlayDeterministic verifies two games with the same seed and the
// same scripted inputs stay byte-identical.
func TestSelfPlayDeterministic(t *testing.T) {
	g1 := NewGame(99, 3)
	g2 := NewGame(99, 3)
	for step := 0; step < 1500; step++ {
		stepGame(g1)
		stepGame(g2)
	}
	if !reflect.DeepEqual(g1.Save(), g2.Save()) {
		t.Error("same-seed games diverged under identical inputs")
	}
}

// TestSelfPlayBankruptciesSettle verifies that when a game does finish, the
// terminal flag and rotation agree.
func TestSelfPlayBankruptciesSettle(t *testing.T) {
	g := NewGame(7, 2)
	// Force an unforgiving economy so bankruptcies actually happen.
	for i := range g.Players {
		g.Players[i].Cash = 120
	}
	for step := 0; step < 5000 && g.Winner() == -1 && !g.IsGameOver(); step++ {
		stepGame(g)
		checkInvariants(t, g, step)
	}
	// Either someone won, or the game stayed live for the whole budget with
	// invariants intact; both are acceptable terminal states for this drive.
	if w := g.Winner(); w != -1 {
		if g.Players[w].Bankrupt {
			t.Errorf("winner %d is bankrupt", w)
		}
		if g.ActiveCount() != 1 {
			t.Errorf("winner reported with %d active players", g.ActiveCount())
		}
	}
}
