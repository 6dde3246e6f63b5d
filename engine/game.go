// Package engine implements the Monopoly turn engine.
//
// The package is a pure, dependency-free core: a single Game value holds the
// complete state, all time is virtual (driven through Tick), and all input
// arrives as discrete events that are silently ignored outside their
// accepting phase. Collaborators (rendering, input, persistence) live above
// this package and only read engine state.
package engine

// Player is one account's economic and positional state. A bankrupt player
// is terminal: permanently skipped in turn rotation and excluded from every
// card transfer.
type Player struct {
	ID        uint8     `json:"id"`
	Cash      int       `json:"cash"`
	Position  int       `json:"position"`
	Owned     []int     `json:"owned,omitempty"` // space indices, acquisition order
	InJail    bool      `json:"inJail"`
	JailTurns uint8     `json:"jailTurns"`
	JailCards uint8     `json:"jailCards"`
	Doubles   uint8     `json:"doubles"` // consecutive doubles this roll-sequence
	Bankrupt  bool      `json:"bankrupt"`
	Move      MoveState `json:"move"`
}

const (
	// FlagGameOver is set when no non-bankrupt player remains.
	FlagGameOver uint16 = 1 << 0
)

// Game holds the complete, self-contained state of one Monopoly game.
// It is never mutated concurrently; the session layer serializes access.
type Game struct {
	Board     Board    `json:"board"`
	Players   []Player `json:"players"`
	Current   uint8    `json:"current"`
	Phase     Phase    `json:"phase"`
	Dice      [2]uint8 `json:"dice"`
	Chance    Deck     `json:"chance"`
	Community Deck     `json:"community"`
	Popup     Popup    `json:"popup"`
	Clock     float64  `json:"clock"` // virtual time, advanced by Tick
	TurnCount uint16   `json:"turnCount"`
	Flags     uint16   `json:"flags"`
	RNG       uint64   `json:"rng"`
}

// NewGame initializes a game with numPlayers accounts, a freshly built board,
// and both decks shuffled once from the given seed. A player count outside
// [MinPlayers, MaxPlayers] is a programming-contract violation.
func NewGame(seed uint64, numPlayers int) *Game {
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		panic("engine: player count out of range")
	}
	g := &Game{
		Board:     NewBoard(),
		Players:   make([]Player, numPlayers),
		Phase:     PhaseRoll,
		Chance:    NewChanceDeck(),
		Community: NewCommunityChestDeck(),
		RNG:       seed,
	}
	if g.RNG == 0 {
		g.RNG = 1 // xorshift can't start at 0
	}
	for i := range g.Players {
		g.Players[i] = Player{ID: uint8(i), Cash: StartingCash}
	}
	g.Chance.Shuffle(g.randN)
	g.Community.Shuffle(g.randN)
	return g
}

// ---------------------------------------------------------------------------
// xorshift64 RNG — inline, no interface
// ---------------------------------------------------------------------------

func (g *Game) nextRand() uint64 {
	x := g.RNG
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.RNG = x
	return x
}

// randN returns a random number in [0, n).
func (g *Game) randN(n uint64) uint64 {
	return g.nextRand() % n
}

// rollDie returns a uniform die face in [1, 6].
func (g *Game) rollDie() uint8 {
	return uint8(g.randN(6)) + 1
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// IsGameOver reports whether every account has gone bankrupt.
func (g *Game) IsGameOver() bool { return g.Flags&FlagGameOver != 0 }

// CurrentPlayer returns the account whose turn it is.
func (g *Game) CurrentPlayer() *Player { return &g.Players[g.Current] }

// ActiveCount returns the number of non-bankrupt players.
func (g *Game) ActiveCount() int {
	n := 0
	for i := range g.Players {
		if !g.Players[i].Bankrupt {
			n++
		}
	}
	return n
}

// Winner returns the sole surviving player's index, or -1 while two or more
// players remain (or none). The engine itself never terminates on a win;
// the external orchestrator decides when to stop.
func (g *Game) Winner() int8 {
	winner := int8(-1)
	for i := range g.Players {
		if g.Players[i].Bankrupt {
			continue
		}
		if winner >= 0 {
			return -1
		}
		winner = int8(i)
	}
	return winner
}

// DiceSum returns the face sum of the last roll.
func (g *Game) DiceSum() int { return int(g.Dice[0]) + int(g.Dice[1]) }

// ---------------------------------------------------------------------------
// Snapshot (save / resume extension point)
// ---------------------------------------------------------------------------

// Snapshot is a deep value copy of Game. All fields are exported, so a
// Snapshot round-trips through encoding/json for persistence.
type Snapshot Game

// Save returns a snapshot of the current game state, deep-copying every
// slice so later mutation of the live game cannot leak into it.
func (g *Game) Save() Snapshot {
	s := Snapshot(*g)
	s.Players = make([]Player, len(g.Players))
	copy(s.Players, g.Players)
	for i := range s.Players {
		s.Players[i].Owned = append([]int(nil), g.Players[i].Owned...)
		s.Players[i].Move.Path = append([]int(nil), g.Players[i].Move.Path...)
	}
	s.Chance.Cards = append([]Card(nil), g.Chance.Cards...)
	s.Community.Cards = append([]Card(nil), g.Community.Cards...)
	return s
}

// Restore replaces the game state with the given snapshot. The snapshot's
// slices are deep-copied so the caller may keep reusing it.
func (g *Game) Restore(s Snapshot) {
	restored := Game(s)
	restored.Players = make([]Player, len(s.Players))
	copy(restored.Players, s.Players)
	for i := range restored.Players {
		restored.Players[i].Owned = append([]int(nil), s.Players[i].Owned...)
		restored.Players[i].Move.Path = append([]int(nil), s.Players[i].Move.Path...)
	}
	restored.Chance.Cards = append([]Card(nil), s.Chance.Cards...)
	restored.Community.Cards = append([]Card(nil), s.Community.Cards...)
	*g = restored
}
