package engine

// moveOptions carries how a movement was initiated, which the landing
// resolver needs once the token comes to rest.
type moveOptions struct {
	fromCard   bool // no fresh roll backs this movement
	noGoCredit bool // card explicitly suppresses the Go bonus
	rentMult   int  // landing rent multiplier; 0 means 1
}

// beginMove starts a forward or backward movement of the current player by
// spaces steps (negative = backward). It computes the full path, decides the
// Go-passing credit, and enters the Moving phase. The player's authoritative
// position and any Go credit are applied only when the movement's time gate
// elapses (see Tick / finishMove).
func (g *Game) beginMove(spaces int, opt moveOptions) {
	if spaces == 0 || spaces > BoardSize || spaces < -BoardSize {
		panic("engine: movement distance out of range")
	}
	p := g.CurrentPlayer()

	step := 1
	count := spaces
	if spaces < 0 {
		step = -1
		count = -spaces
	}
	path := make([]int, count)
	pos := p.Position
	for i := 0; i < count; i++ {
		pos = (pos + step + BoardSize) % BoardSize
		path[i] = pos
	}

	// Passing-Go credit: forward movement whose path touches Go but does not
	// end there (a landing on Go is credited by the resolver instead).
	creditGo := false
	if step > 0 && !opt.noGoCredit {
		final := path[count-1]
		for _, idx := range path {
			if idx == 0 && final != 0 {
				creditGo = true
				break
			}
		}
	}

	mult := opt.rentMult
	if mult == 0 {
		mult = 1
	}
	p.Move = MoveState{
		Active:   true,
		Path:     path,
		Start:    g.Clock,
		CreditGo: creditGo,
		FromCard: opt.fromCard,
		RentMult: mult,
	}
	g.Phase = PhaseMoving
}

// advanceTo starts a movement to an absolute board position, always forward.
// A target equal to the current position wraps a full lap. Card-driven
// advances land here with fromCard set.
func (g *Game) advanceTo(target int, opt moveOptions) {
	if target < 0 || target >= BoardSize {
		panic("engine: advance target out of range")
	}
	p := g.CurrentPlayer()
	steps := ((target-p.Position)+BoardSize-1)%BoardSize + 1
	g.beginMove(steps, opt)
}

// nearestAhead returns the first space of the wanted class strictly ahead of
// pos, scanning circularly.
func (g *Game) nearestAhead(pos int, want SpaceKind) int {
	for i := 1; i < BoardSize; i++ {
		idx := (pos + i) % BoardSize
		if g.Board.Spaces[idx].Kind == want {
			return idx
		}
	}
	panic("engine: board has no space of requested kind")
}

// Tick advances the virtual clock and completes any movement whose time gate
// has elapsed. Each tick progresses at most one player's turn, and landing
// resolution runs synchronously inside the tick, so no two transactions ever
// interleave.
func (g *Game) Tick(dt float64) {
	if g.IsGameOver() {
		return
	}
	g.Clock += dt
	if g.Phase != PhaseMoving {
		return
	}
	p := g.CurrentPlayer()
	if !p.Move.Active {
		panic("engine: Moving phase with no in-flight movement")
	}
	if g.Clock-p.Move.Start < MoveTimePerSpace*float64(len(p.Move.Path)) {
		return
	}
	g.finishMove()
}

// finishMove commits the in-flight movement: mutates the authoritative
// position, pays the Go-passing salary, then fires the landing resolver.
func (g *Game) finishMove() {
	p := g.CurrentPlayer()
	ctx := landingContext{fromCard: p.Move.FromCard, rentMult: p.Move.RentMult}
	p.Position = p.Move.Path[len(p.Move.Path)-1]
	if p.Move.CreditGo {
		p.Cash += GoSalary
	}
	p.Move = MoveState{}
	g.resolveLanding(ctx)
}

// sendToJail teleports a player to jail with no path traversal, clearing the
// doubles counter and any in-flight movement.
func (g *Game) sendToJail(p *Player) {
	p.Position = JailIndex
	p.InJail = true
	p.JailTurns = 0
	p.Doubles = 0
	p.Move = MoveState{}
}
