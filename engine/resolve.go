package engine

// landingContext describes how the token arrived, which changes rent:
// card-driven landings have no fresh dice roll (utility rent is zero) and
// nearest-railroad cards double the rent owed.
type landingContext struct {
	fromCard bool
	rentMult int
}

// resolveLanding dispatches the effect of the current player's token coming
// to rest. It runs synchronously once movement completes and is the only
// code that mutates deeds. Every branch either ends the turn or leaves a
// popup pending.
func (g *Game) resolveLanding(ctx landingContext) {
	p := g.CurrentPlayer()
	sp := g.Board.Space(p.Position)

	switch sp.Kind {
	case SpaceGo:
		p.Cash += GoSalary
		g.endTurn()

	case SpaceProperty, SpaceRailroad, SpaceUtility:
		g.resolveOwnable(p, sp, ctx)

	case SpaceTaxIncome:
		g.chargeBank(p, IncomeTaxAmount)
		g.endTurn()

	case SpaceTaxLuxury:
		g.chargeBank(p, LuxuryTaxAmount)
		g.endTurn()

	case SpaceGoToJail:
		g.sendToJail(p)
		g.endTurn()

	case SpaceChance:
		g.drawAndExecute(&g.Chance)

	case SpaceCommunityChest:
		g.drawAndExecute(&g.Community)

	default:
		// Jail (visiting), Free Parking, decorative spaces: nothing happens.
		g.endTurn()
	}
}

// resolveOwnable handles landing on a purchasable space.
func (g *Game) resolveOwnable(p *Player, sp *Space, ctx landingContext) {
	owner := sp.Deed.Owner
	switch {
	case owner == NoOwner:
		g.Phase = PhaseBuying
		g.Popup = Popup{Kind: PopupBuy, Player: p.ID, Space: sp.Index, Price: sp.Price}

	case owner == int8(p.ID):
		g.endTurn()

	default:
		creditor := &g.Players[owner]
		if creditor.Bankrupt {
			panic("engine: deed owned by bankrupt player")
		}
		rent := g.rentFor(sp, ctx)
		if !g.chargePlayer(p, creditor, rent) {
			g.endTurn() // debtor went bankrupt; rotation skips them
			return
		}
		g.Phase = PhasePayingRent
		g.Popup = Popup{Kind: PopupRent, Player: p.ID, Space: sp.Index, Rent: rent, Owner: owner}
	}
}

// rentFor computes the rent owed for landing on sp. Mortgaged deeds charge
// nothing. Utility rent requires a fresh roll; a card-driven landing has
// none, so it charges zero.
func (g *Game) rentFor(sp *Space, ctx landingContext) int {
	if sp.Deed.Mortgaged {
		return 0
	}
	switch sp.Kind {
	case SpaceProperty:
		rent := sp.Rents[sp.Deed.Houses]
		if sp.Deed.Houses == 0 && g.Board.OwnsWholeGroup(sp.Deed.Owner, sp.Group) {
			rent *= 2
		}
		return rent
	case SpaceRailroad:
		n := g.Board.RailroadsOwned(sp.Deed.Owner)
		return railroadRents[n] * ctx.rentMult
	case SpaceUtility:
		if ctx.fromCard {
			return 0
		}
		n := g.Board.UtilitiesOwned(sp.Deed.Owner)
		return g.DiceSum() * utilityMultipliers[n]
	}
	return 0
}

// ---------------------------------------------------------------------------
// Transactions
// ---------------------------------------------------------------------------

// chargePlayer debits amount from debtor and credits creditor. If the debit
// would drive the debtor's cash negative, bankruptcy-to-creditor resolves
// instead of debiting; returns false in that case.
func (g *Game) chargePlayer(debtor, creditor *Player, amount int) bool {
	if debtor.Cash < amount {
		g.bankruptToPlayer(debtor, creditor)
		return false
	}
	debtor.Cash -= amount
	creditor.Cash += amount
	return true
}

// chargeBank debits amount from debtor. If the debit would drive cash
// negative, bankruptcy-to-bank resolves instead; returns false in that case.
func (g *Game) chargeBank(debtor *Player, amount int) bool {
	if debtor.Cash < amount {
		g.bankruptToBank(debtor)
		return false
	}
	debtor.Cash -= amount
	return true
}

// bankruptToPlayer transfers every deed of debtor to creditor in place,
// preserving house and mortgage state, then flags debtor bankrupt.
func (g *Game) bankruptToPlayer(debtor, creditor *Player) {
	for _, idx := range debtor.Owned {
		g.Board.Space(idx).Deed.Owner = int8(creditor.ID)
		creditor.Owned = append(creditor.Owned, idx)
	}
	debtor.Owned = nil
	g.markBankrupt(debtor)
}

// bankruptToBank reverts every deed of debtor to unowned: houses razed,
// mortgage cleared, then flags debtor bankrupt.
func (g *Game) bankruptToBank(debtor *Player) {
	for _, idx := range debtor.Owned {
		g.Board.Space(idx).Deed = Deed{Owner: NoOwner}
	}
	debtor.Owned = nil
	g.markBankrupt(debtor)
}

func (g *Game) markBankrupt(p *Player) {
	p.Bankrupt = true
	p.Doubles = 0
	p.InJail = false
	p.Move = MoveState{}
	if g.ActiveCount() == 0 {
		g.Flags |= FlagGameOver
	}
}

// ---------------------------------------------------------------------------
// Card execution
// ---------------------------------------------------------------------------

// drawAndExecute draws one card from d and executes its action against the
// current player. Cards that resolve in place leave a CardPending popup whose
// acknowledgment ends the turn; cards that move the token go straight to the
// Moving phase (the card text rides along in the popup for the renderer) and
// landing resolution proceeds as usual.
func (g *Game) drawAndExecute(d *Deck) {
	p := g.CurrentPlayer()
	c := d.Draw()

	switch c.Kind {
	case CardMoney:
		if c.Amount >= 0 {
			p.Cash += c.Amount
		} else if !g.chargeBank(p, -c.Amount) {
			g.endTurn()
			return
		}
		g.showCard(p, c)

	case CardJailFree:
		p.JailCards++
		g.showCard(p, c)

	case CardGoToJail:
		g.sendToJail(p)
		g.showCard(p, c)

	case CardAdvance:
		g.Popup = Popup{Kind: PopupCard, Player: p.ID, Card: c}
		g.advanceTo(c.Target, moveOptions{fromCard: true, noGoCredit: c.NoGoCredit})

	case CardAdvanceRelative:
		g.Popup = Popup{Kind: PopupCard, Player: p.ID, Card: c}
		g.beginMove(c.Target, moveOptions{fromCard: true})

	case CardAdvanceNearest:
		g.Popup = Popup{Kind: PopupCard, Player: p.ID, Card: c}
		want, mult := SpaceRailroad, 2
		if c.Nearest == NearestUtility {
			want, mult = SpaceUtility, 1
		}
		target := g.nearestAhead(p.Position, want)
		g.advanceTo(target, moveOptions{fromCard: true, rentMult: mult})

	case CardCollectFromEach:
		// Partial payment is allowed and never bankrupts the payers.
		for i := range g.Players {
			other := &g.Players[i]
			if other.ID == p.ID || other.Bankrupt {
				continue
			}
			pay := c.Amount
			if other.Cash < pay {
				pay = other.Cash
			}
			other.Cash -= pay
			p.Cash += pay
		}
		g.showCard(p, c)

	case CardPayEachPlayer:
		// Capped by the payer's remaining balance; this action alone never
		// drives the payer bankrupt.
		for i := range g.Players {
			other := &g.Players[i]
			if other.ID == p.ID || other.Bankrupt {
				continue
			}
			pay := c.Amount
			if p.Cash < pay {
				pay = p.Cash
			}
			p.Cash -= pay
			other.Cash += pay
		}
		g.showCard(p, c)

	case CardPayPerHouseHotel:
		total := 0
		for _, idx := range p.Owned {
			h := g.Board.Space(idx).Deed.Houses
			if h == MaxHouses {
				total += c.PerHotel
			} else {
				total += int(h) * c.PerHouse
			}
		}
		if !g.chargeBank(p, total) {
			g.endTurn()
			return
		}
		g.showCard(p, c)

	default:
		panic("engine: unhandled card kind")
	}
}

// showCard leaves the drawn card on display; acknowledgment ends the turn.
func (g *Game) showCard(p *Player, c Card) {
	g.Phase = PhaseCardPending
	g.Popup = Popup{Kind: PopupCard, Player: p.ID, Card: c}
}
