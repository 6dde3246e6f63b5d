package engine

// Deck is a cyclic draw pile. Drawing moves the top card to the bottom, so
// a deck can never empty. Decks are shuffled once at game start and never
// reshuffled mid-game.
type Deck struct {
	Cards []Card `json:"cards"`
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int { return len(d.Cards) }

// Draw removes the top card and appends it to the bottom (recycle-to-bottom).
// Drawing from an empty deck is a contract violation.
func (d *Deck) Draw() Card {
	if len(d.Cards) == 0 {
		panic("engine: draw from empty deck")
	}
	c := d.Cards[0]
	copy(d.Cards, d.Cards[1:])
	d.Cards[len(d.Cards)-1] = c
	return c
}

// Shuffle performs a Fisher-Yates shuffle using the supplied randN source
// (a function returning a uniform value in [0, n)).
func (d *Deck) Shuffle(randN func(n uint64) uint64) {
	for i := len(d.Cards) - 1; i > 0; i-- {
		j := int(randN(uint64(i + 1)))
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// NewChanceDeck returns the Chance pile in its canonical pre-shuffle order.
func NewChanceDeck() Deck {
	return Deck{Cards: []Card{
		{Text: "Advance to Go. Collect $200.", Kind: CardAdvance, Target: 0},
		{Text: "Advance to Illinois Avenue. Do not collect $200.", Kind: CardAdvance, Target: 24, NoGoCredit: true},
		{Text: "Advance to St. Charles Place. If you pass Go, collect $200.", Kind: CardAdvance, Target: 11},
		{Text: "Advance token to the nearest Utility.", Kind: CardAdvanceNearest, Nearest: NearestUtility},
		{Text: "Advance token to the nearest Railroad. Pay owner double rent.", Kind: CardAdvanceNearest, Nearest: NearestRailroad},
		{Text: "Advance token to the nearest Railroad. Pay owner double rent.", Kind: CardAdvanceNearest, Nearest: NearestRailroad},
		{Text: "Bank pays you dividend of $50.", Kind: CardMoney, Amount: 50},
		{Text: "Get Out of Jail Free.", Kind: CardJailFree},
		{Text: "Go back 3 spaces.", Kind: CardAdvanceRelative, Target: -3},
		{Text: "Go directly to Jail. Do not pass Go.", Kind: CardGoToJail},
		{Text: "Make general repairs on all your property: $25 per house, $100 per hotel.", Kind: CardPayPerHouseHotel, PerHouse: 25, PerHotel: 100},
		{Text: "Pay poor tax of $15.", Kind: CardMoney, Amount: -15},
		{Text: "Take a trip to Reading Railroad. If you pass Go, collect $200.", Kind: CardAdvance, Target: 5},
		{Text: "Take a walk on the Boardwalk.", Kind: CardAdvance, Target: 39},
		{Text: "You have been elected Chairman of the Board. Pay each player $50.", Kind: CardPayEachPlayer, Amount: 50},
		{Text: "Your building loan matures. Collect $150.", Kind: CardMoney, Amount: 150},
	}}
}

// NewCommunityChestDeck returns the Community Chest pile in its canonical
// pre-shuffle order.
func NewCommunityChestDeck() Deck {
	return Deck{Cards: []Card{
		{Text: "Advance to Go. Collect $200.", Kind: CardAdvance, Target: 0},
		{Text: "Bank error in your favor. Collect $200.", Kind: CardMoney, Amount: 200},
		{Text: "Doctor's fee. Pay $50.", Kind: CardMoney, Amount: -50},
		{Text: "From sale of stock you get $50.", Kind: CardMoney, Amount: 50},
		{Text: "Get Out of Jail Free.", Kind: CardJailFree},
		{Text: "Go directly to Jail. Do not pass Go.", Kind: CardGoToJail},
		{Text: "Grand Opera Night. Collect $50 from every player.", Kind: CardCollectFromEach, Amount: 50},
		{Text: "Holiday fund matures. Collect $100.", Kind: CardMoney, Amount: 100},
		{Text: "Income tax refund. Collect $20.", Kind: CardMoney, Amount: 20},
		{Text: "Life insurance matures. Collect $100.", Kind: CardMoney, Amount: 100},
		{Text: "Pay hospital fees of $100.", Kind: CardMoney, Amount: -100},
		{Text: "Pay school fees of $150.", Kind: CardMoney, Amount: -150},
		{Text: "Receive $25 consultancy fee.", Kind: CardMoney, Amount: 25},
		{Text: "You are assessed for street repairs: $40 per house, $115 per hotel.", Kind: CardPayPerHouseHotel, PerHouse: 40, PerHotel: 115},
		{Text: "You have won second prize in a beauty contest. Collect $10.", Kind: CardMoney, Amount: 10},
		{Text: "You inherit $100.", Kind: CardMoney, Amount: 100},
	}}
}
