package engine

// SpaceKind identifies what a board space does when landed on.
type SpaceKind uint8

const (
	SpaceGo             SpaceKind = iota // 0
	SpaceProperty                        // 1
	SpaceRailroad                        // 2
	SpaceUtility                         // 3
	SpaceTaxIncome                       // 4
	SpaceTaxLuxury                       // 5
	SpaceChance                          // 6
	SpaceCommunityChest                  // 7
	SpaceJail                            // 8 — "just visiting"
	SpaceGoToJail                        // 9
	SpaceFreeParking                     // 10
	SpaceNone                            // 11
)

// String returns a short identifier for the space kind.
func (k SpaceKind) String() string {
	switch k {
	case SpaceGo:
		return "go"
	case SpaceProperty:
		return "property"
	case SpaceRailroad:
		return "railroad"
	case SpaceUtility:
		return "utility"
	case SpaceTaxIncome:
		return "tax_income"
	case SpaceTaxLuxury:
		return "tax_luxury"
	case SpaceChance:
		return "chance"
	case SpaceCommunityChest:
		return "community_chest"
	case SpaceJail:
		return "jail"
	case SpaceGoToJail:
		return "go_to_jail"
	case SpaceFreeParking:
		return "free_parking"
	}
	return "none"
}

// ColorGroup identifies the color group a property belongs to.
// Railroads and utilities carry GroupNone; group membership only
// matters for the monopoly rent bonus.
type ColorGroup uint8

const (
	GroupNone      ColorGroup = iota // 0
	GroupBrown                       // 1
	GroupLightBlue                   // 2
	GroupPink                        // 3
	GroupOrange                      // 4
	GroupRed                         // 5
	GroupYellow                      // 6
	GroupGreen                       // 7
	GroupDarkBlue                    // 8
)

// Phase is the turn state machine's current state.
type Phase uint8

const (
	PhaseRoll        Phase = iota // 0 — current player may roll
	PhaseMoving                   // 1 — token animating, no input accepted
	PhaseBuying                   // 2 — unowned space purchase pending
	PhasePayingRent               // 3 — rent popup awaiting acknowledgment
	PhaseCardPending              // 4 — drawn card awaiting acknowledgment
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRoll:
		return "roll"
	case PhaseMoving:
		return "moving"
	case PhaseBuying:
		return "buying"
	case PhasePayingRent:
		return "paying_rent"
	case PhaseCardPending:
		return "card_pending"
	}
	return "unknown"
}

// CardKind is the typed action a Chance or Community Chest card performs.
type CardKind uint8

const (
	CardMoney            CardKind = iota // 0 — fixed credit/debit for the drawer
	CardJailFree                         // 1 — get-out-of-jail card count +1
	CardGoToJail                         // 2 — straight to jail, no movement
	CardAdvance                          // 3 — move to an absolute position
	CardAdvanceRelative                  // 4 — move by a signed offset
	CardAdvanceNearest                   // 5 — move to the nearest railroad/utility ahead
	CardCollectFromEach                  // 6 — every other active player pays the drawer
	CardPayEachPlayer                    // 7 — drawer pays every other active player
	CardPayPerHouseHotel                 // 8 — per-building assessment
)

// NearestKind selects the target class for CardAdvanceNearest.
type NearestKind uint8

const (
	NearestRailroad NearestKind = iota // 0
	NearestUtility                     // 1
)

// Card is one draw-pile entry. Fields beyond Kind are interpreted per kind:
// Amount for money transfers, Target for advance positions/offsets,
// PerHouse/PerHotel for building assessments.
type Card struct {
	Text       string      `json:"text"`
	Kind       CardKind    `json:"kind"`
	Amount     int         `json:"amount,omitempty"`
	Target     int         `json:"target,omitempty"`
	Nearest    NearestKind `json:"nearest,omitempty"`
	NoGoCredit bool        `json:"noGoCredit,omitempty"` // "do not collect $200" advances
	PerHouse   int         `json:"perHouse,omitempty"`
	PerHotel   int         `json:"perHotel,omitempty"`
}

// PopupKind identifies the pending popup awaiting acknowledgment.
type PopupKind uint8

const (
	PopupNone PopupKind = iota // 0
	PopupBuy                   // 1 — choice 0 buys, any other declines
	PopupRent                  // 2 — informational, rent already settled
	PopupCard                  // 3 — drawn card text
)

// Popup is the structured payload the rendering collaborator displays while
// a transaction-resolution phase waits for input. The engine is the only
// writer; it is cleared when the turn ends.
type Popup struct {
	Kind   PopupKind `json:"kind"`
	Player uint8     `json:"player"`
	Space  int       `json:"space,omitempty"`
	Price  int       `json:"price,omitempty"`
	Rent   int       `json:"rent,omitempty"`
	Owner  int8      `json:"owner,omitempty"`
	Card   Card      `json:"card,omitempty"`
}

// MoveState is a player's in-flight token movement. Path holds every space
// index the token passes through, ending at the destination. The engine
// mutates the player's authoritative position only when the movement's time
// gate elapses; the renderer interpolates along Path in the meantime.
type MoveState struct {
	Active   bool    `json:"active"`
	Path     []int   `json:"path,omitempty"`
	Start    float64 `json:"start"`              // virtual clock time movement began
	CreditGo bool    `json:"creditGo,omitempty"` // Go-passing salary due at completion
	FromCard bool    `json:"fromCard,omitempty"` // movement originated from a card, no fresh roll
	RentMult int     `json:"rentMult,omitempty"` // rent multiplier for the landing (nearest-railroad cards)
}
