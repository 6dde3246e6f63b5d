package engine

// Fixed classic ruleset. These are not configurable; the board data in
// board.go encodes the rest of the rules.
const (
	BoardSize  = 40
	MaxPlayers = 6
	MinPlayers = 2

	StartingCash = 1500
	GoSalary     = 200

	JailIndex     = 10
	GoToJailIndex = 30
	JailBail      = 50
	MaxJailTurns  = 3 // failed escape rolls before bail is forced

	IncomeTaxAmount = 200
	LuxuryTaxAmount = 100

	MaxHouses = 5 // 5 denotes a hotel

	// SpeedingLimit is the consecutive-doubles count that sends a player
	// straight to jail with no movement.
	SpeedingLimit = 3

	// MoveTimePerSpace is the virtual time one path step takes; a movement
	// completes once MoveTimePerSpace × len(path) has elapsed on the clock.
	MoveTimePerSpace = 0.3
)

// railroadRents is the rent schedule indexed by how many railroads the
// owner holds (1–4).
var railroadRents = [5]int{0, 25, 50, 100, 200}

// utilityMultipliers maps owned-utility count to the dice-sum multiplier.
var utilityMultipliers = [3]int{0, 4, 10}
