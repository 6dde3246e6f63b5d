package engine

// Deed is the mutable ownership record attached to a space. Owner is a
// player index, or NoOwner. Houses runs 0–5 where 5 denotes a hotel.
// Only the landing resolver mutates deeds.
type Deed struct {
	Owner     int8  `json:"owner"`
	Houses    uint8 `json:"houses"`
	Mortgaged bool  `json:"mortgaged"`
}

// NoOwner marks an unowned deed.
const NoOwner int8 = -1

// Space is one board position. Everything except Deed is immutable after
// NewBoard. Rents is indexed by house count (0 = base rent, 5 = hotel).
type Space struct {
	Index int        `json:"index"`
	Kind  SpaceKind  `json:"kind"`
	Name  string     `json:"name"`
	Price int        `json:"price,omitempty"`
	Rents [6]int     `json:"rents,omitempty"`
	Group ColorGroup `json:"group,omitempty"`
	Deed  Deed       `json:"deed"`
}

// Board holds the 40 spaces of the classic layout.
type Board struct {
	Spaces [BoardSize]Space `json:"spaces"`
}

func prop(name string, price int, group ColorGroup, rents [6]int) Space {
	return Space{Kind: SpaceProperty, Name: name, Price: price, Group: group, Rents: rents, Deed: Deed{Owner: NoOwner}}
}

func rail(name string) Space {
	return Space{Kind: SpaceRailroad, Name: name, Price: 200, Deed: Deed{Owner: NoOwner}}
}

func util(name string) Space {
	return Space{Kind: SpaceUtility, Name: name, Price: 150, Deed: Deed{Owner: NoOwner}}
}

func plain(kind SpaceKind, name string) Space {
	return Space{Kind: kind, Name: name, Deed: Deed{Owner: NoOwner}}
}

// NewBoard returns the classic US board. Space indices run clockwise from Go.
func NewBoard() Board {
	var b Board
	spaces := [BoardSize]Space{
		plain(SpaceGo, "Go"),
		prop("Mediterranean Avenue", 60, GroupBrown, [6]int{2, 10, 30, 90, 160, 250}),
		plain(SpaceCommunityChest, "Community Chest"),
		prop("Baltic Avenue", 60, GroupBrown, [6]int{4, 20, 60, 180, 320, 450}),
		plain(SpaceTaxIncome, "Income Tax"),
		rail("Reading Railroad"),
		prop("Oriental Avenue", 100, GroupLightBlue, [6]int{6, 30, 90, 270, 400, 550}),
		plain(SpaceChance, "Chance"),
		prop("Vermont Avenue", 100, GroupLightBlue, [6]int{6, 30, 90, 270, 400, 550}),
		prop("Connecticut Avenue", 120, GroupLightBlue, [6]int{8, 40, 100, 300, 450, 600}),
		plain(SpaceJail, "Jail"),
		prop("St. Charles Place", 140, GroupPink, [6]int{10, 50, 150, 450, 625, 750}),
		util("Electric Company"),
		prop("States Avenue", 140, GroupPink, [6]int{10, 50, 150, 450, 625, 750}),
		prop("Virginia Avenue", 160, GroupPink, [6]int{12, 60, 180, 500, 700, 900}),
		rail("Pennsylvania Railroad"),
		prop("St. James Place", 180, GroupOrange, [6]int{14, 70, 200, 550, 750, 950}),
		plain(SpaceCommunityChest, "Community Chest"),
		prop("Tennessee Avenue", 180, GroupOrange, [6]int{14, 70, 200, 550, 750, 950}),
		prop("New York Avenue", 200, GroupOrange, [6]int{16, 80, 220, 600, 800, 1000}),
		plain(SpaceFreeParking, "Free Parking"),
		prop("Kentucky Avenue", 220, GroupRed, [6]int{18, 90, 250, 700, 875, 1050}),
		plain(SpaceChance, "Chance"),
		prop("Indiana Avenue", 220, GroupRed, [6]int{18, 90, 250, 700, 875, 1050}),
		prop("Illinois Avenue", 240, GroupRed, [6]int{20, 100, 300, 750, 925, 1100}),
		rail("B. & O. Railroad"),
		prop("Atlantic Avenue", 260, GroupYellow, [6]int{22, 110, 330, 800, 975, 1150}),
		prop("Ventnor Avenue", 260, GroupYellow, [6]int{22, 110, 330, 800, 975, 1150}),
		util("Water Works"),
		prop("Marvin Gardens", 280, GroupYellow, [6]int{24, 120, 360, 850, 1025, 1200}),
		plain(SpaceGoToJail, "Go To Jail"),
		prop("Pacific Avenue", 300, GroupGreen, [6]int{26, 130, 390, 900, 1100, 1275}),
		prop("North Carolina Avenue", 300, GroupGreen, [6]int{26, 130, 390, 900, 1100, 1275}),
		plain(SpaceCommunityChest, "Community Chest"),
		prop("Pennsylvania Avenue", 320, GroupGreen, [6]int{28, 150, 450, 1000, 1200, 1400}),
		rail("Short Line"),
		plain(SpaceChance, "Chance"),
		prop("Park Place", 350, GroupDarkBlue, [6]int{35, 175, 500, 1100, 1300, 1500}),
		plain(SpaceTaxLuxury, "Luxury Tax"),
		prop("Boardwalk", 400, GroupDarkBlue, [6]int{50, 200, 600, 1400, 1700, 2000}),
	}
	for i := range spaces {
		spaces[i].Index = i
	}
	b.Spaces = spaces
	return b
}

// Space returns the space at idx. An out-of-range index is a corrupted-state
// contract violation and panics.
func (b *Board) Space(idx int) *Space {
	if idx < 0 || idx >= BoardSize {
		panic("engine: space index out of range")
	}
	return &b.Spaces[idx]
}

// OwnsWholeGroup reports whether owner holds every property in group.
func (b *Board) OwnsWholeGroup(owner int8, group ColorGroup) bool {
	if group == GroupNone {
		return false
	}
	for i := range b.Spaces {
		sp := &b.Spaces[i]
		if sp.Kind == SpaceProperty && sp.Group == group && sp.Deed.Owner != owner {
			return false
		}
	}
	return true
}

// RailroadsOwned counts the railroads held by owner.
func (b *Board) RailroadsOwned(owner int8) int {
	n := 0
	for i := range b.Spaces {
		if b.Spaces[i].Kind == SpaceRailroad && b.Spaces[i].Deed.Owner == owner {
			n++
		}
	}
	return n
}

// UtilitiesOwned counts the utilities held by owner.
func (b *Board) UtilitiesOwned(owner int8) int {
	n := 0
	for i := range b.Spaces {
		if b.Spaces[i].Kind == SpaceUtility && b.Spaces[i].Deed.Owner == owner {
			n++
		}
	}
	return n
}
