package engine

import "testing"

// TestNewBoardLayout verifies the board has 40 spaces with the classic
// landmarks at their known indices.
func TestNewBoardLayout(t *testing.T) {
	b := NewBoard()

	wantKinds := map[int]SpaceKind{
		0:  SpaceGo,
		4:  SpaceTaxIncome,
		5:  SpaceRailroad,
		7:  SpaceChance,
		10: SpaceJail,
		12: SpaceUtility,
		20: SpaceFreeParking,
		28: SpaceUtility,
		30: SpaceGoToJail,
		38: SpaceTaxLuxury,
		39: SpaceProperty,
	}
	for idx, kind := range wantKinds {
		if b.Spaces[idx].Kind != kind {
			t.Errorf("space %d kind = %v, want %v", idx, b.Spaces[idx].Kind, kind)
		}
	}

	for i := range b.Spaces {
		if b.Spaces[i].Index != i {
			t.Errorf("space %d has Index %d", i, b.Spaces[i].Index)
		}
		if b.Spaces[i].Deed.Owner != NoOwner {
			t.Errorf("space %d starts owned by %d", i, b.Spaces[i].Deed.Owner)
		}
		if b.Spaces[i].Deed.Houses != 0 || b.Spaces[i].Deed.Mortgaged {
			t.Errorf("space %d deed not zeroed: %+v", i, b.Spaces[i].Deed)
		}
	}
}

// TestNewBoardCounts verifies the board carries 22 properties, 4 railroads,
// and 2 utilities.
func TestNewBoardCounts(t *testing.T) {
	b := NewBoard()
	counts := make(map[SpaceKind]int)
	for i := range b.Spaces {
		counts[b.Spaces[i].Kind]++
	}
	if counts[SpaceProperty] != 22 {
		t.Errorf("properties = %d, want 22", counts[SpaceProperty])
	}
	if counts[SpaceRailroad] != 4 {
		t.Errorf("railroads = %d, want 4", counts[SpaceRailroad])
	}
	if counts[SpaceUtility] != 2 {
		t.Errorf("utilities = %d, want 2", counts[SpaceUtility])
	}
	if counts[SpaceChance] != 3 || counts[SpaceCommunityChest] != 3 {
		t.Errorf("card spaces = %d chance / %d chest, want 3/3",
			counts[SpaceChance], counts[SpaceCommunityChest])
	}
}

// TestOwnsWholeGroup verifies monopoly detection across a color group.
func TestOwnsWholeGroup(t *testing.T) {
	b := NewBoard()

	// Brown group is spaces 1 and 3.
	b.Spaces[1].Deed.Owner = 0
	if b.OwnsWholeGroup(0, GroupBrown) {
		t.Error("OwnsWholeGroup true with only one of two brown deeds")
	}
	b.Spaces[3].Deed.Owner = 0
	if !b.OwnsWholeGroup(0, GroupBrown) {
		t.Error("OwnsWholeGroup false with both brown deeds")
	}
	if b.OwnsWholeGroup(1, GroupBrown) {
		t.Error("OwnsWholeGroup true for non-owner")
	}
	if b.OwnsWholeGroup(0, GroupNone) {
		t.Error("OwnsWholeGroup true for GroupNone")
	}
}

// TestOwnedCounts verifies railroad and utility ownership counting.
func TestOwnedCounts(t *testing.T) {
	b := NewBoard()
	if b.RailroadsOwned(0) != 0 || b.UtilitiesOwned(0) != 0 {
		t.Fatal("fresh board reports ownership")
	}

	b.Spaces[5].Deed.Owner = 0
	b.Spaces[15].Deed.Owner = 0
	b.Spaces[25].Deed.Owner = 1
	if got := b.RailroadsOwned(0); got != 2 {
		t.Errorf("RailroadsOwned(0) = %d, want 2", got)
	}
	if got := b.RailroadsOwned(1); got != 1 {
		t.Errorf("RailroadsOwned(1) = %d, want 1", got)
	}

	b.Spaces[12].Deed.Owner = 1
	b.Spaces[28].Deed.Owner = 1
	if got := b.UtilitiesOwned(1); got != 2 {
		t.Errorf("UtilitiesOwned(1) = %d, want 2", got)
	}
}

// TestSpaceBounds verifies that an out-of-range index panics.
func TestSpaceBounds(t *testing.T) {
	b := NewBoard()
	defer func() {
		if recover() == nil {
			t.Error("Space(40) did not panic")
		}
	}()
	b.Space(BoardSize)
}
