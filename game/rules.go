package game

// CanCapture decides whether attacker standing on from may take defender
// standing on to. Both pieces are assumed to belong to opposite sides and the
// move shape is not checked here.
//
// The checks run in a fixed order:
//  1. a Rat in water captures nothing;
//  2. a defender on one of the attacker's own traps has rank 0;
//  3. a Rat captures an Elephant;
//  4. an Elephant captures a Rat only when the Rat is in water;
//  5. otherwise the attacker needs at least the defender's rank.
func CanCapture(attacker, defender Piece, from, to Square) bool {
	if attacker.IsEmpty() || defender.IsEmpty() {
		return false
	}
	if attacker.Kind == Rat && from.Terrain() == Water {
		return false
	}

	defenderTerrain := to.Terrain()
	// Red owns the traps around (0,3), Black those around (8,3): a defender
	// that walked into the attacker's traps is weak.
	if defenderTerrain.TrapOwner() == attacker.Side {
		return true
	}

	switch {
	case attacker.Kind == Rat && defender.Kind == Elephant:
		return true
	case attacker.Kind == Elephant && defender.Kind == Rat:
		return defenderTerrain == Water
	}

	return attacker.Kind.Rank() >= defender.Kind.Rank()
}
