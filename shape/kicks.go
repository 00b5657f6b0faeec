package shape

// Group classifies kinds by the kick table they rotate with.
type Group uint8

const (
	GroupJLSTZ Group = iota
	GroupI
	GroupO
)

// Group returns the kick group of the kind.
func (k Kind) Group() Group {
	switch k {
	case I:
		return GroupI
	case O:
		return GroupO
	default:
		return GroupJLSTZ
	}
}

// KickCount is the number of candidate offsets tried per rotation.
const KickCount = 5

type transition struct {
	from, to Rotation
}

type kickKey struct {
	group Group
	transition
}

// Offsets are added to the anchor as-is, with DY growing downward.
var kickTable = buildKickTable(map[Group]map[transition][KickCount]Offset{
	GroupJLSTZ: {
		{R0, R90}:    {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{R90, R0}:    {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{R90, R180}:  {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{R180, R90}:  {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{R180, R270}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		{R270, R180}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{R270, R0}:   {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{R0, R270}:   {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	},
	GroupI: {
		{R0, R90}:    {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		{R90, R0}:    {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		{R90, R180}:  {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		{R180, R90}:  {{0, 0}, {1, 0}, {-2, 1}, {1, -2}, {-2, 1}},
		{R180, R270}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		{R270, R180}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		{R270, R0}:   {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		{R0, R270}:   {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	},
})

func buildKickTable(groups map[Group]map[transition][KickCount]Offset) map[kickKey][KickCount]Offset {
	table := make(map[kickKey][KickCount]Offset)
	for group, transitions := range groups {
		if len(transitions) != 8 {
			panic("shape: kick group must define exactly 8 transitions")
		}
		for t, offsets := range transitions {
			if t.to != t.from.CW() && t.to != t.from.CCW() {
				panic("shape: kick transition " + t.from.String() + "->" + t.to.String() + " is not a single step")
			}
			table[kickKey{group: group, transition: t}] = offsets
		}
	}
	return table
}

// Kicks returns the ordered candidate offsets for rotating kind k from one
// orientation to another. O never needs displacement and always yields five
// zero offsets. For the other groups only single-step transitions are
// defined; any other pair reports false.
func Kicks(k Kind, from, to Rotation) ([KickCount]Offset, bool) {
	group := k.Group()
	if group == GroupO {
		return [KickCount]Offset{}, true
	}
	offsets, ok := kickTable[kickKey{group: group, transition: transition{from: from, to: to}}]
	return offsets, ok
}
