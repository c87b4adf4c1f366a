package knockout

// Qualifier is a group's top two after standings are computed. Either id may be empty
// when the group could not rank that position.
type Qualifier struct {
	GroupLabel string
	WinnerID   string
	RunnerUpID string
}

// Pairing is the home/away couple for one quarterfinal.
type Pairing struct {
	Order      int
	HomeTeamID string
	AwayTeamID string
}

// quarterfinalSeeds is the cross-group seeding 1A-2B, 1B-2A, 1C-2D, 1D-2C.
var quarterfinalSeeds = [4][2]string{
	{"A", "B"},
	{"B", "A"},
	{"C", "D"},
	{"D", "C"},
}

// QuarterfinalPairings maps group qualifiers to quarterfinal orders 1..4. Quarterfinals
// whose two seeds are not both known are left out.
func QuarterfinalPairings(qualifiers []Qualifier) []Pairing {
	byLabel := make(map[string]Qualifier, len(qualifiers))
	for _, q := range qualifiers {
		byLabel[q.GroupLabel] = q
	}

	out := make([]Pairing, 0, len(quarterfinalSeeds))
	for i, seed := range quarterfinalSeeds {
		home, away := byLabel[seed[0]].WinnerID, byLabel[seed[1]].RunnerUpID
		if home == "" || away == "" {
			continue
		}
		out = append(out, Pairing{Order: i + 1, HomeTeamID: home, AwayTeamID: away})
	}
	return out
}
