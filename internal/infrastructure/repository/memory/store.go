package memory

// Store bundles one repository per entity, all process local.
type Store struct {
	Tournaments     *TournamentRepository
	Teams           *TeamRepository
	Groups          *GroupRepository
	Matches         *MatchRepository
	Scorers         *ScorerRepository
	Goalkeepers     *GoalkeeperRepository
	GoalkeeperStats *GoalkeeperStatRepository
	Knockout        *KnockoutRepository
	Rosters         *RosterRepository
}

func NewStore() *Store {
	return &Store{
		Tournaments:     NewTournamentRepository(),
		Teams:           NewTeamRepository(),
		Groups:          NewGroupRepository(),
		Matches:         NewMatchRepository(),
		Scorers:         NewScorerRepository(),
		Goalkeepers:     NewGoalkeeperRepository(),
		GoalkeeperStats: NewGoalkeeperStatRepository(),
		Knockout:        NewKnockoutRepository(),
		Rosters:         NewRosterRepository(),
	}
}
