package postgres

import "github.com/jmoiron/sqlx"

// Store bundles one repository per entity over a shared connection pool.
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

func NewStore(db *sqlx.DB) *Store {
	return &Store{
		Tournaments:     NewTournamentRepository(db),
		Teams:           NewTeamRepository(db),
		Groups:          NewGroupRepository(db),
		Matches:         NewMatchRepository(db),
		Scorers:         NewScorerRepository(db),
		Goalkeepers:     NewGoalkeeperRepository(db),
		GoalkeeperStats: NewGoalkeeperStatRepository(db),
		Knockout:        NewKnockoutRepository(db),
		Rosters:         NewRosterRepository(db),
	}
}
