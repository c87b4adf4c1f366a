package httpapi

import (
	"time"

	"github.com/riskibarqy/cup-tournament/internal/domain/group"
	"github.com/riskibarqy/cup-tournament/internal/domain/knockout"
	"github.com/riskibarqy/cup-tournament/internal/domain/match"
	"github.com/riskibarqy/cup-tournament/internal/domain/roster"
	"github.com/riskibarqy/cup-tournament/internal/domain/standing"
	"github.com/riskibarqy/cup-tournament/internal/domain/stats"
	"github.com/riskibarqy/cup-tournament/internal/domain/team"
	"github.com/riskibarqy/cup-tournament/internal/domain/tournament"
	"github.com/riskibarqy/cup-tournament/internal/usecase"
)

const dateLayout = "2006-01-02"

type tournamentDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Year      int    `json:"year"`
	CreatedAt string `json:"created_at"`
}

type teamDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	LogoURL       string `json:"logo_url,omitempty"`
	IsPlaceholder bool   `json:"is_placeholder"`
}

type matchDTO struct {
	ID         string  `json:"id"`
	GroupID    string  `json:"group_id"`
	HomeTeamID string  `json:"home_team_id"`
	AwayTeamID string  `json:"away_team_id"`
	MatchDay   int     `json:"match_day"`
	HomeScore  *int    `json:"home_score"`
	AwayScore  *int    `json:"away_score"`
	PlayedAt   *string `json:"played_at"`
}

type groupDTO struct {
	ID      string     `json:"id"`
	Label   string     `json:"label"`
	Teams   []teamDTO  `json:"teams"`
	Matches []matchDTO `json:"matches"`
}

type tournamentSetupDTO struct {
	Tournament tournamentDTO `json:"tournament"`
	Groups     []groupDTO    `json:"groups"`
}

type standingRowDTO struct {
	Position       int    `json:"position"`
	TeamID         string `json:"team_id"`
	TeamName       string `json:"team_name"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

type groupStandingDTO struct {
	GroupID string           `json:"group_id"`
	Label   string           `json:"label"`
	Rows    []standingRowDTO `json:"rows"`
}

type knockoutMatchDTO struct {
	ID            string  `json:"id"`
	Order         int     `json:"order"`
	HomeTeamID    *string `json:"home_team_id"`
	AwayTeamID    *string `json:"away_team_id"`
	HomeScore     *int    `json:"home_score"`
	AwayScore     *int    `json:"away_score"`
	HomePenalties *int    `json:"home_penalties"`
	AwayPenalties *int    `json:"away_penalties"`
	WinnerID      *string `json:"winner_id"`
	PlayedAt      *string `json:"played_at"`
}

type knockoutPhaseDTO struct {
	ID      string             `json:"id"`
	Type    string             `json:"type"`
	Matches []knockoutMatchDTO `json:"matches"`
}

type assignmentDTO struct {
	MatchID string `json:"match_id"`
	Side    string `json:"side"`
	TeamID  string `json:"team_id"`
}

type knockoutResultDTO struct {
	Match       knockoutMatchDTO `json:"match"`
	Assignments []assignmentDTO  `json:"assignments"`
}

type rosterMemberDTO struct {
	EntryID      string  `json:"entry_id"`
	PlayerID     string  `json:"player_id"`
	TeamID       string  `json:"team_id"`
	Name         string  `json:"name"`
	BirthDate    *string `json:"birth_date"`
	IsFIGC       bool    `json:"is_figc"`
	FIGCCategory string  `json:"figc_category,omitempty"`
	JerseyNumber *int    `json:"jersey_number"`
	IsCaptain    bool    `json:"is_captain"`
}

type topScorerDTO struct {
	Rank       int    `json:"rank"`
	PlayerName string `json:"player_name"`
	TeamID     string `json:"team_id"`
	TeamName   string `json:"team_name"`
	Goals      int    `json:"goals"`
}

type goalkeeperRankingDTO struct {
	Rank                 int     `json:"rank"`
	GoalkeeperID         string  `json:"goalkeeper_id"`
	Name                 string  `json:"name"`
	TeamID               string  `json:"team_id"`
	MatchesPlayed        int     `json:"matches_played"`
	GoalsConceded        int     `json:"goals_conceded"`
	CleanSheets          int     `json:"clean_sheets"`
	AverageConceded      float64 `json:"average_conceded"`
	ReachedQuarterfinals bool    `json:"reached_quarterfinals"`
}

func formatTime(v time.Time) string {
	return v.UTC().Format(time.RFC3339)
}

func formatOptionalTime(v *time.Time) *string {
	if v == nil {
		return nil
	}
	out := formatTime(*v)
	return &out
}

func tournamentToDTO(v tournament.Tournament) tournamentDTO {
	return tournamentDTO{ID: v.ID, Name: v.Name, Year: v.Year, CreatedAt: formatTime(v.CreatedAt)}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{ID: v.ID, Name: v.Name, LogoURL: v.LogoURL, IsPlaceholder: v.IsPlaceholder}
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:         v.ID,
		GroupID:    v.GroupID,
		HomeTeamID: v.HomeTeamID,
		AwayTeamID: v.AwayTeamID,
		MatchDay:   v.MatchDay,
		HomeScore:  v.HomeScore,
		AwayScore:  v.AwayScore,
		PlayedAt:   formatOptionalTime(v.PlayedAt),
	}
}

func matchesToDTO(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	return out
}

func groupDetailsToDTO(v usecase.GroupDetails) groupDTO {
	teams := make([]teamDTO, 0, len(v.Teams))
	for _, item := range v.Teams {
		teams = append(teams, teamToDTO(item))
	}
	return groupDTO{
		ID:      v.Group.ID,
		Label:   v.Group.Label,
		Teams:   teams,
		Matches: matchesToDTO(v.Matches),
	}
}

func setupToDTO(v usecase.TournamentSetup) tournamentSetupDTO {
	groups := make([]groupDTO, 0, len(v.Groups))
	for _, item := range v.Groups {
		groups = append(groups, groupDetailsToDTO(item))
	}
	return tournamentSetupDTO{Tournament: tournamentToDTO(v.Tournament), Groups: groups}
}

func standingToDTO(g group.Group, rows []standing.TeamStats) groupStandingDTO {
	out := make([]standingRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingRowDTO{
			Position:       row.Position,
			TeamID:         row.TeamID,
			TeamName:       row.TeamName,
			Played:         row.Played,
			Won:            row.Won,
			Drawn:          row.Drawn,
			Lost:           row.Lost,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference,
			Points:         row.Points,
		})
	}
	return groupStandingDTO{GroupID: g.ID, Label: g.Label, Rows: out}
}

func knockoutMatchToDTO(v knockout.Match) knockoutMatchDTO {
	return knockoutMatchDTO{
		ID:            v.ID,
		Order:         v.Order,
		HomeTeamID:    v.HomeTeamID,
		AwayTeamID:    v.AwayTeamID,
		HomeScore:     v.HomeScore,
		AwayScore:     v.AwayScore,
		HomePenalties: v.HomePenalties,
		AwayPenalties: v.AwayPenalties,
		WinnerID:      v.WinnerID,
		PlayedAt:      formatOptionalTime(v.PlayedAt),
	}
}

func knockoutMatchesToDTO(items []knockout.Match) []knockoutMatchDTO {
	out := make([]knockoutMatchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, knockoutMatchToDTO(item))
	}
	return out
}

func bracketToDTO(phases []usecase.PhaseMatches) []knockoutPhaseDTO {
	out := make([]knockoutPhaseDTO, 0, len(phases))
	for _, pm := range phases {
		out = append(out, knockoutPhaseDTO{
			ID:      pm.Phase.ID,
			Type:    string(pm.Phase.Type),
			Matches: knockoutMatchesToDTO(pm.Matches),
		})
	}
	return out
}

func knockoutResultToDTO(v usecase.KnockoutResult) knockoutResultDTO {
	assignments := make([]assignmentDTO, 0, len(v.Assignments))
	for _, a := range v.Assignments {
		assignments = append(assignments, assignmentDTO{MatchID: a.MatchID, Side: string(a.Side), TeamID: a.TeamID})
	}
	return knockoutResultDTO{Match: knockoutMatchToDTO(v.Match), Assignments: assignments}
}

func memberToDTO(v roster.Member) rosterMemberDTO {
	var birthDate *string
	if v.Player.BirthDate != nil {
		formatted := v.Player.BirthDate.Format(dateLayout)
		birthDate = &formatted
	}
	return rosterMemberDTO{
		EntryID:      v.Entry.ID,
		PlayerID:     v.Player.ID,
		TeamID:       v.Entry.TeamID,
		Name:         v.Player.Name,
		BirthDate:    birthDate,
		IsFIGC:       v.Player.IsFIGC,
		FIGCCategory: v.Player.FIGCCategory,
		JerseyNumber: v.Entry.JerseyNumber,
		IsCaptain:    v.Entry.IsCaptain,
	}
}

func topScorersToDTO(items []stats.TopScorer) []topScorerDTO {
	out := make([]topScorerDTO, 0, len(items))
	for i, item := range items {
		out = append(out, topScorerDTO{
			Rank:       i + 1,
			PlayerName: item.PlayerName,
			TeamID:     item.TeamID,
			TeamName:   item.TeamName,
			Goals:      item.Goals,
		})
	}
	return out
}

func goalkeeperRankingToDTO(items []stats.GoalkeeperRanking) []goalkeeperRankingDTO {
	out := make([]goalkeeperRankingDTO, 0, len(items))
	for i, item := range items {
		out = append(out, goalkeeperRankingDTO{
			Rank:                 i + 1,
			GoalkeeperID:         item.GoalkeeperID,
			Name:                 item.Name,
			TeamID:               item.TeamID,
			MatchesPlayed:        item.MatchesPlayed,
			GoalsConceded:        item.GoalsConceded,
			CleanSheets:          item.CleanSheets,
			AverageConceded:      item.AverageConceded,
			ReachedQuarterfinals: item.ReachedQuarterfinals,
		})
	}
	return out
}
