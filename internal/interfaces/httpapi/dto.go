package httpapi

import (
	"time"

	"github.com/riskibarqy/fpl-live/internal/domain/activity"
	"github.com/riskibarqy/fpl-live/internal/domain/autosub"
	"github.com/riskibarqy/fpl-live/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-live/internal/usecase"
)

// publishedDTO wraps every polled view with the cycle that produced it.
type publishedDTO struct {
	CycleID     string    `json:"cycleId"`
	PublishedAt time.Time `json:"publishedAt"`
	View        any       `json:"view"`
}

type gameweekDTO struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	DeadlineTime time.Time `json:"deadlineTime"`
	Finished     bool      `json:"finished"`
}

type standingsDTO struct {
	LeagueID   int64            `json:"leagueId"`
	LeagueName string           `json:"leagueName"`
	Gameweek   int              `json:"gameweek"`
	Rows       []standingRowDTO `json:"rows"`
}

type standingRowDTO struct {
	Rank        int    `json:"rank"`
	EntryID     int64  `json:"entryId"`
	ManagerName string `json:"managerName"`
	TeamName    string `json:"teamName"`
	Captain     string `json:"captain"`
	LivePoints  int    `json:"livePoints"`
	TotalPoints int    `json:"totalPoints"`
}

type activityFeedDTO struct {
	Gameweek int                `json:"gameweek"`
	Tracked  int                `json:"tracked"`
	Events   []activityEventDTO `json:"events"`
}

type activityEventDTO struct {
	ID               int64    `json:"id"`
	Gameweek         int      `json:"gameweek"`
	PlayerID         int64    `json:"playerId"`
	PlayerName       string   `json:"playerName"`
	TeamName         string   `json:"teamName"`
	Position         string   `json:"position"`
	ImageURL         string   `json:"imgUrl"`
	Owners           []string `json:"owners"`
	Event            string   `json:"event"`
	Points           int64    `json:"points"`
	TotalPointsAfter int      `json:"totalPoints"`
	Time             string   `json:"time"`
}

type squadsDTO struct {
	Gameweek int        `json:"gameweek"`
	Squads   []squadDTO `json:"squads"`
}

type squadDTO struct {
	EntryID     int64          `json:"entryId"`
	ManagerName string         `json:"managerName"`
	TeamName    string         `json:"teamName"`
	Points      int            `json:"points"`
	Swaps       int            `json:"swaps"`
	Starters    []squadSlotDTO `json:"starters"`
	Bench       []squadSlotDTO `json:"bench"`
}

type squadSlotDTO struct {
	PlayerID   int64  `json:"playerId"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Slot       int    `json:"slot"`
	Multiplier int    `json:"multiplier"`
	Captain    bool   `json:"captain"`
	Sub        bool   `json:"sub"`
	Minutes    int    `json:"minutes"`
	Points     int    `json:"points"`
}

type fixturesDTO struct {
	Gameweek int          `json:"gameweek"`
	Fixtures []fixtureDTO `json:"fixtures"`
}

type fixtureDTO struct {
	ID        int64      `json:"id"`
	KickoffAt *time.Time `json:"kickoffAt,omitempty"`
	Status    string     `json:"status"`
	HomeTeam  string     `json:"homeTeam"`
	HomeLogo  string     `json:"homeLogo"`
	HomeScore *int       `json:"homeScore"`
	AwayTeam  string     `json:"awayTeam"`
	AwayLogo  string     `json:"awayLogo"`
	AwayScore *int       `json:"awayScore"`
}

type transfersDTO struct {
	Gameweek  int           `json:"gameweek"`
	Transfers []transferDTO `json:"transfers"`
}

type transferDTO struct {
	EntryID     int64     `json:"entryId"`
	ManagerName string    `json:"managerName"`
	PlayerIn    string    `json:"playerIn"`
	PlayerOut   string    `json:"playerOut"`
	MadeAt      time.Time `json:"madeAt"`
}

type historyDTO struct {
	Managers []string        `json:"managers"`
	Rows     []historyRowDTO `json:"rows"`
}

type historyRowDTO struct {
	Gameweek int            `json:"gameweek"`
	Totals   map[string]int `json:"totals"`
}

type refreshDTO struct {
	Version   int64     `json:"version"`
	Players   int       `json:"players"`
	Gameweeks int       `json:"gameweeks"`
	BuiltAt   time.Time `json:"builtAt"`
}

func gameweekToDTO(gw gameweek.Gameweek) gameweekDTO {
	return gameweekDTO{
		ID:           gw.ID,
		Name:         gw.Name,
		DeadlineTime: gw.DeadlineTime,
		Finished:     gw.Finished,
	}
}

func standingsToDTO(view usecase.StandingsView) standingsDTO {
	rows := make([]standingRowDTO, 0, len(view.Rows))
	for _, row := range view.Rows {
		rows = append(rows, standingRowDTO{
			Rank:        row.Rank,
			EntryID:     row.EntryID,
			ManagerName: row.ManagerName,
			TeamName:    row.TeamName,
			Captain:     row.CaptainName,
			LivePoints:  row.LivePoints,
			TotalPoints: row.TotalPoints,
		})
	}
	return standingsDTO{
		LeagueID:   view.LeagueID,
		LeagueName: view.LeagueName,
		Gameweek:   view.GameweekID,
		Rows:       rows,
	}
}

func activityEventsToDTO(events []activity.Event) []activityEventDTO {
	out := make([]activityEventDTO, 0, len(events))
	for _, ev := range events {
		owners := ev.Owners
		if owners == nil {
			owners = []string{}
		}
		out = append(out, activityEventDTO{
			ID:               ev.ID,
			Gameweek:         ev.GameweekID,
			PlayerID:         ev.PlayerID,
			PlayerName:       ev.PlayerName,
			TeamName:         ev.TeamName,
			Position:         string(ev.Position),
			ImageURL:         ev.ImageURL,
			Owners:           owners,
			Event:            ev.Label,
			Points:           ev.Points,
			TotalPointsAfter: ev.TotalPointsAfter,
			Time:             ev.Clock(),
		})
	}
	return out
}

func squadsToDTO(view usecase.SquadsView) squadsDTO {
	squads := make([]squadDTO, 0, len(view.Squads))
	for _, sq := range view.Squads {
		squads = append(squads, squadDTO{
			EntryID:     sq.EntryID,
			ManagerName: sq.ManagerName,
			TeamName:    sq.TeamName,
			Points:      sq.Points,
			Swaps:       sq.Swaps,
			Starters:    slotsToDTO(sq.Starters),
			Bench:       slotsToDTO(sq.Bench),
		})
	}
	return squadsDTO{Gameweek: view.GameweekID, Squads: squads}
}

func slotsToDTO(slots []autosub.Slot) []squadSlotDTO {
	out := make([]squadSlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, squadSlotDTO{
			PlayerID:   s.PlayerID,
			Name:       s.WebName,
			Position:   string(s.Role),
			Slot:       s.Position,
			Multiplier: s.Multiplier,
			Captain:    s.IsCaptain,
			Sub:        s.IsSub,
			Minutes:    s.Minutes,
			Points:     s.Points(),
		})
	}
	return out
}

func fixturesToDTO(view usecase.FixturesView) fixturesDTO {
	rows := make([]fixtureDTO, 0, len(view.Fixtures))
	for _, f := range view.Fixtures {
		rows = append(rows, fixtureDTO(f))
	}
	return fixturesDTO{Gameweek: view.GameweekID, Fixtures: rows}
}

func transfersToDTO(view usecase.TransfersView) transfersDTO {
	rows := make([]transferDTO, 0, len(view.Transfers))
	for _, tr := range view.Transfers {
		rows = append(rows, transferDTO(tr))
	}
	return transfersDTO{Gameweek: view.GameweekID, Transfers: rows}
}

func historyToDTO(view usecase.HistoryView) historyDTO {
	managers := make([]string, 0, len(view.Entries))
	for _, e := range view.Entries {
		managers = append(managers, e.ManagerName)
	}
	rows := make([]historyRowDTO, 0, len(view.Rows))
	for _, row := range view.Rows {
		rows = append(rows, historyRowDTO{Gameweek: row.GameweekID, Totals: row.Totals})
	}
	return historyDTO{Managers: managers, Rows: rows}
}
