package fpl

import sonic "github.com/bytedance/sonic"

type bootstrapPayload struct {
	Elements []elementPayload `json:"elements" validate:"required,dive"`
	Teams    []teamPayload    `json:"teams" validate:"required,dive"`
	Events   []eventPayload   `json:"events" validate:"dive"`
}

type elementPayload struct {
	ID          int64  `json:"id" validate:"gt=0"`
	WebName     string `json:"web_name" validate:"required"`
	Team        int64  `json:"team" validate:"gt=0"`
	ElementType int    `json:"element_type" validate:"min=1,max=4"`
	Photo       string `json:"photo"`
}

type teamPayload struct {
	ID        int64  `json:"id" validate:"gt=0"`
	Name      string `json:"name" validate:"required"`
	ShortName string `json:"short_name"`
}

type eventPayload struct {
	ID           int    `json:"id" validate:"gt=0"`
	Name         string `json:"name"`
	DeadlineTime string `json:"deadline_time" validate:"required"`
	Finished     bool   `json:"finished"`
}

type leaguePayload struct {
	League struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"league"`
	Standings struct {
		Results []leagueEntryPayload `json:"results" validate:"dive"`
	} `json:"standings"`
}

type leagueEntryPayload struct {
	Entry      int64  `json:"entry" validate:"gt=0"`
	EntryName  string `json:"entry_name"`
	PlayerName string `json:"player_name" validate:"required"`
	Rank       int    `json:"rank"`
	Total      int    `json:"total"`
}

type picksPayload struct {
	ActiveChip   string `json:"active_chip"`
	EntryHistory struct {
		Event       int `json:"event"`
		Points      int `json:"points"`
		TotalPoints int `json:"total_points"`
	} `json:"entry_history"`
	Picks []pickPayload `json:"picks" validate:"required,len=15,dive"`
}

type pickPayload struct {
	Element       int64 `json:"element" validate:"gt=0"`
	Position      int   `json:"position" validate:"min=1,max=15"`
	Multiplier    int   `json:"multiplier" validate:"gte=0"`
	IsCaptain     bool  `json:"is_captain"`
	IsViceCaptain bool  `json:"is_vice_captain"`
}

type historyPayload struct {
	Current []historyEventPayload `json:"current" validate:"dive"`
}

type historyEventPayload struct {
	Event       int `json:"event" validate:"gt=0"`
	Points      int `json:"points"`
	TotalPoints int `json:"total_points"`
	Rank        int `json:"rank"`
}

type livePayload struct {
	Elements []liveElementPayload `json:"elements" validate:"dive"`
}

type liveElementPayload struct {
	ID    int64            `json:"id" validate:"gt=0"`
	Stats liveStatsPayload `json:"stats"`
}

type liveStatsPayload struct {
	Minutes         int `json:"minutes"`
	GoalsScored     int `json:"goals_scored"`
	Assists         int `json:"assists"`
	CleanSheets     int `json:"clean_sheets"`
	GoalsConceded   int `json:"goals_conceded"`
	OwnGoals        int `json:"own_goals"`
	PenaltiesSaved  int `json:"penalties_saved"`
	PenaltiesMissed int `json:"penalties_missed"`
	YellowCards     int `json:"yellow_cards"`
	RedCards        int `json:"red_cards"`
	Saves           int `json:"saves"`
	Bonus           int `json:"bonus"`
	TotalPoints     int `json:"total_points"`
}

// fixturesPayload wraps the top-level array returned by the fixtures endpoint.
type fixturesPayload struct {
	Items []fixturePayload `validate:"dive"`
}

func (p *fixturesPayload) UnmarshalJSON(raw []byte) error {
	return sonic.Unmarshal(raw, &p.Items)
}

type fixturePayload struct {
	ID                  int64   `json:"id" validate:"gt=0"`
	Event               *int    `json:"event"`
	TeamH               int64   `json:"team_h" validate:"gt=0"`
	TeamA               int64   `json:"team_a" validate:"gt=0"`
	TeamHScore          *int    `json:"team_h_score"`
	TeamAScore          *int    `json:"team_a_score"`
	KickoffTime         *string `json:"kickoff_time"`
	Minutes             int     `json:"minutes"`
	Started             *bool   `json:"started"`
	FinishedProvisional bool    `json:"finished_provisional"`
}

type transfersPayload struct {
	Items []transferPayload `validate:"dive"`
}

func (p *transfersPayload) UnmarshalJSON(raw []byte) error {
	return sonic.Unmarshal(raw, &p.Items)
}

type transferPayload struct {
	ElementIn  int64  `json:"element_in" validate:"gt=0"`
	ElementOut int64  `json:"element_out" validate:"gt=0"`
	Entry      int64  `json:"entry"`
	Event      int    `json:"event" validate:"gt=0"`
	Time       string `json:"time" validate:"required"`
}
