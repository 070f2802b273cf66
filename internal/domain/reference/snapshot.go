package reference

import (
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/fpl-live/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-live/internal/domain/player"
	"github.com/riskibarqy/fpl-live/internal/domain/team"
)

var (
	ErrUnknownPlayer = errors.New("player not in reference data")
	ErrUnknownTeam   = errors.New("team not in reference data")
)

// Snapshot is an immutable view of the static game data. It is built once and
// replaced wholesale; callers must not modify the returned values.
type Snapshot struct {
	players   map[int64]player.Player
	teams     map[int64]team.Team
	gameweeks []gameweek.Gameweek
	builtAt   time.Time
}

// PlayerView is a player joined with its club.
type PlayerView struct {
	player.Player
	TeamName string
	TeamLogo string
}

func NewSnapshot(players []player.Player, teams []team.Team, gameweeks []gameweek.Gameweek, builtAt time.Time) (*Snapshot, error) {
	s := &Snapshot{
		players:   make(map[int64]player.Player, len(players)),
		teams:     make(map[int64]team.Team, len(teams)),
		gameweeks: append([]gameweek.Gameweek(nil), gameweeks...),
		builtAt:   builtAt,
	}

	for _, t := range teams {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("team %d: %w", t.ID, err)
		}
		s.teams[t.ID] = t
	}
	for _, p := range players {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("player %d: %w", p.ID, err)
		}
		if _, ok := s.teams[p.TeamID]; !ok {
			return nil, fmt.Errorf("player %d: %w: %d", p.ID, ErrUnknownTeam, p.TeamID)
		}
		s.players[p.ID] = p
	}
	gameweek.SortByID(s.gameweeks)

	return s, nil
}

func (s *Snapshot) BuiltAt() time.Time {
	return s.builtAt
}

func (s *Snapshot) PlayerCount() int {
	return len(s.players)
}

func (s *Snapshot) Player(id int64) (PlayerView, error) {
	p, ok := s.players[id]
	if !ok {
		return PlayerView{}, fmt.Errorf("%w: %d", ErrUnknownPlayer, id)
	}
	t := s.teams[p.TeamID]
	return PlayerView{Player: p, TeamName: t.Name, TeamLogo: t.Logo}, nil
}

func (s *Snapshot) Team(id int64) (team.Team, error) {
	t, ok := s.teams[id]
	if !ok {
		return team.Team{}, fmt.Errorf("%w: %d", ErrUnknownTeam, id)
	}
	return t, nil
}

func (s *Snapshot) Gameweeks() []gameweek.Gameweek {
	return append([]gameweek.Gameweek(nil), s.gameweeks...)
}

func (s *Snapshot) CurrentGameweek(now time.Time) (gameweek.Gameweek, error) {
	return gameweek.Current(s.gameweeks, now)
}
