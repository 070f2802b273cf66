package player

import (
	"fmt"
	"strings"
)

// Position represents football position categories used in fantasy rules.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

const photoBaseURL = "https://resources.premierleague.com/premierleague/photos/players/250x250/p"

// PositionFromElementType maps upstream element_type ids 1..4.
func PositionFromElementType(elementType int) (Position, error) {
	switch elementType {
	case 1:
		return PositionGoalkeeper, nil
	case 2:
		return PositionDefender, nil
	case 3:
		return PositionMidfielder, nil
	case 4:
		return PositionForward, nil
	default:
		return "", fmt.Errorf("unknown element type %d", elementType)
	}
}

// Name returns the long form, e.g. "Defender".
func (p Position) Name() string {
	switch p {
	case PositionGoalkeeper:
		return "Goalkeeper"
	case PositionDefender:
		return "Defender"
	case PositionMidfielder:
		return "Midfielder"
	case PositionForward:
		return "Forward"
	default:
		return string(p)
	}
}

// Player is one element of the fantasy game.
type Player struct {
	ID       int64
	WebName  string
	TeamID   int64
	Position Position
	ImageURL string
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be > 0")
	}
	if strings.TrimSpace(p.WebName) == "" {
		return fmt.Errorf("player web name is required")
	}
	if p.TeamID <= 0 {
		return fmt.Errorf("player team id must be > 0")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}

	return nil
}

// ImageURLFromPhoto builds the public headshot URL from the upstream photo file name.
func ImageURLFromPhoto(photo string) string {
	photo = strings.TrimSpace(photo)
	if photo == "" {
		return ""
	}
	return photoBaseURL + strings.Replace(photo, ".jpg", ".png", 1)
}
