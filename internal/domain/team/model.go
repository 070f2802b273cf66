package team

import (
	"fmt"
	"strings"
)

// Team is a real football club.
type Team struct {
	ID    int64
	Name  string
	Short string
	Logo  string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be > 0")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// LogoPath returns the static asset path for a club badge, e.g. "/logos/man_utd.png".
func LogoPath(name string) string {
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
	return "/logos/" + slug + ".png"
}
