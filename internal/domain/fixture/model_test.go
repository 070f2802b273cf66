package fixture

import (
	"testing"
	"time"
)

func TestFixtureStatus(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, 9, 13, 15, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   Fixture
		want string
	}{
		{name: "finished", in: Fixture{Started: true, FinishedProvisional: true, Minutes: 90}, want: "FT"},
		{name: "live", in: Fixture{Started: true, Minutes: 59}, want: "59'"},
		{name: "scheduled", in: Fixture{KickoffAt: &kickoff}, want: "Sat 13 Sep 15:00"},
		{name: "no kickoff", in: Fixture{}, want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Status(); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestRemainingByTeam(t *testing.T) {
	t.Parallel()

	got := RemainingByTeam([]Fixture{
		{HomeTeamID: 1, AwayTeamID: 2, FinishedProvisional: true},
		{HomeTeamID: 3, AwayTeamID: 4, Started: true, Minutes: 30},
		{HomeTeamID: 3, AwayTeamID: 5},
	})
	if got[1] != 0 || got[2] != 0 {
		t.Fatalf("finished teams must have no remaining fixtures: %+v", got)
	}
	if got[3] != 2 || got[4] != 1 || got[5] != 1 {
		t.Fatalf("unexpected remaining counts: %+v", got)
	}
	if got[99] != 0 {
		t.Fatalf("absent team must read as zero")
	}
}

func TestSortByKickoff(t *testing.T) {
	t.Parallel()

	early := time.Date(2025, 9, 13, 12, 30, 0, 0, time.UTC)
	late := early.Add(5 * time.Hour)
	fixtures := []Fixture{{ID: 3}, {ID: 2, KickoffAt: &late}, {ID: 1, KickoffAt: &early}}
	SortByKickoff(fixtures)
	if fixtures[0].ID != 1 || fixtures[1].ID != 2 || fixtures[2].ID != 3 {
		t.Fatalf("unexpected order: %d %d %d", fixtures[0].ID, fixtures[1].ID, fixtures[2].ID)
	}
}
