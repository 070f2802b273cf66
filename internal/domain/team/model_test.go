package team

import "testing"

func TestLogoPath(t *testing.T) {
	t.Parallel()

	if got := LogoPath("Man Utd"); got != "/logos/man_utd.png" {
		t.Fatalf("unexpected logo path: %s", got)
	}
	if got := LogoPath(" Spurs "); got != "/logos/spurs.png" {
		t.Fatalf("unexpected logo path: %s", got)
	}
}
