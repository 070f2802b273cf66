package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id", "player_name").
		From("activity_events").
		Where(Eq("gameweek", 7), Gt("id", 10)).
		OrderBy("id DESC").
		Limit(50).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, player_name FROM activity_events WHERE gameweek = $1 AND id > $2 ORDER BY id DESC LIMIT 50"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != 7 || args[1] != 10 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_ExprAndEmptyIn(t *testing.T) {
	t.Parallel()

	query, args, err := Select("COALESCE(MAX(id), 0)").
		From("activity_events").
		Where(Expr("gameweek = ? AND points <> ?", 3, 0), In("player_id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT COALESCE(MAX(id), 0) FROM activity_events WHERE gameweek = $1 AND points <> $2 AND 1=0"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertRows(t *testing.T) {
	t.Parallel()

	type row struct {
		ID       int64  `db:"id"`
		Label    string `db:"label"`
		internal string
		Skipped  string `db:"-"`
	}

	query, args, err := InsertRows("activity_events", []row{
		{ID: 1, Label: "Goal"},
		{ID: 2, Label: "Assist"},
	}, "ON CONFLICT (gameweek, id) DO NOTHING")
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO activity_events (id, label) VALUES ($1, $2), ($3, $4) ON CONFLICT (gameweek, id) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[2] != int64(2) || args[3] != "Assist" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder_RequiresWhere(t *testing.T) {
	t.Parallel()

	if _, _, err := DeleteFrom("activity_events").ToSQL(); err == nil {
		t.Fatalf("expected error for unconditional delete")
	}

	query, args, err := DeleteFrom("activity_events").Where(Lt("gameweek", 5)).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM activity_events WHERE gameweek < $1" || len(args) != 1 {
		t.Fatalf("unexpected delete: %s %+v", query, args)
	}
}
