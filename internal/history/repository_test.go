package history_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nerrad567/plugctl/internal/history"
	"github.com/nerrad567/plugctl/internal/infrastructure/database"
)

// newTestRepo returns a repository backed by a fresh temp database
// with the schema applied.
func newTestRepo(t *testing.T) *history.SQLiteRepository {
	t.Helper()

	db, err := database.Open(database.Config{
		Path:        filepath.Join(t.TempDir(), "history.db"),
		WALMode:     true,
		BusyTimeout: 5,
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := history.NewSQLiteRepository(db.DB)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}
	return repo
}

func TestRecord_GeneratesIDAndTimestamp(t *testing.T) {
	repo := newTestRepo(t)

	entry := &history.Entry{Action: "on", Target: "heater"}
	if err := repo.Record(context.Background(), entry); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if !strings.HasPrefix(entry.ID, "hst-") {
		t.Errorf("ID = %q, want hst- prefix", entry.ID)
	}
	if entry.CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestRecord_RoundTripsDetails(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	entry := &history.Entry{
		Action: "led",
		Target: "all",
		Details: map[string]any{
			"mode":    "off",
			"devices": float64(3),
		},
	}
	if err := repo.Record(ctx, entry); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	result, err := repo.List(ctx, history.Filter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(result.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(result.Entries))
	}

	got := result.Entries[0]
	if got.Action != "led" || got.Target != "all" {
		t.Errorf("entry = %+v, want action=led target=all", got)
	}
	if got.Details["mode"] != "off" {
		t.Errorf("Details[mode] = %v, want off", got.Details["mode"])
	}
	if got.Details["devices"] != float64(3) {
		t.Errorf("Details[devices] = %v, want 3", got.Details["devices"])
	}
}

func TestList_MostRecentFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, action := range []string{"on", "off", "toggle"} {
		entry := &history.Entry{
			Action:    action,
			Target:    "heater",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Record(ctx, entry); err != nil {
			t.Fatalf("Record(%s) error = %v", action, err)
		}
	}

	result, err := repo.List(ctx, history.Filter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []string{"toggle", "off", "on"}
	if len(result.Entries) != len(want) {
		t.Fatalf("len(Entries) = %d, want %d", len(result.Entries), len(want))
	}
	for i, action := range want {
		if result.Entries[i].Action != action {
			t.Errorf("Entries[%d].Action = %q, want %q", i, result.Entries[i].Action, action)
		}
	}
	if result.Total != 3 {
		t.Errorf("Total = %d, want 3", result.Total)
	}
}

func TestList_FilterByAction(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, action := range []string{"on", "off", "on"} {
		if err := repo.Record(ctx, &history.Entry{Action: action, Target: "lamp"}); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	result, err := repo.List(ctx, history.Filter{Action: "on"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if result.Total != 2 {
		t.Errorf("Total = %d, want 2", result.Total)
	}
	for _, entry := range result.Entries {
		if entry.Action != "on" {
			t.Errorf("Action = %q, want on", entry.Action)
		}
	}
}

func TestList_FilterByTarget(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, target := range []string{"heater", "lamp", "heater"} {
		if err := repo.Record(ctx, &history.Entry{Action: "toggle", Target: target}); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	result, err := repo.List(ctx, history.Filter{Target: "heater"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if result.Total != 2 {
		t.Errorf("Total = %d, want 2", result.Total)
	}
}

func TestList_Pagination(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		entry := &history.Entry{
			Action:    "on",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := repo.Record(ctx, entry); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	result, err := repo.List(ctx, history.Filter{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(result.Entries) != 2 {
		t.Errorf("len(Entries) = %d, want 2", len(result.Entries))
	}
	if result.Total != 5 {
		t.Errorf("Total = %d, want 5", result.Total)
	}
	if result.Limit != 2 || result.Offset != 2 {
		t.Errorf("Limit/Offset = %d/%d, want 2/2", result.Limit, result.Offset)
	}
}

func TestList_ClampsLimit(t *testing.T) {
	repo := newTestRepo(t)

	result, err := repo.List(context.Background(), history.Filter{Limit: 1000, Offset: -3})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if result.Limit != 200 {
		t.Errorf("Limit = %d, want clamped to 200", result.Limit)
	}
	if result.Offset != 0 {
		t.Errorf("Offset = %d, want clamped to 0", result.Offset)
	}
	if len(result.Entries) != 0 {
		t.Errorf("len(Entries) = %d, want 0 on empty table", len(result.Entries))
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	repo := newTestRepo(t)

	// Second call must not error.
	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema() second call error = %v", err)
	}
}
