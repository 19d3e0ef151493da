package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/leoarenas/pomodorotrack/config"
	"github.com/leoarenas/pomodorotrack/internal/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	client, err := NewClient(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func TestSnapshotRoundTrip(t *testing.T) {
	client := newTestClient(t)

	want := &models.Snapshot{
		Phase:            models.PhaseWork,
		RemainingSeconds: 1200,
		Running:          true,
		ProjectID:        "proj-1",
		ProjectName:      "Website",
		ActivityNote:     "draft report",
		WorkCycle:        3,
		StartedAt:        time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC),
	}

	if err := client.SaveSnapshot(want); err != nil {
		t.Fatal(err)
	}

	got, err := client.Snapshot()
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotAbsent(t *testing.T) {
	client := newTestClient(t)

	got, err := client.Snapshot()
	if err != nil {
		t.Fatal(err)
	}

	if got != nil {
		t.Errorf("expected no snapshot, got %+v", got)
	}
}

func TestClearSnapshot(t *testing.T) {
	client := newTestClient(t)

	snap := &models.Snapshot{
		Phase:            models.PhaseBreak,
		RemainingSeconds: 60,
	}

	if err := client.SaveSnapshot(snap); err != nil {
		t.Fatal(err)
	}

	if err := client.ClearSnapshot(); err != nil {
		t.Fatal(err)
	}

	got, err := client.Snapshot()
	if err != nil {
		t.Fatal(err)
	}

	if got != nil {
		t.Errorf("snapshot survived clearing: %+v", got)
	}

	// clearing an already empty store is not an error
	if err := client.ClearSnapshot(); err != nil {
		t.Fatal(err)
	}
}

func TestCorruptSnapshotTreatedAsAbsent(t *testing.T) {
	client := newTestClient(t)

	if err := client.set(snapshotKey, []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	got, err := client.Snapshot()
	if err != nil {
		t.Fatal(err)
	}

	if got != nil {
		t.Errorf("corrupt snapshot was not discarded: %+v", got)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	client := newTestClient(t)

	got, err := client.Settings()
	if err != nil {
		t.Fatal(err)
	}

	if got != nil {
		t.Fatalf("expected no settings on a fresh store, got %+v", got)
	}

	want := config.DefaultSettings()
	want.WorkMinutes = 50
	want.Volume = 0.3

	if err := client.SaveSettings(want); err != nil {
		t.Fatal(err)
	}

	got, err = client.Settings()
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(&want, got); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestCorruptSettingsTreatedAsAbsent(t *testing.T) {
	client := newTestClient(t)

	if err := client.set(settingsKey, []byte("42")); err != nil {
		t.Fatal(err)
	}

	got, err := client.Settings()
	if err != nil {
		t.Fatal(err)
	}

	if got != nil {
		t.Errorf("corrupt settings record was not discarded: %+v", got)
	}
}

func TestSecondOpenFailsWhileLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	client, err := NewClient(path)
	if err != nil {
		t.Fatal(err)
	}

	defer client.Close()

	if _, err := NewClient(path); err == nil {
		t.Error("expected a lock error opening the store twice")
	}
}
