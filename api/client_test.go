package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/leoarenas/pomodorotrack/internal/models"
)

func TestCreateTimeEntry(t *testing.T) {
	cases := []struct {
		name  string
		entry models.TimeEntry
		want  map[string]any
	}{
		{
			name: "full pomodoro",
			entry: models.TimeEntry{
				ProjectID:       "proj-1",
				DurationSeconds: 1500,
				Type:            models.EntryPomodoro,
				Notes:           "draft report",
			},
			want: map[string]any{
				"projectId":       "proj-1",
				"durationMinutes": float64(25),
				"pomodoros":       float64(1),
				"notes":           "draft report",
			},
		},
		{
			name: "break counts no pomodoro",
			entry: models.TimeEntry{
				ProjectID:       "proj-1",
				DurationSeconds: 300,
				Type:            models.EntryBreak,
			},
			want: map[string]any{
				"projectId":       "proj-1",
				"durationMinutes": float64(5),
				"pomodoros":       float64(0),
				"notes":           "",
			},
		},
		{
			name: "duration rounds to nearest minute",
			entry: models.TimeEntry{
				ProjectID:       "proj-1",
				DurationSeconds: 1470,
				Type:            models.EntryPomodoro,
			},
			want: map[string]any{
				"projectId":       "proj-1",
				"durationMinutes": float64(25),
				"pomodoros":       float64(1),
				"notes":           "",
			},
		},
		{
			name: "short sessions count one minute",
			entry: models.TimeEntry{
				ProjectID:       "proj-1",
				DurationSeconds: 10,
				Type:            models.EntryPomodoro,
			},
			want: map[string]any{
				"projectId":       "proj-1",
				"durationMinutes": float64(1),
				"pomodoros":       float64(1),
				"notes":           "",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got map[string]any

			srv := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					if r.Method != http.MethodPost ||
						r.URL.Path != "/api/time-records" {
						t.Errorf(
							"unexpected request: %s %s",
							r.Method,
							r.URL.Path,
						)
					}

					if auth := r.Header.Get("Authorization"); auth != "Bearer token-1" {
						t.Errorf("authorization header = %q", auth)
					}

					if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
						t.Error(err)
					}

					_ = json.NewEncoder(w).Encode(TimeRecord{
						RecordID:  "rec-1",
						ProjectID: "proj-1",
					})
				},
			))
			defer srv.Close()

			client := New(srv.URL, "token-1")

			record, err := client.CreateTimeEntry(context.Background(), tc.entry)
			if err != nil {
				t.Fatal(err)
			}

			if record.RecordID != "rec-1" {
				t.Errorf("record id = %s, want rec-1", record.RecordID)
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("request body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCreateTimeEntryRequiresToken(t *testing.T) {
	client := New("http://localhost:1", "")

	_, err := client.CreateTimeEntry(context.Background(), models.TimeEntry{})
	if err == nil {
		t.Error("expected an authentication error")
	}
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/auth/login" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}

			if auth := r.Header.Get("Authorization"); auth != "" {
				t.Errorf("login must not send a token, got %q", auth)
			}

			var body map[string]string
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Error(err)
			}

			if body["email"] != "dev@example.com" || body["password"] != "hunter2" {
				t.Errorf("unexpected credentials: %v", body)
			}

			_ = json.NewEncoder(w).Encode(LoginResponse{
				Token: "token-1",
				User: User{
					UID:   "user-1",
					Email: "dev@example.com",
				},
				Company: &Company{Name: "Acme"},
			})
		},
	))
	defer srv.Close()

	client := New(srv.URL, "")

	resp, err := client.Login(context.Background(), "dev@example.com", "hunter2")
	if err != nil {
		t.Fatal(err)
	}

	if resp.Token != "token-1" {
		t.Errorf("token = %s, want token-1", resp.Token)
	}

	if resp.Company == nil || resp.Company.Name != "Acme" {
		t.Errorf("company = %+v", resp.Company)
	}
}

func TestErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"detail": "Invalid or expired token",
			})
		},
	))
	defer srv.Close()

	client := New(srv.URL, "stale")

	_, err := client.Projects(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}

	want := "request failed with status 401: Invalid or expired token"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestStatsWeek(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/stats/week" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}

			_, _ = w.Write([]byte(`{
				"weekStart": "2026-03-09",
				"weekEnd": "2026-03-15",
				"dailyStats": {
					"2026-03-09": {"pomodoros": 4, "totalTime": 100},
					"2026-03-10": {"pomodoros": 2, "totalTime": 50}
				},
				"totalPomodoros": 6,
				"totalTime": 150
			}`))
		},
	))
	defer srv.Close()

	client := New(srv.URL, "token-1")

	got, err := client.StatsWeek(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	want := &WeekStats{
		WeekStart: "2026-03-09",
		WeekEnd:   "2026-03-15",
		DailyStats: map[string]DayStats{
			"2026-03-09": {Pomodoros: 4, TotalTime: 100},
			"2026-03-10": {Pomodoros: 2, TotalTime: 50},
		},
		TotalPomodoros: 6,
		TotalTime:      150,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("week stats mismatch (-want +got):\n%s", diff)
	}
}

func TestTimeEntriesProjectFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("projectId"); got != "proj-1" {
				t.Errorf("projectId = %q, want proj-1", got)
			}

			_, _ = w.Write([]byte(`[]`))
		},
	))
	defer srv.Close()

	client := New(srv.URL, "token-1")

	if _, err := client.TimeEntries(context.Background(), "proj-1"); err != nil {
		t.Fatal(err)
	}
}

func TestBaseURLTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/projects" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}

			_, _ = w.Write([]byte(`[]`))
		},
	))
	defer srv.Close()

	client := New(srv.URL+"/", "token-1")

	if _, err := client.Projects(context.Background()); err != nil {
		t.Fatal(err)
	}
}
