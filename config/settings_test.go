package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/leoarenas/pomodorotrack/internal/models"
)

func TestDefaultSettings(t *testing.T) {
	want := Settings{
		WorkMinutes:       25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		Cycles:            4,
		SoundEnabled:      true,
		Sound:             "bell",
		Volume:            0.7,
	}

	if diff := cmp.Diff(want, DefaultSettings()); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestApplyLeavesUnsetFieldsUntouched(t *testing.T) {
	base := DefaultSettings()

	got := base.Apply(SettingsPatch{
		WorkMinutes: intPtr(50),
		Volume:      floatPtr(0.2),
	})

	want := base
	want.WorkMinutes = 50
	want.Volume = 0.2

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("patched settings mismatch (-want +got):\n%s", diff)
	}

	// the receiver is never mutated
	if diff := cmp.Diff(DefaultSettings(), base); diff != "" {
		t.Errorf("apply mutated its receiver (-want +got):\n%s", diff)
	}
}

func TestApplyFullPatch(t *testing.T) {
	got := DefaultSettings().Apply(SettingsPatch{
		WorkMinutes:       intPtr(45),
		ShortBreakMinutes: intPtr(10),
		LongBreakMinutes:  intPtr(30),
		Cycles:            intPtr(6),
		SoundEnabled:      boolPtr(false),
		Sound:             strPtr("chime"),
		Volume:            floatPtr(1),
	})

	want := Settings{
		WorkMinutes:       45,
		ShortBreakMinutes: 10,
		LongBreakMinutes:  30,
		Cycles:            6,
		SoundEnabled:      false,
		Sound:             "chime",
		Volume:            1,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("patched settings mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Settings) {},
		},
		{
			name:   "work at lower bound",
			mutate: func(s *Settings) { s.WorkMinutes = MinWorkMinutes },
		},
		{
			name:   "work at upper bound",
			mutate: func(s *Settings) { s.WorkMinutes = MaxWorkMinutes },
		},
		{
			name:    "work too low",
			mutate:  func(s *Settings) { s.WorkMinutes = 0 },
			wantErr: true,
		},
		{
			name:    "work too high",
			mutate:  func(s *Settings) { s.WorkMinutes = 121 },
			wantErr: true,
		},
		{
			name:    "short break too high",
			mutate:  func(s *Settings) { s.ShortBreakMinutes = 61 },
			wantErr: true,
		},
		{
			name:    "long break too low",
			mutate:  func(s *Settings) { s.LongBreakMinutes = 0 },
			wantErr: true,
		},
		{
			name:    "cycles too low",
			mutate:  func(s *Settings) { s.Cycles = 0 },
			wantErr: true,
		},
		{
			name:    "cycles too high",
			mutate:  func(s *Settings) { s.Cycles = 11 },
			wantErr: true,
		},
		{
			name:    "volume negative",
			mutate:  func(s *Settings) { s.Volume = -0.1 },
			wantErr: true,
		},
		{
			name:    "volume above one",
			mutate:  func(s *Settings) { s.Volume = 1.1 },
			wantErr: true,
		},
		{
			name:   "volume at bounds",
			mutate: func(s *Settings) { s.Volume = 0 },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.mutate(&s)

			err := s.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected a validation error")
			}

			if !tc.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestPhaseSeconds(t *testing.T) {
	s := DefaultSettings()

	cases := []struct {
		phase models.Phase
		want  int
	}{
		{models.PhaseWork, 25 * 60},
		{models.PhaseBreak, 5 * 60},
		{models.PhaseLongBreak, 15 * 60},
		{models.PhaseIdle, 0},
	}

	for _, tc := range cases {
		if got := s.PhaseSeconds(tc.phase); got != tc.want {
			t.Errorf(
				"PhaseSeconds(%s) = %d, want %d",
				tc.phase,
				got,
				tc.want,
			)
		}
	}
}
