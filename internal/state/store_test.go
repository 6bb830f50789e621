package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"crashwatch/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "state.json"), zap.NewNop().Sugar())
}

func TestStore_LoadMissingFile(t *testing.T) {
	s := newTestStore(t)
	st := s.Load()
	if st.IsCrash {
		t.Error("missing file should yield the no-crash default")
	}
	if st.FirstDetected != nil || st.LastChecked != nil {
		t.Error("missing file should yield nil timestamps")
	}
}

func TestStore_LoadCorruptFile(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.Path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	st := s.Load()
	if st.IsCrash || st.FirstDetected != nil || st.LastChecked != nil {
		t.Errorf("corrupt file should yield the default state, got %+v", st)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	first := time.Date(2024, 8, 5, 22, 30, 0, 0, time.UTC)
	last := time.Date(2024, 8, 6, 22, 30, 0, 0, time.UTC)
	in := &model.CrashState{IsCrash: true, FirstDetected: &first, LastChecked: &last}

	if err := s.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out := s.Load()

	if out.IsCrash != in.IsCrash {
		t.Errorf("is_crash: got %v, want %v", out.IsCrash, in.IsCrash)
	}
	if out.FirstDetected == nil || !out.FirstDetected.Equal(first) {
		t.Errorf("first_detected: got %v, want %v", out.FirstDetected, first)
	}
	if out.LastChecked == nil || !out.LastChecked.Equal(last) {
		t.Errorf("last_checked: got %v, want %v", out.LastChecked, last)
	}
}

func TestStore_NullTimestampsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()
	if err := s.Save(&model.CrashState{IsCrash: false, LastChecked: &now}); err != nil {
		t.Fatalf("save: %v", err)
	}
	out := s.Load()
	if out.FirstDetected != nil {
		t.Errorf("first_detected should stay nil, got %v", out.FirstDetected)
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()
	if err := s.Save(&model.CrashState{IsCrash: true, FirstDetected: &now, LastChecked: &now}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(&model.CrashState{IsCrash: false, LastChecked: &now}); err != nil {
		t.Fatal(err)
	}
	out := s.Load()
	if out.IsCrash || out.FirstDetected != nil {
		t.Errorf("expected the overwritten no-crash state, got %+v", out)
	}
}
