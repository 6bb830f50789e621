package state

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"crashwatch/internal/model"
)

// Store reads and writes the persisted crash state file.
type Store struct {
	Path string
	Log  *zap.SugaredLogger
}

// NewStore creates a Store for the given file path.
func NewStore(path string, log *zap.SugaredLogger) *Store {
	return &Store{Path: path, Log: log}
}

// Load reads the previous state. A missing file yields the zero state; a
// corrupt file yields the zero state with a warning. Load never fails.
func (s *Store) Load() *model.CrashState {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.Log.Warnf("read state file %s: %v, using defaults", s.Path, err)
		}
		return &model.CrashState{}
	}
	var st model.CrashState
	if err := json.Unmarshal(data, &st); err != nil {
		s.Log.Warnf("parse state file %s: %v, using defaults", s.Path, err)
		return &model.CrashState{}
	}
	return &st
}

// Save overwrites the state file. Errors are returned for the caller to log;
// a failed save never aborts a run.
func (s *Store) Save(st *model.CrashState) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.Path, data, 0644)
}
