package model

import "time"

// CrashState is the sole record persisted across runs. Timestamps are nil
// until the corresponding event has happened.
type CrashState struct {
	IsCrash       bool       `json:"is_crash"`
	FirstDetected *time.Time `json:"first_detected"`
	LastChecked   *time.Time `json:"last_checked"`
}
