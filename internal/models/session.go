package models

import "time"

// SyncStatus is the coarse state of the sync coordinator as seen by the UI.
type SyncStatus string

const (
	SyncStatusIdle      SyncStatus = "idle"
	SyncStatusStarted   SyncStatus = "started"
	SyncStatusCompleted SyncStatus = "completed"
	SyncStatusFailed    SyncStatus = "failed"
)

// SyncSession is one run of the sync worker. At most one session is in
// flight per device; concurrent triggers are coalesced into the running one.
type SyncSession struct {
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt time.Time  `json:"finished_at,omitempty"`
	ID         string     `json:"id"`
	Outcome    SyncStatus `json:"outcome"`
	Drained    int        `json:"drained"`
	Remaining  int        `json:"remaining"`
	Abandoned  int        `json:"abandoned"`
}

// InFlight reports whether the session is still running.
func (s *SyncSession) InFlight() bool {
	return s.Outcome == SyncStatusStarted
}

// StatusEvent is the ephemeral message broadcast on each session state
// transition. It is never persisted and never replayed to late subscribers:
// a consumer that subscribes mid-session will miss the started event and
// must treat its initial state as idle until the next transition.
type StatusEvent struct {
	At        time.Time  `json:"at"`
	SessionID string     `json:"session_id"`
	Status    SyncStatus `json:"status"`
	Drained   int        `json:"drained"`
	Remaining int        `json:"remaining"`
}
