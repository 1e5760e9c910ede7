package models

import "time"

// Job is a persisted scheduled-job row. Jobs are keyed by a unique name;
// saving under an existing name replaces the prior row, which is what
// gives rescheduling its replace-not-stack semantics.
type Job struct {
	Name    string    `json:"name"`
	Kind    string    `json:"kind"` // daily | specific
	RunAt   time.Time `json:"run_at"`
	Payload []byte    `json:"payload,omitempty"` // serialized Day for specific jobs
}
