package domain

import (
	"errors"
	"fmt"
)

// JournaledError is a bookkeeping failure that was written to the inconsistency journal.
// InconsistencyID is zero when the journal write failed as well.
type JournaledError struct {
	InconsistencyID int64
	// Reference is the journaled entity, e.g. the ID of an unwritten transaction record
	Reference string
	Err       error
}

func (e *JournaledError) Error() string {
	return fmt.Sprintf("journaled as inconsistency %d: %v", e.InconsistencyID, e.Err)
}

func (e *JournaledError) Unwrap() error {
	return e.Err
}

// Partial collects the follow-ups of an operation that completed its irreversible step
// but failed later bookkeeping
type Partial struct {
	Warnings        []string `json:"warnings,omitempty"`
	Inconsistencies []int64  `json:"inconsistencies,omitempty"`
}

// Warn adds a warning, linked to the journal entry when id is not zero
func (p *Partial) Warn(id int64, format string, args ...interface{}) {
	p.Warnings = append(p.Warnings, fmt.Sprintf(format, args...))
	if id > 0 {
		p.Inconsistencies = append(p.Inconsistencies, id)
	}
}

// WarnErr adds a warning for err, picking up the journal entry of a JournaledError
func (p *Partial) WarnErr(msg string, err error) {
	var id int64
	var je *JournaledError
	if errors.As(err, &je) {
		id = je.InconsistencyID
	}
	p.Warn(id, "%s: %v", msg, err)
}

// IsPartial reports whether any follow-up was recorded
func (p *Partial) IsPartial() bool {
	return len(p.Warnings) > 0
}
