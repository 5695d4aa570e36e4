package main

import "github.com/google/uuid"

// JobStatus is the lifecycle state of a job.
//
//derivemore:fromstr
type JobStatus int

const (
	Todo JobStatus = iota
	Doing
	Done
)

func (s JobStatus) String() string {
	switch s {
	case Todo:
		return "todo"
	case Doing:
		return "doing"
	case Done:
		return "done"
	}
	return "unknown"
}

// MarshalText pairs with the generated UnmarshalText so jobs round-trip
// through JSON with readable statuses.
func (s JobStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// JobID wraps the textual UUID of a job. Parsing delegates to uuid.UUID.
//
//derivemore:fromstr
type JobID struct{ uuid.UUID }

// Priority is parsed from its decimal form.
//
//derivemore:fromstr
type Priority int

// Weekday is the day a job is due. Its parser is requested by name in
// derive.go instead of by a directive comment.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)
