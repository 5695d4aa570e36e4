//go:build !derivemore

// Code generated by github.com/ErmitaVulpe/derive-more@dev. DO NOT EDIT.
//
package main

import (
	"github.com/ErmitaVulpe/derive-more/pkg/fromstrerrors"
	"github.com/google/uuid"
	strconv "strconv"
	strings "strings"
)

// derivemore: generated parsers

// ParseJobStatus returns the JobStatus whose name matches s, ignoring case.
func ParseJobStatus(s string) (JobStatus, error) {
	switch strings.ToLower(s) {
	case "todo":
		return Todo, nil
	case "doing":
		return Doing, nil
	case "done":
		return Done, nil
	}
	var zero JobStatus
	return zero, fromstrerrors.New("JobStatus")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (j *JobStatus) UnmarshalText(text []byte) error {
	v, err := ParseJobStatus(string(text))
	if err != nil {
		return err
	}
	*j = v
	return nil
}

// ParseJobID parses s as JobID.
func ParseJobID(s string) (JobID, error) {
	var v uuid.UUID
	if err := v.UnmarshalText([]byte(s)); err != nil {
		var zero JobID
		return zero, err
	}
	return JobID{UUID: v}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (j *JobID) UnmarshalText(text []byte) error {
	v, err := ParseJobID(string(text))
	if err != nil {
		return err
	}
	*j = v
	return nil
}

// ParsePriority parses s as Priority.
func ParsePriority(s string) (Priority, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		var zero Priority
		return zero, err
	}
	return Priority(v), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Priority) UnmarshalText(text []byte) error {
	v, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParseWeekday returns the Weekday whose name matches s, ignoring case.
func ParseWeekday(s string) (Weekday, error) {
	switch strings.ToLower(s) {
	case "monday":
		return Monday, nil
	case "tuesday":
		return Tuesday, nil
	case "wednesday":
		return Wednesday, nil
	case "thursday":
		return Thursday, nil
	case "friday":
		return Friday, nil
	case "saturday":
		return Saturday, nil
	case "sunday":
		return Sunday, nil
	}
	var zero Weekday
	return zero, fromstrerrors.New("Weekday")
}

// derive.go:
