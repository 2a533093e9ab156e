// Package testutil provides fixture enumerations and deterministic helpers
// shared by the package tests.
package testutil

import (
	"fmt"

	"github.com/roach88/enumconform/enum"
)

// Status is a string-backed enumeration with labels and select items.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

func (s Status) Value() string { return string(s) }

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "ACTIVE"
	case StatusInactive:
		return "INACTIVE"
	case StatusPending:
		return "PENDING"
	}
	return fmt.Sprintf("Status(%q)", string(s))
}

func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "Active Status"
	case StatusInactive:
		return "Inactive Status"
	case StatusPending:
		return "Pending Status"
	}
	return ""
}

func (s Status) SelectItem() enum.SelectItem {
	return enum.SelectItem{"value": s.Value(), "label": s.Label()}
}

// Statuses is the registry of Status.
var Statuses = enum.New[Status, string]("Status", StatusActive, StatusInactive, StatusPending)

// Priority is an int-backed enumeration with labels and select items.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

func (p Priority) Value() int { return int(p) }

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "LOW"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityHigh:
		return "HIGH"
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low Priority"
	case PriorityMedium:
		return "Medium Priority"
	case PriorityHigh:
		return "High Priority"
	}
	return ""
}

func (p Priority) SelectItem() enum.SelectItem {
	return enum.SelectItem{"value": p.Value(), "label": p.Label()}
}

// Priorities is the registry of Priority.
var Priorities = enum.New[Priority, int]("Priority", PriorityLow, PriorityMedium, PriorityHigh)

// HTTPCode is a sparse int64-backed enumeration spanning a wide range.
// It has select items but no labels.
type HTTPCode int64

const (
	HTTPContinue    HTTPCode = 100
	HTTPOK          HTTPCode = 200
	HTTPNotFound    HTTPCode = 404
	HTTPServerError HTTPCode = 500
)

func (c HTTPCode) Value() int64 { return int64(c) }

func (c HTTPCode) SelectItem() enum.SelectItem {
	return enum.SelectItem{"value": c.Value()}
}

// HTTPCodes is the registry of HTTPCode.
var HTTPCodes = enum.New[HTTPCode, int64]("HTTPCode", HTTPContinue, HTTPOK, HTTPNotFound, HTTPServerError)

// Color is a string-backed enumeration with neither labels nor select items.
type Color string

const (
	ColorRed   Color = "red"
	ColorGreen Color = "green"
)

func (c Color) Value() string { return string(c) }

// Colors is the registry of Color.
var Colors = enum.New[Color, string]("Color", ColorRed, ColorGreen)

// Level is an int8-backed enumeration touching the top of its range.
type Level int8

func (l Level) Value() int8 { return int8(l) }

func (l Level) SelectItem() enum.SelectItem {
	return enum.SelectItem{"value": l.Value()}
}

// Levels is the registry of Level.
var Levels = enum.New[Level, int8]("Level", 125, 126, 127)

// Void is an int-backed enumeration without cases.
type Void int

func (v Void) Value() int { return int(v) }

// Voids is the empty registry of Void.
var Voids = enum.New[Void, int]("Void")
