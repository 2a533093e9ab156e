// Package enum describes backed enumerations and introspects them.
//
// A backed enumeration is a closed set of cases, each mapped to a unique
// string or integer backing value. In Go such a type is usually a named
// string or integer with a block of constants:
//
//	type Status string
//
//	const (
//	    StatusActive   Status = "active"
//	    StatusInactive Status = "inactive"
//	)
//
//	func (s Status) Value() string { return string(s) }
//
//	var Statuses = enum.New[Status, string]("Status", StatusActive, StatusInactive)
//
// Registry provides the strict (From) and tolerant (TryFrom) decode
// operations, but any type implementing Enumeration can be introspected.
//
// Cases may additionally implement Labeler and SelectItemer. Capabilities
// are detected per case at runtime.
package enum
