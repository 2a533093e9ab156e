// Package manifest loads enumeration manifests.
//
// A manifest declares backed enumerations as data so the conformance
// battery can run against them without Go code. Two formats are read:
//
//   - YAML (.yaml, .yml): decoded strictly and validated against the
//     embedded JSON Schema in schema/manifest.schema.json.
//   - CUE (.cue): unified with the #Manifest definition in schema/manifest.cue.
//
// YAML form:
//
//	enums:
//	  - name: Status
//	    kind: string
//	    cases:
//	      - {name: ACTIVE, value: active, label: Active Status}
//
// CUE form:
//
//	enum: Status: {
//		kind: "string"
//		cases: [{name: "ACTIVE", value: "active"}]
//	}
//
// Loaded enumerations become enum.Registry values through Unlabeled and
// Labeled.
package manifest
