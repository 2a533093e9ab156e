package store

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/roach88/enumconform/enum"
	"github.com/roach88/enumconform/enumtest"
)

// createTestStore creates a new file-backed store for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// pragma reads a pragma of the store's connection.
func pragma(t *testing.T, s *Store, name string) string {
	t.Helper()
	var value string
	if err := s.db.QueryRow("PRAGMA " + name).Scan(&value); err != nil {
		t.Fatalf("PRAGMA %s: %v", name, err)
	}
	return value
}

// schemaVersion is the user_version a fully migrated store reports.
var schemaVersion = strconv.Itoa(len(migrations))

// createTestReport creates a report with one passing and, if failing is
// set, one failing check.
func createTestReport(name string, seed uint64, failing bool) *enumtest.Report {
	r := enumtest.NewReport(name, enum.KindString, seed)
	r.Add(enumtest.CheckResult{Family: enumtest.FamilyEnumeration, Pass: true})
	if failing {
		r.Add(enumtest.CheckResult{
			Family: enumtest.FamilyFromInvalid,
			Case:   "ACTIVE",
			Value:  "invalid_active_7",
			Pass:   false,
			Error:  "Assertion failed: from_invalid (ACTIVE)",
		})
	}
	return r
}
