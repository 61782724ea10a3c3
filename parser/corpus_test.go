package parser

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"edt-finder-cli/model"
)

func writeTimetable(t *testing.T, root, subdir, content string) {
	t.Helper()
	dir := filepath.Join(root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, TimetableFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDir(t *testing.T) {
	root := t.TempDir()
	writeTimetable(t, root, "AB", "+MATH02\n1,C1,P=30,H=L 10:00-12:00,F1,S=B203\n")
	writeTimetable(t, root, "CD", "+GL02\n1,C1,P=24,H=V 8:00-10:00,F1,S=S102//\n")
	// A subdirectory without a timetable file is skipped with a warning.
	if err := os.MkdirAll(filepath.Join(root, "EF"), 0o755); err != nil {
		t.Fatal(err)
	}
	// Stray files at the root are not subdirectories and are ignored.
	if err := os.WriteFile(filepath.Join(root, "README"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	records, diags, err := LoadDir(root)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if len(diags) != 1 || diags[0].Kind != UnreadableSource {
		t.Fatalf("expected one UnreadableSource diagnostic, got %+v", diags)
	}
}

func TestLoadDirMissingRoot(t *testing.T) {
	_, _, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestLoadDirIdempotent(t *testing.T) {
	root := t.TempDir()
	writeTimetable(t, root, "AB", "+MATH02\n1,C1,P=30,H=L 10:00-12:00,F1,S=B203\n2,D1,P=15,H=MA 14:00-16:00,F1,S=C101\n")

	first, _, err := LoadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := LoadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("expected same record count, got %d and %d", len(first), len(second))
	}
	sortRecords(first)
	sortRecords(second)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("record %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func sortRecords(records []model.SessionRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Course != records[j].Course {
			return records[i].Course < records[j].Course
		}
		return records[i].StartTime < records[j].StartTime
	})
}
