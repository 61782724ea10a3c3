package parser

import (
	"fmt"
	"os"
	"path/filepath"

	"edt-finder-cli/model"
)

// TimetableFileName is the fixed name of the timetable file expected in
// each subdirectory of a corpus root.
const TimetableFileName = "edt.cru"

// LoadDir walks the immediate subdirectories of root and concatenates the
// records of every timetable file found, in enumeration order (order is
// not meaningful to callers). A subdirectory without the file or with a
// read error contributes a diagnostic, never a failure. Only an unreadable
// root is an error, since nothing can be loaded at all.
func LoadDir(root string) ([]model.SessionRecord, []Diagnostic, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, nil, fmt.Errorf("read corpus root: %w", err)
	}

	var records []model.SessionRecord
	var diags []Diagnostic
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(root, entry.Name(), TimetableFileName)
		data, err := os.ReadFile(path)
		if err != nil {
			diags = append(diags, Diagnostic{
				Kind:   UnreadableSource,
				Detail: err.Error(),
				Path:   path,
			})
			continue
		}
		fileRecords, fileDiags := ParseContent(string(data))
		for i := range fileDiags {
			fileDiags[i].Path = path
		}
		records = append(records, fileRecords...)
		diags = append(diags, fileDiags...)
	}
	return records, diags, nil
}
