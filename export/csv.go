package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"edt-finder-cli/model"
)

// WriteRecordsCSV writes the flat record collection as CSV, one row per
// session, for spreadsheet use.
func WriteRecordsCSV(w io.Writer, records []model.SessionRecord) error {
	return gocsv.Marshal(&records, w)
}

// occupancyRow adds the computed rate to the raw slot counters.
type occupancyRow struct {
	Room      string `csv:"room"`
	Occupied  int    `csv:"occupied_slots"`
	Available int    `csv:"available_slots"`
	Rate      string `csv:"occupancy_rate"`
}

// WriteOccupancyCSV writes an occupancy result as CSV. Undefined rates are
// written as "n/a" rather than a bogus number.
func WriteOccupancyCSV(w io.Writer, occupancies []model.RoomOccupancy) error {
	rows := make([]occupancyRow, 0, len(occupancies))
	for _, o := range occupancies {
		row := occupancyRow{
			Room:      o.Room,
			Occupied:  o.Occupied,
			Available: o.Available,
			Rate:      "n/a",
		}
		if rate, ok := o.Rate(); ok {
			row.Rate = fmt.Sprintf("%.2f%%", rate)
		}
		rows = append(rows, row)
	}
	return gocsv.Marshal(&rows, w)
}
