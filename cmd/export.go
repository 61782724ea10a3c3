package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"edt-finder-cli/engine"
	"edt-finder-cli/export"
)

var (
	icsOutput string
	csvOutput string
	csvReport string
)

var exportICSCmd = &cobra.Command{
	Use:   "export-ics [from] [to]",
	Short: "Generate an iCalendar file for a date range",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to, err := dateRangeFromArgs(args)
		if err != nil {
			return err
		}
		records, err := loadRecords()
		if err != nil {
			return err
		}
		f, err := os.Create(icsOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.WriteICS(f, records, from, to, export.ICSOptions{}); err != nil {
			return err
		}
		fmt.Printf("Calendar written to %s\n", icsOutput)
		return nil
	},
}

var exportCSVCmd = &cobra.Command{
	Use:   "export-csv",
	Short: "Export the parsed corpus (or an occupancy report) as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadRecords()
		if err != nil {
			return err
		}
		f, err := os.Create(csvOutput)
		if err != nil {
			return err
		}
		defer f.Close()

		if csvReport == "occupancy" {
			from, to, err := dateRangeFromArgs(nil)
			if err != nil {
				return err
			}
			occupancies, err := engine.RoomOccupancy(records, from, to, engine.OccupancyParams{
				Window:      cfg.Window,
				SlotMinutes: cfg.SlotMinutes,
			})
			if err != nil {
				return err
			}
			if err := export.WriteOccupancyCSV(f, occupancies); err != nil {
				return err
			}
		} else {
			if err := export.WriteRecordsCSV(f, records); err != nil {
				return err
			}
		}
		fmt.Printf("CSV written to %s\n", csvOutput)
		return nil
	},
}

func init() {
	exportICSCmd.Flags().StringVarP(&icsOutput, "output", "o", "calendrier.ics", "output file")
	exportCSVCmd.Flags().StringVarP(&csvOutput, "output", "o", "timetable.csv", "output file")
	exportCSVCmd.Flags().StringVar(&csvReport, "report", "records", "what to export: records or occupancy")
}
