package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"edt-finder-cli/engine"
	"edt-finder-cli/model"
	"edt-finder-cli/parser"
)

var (
	conflictDay   string
	conflictStart string
	conflictEnd   string
)

var conflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "Detect rooms double-booked by different courses",
	Long: `Examines every pair of sessions sharing a room and day and flags
overlapping time windows between different courses. Without flags the whole
week and the full day are checked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var days []model.DayCode
		if conflictDay != "" {
			if !parser.IsValidDay(conflictDay) {
				return fmt.Errorf("invalid day code %q", conflictDay)
			}
			days = []model.DayCode{model.DayCode(conflictDay)}
		}
		window := model.Interval{}
		if conflictStart != "" || conflictEnd != "" {
			iv, err := model.NewInterval(conflictStart, conflictEnd)
			if err != nil {
				return err
			}
			window = iv
		}

		records, err := loadRecords()
		if err != nil {
			return err
		}
		conflicts := engine.VerifyConflicts(records, days, window)
		if len(conflicts) == 0 {
			fmt.Println("No conflict detected.")
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Room", "Day", "Course", "Slot", "Course", "Slot"})
		t.Style().Options.SeparateRows = true
		for _, c := range conflicts {
			t.AppendRow(table.Row{
				c.Room, c.Day.Name(),
				c.First.Course, c.First.Interval().String(),
				c.Second.Course, c.Second.Interval().String(),
			})
		}
		t.Render()
		fmt.Printf("%d conflict(s) found.\n", len(conflicts))
		return nil
	},
}

func init() {
	conflictsCmd.Flags().StringVar(&conflictDay, "day", "", "restrict to one day code")
	conflictsCmd.Flags().StringVar(&conflictStart, "start", "", "window start (HH:MM)")
	conflictsCmd.Flags().StringVar(&conflictEnd, "end", "", "window end (HH:MM)")
}
