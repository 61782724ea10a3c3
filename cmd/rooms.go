package cmd

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"edt-finder-cli/engine"
	"edt-finder-cli/model"
)

var roomsCmd = &cobra.Command{
	Use:   "rooms [course]",
	Short: "Find the rooms used by a course",
	Long:  `Lists the rooms a course occupies, grouped by room and day with the time windows.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		course, err := argOrPrompt(args, "Course name")
		if err != nil {
			return err
		}
		records, err := loadRecords()
		if err != nil {
			return err
		}
		rooms, err := engine.RoomsForCourse(records, course)
		if err != nil {
			return err
		}

		rowConfigAutoMerge := table.RowConfig{AutoMerge: true}
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Room", "Day", "Slot"}, rowConfigAutoMerge)
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, AutoMerge: true},
			{Number: 2, AutoMerge: true},
		})
		t.Style().Options.SeparateRows = true
		for _, room := range rooms {
			for _, day := range room.Days {
				for _, slot := range day.Slots {
					t.AppendRow(table.Row{room.Room, day.Day.Name(), slot.String()}, rowConfigAutoMerge)
				}
			}
		}
		t.Render()
		return nil
	},
}

func argOrPrompt(args []string, label string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return promptString(label)
}

func dayArgOrPrompt(args []string, index int) (model.DayCode, error) {
	if len(args) > index {
		return model.DayCode(args[index]), nil
	}
	return promptDay()
}
