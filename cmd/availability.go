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

var freeCmd = &cobra.Command{
	Use:   "free [room]",
	Short: "Show the free slots of a room over the week",
	RunE: func(cmd *cobra.Command, args []string) error {
		room, err := argOrPrompt(args, "Room name")
		if err != nil {
			return err
		}
		records, err := loadRecords()
		if err != nil {
			return err
		}
		days, err := engine.RoomFreeIntervals(records, room, cfg.Window)
		if err != nil {
			return err
		}

		rowConfigAutoMerge := table.RowConfig{AutoMerge: true}
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Day", "Free slots"})
		t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, AutoMerge: true}})
		for _, day := range days {
			if len(day.Free) == 0 {
				t.AppendRow(table.Row{day.Day.Name(), "fully booked"}, rowConfigAutoMerge)
				continue
			}
			for _, iv := range day.Free {
				t.AppendRow(table.Row{day.Day.Name(), iv.String()}, rowConfigAutoMerge)
			}
		}
		t.Render()
		return nil
	},
}

var availableCmd = &cobra.Command{
	Use:   "available [day] [start] [end]",
	Short: "Find rooms free for a given slot",
	Long:  `Lists every room with no booking overlapping the slot, grouped by building.`,
	Args:  cobra.MaximumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := dayArgOrPrompt(args, 0)
		if err != nil {
			return err
		}
		if !parser.IsValidDay(string(day)) {
			return fmt.Errorf("invalid day code %q (use L, MA, ME, J, V, S or D)", day)
		}
		slot, err := slotFromArgs(args)
		if err != nil {
			return err
		}
		records, err := loadRecords()
		if err != nil {
			return err
		}
		groups := engine.AvailableRooms(records, day, slot)
		if len(groups) == 0 {
			fmt.Printf("No room is free on %s between %s.\n", day.Name(), slot)
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Building", "Room"})
		t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, AutoMerge: true}})
		t.Style().Options.SeparateRows = true
		for _, group := range groups {
			for _, room := range group.Rooms {
				t.AppendRow(table.Row{group.Building, room}, table.RowConfig{AutoMerge: true})
			}
		}
		t.Render()
		return nil
	},
}

// slotFromArgs builds the query slot from the trailing args, prompting
// only for the times not given on the command line.
func slotFromArgs(args []string) (model.Interval, error) {
	var start, end int
	var err error
	if len(args) >= 2 {
		start, err = model.ParseClock(args[1])
	} else {
		start, err = promptClock("Start time (HH:MM)")
	}
	if err != nil {
		return model.Interval{}, err
	}
	if len(args) >= 3 {
		end, err = model.ParseClock(args[2])
	} else {
		end, err = promptClock("End time (HH:MM)")
	}
	if err != nil {
		return model.Interval{}, err
	}
	if end <= start {
		return model.Interval{}, fmt.Errorf("end time must be after start time")
	}
	return model.Interval{Start: start, End: end}, nil
}
