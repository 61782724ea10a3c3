package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"edt-finder-cli/engine"
	"edt-finder-cli/model"
)

var (
	underThreshold float64
	overThreshold  float64
)

var occupancyCmd = &cobra.Command{
	Use:   "occupancy [from] [to]",
	Short: "Show room occupancy rates over a date range",
	Long:  `Aggregates occupied versus available slots per room between two dates (YYYY-MM-DD), inside the configured opening window.`,
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
		occupancies, err := engine.RoomOccupancy(records, from, to, engine.OccupancyParams{
			Window:      cfg.Window,
			SlotMinutes: cfg.SlotMinutes,
		})
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Building", "Room", "Occupied", "Available", "Rate"})
		t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, AutoMerge: true}})
		for _, o := range occupancies {
			rateCell := "n/a"
			if rate, ok := o.Rate(); ok {
				rateCell = fmt.Sprintf("%.2f%%", rate)
			}
			t.AppendRow(table.Row{model.BuildingOf(o.Room), o.Room, o.Occupied, o.Available, rateCell})
		}
		t.Render()
		return nil
	},
}

var utilizationCmd = &cobra.Command{
	Use:   "utilization [from] [to]",
	Short: "List under- and over-utilized rooms",
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
		occupancies, err := engine.RoomOccupancy(records, from, to, engine.OccupancyParams{
			Window:      cfg.Window,
			SlotMinutes: cfg.SlotMinutes,
		})
		if err != nil {
			return err
		}
		report := engine.ClassifyUtilization(occupancies, underThreshold, overThreshold)

		if len(report.Under) == 0 {
			fmt.Printf("No room under %.0f%% occupancy.\n", underThreshold)
		} else {
			fmt.Printf("Rooms under %.0f%% occupancy:\n", underThreshold)
			for _, r := range report.Under {
				fmt.Printf("  - %s: %.2f%%\n", r.Room, r.Rate)
			}
		}
		if len(report.Over) == 0 {
			fmt.Printf("No room over %.0f%% occupancy.\n", overThreshold)
		} else {
			fmt.Printf("Rooms over %.0f%% occupancy:\n", overThreshold)
			for _, r := range report.Over {
				fmt.Printf("  - %s: %.2f%%\n", r.Room, r.Rate)
			}
		}
		return nil
	},
}

func init() {
	utilizationCmd.Flags().Float64Var(&underThreshold, "under", 20, "under-utilization threshold (percent)")
	utilizationCmd.Flags().Float64Var(&overThreshold, "over", 80, "over-utilization threshold (percent)")
}

func dateRangeFromArgs(args []string) (time.Time, time.Time, error) {
	if len(args) >= 2 {
		from, err := time.Parse(time.DateOnly, args[0])
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to, err := time.Parse(time.DateOnly, args[1])
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return from, to, nil
	}
	from, err := promptDate("Start date (YYYY-MM-DD)")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := promptDate("End date (YYYY-MM-DD)")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}
