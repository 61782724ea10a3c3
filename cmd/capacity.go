package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"edt-finder-cli/engine"
)

var capacityCmd = &cobra.Command{
	Use:   "capacity [room]",
	Short: "Show the seat capacity of a room",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		room, err := argOrPrompt(args, "Room name")
		if err != nil {
			return err
		}
		records, err := loadRecords()
		if err != nil {
			return err
		}
		result, err := engine.RoomCapacity(records, room)
		if err != nil {
			return err
		}
		fmt.Printf("Room %s: %d seats\n", result.Room, result.Capacity)
		return nil
	},
}

var (
	rankMin  int
	rankDesc bool
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank rooms by seat capacity",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadRecords()
		if err != nil {
			return err
		}
		ranked := engine.RankRoomsByCapacity(records, rankMin, !rankDesc)
		if len(ranked) == 0 {
			fmt.Printf("No room has %d seats or more.\n", rankMin)
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Room", "Capacity"})
		for _, rc := range ranked {
			t.AppendRow(table.Row{rc.Room, rc.Capacity})
		}
		t.Render()
		return nil
	},
}

func init() {
	rankCmd.Flags().IntVar(&rankMin, "min", 0, "minimum capacity to include")
	rankCmd.Flags().BoolVar(&rankDesc, "desc", false, "sort descending")
}
