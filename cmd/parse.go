package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"

	"edt-finder-cli/model"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse the corpus and show records with diagnostics",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, diags, err := corpus.Load(corpusDir())
		if err != nil {
			return err
		}

		byCourse := make(map[string][]model.SessionRecord)
		for _, r := range records {
			byCourse[r.Course] = append(byCourse[r.Course], r)
		}
		courses := maps.Keys(byCourse)
		sort.Strings(courses)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Course", "ID", "Type", "Capacity", "Day", "Slot", "Index", "Room"})
		t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, AutoMerge: true}})
		for _, course := range courses {
			for _, r := range byCourse[course] {
				t.AppendRow(table.Row{
					r.Course, r.ID, r.Type, r.Capacity,
					r.Day.Name(), r.Interval().String(), r.Index, r.Room,
				}, table.RowConfig{AutoMerge: true})
			}
		}
		t.Render()

		fmt.Printf("%d record(s), %d warning(s).\n", len(records), len(diags))
		if len(diags) > 0 {
			reportDiagnostics(diags)
		}
		return nil
	},
}
