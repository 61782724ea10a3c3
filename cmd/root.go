package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"edt-finder-cli/config"
	"edt-finder-cli/model"
	"edt-finder-cli/parser"
	"edt-finder-cli/store"
)

var (
	cfg    *config.Config
	corpus *store.Store

	dataDir     string
	showWarning bool
)

var rootCmd = &cobra.Command{
	Use:   "edt",
	Short: "Query university timetables from edt.cru files",
	Long: `edt answers queries over a directory of edt.cru timetable files:
room lookup by course, capacities, free slots, conflicts and occupancy.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("edt %s", buildVersion)
		if buildCommit != "none" && buildCommit != "" {
			fmt.Printf(" (%s)", buildCommit)
		}
		fmt.Println()
	},
}

var (
	buildVersion = "dev"
	buildCommit  = "none"
)

// Execute runs the CLI. Version information comes from the build.
func Execute(version, commit string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}

	cfg = config.Load()
	corpus = store.New(cfg.CacheTTL)

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "corpus directory (default from EDT_DATA_DIR or ./data)")
	rootCmd.PersistentFlags().BoolVar(&showWarning, "warnings", false, "print parse warnings")

	rootCmd.AddCommand(
		roomsCmd, capacityCmd, rankCmd,
		freeCmd, availableCmd, conflictsCmd,
		occupancyCmd, utilizationCmd,
		exportICSCmd, exportCSVCmd,
		parseCmd, menuCmd, versionCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func corpusDir() string {
	if dataDir != "" {
		return dataDir
	}
	return cfg.DataDir
}

// loadRecords loads the corpus, printing diagnostics only when asked.
func loadRecords() ([]model.SessionRecord, error) {
	records, diags, err := corpus.Load(corpusDir())
	if err != nil {
		return nil, err
	}
	if showWarning {
		for _, d := range diags {
			log.Printf("warning: %s", d)
		}
	}
	return records, nil
}

func reportDiagnostics(diags []parser.Diagnostic) {
	for _, d := range diags {
		fmt.Printf("  - %s\n", d)
	}
}
