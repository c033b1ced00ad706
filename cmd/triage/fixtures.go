package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/estateops/triage/internal/core/domain"
	"github.com/estateops/triage/internal/fixtures"
)

var (
	fixturesRun  string
	fixturesJSON bool
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "List or run the built-in sample documents",
	Long: `Without flags, lists the bundled sample estate documents. With --run,
processes one (or "all") through the pipeline and reports whether the
outcome matches the fixture's expectations.`,
	Run: func(cmd *cobra.Command, args []string) {
		if fixturesRun == "" {
			listFixtures()
			return
		}
		runFixtures(fixturesRun)
	},
}

func listFixtures() {
	fmt.Printf("%-28s %-22s %s\n", "NAME", "EXPECTED CATEGORY", "SHOULD FAIL")
	for _, f := range fixtures.All() {
		shouldFail := "no"
		if f.ShouldFail {
			shouldFail = "yes"
		}
		fmt.Printf("%-28s %-22s %s\n", f.Name, f.ExpectedCategory.Label(), shouldFail)
	}
}

func runFixtures(name string) {
	var toRun []fixtures.Fixture
	if name == "all" {
		toRun = fixtures.All()
	} else {
		f, ok := fixtures.ByName(name)
		if !ok {
			fatal("unknown fixture", fmt.Errorf("%q (use 'fixtures' with no flags to list)", name))
		}
		toRun = []fixtures.Fixture{f}
	}

	pipeline, err := newPipeline()
	if err != nil {
		fatal("initialize pipeline", err)
	}

	var results []domain.ProcessingResult
	passed := 0
	for _, f := range toRun {
		result := pipeline.Process(context.Background(), f.Document)
		results = append(results, result)

		ok := result.Classification != nil &&
			result.Classification.Category == f.ExpectedCategory &&
			result.Compliance != nil &&
			result.Compliance.Compliant != f.ShouldFail
		if ok {
			passed++
		}

		if !fixturesJSON {
			marker := "PASS"
			if !ok {
				marker = "FAIL"
			}
			fmt.Printf("[%s] %s\n", marker, f.Name)
			printResult(result)
			fmt.Println()
		}
	}

	if fixturesJSON {
		printJSON(results)
		return
	}
	fmt.Printf("%d/%d fixtures matched expectations\n", passed, len(toRun))
}

func init() {
	fixturesCmd.Flags().StringVar(&fixturesRun, "run", "", `Fixture name to process, or "all"`)
	fixturesCmd.Flags().BoolVar(&fixturesJSON, "json", false, "Output results as JSON")
	rootCmd.AddCommand(fixturesCmd)
}
