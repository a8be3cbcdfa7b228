package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boguszjelinski/kern/lcm"
	"github.com/boguszjelinski/kern/report"
	"github.com/boguszjelinski/kern/scenario"

	"github.com/boguszjelinski/kern/pool"
)

var (
	runScenarioPath string
	runReportPath   string
	runRetSize      int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one pool search over a scenario file and print a summary",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runScenarioPath, "scenario", "s", "", "path to a scenario JSON file (required)")
	runCmd.Flags().StringVarP(&runReportPath, "report", "r", "", "if set, write a CSV report to this file or directory")
	runCmd.Flags().IntVar(&runRetSize, "ret-size", 1000, "maximum number of accepted pools to return")
	runCmd.MarkFlagRequired("scenario")
}

func runRun(c *cobra.Command, args []string) error {
	cfg, err := loadSolverConfig()
	if err != nil {
		return err
	}

	f, err := os.Open(runScenarioPath)
	if err != nil {
		return fmt.Errorf("kern: opening scenario: %w", err)
	}
	defer f.Close()

	in, err := scenario.Load(f)
	if err != nil {
		return err
	}

	res, err := pool.Dynapool(context.Background(), cfg, in, runRetSize, nil)
	if err != nil {
		return fmt.Errorf("kern: pool search failed: %w", err)
	}

	if len(res.Pools) == 0 {
		fallback := lcm.FastLCMExhaustive(in.Dist, in.Orders, in.Cabs, runRetSize)
		report.PrintFallbackReport(fallback, in)
		return nil
	}

	sum := report.Summarize(res, in)
	report.PrintConsoleReport(sum)
	if _, err := report.WriteCSVReport(runReportPath, sum); err != nil {
		return err
	}
	return nil
}
