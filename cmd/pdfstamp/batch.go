package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfstamp/internal/ledger"
	"github.com/pdiddy/pdfstamp/internal/stamp"
	"github.com/pdiddy/pdfstamp/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Stamp every PDF in a directory or a YAML jobs file",
	Long: `Batch stamps many PDFs in one run. With --input-dir, every *.pdf in the
directory is stamped with the mode flags shared with the root command and
written to --output-dir. With --jobs, jobs and their defaults are read from
a YAML file instead and the mode flags are ignored.

With --ledger, completed runs are recorded in a SQLite database and inputs
that have not changed since their last run are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jobsFile, _ := cmd.Flags().GetString("jobs")
		inputDir, _ := cmd.Flags().GetString("input-dir")
		outputDir, _ := cmd.Flags().GetString("output-dir")
		ledgerPath, _ := cmd.Flags().GetString("ledger")

		var jobs []types.Job
		switch {
		case jobsFile != "":
			jf, err := stamp.ReadJobFile(jobsFile)
			if err != nil {
				return err
			}
			jobs = jf.ResolvedJobs()
		case inputDir != "":
			template, err := jobFromFlags(cmd)
			if err != nil {
				return err
			}
			jobs, err = stamp.DirJobs(types.BatchConfig{InputDir: inputDir, OutputDir: outputDir}, template)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: need either --jobs or --input-dir", errUsage)
		}

		var led *ledger.Ledger
		if ledgerPath != "" {
			var err error
			led, err = ledger.Open(ledgerPath)
			if err != nil {
				return err
			}
			defer led.Close()
		}

		result := stamp.RunBatch(jobs, led, os.Stdout)
		if result.HasFailures() {
			return fmt.Errorf("%d of %d jobs failed", result.Failed, result.Total())
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().String("jobs", "", "YAML jobs file (see the batch help for the format)")
	batchCmd.Flags().String("input-dir", "", "directory scanned for *.pdf inputs")
	batchCmd.Flags().String("output-dir", "", "directory stamped copies are written to (default: input dir with -stamped suffix)")
	batchCmd.Flags().String("ledger", "", "SQLite ledger path; unchanged inputs are skipped on reruns")
	addModeFlags(batchCmd)

	rootCmd.AddCommand(batchCmd)
}
