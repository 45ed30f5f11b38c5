package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"adcopy/internal/usecase"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newCleanupCommand(ctx *commandContext) *cobra.Command {
	cleanupCmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Find and remove stale temp files and bucket objects",
	}

	cleanupCmd.AddCommand(newCleanupScanCommand(ctx))
	cleanupCmd.AddCommand(newCleanupRunCommand(ctx))

	return cleanupCmd
}

type scanResult struct {
	TempFiles []string `json:"temp_files"`
	Objects   []string `json:"objects"`
}

func newCleanupScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "List stale files without deleting them",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cleanup usecase.CleanupUsecase
			return withComponents(cmd.Context(), func(c context.Context) error {
				files, err := cleanup.ScanTempFiles(c)
				if err != nil {
					return err
				}
				objects, err := cleanup.ScanObjects(c)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if ctx.jsonOutput {
					return ctx.printJSON(out, scanResult{TempFiles: files, Objects: objects})
				}
				printScan(out, files, objects)
				return nil
			}, &cleanup)
		},
	}
}

func printScan(out io.Writer, files, objects []string) {
	if len(files) == 0 && len(objects) == 0 {
		fmt.Fprintln(out, "Nothing to clean up")
		return
	}

	rows := make([][]string, 0, len(files)+len(objects))
	for _, f := range files {
		rows = append(rows, []string{"temp", filepath.Base(f), f})
	}
	for _, key := range objects {
		rows = append(rows, []string{"object", filepath.Base(key), key})
	}
	fmt.Fprintln(out, renderTable([]string{"Kind", "Name", "Location"}, rows, nil))
	fmt.Fprintf(out, "%s stale temp files, %s stale objects\n",
		humanize.Comma(int64(len(files))), humanize.Comma(int64(len(objects))))
}

func newCleanupRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Delete stale temp files and bucket objects",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cleanup usecase.CleanupUsecase
			return withComponents(cmd.Context(), func(c context.Context) error {
				report := cleanup.PerformCleanup(c)

				out := cmd.OutOrStdout()
				if ctx.jsonOutput {
					return ctx.printJSON(out, report)
				}
				printCleanupReport(out, report)
				return nil
			}, &cleanup)
		},
	}
}

func printCleanupReport(out io.Writer, report *usecase.CleanupReport) {
	rows := [][]string{
		reportRow("temp files", report.TempFiles),
		reportRow("objects", report.Objects),
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Domain", "Scanned", "Deleted", "Failed", "Scan error"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft},
	))

	failures := make([][]string, 0)
	for _, domain := range []usecase.DeletionReport{report.TempFiles, report.Objects} {
		for _, outcome := range domain.Outcomes {
			if !outcome.Deleted {
				failures = append(failures, []string{outcome.Target, outcome.Error})
			}
		}
	}
	if len(failures) > 0 {
		fmt.Fprintln(out, renderTable([]string{"Target", "Error"}, failures, nil))
	}

	fmt.Fprintf(out, "Finished in %s\n", report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond))
}

func reportRow(name string, r usecase.DeletionReport) []string {
	return []string{
		name,
		strconv.Itoa(r.Scanned),
		strconv.Itoa(r.Deleted),
		strconv.Itoa(r.Failed),
		r.ScanErr,
	}
}
