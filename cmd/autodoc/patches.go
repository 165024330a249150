package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/noahmasoud/autodoc"
	"github.com/spf13/cobra"
)

var (
	patchesRun     int
	patchesFull    bool
	patchesWorkers int
)

var patchesCmd = &cobra.Command{
	Use:   "patches",
	Short: "List the patches of a run",
	Run:   runPatches,
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect analysis runs",
}

var runsReportCmd = &cobra.Command{
	Use:   "report <run-id>",
	Short: "Show a run report",
	Args:  cobra.ExactArgs(1),
	Run:   runRunsReport,
}

func init() {
	patchesCmd.Flags().IntVar(&patchesRun, "run", 0, "run id (required)")
	patchesCmd.Flags().BoolVar(&patchesFull, "full", false, "fetch full patches to show diff stats")
	patchesCmd.Flags().IntVar(&patchesWorkers, "workers", 4, "concurrent fetches with --full")
	patchesCmd.MarkFlagRequired("run")

	runsCmd.AddCommand(runsReportCmd)
}

func runPatches(cmd *cobra.Command, args []string) {
	c := initContext()

	report, err := c.Client.RunReport(cmd.Context(), patchesRun)
	if err != nil {
		exitError("fetching run %d: %v", patchesRun, err)
	}

	if len(report.Patches) == 0 {
		fmt.Println("No patches in this run.")
		return
	}

	if !patchesFull {
		for _, brief := range report.Patches {
			printPatchBrief(brief)
		}
		return
	}

	ids := make([]int, len(report.Patches))
	for i, brief := range report.Patches {
		ids[i] = brief.ID
	}

	patches, err := autodoc.FetchPatches(cmd.Context(), c.Client, ids, patchesWorkers)
	if err != nil {
		exitError("fetching patches: %v", err)
	}

	for _, patch := range patches {
		added, removed, modified := autodoc.Stats(autodoc.DeriveLines(patch))
		statusColor(patch.Status).Printf("%-9s", patch.Status)
		fmt.Printf(" #%-5d %s ", patch.ID, patch.PagePath)
		color.New(color.FgGreen).Printf("+%d ", added)
		color.New(color.FgRed).Printf("-%d ", removed)
		color.New(color.FgYellow).Printf("~%d\n", modified)
	}
}

func runRunsReport(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		exitError("invalid run id %q", args[0])
	}

	c := initContext()

	report, err := c.Client.RunReport(cmd.Context(), id)
	if err != nil {
		exitError("fetching run %d: %v", id, err)
	}

	color.New(color.FgCyan, color.Bold).Printf("run %d", report.RunID)
	fmt.Printf("  %s", report.Status)
	fmt.Printf("  started %s", report.StartedAt.Format("2006-01-02 15:04:05"))
	if report.FinishedAt != nil {
		fmt.Printf("  finished %s", report.FinishedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Println()

	for _, brief := range report.Patches {
		printPatchBrief(brief)
	}
}

func printPatchBrief(brief autodoc.PatchBrief) {
	statusColor(brief.Status).Printf("%-9s", brief.Status)
	fmt.Printf(" #%-5d %s", brief.ID, brief.PagePath)
	if brief.Summary != "" {
		fmt.Printf("  %s", brief.Summary)
	}
	fmt.Println()
}

func statusColor(status autodoc.PatchStatus) *color.Color {
	switch status {
	case autodoc.StatusApplied:
		return color.New(color.FgGreen)
	case autodoc.StatusRejected:
		return color.New(color.FgYellow)
	case autodoc.StatusError:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgCyan)
	}
}
