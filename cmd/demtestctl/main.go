// Package main provides the CLI for inspecting recorded test sessions.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JoeLucas99/DemTestFinal3/results"
	"github.com/JoeLucas99/DemTestFinal3/settings"
)

var (
	sessionsLast int

	summarySession int64

	exportSession int64
	exportOut     string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "demtestctl",
		Short:         "Inspect and export line orientation test results",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.AddCommand(newSessionsCmd())
	rootCmd.AddCommand(newSummaryCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

func newSessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List recorded sessions",
		Args:  cobra.NoArgs,
		RunE:  runSessionsCmd,
	}
	cmd.Flags().IntVar(&sessionsLast, "last", 0, "limit to last N sessions")
	return cmd
}

func runSessionsCmd(cmd *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	recs, err := st.ListSessions(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	if sessionsLast > 0 && len(recs) > sessionsLast {
		recs = recs[:sessionsLast]
	}
	if len(recs) == 0 {
		logErrln("no sessions recorded yet")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tENDED\tTRIALS\tCORRECT\tVARIANT\tVARIANCE")
	for _, rec := range recs {
		pct := 0.0
		if rec.TrialCount > 0 {
			pct = float64(rec.CorrectCount) / float64(rec.TrialCount) * 100
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d (%.0f%%)\t%s\t%.1f\n",
			rec.ID,
			rec.EndedAt.Local().Format("2006-01-02 15:04"),
			rec.TrialCount,
			rec.CorrectCount, pct,
			rec.Profile,
			rec.DegreeVariance,
		)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize one session",
		Args:  cobra.NoArgs,
		RunE:  runSummaryCmd,
	}
	cmd.Flags().Int64Var(&summarySession, "session", 0, "session id (see 'sessions')")
	return cmd
}

func runSummaryCmd(cmd *cobra.Command, _ []string) error {
	if summarySession <= 0 {
		return fmt.Errorf("--session must be a positive id")
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	ctx := context.Background()
	rec, err := st.GetSession(ctx, summarySession)
	if err != nil {
		return err
	}
	trials, err := st.ListTrials(ctx, summarySession)
	if err != nil {
		return err
	}
	sum := results.Summarize(trials)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "session %d, ended %s\n", rec.ID, rec.EndedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(out, "variant %s, variance %.1f, %d lines per board\n",
		rec.Profile, rec.DegreeVariance, rec.AnglesPerQuadrant*4)
	fmt.Fprintf(out, "correct: %d of %d (%.0f%%)\n", sum.Correct, sum.Trials, sum.Accuracy*100)
	fmt.Fprintf(out, "median time: %.2f s, mean time: %.2f s\n",
		float64(sum.MedianMs)/1000, float64(sum.MeanMs)/1000)
	fmt.Fprintf(out, "mean orientation error: %.1f degrees\n", sum.MeanErrorDeg)
	return nil
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export one session as CSV",
		Args:  cobra.NoArgs,
		RunE:  runExportCmd,
	}
	cmd.Flags().Int64Var(&exportSession, "session", 0, "session id (see 'sessions')")
	cmd.Flags().StringVar(&exportOut, "out", "", "output file (default: stdout)")
	return cmd
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	if exportSession <= 0 {
		return fmt.Errorf("--session must be a positive id")
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	ctx := context.Background()
	rec, err := st.GetSession(ctx, exportSession)
	if err != nil {
		return err
	}
	trials, err := st.ListTrials(ctx, exportSession)
	if err != nil {
		return err
	}

	if exportOut == "" {
		return results.WriteCSV(cmd.OutOrStdout(), rec, trials)
	}
	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", exportOut, err)
	}
	if err := results.WriteCSV(f, rec, trials); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", exportOut, err)
	}
	logErrf("wrote %s\n", exportOut)
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := settings.DefaultConfigPath()
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := settings.Save(path, settings.DefaultConfig()); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func openStore() (*results.Store, error) {
	st, err := results.Open(settings.DefaultDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeStore(st *results.Store) {
	if err := st.Close(); err != nil {
		logErrf("failed to close db: %v\n", err)
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
