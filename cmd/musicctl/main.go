// Command musicctl is the operator-facing entry point for a co-simulation
// job: it resolves configuration and reports a short summary table of the
// job. It does not launch or run any program.
package main

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/xid"
	"github.com/sarchlab/music/config"
	"github.com/sarchlab/music/musicerr"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		musicerr.Abort(err)
	}
	atexit.Exit(0)
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "musicctl",
		Short: "Inspect co-simulation job configurations",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a job configuration file (optional)")

	root.AddCommand(newRunCmd(&configPath))
	return root
}

func newRunCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Resolve one job's configuration and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			jobID := xid.New()
			start := time.Now()

			summary := runJob(*configPath)

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Job", "Programs", "Ticks", "Elapsed"})
			t.AppendRow(table.Row{jobID.String(), summary.programs, summary.ticks, time.Since(start)})
			t.Render()

			return nil
		},
	}
}

type jobSummary struct {
	programs int
	ticks    int
}

// runJob reads the "programs" count from configPath (2 when no file is
// given or the value is absent or zero) and returns it with a tick count
// of zero. It
// does not start, fork or run any program.
func runJob(configPath string) jobSummary {
	lookup := config.Lookup(config.Static{})
	if configPath != "" {
		fileLookup, err := config.FromFile(configPath)
		if err != nil {
			musicerr.Abort(err)
		}
		lookup = fileLookup
	}

	programs, _ := lookup.Int("programs")
	if programs == 0 {
		programs = 2
	}

	return jobSummary{programs: programs, ticks: 0}
}
