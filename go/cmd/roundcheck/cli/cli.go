/*
Copyright 2026 The Roundcheck Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package cli holds the roundcheck command definition.
package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/sjmudd/stopwatch"
	"github.com/spf13/cobra"

	"github.com/roundcheck/roundcheck/go/audit"
	"github.com/roundcheck/roundcheck/go/decimal"
	"github.com/roundcheck/roundcheck/go/log"
)

const (
	defaultDepth = 6
	maxDepth     = 15
)

var (
	verbose  bool
	negative bool
	workers  int
	policy   = policyFlag{mode: decimal.ToNearestAway}

	Main = &cobra.Command{
		Use:   "roundcheck [flags] [depth]",
		Short: "roundcheck audits fixed-precision float64 formatting against a naive decimal rounding reference.",
		Long: "`roundcheck` compares, for every depth from 0 up to the given number of fractional digits,\n" +
			"the output of the standard fixed-precision formatter with the output of a naive decimal\n" +
			"rounding of the value's exact decimal expansion, and reports every disagreement.\n\n" +
			"A discrepancy is a finding, not a failure: the exit status is zero whenever the audit completes.",
		Example: `roundcheck 4
roundcheck --verbose --policy half-even 8
roundcheck -n 6`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
		PostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
	}
)

// policyFlag binds a decimal.RoundingMode to a pflag value.
type policyFlag struct {
	mode decimal.RoundingMode
}

func (p *policyFlag) Set(s string) error {
	switch s {
	case decimal.ToNearestAway.String():
		p.mode = decimal.ToNearestAway
	case decimal.ToNearestEven.String():
		p.mode = decimal.ToNearestEven
	default:
		return fmt.Errorf("invalid policy %q: expected half-up or half-even", s)
	}
	return nil
}

func (p *policyFlag) String() string {
	return p.mode.String()
}

func (p *policyFlag) Type() string {
	return "string"
}

func run(cmd *cobra.Command, args []string) error {
	depth := defaultDepth
	if len(args) == 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 0 || parsed > maxDepth {
			return fmt.Errorf("invalid depth %q: expected an integer in [0, %d]", args[0], maxDepth)
		}
		depth = parsed
	}

	out := cmd.OutOrStdout()
	opts := audit.Options{
		MaxDepth: depth,
		Negative: negative,
		Mode:     policy.mode,
		Workers:  workers,
	}
	if verbose {
		fmt.Fprintln(out, "'value' :'depth': 'display-rounded' <> 'reference'")
		opts.Observe = func(d audit.Discrepancy) {
			fmt.Fprintf(out, "%-10s :%d: %s <> %s\n", d.Candidate.Text, d.Depth, d.Display, d.Reference)
		}
	}

	log.Infof("auditing depths 0-%d (negative=%v policy=%v workers=%d)", depth, negative, policy.mode, workers)

	timings := stopwatch.NewNamedStopwatch()
	timings.AddMany([]string{"audit"})
	timings.Start("audit")
	report, err := audit.Run(cmd.Context(), opts)
	timings.Stop("audit")
	if err != nil {
		return err
	}

	if err := renderSummary(out, report, depth); err != nil {
		return err
	}
	fmt.Fprintf(out, "elapsed time: %.3f s\n", timings.Elapsed("audit").Seconds())
	return nil
}

// renderSummary prints the per-depth table and the final ratio line.
func renderSummary(out io.Writer, report *audit.Report, depth int) error {
	fmt.Fprintln(out)
	table := tablewriter.NewWriter(out)
	table.Header("Depth", "Comparisons", "Mismatches")
	for _, tally := range report.Tallies {
		row := []string{strconv.Itoa(tally.Depth), humanize.Comma(tally.Total), humanize.Comma(tally.Mismatches)}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n=> %s / %s mismatch(es) for depth 0-%d, so %.2f %%\n",
		humanize.Comma(report.Mismatches()), humanize.Comma(report.Total()), depth, 100*report.Ratio())
	return nil
}

func init() {
	Main.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every discrepancy found.")
	Main.Flags().BoolVarP(&negative, "negative", "n", false, "Audit negated candidate values instead of positive ones.")
	Main.Flags().Var(&policy, "policy", "Tie-breaking policy of the reference rounder: half-up or half-even.")
	Main.Flags().IntVar(&workers, "workers", 1, "Number of depths audited concurrently; 1 keeps the serial reference behavior.")
	log.RegisterFlags(Main.PersistentFlags())
}
