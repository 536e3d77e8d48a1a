package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	fm "github.com/gofhir/models"
	"github.com/gofhir/models/invariant"
	"github.com/gofhir/models/stream"
)

type bundleReport struct {
	Source            string             `json:"source"`
	TotalEntries      int                `json:"totalEntries"`
	EntriesWithErrors int                `json:"entriesWithErrors"`
	ResourceTypes     map[string]int     `json:"resourceTypes"`
	Errors            []string           `json:"errors,omitempty"`
	Issues            map[int][]fm.Issue `json:"issues,omitempty"`
}

func newBundleCmd(a *app) *cobra.Command {
	var (
		parallel   bool
		invariants bool
	)

	cmd := &cobra.Command{
		Use:   "bundle [file]",
		Short: "Decode the entries of a Bundle one at a time",
		Long: `bundle streams the entries of a Bundle and decodes each one on its
own, so one broken entry does not hide the others. With --parallel the
bundle is read fully and its entries are decoded by --workers goroutines.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, name := cmd.InOrStdin(), "stdin"
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open bundle: %w", err)
				}
				defer f.Close()
				src, name = f, args[0]
			}

			dec, err := a.decoder()
			if err != nil {
				return err
			}
			bd := stream.NewBundleDecoder(dec).WithWorkerCount(a.cfg.Workers)

			var checker *invariant.Checker
			if invariants {
				checker = invariant.NewChecker(invariant.WithLogger(a.log))
			}

			ctx := cmd.Context()
			var results <-chan *stream.EntryResult
			if parallel {
				results = bd.DecodeStreamParallel(ctx, src)
			} else {
				results = bd.DecodeStream(ctx, src)
			}

			// Aggregate consumes a channel; entries pass through it after
			// the optional invariant pass.
			checked := make(chan *stream.EntryResult)
			extra := make(map[int]*fm.Result)
			go func() {
				defer close(checked)
				for res := range results {
					if checker != nil && res.Error == nil && res.Resource() != nil {
						if r := checker.CheckResource(ctx, res.Resource()); len(r.Issues) > 0 {
							extra[res.Index] = r
						}
					}
					checked <- res
				}
			}()
			agg := stream.Aggregate(checked)

			rep := bundleReport{
				Source:            name,
				TotalEntries:      agg.TotalEntries,
				EntriesWithErrors: agg.EntriesWithErrors,
				ResourceTypes:     agg.ResourceTypes,
				Issues:            agg.Issues,
			}
			for _, err := range agg.ProcessingErrors {
				rep.Errors = append(rep.Errors, err.Error())
			}
			failed := agg.HasErrors()
			for i, inv := range extra {
				entry := fm.NewResult()
				entry.AddIssues(rep.Issues[i])
				entry.Merge(inv)
				rep.Issues[i] = entry.Issues
				if entry.HasErrors() {
					failed = true
				}
			}

			out := cmd.OutOrStdout()
			if a.cfg.Output == OutputJSON {
				if err := writeJSON(out, rep); err != nil {
					return err
				}
			} else {
				printBundleReport(out, rep, agg.Summary())
			}
			if failed {
				return errFailed
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&parallel, "parallel", false, "Decode entries in parallel")
	cmd.Flags().BoolVar(&invariants, "invariants", false, "Also check built-in invariants on each entry")
	return cmd
}

func printBundleReport(w io.Writer, rep bundleReport, summary string) {
	fmt.Fprintf(w, "== %s ==\n", rep.Source)
	fmt.Fprintln(w, summary)
	for _, e := range rep.Errors {
		fmt.Fprintf(w, "  FATAL %s\n", e)
	}

	indexes := make([]int, 0, len(rep.Issues))
	for i := range rep.Issues {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)
	for _, i := range indexes {
		fmt.Fprintf(w, "entry[%d]:\n", i)
		printIssues(w, "  ", rep.Issues[i])
	}
}
