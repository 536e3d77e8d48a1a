package main

import (
	"time"

	"github.com/spf13/cobra"

	fm "github.com/gofhir/models"
	"github.com/gofhir/models/conformance"
	"github.com/gofhir/models/invariant"
)

func newInvariantsCmd(a *app) *cobra.Command {
	var (
		profiles   []string
		noBuiltins bool
	)

	cmd := &cobra.Command{
		Use:   "invariants [file...]",
		Short: "Decode documents and check FHIRPath invariants",
		Long: `invariants decodes each document and, when it is structurally valid,
evaluates the built-in R4 invariants (obs-6, pat-1, bdl-2, ...) plus those
of any --profile StructureDefinition.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			dec, err := a.decoder()
			if err != nil {
				return err
			}

			opts := []invariant.Option{invariant.WithLogger(a.log)}
			if noBuiltins {
				opts = append(opts, invariant.WithoutBuiltins())
			}
			for _, path := range profiles {
				pkg, err := conformance.LoadFile(path)
				if err != nil {
					return err
				}
				for _, sd := range pkg.Definitions() {
					opts = append(opts, invariant.WithInvariants(invariant.FromStructureDefinition(sd)...))
				}
			}
			checker := invariant.NewChecker(opts...)

			ctx := cmd.Context()
			reports := make([]documentReport, 0, len(inputs))
			for _, in := range inputs {
				start := time.Now()
				var r *fm.Result
				if _, err := dec.Decode(ctx, in.data); err != nil {
					r = fm.ResultFromError(err)
					r.ResourceType, _ = fm.ResourceType(in.data)
				} else {
					r = checker.Check(ctx, in.data)
				}
				reports = append(reports, newDocumentReport(in.name, r, time.Since(start)))
			}

			failed, err := a.emit(cmd.OutOrStdout(), reports)
			if err != nil {
				return err
			}
			if failed {
				return errFailed
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&profiles, "profile", nil, "StructureDefinition file whose constraints are added (repeatable)")
	cmd.Flags().BoolVar(&noBuiltins, "no-builtins", false, "Skip the built-in invariants")
	return cmd
}
