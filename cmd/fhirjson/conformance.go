package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gofhir/models/conformance"
)

func newConformanceCmd(a *app) *cobra.Command {
	var (
		dir, tgz, cache, spec string
	)

	cmd := &cobra.Command{
		Use:   "conformance",
		Short: "Compare the built-in structure tables with a FHIR package",
		Long: `conformance loads the StructureDefinitions of a FHIR package and reports
elements whose cardinality or choice types differ from the tables this
tool decodes with. By default it reads hl7.fhir.r4.core#4.0.1 from the
local package cache (~/.fhir/packages).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				pkg *conformance.Package
				err error
			)
			switch {
			case dir != "":
				pkg, err = conformance.LoadDir(dir)
			case tgz != "":
				pkg, err = conformance.LoadTgz(tgz)
			default:
				pkg, err = conformance.LoadCached(cache, conformance.ParsePackageSpec(spec))
			}
			if err != nil {
				return err
			}
			a.log.Info("loaded %d StructureDefinitions from %s", pkg.Len(), pkg.Source)
			if len(pkg.Rejected) > 0 {
				a.log.Warn("skipped %d unreadable files in %s", len(pkg.Rejected), pkg.Source)
			}

			report := conformance.Check(pkg)
			out := cmd.OutOrStdout()
			if a.cfg.Output == OutputJSON {
				if err := writeJSON(out, report); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(out, "Compared %d structures, %d elements (%d skipped)\n",
					report.Structures, report.Elements, len(report.Skipped))
				for _, f := range report.Findings {
					fmt.Fprintf(out, "  %s\n", f)
				}
			}
			if !report.OK() {
				return errFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Unpacked package directory")
	cmd.Flags().StringVar(&tgz, "tgz", "", "Package .tgz archive")
	cmd.Flags().StringVar(&cache, "cache", "", "Package cache directory (default ~/.fhir/packages)")
	cmd.Flags().StringVar(&spec, "package", conformance.CorePackage.String(), "Package to read from the cache, as name#version")
	return cmd
}
