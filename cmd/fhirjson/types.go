package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gofhir/models/r4"
)

type choiceInfo struct {
	Path     string   `json:"path"`
	Required bool     `json:"required"`
	Types    []string `json:"types"`
}

func newTypesCmd(a *app) *cobra.Command {
	var resources, choices bool

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the structures and choice elements this tool knows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if choices {
				var list []choiceInfo
				for _, def := range r4.Definitions() {
					for _, el := range def.Elements {
						if el.Choice == nil {
							continue
						}
						list = append(list, choiceInfo{
							Path:     def.Path + "." + el.Name,
							Required: el.Required(),
							Types:    el.Types,
						})
					}
				}
				if a.cfg.Output == OutputJSON {
					return writeJSON(out, list)
				}
				for _, c := range list {
					req := ""
					if c.Required {
						req = " (required)"
					}
					fmt.Fprintf(out, "%s%s: %s\n", c.Path, req, strings.Join(c.Types, " | "))
				}
				return nil
			}

			names := r4.StructureNames()
			if resources {
				names = r4.ResourceTypes()
			}
			if a.cfg.Output == OutputJSON {
				return writeJSON(out, names)
			}
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&resources, "resources", false, "List resource types only")
	cmd.Flags().BoolVar(&choices, "choices", false, "List choice elements and their types")
	return cmd
}
