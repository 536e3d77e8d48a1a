// Package main implements fhirjson, a command line tool that decodes,
// re-encodes and checks FHIR R4 JSON documents.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	fm "github.com/gofhir/models"
	"github.com/gofhir/models/pkg/logger"
)

const version = "0.1.0"

// errFailed signals that a command ran but found invalid input. Its
// details have already been printed.
var errFailed = errors.New("one or more documents failed")

type app struct {
	v       *viper.Viper
	cfg     *Config
	log     *logger.Logger
	metrics *fm.Metrics
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), metrics: fm.NewMetrics()}

	root := &cobra.Command{
		Use:   "fhirjson",
		Short: "Decode, re-encode and check FHIR R4 JSON documents",
		Long: `fhirjson decodes FHIR R4 JSON into typed structures and reports
structural errors: missing required elements, conflicting choice members,
unknown codes and resource types.

Settings can also be given as FHIRJSON_* environment variables, e.g.
FHIRJSON_STRICT=true or FHIRJSON_OUTPUT=json.`,
		Version:       fmt.Sprintf("%s (FHIR %s)", version, fm.R4.FHIRVersionString()),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.NewConsole(cmd.ErrOrStderr(), cfg.level())
			return nil
		},
	}

	if err := bindFlags(root, a.v); err != nil {
		panic(err)
	}

	root.AddCommand(
		newDecodeCmd(a),
		newRoundtripCmd(a),
		newBundleCmd(a),
		newInvariantsCmd(a),
		newConformanceCmd(a),
		newTypesCmd(a),
	)
	return root
}

func (a *app) decoder() (*fm.Decoder, error) {
	return fm.NewDecoder(
		fm.WithStrict(a.cfg.Strict),
		fm.WithModifierCheck(a.cfg.CheckModifiers),
		fm.WithUnderstoodModifiers(a.cfg.Modifiers...),
		fm.WithWorkerCount(a.cfg.Workers),
		fm.WithLogger(a.log),
		fm.WithMetrics(a.metrics),
	)
}
