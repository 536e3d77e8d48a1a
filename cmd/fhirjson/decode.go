package main

import (
	"bytes"
	"fmt"
	"reflect"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	fm "github.com/gofhir/models"
	"github.com/gofhir/models/worker"
)

func newDecodeCmd(a *app) *cobra.Command {
	var stats bool

	cmd := &cobra.Command{
		Use:   "decode [file...]",
		Short: "Decode documents and report structural errors",
		Example: `  fhirjson decode patient.json
  fhirjson decode --strict -o json bundles/*.json
  cat observation.json | fhirjson decode -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			dec, err := a.decoder()
			if err != nil {
				return err
			}

			docs := make([][]byte, len(inputs))
			for i, in := range inputs {
				docs[i] = in.data
			}
			batch := worker.NewBatchDecoder(dec.Decode, a.cfg.Workers).DecodeBatch(cmd.Context(), docs)
			a.log.Debug("decoded %d documents, %d failed", batch.TotalJobs, batch.FailedJobs)

			reports := make([]documentReport, len(batch.Results))
			for i, res := range batch.Results {
				var r *fm.Result
				if res.Error != nil {
					r = fm.ResultFromError(res.Error)
					r.ResourceType, _ = fm.ResourceType(inputs[i].data)
				} else {
					r = fm.NewResult()
					r.ResourceType = res.Resource.StructureName()
				}
				reports[i] = newDocumentReport(inputs[i].name, r, res.Duration)
			}

			failed, err := a.emit(cmd.OutOrStdout(), reports)
			if err != nil {
				return err
			}
			if stats {
				if err := writeJSON(cmd.ErrOrStderr(), a.metrics.Snapshot()); err != nil {
					return err
				}
			}
			if failed {
				return errFailed
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&stats, "stats", false, "Print decode metrics to stderr")
	return cmd
}

func newRoundtripCmd(a *app) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "roundtrip [file...]",
		Short: "Decode documents and print them re-encoded",
		Long: `roundtrip decodes each document and writes its canonical encoding,
one document per line. With --check it also verifies that the encoding
decodes back to the same value and matches the input modulo member order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			dec, err := a.decoder()
			if err != nil {
				return err
			}

			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			failed := false
			for _, in := range inputs {
				v, err := dec.Decode(cmd.Context(), in.data)
				if err != nil {
					fmt.Fprintf(errOut, "%s: %v\n", in.name, err)
					failed = true
					continue
				}
				encoded := dec.Encode(v)
				fmt.Fprintln(out, string(encoded))

				if !check {
					continue
				}
				if err := verifyRoundtrip(cmd, dec, in.data, encoded); err != nil {
					fmt.Fprintf(errOut, "%s: %v\n", in.name, err)
					failed = true
				}
			}
			if failed {
				return errFailed
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "Verify the encoding is stable and equivalent to the input")
	return cmd
}

func verifyRoundtrip(cmd *cobra.Command, dec *fm.Decoder, original, encoded []byte) error {
	again, err := dec.Decode(cmd.Context(), encoded)
	if err != nil {
		return fmt.Errorf("re-decode: %w", err)
	}
	if !bytes.Equal(dec.Encode(again), encoded) {
		return fmt.Errorf("encoding is not stable")
	}

	var want, got any
	if err := json.Unmarshal(original, &want); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	if err := json.Unmarshal(encoded, &got); err != nil {
		return fmt.Errorf("parse output: %w", err)
	}
	if !reflect.DeepEqual(want, got) {
		return fmt.Errorf("encoding differs from input")
	}
	return nil
}
