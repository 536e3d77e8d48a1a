package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	fm "github.com/gofhir/models"
)

// documentReport is the JSON form of one checked document.
type documentReport struct {
	Source       string     `json:"source"`
	ResourceType string     `json:"resourceType,omitempty"`
	Valid        bool       `json:"valid"`
	Errors       int        `json:"errors"`
	Warnings     int        `json:"warnings"`
	Issues       []fm.Issue `json:"issues,omitempty"`
	Duration     string     `json:"duration,omitempty"`

	result *fm.Result
}

func newDocumentReport(source string, r *fm.Result, d time.Duration) documentReport {
	r.Source = source
	rep := documentReport{
		Source:       source,
		ResourceType: r.ResourceType,
		Valid:        r.Valid,
		Errors:       r.ErrorCount(),
		Warnings:     r.WarningCount(),
		Issues:       r.Issues,
		result:       r,
	}
	if d > 0 {
		rep.Duration = d.Round(time.Microsecond).String()
	}
	return rep
}

func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func printReport(w io.Writer, rep documentReport) {
	status := "VALID"
	if !rep.Valid {
		status = "INVALID"
	}

	fmt.Fprintf(w, "== %s ==\n", rep.Source)
	if rep.ResourceType != "" {
		fmt.Fprintf(w, "Type: %s\n", rep.ResourceType)
	}
	fmt.Fprintf(w, "Status: %s\n", status)
	fmt.Fprintf(w, "Errors: %d, Warnings: %d\n", rep.Errors, rep.Warnings)
	if rep.Duration != "" {
		fmt.Fprintf(w, "Duration: %s\n", rep.Duration)
	}
	printIssues(w, "  ", rep.Issues)
	fmt.Fprintln(w)
}

func printIssues(w io.Writer, indent string, issues []fm.Issue) {
	for _, iss := range issues {
		location := ""
		if len(iss.Expression) > 0 {
			location = " @ " + strings.Join(iss.Expression, ", ")
		}
		fmt.Fprintf(w, "%s%s [%s] %s%s\n", indent, severityLabel(iss.Severity), iss.Code, iss.Diagnostics, location)
	}
}

func severityLabel(s fm.IssueSeverity) string {
	switch s {
	case fm.SeverityFatal:
		return "FATAL"
	case fm.SeverityError:
		return "ERROR"
	case fm.SeverityWarning:
		return "WARN "
	case fm.SeverityInformation:
		return "INFO "
	default:
		return "     "
	}
}

// emit writes reports in the configured format and reports whether any of
// them is invalid.
func (a *app) emit(w io.Writer, reports []documentReport) (bool, error) {
	failed := false
	for _, rep := range reports {
		if !rep.Valid {
			failed = true
		}
	}

	switch a.cfg.Output {
	case OutputJSON:
		return failed, writeJSON(w, reports)
	case OutputOutcome:
		for _, rep := range reports {
			if _, err := fmt.Fprintln(w, string(fm.Encode(rep.result.OperationOutcome()))); err != nil {
				return failed, err
			}
		}
		return failed, nil
	}
	for _, rep := range reports {
		printReport(w, rep)
	}
	return failed, nil
}
