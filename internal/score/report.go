package score

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/ppiankov/precedence/internal/model"
)

// RenderTSV writes the report rows as tab-separated values with a header
func RenderTSV(w io.Writer, rows []model.Row) error {
	if _, err := fmt.Fprintln(w, "sieve\trule\tprecision\trecall\tf1\ttp\tfp\tfn"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%.4f\t%.4f\t%.4f\t%d\t%d\t%d\n",
			r.Sieve, r.Rule, r.Precision, r.Recall, r.F1, r.TP, r.FP, r.FN); err != nil {
			return err
		}
	}
	return nil
}

// RenderTable writes the rows aligned for terminal reading
func RenderTable(w io.Writer, rows []model.Row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := RenderTSV(tw, rows); err != nil {
		return err
	}
	return tw.Flush()
}

// RenderJSON writes the full report to path
func RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
