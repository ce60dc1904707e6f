// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"go.yaml.in/yaml/v3"
)

// Render writes runs to w in the requested presentation: "table" (the
// default), "json" (2-space indent), or "yaml".
func Render(w io.Writer, runs []Run, presentation string) error {
	switch presentation {
	case "", "table":
		return renderTable(w, runs)
	case "json":
		if runs == nil {
			runs = []Run{}
		}
		data, err := json.MarshalIndent(runs, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(runs)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("unknown history format %q (want table, json, or yaml)", presentation)
}

func renderTable(w io.Writer, runs []Run) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTARTED\tINPUT\tOUTPUT\tOPERATIONS\tRECORDS")
	for _, r := range runs {
		ops := strings.Join(r.Operations, ",")
		if ops == "" {
			ops = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s (%s)\t%s (%s)\t%s\t%d\n",
			r.ID, r.StartedAt.Format(time.DateTime),
			r.InputPath, r.InputFormat,
			r.OutputPath, r.OutputFormat,
			ops, r.Records)
	}
	return tw.Flush()
}
