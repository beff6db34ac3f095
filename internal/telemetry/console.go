package telemetry

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

var bannerFields = map[string]struct{}{
	"timestamp": {},
	"host":      {},
	"category":  {},
	"type":      {},
}

// RenderText writes a human-readable report grouped by category. Each
// category gets a banner, each record prints its populated fields one
// per line, and records within a category are separated by a rule.
func RenderText(w io.Writer, records []Record) error {
	byCategory := make(map[Category][]Record)
	for _, rec := range records {
		byCategory[rec.Category] = append(byCategory[rec.Category], rec)
	}

	for _, cat := range AllCategories {
		group := byCategory[cat]
		if len(group) == 0 {
			continue
		}

		title := fmt.Sprintf(" %s TELEMETRY ", strings.ToUpper(string(cat)))
		if _, err := fmt.Fprintf(w, "\n%s\n%s\n%s\n",
			strings.Repeat("=", 60), title, strings.Repeat("=", 60)); err != nil {
			return err
		}

		for i, rec := range group {
			if i > 0 {
				if _, err := fmt.Fprintln(w, strings.Repeat("-", 40)); err != nil {
					return err
				}
			}
			if err := renderRecord(w, rec); err != nil {
				return err
			}
		}
	}

	return nil
}

func renderRecord(w io.Writer, rec Record) error {
	row, err := flattenRecord(rec)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "type: %s\n", rec.Type); err != nil {
		return err
	}

	keys := make([]string, 0, len(row))
	for k := range row {
		if _, skip := bannerFields[k]; skip {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s: %s\n", k, row[k]); err != nil {
			return err
		}
	}

	return nil
}
