package telemetry

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/errors"
)

// ToJSON renders records as an indented JSON array. An empty slice
// renders as [] rather than null.
func ToJSON(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, errors.New().Wrap(errors.ErrExport, err)
	}

	return out, nil
}

// ToCSV renders records as CSV with a union header. Every key present
// in any record contributes a column; records missing a key leave the
// cell empty. Nested objects flatten with "_" joining the path and
// list values are embedded as JSON.
func ToCSV(records []Record) ([]byte, error) {
	flat := make([]map[string]string, 0, len(records))
	seen := make(map[string]struct{})

	for _, rec := range records {
		row, err := flattenRecord(rec)
		if err != nil {
			return nil, err
		}
		for k := range row {
			seen[k] = struct{}{}
		}
		flat = append(flat, row)
	}

	header := make([]string, 0, len(seen))
	for k := range seen {
		header = append(header, k)
	}
	sort.Strings(header)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, errors.New().Wrap(errors.ErrExport, err)
	}
	for _, row := range flat {
		line := make([]string, len(header))
		for i, k := range header {
			line[i] = row[k]
		}
		if err := w.Write(line); err != nil {
			return nil, errors.New().Wrap(errors.ErrExport, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.New().Wrap(errors.ErrExport, err)
	}

	return buf.Bytes(), nil
}

// flattenRecord reduces a record to a single-level key/value map via
// its JSON form, so column names track the serialized field names.
func flattenRecord(rec Record) (map[string]string, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.New().Wrap(errors.ErrExport, err)
	}

	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, errors.New().Wrap(errors.ErrExport, err)
	}

	out := make(map[string]string)
	flattenInto(out, "", tree)

	return out, nil
}

func flattenInto(out map[string]string, prefix string, tree map[string]any) {
	for key, val := range tree {
		name := key
		if prefix != "" {
			name = prefix + "_" + key
		}

		switch t := val.(type) {
		case nil:
			// Absent readings contribute no cell.
		case map[string]any:
			flattenInto(out, name, t)
		case []any:
			enc, err := json.Marshal(t)
			if err != nil {
				out[name] = fmt.Sprint(t)
				continue
			}
			out[name] = string(enc)
		case float64:
			out[name] = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			out[name] = strconv.FormatBool(t)
		case string:
			out[name] = t
		default:
			out[name] = fmt.Sprint(t)
		}
	}
}

// WriteJSONFile exports records to path as indented JSON.
func WriteJSONFile(path string, records []Record) error {
	out, err := ToJSON(records)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return errors.New().Wrap(errors.ErrExport, err).WithData(path)
	}

	return nil
}

// WriteCSVFile exports records to path as CSV.
func WriteCSVFile(path string, records []Record) error {
	out, err := ToCSV(records)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return errors.New().Wrap(errors.ErrExport, err).WithData(path)
	}

	return nil
}
