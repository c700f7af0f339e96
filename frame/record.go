// Package frame normalizes heterogeneous tag frames into a uniform
// {id, values} shape suitable for sorted display.
package frame

import "sort"

// Record is the normalized unit of display: a field identifier and its
// ordered values. ID is never empty; Values may be.
type Record struct {
	ID     string
	Values []string
}

// SortRecords orders records ascending by ID using ordinal comparison.
// The sort is stable, so ID3v2 frames sharing an identifier keep the
// order the parser returned them in.
func SortRecords(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})
}

// FromXiph normalizes a Xiph field map. Map keys are inherently distinct,
// so a field name appearing multiple times in the source collapses to a
// single record; its values are passed through untouched, including the
// legitimately empty case.
func FromXiph(fields map[string][]string) []Record {
	records := make([]Record, 0, len(fields))
	for name, values := range fields {
		records = append(records, Record{ID: name, Values: values})
	}
	return records
}
