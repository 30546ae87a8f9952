package entity

import (
	"sort"
	"strconv"
)

// Tabular is implemented by reports that can be rendered as a table or exported.
type Tabular interface {
	Title() string
	Header() []string
	Rows() [][]string
	Total() int
}

func refRows(refs []EntityRef) [][]string {
	rows := make([][]string, 0, len(refs))
	for _, r := range refs {
		rows = append(rows, []string{r.Name, r.ID})
	}
	return rows
}

// countRows ordena por contagem decrescente e depois por chave.
func countRows(counts map[string]int) [][]string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, strconv.Itoa(counts[k])})
	}
	return rows
}

func (r CustomerReport) Title() string {
	if r.WithProperties {
		return "Customers with properties"
	}
	return "Customers without properties"
}

func (r CustomerReport) Header() []string { return []string{"Customer", "ID"} }
func (r CustomerReport) Rows() [][]string { return refRows(r.Customers) }
func (r CustomerReport) Total() int { return r.TotalCount }

func (r PropertyReport) Title() string {
	return "Properties with more than " + strconv.Itoa(r.Threshold) + " addresses"
}

func (r PropertyReport) Header() []string { return []string{"Property", "ID"} }
func (r PropertyReport) Rows() [][]string { return refRows(r.Properties) }
func (r PropertyReport) Total() int { return r.TotalCount }

func (r AssetMakeReport) Title() string { return "Assets per make" }
func (r AssetMakeReport) Header() []string { return []string{"Make", "Assets"} }
func (r AssetMakeReport) Total() int { return r.TotalCount }

// Rows labels assets without a make as "(unspecified)".
func (r AssetMakeReport) Rows() [][]string {
	rows := countRows(r.AssetMakeCounts)
	for _, row := range rows {
		if row[0] == "" {
			row[0] = "(unspecified)"
		}
	}
	return rows
}

func (r AssetMakeCatalog) Title() string { return "Asset makes" }
func (r AssetMakeCatalog) Header() []string { return []string{"Make"} }
func (r AssetMakeCatalog) Total() int { return r.TotalCount }

func (r AssetMakeCatalog) Rows() [][]string {
	rows := make([][]string, 0, len(r.AssetMakes))
	for _, name := range r.AssetMakes {
		rows = append(rows, []string{name})
	}
	return rows
}

func (r VendorDuplicateReport) Title() string { return "Vendors with duplicate names" }
func (r VendorDuplicateReport) Header() []string { return []string{"Vendor", "Occurrences"} }
func (r VendorDuplicateReport) Rows() [][]string { return countRows(r.Vendors) }
func (r VendorDuplicateReport) Total() int { return r.TotalCount }
