package audit

import (
	"github.com/diillson/buildops-audit-go/internal/domain/entity"
)

// DuplicateNames counts names that occur more than once. Matching is exact
// and case-sensitive.
func DuplicateNames(names []string) map[string]int {
	counts := make(map[string]int, len(names))
	for _, name := range names {
		counts[name]++
	}
	duplicates := make(map[string]int)
	for name, count := range counts {
		if count > 1 {
			duplicates[name] = count
		}
	}
	return duplicates
}

// DuplicateVendorNames reports vendor names shared by more than one vendor.
func DuplicateVendorNames(vendors []entity.Vendor) entity.VendorDuplicateReport {
	names := make([]string, 0, len(vendors))
	for _, v := range vendors {
		names = append(names, v.Name)
	}
	duplicates := DuplicateNames(names)
	return entity.VendorDuplicateReport{Vendors: duplicates, TotalCount: len(duplicates)}
}
