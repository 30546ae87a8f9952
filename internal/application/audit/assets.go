package audit

import (
	"github.com/diillson/buildops-audit-go/internal/domain/entity"
)

// AssetMakeCounts groups assets by their make field. Assets without a make
// are counted under the empty key.
//
// TotalCount is the number of distinct makes, as the report has always
// published it. TotalAssets carries the sum of the counts.
func AssetMakeCounts(assets []entity.Asset) entity.AssetMakeReport {
	counts := make(map[string]int)
	for _, a := range assets {
		counts[a.Make]++
	}
	return entity.AssetMakeReport{
		AssetMakeCounts: counts,
		TotalCount:      len(counts),
		TotalAssets:     len(assets),
	}
}

// AssetMakeNames lists the catalog names in the order they were fetched.
func AssetMakeNames(makes []entity.AssetMake) entity.AssetMakeCatalog {
	names := make([]string, 0, len(makes))
	for _, m := range makes {
		names = append(names, m.Name)
	}
	return entity.AssetMakeCatalog{AssetMakes: names, TotalCount: len(names)}
}
