package repository

import (
	"github.com/diillson/buildops-audit-go/internal/domain/entity"
)

// ExportRepository writes audit reports to files and returns the absolute paths.
type ExportRepository interface {
	ExportToCSV(report entity.Tabular, filename, outputDir string) (string, error)
	ExportToJSON(report interface{}, filename, outputDir string) (string, error)
	// ExportToPDF writes one page per report.
	ExportToPDF(reports []entity.Tabular, filename, outputDir string) (string, error)
}

// MapRepository renders a property map and returns the path of the file written.
type MapRepository interface {
	WritePropertyMap(m entity.PropertyMap, outputDir string) (string, error)
}
