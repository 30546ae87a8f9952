package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"

	"github.com/diillson/buildops-audit-go/internal/domain/entity"
	"github.com/diillson/buildops-audit-go/internal/shared/types"
)

// Present escreve o relatório no console, como tabela ou em texto simples.
func (uc *AuditUseCase) Present(report entity.Tabular, plain bool) {
	if plain {
		uc.console.Println(report.Title() + ":")
		header := report.Header()
		for _, row := range report.Rows() {
			uc.console.Println(formatLine(header, row))
		}
	} else {
		table := uc.console.CreateTable()
		for _, column := range report.Header() {
			table.AddColumn(column)
		}
		for _, row := range report.Rows() {
			cells := make([]interface{}, len(row))
			for i, cell := range row {
				cells[i] = cell
			}
			table.AddRow(cells...)
		}
		uc.console.Println(pterm.Bold.Sprint(report.Title()))
		uc.console.Print(table.Render())
	}

	uc.console.Println(fmt.Sprintf("Total: %d", report.Total()))
	if assets, ok := report.(entity.AssetMakeReport); ok {
		uc.console.Println(fmt.Sprintf("Total assets: %d", assets.TotalAssets))
	}
	if customers, ok := report.(entity.CustomerReport); ok && len(customers.Failed) > 0 {
		uc.console.LogWarning("%d customers could not be checked", len(customers.Failed))
	}
}

// formatLine renders "name (ID: id)" for reference rows and "key: value" otherwise.
func formatLine(header, row []string) string {
	if len(header) == 2 && header[1] == "ID" && len(row) == 2 {
		return fmt.Sprintf("%s (ID: %s)", row[0], row[1])
	}
	return strings.Join(row, ": ")
}

// Export grava os relatórios nos formatos pedidos em args.ReportType.
// Falhas de exportação são reportadas no console e não interrompem a execução.
func (uc *AuditUseCase) Export(args *types.CLIArgs, document interface{}, reports ...entity.Tabular) {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return
	}

	for _, reportType := range args.ReportType {
		switch strings.ToLower(strings.TrimSpace(reportType)) {
		case "csv":
			for _, report := range reports {
				name := args.ReportName
				if len(reports) > 1 {
					name = args.ReportName + "_" + slug(report.Title())
				}
				csvPath, err := uc.exportRepo.ExportToCSV(report, name, args.Dir)
				if err != nil {
					uc.console.LogError("Failed to export to CSV: %s", err)
				} else {
					uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
				}
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(document, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(reports, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type '%s' ignored", reportType)
		}
	}
}

func slug(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "_")
}

// run computes one report, presents it and exports it.
func run[R entity.Tabular](ctx context.Context, uc *AuditUseCase, args *types.CLIArgs, compute func(context.Context) (R, error)) error {
	report, err := compute(ctx)
	if err != nil {
		return err
	}

	uc.Present(report, args.Plain)
	uc.Export(args, report, report)
	return nil
}

// RunCustomersWithoutProperties lista clientes sem propriedades.
func (uc *AuditUseCase) RunCustomersWithoutProperties(ctx context.Context, args *types.CLIArgs) error {
	return run(ctx, uc, args, uc.CustomersWithoutProperties)
}

// RunCustomersWithProperties lista clientes com ao menos uma propriedade.
func (uc *AuditUseCase) RunCustomersWithProperties(ctx context.Context, args *types.CLIArgs) error {
	return run(ctx, uc, args, uc.CustomersWithProperties)
}

// RunPropertiesWithManyAddresses lista propriedades acima do limite de endereços.
func (uc *AuditUseCase) RunPropertiesWithManyAddresses(ctx context.Context, args *types.CLIArgs) error {
	return run(ctx, uc, args, func(ctx context.Context) (entity.PropertyReport, error) {
		return uc.PropertiesWithManyAddresses(ctx, args.Threshold)
	})
}

// RunAssetMakeCounts conta ativos por fabricante.
func (uc *AuditUseCase) RunAssetMakeCounts(ctx context.Context, args *types.CLIArgs) error {
	return run(ctx, uc, args, uc.AssetMakeCounts)
}

// RunAssetMakes lista o catálogo de fabricantes.
func (uc *AuditUseCase) RunAssetMakes(ctx context.Context, args *types.CLIArgs) error {
	return run(ctx, uc, args, uc.AssetMakeCatalog)
}

// RunVendorDuplicates lista nomes de fornecedores repetidos.
func (uc *AuditUseCase) RunVendorDuplicates(ctx context.Context, args *types.CLIArgs) error {
	return run(ctx, uc, args, uc.VendorDuplicates)
}

// RunShowMap gera o mapa HTML das propriedades do estado em args.State.
func (uc *AuditUseCase) RunShowMap(ctx context.Context, args *types.CLIArgs) error {
	propertyMap, err := uc.PropertyMap(ctx, args.State)
	if err != nil {
		return err
	}

	path, err := uc.mapRepo.WritePropertyMap(propertyMap, args.Dir)
	if err != nil {
		return fmt.Errorf("writing property map: %w", err)
	}

	if len(propertyMap.Markers) == 0 {
		uc.console.LogWarning("No properties with coordinates found in %s", propertyMap.State)
	}
	uc.console.LogSuccess("Map with %d markers from %d properties saved to %s", len(propertyMap.Markers), propertyMap.Properties, path)
	return nil
}

// RunFullAudit executa todas as auditorias e apresenta cada relatório.
// Returns an error only when every audit failed.
func (uc *AuditUseCase) RunFullAudit(ctx context.Context, tenantID string, args *types.CLIArgs) error {
	uc.console.LogInfo("Preparing your full audit report...")

	report := uc.FullAudit(ctx, tenantID)

	var reports []entity.Tabular
	if report.CustomersWithoutProperties != nil {
		reports = append(reports, *report.CustomersWithoutProperties)
	}
	if report.CustomersWithProperties != nil {
		reports = append(reports, *report.CustomersWithProperties)
	}
	if report.PropertiesManyAddresses != nil {
		reports = append(reports, *report.PropertiesManyAddresses)
	}
	if report.AssetMakeCounts != nil {
		reports = append(reports, *report.AssetMakeCounts)
	}
	if report.VendorDuplicates != nil {
		reports = append(reports, *report.VendorDuplicates)
	}

	for _, r := range reports {
		uc.Present(r, args.Plain)
		uc.console.Println()
	}
	failed := make([]string, 0, len(report.Errors))
	for name := range report.Errors {
		failed = append(failed, name)
	}
	sort.Strings(failed)
	for _, name := range failed {
		uc.console.LogError("%s: %s", name, report.Errors[name])
	}

	if len(reports) == 0 {
		return fmt.Errorf("full audit: all %d audits failed", len(report.Errors))
	}
	uc.Export(args, report, reports...)
	return nil
}
