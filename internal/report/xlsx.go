// Package report renders optimization and sweep results as xlsx workbooks
// for download by the presentation layer.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/fusionlab/fusion-core/internal/optimize"
	"github.com/fusionlab/fusion-core/internal/sweep"
)

var parameterHeaders = []string{"n", "T", "E", "tau"}

// WriteOptimization writes a workbook with a Summary sheet (best point,
// best output, evaluation count) and a Grid sheet listing the axis samples
// that were searched.
func WriteOptimization(w io.Writer, grid optimize.Grid, result optimize.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	summary := "Summary"
	f.SetSheetName("Sheet1", summary)

	rows := [][]any{
		{"Parameter", "Best Value"},
		{"n", result.Best.N},
		{"T", result.Best.T},
		{"E", result.Best.E},
		{"tau", result.Best.Tau},
		{},
		{"Best Output", result.Output},
		{"Evaluations", result.Evaluations},
	}
	for i, row := range rows {
		if err := setRow(f, summary, i+1, row); err != nil {
			return err
		}
	}

	gridSheet := "Grid"
	if _, err := f.NewSheet(gridSheet); err != nil {
		return fmt.Errorf("report: create sheet: %w", err)
	}

	axes := [][]float64{grid.N, grid.T, grid.E, grid.Tau}
	for col, header := range parameterHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("report: cell name: %w", err)
		}
		if err := f.SetCellValue(gridSheet, cell, header); err != nil {
			return fmt.Errorf("report: set cell: %w", err)
		}
		for row, sample := range axes[col] {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("report: cell name: %w", err)
			}
			if err := f.SetCellValue(gridSheet, cell, sample); err != nil {
				return fmt.Errorf("report: set cell: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("report: write workbook: %w", err)
	}
	return nil
}

// WriteSweep writes a workbook with a Summary sheet (swept parameter and
// base point) and a Points sheet of (multiplier, output) rows.
func WriteSweep(w io.Writer, result sweep.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	summary := "Summary"
	f.SetSheetName("Sheet1", summary)

	rows := [][]any{
		{"Swept Parameter", string(result.Parameter)},
		{"Axis Label", result.Parameter.Label()},
		{},
		{"Base n", result.Base.N},
		{"Base T", result.Base.T},
		{"Base E", result.Base.E},
		{"Base tau", result.Base.Tau},
	}
	for i, row := range rows {
		if err := setRow(f, summary, i+1, row); err != nil {
			return err
		}
	}

	points := "Points"
	if _, err := f.NewSheet(points); err != nil {
		return fmt.Errorf("report: create sheet: %w", err)
	}
	if err := setRow(f, points, 1, []any{"Multiplier", "Output"}); err != nil {
		return err
	}
	for i, pt := range result.Points {
		if err := setRow(f, points, i+2, []any{pt.Multiplier, pt.Output}); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("report: write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("report: cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("report: set cell: %w", err)
		}
	}
	return nil
}
