package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fusionlab/fusion-core/internal/optimize"
	"github.com/fusionlab/fusion-core/internal/physics"
	"github.com/fusionlab/fusion-core/internal/sweep"
)

func TestWriteOptimization(t *testing.T) {
	grid := optimize.Grid{
		N:   []float64{1e20, 2e20},
		T:   []float64{5000, 10000},
		E:   []float64{15, 20},
		Tau: []float64{0.05, 0.1},
	}
	result, err := optimize.Search(grid)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteOptimization(&buf, grid, result))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Summary", "Grid"}, f.GetSheetList())

	best, err := f.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.NotEmpty(t, best)

	header, err := f.GetCellValue("Grid", "A1")
	require.NoError(t, err)
	assert.EqualValues(t, "n", header)

	tauSample, err := f.GetCellValue("Grid", "D2")
	require.NoError(t, err)
	assert.EqualValues(t, "0.05", tauSample)
}

func TestWriteSweep(t *testing.T) {
	result, err := sweep.Run(sweep.Temperature, physics.ParameterPoint{N: 1e20, T: 15000, E: 17.6, Tau: 0.1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSweep(&buf, result))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Summary", "Points"}, f.GetSheetList())

	param, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.EqualValues(t, "temperature", param)

	rows, err := f.GetRows("Points")
	require.NoError(t, err)
	// Header plus one row per sweep point.
	assert.Len(t, rows, sweep.Points+1)
	assert.EqualValues(t, []string{"Multiplier", "Output"}, rows[0])
	assert.EqualValues(t, "0.1", rows[1][0])
}
