package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/notargets/gonozzle/engine"
	"github.com/notargets/gonozzle/types"
)

func testResult(boilOff *float64) *engine.HeatingResult {
	return &engine.HeatingResult{
		Stations: []engine.StationResult{
			{X: 0.2, GasTemperature: 1500, WallTemperatureInner: 700, WallTemperatureOuter: 500,
				CoolantTemperature: 298, HeatFluxPerLength: 1.e5, HeatFluxPerArea: 2.e6,
				GasSideCoefficient: 1200, CoolantSideCoefficient: 3.e4},
			{X: 0.1, GasTemperature: 2000, WallTemperatureInner: 800, WallTemperatureOuter: 550,
				CoolantTemperature: 300, HeatFluxPerLength: 2.e5, HeatFluxPerArea: 4.e6,
				GasSideCoefficient: 2500, CoolantSideCoefficient: 3.1e4},
			{X: 0., GasTemperature: 2200, WallTemperatureInner: 900, WallTemperatureOuter: 600,
				CoolantTemperature: 303, HeatFluxPerLength: 3.e5, HeatFluxPerArea: 6.e6,
				GasSideCoefficient: 4000, CoolantSideCoefficient: 3.2e4},
		},
		BoilOffPosition: boilOff,
	}
}

func TestDocument(t *testing.T) {
	{
		doc, err := NewDocument(testResult(nil))
		require.NoError(t, err)
		assert.Len(t, doc, len(engine.StationFields)+1)
		assert.Equal(t, NoBoilOff, doc[BoilOffKey])
		assert.Equal(t, []float64{0.2, 0.1, 0}, doc["x"])
		assert.Equal(t, []float64{298, 300, 303}, doc["coolant_temperature"])
	}
	{
		pos := 0.1
		doc, err := NewDocument(testResult(&pos))
		require.NoError(t, err)
		assert.Equal(t, 0.1, doc[BoilOffKey])
	}
}

func TestWriteJSONAndYAML(t *testing.T) {
	var (
		buf bytes.Buffer
		m   map[string]interface{}
	)
	require.NoError(t, WriteJSON(&buf, testResult(nil)))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, NoBoilOff, m[BoilOffKey])
	assert.Equal(t, []interface{}{1500., 2000., 2200.}, m["gas_temperature"])

	pos := 0.
	buf.Reset()
	m = nil
	require.NoError(t, WriteYAML(&buf, testResult(&pos)))
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, 0., m[BoilOffKey])
	assert.Equal(t, []interface{}{1.e5, 2.e5, 3.e5}, m["heat_flux_per_length"])
	for _, name := range engine.StationFields {
		assert.Contains(t, m, name)
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heating.xlsx")
	require.NoError(t, Save(path, testResult(nil)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(StationSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, engine.StationFields, rows[0])
	assert.Equal(t, "298", rows[1][4])
	v, err := f.GetCellValue(SummarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, NoBoilOff, v)
	v, err = f.GetCellValue(SummarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "3", v)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"heating.json", "heating.yaml", "heating.YML"} {
		assert.NoError(t, Save(filepath.Join(dir, name), testResult(nil)))
	}
	err := Save(filepath.Join(dir, "heating.csv"), testResult(nil))
	assert.True(t, errors.Is(err, types.ErrConfiguration))
}
