package isomodel

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthOfHour(t *testing.T) {
	tests := []struct {
		n     int
		month int
	}{
		{0, 1},
		{743, 1},
		{744, 2},
		{1415, 2},
		{1416, 3},
		{8015, 11},
		{8016, 12},
		{8759, 12},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.month, month_of_hour(tt.n), "n=%d", tt.n)
	}
}

func TestSumHoursByMonth(t *testing.T) {
	ones := make([]float64, hoursOfYear)
	for i := range ones {
		ones[i] = 1.0
	}

	monthly := sum_hours_by_month(ones)
	assert.Equal(t, [12]float64{744, 672, 744, 720, 744, 720, 744, 744, 720, 744, 720, 744}, monthly)
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	rec.record(0, HourlyResult{HeatingNeed: 3.0, Fan: 1.0})
	rec.record(5000, HourlyResult{CoolingNeed: 4.0, DomesticHotWater: 2.0})

	assert.Equal(t, HourlyResult{HeatingNeed: 3.0, Fan: 1.0}, rec.At(0))
	assert.Equal(t, 4.0, rec.At(5000).CoolingNeed)
	assert.Equal(t, 3.0, rec.AnnualHeatingNeed())
	assert.Equal(t, 4.0, rec.AnnualCoolingNeed())
}

func TestWriteHourlyCSV(t *testing.T) {
	rec := NewRecorder()
	rec.record(744, HourlyResult{HeatingNeed: 1.5})

	var buf bytes.Buffer
	require.NoError(t, rec.WriteHourlyCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1+hoursOfYear)
	assert.Equal(t, "hour,month,heating_need,cooling_need,interior_lighting,exterior_lighting,fan,interior_equipment,exterior_equipment,domestic_hot_water", lines[0])
	assert.Equal(t, "745,2,1.5,0,0,0,0,0,0,0", lines[1+744])
}

func TestWriteMonthlyCSV(t *testing.T) {
	var table EndUseTable
	table[2][9] = 12.5

	var buf bytes.Buffer
	require.NoError(t, WriteMonthlyCSV(&buf, &table))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 13)
	assert.True(t, strings.HasPrefix(lines[0], "month,electricity_heating,electricity_cooling,"))
	assert.True(t, strings.HasSuffix(lines[0], ",gas_heating,gas_cooling,gas_interior_equipment,gas_water_systems"))
	assert.Equal(t, "3,0,0,0,0,0,0,0,0,0,12.5,0,0,0", lines[3])
}
