package isomodel

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleKey(t *testing.T) {
	tests := []struct {
		n    int
		hour int
		day  int
	}{
		{1, 0, 0},
		{24, 23, 0},
		{25, 0, 1},
		{168, 23, 6},
		{169, 0, 0},
		{8760, 23, 0},
	}

	for _, tt := range tests {
		h, d := schedule_key(tt.n)
		assert.Equal(t, tt.hour, h, "n=%d", tt.n)
		assert.Equal(t, tt.day, d, "n=%d", tt.n)
	}
}

func TestGenerateSchedules(t *testing.T) {
	m := sampleModel()
	sc := GenerateSchedules(&m.Population, &m.Heating, &m.Cooling, &m.Ventilation)

	r, c := sc.Ventilation.Dims()
	assert.Equal(t, hoursOfDay, r)
	assert.Equal(t, daysOfWeek, c)

	t.Run("occupied", func(t *testing.T) {
		sv := sc.at(1 + 9) // 0日目 9時
		assert.Equal(t, 2.0, sv.ventilation)
		assert.Equal(t, 1.0, sv.fan)
		assert.Equal(t, 0.3, sv.exterior_equipment)
		assert.Equal(t, 0.9, sv.interior_equipment)
		assert.Equal(t, 0.0, sv.exterior_lighting)
		assert.Equal(t, 0.9, sv.interior_lighting)
		assert.Equal(t, 20.0, sv.heating_setpoint)
		assert.Equal(t, 26.0, sv.cooling_setpoint)
	})

	t.Run("night", func(t *testing.T) {
		sv := sc.at(1 + 7) // 0日目 7時
		assert.Equal(t, 0.0, sv.ventilation)
		assert.Equal(t, 0.0, sv.fan)
		assert.Equal(t, 0.12, sv.exterior_equipment)
		assert.Equal(t, 0.3, sv.interior_equipment)
		assert.Equal(t, 1.0, sv.exterior_lighting)
		assert.Equal(t, 0.05, sv.interior_lighting)
		assert.Equal(t, 15.0, sv.heating_setpoint)
		assert.Equal(t, 30.0, sv.cooling_setpoint)
	})

	t.Run("unoccupied day", func(t *testing.T) {
		sv := sc.at(1 + 5*24 + 10) // 5日目 10時
		assert.Equal(t, 2.0, sv.ventilation)
		assert.Equal(t, 1.0, sv.fan)
		assert.Equal(t, 0.3, sv.exterior_equipment)
		assert.Equal(t, 0.3, sv.interior_equipment)
		assert.Equal(t, 0.0, sv.exterior_lighting)
		assert.Equal(t, 0.05, sv.interior_lighting)
		assert.Equal(t, 15.0, sv.heating_setpoint)
		assert.Equal(t, 30.0, sv.cooling_setpoint)
	})

	t.Run("end of occupancy is exclusive", func(t *testing.T) {
		assert.Equal(t, 0.0, sc.Fan.At(18, 0))
		assert.Equal(t, 1.0, sc.Fan.At(17, 0))
		assert.Equal(t, 15.0, sc.HeatingSetpoint.At(10, 5))
		assert.Equal(t, 20.0, sc.HeatingSetpoint.At(10, 4))
	})
}

func TestGenerateSchedules_NeverOccupied(t *testing.T) {
	m := sampleModel()
	m.Population = Population{DayStart: 0, DayEnd: 0, HourStart: 0, HourEnd: 0}
	sc := GenerateSchedules(&m.Population, &m.Heating, &m.Cooling, &m.Ventilation)

	for h := 0; h < hoursOfDay; h++ {
		for d := 0; d < daysOfWeek; d++ {
			assert.Equal(t, 0.0, sc.Ventilation.At(h, d))
			assert.Equal(t, 15.0, sc.HeatingSetpoint.At(h, d))
			assert.Equal(t, 30.0, sc.CoolingSetpoint.At(h, d))
		}
	}
}

func TestSaveSchedule(t *testing.T) {
	m := sampleModel()
	sc := GenerateSchedules(&m.Population, &m.Heating, &m.Cooling, &m.Ventilation)

	dir := t.TempDir()
	require.NoError(t, sc.SaveSchedule(dir))

	b, err := os.ReadFile(filepath.Join(dir, "schedule_heating_setpoint.csv"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 1+hoursOfDay)
	assert.Equal(t, "hour,day0,day1,day2,day3,day4,day5,day6", lines[0])
	assert.Equal(t, "9,20,20,20,20,20,15,15", lines[1+9])

	for _, name := range []string{"ventilation", "fan", "exterior_equipment", "interior_equipment", "exterior_lighting", "interior_lighting", "cooling_setpoint"} {
		assert.FileExists(t, filepath.Join(dir, "schedule_"+name+".csv"))
	}
}

func TestSaveSchedule_MissingDir(t *testing.T) {
	m := sampleModel()
	sc := GenerateSchedules(&m.Population, &m.Heating, &m.Cooling, &m.Ventilation)

	err := sc.SaveSchedule(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save schedule ventilation")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
