package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaySchedule_IsClosed(t *testing.T) {
	tests := []struct {
		name     string
		day      DaySchedule
		expected bool
	}{
		{name: "both empty", day: DaySchedule{}, expected: true},
		{name: "first range set", day: DaySchedule{{Open: "09:00", Close: "12:00"}, {}}, expected: false},
		{name: "second range set", day: DaySchedule{{}, {Open: "18:00", Close: "23:00"}}, expected: false},
		{name: "only an opening time", day: DaySchedule{{Open: "09:00"}, {}}, expected: false},
		{name: "only a closing time", day: DaySchedule{{}, {Close: "02:00"}}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.day.IsClosed())
		})
	}
}

func TestWeeklyHours_JSON(t *testing.T) {
	t.Run("decode partial object keeps seven days", func(t *testing.T) {
		raw := `{"lundi":{"plage1":{"ouverture":"09:00","fermeture":"12:00"},"plage2":{"ouverture":"","fermeture":""}},"jeudi":{"plage2":{"ouverture":"18:00","fermeture":"23:00"}},"unknown":{}}`

		var w WeeklyHours
		require.NoError(t, json.Unmarshal([]byte(raw), &w))

		list := w.List()
		require.Len(t, list, 7)
		assert.Equal(t, "lundi", list[0].Day)
		assert.False(t, list[0].Schedule.IsClosed())
		assert.True(t, list[1].Schedule.IsClosed())
		assert.Equal(t, TimeRange{Open: "18:00", Close: "23:00"}, list[3].Schedule[1])
		assert.True(t, list[6].Schedule.IsClosed())
	})

	t.Run("encode writes every day and range", func(t *testing.T) {
		var w WeeklyHours
		require.NoError(t, w.Set("samedi", 1, TimeRange{Open: "20:00", Close: "02:00"}))

		data, err := json.Marshal(w)
		require.NoError(t, err)

		var raw map[string]map[string]map[string]string
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.Len(t, raw, 7)
		assert.Equal(t, "20:00", raw["samedi"]["plage2"]["ouverture"])
		assert.Equal(t, "", raw["dimanche"]["plage1"]["fermeture"])
	})

	t.Run("set rejects unknown day and slot", func(t *testing.T) {
		var w WeeklyHours
		assert.Error(t, w.Set("sunday", 0, TimeRange{}))
		assert.Error(t, w.Set("lundi", 2, TimeRange{}))
	})
}
