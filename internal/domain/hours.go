package domain

import (
	"encoding/json"
	"fmt"
)

// Days - дни недели в порядке отображения, как их хранит бэкенд
var Days = [7]string{"lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi", "dimanche"}

var rangeKeys = [2]string{"plage1", "plage2"}

// TimeRange - один интервал работы; пустые строки означают "не задано"
type TimeRange struct {
	Open  string `json:"ouverture"`
	Close string `json:"fermeture"`
}

// IsEmpty reports whether neither bound is set.
func (r TimeRange) IsEmpty() bool {
	return r.Open == "" && r.Close == ""
}

// DaySchedule - ровно два интервала на день
type DaySchedule [2]TimeRange

// IsClosed: день закрыт тогда и только тогда, когда оба интервала пусты
func (d DaySchedule) IsClosed() bool {
	return d[0].IsEmpty() && d[1].IsEmpty()
}

// OpenRanges возвращает непустые интервалы для отображения
func (d DaySchedule) OpenRanges() []TimeRange {
	out := make([]TimeRange, 0, len(d))
	for _, r := range d {
		if !r.IsEmpty() {
			out = append(out, r)
		}
	}
	return out
}

// WeeklyHours always holds exactly seven days of two ranges each, indexed like Days.
// On the wire it is an object keyed by day name, then by plage1/plage2.
type WeeklyHours [7]DaySchedule

// DayHours - день с расписанием, для шаблонов
type DayHours struct {
	Day      string
	Schedule DaySchedule
}

// List возвращает дни по порядку вместе с их именами
func (w WeeklyHours) List() []DayHours {
	out := make([]DayHours, len(Days))
	for i, day := range Days {
		out[i] = DayHours{Day: day, Schedule: w[i]}
	}
	return out
}

// Set задает интервал дня по имени; индексы 0 и 1
func (w *WeeklyHours) Set(day string, slot int, r TimeRange) error {
	if slot < 0 || slot >= len(rangeKeys) {
		return fmt.Errorf("unknown time range slot %d", slot)
	}
	for i, d := range Days {
		if d == day {
			w[i][slot] = r
			return nil
		}
	}
	return fmt.Errorf("unknown day %q", day)
}

func (w WeeklyHours) MarshalJSON() ([]byte, error) {
	out := make(map[string]map[string]TimeRange, len(Days))
	for i, day := range Days {
		out[day] = map[string]TimeRange{
			rangeKeys[0]: w[i][0],
			rangeKeys[1]: w[i][1],
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the day-keyed object. Missing days or ranges stay
// empty and unknown keys are ignored, so the result is always 7x2.
func (w *WeeklyHours) UnmarshalJSON(data []byte) error {
	var raw map[string]map[string]TimeRange
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode hours: %w", err)
	}
	var out WeeklyHours
	for i, day := range Days {
		ranges, ok := raw[day]
		if !ok {
			continue
		}
		for j, key := range rangeKeys {
			out[i][j] = ranges[key]
		}
	}
	*w = out
	return nil
}
