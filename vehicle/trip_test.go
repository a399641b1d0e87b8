package vehicle

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestSetDailyStatsSortsDescending(t *testing.T) {
	v := NewVehicle(nil)

	v.SetDailyStats([]DailyDrivingStats{
		{Date: day(2), DistanceUnit: "km"},
		{Date: day(1), DistanceUnit: "km"},
		{Date: day(3), DistanceUnit: "km"},
	})

	want := []time.Time{day(3), day(2), day(1)}
	got := v.DailyStats()
	if len(got) != len(want) {
		t.Fatalf("daily stats length: got %d, want %d", len(got), len(want))
	}
	for i, stat := range got {
		if !stat.Date.Equal(want[i]) {
			t.Errorf("daily stats[%d].Date: got %v, want %v", i, stat.Date, want[i])
		}
	}
}

func TestSetDailyStatsDefaultDistanceUnit(t *testing.T) {
	v := NewVehicle(nil)

	v.SetDailyStats([]DailyDrivingStats{{Date: day(1)}})

	if got := v.DailyStats()[0].DistanceUnit; got != "km" {
		t.Errorf("default distance unit: got %q, want km", got)
	}
}

func TestSetDailyStatsEmptyStoredUnchanged(t *testing.T) {
	v := NewVehicle(nil)

	v.SetDailyStats(nil)
	if v.DailyStats() != nil {
		t.Errorf("nil daily stats: got %v, want nil", v.DailyStats())
	}

	empty := []DailyDrivingStats{}
	v.SetDailyStats(empty)
	if len(v.DailyStats()) != 0 {
		t.Errorf("empty daily stats: got %v, want empty", v.DailyStats())
	}
}

func TestSetMonthTripInfoSortsDayListAscending(t *testing.T) {
	v := NewVehicle(nil)

	v.SetMonthTripInfo(&MonthTripInfo{
		YYYYMM: "202401",
		DayList: []DayTripCounts{
			{YYYYMMDD: "20240103"},
			{YYYYMMDD: "20240101"},
			{YYYYMMDD: "20240102"},
		},
	})

	want := []DayTripCounts{
		{YYYYMMDD: "20240101"},
		{YYYYMMDD: "20240102"},
		{YYYYMMDD: "20240103"},
	}
	if diff := cmp.Diff(want, v.MonthTripInfo().DayList); diff != "" {
		t.Errorf("month trip day list mismatch (-want +got):\n%s", diff)
	}
}

func TestSetDayTripInfoSortsTripListDescending(t *testing.T) {
	v := NewVehicle(nil)

	v.SetDayTripInfo(&DayTripInfo{
		YYYYMMDD: "20240101",
		TripList: []TripInfo{
			{HHMMSS: "090000"},
			{HHMMSS: "235900"},
			{HHMMSS: "000100"},
		},
	})

	want := []TripInfo{
		{HHMMSS: "235900"},
		{HHMMSS: "090000"},
		{HHMMSS: "000100"},
	}
	if diff := cmp.Diff(want, v.DayTripInfo().TripList); diff != "" {
		t.Errorf("day trip list mismatch (-want +got):\n%s", diff)
	}
}

func TestSetTripInfoNilStoredUnchanged(t *testing.T) {
	v := NewVehicle(nil)

	v.SetMonthTripInfo(nil)
	if v.MonthTripInfo() != nil {
		t.Error("nil month trip info should stay nil")
	}

	v.SetDayTripInfo(nil)
	if v.DayTripInfo() != nil {
		t.Error("nil day trip info should stay nil")
	}

	// 空内层列表不触发排序，原样存储
	month := &MonthTripInfo{YYYYMM: "202401"}
	v.SetMonthTripInfo(month)
	if v.MonthTripInfo() != month || v.MonthTripInfo().DayList != nil {
		t.Error("month trip info with empty day list should be stored unchanged")
	}
}

func TestSortKeepsEncounterOrderForEqualKeys(t *testing.T) {
	v := NewVehicle(nil)

	one := 1
	two := 2
	v.SetMonthTripInfo(&MonthTripInfo{
		DayList: []DayTripCounts{
			{YYYYMMDD: "20240102", TripCount: &one},
			{YYYYMMDD: "20240101"},
			{YYYYMMDD: "20240102", TripCount: &two},
		},
	})

	got := v.MonthTripInfo().DayList
	if got[1].TripCount == nil || *got[1].TripCount != 1 || got[2].TripCount == nil || *got[2].TripCount != 2 {
		t.Errorf("equal keys should keep encounter order, got %+v", got)
	}
}
