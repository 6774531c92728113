package saju

import (
	"testing"

	"github.com/sajuscope/saju-engine/internal/luck"
	"github.com/sajuscope/saju-engine/internal/sexagenary"
)

func TestComputeOrdinarySeoulBirth(t *testing.T) {
	e := NewEngine()
	chart, err := e.Compute(Input{
		Date: "1990-05-15", Time: "10:30",
		Calendar: Solar, TZ: "+09:00", Gender: luck.Male,
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if chart.Pillars.YearForPillar != 1990 {
		t.Errorf("YearForPillar = %d, want 1990", chart.Pillars.YearForPillar)
	}
	if want := sexagenary.YearPillar(1990); chart.Pillars.Year != want {
		t.Errorf("Year pillar = %+v, want %+v", chart.Pillars.Year, want)
	}
	if chart.ConvertedLunar == nil {
		t.Error("ConvertedLunar should be populated for a solar-calendar input")
	}
	if len(chart.Daewon) != 10 {
		t.Errorf("len(Daewon) = %d, want default 10", len(chart.Daewon))
	}
	if len(chart.YearlyLuck) != 10 {
		t.Errorf("len(YearlyLuck) = %d, want default 10", len(chart.YearlyLuck))
	}
}

func TestComputeLichunDayBoundaryShiftsDayPillar(t *testing.T) {
	e := NewEngine()
	before, err := e.Compute(Input{
		Date: "2000-02-04", Time: "22:59",
		Calendar: Solar, TZ: "+09:00", Gender: luck.Female,
	})
	if err != nil {
		t.Fatalf("Compute(before) failed: %v", err)
	}
	after, err := e.Compute(Input{
		Date: "2000-02-04", Time: "23:30",
		Calendar: Solar, TZ: "+09:00", Gender: luck.Female,
	})
	if err != nil {
		t.Fatalf("Compute(after) failed: %v", err)
	}
	if before.Pillars.Day == after.Pillars.Day {
		t.Error("day pillar should shift once local time reaches 23:00")
	}
}

func TestComputePreLichunUsesPreviousYearPillar(t *testing.T) {
	e := NewEngine()
	chart, err := e.Compute(Input{
		Date: "2000-02-03", Time: "20:00",
		Calendar: Solar, TZ: "+09:00", Gender: luck.Male,
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if chart.Pillars.YearForPillar != 1999 {
		t.Errorf("YearForPillar = %d, want 1999 (pre-Lichun)", chart.Pillars.YearForPillar)
	}
}

func TestComputeAppliesLocalMeanTimeCorrectionForSeoulLongitude(t *testing.T) {
	e := NewEngine()
	longitude := 126.978
	chart, err := e.Compute(Input{
		Date: "1995-06-21", Time: "12:00",
		Calendar: Solar, TZ: "+09:00", Gender: luck.Male,
		UseLocalMeanTime: true, Longitude: &longitude,
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if chart.LMT == nil {
		t.Fatal("LMT info should be populated when local mean time is requested")
	}
	if chart.LMT.StdMeridian != 135.0 {
		t.Errorf("StdMeridian = %v, want 135.0", chart.LMT.StdMeridian)
	}
	if chart.LMT.CorrectionSeconds != -1925 {
		t.Errorf("CorrectionSeconds = %d, want -1925", chart.LMT.CorrectionSeconds)
	}
}

func TestComputeLunarInputWithLeapMonthFalse(t *testing.T) {
	e := NewEngine()
	chart, err := e.Compute(Input{
		Date: "1984-02-04", Time: "12:00",
		Calendar: Lunar, LeapMonth: false, TZ: "+09:00", Gender: luck.Female,
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if chart.ConvertedSolar == nil {
		t.Error("ConvertedSolar should be populated for a lunar-calendar input")
	}
}

func TestComputeMonthlyLuckHasTwelveIntervals(t *testing.T) {
	e := NewEngine()
	year := 2024
	chart, err := e.Compute(Input{
		Date: "2024-03-01", Time: "09:00",
		Calendar: Solar, TZ: "+09:00", Gender: luck.Male,
		MonthYear: &year,
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if len(chart.MonthlyLuck.Months) != 12 {
		t.Errorf("len(MonthlyLuck.Months) = %d, want 12", len(chart.MonthlyLuck.Months))
	}
	if chart.MonthlyLuck.Year != year {
		t.Errorf("MonthlyLuck.Year = %d, want %d", chart.MonthlyLuck.Year, year)
	}
}

func TestComputeRejectsLeapMonthWithSolarCalendar(t *testing.T) {
	e := NewEngine()
	_, err := e.Compute(Input{
		Date: "2000-01-01", Time: "00:00",
		Calendar: Solar, LeapMonth: true, TZ: "+09:00", Gender: luck.Male,
	})
	if err == nil {
		t.Fatal("Compute should reject leap-month with a solar calendar input")
	}
}

func TestComputeRejectsBothLongitudeAndLocation(t *testing.T) {
	e := NewEngine()
	longitude := 126.978
	_, err := e.Compute(Input{
		Date: "2000-01-01", Time: "00:00",
		Calendar: Solar, TZ: "+09:00", Gender: luck.Male,
		UseLocalMeanTime: true, Longitude: &longitude, Location: "Seoul",
	})
	if err == nil {
		t.Fatal("Compute should reject specifying both longitude and location")
	}
}

func TestComputeRejectsBadDateFormat(t *testing.T) {
	e := NewEngine()
	_, err := e.Compute(Input{Date: "01-01-2000", Time: "00:00", Calendar: Solar, TZ: "+09:00", Gender: luck.Male})
	if err == nil {
		t.Fatal("Compute should reject a non-ISO date format")
	}
}

func TestParseGenderAcceptsAllVariants(t *testing.T) {
	for _, in := range []string{"male", "Male", "m", "남", "  M  "} {
		g, err := ParseGender(in)
		if err != nil {
			t.Errorf("ParseGender(%q) failed: %v", in, err)
		}
		if g != luck.Male {
			t.Errorf("ParseGender(%q) = %v, want Male", in, g)
		}
	}
	for _, in := range []string{"female", "f", "여"} {
		g, err := ParseGender(in)
		if err != nil {
			t.Errorf("ParseGender(%q) failed: %v", in, err)
		}
		if g != luck.Female {
			t.Errorf("ParseGender(%q) = %v, want Female", in, g)
		}
	}
}

func TestParseGenderRejectsUnknown(t *testing.T) {
	if _, err := ParseGender("other"); err == nil {
		t.Error("ParseGender should reject an unrecognized value")
	}
}

func TestElementBalanceSumsToEight(t *testing.T) {
	e := NewEngine()
	chart, err := e.Compute(Input{
		Date: "1990-05-15", Time: "10:30",
		Calendar: Solar, TZ: "+09:00", Gender: luck.Male,
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	balance := ElementBalance(chart.Pillars.Pillars())
	total := 0
	for _, n := range balance {
		total += n
	}
	if total != 8 {
		t.Errorf("element balance total = %d, want 8 (4 stems + 4 branches)", total)
	}
}
