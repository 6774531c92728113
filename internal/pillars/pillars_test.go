package pillars

import (
	"testing"
	"time"

	"github.com/sajuscope/saju-engine/internal/astro"
	"github.com/sajuscope/saju-engine/internal/sexagenary"
)

func termsFor(year int) (prev, curr, next []astro.SolarTerm) {
	return astro.ComputeSolarTerms(year - 1), astro.ComputeSolarTerms(year), astro.ComputeSolarTerms(year + 1)
}

func TestAssembleChartPreLichunUsesPreviousYear(t *testing.T) {
	// 2000-02-03 is before that year's Lichun (~Feb 4-5), so the year pillar
	// must still be anchored to 1999.
	local := time.Date(2000, 2, 3, 20, 0, 0, 0, time.UTC)
	prev, curr, next := termsFor(2000)
	chart, err := AssembleChart(local, prev, curr, next)
	if err != nil {
		t.Fatalf("AssembleChart failed: %v", err)
	}
	if chart.YearForPillar != 1999 {
		t.Errorf("YearForPillar = %d, want 1999 (pre-Lichun)", chart.YearForPillar)
	}
}

func TestAssembleChartPostLichunUsesCivilYear(t *testing.T) {
	local := time.Date(2000, 6, 1, 12, 0, 0, 0, time.UTC)
	prev, curr, next := termsFor(2000)
	chart, err := AssembleChart(local, prev, curr, next)
	if err != nil {
		t.Fatalf("AssembleChart failed: %v", err)
	}
	if chart.YearForPillar != 2000 {
		t.Errorf("YearForPillar = %d, want 2000 (post-Lichun)", chart.YearForPillar)
	}
}

func TestAssembleChartDayBoundaryShiftAt23(t *testing.T) {
	before := time.Date(2000, 2, 4, 22, 59, 0, 0, time.UTC)
	after := time.Date(2000, 2, 4, 23, 0, 0, 0, time.UTC)
	prev, curr, next := termsFor(2000)

	chartBefore, err := AssembleChart(before, prev, curr, next)
	if err != nil {
		t.Fatalf("AssembleChart(before) failed: %v", err)
	}
	chartAfter, err := AssembleChart(after, prev, curr, next)
	if err != nil {
		t.Fatalf("AssembleChart(after) failed: %v", err)
	}
	if chartBefore.Day == chartAfter.Day {
		t.Error("day pillar should shift forward once local time reaches 23:00")
	}

	// The 23:00 day belongs to the following calendar date's day pillar.
	nextDayJDN := sexagenary.JDNFromDate(2000, 2, 5)
	wantDay := sexagenary.DayPillar(nextDayJDN)
	if chartAfter.Day != wantDay {
		t.Errorf("23:00 day pillar = %+v, want %+v (2000-02-05's day pillar)", chartAfter.Day, wantDay)
	}
}

func TestAssembleChartHourPillarDerivesFromDayStem(t *testing.T) {
	local := time.Date(2000, 6, 1, 12, 0, 0, 0, time.UTC)
	prev, curr, next := termsFor(2000)
	chart, err := AssembleChart(local, prev, curr, next)
	if err != nil {
		t.Fatalf("AssembleChart failed: %v", err)
	}
	wantHourStem := sexagenary.HourStem(chart.Day.Stem, chart.Hour.Branch)
	if chart.Hour.Stem != wantHourStem {
		t.Errorf("Hour.Stem = %d, want %d (derived from day stem)", chart.Hour.Stem, wantHourStem)
	}
}

func TestMonthBranchForBirthUsesLastTermAtOrBeforeBirth(t *testing.T) {
	prev, curr, _ := termsFor(2000)
	lichun, ok := astro.FindTerm(curr, "lichun")
	if !ok {
		t.Fatal("lichun term not found")
	}
	justAfter := lichun.JD + 0.01
	branch, err := MonthBranchForBirth(justAfter, prev, curr)
	if err != nil {
		t.Fatalf("MonthBranchForBirth failed: %v", err)
	}
	if branch != monthBranchByTermKey["lichun"] {
		t.Errorf("month branch just after Lichun = %d, want %d", branch, monthBranchByTermKey["lichun"])
	}
}
