package sexagenary

import "testing"

func TestYearPillarKnownYears(t *testing.T) {
	cases := []struct {
		year           int
		stem, branch   int
	}{
		{1984, 0, 0}, // Jia-Zi
		{1990, 6, 6}, // Geng-Wu
		{2000, 6, 4}, // Geng-Chen
		{2024, 0, 4}, // Jia-Chen
	}
	for _, c := range cases {
		p := YearPillar(c.year)
		if p.Stem != c.stem || p.Branch != c.branch {
			t.Errorf("YearPillar(%d) = {%d,%d}, want {%d,%d}", c.year, p.Stem, p.Branch, c.stem, c.branch)
		}
	}
}

func TestDayPillarDeterministicAnd60DayCycle(t *testing.T) {
	jdn := JDNFromDate(1990, 5, 15)
	a := DayPillar(jdn)
	b := DayPillar(jdn)
	if a != b {
		t.Error("DayPillar is not deterministic for the same JDN")
	}

	cycled := DayPillar(jdn + 60)
	if cycled != a {
		t.Errorf("DayPillar should repeat every 60 days: got {%d,%d} vs {%d,%d}", cycled.Stem, cycled.Branch, a.Stem, a.Branch)
	}

	// Stem (mod 10) and branch (mod 12) each cycle on their own period too.
	sameStem := DayPillar(jdn + 10)
	if sameStem.Stem != a.Stem {
		t.Error("day stem should repeat every 10 days")
	}
	sameBranch := DayPillar(jdn + 12)
	if sameBranch.Branch != a.Branch {
		t.Error("day branch should repeat every 12 days")
	}
}

func TestTwelveStageIndexZeroAtOwnChangsheng(t *testing.T) {
	for dayStem := 0; dayStem < 10; dayStem++ {
		start := changshengStart[dayStem]
		if idx := TwelveStageIndex(dayStem, start); idx != 0 {
			t.Errorf("stem %d: TwelveStageIndex at its own Changsheng branch = %d, want 0", dayStem, idx)
		}
	}
}

func TestTwelveStageIndexRange(t *testing.T) {
	for dayStem := 0; dayStem < 10; dayStem++ {
		for branch := 0; branch < 12; branch++ {
			idx := TwelveStageIndex(dayStem, branch)
			if idx < 0 || idx > 11 {
				t.Errorf("TwelveStageIndex(%d,%d) = %d out of [0,11]", dayStem, branch, idx)
			}
		}
	}
}

func TestTenGodOfSelfIsBiGyeon(t *testing.T) {
	for stem := 0; stem < 10; stem++ {
		if g := TenGodOf(stem, stem); g != BiGyeon {
			t.Errorf("TenGodOf(%d,%d) = %v, want BiGyeon", stem, stem, g)
		}
	}
}

func TestTenGodOfAgreesWithHiddenStemMainQi(t *testing.T) {
	// The Ten God of a branch's main hidden stem must agree with TenGodBranch.
	for dayStem := 0; dayStem < 10; dayStem++ {
		for branch := 0; branch < 12; branch++ {
			want := TenGodOf(dayStem, MainHiddenStem(branch))
			got := TenGodBranch(dayStem, branch)
			if want != got {
				t.Errorf("dayStem=%d branch=%d: TenGodBranch=%v, want %v", dayStem, branch, got, want)
			}
		}
	}
}

func TestHiddenStemsCountPerBranch(t *testing.T) {
	for branch := 0; branch < 12; branch++ {
		n := len(HiddenStems(branch))
		if n < 1 || n > 3 {
			t.Errorf("branch %d has %d hidden stems, want 1-3", branch, n)
		}
	}
}

func TestElementsCountSumsToEight(t *testing.T) {
	pillars := [4]Pillar{{0, 0}, {2, 4}, {6, 6}, {8, 10}}
	counts := ElementsCount(pillars)
	total := 0
	for _, c := range counts {
		total += c
	}
	if total != 8 {
		t.Errorf("ElementsCount total = %d, want 8 (4 pillars x stem+branch)", total)
	}
}

func TestHourBranchIndexBoundaries(t *testing.T) {
	cases := []struct {
		hour, minute int
		want         int
	}{
		{23, 0, 0},  // Zi starts 23:00
		{0, 30, 0},  // still Zi
		{1, 0, 1},   // Chou starts 01:00
		{12, 59, 6}, // Wu window 11:00-12:59
		{13, 0, 7},  // Wei starts 13:00
	}
	for _, c := range cases {
		if got := HourBranchIndex(c.hour, c.minute); got != c.want {
			t.Errorf("HourBranchIndex(%d,%d) = %d, want %d", c.hour, c.minute, got, c.want)
		}
	}
}
