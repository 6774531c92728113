package strength

import (
	"testing"

	"github.com/sajuscope/saju-engine/internal/sexagenary"
)

func TestVerdictString(t *testing.T) {
	cases := []struct {
		v    Verdict
		want string
	}{
		{VerdictStrong, "Strong"},
		{VerdictWeak, "Weak"},
		{VerdictNeutral, "Neutral"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("%v.String() = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestAssessStrongDayMaster(t *testing.T) {
	// Jia (Wood, yang) day stem, all four pillars Jia-Yin: same stem
	// everywhere (full support) and a root-bearing, strength-favorable
	// branch, with the month branch landing in the Twelve-Stage "Strong"
	// band (index <= 4) relative to the day stem.
	dayStem := 0 // Jia
	pillar := sexagenary.Pillar{Stem: 0, Branch: 2}
	pillars := [4]sexagenary.Pillar{pillar, pillar, pillar, pillar}

	result := Assess(dayStem, pillars)

	if result.RootCount != 4 {
		t.Errorf("RootCount = %d, want 4", result.RootCount)
	}
	if result.SupportStems != 4 {
		t.Errorf("SupportStems = %d, want 4", result.SupportStems)
	}
	if result.DrainStems != 0 {
		t.Errorf("DrainStems = %d, want 0", result.DrainStems)
	}
	if result.Verdict != VerdictStrong {
		t.Errorf("Verdict = %v, want Strong (total=%d)", result.Verdict, result.Total)
	}
}

func TestAssessWeakDayMaster(t *testing.T) {
	// Jia (Wood) day stem surrounded entirely by Geng (Metal, the Officer
	// element that controls Wood) stems and You branches whose sole hidden
	// stem is also Metal: no support, heavy drain.
	dayStem := 0 // Jia
	pillar := sexagenary.Pillar{Stem: 6, Branch: 9} // Geng-You
	pillars := [4]sexagenary.Pillar{pillar, pillar, pillar, pillar}

	result := Assess(dayStem, pillars)

	if result.RootCount != 0 {
		t.Errorf("RootCount = %d, want 0", result.RootCount)
	}
	if result.SupportStems != 0 {
		t.Errorf("SupportStems = %d, want 0", result.SupportStems)
	}
	if result.DrainStems != 4 {
		t.Errorf("DrainStems = %d, want 4", result.DrainStems)
	}
	if result.Verdict != VerdictWeak {
		t.Errorf("Verdict = %v, want Weak (total=%d)", result.Verdict, result.Total)
	}
}

func TestAssessVerdictThresholds(t *testing.T) {
	cases := []struct {
		total int
		want  Verdict
	}{
		{3, VerdictStrong},
		{2, VerdictNeutral},
		{-2, VerdictNeutral},
		{-3, VerdictWeak},
	}
	for _, c := range cases {
		got := VerdictNeutral
		switch {
		case c.total >= 3:
			got = VerdictStrong
		case c.total <= -3:
			got = VerdictWeak
		}
		if got != c.want {
			t.Errorf("total=%d classified as %v, want %v", c.total, got, c.want)
		}
	}
}

func TestAssessStageIndexUsesMonthBranchNotDayBranch(t *testing.T) {
	dayStem := 0
	// Month branch at the day stem's own Changsheng branch yields stage
	// index 0, regardless of what the day branch is.
	ownChangsheng := 11 // changshengStart[0]
	yearP := sexagenary.Pillar{Stem: 2, Branch: 4}
	monthP := sexagenary.Pillar{Stem: 2, Branch: ownChangsheng}
	dayP := sexagenary.Pillar{Stem: dayStem, Branch: 6} // deliberately different branch
	hourP := sexagenary.Pillar{Stem: 2, Branch: 8}

	result := Assess(dayStem, [4]sexagenary.Pillar{yearP, monthP, dayP, hourP})
	if result.StageIndex != 0 {
		t.Errorf("StageIndex = %d, want 0 when month branch is the day stem's own Changsheng branch", result.StageIndex)
	}
}
