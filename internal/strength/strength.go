// Package strength is the day-master strength evaluator (C6): scores a
// day stem's support against the four pillars and classifies the result.
package strength

import "github.com/sajuscope/saju-engine/internal/sexagenary"

// Verdict is the final strength classification.
type Verdict int

const (
	VerdictStrong Verdict = iota
	VerdictWeak
	VerdictNeutral
)

func (v Verdict) String() string {
	switch v {
	case VerdictStrong:
		return "Strong"
	case VerdictWeak:
		return "Weak"
	default:
		return "Neutral"
	}
}

// Result is the full breakdown behind a strength Verdict.
type Result struct {
	StageIndex    int
	StageClass    sexagenary.StrengthClass
	RootCount     int
	SupportStems  int
	SupportHidden int
	DrainStems    int
	DrainHidden   int
	Total         int
	Verdict       Verdict
}

// Assess scores the day stem's strength against the four pillars
// (year, month, day, hour order): the Twelve-Stage index of the day stem
// against the month branch contributes a ±2 bonus, each pillar's stem
// contributes +2/-2 and each hidden stem +1/-1 per support/drain relation,
// and each
// pillar whose branch hides a stem of the day element's own element
// contributes one root. total >= 3 is Strong, total <= -3 is Weak,
// otherwise Neutral.
func Assess(dayStem int, pillars [4]sexagenary.Pillar) Result {
	dayElement := sexagenary.StemElement(dayStem)
	stageIndex := sexagenary.TwelveStageIndex(dayStem, pillars[1].Branch)
	stageClass := sexagenary.StageStrengthClass(stageIndex)

	var rootCount, supportStems, drainStems, supportHidden, drainHidden int

	for _, p := range pillars {
		switch sexagenary.RelationOf(dayElement, sexagenary.StemElement(p.Stem)) {
		case sexagenary.Same, sexagenary.Resource:
			supportStems++
		default:
			drainStems++
		}

		hasRoot := false
		for _, hidden := range sexagenary.HiddenStems(p.Branch) {
			if sexagenary.StemElement(hidden) == dayElement {
				hasRoot = true
			}
			switch sexagenary.RelationOf(dayElement, sexagenary.StemElement(hidden)) {
			case sexagenary.Same, sexagenary.Resource:
				supportHidden++
			default:
				drainHidden++
			}
		}
		if hasRoot {
			rootCount++
		}
	}

	stageBonus := 0
	switch stageClass {
	case sexagenary.Strong:
		stageBonus = 2
	case sexagenary.Weak:
		stageBonus = -2
	}
	supportTotal := supportStems*2 + supportHidden
	drainTotal := drainStems*2 + drainHidden
	total := stageBonus + rootCount + supportTotal - drainTotal

	verdict := VerdictNeutral
	switch {
	case total >= 3:
		verdict = VerdictStrong
	case total <= -3:
		verdict = VerdictWeak
	}

	return Result{
		StageIndex:    stageIndex,
		StageClass:    stageClass,
		RootCount:     rootCount,
		SupportStems:  supportStems,
		SupportHidden: supportHidden,
		DrainStems:    drainStems,
		DrainHidden:   drainHidden,
		Total:         total,
		Verdict:       verdict,
	}
}

// verdictFor classifies a strength total: >= 3 Strong, <= -3 Weak,
// otherwise Neutral.
func verdictFor(total int) Verdict {
	switch {
	case total >= 3:
		return VerdictStrong
	case total <= -3:
		return VerdictWeak
	}
	return VerdictNeutral
}
