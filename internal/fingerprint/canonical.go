package fingerprint

import (
	"encoding/json"
	"fmt"
)

// fixed4 marshals a float64 with exactly 4 decimal places so the canonical
// JSON bytes are stable across platforms regardless of floating-point
// formatting quirks.
type fixed4 float64

func (f fixed4) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%.4f", float64(f))), nil
}

type canonicalElement struct {
	Name  string `json:"name"`
	Ratio fixed4 `json:"ratio"`
}

type canonicalChart struct {
	YearPillar    string             `json:"yearPillar"`
	MonthPillar   string             `json:"monthPillar"`
	DayPillar     string             `json:"dayPillar"`
	HourPillar    string             `json:"hourPillar"`
	DayMaster     string             `json:"dayMaster"`
	StrengthScore int                `json:"strengthScore"`
	Verdict       string             `json:"verdict"`
	ElementRatios []canonicalElement `json:"elementRatios,omitempty"`
	BirthEpochSec int64              `json:"birthEpochSec"`
}

// Input is the subset of a computed chart that feeds a fingerprint: pillar
// labels, day-master strength, and element balance, plus the birth instant
// at one-second resolution.
type Input struct {
	YearPillar, MonthPillar, DayPillar, HourPillar string
	DayMaster                                      string
	StrengthScore                                  int
	Verdict                                         string
	ElementRatios                                   map[string]float64
	BirthEpochSec                                   int64
}

// CanonicalChartData builds a deterministic canonical JSON encoding of a
// chart, used as the input to ComputeSignatures.
func CanonicalChartData(in Input) ([]byte, error) {
	cc := canonicalChart{
		YearPillar:    in.YearPillar,
		MonthPillar:   in.MonthPillar,
		DayPillar:     in.DayPillar,
		HourPillar:    in.HourPillar,
		DayMaster:     in.DayMaster,
		StrengthScore: in.StrengthScore,
		Verdict:       in.Verdict,
		BirthEpochSec: in.BirthEpochSec,
	}

	if len(in.ElementRatios) > 0 {
		for _, name := range []string{"Wood", "Fire", "Earth", "Metal", "Water"} {
			if v, ok := in.ElementRatios[name]; ok {
				cc.ElementRatios = append(cc.ElementRatios, canonicalElement{Name: name, Ratio: fixed4(v)})
			}
		}
	}

	b, err := json.Marshal(cc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal canonical chart: %w", err)
	}
	return b, nil
}
