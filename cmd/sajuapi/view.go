package main

import (
	"fmt"
	"time"

	"github.com/sajuscope/saju-engine/internal/fingerprint"
	"github.com/sajuscope/saju-engine/internal/i18n"
	"github.com/sajuscope/saju-engine/internal/saju"
	"github.com/sajuscope/saju-engine/internal/sexagenary"
)

// PillarView is a single pillar rendered for JSON output: raw indices plus
// a human-readable label.
type PillarView struct {
	Stem        int    `json:"stem"`
	Branch      int    `json:"branch"`
	Label       string `json:"label"`
	StemElement string `json:"stemElement"`
	BranchElement string `json:"branchElement"`
}

type LMTView struct {
	Longitude         float64   `json:"longitude"`
	StdMeridian       float64   `json:"stdMeridian"`
	CorrectionSeconds int64     `json:"correctionSeconds"`
	CorrectedLocal    time.Time `json:"correctedLocal"`
	LocationLabel     string    `json:"locationLabel,omitempty"`
}

type StrengthView struct {
	StageIndex int    `json:"stageIndex"`
	StageLabel string `json:"stageLabel"`
	RootCount  int    `json:"rootCount"`
	Total      int    `json:"total"`
	Verdict    string `json:"verdict"`
}

type DaewonView struct {
	StartMonths int        `json:"startMonths"`
	Pillar      PillarView `json:"pillar"`
}

type YearLuckView struct {
	Year    int        `json:"year"`
	StartJD float64    `json:"startJd"`
	EndJD   float64    `json:"endJd"`
	Pillar  PillarView `json:"pillar"`
}

type MonthLuckView struct {
	StartJD float64    `json:"startJd"`
	EndJD   float64    `json:"endJd"`
	Pillar  PillarView `json:"pillar"`
}

// ChartView is the JSON response body for POST /api/chart.
type ChartView struct {
	Year  PillarView `json:"year"`
	Month PillarView `json:"month"`
	Day   PillarView `json:"day"`
	Hour  PillarView `json:"hour"`

	ConvertedSolar *string `json:"convertedSolar,omitempty"`
	ConvertedLunar *string `json:"convertedLunar,omitempty"`
	LMT            *LMTView `json:"lmt,omitempty"`
	Timezone       string   `json:"timezone"`

	Strength StrengthView `json:"strength"`

	Direction         string         `json:"direction"`
	DaewonStartMonths int            `json:"daewonStartMonths"`
	Daewon            []DaewonView   `json:"daewon"`
	YearlyLuck        []YearLuckView `json:"yearlyLuck"`
	MonthlyLuck       []MonthLuckView `json:"monthlyLuck"`

	ElementBalance map[string]int `json:"elementBalance"`
}

func buildChartView(chart *saju.Chart, label *i18n.I18n) ChartView {
	pv := func(stem, branch int) PillarView {
		p := sexagenary.Pillar{Stem: stem, Branch: branch}
		return PillarView{
			Stem: stem, Branch: branch,
			Label:         label.PillarLabel(p),
			StemElement:   label.ElementShortLabel(sexagenary.StemElement(stem)),
			BranchElement: label.ElementShortLabel(sexagenary.BranchElement(branch)),
		}
	}

	view := ChartView{
		Year:  pv(chart.Pillars.Year.Stem, chart.Pillars.Year.Branch),
		Month: pv(chart.Pillars.Month.Stem, chart.Pillars.Month.Branch),
		Day:   pv(chart.Pillars.Day.Stem, chart.Pillars.Day.Branch),
		Hour:  pv(chart.Pillars.Hour.Stem, chart.Pillars.Hour.Branch),

		Timezone: chart.TZName,

		Strength: StrengthView{
			StageIndex: chart.Strength.StageIndex,
			StageLabel: label.StageLabel(chart.Strength.StageIndex),
			RootCount:  chart.Strength.RootCount,
			Total:      chart.Strength.Total,
			Verdict:    chart.Strength.Verdict.String(),
		},

		Direction:         chart.Direction.String(),
		DaewonStartMonths: chart.DaewonStartMonths,

		ElementBalance: saju.ElementBalance(chart.Pillars.Pillars()),
	}

	if chart.ConvertedSolar != nil {
		s := chart.ConvertedSolar.Format("2006-01-02")
		view.ConvertedSolar = &s
	}
	if chart.ConvertedLunar != nil {
		l := chart.ConvertedLunar
		suffix := ""
		if l.IsLeap {
			suffix = " (leap)"
		}
		s := fmt.Sprintf("%04d-%02d-%02d%s", l.Year, l.Month, l.Day, suffix)
		view.ConvertedLunar = &s
	}
	if chart.LMT != nil {
		view.LMT = &LMTView{
			Longitude: chart.LMT.Longitude, StdMeridian: chart.LMT.StdMeridian,
			CorrectionSeconds: chart.LMT.CorrectionSeconds, CorrectedLocal: chart.LMT.CorrectedLocal,
			LocationLabel: chart.LMT.LocationLabel,
		}
	}

	for _, item := range chart.Daewon {
		view.Daewon = append(view.Daewon, DaewonView{
			StartMonths: item.StartMonths,
			Pillar:      pv(item.Pillar.Stem, item.Pillar.Branch),
		})
	}
	for _, y := range chart.YearlyLuck {
		view.YearlyLuck = append(view.YearlyLuck, YearLuckView{
			Year: y.Year, StartJD: y.StartJD, EndJD: y.EndJD,
			Pillar: pv(y.Pillar.Stem, y.Pillar.Branch),
		})
	}
	for _, m := range chart.MonthlyLuck.Months {
		view.MonthlyLuck = append(view.MonthlyLuck, MonthLuckView{
			StartJD: m.StartJD, EndJD: m.EndJD,
			Pillar: pv(m.Pillar.Stem, m.Pillar.Branch),
		})
	}

	return view
}

func viewToFingerprintInput(v ChartView) fingerprint.Input {
	ratios := map[string]float64{}
	total := 0
	for _, c := range v.ElementBalance {
		total += c
	}
	if total > 0 {
		for name, c := range v.ElementBalance {
			ratios[name] = float64(c) / float64(total)
		}
	}
	return fingerprint.Input{
		YearPillar: v.Year.Label, MonthPillar: v.Month.Label, DayPillar: v.Day.Label, HourPillar: v.Hour.Label,
		DayMaster: v.Day.Label, StrengthScore: v.Strength.Total, Verdict: v.Strength.Verdict,
		ElementRatios: ratios,
	}
}
