// Package luck is the decennial/annual/monthly luck generator (C7): builds
// the Daewon (decennial) progression, the yearly luck table, and the
// current year's monthly luck table from solar terms and the month pillar.
package luck

import (
	"github.com/sajuscope/saju-engine/internal/astro"
	"github.com/sajuscope/saju-engine/internal/pillars"
	"github.com/sajuscope/saju-engine/internal/sajuerr"
	"github.com/sajuscope/saju-engine/internal/sexagenary"
)

// Direction is the decennial progression direction.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Gender selects the decennial direction together with the year stem's
// yin/yang polarity.
type Gender int

const (
	Male Gender = iota
	Female
)

// DaewonDirection derives the decennial direction: forward for a yang year
// stem with a male chart or a yin year stem with a female chart, backward
// otherwise.
func DaewonDirection(gender Gender, yearStem int) Direction {
	yang := yearStem%2 == 0
	if (gender == Male && yang) || (gender == Female && !yang) {
		return Forward
	}
	return Backward
}

// daewonStartMonthsForDirection locates the nearest month-defining solar
// term in the progression direction from birthJD and converts the gap to
// months at 3 days per year (12 months).
func daewonStartMonthsForDirection(birthJD float64, all []astro.SolarTerm, dir Direction) (int, error) {
	var best *astro.SolarTerm
	for i := range all {
		t := all[i]
		if _, ok := monthBranchByKey[astro.TermDefs[t.DefIndex].Key]; !ok {
			continue
		}
		switch dir {
		case Forward:
			if t.JD > birthJD && (best == nil || t.JD < best.JD) {
				best = &t
			}
		case Backward:
			if t.JD < birthJD && (best == nil || t.JD > best.JD) {
				best = &t
			}
		}
	}
	if best == nil {
		return 0, sajuerr.New(sajuerr.Astronomical, "failed to find solar term for daewon start")
	}
	diffDays := best.JD - birthJD
	if diffDays < 0 {
		diffDays = -diffDays
	}
	months := int(roundHalfAwayFromZero(diffDays / 3.0 * 12.0))
	return months, nil
}

func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return float64(int64(v + 0.5))
	}
	return float64(int64(v - 0.5))
}

// DaewonItem is one decade of the decennial progression.
type DaewonItem struct {
	StartMonths int
	Pillar      sexagenary.Pillar
}

// BuildDaewonPillars steps the month pillar forward or backward by one
// stem/branch per decade, count decades deep.
func BuildDaewonPillars(month sexagenary.Pillar, dir Direction, count int) []sexagenary.Pillar {
	result := make([]sexagenary.Pillar, 0, count)
	stem, branch := month.Stem, month.Branch
	for i := 0; i < count; i++ {
		switch dir {
		case Forward:
			stem = (stem + 1) % 10
			branch = (branch + 1) % 12
		case Backward:
			stem = euclidMod(stem-1, 10)
			branch = euclidMod(branch-1, 12)
		}
		result = append(result, sexagenary.Pillar{Stem: stem, Branch: branch})
	}
	return result
}

// BuildDaewonItems attaches each decade's onset age (in months from birth)
// to its pillar.
func BuildDaewonItems(startMonths int, decadePillars []sexagenary.Pillar) []DaewonItem {
	items := make([]DaewonItem, len(decadePillars))
	for i, p := range decadePillars {
		items[i] = DaewonItem{StartMonths: startMonths + i*120, Pillar: p}
	}
	return items
}

func euclidMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// YearLuck is one civil year's annual-luck interval (Lichun to next Lichun)
// and its year pillar.
type YearLuck struct {
	Year           int
	StartJD, EndJD float64
	Pillar         sexagenary.Pillar
}

// YearlyLuck builds count consecutive years of annual luck starting at
// startYear.
func YearlyLuck(startYear, count int) ([]YearLuck, error) {
	results := make([]YearLuck, 0, count)
	for i := 0; i < count; i++ {
		year := startYear + i
		termsCurr := astro.ComputeSolarTerms(year)
		termsNext := astro.ComputeSolarTerms(year + 1)
		lichunCurr, ok := astro.FindTerm(termsCurr, "lichun")
		if !ok {
			return nil, sajuerr.New(sajuerr.Astronomical, "failed to find lichun for yearly luck")
		}
		lichunNext, ok := astro.FindTerm(termsNext, "lichun")
		if !ok {
			return nil, sajuerr.New(sajuerr.Astronomical, "failed to find next lichun for yearly luck")
		}
		yearPillar := sexagenary.YearPillar(year)
		results = append(results, YearLuck{
			Year: year, StartJD: lichunCurr.JD, EndJD: lichunNext.JD, Pillar: yearPillar,
		})
	}
	return results, nil
}

// MonthLuck is one monthly-luck interval, between two consecutive
// month-defining solar terms of a Lichun-to-Lichun year.
type MonthLuck struct {
	StartJD, EndJD float64
	Pillar         sexagenary.Pillar
	Branch         int
}

// MonthlyLuck is the twelve MonthLuck intervals spanning one Lichun-to-Lichun
// civil year, plus the year pillar they're anchored to.
type MonthlyLuck struct {
	Year       int
	YearPillar sexagenary.Pillar
	Months     []MonthLuck
}

// BuildMonthlyLuck builds the twelve month-defining-term boundaries of
// civil year's Lichun-to-next-Lichun window, requiring at least 13
// boundaries (12 complete intervals) and truncating any leading term that
// precedes the year's own Lichun.
func BuildMonthlyLuck(year int) (MonthlyLuck, error) {
	termsCurr := astro.ComputeSolarTerms(year)
	termsNext := astro.ComputeSolarTerms(year + 1)
	lichunCurr, ok := astro.FindTerm(termsCurr, "lichun")
	if !ok {
		return MonthlyLuck{}, sajuerr.New(sajuerr.Astronomical, "failed to find lichun term for monthly luck")
	}
	lichunNext, ok := astro.FindTerm(termsNext, "lichun")
	if !ok {
		return MonthlyLuck{}, sajuerr.New(sajuerr.Astronomical, "failed to find next lichun term for monthly luck")
	}

	var boundaries []astro.SolarTerm
	collect := func(terms []astro.SolarTerm) {
		for _, t := range terms {
			if _, ok := monthBranchByKey[astro.TermDefs[t.DefIndex].Key]; ok {
				boundaries = append(boundaries, t)
			}
		}
	}
	collect(termsCurr)
	collect(termsNext)
	sortTermsByJD(boundaries)

	filtered := boundaries[:0:0]
	for _, t := range boundaries {
		if t.JD >= lichunCurr.JD && t.JD <= lichunNext.JD {
			filtered = append(filtered, t)
		}
	}
	boundaries = filtered

	if len(boundaries) == 0 {
		return MonthlyLuck{}, sajuerr.New(sajuerr.Astronomical, "failed to build monthly boundaries")
	}
	if astro.TermDefs[boundaries[0].DefIndex].Key != "lichun" {
		for i, t := range boundaries {
			if astro.TermDefs[t.DefIndex].Key == "lichun" {
				boundaries = boundaries[i:]
				break
			}
		}
	}
	if len(boundaries) < 13 {
		return MonthlyLuck{}, sajuerr.New(sajuerr.Astronomical, "monthly boundary count insufficient")
	}

	yearPillar := sexagenary.YearPillar(year)
	months := make([]MonthLuck, 0, 12)
	for i := 0; i < 12; i++ {
		start, end := boundaries[i], boundaries[i+1]
		branch, ok := monthBranchByKey[astro.TermDefs[start.DefIndex].Key]
		if !ok {
			return MonthlyLuck{}, sajuerr.New(sajuerr.Astronomical, "invalid month boundary for monthly luck")
		}
		stem := sexagenary.MonthStem(yearPillar.Stem, branch)
		months = append(months, MonthLuck{
			StartJD: start.JD, EndJD: end.JD,
			Pillar: sexagenary.Pillar{Stem: stem, Branch: branch}, Branch: branch,
		})
	}

	return MonthlyLuck{Year: year, YearPillar: yearPillar, Months: months}, nil
}

var monthBranchByKey = map[string]int{
	"lichun": 2, "jingzhe": 3, "qingming": 4, "lixia": 5, "mangzhong": 6,
	"xiaoshu": 7, "liqiu": 8, "bailu": 9, "hanlu": 10, "lidong": 11,
	"daxue": 0, "xiaohan": 1,
}

func sortTermsByJD(terms []astro.SolarTerm) {
	for i := 1; i < len(terms); i++ {
		for j := i; j > 0 && terms[j].JD < terms[j-1].JD; j-- {
			terms[j], terms[j-1] = terms[j-1], terms[j]
		}
	}
}

// DaewonDirectionAndStart is the convenience entry point combining
// DaewonDirection and daewonStartMonthsForDirection, matching how
// internal/saju's facade wires pillars.Chart into this package.
func DaewonDirectionAndStart(gender Gender, chart pillars.Chart, termsPrev, termsCurr, termsNext []astro.SolarTerm) (Direction, int, error) {
	dir := DaewonDirection(gender, chart.Year.Stem)
	all := make([]astro.SolarTerm, 0, len(termsPrev)+len(termsCurr)+len(termsNext))
	all = append(all, termsPrev...)
	all = append(all, termsCurr...)
	all = append(all, termsNext...)
	months, err := daewonStartMonthsForDirection(chart.BirthJD, all, dir)
	if err != nil {
		return dir, 0, err
	}
	return dir, months, nil
}
