// Package pillars is the pillar assembler (C5): combines a localized birth
// instant with the surrounding years' solar terms to produce the four
// Year/Month/Day/Hour pillars, applying the Lichun year boundary, the
// last-term-before-birth month rule, and the 23:00 day-boundary shift.
package pillars

import (
	"time"

	"github.com/sajuscope/saju-engine/internal/astro"
	"github.com/sajuscope/saju-engine/internal/sajuerr"
	"github.com/sajuscope/saju-engine/internal/sexagenary"
)

// Chart is the assembled four-pillar result plus the inputs later stages
// (strength, luck) need.
type Chart struct {
	Year          sexagenary.Pillar
	Month         sexagenary.Pillar
	Day           sexagenary.Pillar
	Hour          sexagenary.Pillar
	YearForPillar int
	BirthJD       float64
}

// monthBranchByTermKey maps a month-defining ("jie") solar term key to the
// branch it opens, per the classical Lichun-anchored month boundary rule.
var monthBranchByTermKey = map[string]int{
	"lichun":    2,
	"jingzhe":   3,
	"qingming":  4,
	"lixia":     5,
	"mangzhong": 6,
	"xiaoshu":   7,
	"liqiu":     8,
	"bailu":     9,
	"hanlu":     10,
	"lidong":    11,
	"daxue":     0,
	"xiaohan":   1,
}

// MonthBranchForBirth returns the month branch opened by the last
// month-defining term at or before birthJD, searching the previous and
// current year's solar terms.
func MonthBranchForBirth(birthJD float64, termsPrev, termsCurr []astro.SolarTerm) (int, error) {
	var last *astro.SolarTerm
	consider := func(terms []astro.SolarTerm) {
		for i := range terms {
			t := terms[i]
			if _, ok := monthBranchByTermKey[astro.TermDefs[t.DefIndex].Key]; !ok {
				continue
			}
			if t.JD > birthJD {
				continue
			}
			if last == nil || t.JD > last.JD {
				last = &t
			}
		}
	}
	consider(termsPrev)
	consider(termsCurr)
	if last == nil {
		return 0, sajuerr.New(sajuerr.Astronomical, "failed to determine month boundary")
	}
	branch, ok := monthBranchByTermKey[astro.TermDefs[last.DefIndex].Key]
	if !ok {
		return 0, sajuerr.New(sajuerr.Astronomical, "invalid month boundary term")
	}
	return branch, nil
}

// AssembleChart builds the four pillars for a localized birth instant.
// termsPrev, termsCurr, and termsNext must be the solar terms of the
// civil years local.Year()-1, local.Year(), and local.Year()+1.
func AssembleChart(local time.Time, termsPrev, termsCurr, termsNext []astro.SolarTerm) (Chart, error) {
	birthJD := astro.JDFromDatetime(local)

	lichun, ok := astro.FindTerm(termsCurr, "lichun")
	if !ok {
		return Chart{}, sajuerr.New(sajuerr.Astronomical, "failed to find lichun term")
	}
	yearForPillar := local.Year()
	if birthJD < lichun.JD {
		yearForPillar--
	}
	yearPillar := sexagenary.YearPillar(yearForPillar)

	monthBranch, err := MonthBranchForBirth(birthJD, termsPrev, termsCurr)
	if err != nil {
		return Chart{}, err
	}
	monthStem := sexagenary.MonthStem(yearPillar.Stem, monthBranch)
	monthPillar := sexagenary.Pillar{Stem: monthStem, Branch: monthBranch}

	dateForDay := local
	if local.Hour() >= 23 {
		dateForDay = dateForDay.AddDate(0, 0, 1)
	}
	jdn := sexagenary.JDNFromDate(dateForDay.Year(), int(dateForDay.Month()), dateForDay.Day())
	dayPillar := sexagenary.DayPillar(jdn)

	hourBranch := sexagenary.HourBranchIndex(local.Hour(), local.Minute())
	hourStem := sexagenary.HourStem(dayPillar.Stem, hourBranch)
	hourPillar := sexagenary.Pillar{Stem: hourStem, Branch: hourBranch}

	_ = termsNext // kept for signature symmetry with luck.DaewonDirectionAndStart, which does use it
	return Chart{
		Year:          yearPillar,
		Month:         monthPillar,
		Day:           dayPillar,
		Hour:          hourPillar,
		YearForPillar: yearForPillar,
		BirthJD:       birthJD,
	}, nil
}

// Pillars returns the four pillars in Year, Month, Day, Hour order, the
// canonical ordering used by internal/strength.Assess and
// internal/sexagenary.ElementsCount.
func (c Chart) Pillars() [4]sexagenary.Pillar {
	return [4]sexagenary.Pillar{c.Year, c.Month, c.Day, c.Hour}
}
