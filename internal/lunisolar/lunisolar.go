// Package lunisolar is the lunisolar bridge (C3): converts between civil
// Gregorian dates and lunisolar dates (year, month, day, leap-month flag).
//
// The spec treats the backing table as a replaceable external collaborator
// (§4.3, §6.3) and explicitly puts "any precomputed lunisolar conversion
// table" out of scope as a collaborator the core depends on. Rather than
// hand-authoring such a table, this package computes lunar months
// algorithmically: new-moon instants located via
// github.com/soniakeys/meeus/v3/moonphase, paired with the 12 major
// ("zhongqi") solar terms from internal/astro, applying the standard
// no-major-term-means-leap-month rule. This satisfies the Bridge contract
// below without an external data dependency.
package lunisolar

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/moonphase"

	"github.com/sajuscope/saju-engine/internal/astro"
	"github.com/sajuscope/saju-engine/internal/sajuerr"
)

// Bridge is the external contract the core depends on (§4.3).
type Bridge interface {
	SolarToLunar(date time.Time) (LunarDate, error)
	LunarToSolar(year, month, day int, isLeap bool) (time.Time, error)
}

// LunarDate is (year, month in [1,12], day in [1,30], leap-month flag).
type LunarDate struct {
	Year   int
	Month  int
	Day    int
	IsLeap bool
}

// AlgorithmicBridge implements Bridge by computing lunar months from new
// moons and solar terms rather than a lookup table.
type AlgorithmicBridge struct {
	minYear, maxYear int
}

// NewAlgorithmicBridge returns a Bridge supporting Gregorian years in
// [minYear, maxYear], the common-era range this package's astronomical
// engine is accurate over (spec §8 exercises 1900-2100).
func NewAlgorithmicBridge(minYear, maxYear int) *AlgorithmicBridge {
	return &AlgorithmicBridge{minYear: minYear, maxYear: maxYear}
}

// zhongqiKeys are the 12 "major term" solar-term keys that define lunar
// month numbers and the leap-month rule: a lunar month containing none of
// these is the leap month of the preceding month.
var zhongqiKeys = map[string]bool{
	"yushui": true, "chunfen": true, "guyu": true, "xiaoman": true,
	"xiazhi": true, "dashu": true, "chushu": true, "qiufen": true,
	"shuangjiang": true, "xiaoxue": true, "dongzhi": true, "dahan": true,
}

type lunarMonth struct {
	startJD, endJD float64
	number         int
	isLeap         bool
	lunarYear      int
}

func (b *AlgorithmicBridge) checkRange(year int) error {
	if year < b.minYear || year > b.maxYear {
		return sajuerr.Newf(sajuerr.LunisolarOutOfRange,
			"lunar date year %d outside supported range [%d, %d]", year, b.minYear, b.maxYear)
	}
	return nil
}

// SolarToLunar converts a Gregorian civil date to its lunisolar equivalent.
func (b *AlgorithmicBridge) SolarToLunar(date time.Time) (LunarDate, error) {
	year := date.Year()
	if err := b.checkRange(year); err != nil {
		return LunarDate{}, err
	}
	jd := astro.JDFromDatetime(time.Date(year, date.Month(), date.Day(), 12, 0, 0, 0, time.UTC))

	for _, anchor := range []int{year - 1, year} {
		months, err := buildLunarYearMonths(anchor)
		if err != nil {
			continue
		}
		for _, m := range months {
			if jd >= m.startJD && jd < m.endJD {
				day := int(math.Floor(jd-m.startJD)) + 1
				return LunarDate{Year: m.lunarYear, Month: m.number, Day: day, IsLeap: m.isLeap}, nil
			}
		}
	}
	return LunarDate{}, sajuerr.Newf(sajuerr.LunisolarOutOfRange,
		"unable to place %04d-%02d-%02d in a lunar month", year, int(date.Month()), date.Day())
}

// LunarToSolar converts a lunisolar date back to its Gregorian equivalent.
func (b *AlgorithmicBridge) LunarToSolar(year, month, day int, isLeap bool) (time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, sajuerr.Newf(sajuerr.InputRange, "lunar month must be in [1,12], got %d", month)
	}
	if day < 1 || day > 30 {
		return time.Time{}, sajuerr.Newf(sajuerr.InputRange, "lunar day must be in [1,30], got %d", day)
	}

	anchor := year - 1
	if month == 11 || month == 12 {
		anchor = year
	}
	if err := b.checkRange(anchor); err != nil {
		return time.Time{}, err
	}

	months, err := buildLunarYearMonths(anchor)
	if err != nil {
		return time.Time{}, err
	}
	for _, m := range months {
		if m.number == month && m.isLeap == isLeap && m.lunarYear == year {
			// Day n is the civil date of the n-th UTC noon (integral JD) at or
			// after the new moon, the same counting SolarToLunar uses.
			dayCount := int(math.Ceil(m.endJD) - math.Ceil(m.startJD))
			if day > dayCount {
				return time.Time{}, sajuerr.Newf(sajuerr.LunisolarOutOfRange,
					"lunar month %d (leap=%v) of year %d has only %d days, got day %d",
					month, isLeap, year, dayCount, day)
			}
			targetJD := math.Ceil(m.startJD) + float64(day-1)
			t := astro.DatetimeFromJD(targetJD)
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, sajuerr.Newf(sajuerr.LunisolarOutOfRange,
		"no lunar month %d (leap=%v) found for year %d", month, isLeap, year)
}

// buildLunarYearMonths builds the month-interval table anchored at the
// winter solstice (Dongzhi) of Gregorian year anchorYear: months 11 and 12
// of anchorYear, followed by months 1-10 of anchorYear+1, inserting a leap
// month wherever a lunar month contains no zhongqi term.
func buildLunarYearMonths(anchorYear int) ([]lunarMonth, error) {
	termsByYear := map[int][]astro.SolarTerm{}
	termsFor := func(y int) []astro.SolarTerm {
		if t, ok := termsByYear[y]; ok {
			return t
		}
		t := astro.ComputeSolarTerms(y)
		termsByYear[y] = t
		return t
	}

	ws0Term, ok := astro.FindTerm(termsFor(anchorYear), "dongzhi")
	if !ok {
		return nil, sajuerr.New(sajuerr.Astronomical, "failed to locate dongzhi for lunar year anchor")
	}
	ws1Term, ok := astro.FindTerm(termsFor(anchorYear+1), "dongzhi")
	if !ok {
		return nil, sajuerr.New(sajuerr.Astronomical, "failed to locate dongzhi for following lunar year")
	}
	ws0, ws1 := ws0Term.JD, ws1Term.JD

	// Locate the new moon on or before ws0 (starts month 11).
	cur := newMoonNear(ws0 - 15)
	for {
		next := newMoonNear(cur + synodicMonth)
		if next <= ws0 {
			cur = next
			continue
		}
		break
	}
	if cur > ws0 {
		cur = newMoonNear(cur - synodicMonth)
	}

	moons := []float64{cur}
	for moons[len(moons)-1] < ws1+synodicMonth {
		next := newMoonNear(moons[len(moons)-1] + synodicMonth)
		if next <= moons[len(moons)-1] {
			next = moons[len(moons)-1] + synodicMonth
		}
		moons = append(moons, next)
		if len(moons) > 16 {
			break
		}
	}

	zhongqiBetween := func(start, end float64) bool {
		for _, y := range []int{anchorYear - 1, anchorYear, anchorYear + 1, anchorYear + 2} {
			for _, t := range termsFor(y) {
				if zhongqiKeys[astro.TermDefs[t.DefIndex].Key] && t.JD >= start && t.JD < end {
					return true
				}
			}
		}
		return false
	}

	// Index of the month interval containing ws0 (dongzhi) - that's month 11.
	ws0Idx := -1
	for i := 0; i < len(moons)-1; i++ {
		if moons[i] <= ws0 && ws0 < moons[i+1] {
			ws0Idx = i
			break
		}
	}
	if ws0Idx < 0 {
		return nil, sajuerr.New(sajuerr.Astronomical, "failed to bracket dongzhi with a new-moon month")
	}

	var months []lunarMonth
	number := 11
	lunarYear := anchorYear
	for i := ws0Idx; i < len(moons)-1; i++ {
		start, end := moons[i], moons[i+1]
		isLeap := false
		if i > ws0Idx {
			if zhongqiBetween(start, end) {
				number = number%12 + 1
				if number == 1 {
					lunarYear = anchorYear + 1
				}
			} else {
				isLeap = true
			}
		}
		months = append(months, lunarMonth{
			startJD: start, endJD: end, number: number, isLeap: isLeap, lunarYear: lunarYear,
		})
		if number == 10 && lunarYear == anchorYear+1 && !isLeap {
			break
		}
	}
	return months, nil
}

const synodicMonth = 29.530588861

// newMoonNear returns the JDE of the new moon nearest the instant jd
// (expressed as a Julian Date), via the decimal-year parameterization
// moonphase.New expects.
func newMoonNear(jd float64) float64 {
	year := decimalYear(jd)
	return moonphase.New(year)
}

func decimalYear(jd float64) float64 {
	return 2000.0 + (jd-2451545.0)/365.25
}
