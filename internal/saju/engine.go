// Package saju is the facade that wires the C1-C7 components together into
// a single chart computation, the shared entry point for cmd/sajucli and
// cmd/sajuapi.
package saju

import (
	"strings"
	"time"

	"github.com/sajuscope/saju-engine/internal/astro"
	"github.com/sajuscope/saju-engine/internal/localtime"
	"github.com/sajuscope/saju-engine/internal/luck"
	"github.com/sajuscope/saju-engine/internal/lunisolar"
	"github.com/sajuscope/saju-engine/internal/pillars"
	"github.com/sajuscope/saju-engine/internal/sajuerr"
	"github.com/sajuscope/saju-engine/internal/sexagenary"
	"github.com/sajuscope/saju-engine/internal/strength"
)

// CalendarKind selects whether the input date is a solar (Gregorian) or
// lunisolar date.
type CalendarKind int

const (
	Solar CalendarKind = iota
	Lunar
)

// Input is a birth record plus the luck-table windows to compute.
type Input struct {
	Date      string // YYYY-MM-DD
	Time      string // HH:MM or HH:MM:SS
	Calendar  CalendarKind
	LeapMonth bool
	TZ        string
	Gender    luck.Gender

	UseLocalMeanTime bool
	Longitude        *float64
	Location         string

	DaewonCount int
	MonthYear   *int
	YearStart   *int
	YearCount   int
}

// LMTInfo reports the local-mean-time correction applied, when requested.
type LMTInfo struct {
	Longitude         float64
	StdMeridian       float64
	CorrectionSeconds int64
	CorrectedLocal    time.Time
	LocationLabel     string
}

// Chart is the full computed result: pillars, annotations, strength, and
// luck tables.
type Chart struct {
	Pillars pillars.Chart

	ConvertedSolar *time.Time
	ConvertedLunar *lunisolar.LunarDate
	LMT            *LMTInfo
	TZName         string

	Strength strength.Result

	Direction         luck.Direction
	DaewonStartMonths int
	Daewon            []luck.DaewonItem

	YearlyLuck  []luck.YearLuck
	MonthlyLuck luck.MonthlyLuck
}

// Engine computes charts using an algorithmic lunisolar bridge bounded to
// the astronomical engine's supported year range.
type Engine struct {
	bridge *lunisolar.AlgorithmicBridge
}

// NewEngine returns an Engine supporting Gregorian years in [1900, 2100].
func NewEngine() *Engine {
	return &Engine{bridge: lunisolar.NewAlgorithmicBridge(1900, 2100)}
}

// Compute validates in and builds the full Chart.
func (e *Engine) Compute(in Input) (*Chart, error) {
	inputDate, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, sajuerr.Wrap(sajuerr.InputFormat, "date must be YYYY-MM-DD", err)
	}
	wallTime, err := parseTime(in.Time)
	if err != nil {
		return nil, err
	}
	if in.Calendar == Solar && in.LeapMonth {
		return nil, sajuerr.New(sajuerr.InputRange, "leap-month is only valid with calendar=lunar")
	}

	var convertedSolar *time.Time
	var convertedLunar *lunisolar.LunarDate
	var solarDate time.Time
	switch in.Calendar {
	case Solar:
		lunar, err := e.bridge.SolarToLunar(inputDate)
		if err != nil {
			return nil, err
		}
		convertedLunar = &lunar
		solarDate = inputDate
	case Lunar:
		solar, err := e.bridge.LunarToSolar(inputDate.Year(), int(inputDate.Month()), inputDate.Day(), in.LeapMonth)
		if err != nil {
			return nil, err
		}
		convertedSolar = &solar
		solarDate = solar
	}

	naive := time.Date(solarDate.Year(), solarDate.Month(), solarDate.Day(),
		wallTime.Hour(), wallTime.Minute(), wallTime.Second(), 0, time.UTC)

	zone, err := localtime.ParseZone(in.TZ)
	if err != nil {
		return nil, err
	}
	inputLocal, err := zone.Localize(naive)
	if err != nil {
		return nil, err
	}

	useLMT := in.UseLocalMeanTime || in.Longitude != nil || in.Location != ""
	local := inputLocal
	var lmtInfo *LMTInfo
	if useLMT {
		if in.Longitude != nil && in.Location != "" {
			return nil, sajuerr.New(sajuerr.InputRange, "use either longitude or location, not both")
		}
		var longitude float64
		var locationLabel string
		switch {
		case in.Longitude != nil:
			longitude = *in.Longitude
		case in.Location != "":
			match, err := localtime.ResolveLocation(in.Location)
			if err != nil {
				return nil, err
			}
			longitude = match.Longitude
			locationLabel = match.Display
		default:
			return nil, sajuerr.New(sajuerr.InputFormat, "longitude or location is required for local mean time")
		}
		if longitude < -180 || longitude > 180 {
			return nil, sajuerr.New(sajuerr.InputRange, "longitude must be between -180 and 180 degrees")
		}
		stdMeridian, correctionSeconds := localtime.LMTCorrection(longitude, zone.OffsetSeconds(inputLocal))
		correctedLocal := inputLocal.Add(time.Duration(correctionSeconds) * time.Second)
		lmtInfo = &LMTInfo{
			Longitude: longitude, StdMeridian: stdMeridian, CorrectionSeconds: correctionSeconds,
			CorrectedLocal: correctedLocal, LocationLabel: locationLabel,
		}
		local = correctedLocal
	}

	year := local.Year()
	termsPrev := astro.ComputeSolarTerms(year - 1)
	termsCurr := astro.ComputeSolarTerms(year)
	termsNext := astro.ComputeSolarTerms(year + 1)

	chart, err := pillars.AssembleChart(local, termsPrev, termsCurr, termsNext)
	if err != nil {
		return nil, err
	}

	direction, startMonths, err := luck.DaewonDirectionAndStart(in.Gender, chart, termsPrev, termsCurr, termsNext)
	if err != nil {
		return nil, err
	}
	daewonCount := in.DaewonCount
	if daewonCount <= 0 {
		daewonCount = 10
	}
	daewonPillars := luck.BuildDaewonPillars(chart.Month, direction, daewonCount)
	daewonItems := luck.BuildDaewonItems(startMonths, daewonPillars)

	monthYear := year
	if in.MonthYear != nil {
		monthYear = *in.MonthYear
	}
	yearStart := monthYear
	if in.YearStart != nil {
		yearStart = *in.YearStart
	}
	yearCount := in.YearCount
	if yearCount <= 0 {
		yearCount = 10
	}

	yearlyLuck, err := luck.YearlyLuck(yearStart, yearCount)
	if err != nil {
		return nil, err
	}
	monthlyLuck, err := luck.BuildMonthlyLuck(monthYear)
	if err != nil {
		return nil, err
	}

	result := strength.Assess(chart.Day.Stem, chart.Pillars())

	return &Chart{
		Pillars:           chart,
		ConvertedSolar:    convertedSolar,
		ConvertedLunar:    convertedLunar,
		LMT:               lmtInfo,
		TZName:            zone.Name(),
		Strength:          result,
		Direction:         direction,
		DaewonStartMonths: startMonths,
		Daewon:            daewonItems,
		YearlyLuck:        yearlyLuck,
		MonthlyLuck:       monthlyLuck,
	}, nil
}

func parseTime(input string) (time.Time, error) {
	if t, err := time.Parse("15:04:05", input); err == nil {
		return t, nil
	}
	if t, err := time.Parse("15:04", input); err == nil {
		return t, nil
	}
	return time.Time{}, sajuerr.New(sajuerr.InputFormat, "time format must be HH:MM or HH:MM:SS")
}

// ParseGender accepts male|female|m|f|남|여, case-insensitive.
func ParseGender(input string) (luck.Gender, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "male", "m", "남":
		return luck.Male, nil
	case "female", "f", "여":
		return luck.Female, nil
	default:
		return 0, sajuerr.New(sajuerr.InputFormat, "gender must be male|female|m|f|남|여")
	}
}

// ElementBalance returns the Wood/Fire/Earth/Metal/Water occurrence counts
// across the four pillars, named for presentation use.
func ElementBalance(pillars [4]sexagenary.Pillar) map[string]int {
	counts := sexagenary.ElementsCount(pillars)
	return map[string]int{
		"Wood": counts[0], "Fire": counts[1], "Earth": counts[2], "Metal": counts[3], "Water": counts[4],
	}
}
