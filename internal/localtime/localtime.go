// Package localtime is the local-time resolver (C4): localizes a wall-clock
// instant in a named or fixed-offset zone and applies longitude-based
// local-mean-time correction.
package localtime

import (
	"strconv"
	"strings"
	"time"

	"github.com/sajuscope/saju-engine/internal/sajuerr"
)

// Zone resolves civil wall-clock instants to a unique offset instant.
type Zone struct {
	loc        *time.Location
	fixedName  string
	isFixed    bool
	fixedSecs  int
}

// ParseZone parses either a fixed signed offset (±HH:MM or ±HHMM) or an
// IANA zone name (e.g. Asia/Seoul).
func ParseZone(input string) (*Zone, error) {
	if secs, ok := parseFixedOffset(input); ok {
		name := formatOffsetName(secs)
		return &Zone{
			loc:       time.FixedZone(name, secs),
			fixedName: name,
			isFixed:   true,
			fixedSecs: secs,
		}, nil
	}
	loc, err := time.LoadLocation(input)
	if err != nil {
		return nil, sajuerr.Wrap(sajuerr.InputFormat,
			"timezone must be an IANA name (e.g. Asia/Seoul) or offset (+09:00)", err)
	}
	return &Zone{loc: loc, fixedName: input}, nil
}

// Name returns the zone's display name.
func (z *Zone) Name() string {
	return z.fixedName
}

// Localize maps a civil date-time to a unique instant with offset. When the
// IANA zone is ambiguous (fall-back), the earlier offset is chosen; when the
// instant does not exist (spring-forward gap), the operation fails with
// CalendarConflict.
func (z *Zone) Localize(naive time.Time) (time.Time, error) {
	// time.Date with the target location silently shifts nonexistent instants
	// forward by the gap duration and does not guarantee which offset it picks
	// for ambiguous instants, so nonexistence is detected by round-tripping
	// the wall clock and the earlier of two overlapping instants is chosen
	// explicitly below.
	candidate := time.Date(naive.Year(), naive.Month(), naive.Day(),
		naive.Hour(), naive.Minute(), naive.Second(), naive.Nanosecond(), z.loc)

	if candidate.Year() != naive.Year() || candidate.Month() != naive.Month() ||
		candidate.Day() != naive.Day() || candidate.Hour() != naive.Hour() ||
		candidate.Minute() != naive.Minute() {
		return time.Time{}, sajuerr.New(sajuerr.CalendarConflict,
			"local time does not exist in this timezone")
	}

	// In a fall-back overlap the same wall clock also occurs under the offset
	// in force before the transition; that reading is the earlier instant.
	_, prevOffset := candidate.Add(-12 * time.Hour).In(z.loc).Zone()
	wallAsUTC := time.Date(naive.Year(), naive.Month(), naive.Day(),
		naive.Hour(), naive.Minute(), naive.Second(), naive.Nanosecond(), time.UTC)
	earlier := wallAsUTC.Add(-time.Duration(prevOffset) * time.Second).In(z.loc)
	if earlier.Before(candidate) && earlier.Day() == candidate.Day() &&
		earlier.Hour() == candidate.Hour() && earlier.Minute() == candidate.Minute() {
		candidate = earlier
	}
	return candidate, nil
}

// ToLocal converts a UTC instant into this zone's local representation.
func (z *Zone) ToLocal(utc time.Time) time.Time {
	return utc.In(z.loc)
}

// OffsetSeconds returns the zone's UTC offset in seconds for a given instant.
func (z *Zone) OffsetSeconds(at time.Time) int {
	_, offset := at.In(z.loc).Zone()
	return offset
}

func parseFixedOffset(input string) (int, bool) {
	trimmed := strings.TrimSpace(input)
	if len(trimmed) == 0 {
		return 0, false
	}
	var sign int
	switch trimmed[0] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return 0, false
	}
	rest := trimmed[1:]

	var hoursStr, minsStr string
	if idx := strings.Index(rest, ":"); idx >= 0 {
		hoursStr, minsStr = rest[:idx], rest[idx+1:]
	} else if len(rest) == 4 {
		hoursStr, minsStr = rest[0:2], rest[2:4]
	} else {
		return 0, false
	}

	hours, err := strconv.Atoi(hoursStr)
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(minsStr)
	if err != nil {
		return 0, false
	}
	if hours > 23 || minutes > 59 {
		return 0, false
	}
	return sign * (hours*3600 + minutes*60), true
}

func formatOffsetName(totalSeconds int) string {
	sign := "+"
	abs := totalSeconds
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	hours := abs / 3600
	minutes := (abs % 3600) / 60
	return sign + pad2(hours) + ":" + pad2(minutes)
}

func pad2(n int) string {
	s := strconv.Itoa(n)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

// LMTCorrection computes the standard meridian and the local-mean-time
// correction in seconds for a given longitude and the local offset in
// seconds: standard_meridian = (offset/3600)*15,
// correction = round((longitude - standard_meridian) * 240).
func LMTCorrection(longitude float64, offsetSeconds int) (stdMeridian float64, correctionSeconds int64) {
	stdMeridian = float64(offsetSeconds) / 3600.0 * 15.0
	correctionSeconds = int64(roundHalfAwayFromZero((longitude - stdMeridian) * 240.0))
	return
}

func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return float64(int64(v + 0.5))
	}
	return float64(int64(v - 0.5))
}
