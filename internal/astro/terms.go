// Package astro is the solar-longitude engine (C1): Julian Date conversions
// and the Sun's apparent ecliptic longitude, used to locate the 24 solar
// terms of a Gregorian year to sub-minute precision.
package astro

import (
	"math"
	"time"
)

// TermDef is an immutable definition of one of the 24 solar terms: a stable
// key, multilingual display names, and the Sun's ecliptic longitude target
// in degrees.
type TermDef struct {
	Key      string
	NameKo   string
	NameHanja string
	NameEn   string
	Angle    float64
}

// TermDefs holds the 24 solar-term definitions in calendar order, starting
// at Xiaohan (285°). Index into this array is the stable identity of a term;
// a SolarTerm never owns a copy of the definition.
var TermDefs = [24]TermDef{
	{"xiaohan", "소한", "小寒", "Xiaohan", 285.0},
	{"dahan", "대한", "大寒", "Dahan", 300.0},
	{"lichun", "입춘", "立春", "Lichun", 315.0},
	{"yushui", "우수", "雨水", "Yushui", 330.0},
	{"jingzhe", "경칩", "驚蟄", "Jingzhe", 345.0},
	{"chunfen", "춘분", "春分", "Chunfen", 0.0},
	{"qingming", "청명", "清明", "Qingming", 15.0},
	{"guyu", "곡우", "谷雨", "Guyu", 30.0},
	{"lixia", "입하", "立夏", "Lixia", 45.0},
	{"xiaoman", "소만", "小滿", "Xiaoman", 60.0},
	{"mangzhong", "망종", "芒種", "Mangzhong", 75.0},
	{"xiazhi", "하지", "夏至", "Xiazhi", 90.0},
	{"xiaoshu", "소서", "小暑", "Xiaoshu", 105.0},
	{"dashu", "대서", "大暑", "Dashu", 120.0},
	{"liqiu", "입추", "立秋", "Liqiu", 135.0},
	{"chushu", "처서", "處暑", "Chushu", 150.0},
	{"bailu", "백로", "白露", "Bailu", 165.0},
	{"qiufen", "추분", "秋分", "Qiufen", 180.0},
	{"hanlu", "한로", "寒露", "Hanlu", 195.0},
	{"shuangjiang", "상강", "霜降", "Shuangjiang", 210.0},
	{"lidong", "입동", "立冬", "Lidong", 225.0},
	{"xiaoxue", "소설", "小雪", "Xiaoxue", 240.0},
	{"daxue", "대설", "大雪", "Daxue", 255.0},
	{"dongzhi", "동지", "冬至", "Dongzhi", 270.0},
}

// SolarTerm references one of the 24 term definitions by index, plus the
// Julian Date at which the Sun's apparent longitude reaches that term's
// angle in the requested year.
type SolarTerm struct {
	DefIndex int
	JD       float64
}

// Def returns the immutable definition this term references.
func (t SolarTerm) Def() TermDef {
	return TermDefs[t.DefIndex]
}

const unixEpochJD = 2440587.5

// JDFromDatetime converts a UTC instant to a Julian Date using
// JD = (Unix-seconds/86400) + 2440587.5.
func JDFromDatetime(t time.Time) float64 {
	t = t.UTC()
	seconds := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return seconds/86400.0 + unixEpochJD
}

// DatetimeFromJD converts a Julian Date back to a UTC instant. A round trip
// through JDFromDatetime is limited by the float64 resolution of the Julian
// Date (about 40 µs near present-day dates), so it is not exact to the
// microsecond.
func DatetimeFromJD(jd float64) time.Time {
	seconds := (jd - unixEpochJD) * 86400.0
	whole := math.Floor(seconds)
	nanos := math.Round((seconds - whole) * 1e9)
	if nanos >= 1e9 {
		whole++
		nanos -= 1e9
	} else if nanos < 0 {
		whole--
		nanos += 1e9
	}
	return time.Unix(int64(whole), int64(nanos)).UTC()
}

func jdFromUTCDate(year int, month time.Month, day int) float64 {
	return JDFromDatetime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ComputeSolarTerms returns the 24 solar terms whose UTC instant falls
// within Gregorian year "year", in calendar order (Xiaohan, Dahan, Lichun,
// ..., Dongzhi). It sweeps JD by whole-day steps across the year, tracking a
// monotone "unwrapped" longitude, and bisects for 60 iterations to refine
// each crossing.
func ComputeSolarTerms(year int) []SolarTerm {
	start := jdFromUTCDate(year, time.January, 1)
	end := jdFromUTCDate(year+1, time.January, 1)
	days := int(math.Ceil(end - start))

	targets := make([]float64, len(TermDefs))
	last := -1.0
	for i, def := range TermDefs {
		angle := def.Angle
		for angle <= last {
			angle += 360.0
		}
		targets[i] = angle
		last = angle
	}

	results := make([]SolarTerm, 0, len(TermDefs))
	targetIdx := 0
	prevJD := start
	prevUnwrapped := sunApparentLongitude(prevJD)

	for day := 1; day <= days; day++ {
		jd := start + float64(day)
		lon := sunApparentLongitude(jd)
		if lon < prevUnwrapped {
			lon += 360.0
		}
		for targetIdx < len(targets) && targets[targetIdx] <= lon {
			target := targets[targetIdx]
			if target < prevUnwrapped {
				targetIdx++
				continue
			}
			termJD := refineTerm(prevJD, jd, prevUnwrapped, target)
			results = append(results, SolarTerm{DefIndex: targetIdx, JD: termJD})
			targetIdx++
		}
		prevJD = jd
		prevUnwrapped = lon
	}

	return results
}

// sunApparentLongitude computes the Sun's apparent ecliptic longitude in
// degrees, normalized to [0, 360), using the classical truncated
// VSOP-like series (spec §4.1).
func sunApparentLongitude(jd float64) float64 {
	t := (jd - 2451545.0) / 36525.0
	l0 := 280.46646 + 36000.76983*t + 0.0003032*t*t
	m := 357.52911 + 35999.05029*t - 0.0001537*t*t
	mRad := degToRad(m)
	c := (1.914602-0.004817*t-0.000014*t*t)*math.Sin(mRad) +
		(0.019993-0.000101*t)*math.Sin(2.0*mRad) +
		0.000289*math.Sin(3.0*mRad)
	trueLong := l0 + c
	omega := 125.04 - 1934.136*t
	lambda := trueLong - 0.00569 - 0.00478*math.Sin(degToRad(omega))
	return normDeg(lambda)
}

// refineTerm bisects between jd0 and jd1 for 60 iterations (≈2⁻⁶⁰ day) to
// locate the instant the unwrapped longitude crosses target.
func refineTerm(jd0, jd1, lon0, target float64) float64 {
	lo, hi := jd0, jd1
	loLon := lon0
	for i := 0; i < 60; i++ {
		mid := (lo + hi) / 2.0
		midLon := sunApparentLongitude(mid)
		if midLon < loLon {
			midLon += 360.0
		}
		if midLon >= target {
			hi = mid
		} else {
			lo = mid
			loLon = midLon
		}
	}
	return (lo + hi) / 2.0
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func normDeg(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}

// FindTerm returns the first solar term in terms whose definition key
// matches key, and whether one was found.
func FindTerm(terms []SolarTerm, key string) (SolarTerm, bool) {
	for _, t := range terms {
		if TermDefs[t.DefIndex].Key == key {
			return t, true
		}
	}
	return SolarTerm{}, false
}
