// Package sexagenary is the sexagenary arithmetic engine (C2): stem/branch
// tables and the pure functions that map integers to stem/branch indices,
// elements, relations, Ten Gods, Twelve Stages, and Twelve Shinsal.
package sexagenary

// Element is one of the five Wu Xing elements.
type Element int

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

func (e Element) String() string {
	switch e {
	case Wood:
		return "Wood"
	case Fire:
		return "Fire"
	case Earth:
		return "Earth"
	case Metal:
		return "Metal"
	case Water:
		return "Water"
	default:
		return "Unknown"
	}
}

// Relation is the day-master's relation to a target element.
type Relation int

const (
	Same Relation = iota
	Output
	Wealth
	Officer
	Resource
)

// TenGod is the ten-valued refinement of Relation by stem polarity.
type TenGod int

const (
	BiGyeon TenGod = iota
	GeopJae
	SikShin
	SangGwan
	PyeonJae
	JeongJae
	ChilSal
	JeongGwan
	PyeonIn
	JeongIn
)

func (g TenGod) String() string {
	switch g {
	case BiGyeon:
		return "BiGyeon"
	case GeopJae:
		return "GeopJae"
	case SikShin:
		return "SikShin"
	case SangGwan:
		return "SangGwan"
	case PyeonJae:
		return "PyeonJae"
	case JeongJae:
		return "JeongJae"
	case ChilSal:
		return "ChilSal"
	case JeongGwan:
		return "JeongGwan"
	case PyeonIn:
		return "PyeonIn"
	case JeongIn:
		return "JeongIn"
	default:
		return "Unknown"
	}
}

// StrengthClass is the Twelve-Stage strength classification.
type StrengthClass int

const (
	Strong StrengthClass = iota
	Weak
	Neutral
)

func (c StrengthClass) String() string {
	switch c {
	case Strong:
		return "Strong"
	case Weak:
		return "Weak"
	default:
		return "Neutral"
	}
}

// Pillar is a (stem, branch) pair. There is no enforced sexagenary pairing
// constraint at the type level; callers construct valid pairs.
type Pillar struct {
	Stem   int
	Branch int
}

// hiddenStems holds each branch's 1-3 hidden stems, main stem first.
var hiddenStems = [12][]int{
	{9},       // Zi: Gui
	{5, 9, 7}, // Chou: Ji, Gui, Xin
	{0, 2, 4}, // Yin: Jia, Bing, Wu
	{1},       // Mao: Yi
	{4, 1, 9}, // Chen: Wu, Yi, Gui
	{2, 4, 6}, // Si: Bing, Wu, Geng
	{3, 5},    // Wu: Ding, Ji
	{5, 3, 1}, // Wei: Ji, Ding, Yi
	{6, 8, 4}, // Shen: Geng, Ren, Wu
	{7},       // You: Xin
	{4, 7, 3}, // Xu: Wu, Xin, Ding
	{8, 0},    // Hai: Ren, Jia
}

// branchElementTable is the fixed branch→element lookup.
var branchElementTable = [12]Element{
	Water, Earth, Wood, Wood, Earth, Fire,
	Fire, Earth, Metal, Metal, Earth, Water,
}

// changshengStart is the Changsheng (birth-stage) starting branch per day stem.
var changshengStart = [10]int{11, 6, 2, 9, 2, 9, 5, 0, 8, 3}

// euclidMod is the non-negative modulus used throughout (§9 boundary
// arithmetic: Euclidean modulus, never C-style truncated modulus).
func euclidMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// StemElement returns the element of a stem: floor(s/2) indexed into
// [Wood, Fire, Earth, Metal, Water].
func StemElement(stem int) Element {
	return Element(stem / 2)
}

// BranchElement returns the fixed element of a branch.
func BranchElement(branch int) Element {
	return branchElementTable[branch]
}

// StemPolarity reports whether a stem is yang (true) or yin (false).
func StemPolarity(stem int) bool {
	return stem%2 == 0
}

// BranchPolarity reports whether a branch is yang (true) or yin (false).
func BranchPolarity(branch int) bool {
	return branch%2 == 0
}

// ElementGenerates returns the element that e generates in the production
// cycle: Wood->Fire->Earth->Metal->Water->Wood.
func ElementGenerates(e Element) Element {
	return (e + 1) % 5
}

// ElementControls returns the element that e controls in the control cycle:
// Wood->Earth->Water->Fire->Metal->Wood.
func ElementControls(e Element) Element {
	switch e {
	case Wood:
		return Earth
	case Earth:
		return Water
	case Water:
		return Fire
	case Fire:
		return Metal
	default: // Metal
		return Wood
	}
}

// RelationOf returns the day element's relation to a target element.
func RelationOf(day, target Element) Relation {
	switch {
	case day == target:
		return Same
	case ElementGenerates(day) == target:
		return Output
	case ElementControls(day) == target:
		return Wealth
	case ElementGenerates(target) == day:
		return Resource
	default:
		return Officer
	}
}

// TenGodOf refines RelationOf(stem_element(day), stem_element(target)) by
// whether the two stems share yin/yang polarity.
func TenGodOf(dayStem, targetStem int) TenGod {
	dayElement := StemElement(dayStem)
	targetElement := StemElement(targetStem)
	samePolarity := StemPolarity(dayStem) == StemPolarity(targetStem)
	switch RelationOf(dayElement, targetElement) {
	case Same:
		if samePolarity {
			return BiGyeon
		}
		return GeopJae
	case Output:
		if samePolarity {
			return SikShin
		}
		return SangGwan
	case Wealth:
		if samePolarity {
			return PyeonJae
		}
		return JeongJae
	case Officer:
		if samePolarity {
			return ChilSal
		}
		return JeongGwan
	default: // Resource
		if samePolarity {
			return PyeonIn
		}
		return JeongIn
	}
}

// HiddenStems returns the hidden stems of a branch, main stem first.
func HiddenStems(branch int) []int {
	return hiddenStems[branch]
}

// MainHiddenStem returns the first (main) hidden stem of a branch.
func MainHiddenStem(branch int) int {
	return hiddenStems[branch][0]
}

// TenGodBranch returns the Ten God of a branch's main hidden stem relative
// to the day stem.
func TenGodBranch(dayStem, branch int) TenGod {
	return TenGodOf(dayStem, MainHiddenStem(branch))
}

// TwelveStageIndex returns the Twelve-Stage index of a branch relative to a
// day stem: increasing with the branch for yang day stems, decreasing for
// yin day stems.
func TwelveStageIndex(dayStem, branch int) int {
	start := changshengStart[dayStem]
	if StemPolarity(dayStem) {
		return euclidMod(branch-start, 12)
	}
	return euclidMod(start-branch, 12)
}

// StageStrengthClass classifies a Twelve-Stage index: 0-4 Strong, 5-9 Weak,
// 10-11 Neutral.
func StageStrengthClass(idx int) StrengthClass {
	switch {
	case idx <= 4:
		return Strong
	case idx <= 9:
		return Weak
	default:
		return Neutral
	}
}

// ShinsalStartBranch returns the trine-group start branch for a year branch.
func ShinsalStartBranch(yearBranch int) int {
	switch yearBranch {
	case 0, 4, 8: // Shen-Zi-Chen
		return 2
	case 2, 6, 10: // Yin-Wu-Xu
		return 8
	case 3, 7, 11: // Hai-Mao-Wei
		return 5
	case 1, 5, 9: // Si-You-Chou
		return 11
	default:
		return 0
	}
}

// TwelveShinsalIndex returns the Twelve-Shinsal index of a branch relative
// to the year branch's trine group.
func TwelveShinsalIndex(yearBranch, branch int) int {
	start := ShinsalStartBranch(yearBranch)
	return euclidMod(branch-start, 12)
}

// YearPillar computes the year pillar for Gregorian year Y.
func YearPillar(year int) Pillar {
	return Pillar{
		Stem:   euclidMod(year-4, 10),
		Branch: euclidMod(year-4, 12),
	}
}

// MonthStem computes the month stem from the year stem and month branch.
func MonthStem(yearStem, monthBranch int) int {
	return euclidMod(yearStem*2+monthBranch, 10)
}

// JDNFromDate computes the Julian Day Number of a Gregorian calendar date
// using the standard formula.
func JDNFromDate(year, month, day int) int64 {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
	return int64(jdn)
}

// DayPillar computes the day pillar from a Julian Day Number.
func DayPillar(jdn int64) Pillar {
	return Pillar{
		Stem:   int(euclidMod64(jdn+9, 10)),
		Branch: int(euclidMod64(jdn+1, 12)),
	}
}

func euclidMod64(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// HourBranchIndex returns the hour-branch index for a local wall-clock hour
// and minute; piecewise-constant on 120-minute windows centered on odd
// hours, the first window 23:00-00:59.
func HourBranchIndex(hour, minute int) int {
	totalMinutes := hour*60 + minute
	return ((totalMinutes + 60) / 120) % 12
}

// HourStem computes the hour stem from the day stem and hour branch.
func HourStem(dayStem, hourBranch int) int {
	return euclidMod(dayStem*2+hourBranch, 10)
}

// ElementIndex maps an Element to its 0-4 index for table/array use.
func ElementIndex(e Element) int {
	return int(e)
}

// ElementsCount tallies stem+branch element occurrences across four pillars.
func ElementsCount(pillars [4]Pillar) [5]int {
	var counts [5]int
	for _, p := range pillars {
		counts[ElementIndex(StemElement(p.Stem))]++
		counts[ElementIndex(BranchElement(p.Branch))]++
	}
	return counts
}
