// Package i18n holds the Korean/English label tables for the CLI and API
// presentation layers (§6.4): stems, branches, elements, ten gods, twelve
// stages, twelve shinsal, strength verdicts, and the surrounding headings.
package i18n

import (
	"fmt"

	"github.com/sajuscope/saju-engine/internal/luck"
	"github.com/sajuscope/saju-engine/internal/sexagenary"
	"github.com/sajuscope/saju-engine/internal/strength"
)

// Lang selects the label language.
type Lang int

const (
	Ko Lang = iota
	En
)

// PillarKind distinguishes the four pillar positions for per-position labels.
type PillarKind int

const (
	Year PillarKind = iota
	Month
	Day
	Hour
)

// I18n renders domain values into the selected language's labels.
type I18n struct {
	lang Lang
}

// New returns an I18n for the given language.
func New(lang Lang) *I18n {
	return &I18n{lang: lang}
}

var stemsKo = [10]string{"갑", "을", "병", "정", "무", "기", "경", "신", "임", "계"}
var stemsEn = [10]string{"Gap", "Eul", "Byeong", "Jeong", "Mu", "Gi", "Gyeong", "Sin", "Im", "Gye"}
var stemsHanja = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

var branchesKo = [12]string{"자", "축", "인", "묘", "진", "사", "오", "미", "신", "유", "술", "해"}
var branchesEn = [12]string{"Ja", "Chuk", "In", "Myo", "Jin", "Sa", "O", "Mi", "Sin", "Yu", "Sul", "Hae"}
var branchesHanja = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

var twelveStagesKo = [12]string{
	"장생(長生)", "목욕(沐浴)", "관대(冠帶)", "건록(建祿)", "제왕(帝旺)", "쇠(衰)",
	"병(病)", "사(死)", "묘(墓)", "절(絶)", "태(胎)", "양(養)",
}
var twelveStagesEn = [12]string{
	"Changsheng (長生)", "Muyu (沐浴)", "Guandai (冠帶)", "Jianlu (建祿)", "Dewang (帝旺)", "Shuai (衰)",
	"Bing (病)", "Si (死)", "Mu (墓)", "Jue (絶)", "Tai (胎)", "Yang (養)",
}

var shinsalKo = [12]string{
	"지살(地殺)", "년살(年殺)", "월살(月殺)", "망신살(亡身殺)", "장성살(將星殺)", "반안살(攀鞍殺)",
	"역마살(驛馬殺)", "육해살(六害殺)", "화개살(華蓋殺)", "겁살(劫殺)", "재살(災殺)", "천살(天殺)",
}
var shinsalEn = [12]string{
	"Earth Kill (地殺)", "Year Kill (年殺)", "Month Kill (月殺)", "Loss Star (亡身殺)", "General Star (將星殺)", "Mounting Saddle (攀鞍殺)",
	"Travel Horse (驛馬殺)", "Six Harm (六害殺)", "Canopy (華蓋殺)", "Robbery (劫殺)", "Disaster (災殺)", "Heaven Kill (天殺)",
}

func (i *I18n) StemName(stem int) string {
	if i.lang == Ko {
		return stemsKo[stem]
	}
	return stemsEn[stem]
}

func (i *I18n) BranchName(branch int) string {
	if i.lang == Ko {
		return branchesKo[branch]
	}
	return branchesEn[branch]
}

// StemLabel renders a stem with its Hanja, e.g. "갑(甲)".
func (i *I18n) StemLabel(stem int) string {
	return fmt.Sprintf("%s(%s)", i.StemName(stem), stemsHanja[stem])
}

// BranchLabel renders a branch with its Hanja, e.g. "자(子)".
func (i *I18n) BranchLabel(branch int) string {
	return fmt.Sprintf("%s(%s)", i.BranchName(branch), branchesHanja[branch])
}

// PillarLabel renders a full stem-branch pillar with Hanja, e.g. "갑자(甲子)".
func (i *I18n) PillarLabel(p sexagenary.Pillar) string {
	return fmt.Sprintf("%s%s(%s%s)", i.StemName(p.Stem), i.BranchName(p.Branch), stemsHanja[p.Stem], branchesHanja[p.Branch])
}

func (i *I18n) ElementLabel(e sexagenary.Element) string {
	names := map[sexagenary.Element][2]string{
		sexagenary.Wood:  {"목(木)", "Wood (木)"},
		sexagenary.Fire:  {"화(火)", "Fire (火)"},
		sexagenary.Earth: {"토(土)", "Earth (土)"},
		sexagenary.Metal: {"금(金)", "Metal (金)"},
		sexagenary.Water: {"수(水)", "Water (水)"},
	}
	return i.pick(names[e])
}

func (i *I18n) ElementShortLabel(e sexagenary.Element) string {
	names := map[sexagenary.Element][2]string{
		sexagenary.Wood:  {"목", "Wood"},
		sexagenary.Fire:  {"화", "Fire"},
		sexagenary.Earth: {"토", "Earth"},
		sexagenary.Metal: {"금", "Metal"},
		sexagenary.Water: {"수", "Water"},
	}
	return i.pick(names[e])
}

func (i *I18n) PolarityLabel(yang bool) string {
	if yang {
		return i.pick([2]string{"양", "Yang"})
	}
	return i.pick([2]string{"음", "Yin"})
}

func (i *I18n) TenGodLabel(g sexagenary.TenGod) string {
	names := map[sexagenary.TenGod][2]string{
		sexagenary.BiGyeon:   {"비견(比肩)", "Companion (比肩)"},
		sexagenary.GeopJae:   {"겁재(劫財)", "Rob Wealth (劫財)"},
		sexagenary.SikShin:   {"식신(食神)", "Eating God (食神)"},
		sexagenary.SangGwan:  {"상관(傷官)", "Hurting Officer (傷官)"},
		sexagenary.PyeonJae:  {"편재(偏財)", "Indirect Wealth (偏財)"},
		sexagenary.JeongJae:  {"정재(正財)", "Direct Wealth (正財)"},
		sexagenary.ChilSal:   {"칠살(七殺)", "Seven Killings (七殺)"},
		sexagenary.JeongGwan: {"정관(正官)", "Direct Officer (正官)"},
		sexagenary.PyeonIn:   {"편인(偏印)", "Indirect Resource (偏印)"},
		sexagenary.JeongIn:   {"정인(正印)", "Direct Resource (正印)"},
	}
	return i.pick(names[g])
}

func (i *I18n) StageLabel(index int) string {
	if i.lang == Ko {
		return twelveStagesKo[index]
	}
	return twelveStagesEn[index]
}

func (i *I18n) ShinsalLabel(index int) string {
	if i.lang == Ko {
		return shinsalKo[index]
	}
	return shinsalEn[index]
}

func (i *I18n) StrengthClassLabel(c sexagenary.StrengthClass) string {
	names := map[sexagenary.StrengthClass][2]string{
		sexagenary.Strong:  {"강", "Strong"},
		sexagenary.Weak:    {"약", "Weak"},
		sexagenary.Neutral: {"중", "Neutral"},
	}
	return i.pick(names[c])
}

func (i *I18n) VerdictLabel(v strength.Verdict) string {
	names := map[strength.Verdict][2]string{
		strength.VerdictStrong:  {"신강", "Strong"},
		strength.VerdictWeak:    {"신약", "Weak"},
		strength.VerdictNeutral: {"중화", "Balanced"},
	}
	return i.pick(names[v])
}

func (i *I18n) DirectionLabel(d luck.Direction) string {
	if d == luck.Forward {
		return i.pick([2]string{"순행", "Forward"})
	}
	return i.pick([2]string{"역행", "Backward"})
}

func (i *I18n) GenderLabel(g luck.Gender) string {
	if g == luck.Male {
		return i.pick([2]string{"남", "Male"})
	}
	return i.pick([2]string{"여", "Female"})
}

// PillarKindLabel renders a pillar position heading, e.g. "연주"/"Year Pillar".
func (i *I18n) PillarKindLabel(k PillarKind) string {
	names := map[PillarKind][2]string{
		Year:  {"연주", "Year Pillar"},
		Month: {"월주", "Month Pillar"},
		Day:   {"일주", "Day Pillar"},
		Hour:  {"시주", "Hour Pillar"},
	}
	return i.pick(names[k])
}

func (i *I18n) StemKindLabel(k PillarKind) string {
	names := map[PillarKind][2]string{
		Year:  {"연간", "Year stem"},
		Month: {"월간", "Month stem"},
		Day:   {"일간", "Day stem"},
		Hour:  {"시간", "Hour stem"},
	}
	return i.pick(names[k])
}

func (i *I18n) BranchKindLabel(k PillarKind) string {
	names := map[PillarKind][2]string{
		Year:  {"연지", "Year branch"},
		Month: {"월지", "Month branch"},
		Day:   {"일지", "Day branch"},
		Hour:  {"시지", "Hour branch"},
	}
	return i.pick(names[k])
}

// FormatAge renders a Daewon onset in years(+months), right-aligned to two
// digits of years when aligned is set, matching the CLI's column layout.
func (i *I18n) FormatAge(months int, aligned bool) string {
	years := months / 12
	rem := months % 12
	yearUnit := i.pick([2]string{"년", "y"})
	monthUnit := i.pick([2]string{"개월", "m"})
	yearsStr := fmt.Sprintf("%d", years)
	if aligned {
		yearsStr = fmt.Sprintf("%2d", years)
	}
	if rem == 0 {
		return yearsStr + yearUnit
	}
	return fmt.Sprintf("%s%s %d%s", yearsStr, yearUnit, rem, monthUnit)
}

func (i *I18n) pick(pair [2]string) string {
	if i.lang == Ko {
		return pair[0]
	}
	return pair[1]
}

// Heading strings used as section titles in the CLI and API text rendering.
func (i *I18n) Title() string {
	return i.pick([2]string{"사주팔자 (입춘 기준)", "Saju Palja (Lichun-based)"})
}
func (i *I18n) PillarsHeading() string       { return i.pick([2]string{"천간/지지", "Stems/Branches"}) }
func (i *I18n) HiddenStemsHeading() string   { return i.pick([2]string{"지장간", "Hidden Stems"}) }
func (i *I18n) TenGodsHeading() string       { return i.pick([2]string{"십성(일간 기준)", "Ten Gods (Day stem)"}) }
func (i *I18n) TwelveStagesHeading() string  { return i.pick([2]string{"12운성(일간 기준)", "12 Stages (Day stem)"}) }
func (i *I18n) TwelveShinsalHeading() string {
	return i.pick([2]string{"12신살(연지 삼합 기준)", "12 Shinsal (Year branch trine)"})
}
func (i *I18n) StrengthHeading() string { return i.pick([2]string{"신강/신약(간단 판정)", "Strength (simple)"}) }
func (i *I18n) ElementsHeading() string {
	return i.pick([2]string{"오행 분포(천간+지지)", "Five Elements (stems + branches)"})
}
func (i *I18n) DaewonHeading() string     { return i.pick([2]string{"대운", "Decennial Luck"}) }
func (i *I18n) YearlyLuckHeading() string { return i.pick([2]string{"연운 (입춘 기준)", "Yearly Luck (Lichun)"}) }
func (i *I18n) MonthlyLuckHeading(year int) string {
	if i.lang == Ko {
		return fmt.Sprintf("월운 (%d년, 입춘~다음 입춘)", year)
	}
	return fmt.Sprintf("Monthly Luck (%d: Lichun to next Lichun)", year)
}
