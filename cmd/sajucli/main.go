package main

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/sajuscope/saju-engine/internal/astro"
	"github.com/sajuscope/saju-engine/internal/i18n"
	"github.com/sajuscope/saju-engine/internal/localtime"
	"github.com/sajuscope/saju-engine/internal/luck"
	"github.com/sajuscope/saju-engine/internal/sajuerr"
	"github.com/sajuscope/saju-engine/internal/saju"
	"github.com/sajuscope/saju-engine/internal/sexagenary"
)

var version = "1.0.0-saju-engine"

type cliFlags struct {
	date             string
	time             string
	calendar         string
	leapMonth        bool
	tz               string
	gender           string
	daewonCount      int
	monthYear        int
	yearStart        int
	yearCount        int
	localMeanTime    bool
	longitude        float64
	hasLongitude     bool
	location         string
	lang             string
	showTerms        bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags cliFlags

	cmd := &cobra.Command{
		Use:     "saju",
		Short:   "Saju palja calculator using solar terms (입춘 기준)",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(cmd, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.Flags()
	f.StringVar(&flags.date, "date", "", "birth date, YYYY-MM-DD")
	f.StringVar(&flags.time, "time", "", "birth time, HH:MM or HH:MM:SS")
	f.StringVar(&flags.calendar, "calendar", "solar", "solar|lunar")
	f.BoolVar(&flags.leapMonth, "leap-month", false, "input date is a leap lunar month (calendar=lunar only)")
	f.StringVar(&flags.tz, "tz", "Asia/Seoul", "IANA timezone name or fixed offset (+09:00)")
	f.StringVar(&flags.gender, "gender", "", "male|female|m|f|남|여")
	f.IntVar(&flags.daewonCount, "daewon-count", 10, "number of decade pillars to compute")
	f.IntVar(&flags.monthYear, "month-year", 0, "year for the monthly luck table (default: current local year)")
	f.IntVar(&flags.yearStart, "year-start", 0, "first year for the yearly luck table (default: month-year)")
	f.IntVar(&flags.yearCount, "year-count", 10, "number of years in the yearly luck table")
	f.BoolVar(&flags.localMeanTime, "local-mean-time", false, "apply local mean time correction")
	f.Float64Var(&flags.longitude, "longitude", 0, "longitude in degrees for local mean time")
	f.StringVar(&flags.location, "location", "", "named location for local mean time")
	f.StringVar(&flags.lang, "lang", "ko", "ko|en")
	f.BoolVar(&flags.showTerms, "show-terms", false, "also print the year's 24 solar terms")

	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("time")
	cmd.MarkFlagRequired("gender")

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		flags.hasLongitude = cmd.Flags().Changed("longitude")
		return nil
	}

	return cmd
}

func runChart(cmd *cobra.Command, flags cliFlags) error {
	lang := i18n.Ko
	if flags.lang == "en" {
		lang = i18n.En
	}
	label := i18n.New(lang)

	gender, err := saju.ParseGender(flags.gender)
	if err != nil {
		return err
	}

	calendar := saju.Solar
	if flags.calendar == "lunar" {
		calendar = saju.Lunar
	}

	in := saju.Input{
		Date: flags.date, Time: flags.time, Calendar: calendar, LeapMonth: flags.leapMonth,
		TZ: flags.tz, Gender: gender,
		UseLocalMeanTime: flags.localMeanTime, Location: flags.location,
		DaewonCount: flags.daewonCount, YearCount: flags.yearCount,
	}
	if flags.hasLongitude {
		lon := flags.longitude
		in.Longitude = &lon
	}
	if flags.monthYear != 0 {
		my := flags.monthYear
		in.MonthYear = &my
	} else {
		my := time.Now().Year()
		in.MonthYear = &my
	}
	if flags.yearStart != 0 {
		ys := flags.yearStart
		in.YearStart = &ys
	}

	engine := saju.NewEngine()
	chart, err := engine.Compute(in)
	if err != nil {
		return unwrapErr(err)
	}

	printHeader(flags, gender, chart, label)
	printPillars(chart, label)
	printHiddenStems(chart, label)
	printTenGods(chart, label)
	printTwelveStages(chart, label)
	printTwelveShinsal(chart, label)
	printStrength(chart, label)
	printElements(chart, label)
	printDaewon(chart, label)
	printYearlyLuck(chart, label)
	printMonthlyLuck(chart, label)

	if flags.showTerms {
		printTerms(chart, label)
	}

	return nil
}

func unwrapErr(err error) error {
	if sErr, ok := sajuerr.As(err); ok {
		return fmt.Errorf("%s", sErr.Error())
	}
	return err
}

func printHeader(flags cliFlags, gender luck.Gender, chart *saju.Chart, label *i18n.I18n) {
	fmt.Println(label.Title())
	fmt.Printf("- %s: %s %s %s\n", "입력", flags.date, flags.time, chart.TZName)
	if chart.ConvertedSolar != nil {
		fmt.Printf("- %s: %s\n", "환산 양력", chart.ConvertedSolar.Format("2006-01-02"))
	}
	if chart.ConvertedLunar != nil {
		l := chart.ConvertedLunar
		suffix := ""
		if l.IsLeap {
			suffix = " (윤월)"
		}
		fmt.Printf("- %s: %04d-%02d-%02d%s\n", "환산 음력", l.Year, l.Month, l.Day, suffix)
	}
	if chart.LMT != nil {
		if chart.LMT.LocationLabel != "" {
			fmt.Printf("- %s: %s %.4f˚ | 표준 자오선 %.1f˚ | 보정 %ds\n",
				"진태양시", chart.LMT.LocationLabel, chart.LMT.Longitude, chart.LMT.StdMeridian, chart.LMT.CorrectionSeconds)
		} else {
			fmt.Printf("- %s: %.4f˚ | 표준 자오선 %.1f˚ | 보정 %ds\n",
				"진태양시", chart.LMT.Longitude, chart.LMT.StdMeridian, chart.LMT.CorrectionSeconds)
		}
		fmt.Printf("- %s: %s\n", "보정 시각", chart.LMT.CorrectedLocal.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("- %s: %s\n", label.GenderLabel(gender), label.GenderLabel(gender))
	fmt.Printf("- %s: 23:00\n", "일 경계")
	fmt.Println()
}

func printPillars(chart *saju.Chart, label *i18n.I18n) {
	pillars := chart.Pillars.Pillars()
	fmt.Println(label.PillarsHeading())

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"", label.PillarKindLabel(i18n.Year), label.PillarKindLabel(i18n.Month), label.PillarKindLabel(i18n.Day), label.PillarKindLabel(i18n.Hour)})
	pillarRow := make([]string, 4)
	stemElementRow := make([]string, 4)
	branchElementRow := make([]string, 4)
	for i, p := range pillars {
		pillarRow[i] = label.PillarLabel(p)
		stemElementRow[i] = fmt.Sprintf("%s %s", label.ElementLabel(sexagenary.StemElement(p.Stem)), label.PolarityLabel(sexagenary.StemPolarity(p.Stem)))
		branchElementRow[i] = fmt.Sprintf("%s %s", label.ElementLabel(sexagenary.BranchElement(p.Branch)), label.PolarityLabel(sexagenary.BranchPolarity(p.Branch)))
	}
	table.Append(append([]string{label.StemKindLabel(i18n.Year) + "/" + label.BranchKindLabel(i18n.Year)}, pillarRow...))
	table.Append(append([]string{"천간 오행"}, stemElementRow...))
	table.Append(append([]string{"지지 오행"}, branchElementRow...))
	table.Render()
	fmt.Println()
}

func formatHiddenStems(label *i18n.I18n, branch int) string {
	stems := sexagenary.HiddenStems(branch)
	out := ""
	for i, s := range stems {
		if i > 0 {
			out += ", "
		}
		out += label.StemLabel(s)
	}
	return out
}

func formatHiddenStemsWithTenGod(label *i18n.I18n, dayStem, branch int) string {
	stems := sexagenary.HiddenStems(branch)
	out := ""
	for i, s := range stems {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s %s", label.StemLabel(s), label.TenGodLabel(sexagenary.TenGodOf(dayStem, s)))
	}
	return out
}

func printHiddenStems(chart *saju.Chart, label *i18n.I18n) {
	pillars := chart.Pillars.Pillars()
	kinds := []i18n.PillarKind{i18n.Year, i18n.Month, i18n.Day, i18n.Hour}
	fmt.Println(label.HiddenStemsHeading())
	for i, kind := range kinds {
		fmt.Printf("- %s: %s\n", label.BranchKindLabel(kind), formatHiddenStems(label, pillars[i].Branch))
	}
	fmt.Println()
}

func printTenGods(chart *saju.Chart, label *i18n.I18n) {
	pillars := chart.Pillars.Pillars()
	dayStem := chart.Pillars.Day.Stem
	kinds := []i18n.PillarKind{i18n.Year, i18n.Month, i18n.Day, i18n.Hour}
	fmt.Println(label.TenGodsHeading())
	for i, kind := range kinds {
		p := pillars[i]
		fmt.Printf("- %s: %s 천간 %s | 지지 %s\n",
			label.PillarKindLabel(kind),
			label.TenGodLabel(sexagenary.TenGodOf(dayStem, p.Stem)),
			formatHiddenStemsWithTenGod(label, dayStem, p.Branch))
	}
	fmt.Println()
}

func printTwelveStages(chart *saju.Chart, label *i18n.I18n) {
	pillars := chart.Pillars.Pillars()
	dayStem := chart.Pillars.Day.Stem
	kinds := []i18n.PillarKind{i18n.Year, i18n.Month, i18n.Day, i18n.Hour}
	fmt.Println(label.TwelveStagesHeading())
	for i, kind := range kinds {
		idx := sexagenary.TwelveStageIndex(dayStem, pillars[i].Branch)
		fmt.Printf("- %s: %s\n", label.PillarKindLabel(kind), label.StageLabel(idx))
	}
	fmt.Println()
}

func printTwelveShinsal(chart *saju.Chart, label *i18n.I18n) {
	pillars := chart.Pillars.Pillars()
	yearBranch := chart.Pillars.Year.Branch
	kinds := []i18n.PillarKind{i18n.Year, i18n.Month, i18n.Day, i18n.Hour}
	fmt.Println(label.TwelveShinsalHeading())
	for i, kind := range kinds {
		idx := sexagenary.TwelveShinsalIndex(yearBranch, pillars[i].Branch)
		fmt.Printf("- %s: %s\n", label.PillarKindLabel(kind), label.ShinsalLabel(idx))
	}
	fmt.Println()
}

func printStrength(chart *saju.Chart, label *i18n.I18n) {
	s := chart.Strength
	fmt.Println(label.StrengthHeading())
	fmt.Printf("- 12운성 지수: %d (%s) | 뿌리 %d | 지원 천간 %d | 지원 지장간 %d | 설기 천간 %d | 설기 지장간 %d | 합계 %d\n",
		s.StageIndex, label.StageLabel(s.StageIndex), s.RootCount, s.SupportStems, s.SupportHidden, s.DrainStems, s.DrainHidden, s.Total)
	fmt.Printf("- %s\n", label.VerdictLabel(s.Verdict))
	fmt.Println()
}

func printElements(chart *saju.Chart, label *i18n.I18n) {
	balance := saju.ElementBalance(chart.Pillars.Pillars())
	fmt.Println(label.ElementsHeading())
	for _, name := range []string{"Wood", "Fire", "Earth", "Metal", "Water"} {
		fmt.Printf("- %s: %d\n", name, balance[name])
	}
	fmt.Println()
}

func printDaewon(chart *saju.Chart, label *i18n.I18n) {
	fmt.Println(label.DaewonHeading())
	fmt.Printf("- %s | 시작 %s\n", label.DirectionLabel(chart.Direction), label.FormatAge(chart.DaewonStartMonths, false))
	for _, item := range chart.Daewon {
		fmt.Printf("  - %s: %s\n", label.FormatAge(item.StartMonths, true), label.PillarLabel(item.Pillar))
	}
	fmt.Println()
}

func printYearlyLuck(chart *saju.Chart, label *i18n.I18n) {
	fmt.Println(label.YearlyLuckHeading())
	for _, y := range chart.YearlyLuck {
		fmt.Printf("  - %d: %s\n", y.Year, label.PillarLabel(y.Pillar))
	}
	fmt.Println()
}

func printMonthlyLuck(chart *saju.Chart, label *i18n.I18n) {
	fmt.Println(label.MonthlyLuckHeading(chart.MonthlyLuck.Year))
	for i, m := range chart.MonthlyLuck.Months {
		fmt.Printf("  - %d: %s\n", i+1, label.PillarLabel(m.Pillar))
	}
	fmt.Println()
}

func printTerms(chart *saju.Chart, label *i18n.I18n) {
	terms := astro.ComputeSolarTerms(chart.Pillars.YearForPillar)
	zone, zoneErr := localtime.ParseZone(chart.TZName)
	fmt.Println("24 절기")
	for _, t := range terms {
		def := t.Def()
		dt := astro.DatetimeFromJD(t.JD)
		if zoneErr == nil {
			dt = zone.ToLocal(dt)
		}
		fmt.Printf("  - %s(%s): %s\n", def.NameKo, def.NameHanja, dt.Format("2006-01-02 15:04"))
	}
	fmt.Println()
}
