package localtime

import (
	"testing"
	"time"

	"github.com/sajuscope/saju-engine/internal/sajuerr"
)

func TestParseZoneFixedOffset(t *testing.T) {
	z, err := ParseZone("+09:00")
	if err != nil {
		t.Fatalf("ParseZone(+09:00) failed: %v", err)
	}
	if z.Name() != "+09:00" {
		t.Errorf("Name() = %q, want %q", z.Name(), "+09:00")
	}
	naive := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	localized, err := z.Localize(naive)
	if err != nil {
		t.Fatalf("Localize failed: %v", err)
	}
	if off := z.OffsetSeconds(localized); off != 9*3600 {
		t.Errorf("OffsetSeconds = %d, want %d", off, 9*3600)
	}
}

func TestParseZoneCompactOffset(t *testing.T) {
	z, err := ParseZone("-0530")
	if err != nil {
		t.Fatalf("ParseZone(-0530) failed: %v", err)
	}
	naive := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	localized, err := z.Localize(naive)
	if err != nil {
		t.Fatalf("Localize failed: %v", err)
	}
	if off := z.OffsetSeconds(localized); off != -(5*3600 + 30*60) {
		t.Errorf("OffsetSeconds = %d, want %d", off, -(5*3600 + 30*60))
	}
}

func TestParseZoneIANA(t *testing.T) {
	z, err := ParseZone("Asia/Seoul")
	if err != nil {
		t.Fatalf("ParseZone(Asia/Seoul) failed: %v", err)
	}
	naive := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	localized, err := z.Localize(naive)
	if err != nil {
		t.Fatalf("Localize failed: %v", err)
	}
	if off := z.OffsetSeconds(localized); off != 9*3600 {
		t.Errorf("Asia/Seoul offset = %d, want %d", off, 9*3600)
	}
}

func TestParseZoneRejectsGarbage(t *testing.T) {
	if _, err := ParseZone("not-a-zone"); err == nil {
		t.Error("ParseZone should reject an unrecognized string")
	}
}

func TestLocalizeRejectsNonexistentInstant(t *testing.T) {
	z, err := ParseZone("America/New_York")
	if err != nil {
		t.Fatalf("ParseZone failed: %v", err)
	}
	// Spring-forward gap: 2024-03-10 02:30 does not exist in America/New_York.
	naive := time.Date(2024, 3, 10, 2, 30, 0, 0, time.UTC)
	_, err = z.Localize(naive)
	if err == nil {
		t.Fatal("Localize should fail for a nonexistent local time")
	}
	sErr, ok := sajuerr.As(err)
	if !ok || sErr.Kind != sajuerr.CalendarConflict {
		t.Errorf("error kind = %v, want CalendarConflict", err)
	}
}

func TestLMTCorrectionFormula(t *testing.T) {
	// Seoul longitude 126.978, Asia/Seoul offset +09:00 (standard meridian 135).
	stdMeridian, correction := LMTCorrection(126.978, 9*3600)
	if stdMeridian != 135.0 {
		t.Errorf("stdMeridian = %v, want 135.0", stdMeridian)
	}
	// (126.978 - 135) * 240 = -8.022 * 240 = -1925.28 -> rounds to -1925
	if correction != -1925 {
		t.Errorf("correction = %d, want -1925", correction)
	}
}

func TestLMTCorrectionPositiveOffsetEast(t *testing.T) {
	// Longitude east of the standard meridian yields a positive correction.
	_, correction := LMTCorrection(140.0, 9*3600)
	// (140 - 135) * 240 = 1200
	if correction != 1200 {
		t.Errorf("correction = %d, want 1200", correction)
	}
}

func TestResolveLocationAliasesAndNormalization(t *testing.T) {
	cases := []string{"Seoul", "서울", "  seoul ", "SEOUL"}
	for _, in := range cases {
		m, err := ResolveLocation(in)
		if err != nil {
			t.Fatalf("ResolveLocation(%q) failed: %v", in, err)
		}
		if m.Longitude != 126.9780 {
			t.Errorf("ResolveLocation(%q).Longitude = %v, want 126.978", in, m.Longitude)
		}
	}
}

func TestResolveLocationUnknown(t *testing.T) {
	_, err := ResolveLocation("Atlantis")
	if err == nil {
		t.Fatal("ResolveLocation should fail for an unknown location")
	}
	sErr, ok := sajuerr.As(err)
	if !ok || sErr.Kind != sajuerr.InputRange {
		t.Errorf("error kind = %v, want InputRange", err)
	}
}
