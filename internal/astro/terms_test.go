package astro

import (
	"math"
	"testing"
	"time"
)

func TestJDRoundTrip(t *testing.T) {
	cases := []time.Time{
		time.Date(1990, 5, 15, 10, 30, 0, 0, time.UTC),
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
	}
	for _, want := range cases {
		jd := JDFromDatetime(want)
		got := DatetimeFromJD(jd)
		if !got.Equal(want) {
			t.Errorf("round-trip %v: JD=%v -> %v, want %v", want, jd, got, want)
		}
	}
}

func TestJDFromDatetimeUnixEpoch(t *testing.T) {
	jd := JDFromDatetime(time.Unix(0, 0).UTC())
	want := 2440587.5
	if math.Abs(jd-want) > 1e-9 {
		t.Errorf("JD at Unix epoch = %v, want %v", jd, want)
	}
}

func TestComputeSolarTermsCountAndOrder(t *testing.T) {
	terms := ComputeSolarTerms(2000)
	if len(terms) != 24 {
		t.Fatalf("ComputeSolarTerms(2000) returned %d terms, want 24", len(terms))
	}
	for i := 1; i < len(terms); i++ {
		if terms[i].JD <= terms[i-1].JD {
			t.Errorf("term %d JD=%v is not after term %d JD=%v", i, terms[i].JD, i-1, terms[i-1].JD)
		}
	}
	for i, term := range terms {
		if term.DefIndex != i {
			t.Errorf("term %d has DefIndex %d, want %d (calendar order)", i, term.DefIndex, i)
		}
	}
}

func TestComputeSolarTermsChunfenNearMarchEquinox(t *testing.T) {
	terms := ComputeSolarTerms(2000)
	chunfen, ok := FindTerm(terms, "chunfen")
	if !ok {
		t.Fatal("chunfen term not found")
	}
	dt := DatetimeFromJD(chunfen.JD)
	if dt.Month() != time.March || dt.Day() < 19 || dt.Day() > 21 {
		t.Errorf("chunfen 2000 = %v, want March 19-21", dt)
	}
}

func TestComputeSolarTermsDongzhiNearDecemberSolstice(t *testing.T) {
	terms := ComputeSolarTerms(2000)
	dongzhi, ok := FindTerm(terms, "dongzhi")
	if !ok {
		t.Fatal("dongzhi term not found")
	}
	dt := DatetimeFromJD(dongzhi.JD)
	if dt.Month() != time.December || dt.Day() < 20 || dt.Day() > 23 {
		t.Errorf("dongzhi 2000 = %v, want December 20-23", dt)
	}
}

func TestComputeSolarTermsLichunEarlyFebruary(t *testing.T) {
	terms := ComputeSolarTerms(2000)
	lichun, ok := FindTerm(terms, "lichun")
	if !ok {
		t.Fatal("lichun term not found")
	}
	dt := DatetimeFromJD(lichun.JD)
	if dt.Month() != time.February || dt.Day() < 3 || dt.Day() > 5 {
		t.Errorf("lichun 2000 = %v, want February 3-5", dt)
	}
}

func TestFindTermMissingKey(t *testing.T) {
	terms := ComputeSolarTerms(2000)
	if _, ok := FindTerm(terms, "not-a-term"); ok {
		t.Error("FindTerm should report false for an unknown key")
	}
}
