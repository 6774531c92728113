package localtime

import (
	"strings"

	"github.com/sajuscope/saju-engine/internal/sajuerr"
)

// locationDef is one entry in the named-location registry (§4.4): a small
// set of Korean cities resolved by key, bilingual display label, or alias.
type locationDef struct {
	key       string
	display   string
	longitude float64
	aliases   []string
}

var locations = []locationDef{
	{"seoul", "Seoul/서울", 126.9780, []string{"seoul", "서울"}},
	{"busan", "Busan/부산", 129.0756, []string{"busan", "부산"}},
	{"daegu", "Daegu/대구", 128.6014, []string{"daegu", "대구"}},
	{"incheon", "Incheon/인천", 126.7052, []string{"incheon", "인천"}},
	{"gwangju", "Gwangju/광주", 126.8514, []string{"gwangju", "광주"}},
	{"daejeon", "Daejeon/대전", 127.3845, []string{"daejeon", "대전"}},
	{"ulsan", "Ulsan/울산", 129.3114, []string{"ulsan", "울산"}},
	{"sejong", "Sejong/세종", 127.2890, []string{"sejong", "세종"}},
	{"suwon", "Suwon/수원", 127.0078, []string{"suwon", "수원"}},
	{"changwon", "Changwon/창원", 128.6811, []string{"changwon", "창원"}},
	{"cheongju", "Cheongju/청주", 127.4890, []string{"cheongju", "청주"}},
	{"jeonju", "Jeonju/전주", 127.1480, []string{"jeonju", "전주"}},
	{"jeju", "Jeju/제주", 126.5312, []string{"jeju", "제주"}},
	{"gangneung", "Gangneung/강릉", 128.8761, []string{"gangneung", "강릉"}},
	{"pohang", "Pohang/포항", 129.3650, []string{"pohang", "포항"}},
}

// LocationMatch is a resolved named location.
type LocationMatch struct {
	Display   string
	Longitude float64
}

// ResolveLocation looks up a location by key, display label, or alias,
// normalizing input first (trim, lowercase, strip whitespace/-/_/.).
func ResolveLocation(input string) (LocationMatch, error) {
	norm := normalizeLocation(input)
	for _, loc := range locations {
		if normalizeLocation(loc.key) == norm || normalizeLocation(loc.display) == norm {
			return LocationMatch{Display: loc.display, Longitude: loc.longitude}, nil
		}
		for _, alias := range loc.aliases {
			if normalizeLocation(alias) == norm {
				return LocationMatch{Display: loc.display, Longitude: loc.longitude}, nil
			}
		}
	}
	return LocationMatch{}, sajuerr.Newf(sajuerr.InputRange,
		"unknown location %q; try one of: %s", input, LocationHint())
}

// LocationHint lists the known location keys for error messages.
func LocationHint() string {
	keys := make([]string, len(locations))
	for i, loc := range locations {
		keys[i] = loc.key
	}
	return strings.Join(keys, ", ")
}

func normalizeLocation(input string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		switch r {
		case ' ', '\t', '\n', '-', '_', '.':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
