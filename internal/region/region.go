// Package region normalizes Korean administrative region names to the
// short forms required by the air-quality provider's sidoName parameter.
package region

import "sort"

// DefaultShortName is returned for empty input.
const DefaultShortName = "서울"

// shortNames maps every first-level administrative division to its
// short form. Renamed divisions (강원특별자치도, 전북특별자치도) keep
// entries for both the old and the new long forms so a provider rename
// never breaks the lookup.
var shortNames = map[string]string{
	"서울특별시":   "서울",
	"부산광역시":   "부산",
	"대구광역시":   "대구",
	"인천광역시":   "인천",
	"광주광역시":   "광주",
	"대전광역시":   "대전",
	"울산광역시":   "울산",
	"세종특별자치시": "세종",
	"경기도":     "경기",
	"강원도":     "강원",
	"강원특별자치도": "강원",
	"충청북도":    "충북",
	"충청남도":    "충남",
	"전라북도":    "전북",
	"전북특별자치도": "전북",
	"전라남도":    "전남",
	"경상북도":    "경북",
	"경상남도":    "경남",
	"제주특별자치도": "제주",
}

// Mapping is one long-form to short-form entry of the table.
type Mapping struct {
	LongName  string
	ShortName string
}

// Mappings returns the full normalization table sorted by long name.
func Mappings() []Mapping {
	out := make([]Mapping, 0, len(shortNames))
	for long, short := range shortNames {
		out = append(out, Mapping{LongName: long, ShortName: short})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LongName < out[j].LongName })
	return out
}

// Shorten maps a long-form first-level region name to its short form.
// Unknown names are returned unchanged rather than failing, and empty
// input falls back to the capital region.
func Shorten(longName string) string {
	if longName == "" {
		return DefaultShortName
	}
	if short, ok := shortNames[longName]; ok {
		return short
	}
	return longName
}
