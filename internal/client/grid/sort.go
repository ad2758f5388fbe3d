package grid

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/geofield/borelog/internal/client/models"
)

// Sort returns a copy of records ordered by the given key. When both compared
// values parse as finite numbers the comparison is numeric; otherwise it is
// locale-aware string order. Descending order reverses the ascending result,
// matching the toggle behavior of the table header.
func Sort(records []models.Record, key string, desc bool) []models.Record {
	out := make([]models.Record, len(records))
	copy(out, records)
	if key == "" {
		return out
	}

	coll := collate.New(language.English, collate.Loose)
	sort.SliceStable(out, func(i, j int) bool {
		return compareValues(coll, out[i].Get(key), out[j].Get(key)) < 0
	})
	if desc {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func compareValues(coll *collate.Collator, left, right string) int {
	lf, lok := parseFinite(left)
	rf, rok := parseFinite(right)
	if lok && rok {
		switch {
		case lf < rf:
			return -1
		case lf > rf:
			return 1
		default:
			return 0
		}
	}
	return coll.CompareString(left, right)
}

func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
