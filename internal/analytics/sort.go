package analytics

import (
	"slices"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortRecords returns a sorted copy of records. Every ordering is stable, so
// ties keep their source order.
//
// For SortHarvestDate a missing or unparseable date orders as the earliest
// possible date, which puts such records first.
func SortRecords(records []FarmerRecord, option SortOption) []FarmerRecord {
	out := slices.Clone(records)
	if out == nil {
		out = []FarmerRecord{}
	}

	switch option {
	case SortNameAsc, SortNameDesc:
		// collate.Collator is not safe for concurrent use.
		c := collate.New(language.Indonesian, collate.IgnoreCase)
		desc := option == SortNameDesc
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return c.CompareString(out[j].Name, out[i].Name) < 0
			}
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})

	case SortHarvestDate:
		type keyed struct {
			record FarmerRecord
			at     time.Time
			ok     bool
		}
		items := make([]keyed, len(out))
		for i, r := range out {
			at, ok := r.HarvestTime()
			items[i] = keyed{record: r, at: at, ok: ok}
		}
		sort.SliceStable(items, func(i, j int) bool {
			a, b := items[i], items[j]
			switch {
			case !a.ok:
				return b.ok
			case !b.ok:
				return false
			default:
				return a.at.Before(b.at)
			}
		})
		for i := range items {
			out[i] = items[i].record
		}
	}

	return out
}
