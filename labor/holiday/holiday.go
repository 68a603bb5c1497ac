package holiday

import (
	"sort"

	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// Holiday is a public holiday as published by the holiday source
type Holiday struct {
	Date  kernel.Date `json:"date"`
	Title string      `json:"title"`
}

// Origin tells where a holiday list came from
type Origin string

const (
	OriginRemote   Origin = "remote"
	OriginCache    Origin = "cache"
	OriginFallback Origin = "fallback"
)

// Years outside [MinYear, MaxYear] are rejected before any source is queried
const (
	MinYear = 1900
	MaxYear = 2200
)

// Set is a lookup of holiday dates
type Set map[kernel.Date]struct{}

// NewSet builds a set from one or more holiday lists
func NewSet(lists ...[]Holiday) Set {
	set := make(Set)
	for _, list := range lists {
		for _, h := range list {
			set[h.Date] = struct{}{}
		}
	}
	return set
}

// Contains reports whether d is a holiday
func (s Set) Contains(d kernel.Date) bool {
	_, ok := s[d]
	return ok
}

// FilterByYear keeps the holidays falling in year
func FilterByYear(holidays []Holiday, year int) []Holiday {
	out := make([]Holiday, 0, len(holidays))
	for _, h := range holidays {
		if h.Date.Year() == year {
			out = append(out, h)
		}
	}
	return out
}

// SortByDate orders holidays chronologically in place
func SortByDate(holidays []Holiday) {
	sort.SliceStable(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})
}
