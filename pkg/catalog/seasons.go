package catalog

import "github.com/lunarbloom/courtship/pkg/character"

// Season maps a span of game days to per-attribute gain multipliers.
// The 42-day calendar is divided into four fixed seasons.
type Season struct {
	Name        string                    `json:"name"`
	FirstDay    int                       `json:"first_day"`
	LastDay     int                       `json:"last_day"`
	Multipliers map[character.Key]float64 `json:"multipliers,omitempty"`
	Flavor      string                    `json:"flavor,omitempty"`
}

// Contains reports whether the given game day falls in this season.
func (s Season) Contains(day int) bool {
	return day >= s.FirstDay && day <= s.LastDay
}

// SeasonFor returns the season covering the given day. The last season
// also covers any out-of-range day so lookups never fail.
func (cat *Catalog) SeasonFor(day int) Season {
	for _, s := range cat.Seasons {
		if s.Contains(day) {
			return s
		}
	}
	if len(cat.Seasons) > 0 {
		return cat.Seasons[len(cat.Seasons)-1]
	}
	return Season{Name: "none", FirstDay: 1, LastDay: character.FinalDay}
}

// FestivalFor returns the festival name for a day, if that day is one
// of the fixed calendar festivals.
func (cat *Catalog) FestivalFor(day int) (string, bool) {
	name, ok := cat.Festivals[day]
	return name, ok
}
