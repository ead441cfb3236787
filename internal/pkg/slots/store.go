package slots

import (
	"sort"
	"strings"
	"time"
)

// Store maps day -> time -> occupant name. Only non-blank names are
// materialized; a day with zero occupied slots has no key at all.
type Store map[string]map[string]string

// SearchResult is one occupied slot matched by Search.
type SearchResult struct {
	Day  string `json:"day"`
	Time string `json:"time"`
	Name string `json:"name"`
}

const DefaultHorizonDays = 366

const dayLayout = "2006-01-02"

// Set writes the trimmed name under (day, time). A name that trims to empty
// is a delete; the day map is pruned when its last slot goes away.
func (s Store) Set(day, timeLabel, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		s.Clear(day, timeLabel)
		return
	}
	dayMap, ok := s[day]
	if !ok {
		dayMap = make(map[string]string)
		s[day] = dayMap
	}
	dayMap[timeLabel] = name
}

// Clear removes (day, time). Clearing an absent slot is a no-op.
func (s Store) Clear(day, timeLabel string) {
	dayMap, ok := s[day]
	if !ok {
		return
	}
	delete(dayMap, timeLabel)
	if len(dayMap) == 0 {
		delete(s, day)
	}
}

// Get returns the occupant name for (day, time), or "" when unoccupied.
func (s Store) Get(day, timeLabel string) string {
	return s[day][timeLabel]
}

// Clone returns a deep copy. Consumers holding a snapshot must never see
// later mutations.
func (s Store) Clone() Store {
	clone := make(Store, len(s))
	for day, dayMap := range s {
		copied := make(map[string]string, len(dayMap))
		for timeLabel, name := range dayMap {
			copied[timeLabel] = name
		}
		clone[day] = copied
	}
	return clone
}

// IsDayFull reports whether every schedule label has a non-blank occupant.
func (s Store) IsDayFull(schedule DailySchedule, day string) bool {
	dayMap, ok := s[day]
	if !ok {
		return false
	}
	for _, label := range schedule.Labels() {
		if strings.TrimSpace(dayMap[label]) == "" {
			return false
		}
	}
	return true
}

// FillRatio returns occupied schedule labels over schedule length, 0 when the
// day is absent or the schedule is empty.
func (s Store) FillRatio(schedule DailySchedule, day string) float64 {
	if schedule.Len() == 0 {
		return 0
	}
	dayMap, ok := s[day]
	if !ok {
		return 0
	}
	occupied := 0
	for _, label := range schedule.Labels() {
		if strings.TrimSpace(dayMap[label]) != "" {
			occupied++
		}
	}
	return float64(occupied) / float64(schedule.Len())
}

// Search matches query case-insensitively as a substring of occupant names,
// restricted to days >= sinceDay, sorted by (day, time) ascending. The result
// is recomputed fresh on every call; there is no cached iterator state.
func (s Store) Search(query, sinceDay string) []SearchResult {
	query = strings.ToLower(query)

	var results []SearchResult
	for day, dayMap := range s {
		if day < sinceDay {
			continue
		}
		for timeLabel, name := range dayMap {
			if strings.Contains(strings.ToLower(name), query) {
				results = append(results, SearchResult{Day: day, Time: timeLabel, Name: name})
			}
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Day != results[j].Day {
			return results[i].Day < results[j].Day
		}
		return results[i].Time < results[j].Time
	})
	return results
}

// EarliestFree scans days from fromDay forward for up to horizonDays, and
// within each day scans the schedule in order, returning the first
// unoccupied (day, time). ok is false when the whole horizon is full or
// fromDay is not a parseable day key.
func (s Store) EarliestFree(schedule DailySchedule, fromDay string, horizonDays int) (day, timeLabel string, ok bool) {
	start, err := time.Parse(dayLayout, fromDay)
	if err != nil {
		return "", "", false
	}
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	for offset := 0; offset < horizonDays; offset++ {
		candidateDay := start.AddDate(0, 0, offset).Format(dayLayout)
		dayMap := s[candidateDay]
		for _, label := range schedule.Labels() {
			if strings.TrimSpace(dayMap[label]) == "" {
				return candidateDay, label, true
			}
		}
	}
	return "", "", false
}
