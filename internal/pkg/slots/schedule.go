package slots

import "fmt"

// DailySchedule is the fixed ordered sequence of bookable time labels shared
// by every day. It is configuration, not per-day state.
type DailySchedule struct {
	labels   []string
	labelSet map[string]struct{}
}

const (
	DefaultStartHour   = 8
	DefaultEndHour     = 22
	DefaultSlotMinutes = 30
)

// NewDailySchedule builds the label sequence from startHour (inclusive) to
// endHour (exclusive) at slotMinutes granularity. The defaults produce the 28
// labels 08:00 through 21:30.
func NewDailySchedule(startHour, endHour, slotMinutes int) DailySchedule {
	if startHour < 0 || endHour <= startHour || slotMinutes <= 0 {
		startHour, endHour, slotMinutes = DefaultStartHour, DefaultEndHour, DefaultSlotMinutes
	}

	var labels []string
	labelSet := make(map[string]struct{})
	for minutes := startHour * 60; minutes < endHour*60; minutes += slotMinutes {
		label := fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
		labels = append(labels, label)
		labelSet[label] = struct{}{}
	}
	return DailySchedule{labels: labels, labelSet: labelSet}
}

func DefaultSchedule() DailySchedule {
	return NewDailySchedule(DefaultStartHour, DefaultEndHour, DefaultSlotMinutes)
}

// Labels returns the ordered sequence of time labels.
func (s DailySchedule) Labels() []string {
	labels := make([]string, len(s.labels))
	copy(labels, s.labels)
	return labels
}

func (s DailySchedule) Len() int {
	return len(s.labels)
}

// Contains reports whether the time label is part of the schedule.
func (s DailySchedule) Contains(timeLabel string) bool {
	_, ok := s.labelSet[timeLabel]
	return ok
}
