package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultScheduleLabels(t *testing.T) {
	schedule := DefaultSchedule()

	labels := schedule.Labels()
	assert.Len(t, labels, 28, "08:00 through 21:30 at 30 minutes is 28 labels")
	assert.Equal(t, "08:00", labels[0])
	assert.Equal(t, "21:30", labels[len(labels)-1])
}

func TestNewDailyScheduleGranularity(t *testing.T) {
	schedule := NewDailySchedule(9, 12, 60)

	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, schedule.Labels())
	assert.Equal(t, 3, schedule.Len())
}

func TestScheduleContains(t *testing.T) {
	schedule := DefaultSchedule()

	assert.True(t, schedule.Contains("08:00"))
	assert.True(t, schedule.Contains("21:30"))
	assert.False(t, schedule.Contains("22:00"), "after the window")
	assert.False(t, schedule.Contains("08:15"), "off-granularity")
	assert.False(t, schedule.Contains("8:00"), "not zero-padded")
}

func TestNewDailyScheduleRejectsNonsenseConfig(t *testing.T) {
	schedule := NewDailySchedule(22, 8, 30)

	assert.Equal(t, DefaultSchedule().Labels(), schedule.Labels(), "falls back to the default window")
}

func TestLabelsReturnsCopy(t *testing.T) {
	schedule := DefaultSchedule()

	labels := schedule.Labels()
	labels[0] = "mutated"

	assert.Equal(t, "08:00", schedule.Labels()[0])
}
