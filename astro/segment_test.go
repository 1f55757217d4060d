package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	expected := map[int]DaySegment{
		0: Night, 5: Night,
		6: Morning, 11: Morning,
		12: Afternoon, 16: Afternoon,
		17: Evening, 19: Evening,
		20: Night, 23: Night,
	}
	for hour, want := range expected {
		assert.Equal(t, want, Classify(hour), "hour %d", hour)
	}
}

func TestClassify_PartitionsAllHours(t *testing.T) {
	valid := map[DaySegment]bool{Morning: true, Afternoon: true, Evening: true, Night: true}
	for hour := 0; hour < 24; hour++ {
		assert.True(t, valid[Classify(hour)], "hour %d must land in a known segment", hour)
	}
}

func TestIsDay(t *testing.T) {
	assert.True(t, IsDay(Morning))
	assert.True(t, IsDay(Afternoon))
	assert.False(t, IsDay(Evening))
	assert.False(t, IsDay(Night))
}
