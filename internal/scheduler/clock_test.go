package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in     string
		want   Clock
		wantOK bool
	}{
		{"09:00", Clock{9, 0}, true},
		{"9:05", Clock{9, 5}, true},
		{"23:59", Clock{23, 59}, true},
		{"00:00", Clock{0, 0}, true},
		{" 14:30 ", Clock{14, 30}, true},
		{"24:00", Clock{}, false},
		{"12:60", Clock{}, false},
		{"-1:30", Clock{}, false},
		{"noon", Clock{}, false},
		{"12", Clock{}, false},
		{"", Clock{}, false},
		{"12:3a", Clock{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseClock(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestClockString_ZeroPadded(t *testing.T) {
	assert.Equal(t, "09:05", Clock{9, 5}.String())
	assert.Equal(t, "23:59", Clock{23, 59}.String())
	assert.Equal(t, "00:00", Clock{}.String())
}

func TestClockAdvance(t *testing.T) {
	tests := []struct {
		name string
		c    Clock
		min  int
		want Clock
	}{
		{"simple", Clock{9, 0}, 60, Clock{10, 0}},
		{"minute overflow normalizes", Clock{9, 45}, 30, Clock{10, 15}},
		{"multi-hour overflow", Clock{9, 0}, 200, Clock{12, 20}},
		{"clamps at end of day", Clock{23, 30}, 60, Clock{23, 59}},
		{"far past midnight still clamps", Clock{22, 0}, 600, Clock{23, 59}},
		{"negative treated as zero", Clock{10, 0}, -15, Clock{10, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Advance(tt.min))
		})
	}
}

func TestClockBefore(t *testing.T) {
	assert.True(t, Clock{9, 30}.Before(Clock{10, 0}))
	assert.False(t, Clock{10, 0}.Before(Clock{9, 30}))
	assert.False(t, Clock{10, 0}.Before(Clock{10, 0}))
}
