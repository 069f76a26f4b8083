package pickup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestASAPOnly(t *testing.T) {
	policy := NewASAPOnly()
	assert.Equal(t, []string{"ASAP"}, policy.Available(time.Now()))
}

func TestEnumerated(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	labels := []string{"9:30", "9:40", "9:50", "10"}

	at := func(hour, min int) time.Time {
		return time.Date(2025, time.March, 12, hour, min, 0, 0, chicago)
	}

	tests := []struct {
		name string
		now  time.Time
		want []string
	}{
		{
			name: "before_first_slot_all_offered",
			now:  at(8, 0),
			want: []string{"ASAP", "9:30", "9:40", "9:50", "10"},
		},
		{
			name: "mid_morning_past_slots_dropped",
			now:  at(9, 45),
			want: []string{"ASAP", "9:50", "10"},
		},
		{
			name: "exact_slot_time_still_offered",
			now:  at(9, 40),
			want: []string{"ASAP", "9:40", "9:50", "10"},
		},
		{
			name: "after_last_slot_only_asap",
			now:  at(11, 0),
			want: []string{"ASAP"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := NewEnumerated(labels, chicago)
			assert.Equal(t, tt.want, policy.Available(tt.now))
		})
	}
}

func TestEnumeratedSkipsUnparsableLabels(t *testing.T) {
	policy := NewEnumerated([]string{"9:30", "half past nine", "10"}, time.UTC)

	got := policy.Available(time.Date(2025, time.March, 12, 8, 0, 0, 0, time.UTC))

	assert.Equal(t, []string{"ASAP", "9:30", "10"}, got)
}

func TestOffered(t *testing.T) {
	now := time.Date(2025, time.March, 12, 8, 0, 0, 0, time.UTC)
	policy := NewEnumerated([]string{"9:30"}, time.UTC)

	assert.True(t, Offered(policy, "ASAP", now))
	assert.True(t, Offered(policy, "9:30", now))
	assert.False(t, Offered(policy, "9:45", now))
	assert.False(t, Offered(NewASAPOnly(), "9:30", now))
}
