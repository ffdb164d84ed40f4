package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklane/jobboard-backend-go/internal/domain/attendance"
	"github.com/worklane/jobboard-backend-go/internal/domain/settings"
)

func TestCheckWindow_CheckIn(t *testing.T) {
	s := settings.TimeSettings{CheckInStartHour: 10, CheckInEndHour: 11, CheckOutStartHour: 17}

	tests := []struct {
		name    string
		hour    int
		allowed bool
	}{
		{name: "before window", hour: 9, allowed: false},
		{name: "start hour is inclusive", hour: 10, allowed: true},
		{name: "end hour is exclusive", hour: 11, allowed: false},
		{name: "well after window", hour: 15, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkWindow(attendance.ActionCheckIn, tt.hour, s)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}

			var windowErr *attendance.TimeWindowError
			require.ErrorAs(t, err, &windowErr)
			assert.Equal(t, attendance.ActionCheckIn, windowErr.Action)
			assert.Equal(t, 10, windowErr.StartHour)
			assert.Equal(t, 11, windowErr.EndHour)
		})
	}
}

func TestCheckWindow_CheckOutHasNoUpperBound(t *testing.T) {
	s := settings.TimeSettings{CheckInStartHour: 7, CheckInEndHour: 10, CheckOutStartHour: 19}

	err := checkWindow(attendance.ActionCheckOut, 18, s)
	var windowErr *attendance.TimeWindowError
	require.ErrorAs(t, err, &windowErr)
	assert.Equal(t, attendance.ActionCheckOut, windowErr.Action)
	assert.Equal(t, 19, windowErr.StartHour)
	assert.Equal(t, -1, windowErr.EndHour)

	assert.NoError(t, checkWindow(attendance.ActionCheckOut, 19, s))
	assert.NoError(t, checkWindow(attendance.ActionCheckOut, 23, s))
}
