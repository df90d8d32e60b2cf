package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	minutes, err := ParseClockTime("15:04")
	require.NoError(t, err)
	assert.Equal(t, 15*60+4, minutes)

	_, err = ParseClockTime("")
	assert.Error(t, err)

	_, err = ParseClockTime("25:00")
	assert.Error(t, err)
}

func TestStoreScheduleValidate(t *testing.T) {
	tests := []struct {
		name     string
		schedule StoreSchedule
		wantErr  bool
	}{
		{
			name:     "valid",
			schedule: StoreSchedule{BusinessStartTime: "09:00", OrderCutoffTime: "15:00"},
		},
		{
			name:     "valid with override",
			schedule: StoreSchedule{BusinessStartTime: "09:00", OrderCutoffTime: "15:00", AcceptanceOverride: AcceptanceTomorrow},
		},
		{
			name:     "cutoff before start",
			schedule: StoreSchedule{BusinessStartTime: "15:00", OrderCutoffTime: "09:00"},
			wantErr:  true,
		},
		{
			name:     "midnight spanning",
			schedule: StoreSchedule{BusinessStartTime: "18:00", OrderCutoffTime: "02:00"},
			wantErr:  true,
		},
		{
			name:     "zero-width window",
			schedule: StoreSchedule{BusinessStartTime: "09:00", OrderCutoffTime: "09:00"},
			wantErr:  true,
		},
		{
			name:     "unparseable start",
			schedule: StoreSchedule{BusinessStartTime: "nine", OrderCutoffTime: "15:00"},
			wantErr:  true,
		},
		{
			name:     "unknown override",
			schedule: StoreSchedule{BusinessStartTime: "09:00", OrderCutoffTime: "15:00", AcceptanceOverride: "maybe"},
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schedule.Validate()
			if tt.wantErr {
				var verr *ValidationError
				require.Error(t, err)
				assert.ErrorAs(t, err, &verr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
