package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinutesSinceMidnight(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "00:00", want: 0},
		{input: "08:05", want: 485},
		{input: "8:05", want: 485},
		{input: "12:00", want: 720},
		{input: "23:59", want: 1439},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "12", wantErr: true},
		{input: "12:00:00", wantErr: true},
		{input: " 12:00", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := MinutesSinceMidnight(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedTime)
				assert.False(t, ValidClock(tt.input))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, ValidClock(tt.input))
		})
	}
}
