package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanAPIKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "plain", value: "owm-123", want: "owm-123"},
		{name: "pasted with newline", value: "  owm-123\n", want: "owm-123"},
		{name: "empty", value: " \n", wantErr: true},
		{name: "two lines", value: "owm-123\nurl: x", wantErr: true},
		{name: "inner space", value: "owm 123", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := CleanAPIKey(tc.value)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSecret)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
