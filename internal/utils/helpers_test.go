package utils_test

import (
	"testing"

	"github.com/lifeline-lk/blood-bank-service/internal/models"
	"github.com/lifeline-lk/blood-bank-service/internal/utils"

	"github.com/stretchr/testify/require"
)

func TestParseLimitOffset(t *testing.T) {
	tests := []struct {
		name       string
		limitStr   string
		offsetStr  string
		wantLimit  int
		wantOffset int
		wantErr    bool
	}{
		{"defaults", "", "", 5, 0, false},
		{"explicit values", "20", "10", 20, 10, false},
		{"max limit", "50", "", 50, 0, false},
		{"limit too large", "51", "", 0, 0, true},
		{"zero limit", "0", "", 0, 0, true},
		{"negative limit", "-1", "", 0, 0, true},
		{"negative offset", "", "-3", 0, 0, true},
		{"non-numeric limit", "abc", "", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset, err := utils.ParseLimitOffset(tt.limitStr, tt.offsetStr)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantLimit, limit)
			require.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	require.True(t, utils.IsValidPhoneNumber("0771234567"))
	require.False(t, utils.IsValidPhoneNumber("077123456"))
	require.False(t, utils.IsValidPhoneNumber("07712345678"))
	require.False(t, utils.IsValidPhoneNumber("+94771234567"))
	require.False(t, utils.IsValidPhoneNumber("07712345ab"))
	require.False(t, utils.IsValidPhoneNumber(""))
}

func TestIsValidEmail(t *testing.T) {
	require.True(t, utils.IsValidEmail("donor@example.com"))
	require.True(t, utils.IsValidEmail("first.last@hospital.lk"))
	require.False(t, utils.IsValidEmail("not-an-email"))
	require.False(t, utils.IsValidEmail("missing@domain"))
	require.False(t, utils.IsValidEmail(""))
}

func TestContainsStatus(t *testing.T) {
	statuses := []models.AcceptStatus{models.AcceptedRequest, models.DeclinedRequest}
	require.True(t, utils.ContainsStatus(statuses, models.AcceptedRequest))
	require.True(t, utils.ContainsStatus(statuses, models.DeclinedRequest))
	require.False(t, utils.ContainsStatus(statuses, models.PendingRequest))
	require.False(t, utils.ContainsStatus(nil, models.AcceptedRequest))
}
