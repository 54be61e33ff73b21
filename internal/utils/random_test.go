package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUsernameFromFullName(t *testing.T) {
	username := GenerateUsernameFromFullName("José García")

	assert.True(t, strings.HasPrefix(username, "jgarcia"), "got %q", username)
	for _, r := range username {
		assert.True(t, (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'), "got %q", username)
	}
}

func TestGenerateRandomOTP(t *testing.T) {
	otp := GenerateRandomOTP()

	require.Len(t, otp, 6)
	for _, r := range otp {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	assert.Len(t, GenerateRandomPassword(12), 12)
}

func TestGenerateRandomEmployee(t *testing.T) {
	employee, err := GenerateRandomEmployee("secreta123", "nominasur.co")
	require.NoError(t, err)

	assert.NotEmpty(t, employee.Username)
	assert.NotEmpty(t, employee.FullName)
	assert.True(t, strings.HasSuffix(employee.Email, "@nominasur.co"))
	assert.True(t, employee.IsActive)
	assert.NotEqual(t, "secreta123", employee.PasswordHash)
}

func TestGenerateRandomShiftTemplate(t *testing.T) {
	st := GenerateRandomShiftTemplate()

	require.GreaterOrEqual(t, len(st.Segments), 5)
	for _, segment := range st.Segments {
		assert.GreaterOrEqual(t, segment.DayOfWeek, int32(1))
		assert.LessOrEqual(t, segment.DayOfWeek, int32(6))
	}
}
