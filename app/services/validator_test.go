package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lexuantruongseo-gif/cham-cong/app/models"
)

func fixedResolver(ip string, err error) *IPResolver {
	return NewIPResolverWith(time.Now, func() (string, error) {
		return ip, err
	})
}

func TestWithinClockWindow(t *testing.T) {
	cases := []struct {
		name                string
		current, start, end string
		want                bool
	}{
		{"inside normal window", "09:30", "08:00", "17:00", true},
		{"at start boundary", "08:00", "08:00", "17:00", true},
		{"at end boundary", "17:00", "08:00", "17:00", true},
		{"before window", "07:59", "08:00", "17:00", false},
		{"after window", "17:01", "08:00", "17:00", false},
		{"overnight late side", "23:00", "22:00", "06:00", true},
		{"overnight early side", "05:00", "22:00", "06:00", true},
		{"overnight outside", "12:00", "22:00", "06:00", false},
		{"overnight at start", "22:00", "22:00", "06:00", true},
		{"overnight at end", "06:00", "22:00", "06:00", true},
		{"full day", "13:37", "00:00", "23:59", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, withinClockWindow(tc.current, tc.start, tc.end))
		})
	}
}

func TestValidateCheckInAllowed(t *testing.T) {
	settings := models.Settings{
		OfficeIP:            "203.0.113.7",
		AllowedCheckInStart: "07:00",
		AllowedCheckInEnd:   "22:00",
	}
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	result := ValidateCheckIn(now, settings, fixedResolver("203.0.113.7", nil))

	assert.True(t, result.Allowed)
	assert.True(t, result.TimeOK)
	assert.True(t, result.IPOK)
	assert.Equal(t, "203.0.113.7", result.ResolvedIP)
	assert.Empty(t, result.Reasons)
}

func TestValidateCheckInOutsideWindow(t *testing.T) {
	settings := models.Settings{
		AllowedCheckInStart: "07:00",
		AllowedCheckInEnd:   "22:00",
	}
	now := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)

	result := ValidateCheckIn(now, settings, fixedResolver("203.0.113.7", nil))

	assert.False(t, result.Allowed)
	assert.False(t, result.TimeOK)
	assert.True(t, result.IPOK)
	assert.Contains(t, result.Reasons[0], "ngoài giờ quy định")
	assert.Contains(t, result.Reasons[0], "07:00 - 22:00")
}

func TestValidateCheckInWrongIP(t *testing.T) {
	settings := models.Settings{
		OfficeIP:            "203.0.113.7",
		AllowedCheckInStart: "00:00",
		AllowedCheckInEnd:   "23:59",
	}
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	result := ValidateCheckIn(now, settings, fixedResolver("198.51.100.4", nil))

	assert.False(t, result.Allowed)
	assert.True(t, result.TimeOK)
	assert.False(t, result.IPOK)
	assert.Contains(t, result.Reasons[0], "198.51.100.4")
}

func TestValidateCheckInBothRulesFail(t *testing.T) {
	settings := models.Settings{
		OfficeIP:            "203.0.113.7",
		AllowedCheckInStart: "07:00",
		AllowedCheckInEnd:   "22:00",
	}
	now := time.Date(2025, 3, 10, 2, 0, 0, 0, time.UTC)

	result := ValidateCheckIn(now, settings, fixedResolver("198.51.100.4", nil))

	assert.False(t, result.Allowed)
	assert.Len(t, result.Reasons, 2)
}

func TestValidateCheckInResolverFailure(t *testing.T) {
	settings := models.Settings{
		OfficeIP:            "203.0.113.7",
		AllowedCheckInStart: "00:00",
		AllowedCheckInEnd:   "23:59",
	}
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	result := ValidateCheckIn(now, settings, fixedResolver("", errors.New("network down")))

	assert.False(t, result.Allowed)
	assert.False(t, result.IPOK)
	assert.Contains(t, result.Reasons[0], "Không thể xác thực")
}

func TestValidateCheckInEmptyOfficeIPDisablesCheck(t *testing.T) {
	settings := models.Settings{
		AllowedCheckInStart: "00:00",
		AllowedCheckInEnd:   "23:59",
	}
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	result := ValidateCheckIn(now, settings, fixedResolver("198.51.100.4", nil))

	assert.True(t, result.Allowed)
	assert.True(t, result.IPOK)
}

func TestValidateCheckInEmptyOfficeIPIgnoresResolverFailure(t *testing.T) {
	settings := models.Settings{
		AllowedCheckInStart: "00:00",
		AllowedCheckInEnd:   "23:59",
	}
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	result := ValidateCheckIn(now, settings, fixedResolver("", errors.New("network down")))

	assert.True(t, result.Allowed)
	assert.True(t, result.IPOK)
	assert.Empty(t, result.Reasons)
}

func TestValidateCheckInEmptyWindowDefaultsToFullDay(t *testing.T) {
	now := time.Date(2025, 3, 10, 3, 0, 0, 0, time.UTC)

	result := ValidateCheckIn(now, models.Settings{}, fixedResolver("10.0.0.1", nil))

	assert.True(t, result.Allowed)
	assert.True(t, result.TimeOK)
}
