package services

import (
	"fmt"
	"time"

	"github.com/lexuantruongseo-gif/cham-cong/app/models"
)

// CheckResult is the combined outcome of the clock-in precondition
// rules. All rules are evaluated independently so the caller can show
// every violation at once instead of just the first one.
type CheckResult struct {
	Allowed    bool     `json:"allowed"`
	Reasons    []string `json:"reasons"`
	TimeOK     bool     `json:"time_ok"`
	IPOK       bool     `json:"ip_ok"`
	ResolvedIP string   `json:"resolved_ip"`
}

// ValidateCheckIn decides whether a check-in/out action is permitted
// right now under the configured time-window and office-IP rules.
// resolver may not be nil.
func ValidateCheckIn(now time.Time, settings models.Settings, resolver *IPResolver) CheckResult {
	result := CheckResult{Allowed: true, Reasons: []string{}}

	startHM := settings.AllowedCheckInStart
	if startHM == "" {
		startHM = "00:00"
	}
	endHM := settings.AllowedCheckInEnd
	if endHM == "" {
		endHM = "23:59"
	}

	currentHM := now.Format("15:04")
	if withinClockWindow(currentHM, startHM, endHM) {
		result.TimeOK = true
	} else {
		result.Allowed = false
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("Chấm công ngoài giờ quy định (%s - %s).", startHM, endHM))
	}

	ip, err := resolver.Resolve()
	result.ResolvedIP = ip
	switch {
	case settings.OfficeIP == "":
		// No office IP configured means the rule is off entirely,
		// even when resolution itself failed.
		result.IPOK = true
	case err != nil:
		result.Allowed = false
		result.Reasons = append(result.Reasons, "Không thể xác thực địa chỉ IP.")
	case settings.OfficeIP != ip:
		result.Allowed = false
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("Địa chỉ IP (%s) không thuộc văn phòng.", ip))
	default:
		result.IPOK = true
	}

	return result
}

// withinClockWindow reports whether the zero-padded "HH:mm" instant
// falls inside [start, end]. When start > end the window is taken to
// wrap midnight, so the instant passes when it is at or after start or
// at or before end.
func withinClockWindow(current, start, end string) bool {
	if start <= end {
		return current >= start && current <= end
	}
	return current >= start || current <= end
}
