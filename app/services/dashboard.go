package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/lexuantruongseo-gif/cham-cong/app/models"
)

// Policy constants for the workforce assessment. The defaults mirror
// the observed behavior; BuildDashboard always uses these.
const (
	// EarlyLeaveThresholdHours is how many hours short of the nominal
	// shift duration a closed record may be before it is flagged.
	EarlyLeaveThresholdHours = 0.25
	// LowParticipationPercent is the participation rate below which
	// the assessment drops to the warning tier.
	LowParticipationPercent = 50.0
	// recentActivityLimit caps the activity feed length.
	recentActivityLimit = 10
)

// Assessment tiers, worst to best.
const (
	AssessmentAlert   = "alert"
	AssessmentCaution = "caution"
	AssessmentGood    = "good"
)

// ActivityEvent is one entry of the dashboard activity feed. A closed
// attendance record contributes two events, an open one only the
// check-in.
type ActivityEvent struct {
	ID        string `json:"id"`
	UserName  string `json:"user_name"`
	Type      string `json:"type"` // "check-in" or "check-out"
	Time      int64  `json:"time"`
	ShiftName string `json:"shift_name,omitempty"`
}

// EarlyLeaver flags a closed record that fell noticeably short of its
// shift's nominal duration.
type EarlyLeaver struct {
	Record       models.AttendanceRecord `json:"record"`
	ShiftName    string                  `json:"shift_name"`
	MissingHours float64                 `json:"missing_hours"`
}

// WorkingEntry is an open session joined with display info of its owner.
type WorkingEntry struct {
	models.AttendanceRecord
	ShiftName  string `json:"shift_name"`
	Department string `json:"department"`
	Code       string `json:"code"`
	Avatar     string `json:"avatar,omitempty"`
}

// Performance summarizes punctuality for today.
type Performance struct {
	OnTime int `json:"on_time"`
	Late   int `json:"late"`
	Score  int `json:"score"`
}

// DashboardSnapshot is the full derived view for the overview screen.
// It is a pure function of its inputs; recomputing it from the same
// snapshot yields an identical value.
type DashboardSnapshot struct {
	TotalStaff        int             `json:"total_staff"`
	CurrentlyWorking  int             `json:"currently_working"`
	WorkingList       []WorkingEntry  `json:"working_list"`
	FinishedToday     int             `json:"finished_today"`
	ActualPresent     int             `json:"actual_present"`
	AbsentStaff       []models.User   `json:"absent_staff"`
	EarlyLeavers      []EarlyLeaver   `json:"early_leavers"`
	RecentActivity    []ActivityEvent `json:"recent_activity"`
	Performance       Performance     `json:"performance"`
	ParticipationRate float64         `json:"participation_rate"`
	Assessment        string          `json:"assessment"`
	AssessmentTier    string          `json:"assessment_tier"`
	ActiveShiftName   string          `json:"active_shift_name"`
}

// BuildDashboard derives the live workforce statistics from a snapshot
// of users, shifts and attendance records at the given instant.
func BuildDashboard(users []models.User, shifts []models.Shift, attendance []models.AttendanceRecord, now time.Time) DashboardSnapshot {
	todayStr := now.Format("2006-01-02")

	var staffUsers []models.User
	for _, u := range users {
		if u.Role == models.RoleStaff {
			staffUsers = append(staffUsers, u)
		}
	}

	var working []models.AttendanceRecord
	var todayRecords []models.AttendanceRecord
	finishedToday := 0
	for _, r := range attendance {
		if r.Open() {
			working = append(working, r)
		}
		if r.Date == todayStr {
			todayRecords = append(todayRecords, r)
			if !r.Open() {
				finishedToday++
			}
		}
	}

	totalStaff := len(staffUsers)
	actualPresent := len(working) + finishedToday

	activeUserIDs := make(map[string]bool)
	for _, r := range todayRecords {
		activeUserIDs[r.UserID] = true
	}
	for _, r := range working {
		activeUserIDs[r.UserID] = true
	}
	absentStaff := make([]models.User, 0)
	for _, u := range staffUsers {
		if !activeUserIDs[u.ID] {
			absentStaff = append(absentStaff, u)
		}
	}

	onTime, late := 0, 0
	earlyLeavers := make([]EarlyLeaver, 0)
	for _, r := range todayRecords {
		shift := findShift(shifts, r.ShiftID)
		if shift == nil {
			// Off-schedule records cannot be judged against a shift.
			onTime++
			continue
		}

		checkIn := time.UnixMilli(r.CheckInTime).In(now.Location())
		shiftStart := clockOn(checkIn, shift.StartTime)
		lateThreshold := shiftStart.Add(time.Duration(shift.AllowedLateMinutes) * time.Minute)
		if checkIn.After(lateThreshold) {
			late++
		} else {
			onTime++
		}

		if !r.Open() && r.WorkHours > 0 {
			duration := shiftDurationHours(shift)
			if r.WorkHours < duration-EarlyLeaveThresholdHours {
				earlyLeavers = append(earlyLeavers, EarlyLeaver{
					Record:       r,
					ShiftName:    shift.Name,
					MissingHours: duration - r.WorkHours,
				})
			}
		}
	}

	activities := make([]ActivityEvent, 0, len(attendance)*2)
	for _, r := range attendance {
		shiftName := ""
		if s := findShift(shifts, r.ShiftID); s != nil {
			shiftName = s.Name
		}
		activities = append(activities, ActivityEvent{
			ID: r.ID + "_in", UserName: r.UserName, Type: "check-in",
			Time: r.CheckInTime, ShiftName: shiftName,
		})
		if !r.Open() {
			activities = append(activities, ActivityEvent{
				ID: r.ID + "_out", UserName: r.UserName, Type: "check-out",
				Time: r.CheckOutTime, ShiftName: shiftName,
			})
		}
	}
	sort.SliceStable(activities, func(i, j int) bool { return activities[i].Time > activities[j].Time })
	if len(activities) > recentActivityLimit {
		activities = activities[:recentActivityLimit]
	}

	participation := 0.0
	if totalStaff > 0 {
		participation = float64(actualPresent) / float64(totalStaff) * 100
	}

	assessment := "TỐT: Tỷ lệ đi làm ổn định và tuân thủ giờ giấc khá tốt."
	tier := AssessmentGood
	if participation < LowParticipationPercent {
		assessment = "CẢNH BÁO: Tỷ lệ đi làm thấp (< 50%)."
		tier = AssessmentAlert
	} else if late > onTime {
		assessment = "LƯU Ý: Đa số nhân viên đi làm muộn."
		tier = AssessmentCaution
	}

	score := 100
	if actualPresent > 0 {
		score = int(math.Round(float64(onTime) / float64(actualPresent) * 100))
	}

	activeShiftName := "Ngoài giờ làm việc"
	currentHM := now.Format("15:04")
	for _, s := range shifts {
		if currentHM >= s.StartTime && currentHM <= s.EndTime {
			activeShiftName = fmt.Sprintf("%s (%s - %s)", s.Name, s.StartTime, s.EndTime)
			break
		}
	}

	workingList := make([]WorkingEntry, 0, len(working))
	for _, r := range working {
		entry := WorkingEntry{AttendanceRecord: r, ShiftName: "Không xác định", Department: "---", Code: "---"}
		if s := findShift(shifts, r.ShiftID); s != nil {
			entry.ShiftName = s.Name
		}
		for _, u := range users {
			if u.ID == r.UserID {
				if u.Department != "" {
					entry.Department = u.Department
				}
				if u.Code != "" {
					entry.Code = u.Code
				}
				entry.Avatar = u.Avatar
				break
			}
		}
		workingList = append(workingList, entry)
	}

	return DashboardSnapshot{
		TotalStaff:        totalStaff,
		CurrentlyWorking:  len(working),
		WorkingList:       workingList,
		FinishedToday:     finishedToday,
		ActualPresent:     actualPresent,
		AbsentStaff:       absentStaff,
		EarlyLeavers:      earlyLeavers,
		RecentActivity:    activities,
		Performance:       Performance{OnTime: onTime, Late: late, Score: score},
		ParticipationRate: participation,
		Assessment:        assessment,
		AssessmentTier:    tier,
		ActiveShiftName:   activeShiftName,
	}
}

func shiftDurationHours(s *models.Shift) float64 {
	var sh, sm, eh, em int
	fmt.Sscanf(s.StartTime, "%d:%d", &sh, &sm)
	fmt.Sscanf(s.EndTime, "%d:%d", &eh, &em)
	return (float64(eh) + float64(em)/60) - (float64(sh) + float64(sm)/60)
}
