package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/lexuantruongseo-gif/cham-cong/app/database"
	"github.com/lexuantruongseo-gif/cham-cong/app/models"
	"github.com/lexuantruongseo-gif/cham-cong/app/store"
)

// StartScheduler starts the background check-in reminder loop. Each
// pass looks for staff with an approved registration whose shift is
// about to start but who have not clocked in yet, and mails them once
// per shift per day. Attendance changes wake the loop early so a
// just-completed check-in suppresses the reminder without waiting for
// the next tick.
func StartScheduler(db *sql.DB, hub *store.Hub, mailer *Mailer) {
	go func() {
		log.Println("Reminder scheduler started...")

		wake := make(chan struct{}, 1)
		hub.Subscribe(store.SetAttendance, func(string) {
			select {
			case wake <- struct{}{}:
			default:
			}
		})

		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		reminded := make(map[string]bool)
		lastDate := ""

		for {
			select {
			case <-ticker.C:
			case <-wake:
			}

			now := time.Now()
			today := now.Format("2006-01-02")
			if today != lastDate {
				reminded = make(map[string]bool)
				lastDate = today
			}

			runReminderPass(db, mailer, now, today, reminded)
		}
	}()
}

func runReminderPass(db *sql.DB, mailer *Mailer, now time.Time, today string, reminded map[string]bool) {
	regs, err := database.GetRegistrationsByDateRange(db, today, today)
	if err != nil {
		log.Printf("Reminder pass: load registrations: %v", err)
		return
	}
	if len(regs) == 0 {
		return
	}

	shifts, err := database.GetAllShifts(db)
	if err != nil {
		log.Printf("Reminder pass: load shifts: %v", err)
		return
	}

	current := now.Format("15:04")
	for _, reg := range regs {
		if reg.Status != models.StatusApproved {
			continue
		}
		shift := findShift(shifts, reg.ShiftID)
		if shift == nil {
			continue
		}
		if !withinReminderWindow(now, current, shift.StartTime, shift.EndTime) {
			continue
		}

		key := reg.UserID + "|" + reg.ShiftID + "|" + today
		if reminded[key] {
			continue
		}

		active, err := database.GetActiveRecordForUser(db, reg.UserID)
		if err != nil {
			log.Printf("Reminder pass: check active record for %s: %v", reg.UserID, err)
			continue
		}
		if active != nil {
			// Already clocked in, nothing to remind.
			reminded[key] = true
			continue
		}

		user, err := database.GetUserByID(db, reg.UserID)
		if err != nil {
			log.Printf("Reminder pass: load user %s: %v", reg.UserID, err)
			continue
		}

		if err := mailer.SendCheckInReminder(user, shift); err != nil {
			log.Printf("Reminder pass: %v", err)
			continue
		}
		reminded[key] = true
		log.Printf("Sent check-in reminder to %s for shift %s", user.Email, shift.Name)
	}
}

// withinReminderWindow reports whether now falls between 30 minutes
// before the shift starts and the shift's end, so staff who are late
// keep getting caught until the shift is over.
func withinReminderWindow(now time.Time, current, start, end string) bool {
	startAt := clockOn(now, start)
	windowOpen := startAt.Add(-earlyCheckInWindow)
	return !now.Before(windowOpen) && current <= end
}
