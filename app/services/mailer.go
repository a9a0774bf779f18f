package services

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"github.com/lexuantruongseo-gif/cham-cong/app/config"
	"github.com/lexuantruongseo-gif/cham-cong/app/models"
)

// Mailer sends check-in reminder emails. When no SMTP host is
// configured it degrades to logging, so local setups work without a
// mail server.
type Mailer struct {
	smtp config.SMTPConfig
}

func NewMailer(smtp config.SMTPConfig) *Mailer {
	return &Mailer{smtp: smtp}
}

func (m *Mailer) SendCheckInReminder(user *models.User, shift *models.Shift) error {
	subject := fmt.Sprintf("Nhắc nhở chấm công - %s", shift.Name)
	body := fmt.Sprintf(
		"Chào %s,<br><br>Ca làm việc <b>%s</b> (%s - %s) của bạn hôm nay sắp bắt đầu nhưng bạn chưa chấm công vào.<br>Vui lòng chấm công ngay khi bắt đầu làm việc.<br><br>Trân trọng.",
		user.Name, shift.Name, shift.StartTime, shift.EndTime,
	)

	if m.smtp.Host == "" {
		log.Printf("SMTP not configured, skipping reminder email to %s (%s)", user.Email, shift.Name)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.smtp.From)
	msg.SetHeader("To", user.Email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.smtp.Host, m.smtp.Port, m.smtp.Username, m.smtp.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send reminder to %s: %w", user.Email, err)
	}
	return nil
}
