package services

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"tourops/internal/config"
	"tourops/internal/domain/models"
)

// Mailer sends booking mail over plain SMTP. When SMTP env is absent it logs
// the message instead, which keeps local development working without a relay.
// Callers launch it fire-and-forget; failures are logged and dropped.
type Mailer struct {
	Env config.Env
}

func (m Mailer) configured() bool {
	return m.Env.SMTPHost != "" && m.Env.SMTPUser != "" && m.Env.SMTPPass != ""
}

func (m Mailer) send(to, subject, body string) error {
	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}
	subject = safe(subject)

	if !m.configured() {
		log.Printf("[MOCK EMAIL] to:%s subject:%s", to, subject)
		return nil
	}

	msg := []byte("From: " + m.Env.SMTPUser + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n" +
		body)

	auth := smtp.PlainAuth("", m.Env.SMTPUser, m.Env.SMTPPass, m.Env.SMTPHost)
	addr := m.Env.SMTPHost + ":" + m.Env.SMTPPort
	return smtp.SendMail(addr, auth, m.Env.SMTPUser, []string{to}, msg)
}

// SendBookingConfirmation mails the customer after a booking is created.
func (m Mailer) SendBookingConfirmation(b models.Booking, tourTitle string) error {
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"We received your booking #%d for %s.\n"+
			"Travel date: %s\nParty size: %d\nTotal: %s\n\n"+
			"Our staff will contact you to confirm the details.\n",
		b.CustomerName, b.ID, tourTitle, b.TravelDate, b.NumberOfPeople, b.TotalPrice.StringFixed(2))
	return m.send(b.CustomerEmail, fmt.Sprintf("Booking #%d received", b.ID), body)
}

// SendBookingNotification mails the back office about a new booking.
func (m Mailer) SendBookingNotification(b models.Booking, tourTitle string) error {
	if m.Env.AdminEmail == "" {
		return nil
	}
	body := fmt.Sprintf(
		"New booking #%d\nTour: %s\nCustomer: %s <%s> %s\nTravel date: %s\nParty: %d\nTotal: %s\n",
		b.ID, tourTitle, b.CustomerName, b.CustomerEmail, b.CustomerPhone,
		b.TravelDate, b.NumberOfPeople, b.TotalPrice.StringFixed(2))
	return m.send(m.Env.AdminEmail, fmt.Sprintf("New booking #%d", b.ID), body)
}
