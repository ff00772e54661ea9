package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendPaymentReceipt(toEmail, studentName, planName string, amount float64, currency, invoiceId, invoiceUrl string) error
	SendCancellationNotice(toEmail, studentName, planName, reason string) error
	SendRenewalReminder(toEmail, studentName, planName string, endDate time.Time) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) send(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send '%s' to %s: %v\n", subject, toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] '%s' sent to %s\n", subject, toEmail)
	return nil
}

func (s *emailService) SendPaymentReceipt(toEmail, studentName, planName string, amount float64, currency, invoiceId, invoiceUrl string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Payment Received</h2>
			<p>Hi %s,</p>
			<p>We received your payment of <strong>%.2f %s</strong> for the <strong>%s</strong> plan.</p>
			<p>Invoice: %s</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">View Invoice</a>
			<p>Thank you for training with us!</p>
		</div>
	`, studentName, amount, currency, planName, invoiceId, invoiceUrl)

	return s.send(toEmail, "Your Payment Receipt", body)
}

func (s *emailService) SendCancellationNotice(toEmail, studentName, planName, reason string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Subscription Cancelled</h2>
			<p>Hi %s,</p>
			<p>Your <strong>%s</strong> subscription has been cancelled.</p>
			<p>Reason: %s</p>
			<p>If this wasn't you, please contact the academy office.</p>
		</div>
	`, studentName, planName, reason)

	return s.send(toEmail, "Subscription Cancelled", body)
}

func (s *emailService) SendRenewalReminder(toEmail, studentName, planName string, endDate time.Time) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Subscription Ending Soon</h2>
			<p>Hi %s,</p>
			<p>Your <strong>%s</strong> subscription ends on <strong>%s</strong>.</p>
			<p>Renew within 30 days of that date to keep your sessions going.</p>
		</div>
	`, studentName, planName, endDate.Format("02 Jan 2006"))

	return s.send(toEmail, "Time to Renew", body)
}
