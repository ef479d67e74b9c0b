// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendOfferPacket(toEmail, candidateName, jobTitle string, salary float64) error
	SendOfferResolution(toEmail, candidateName, jobTitle, status string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string // Added to construct links
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	// Get Frontend URL from ENV or default to a safe placeholder
	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) SendOfferPacket(toEmail, candidateName, jobTitle string, salary float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Your Offer for %s", jobTitle))

	reviewLink := fmt.Sprintf("%s/offers/review", s.frontendURL)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Congratulations, %s!</h2>
			<p>We are excited to extend you an offer for the <b>%s</b> position.</p>
			<p>Base salary: <b>%.2f</b></p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Review Your Offer</a>
			<p>Your recruiter will reach out shortly to walk you through the details.</p>
		</div>
	`, candidateName, jobTitle, salary, reviewLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send offer packet to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Offer packet sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendOfferResolution(toEmail, candidateName, jobTitle, status string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Update on your %s offer", jobTitle))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>Your offer for the <b>%s</b> position has been marked as <b>%s</b>.</p>
			<p>If you have any questions, please reply to this email.</p>
		</div>
	`, candidateName, jobTitle, status)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send offer resolution to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Offer resolution sent to %s\n", toEmail)
	return nil
}
