package utils

import (
	"fmt"
	"log"

	"github.com/solankismit/exambuddy/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends a single HTML email through SendGrid
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendGridKey == "" {
		log.Printf("Skipping email to %s: SendGrid is not configured", toEmail)
		return nil
	}

	from := mail.NewEmail("ExamBuddy", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

// SendWelcomeEmail greets a newly registered user
func SendWelcomeEmail(toEmail, toName string) {
	name := toName
	if name == "" {
		name = "there"
	}
	body := fmt.Sprintf(`
	<div style="font-family: Helvetica, Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2>Welcome to ExamBuddy!</h2>
		<p>Hi %s,</p>
		<p>Your account is ready. Pick an exam, work through its quizzes and keep your daily streak alive.</p>
		<p>Good luck with your preparation!</p>
	</div>`, name)

	if err := SendEmail(toEmail, toName, "Welcome to ExamBuddy", body); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", toEmail, err)
	}
}
