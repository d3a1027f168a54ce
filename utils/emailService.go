package utils

import (
	"elimu/config"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendEmail sends one transactional email through SendGrid
func sendEmail(toName, toEmail, subject, htmlBody string) error {
	from := mail.NewEmail("Elimu", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid error for %s: status %d body %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid error: status %d", resp.StatusCode)
	}
	return nil
}

// getEmailTemplate wraps body content in the Elimu email layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B5E20; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B1B1B; line-height: 1.6; }
			.content h2 { color: #1B5E20; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F5E9; padding: 15px; border-radius: 4px; border-left: 4px solid #FBC02D; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>ELIMU</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Elimu. All rights reserved.<br>
				AI tutoring for the Kenyan CBC curriculum.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendWelcomeEmail greets a new user after signup
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Habari %s,</p>
		<p>Welcome to Elimu! Your account is ready.</p>
		<div class="info-box">Pick your grade level and subjects to get a personalised dashboard.</div>
		<p>Happy learning!</p>`, name)

	if err := sendEmail(name, email, "Welcome to Elimu", getEmailTemplate("Karibu Elimu!", body)); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", email, err)
	}
}

// SendLevelUpEmail congratulates a user on reaching a new level
func SendLevelUpEmail(email, name string, level, neurons int) {
	body := fmt.Sprintf(`
		<p>Hongera %s!</p>
		<p>You just reached <strong>Level %d</strong> and earned <strong>%d neurons</strong>.</p>
		<p>Keep your streak going to climb even faster.</p>`, name, level, neurons)

	if err := sendEmail(name, email, fmt.Sprintf("You reached Level %d!", level), getEmailTemplate("Level Up!", body)); err != nil {
		log.Printf("Failed to send level-up email to %s: %v", email, err)
	}
}
