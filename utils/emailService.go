package utils

import (
	"fmt"
	"lms/config"
	"net/smtp"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: %s <%s>\r\n", config.AppConfig.IssuerName, from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all portal mails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A3C8B; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A2E; line-height: 1.6; }
			.content h2 { color: #1A3C8B; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #1A3C8B; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #1A3C8B; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>%s</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated message from your training portal.
			</div>
		</div>
	</body>
	</html>
	`, config.AppConfig.IssuerName, title, bodyContent)
}

// --- Triggers ---

// SendCourseInviteEmail mails a signup link for an assigned course.
func SendCourseInviteEmail(email, customerName, courseName, code string) {
	subject := "You have been invited to a course: " + courseName
	link := fmt.Sprintf("%s/invite/%s", config.AppConfig.PortalBaseURL, code)
	body := fmt.Sprintf(`
		<p>Hello,</p>
		<p><strong>%s</strong> has invited you to take the course <strong>%s</strong>.</p>
		<p>Click the button below to create your account and get started.</p>
		<a href="%s" class="btn">Accept Invitation</a>
	`, customerName, courseName, link)

	go SendEmail([]string{email}, subject, getEmailTemplate("Course Invitation", body))
}

// SendMagicLinkEmail mails a single-use sign-in link.
func SendMagicLinkEmail(email, name, code string, ttlMinutes int) {
	subject := "Your sign-in link"
	link := fmt.Sprintf("%s/magiclink/%s", config.AppConfig.PortalBaseURL, code)
	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>Use the button below to sign in to the training portal.</p>
		<a href="%s" class="btn">Sign In</a>
		<div class="info-box">
			This link can be used once and expires in %d minutes.
		</div>
	`, name, link, ttlMinutes)

	go SendEmail([]string{email}, subject, getEmailTemplate("Sign In", body))
}

// SendDiplomaIssuedEmail notifies a learner their diploma is available.
func SendDiplomaIssuedEmail(email, name, courseName string) {
	subject := "Congratulations! Your diploma for " + courseName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations on completing <strong>%s</strong>!</p>
		<p>Your diploma is ready. Sign in to the portal to download it as a PDF.</p>
	`, name, courseName)

	go SendEmail([]string{email}, subject, getEmailTemplate("Course Completed", body))
}
