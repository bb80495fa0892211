package utils

import (
	"elearn/config"
	"fmt"
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
	msg += fmt.Sprintf("From: eLearn <%s>\r\n", from)
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

// HTML wrapper shared by every outgoing mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1D3557; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1D3557; line-height: 1.6; }
			.content h2 { color: #1D3557; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #E63946; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #E63946; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>eLearn</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated message. Please do not reply to this email.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendPasswordResetEmail mails the reset link to the user
func SendPasswordResetEmail(to, name, resetLink string) error {
	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>You requested to reset your password. Click the button below to choose a new one.</p>
		<a class="btn" href="%s">Reset Password</a>
		<p>This link will expire in 15 minutes.</p>
		<p>If you did not request this, please ignore this email.</p>`, name, resetLink)

	return SendEmail([]string{to}, "Password Reset Request", getEmailTemplate("Password Reset Request", body))
}

// SendEnrollmentReceipt mails the payment receipt after a successful enrollment
func SendEnrollmentReceipt(to, name, courseName, method string, amount float64, reference string) error {
	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>Your enrollment in <b>%s</b> is confirmed.</p>
		<div class="info-box">
			<p>Amount paid: %.2f BDT<br/>
			Payment method: %s<br/>
			Transaction reference: %s</p>
		</div>
		<p>Happy learning!</p>`, name, courseName, amount, method, reference)

	return SendEmail([]string{to}, "Enrollment Confirmation", getEmailTemplate("Enrollment Confirmation", body))
}
