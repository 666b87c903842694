package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"eduadmin/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Eduadmin <%s>\r\n", from)
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

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<html>
	<body style="font-family: Arial, sans-serif; background-color: #f4f4f7; padding: 20px;">
		<div style="max-width: 600px; margin: auto; background: #ffffff; border-radius: 8px; padding: 30px;">
			<h2 style="color: #2d3748;">%s</h2>
			<div style="color: #4a5568; font-size: 15px; line-height: 1.6;">%s</div>
			<p style="color: #a0aec0; font-size: 12px; margin-top: 30px;">
				This is an automated message, please do not reply.
			</p>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendPurchaseEmail sends a receipt after a successful course purchase
func SendPurchaseEmail(email, name, remark string, pointsSpent uint) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>%s</p>
		<p>Points spent: <strong>%d</strong></p>
		<p>You can find the course under "My Courses".</p>`, name, remark, pointsSpent)

	SendEmail([]string{email}, "Course Purchase Confirmation", getEmailTemplate("Purchase Successful", body))
}

// SendRefundEmail notifies the user that a purchase was refunded
func SendRefundEmail(email, name, orderNo string, pointsRefunded uint) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your purchase (order %s) has been refunded.</p>
		<p>Points returned: <strong>%d</strong></p>`, name, orderNo, pointsRefunded)

	SendEmail([]string{email}, "Course Purchase Refunded", getEmailTemplate("Refund Processed", body))
}
