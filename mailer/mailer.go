// Package mailer sends the operator notification for new customer inquiries.
// Sending is best-effort: the inquiry row is the unit of success and a mail
// failure must never surface to the submitting customer.
package mailer

import (
	"fmt"
	"os"
	"strconv"

	gomail "gopkg.in/gomail.v2"

	"github.com/yacine4098/EXPORTCOUPOLE/models"
)

// NotifyInquiry emails the configured operator address about a new inquiry.
// Returns an error for the caller to log; callers must not propagate it.
func NotifyInquiry(inquiry *models.Inquiry) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return fmt.Errorf("SMTP_HOST not configured")
	}

	port := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			port = n
		}
	}

	phone := inquiry.Phone
	if phone == "" {
		phone = "N/A"
	}
	interested := inquiry.ProductsInterested
	if interested == "" {
		interested = "Not specified"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_FROM"))
	m.SetHeader("To", os.Getenv("NOTIFY_EMAIL"))
	m.SetHeader("Subject", fmt.Sprintf("New Inquiry from %s", inquiry.Company))
	m.SetBody("text/html", fmt.Sprintf(
		`<h2>New Inquiry Received</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Company:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Country:</strong> %s</p>
<p><strong>Products Interested:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		inquiry.Name, inquiry.Company, inquiry.Email,
		phone, inquiry.Country, interested, inquiry.Message,
	))

	d := gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD"))
	return d.DialAndSend(m)
}
