// Package notifier sends the completion email once a run has finished.
// The contract is deliberately a plain boolean: the caller treats a false
// return as an orchestration-level failure without rolling back persisted
// data, so nothing here ever returns an error.
package notifier

import (
    "fmt"
    "log"
    "net/smtp"
    "os"
)

type Notifier interface {
    Notify(companyName, recipientEmail string) bool
}

// EmailNotifier sends the completion email over SMTP
type EmailNotifier struct {
    User     string
    Password string
    Server   string
    Port     string

    // sendMail is swappable for tests
    sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewEmailNotifier builds a notifier from environment configuration.
// Missing credentials are not an error at construction time: Notify just
// returns false until they are configured.
func NewEmailNotifier() *EmailNotifier {
    server := os.Getenv("EMAIL_SERVER")
    if server == "" {
        server = "smtp.gmail.com"
    }
    port := os.Getenv("EMAIL_PORT")
    if port == "" {
        port = "587"
    }
    return &EmailNotifier{
        User:     os.Getenv("EMAIL_USER"),
        Password: os.Getenv("EMAIL_APP_PASSWORD"),
        Server:   server,
        Port:     port,
        sendMail: smtp.SendMail,
    }
}

// Notify sends the completion email. Returns true only on a confirmed send.
func (n *EmailNotifier) Notify(companyName, recipientEmail string) bool {
    if n.User == "" || n.Password == "" || recipientEmail == "" {
        log.Println("⚠️ Email credentials not configured. Cannot send notification.")
        return false
    }

    subject := "Your Campaign Suggestions are Ready!"
    body := fmt.Sprintf("Your campaign suggestions for %s are ready. Please check your dashboard. Thank you!", companyName)
    msg := []byte(
        "From: " + n.User + "\r\n" +
            "To: " + recipientEmail + "\r\n" +
            "Subject: " + subject + "\r\n" +
            "MIME-Version: 1.0\r\n" +
            "Content-Type: text/plain; charset=\"utf-8\"\r\n" +
            "\r\n" +
            body + "\r\n",
    )

    auth := smtp.PlainAuth("", n.User, n.Password, n.Server)
    addr := n.Server + ":" + n.Port

    send := n.sendMail
    if send == nil {
        send = smtp.SendMail
    }
    if err := send(addr, auth, n.User, []string{recipientEmail}, msg); err != nil {
        log.Println("⚠️ Failed to send email notification:", err)
        return false
    }
    return true
}

var _ Notifier = (*EmailNotifier)(nil)
