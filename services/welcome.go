package services

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// WelcomeMailer sends a greeting after signup. Best effort: it runs in
// its own goroutine and never blocks or fails the signup response.
type WelcomeMailer struct {
	apiKey string
	from   string
}

func NewWelcomeMailer(apiKey, from string) *WelcomeMailer {
	return &WelcomeMailer{apiKey: apiKey, from: from}
}

func (m *WelcomeMailer) Send(name, email string) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Welcome email panic recovered: %v\n", r)
		}
	}()

	if m.apiKey == "" || m.from == "" {
		fmt.Println("Welcome email skipped: SendGrid not configured")
		return
	}

	subject := "Welcome to NutriPlan"
	body := fmt.Sprintf(`Hi %s,

Your NutriPlan account is ready. Save a health profile to get personalized
food recommendations and weekly meal plans.

— The NutriPlan team`, name)

	from := mail.NewEmail("NutriPlan", m.from)
	to := mail.NewEmail(name, email)
	message := mail.NewSingleEmail(from, subject, to, body, body)
	client := sendgrid.NewSendClient(m.apiKey)

	response, err := client.Send(message)
	if err != nil {
		fmt.Printf("Error sending welcome email: %v\n", err)
		return
	}
	fmt.Printf("Welcome email sent. Status Code: %d\n", response.StatusCode)
}
