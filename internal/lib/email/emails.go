package email

import "context"

// WelcomeSubject is the subject line of the welcome email.
const WelcomeSubject = "Welcome aboard!"

// SendWelcomeEmail greets a newly registered employee.
func (c *Client) SendWelcomeEmail(ctx context.Context, to, firstName string) error {
	data := map[string]string{
		"EmployeeFirstName": firstName,
	}

	return c.SendEmail(ctx, to, WelcomeSubject, TemplateWelcome, data)
}
