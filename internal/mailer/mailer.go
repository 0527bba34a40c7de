package mailer

import (
	"fmt"

	"planning-backend/config"
	"planning-backend/internal/model"

	"gopkg.in/gomail.v2"
)

// Mailer sends plan-review notifications over SMTP. It stays disabled until
// the SMTP_* environment variables are set, so local setups work without a
// mail server.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	to       string
}

func New() *Mailer {
	return &Mailer{
		host:     config.GetEnv("SMTP_HOST", ""),
		port:     config.GetEnvAsInt("SMTP_PORT", 587),
		username: config.GetEnv("SMTP_USERNAME", ""),
		password: config.GetEnv("SMTP_PASSWORD", ""),
		from:     config.GetEnv("SMTP_FROM", "noreply@planning.local"),
		to:       config.GetEnv("SMTP_NOTIFY_TO", ""),
	}
}

func (m *Mailer) Enabled() bool {
	return m.host != "" && m.to != ""
}

func (m *Mailer) SendReviewDecision(plan *model.Plan, decision, feedback string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("Plan %s: %s (%s)", decision, plan.Organization.Name, plan.FiscalYear))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Plan %d (%s, fiscal year %s) has been %s.\n\nPlanner: %s\nFeedback: %s\n",
		plan.ID, plan.Organization.Name, plan.FiscalYear, decision, plan.PlannerName, feedback,
	))

	d := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return d.DialAndSend(msg)
}
