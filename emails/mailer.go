package emails

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/thegera4/ecommerce-api/auth"
	"github.com/thegera4/ecommerce-api/config"
	"github.com/thegera4/ecommerce-api/models"
)

const verificationTemplate = `<!DOCTYPE html>
<html>
	<body>
		<div style="display: flex; align-items: center; justify-content: center; flex-direction: column">
			<h3>Account Verification</h3>
			<p>Thanks for choosing our shop. Please click the link below to verify your account</p>
			<a style="margin-top: 1rem; padding: 1rem; border-radius: 0.5rem; font-size: 1rem;
			text-decoration: none; background: #0275d8; color: white;" href="%s">
				Verify your account
			</a>
			<p>Please ignore this email if you did not register in our Shop. Thanks</p>
		</div>
	</body>
</html>`

// Mailer sends account emails over SMTP.
type Mailer struct {
	cfg    *config.Config
	tokens *auth.TokenService
}

func NewMailer(cfg *config.Config, tokens *auth.TokenService) *Mailer {
	return &Mailer{cfg: cfg, tokens: tokens}
}

// SendVerification emails the user a link embedding a signed token that the
// verification endpoint accepts.
func (m *Mailer) SendVerification(user *models.User) error {
	token, err := m.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return err
	}
	link := fmt.Sprintf("%s/verification?token=%s", m.cfg.ServerURL, token)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Email)
	msg.SetHeader("To", user.Email)
	msg.SetHeader("Subject", "Shop Account Verification Email")
	msg.SetBody("text/html", fmt.Sprintf(verificationTemplate, link))

	dialer := gomail.NewDialer(m.cfg.MailHost, m.cfg.MailPort, m.cfg.Email, m.cfg.EmailPassword)
	dialer.SSL = true
	return dialer.DialAndSend(msg)
}
