// Package mail envia as credenciais de acompanhamento por SMTP.
package mail

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	appprocess "github.com/sgp-sistemas/sgp-api/internal/application/process"
	"github.com/sgp-sistemas/sgp-api/pkg/config"
)

var _ appprocess.CredentialsMailer = (*Mailer)(nil)

// Mailer encapsula a configuração SMTP para envio de e-mails.
type Mailer struct {
	cfg config.SMTPConfig
}

// NewMailer constrói o mailer.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendProcessCredentials envia token e senha de acompanhamento ao cliente.
// O texto plano da senha existe apenas neste e-mail e na resposta de criação.
func (m *Mailer) SendProcessCredentials(to, name, token, password string) error {
	e := email.NewEmail()
	e.From = m.cfg.From
	e.To = []string{to}
	e.Subject = "Credenciais de Acesso - SGP"
	e.HTML = []byte(fmt.Sprintf(`<h1>Olá %s,</h1>
<p>Seu processo foi cadastrado com sucesso no Sistema de Gerenciamento de Processos.</p>
<p>Para acompanhar o andamento do seu processo, utilize as credenciais abaixo:</p>
<p><strong>Token de Acesso:</strong> %s</p>
<p><strong>Senha:</strong> %s</p>
<p>Acesse o sistema através do link: <a href="%s/acompanhamento">Acompanhar Processo</a></p>
<p>Atenciosamente,<br>Equipe SGP</p>`, name, token, password, m.cfg.AppURL))

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	if err := e.Send(m.cfg.Addr(), auth); err != nil {
		return fmt.Errorf("mail: enviar credenciais: %w", err)
	}
	return nil
}
