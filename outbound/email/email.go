package email

import (
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"github.com/spf13/viper"
)

// EmailOutbound delivers plain-text UTF-8 mail through the configured SMTP relay.
type EmailOutbound struct {
	Cfg *viper.Viper

	auth smtp.Auth
	addr string
	from string

	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func (out *EmailOutbound) Init() {
	host := out.Cfg.GetString("email.host")
	user := out.Cfg.GetString("email.user")

	out.addr = fmt.Sprintf("%s:%d", host, out.Cfg.GetInt("email.port"))
	out.from = out.Cfg.GetString("email.from")
	if out.from == "" {
		out.from = user
	}

	switch strings.ToLower(out.Cfg.GetString("email.auth")) {
	case "none":
		out.auth = nil
	case "plain":
		out.auth = smtp.PlainAuth("", user, out.Cfg.GetString("email.password"), host)
	default:
		out.auth = smtp.CRAMMD5Auth(user, out.Cfg.GetString("email.password"))
	}

	out.sendMail = smtp.SendMail
}

func (out *EmailOutbound) Send(to []string, subject string, body string) error {
	if len(to) == 0 {
		return fmt.Errorf("send email: no recipients")
	}

	return out.sendMail(out.addr, out.auth, out.from, to, out.buildMessage(to, subject, body))
}

func (out *EmailOutbound) buildMessage(to []string, subject string, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", out.from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ","))
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	return []byte(b.String())
}
