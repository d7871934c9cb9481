package notify

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"mime"
	"mime/multipart"
	"net"
	"net/smtp"
	"net/textproto"
	"strings"

	"hostel-admin/internal/pkg/config"
	"hostel-admin/internal/pkg/errs"
	"hostel-admin/internal/usecase/commands"
)

// NewMailer sends through SMTP when a host is configured and only logs otherwise.
func NewMailer(cfg config.SMTPConfig) commands.Mailer {
	if !cfg.Enabled() {
		slog.Info("smtp not configured, outgoing mail is logged only")
		return &LogMailer{}
	}
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail}
}

type SMTPMailer struct {
	cfg  config.SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func (m *SMTPMailer) Send(ctx context.Context, mail commands.Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := buildMessage(m.cfg.From, mail)
	if err != nil {
		return errs.Wrap(err, "failed to build mail")
	}

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}
	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	if err := m.send(addr, auth, m.cfg.From, []string{mail.To}, msg); err != nil {
		return errs.Wrap(err, "failed to send mail")
	}

	slog.Info("mail sent", "to", mail.To, "subject", mail.Subject, "attachments", len(mail.Attachments))
	return nil
}

// LogMailer stands in for SMTP in development.
type LogMailer struct{}

func (m *LogMailer) Send(_ context.Context, mail commands.Mail) error {
	names := make([]string, 0, len(mail.Attachments))
	for _, a := range mail.Attachments {
		names = append(names, a.Filename)
	}
	slog.Info("mail not sent (smtp disabled)",
		"to", mail.To,
		"subject", mail.Subject,
		"attachments", strings.Join(names, ","))
	return nil
}

func buildMessage(from string, mail commands.Mail) ([]byte, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	text, err := w.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/plain; charset=utf-8"}})
	if err != nil {
		return nil, err
	}
	if _, err := text.Write([]byte(mail.Text)); err != nil {
		return nil, err
	}

	for _, a := range mail.Attachments {
		part, err := w.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {a.ContentType},
			"Content-Transfer-Encoding": {"base64"},
			"Content-Disposition":       {mime.FormatMediaType("attachment", map[string]string{"filename": a.Filename})},
		})
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(wrapBase64(a.Data)); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", mail.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", mail.Subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", w.Boundary())
	msg.Write(body.Bytes())
	return msg.Bytes(), nil
}

// wrapBase64 encodes data in 76-column lines as RFC 2045 asks.
func wrapBase64(data []byte) []byte {
	enc := base64.StdEncoding.EncodeToString(data)
	var out bytes.Buffer
	for len(enc) > 76 {
		out.WriteString(enc[:76])
		out.WriteString("\r\n")
		enc = enc[76:]
	}
	out.WriteString(enc)
	out.WriteString("\r\n")
	return out.Bytes()
}
