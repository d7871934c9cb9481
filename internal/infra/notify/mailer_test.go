//go:build unit

package notify

import (
	"context"
	"net/smtp"
	"strings"
	"testing"

	"hostel-admin/internal/pkg/config"
	"hostel-admin/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMailer(t *testing.T) {
	assert.IsType(t, &LogMailer{}, NewMailer(config.SMTPConfig{}))
	assert.IsType(t, &SMTPMailer{}, NewMailer(config.SMTPConfig{Host: "smtp.example.com", Port: "587"}))
}

func TestSMTPMailerSend(t *testing.T) {
	var (
		gotAddr string
		gotTo   []string
		gotMsg  string
	)
	m := &SMTPMailer{
		cfg: config.SMTPConfig{Host: "smtp.example.com", Port: "587", From: "reservas@hostel.pe"},
		send: func(addr string, _ smtp.Auth, _ string, to []string, msg []byte) error {
			gotAddr, gotTo, gotMsg = addr, to, string(msg)
			return nil
		},
	}

	err := m.Send(context.Background(), commands.Mail{
		To:      "ana@example.com",
		Subject: "Voucher R-000042",
		Text:    "Adjuntamos su voucher.",
		Attachments: []commands.Attachment{
			{Filename: "voucher-R-000042.pdf", ContentType: "application/pdf", Data: []byte(strings.Repeat("%PDF", 40))},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"ana@example.com"}, gotTo)
	assert.Contains(t, gotMsg, "Content-Type: multipart/mixed")
	assert.Contains(t, gotMsg, `filename=voucher-R-000042.pdf`)
	assert.Contains(t, gotMsg, "Adjuntamos su voucher.")
	for _, line := range strings.Split(gotMsg, "\r\n") {
		assert.LessOrEqual(t, len(line), 998)
	}
}

func TestSMTPMailerHonoursCancelledContext(t *testing.T) {
	m := &SMTPMailer{send: func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send must not be called")
		return nil
	}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, m.Send(ctx, commands.Mail{To: "x@example.com"}), context.Canceled)
}
