package commands

import (
	"context"
	"time"

	"hostel-admin/internal/domain/user"

	"github.com/google/uuid"
)

// TokenIssuer signs staff session tokens.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
	TokenDuration() time.Duration
}

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Mail struct {
	To          string
	Subject     string
	Text        string
	Attachments []Attachment
}

type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}
