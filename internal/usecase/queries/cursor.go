package queries

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	MaxListLimit    = 200
	CursorVersionV1 = "v1"
)

type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeAfterCursor packs a (sort key, id) keyset position into an opaque token.
func EncodeAfterCursor(key string, id uuid.UUID) string {
	cursorData := fmt.Sprintf("%s:%s|%s", CursorVersionV1, id.String(), key)
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (string, uuid.UUID, error) {
	if cursor == "" {
		return "", uuid.Nil, fmt.Errorf("cursor cannot be empty")
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("invalid cursor encoding: %w", err)
	}

	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return "", uuid.Nil, fmt.Errorf("unsupported cursor version")
	}

	// the id goes first so the key may itself contain the separator
	rawID, key, ok := strings.Cut(payload, "|")
	if !ok {
		return "", uuid.Nil, fmt.Errorf("invalid cursor format: expected '<uuid>|<key>'")
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("invalid UUID: %w", err)
	}

	return key, id, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20 // default limit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
