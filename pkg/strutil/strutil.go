package strutil

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// SplitInParts splits s into consecutive chunks of partLength runes.
// The last chunk holds the remainder. Empty input yields an empty slice.
func SplitInParts(s string, partLength int) ([]string, error) {
	if partLength <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPartLength, partLength)
	}

	runes := []rune(s)
	parts := make([]string, 0, (len(runes)+partLength-1)/partLength)
	for start := 0; start < len(runes); start += partLength {
		end := min(start+partLength, len(runes))
		parts = append(parts, string(runes[start:end]))
	}
	return parts, nil
}

// SplitInPartsPtr is SplitInParts for optional input; a nil s fails with ErrNilInput.
func SplitInPartsPtr(s *string, partLength int) ([]string, error) {
	if s == nil {
		return nil, ErrNilInput
	}
	return SplitInParts(*s, partLength)
}

// ContainsFold reports whether substr is within s under Unicode case folding.
// An empty s never contains anything.
func ContainsFold(s, substr string) bool {
	if s == "" {
		return false
	}
	folder := cases.Fold()
	return strings.Contains(folder.String(s), folder.String(substr))
}

// RandomID returns a 22-character URL-safe base64 identifier built from a
// random (version 4) UUID. Collisions are statistically improbable, not impossible.
func RandomID() string {
	id := uuid.New()
	return base64.RawURLEncoding.EncodeToString(id[:])
}

// ParseUUID parses s as a UUID, reporting false instead of an error on failure.
func ParseUUID(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
