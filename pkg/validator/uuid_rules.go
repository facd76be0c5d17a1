package validator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IsUUID reports whether value is a UUID in canonical 8-4-4-4-12 form.
// The layout is checked before parsing so braced and URN forms are rejected.
func IsUUID(value string) bool {
	if len(value) != 36 {
		return false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}

// ValidUUID validates canonical UUID format.
func ValidUUID(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsUUID(strings.TrimSpace(value)) },
		Error: newError(field, "must be a valid UUID", "validation.uuid"),
	}
}

// NonNilUUID fails on the all-zero UUID.
func NonNilUUID(field string, value uuid.UUID) Rule {
	return Rule{
		Check: func() bool { return value != uuid.Nil },
		Error: newError(field, "UUID cannot be nil", "validation.uuid_not_nil"),
	}
}

// ValidUUIDVersion checks the version nibble of value.
func ValidUUIDVersion(field string, value uuid.UUID, version int) Rule {
	return Rule{
		Check: func() bool { return value.Version() == uuid.Version(version) },
		Error: newError(field, fmt.Sprintf("must be a UUID version %d", version), "validation.uuid_version", "version", version),
	}
}
