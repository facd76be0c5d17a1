package exception

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
)

// fingerprintSeparator joins type name and message before hashing.
const fingerprintSeparator = "|"

// Fingerprint returns a base64 SHA-256 digest of the error's type name and
// top-level message. A nil error yields "".
//
// The digest input is "<len>:<type>|<message>" where len is the byte length of
// the type name, so a separator inside the type name cannot collide with one in
// the message.
func Fingerprint(err error) string {
	if err == nil {
		return ""
	}
	tn := TypeName(err)
	sum := sha256.Sum256([]byte(strconv.Itoa(len(tn)) + ":" + tn + fingerprintSeparator + Message(err)))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// TypeName returns err's TypeName() when implemented, otherwise its dynamic Go type.
func TypeName(err error) string {
	if err == nil {
		return ""
	}
	if tn, ok := err.(interface{ TypeName() string }); ok {
		return tn.TypeName()
	}
	return fmt.Sprintf("%T", err)
}

// Message returns err's Message() when implemented, otherwise err.Error().
// For Error it excludes the cause text.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if m, ok := err.(interface{ Message() string }); ok {
		return m.Message()
	}
	return err.Error()
}
