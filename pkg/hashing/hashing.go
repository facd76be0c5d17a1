// Package hashing produces hex-encoded content digests of strings.
//
// MD5 exists for compatibility with systems that already key content by MD5
// (cache keys, ETags, legacy checksums). It is NOT collision resistant and must
// never be used for passwords, signatures or any other security decision.
// SHA256 and Blake2b256 are suitable where collision resistance matters.
//
// Input is hashed as its UTF-8 bytes; output is lowercase hex. Empty input
// yields "" rather than the digest of the empty string.
package hashing

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// MD5 returns the 32-character hex MD5 digest of s. Not for security use.
func MD5(s string) string {
	if s == "" {
		return ""
	}
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// SHA256 returns the 64-character hex SHA-256 digest of s.
func SHA256(s string) string {
	if s == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Blake2b256 returns the 64-character hex BLAKE2b-256 digest of s.
func Blake2b256(s string) string {
	if s == "" {
		return ""
	}
	sum := blake2b.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
