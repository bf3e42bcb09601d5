package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Credentials are stored as one opaque encoded string so they survive
// export and re-ingestion unchanged:
//
//	argon2id$v=19$m=65536,t=1,p=4$<base64 salt>$<base64 hash>

// Parameters recommended by OWASP:
// - Time: 1
// - Memory: 64 * 1024 (64 MB)
// - Threads: 4
// - Key length: 32 bytes
const (
	argonTime    = uint32(1)
	argonMemory  = uint32(64 * 1024)
	argonThreads = uint8(4)
	argonKeyLen  = uint32(32)

	encodedPrefix = "argon2id$"
)

// HashPassword derives an encoded argon2id credential from a clear-text
// password.
func HashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		encodedPrefix,
		argon2.Version,
		argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// IsEncoded reports whether s already is an encoded credential. Ingestion
// uses it to take exported credentials as-is instead of hashing twice.
func IsEncoded(s string) bool {
	return strings.HasPrefix(s, encodedPrefix)
}

// VerifyPassword checks a clear-text password against an encoded
// credential.
func VerifyPassword(encoded, password string) bool {
	var version int
	var memory, timeParam uint32
	var threads uint8
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0]+"$" != encodedPrefix {
		return false
	}
	if _, err := fmt.Sscanf(parts[1], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &memory, &timeParam, &threads); err != nil {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	got := argon2.IDKey([]byte(password), salt, timeParam, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}
