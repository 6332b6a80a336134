// Package hash provides one-way password hashing for credential storage.
package hash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrInvalidDigest indicates that a stored digest is structurally corrupt
// and cannot be verified against. A plain password mismatch is not an error.
var ErrInvalidDigest = errors.New("invalid password digest")

// Argon2 hashes passwords with Argon2id and encodes digests in the PHC
// string format, so parameters and salt travel with each digest.
type Argon2 struct {
	memory  uint32
	time    uint32
	threads uint8
	saltLen uint32
	keyLen  uint32
}

// NewArgon2 creates a hasher with the RFC 9106 low-memory parameters
// (64 MiB, 3 passes, 4 lanes).
func NewArgon2() *Argon2 {
	return &Argon2{
		memory:  64 * 1024,
		time:    3,
		threads: 4,
		saltLen: 16,
		keyLen:  32,
	}
}

// Hash derives a digest from the plaintext password with a fresh random salt.
func (a *Argon2) Hash(password string) (string, error) {
	salt := make([]byte, a.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, a.time, a.memory, a.threads, a.keyLen)

	digest := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, a.memory, a.time, a.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return digest, nil
}

// Verify reports whether the plaintext password matches the digest.
// It returns false with a nil error on mismatch, and ErrInvalidDigest
// only when the digest itself cannot be parsed.
func (a *Argon2) Verify(digest, password string) (bool, error) {
	memory, time, threads, salt, key, err := decodeDigest(digest)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

// decodeDigest parses a PHC-encoded argon2id digest into its components.
func decodeDigest(digest string) (memory, time uint32, threads uint8, salt, key []byte, err error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, ErrInvalidDigest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return 0, 0, 0, nil, nil, ErrInvalidDigest
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return 0, 0, 0, nil, nil, ErrInvalidDigest
	}
	if memory == 0 || time == 0 || threads == 0 {
		return 0, 0, 0, nil, nil, ErrInvalidDigest
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return 0, 0, 0, nil, nil, ErrInvalidDigest
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return 0, 0, 0, nil, nil, ErrInvalidDigest
	}
	return memory, time, threads, salt, key, nil
}
