// Package cryptox isolates how account passwords are stored and compared.
//
// The default scheme keeps the password as typed, so the account document
// stays readable by older installs. Argon2 stores a salted argon2id hash for
// new signups and still accepts legacy plaintext values.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// PasswordScheme turns a password into its stored form and checks a login
// attempt against a stored value.
type PasswordScheme interface {
	Name() string
	Encode(password string) (string, error)
	Verify(stored, password string) bool
}

const (
	SchemePlain  = "plain"
	SchemeArgon2 = "argon2"
)

// SchemeByName resolves a configured scheme name.
func SchemeByName(name string) (PasswordScheme, error) {
	switch strings.ToLower(name) {
	case SchemePlain, "":
		return Plain{}, nil
	case SchemeArgon2:
		return Argon2{}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", name)
	}
}

// Plain stores passwords verbatim and compares them exactly.
type Plain struct{}

func (Plain) Name() string { return SchemePlain }

func (Plain) Encode(password string) (string, error) { return password, nil }

func (Plain) Verify(stored, password string) bool { return stored == password }

const argon2Prefix = "argon2id$"

// Argon2 stores "argon2id$<salt hex>$<key hex>".
type Argon2 struct{}

func (Argon2) Name() string { return SchemeArgon2 }

func (Argon2) Encode(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("salt: %w", err)
	}
	key := DeriveKey([]byte(password), salt)
	return argon2Prefix + hex.EncodeToString(salt) + "$" + hex.EncodeToString(key), nil
}

// Verify checks an argon2id value; anything else is treated as a legacy
// plaintext password.
func (Argon2) Verify(stored, password string) bool {
	rest, ok := strings.CutPrefix(stored, argon2Prefix)
	if !ok {
		return stored == password
	}

	saltHex, keyHex, ok := strings.Cut(rest, "$")
	if !ok {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(keyHex)
	if err != nil {
		return false
	}

	got := DeriveKey([]byte(password), salt)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// DeriveKey runs argon2id with fixed cost parameters and a 32-byte output.
func DeriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}
