// Package pairing issues and verifies the single-use codes that let a POS
// device register itself with the backoffice. Codes are short enough to be
// read over the phone, and only their bcrypt hash is ever stored.
package pairing

import (
	"crypto/rand"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// codeAlphabet excludes lookalike characters (0/O, 1/I/L) so a code can be
// dictated without ambiguity.
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// CodeLength is the number of characters in a generated pairing code,
// excluding the group separator.
const CodeLength = 8

// maxUnbiasedByte is the largest multiple of len(codeAlphabet) that fits in
// a byte. Bytes at or above it are rejected so every alphabet character is
// equally likely.
const maxUnbiasedByte = 256 - 256%len(codeAlphabet)

// GenerateCode produces a new random pairing code, formatted in two groups
// of four (for example "K3QD-7WNP").
func GenerateCode() (string, error) {
	chars := make([]byte, 0, CodeLength)
	buf := make([]byte, CodeLength)
	for len(chars) < CodeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= maxUnbiasedByte {
				continue
			}
			chars = append(chars, codeAlphabet[int(b)%len(codeAlphabet)])
			if len(chars) == CodeLength {
				break
			}
		}
	}

	return string(chars[:4]) + "-" + string(chars[4:]), nil
}

// HashCode returns the bcrypt hash of a pairing code for storage.
func HashCode(code string) (string, error) {
	normalized := Normalize(code)
	if normalized == "" {
		return "", fmt.Errorf("pairing code cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(normalized), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash pairing code: %w", err)
	}

	return string(hash), nil
}

// VerifyCode reports whether the presented code matches the stored hash.
func VerifyCode(code, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(Normalize(code))) == nil
}

// Normalize uppercases a code and strips separators and whitespace, so
// "k3qd 7wnp" and "K3QD-7WNP" compare equal.
func Normalize(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	code = strings.ReplaceAll(code, "-", "")
	code = strings.ReplaceAll(code, " ", "")
	return code
}
