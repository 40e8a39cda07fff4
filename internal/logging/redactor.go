package logging

import (
	"encoding/hex"
	"math/big"
	"strings"

	"golang.org/x/crypto/blake2b"
)

const redactedValue = "[REDACTED]"

// Redactor handles secret redaction in log fields.
type Redactor struct {
	sensitiveKeys map[string]bool
}

// NewRedactor creates a new Redactor with default sensitive keys.
func NewRedactor() *Redactor {
	return &Redactor{
		sensitiveKeys: map[string]bool{
			// Authentication & session
			"password":      true,
			"token":         true,
			"secret":        true,
			"key":           true,
			"session":       true,
			"session_id":    true,
			"authorization": true,

			// Chaum-Pedersen protocol values: the witness and nonce must never
			// be logged at all, and the commitments/announcements/response are
			// only ever safe to log as a fingerprint, never in full (see
			// Fingerprint below).
			"x":  true, // witness
			"k":  true, // nonce
			"y1": true, // commitment
			"y2": true, // commitment
			"r1": true, // announcement
			"r2": true, // announcement
			"s":  true, // response

			// Configuration & content
			"content":       true,
			"payload":       true,
			"config":        true,
			"configuration": true,

			// Credentials & secrets
			"api_key":     true,
			"access_key":  true,
			"secret_key":  true,
			"private_key": true,
			"cert":        true,
			"certificate": true,
		},
	}
}

// AddSensitiveKey adds a custom key to the redaction list.
func (r *Redactor) AddSensitiveKey(key string) {
	r.sensitiveKeys[strings.ToLower(key)] = true
}

// RemoveSensitiveKey removes a key from the redaction list.
func (r *Redactor) RemoveSensitiveKey(key string) {
	delete(r.sensitiveKeys, strings.ToLower(key))
}

// RedactFields redacts sensitive values from a map of fields.
func (r *Redactor) RedactFields(fields map[string]any) map[string]any {
	if fields == nil {
		return nil
	}

	redacted := make(map[string]any, len(fields))

	for k, v := range fields {
		if r.isSensitiveKey(k) {
			redacted[k] = redactedValue
		} else if nested, ok := v.(map[string]any); ok {
			// Recursively redact nested maps
			redacted[k] = r.RedactFields(nested)
		} else {
			redacted[k] = v
		}
	}

	return redacted
}

// RedactString redacts sensitive values from a string by checking for key patterns.
func (r *Redactor) RedactString(s string) string {
	for key := range r.sensitiveKeys {
		patterns := []string{
			key + "=",
			key + ": ",
			"\"" + key + "\":",
		}

		for _, pattern := range patterns {
			if strings.Contains(strings.ToLower(s), pattern) {
				return redactedValue
			}
		}
	}

	return s
}

// isSensitiveKey checks if a field key is marked as sensitive.
func (r *Redactor) isSensitiveKey(key string) bool {
	return r.sensitiveKeys[strings.ToLower(key)]
}

// Fingerprint returns a short, non-reversible correlation handle for a
// secret-derived big integer: enough to tell two log lines apart as
// referring to the same value without revealing the value itself. It is
// the safe alternative to logging y1, y2, r1, r2, c, or s in full.
func Fingerprint(n *big.Int) string {
	if n == nil {
		return ""
	}
	sum := blake2b.Sum256(n.Bytes())
	return hex.EncodeToString(sum[:8])
}
