// Package fingerprint computes a deterministic content-addressed identifier
// for a computed chart, used as an HTTP ETag by cmd/sajuapi.
package fingerprint

import (
	"crypto/hmac"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// ComputeSignatures computes a primary HMAC-SHA3-256 signature and a
// secondary BLAKE3 digest over the canonical chart bytes, both keyed by a
// salt-derived key so the fingerprint cannot be forged without the secret.
func ComputeSignatures(canonical []byte, secret []byte, salt []byte) (sigHex string, b3Hex string, err error) {
	if len(secret) == 0 {
		return "", "", fmt.Errorf("secret key must not be empty")
	}

	h := hmac.New(sha3.New256, secret)
	if _, err = h.Write(salt); err != nil {
		return "", "", fmt.Errorf("failed to derive key: %w", err)
	}
	derivedKey := h.Sum(nil)

	h2 := hmac.New(sha3.New256, derivedKey)
	if _, err = h2.Write(canonical); err != nil {
		return "", "", fmt.Errorf("failed to compute primary signature: %w", err)
	}
	sigHex = hex.EncodeToString(h2.Sum(nil))

	b3 := blake3.New()
	if _, err = b3.Write(derivedKey); err != nil {
		return "", "", fmt.Errorf("failed to update BLAKE3 with key: %w", err)
	}
	if _, err = b3.Write(canonical); err != nil {
		return "", "", fmt.Errorf("failed to update BLAKE3 with canonical: %w", err)
	}
	b3Hex = hex.EncodeToString(b3.Sum(nil))

	return sigHex, b3Hex, nil
}

// Fingerprint computes a chart's fingerprint using the process-wide secret
// (SAJU_SECRET_KEY) and the salt file in dir, creating the salt file on
// first use.
func Fingerprint(in Input, dir string) (sigHex string, b3Hex string, err error) {
	secret, err := LoadSecretKey()
	if err != nil {
		return "", "", err
	}
	salt, err := LoadOrCreateSalt(dir)
	if err != nil {
		return "", "", err
	}
	canonical, err := CanonicalChartData(in)
	if err != nil {
		return "", "", err
	}
	return ComputeSignatures(canonical, secret, salt)
}
