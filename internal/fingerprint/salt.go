package fingerprint

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
)

const (
	saltFileName = ".saju_salt"
	saltSize     = 32
)

// LoadOrCreateSalt loads the salt from file, or generates and writes a new
// one when the file is missing, unreadable, or not saltSize bytes long.
func LoadOrCreateSalt(dir string) ([]byte, error) {
	if dir == "" {
		dir = "."
	}

	saltPath := filepath.Join(dir, saltFileName)

	salt, err := os.ReadFile(saltPath)
	if err == nil && len(salt) == saltSize {
		return salt, nil
	}

	if os.IsNotExist(err) || len(salt) != saltSize {
		salt = make([]byte, saltSize)
		if _, err := rand.Read(salt); err != nil {
			return nil, fmt.Errorf("failed to generate salt: %w", err)
		}
		if err := os.WriteFile(saltPath, salt, 0600); err != nil {
			return nil, fmt.Errorf("failed to save salt: %w", err)
		}
		return salt, nil
	}

	return nil, fmt.Errorf("failed to read salt: %w", err)
}
