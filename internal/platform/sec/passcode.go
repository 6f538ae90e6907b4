// Copyright (c) 2026 Hearthdeck. All rights reserved.
// Author: ops@fellhollow.io

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPasscode hashes a plain-text household passcode using bcrypt.
//
// Operators run this once (e.g. via a throwaway main) and put the result in
// the PASSCODE_HASH environment variable.
func HashPasscode(plainTextPasscode string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPasscode), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash passcode: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPasscode compares a plain-text passcode with the configured bcrypt hash.
func CheckPasscode(plainTextPasscode, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPasscode))
	return err == nil
}
