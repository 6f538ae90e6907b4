// Copyright (c) 2026 Hearthdeck. All rights reserved.
// Author: ops@fellhollow.io

/*
Package auth implements the shared household login.

There are no user accounts: one passcode guards the whole app. A
successful login issues a signed session cookie every other endpoint
requires, so the household logs in once per device.
*/
package auth

import (
	"log/slog"
	"time"

	"github.com/fellhollow/hearthdeck/internal/platform/apperr"
	"github.com/fellhollow/hearthdeck/internal/platform/sec"
	"github.com/fellhollow/hearthdeck/internal/platform/validate"
)

type Service struct {
	signer       *sec.SessionSigner
	passcodeHash string
	logger       *slog.Logger
}

func NewService(signer *sec.SessionSigner, passcodeHash string, logger *slog.Logger) *Service {
	return &Service{
		signer:       signer,
		passcodeHash: passcodeHash,
		logger:       logger,
	}
}

// Login checks the household passcode and issues a session token with
// its expiry. Wrong passcodes come back as a generic unauthorized
// error; the message never hints whether the passcode was close.
func (service *Service) Login(passcode string) (string, time.Time, error) {
	v := &validate.Validator{}
	v.Required("passcode", passcode)
	if err := v.Err(); err != nil {
		return "", time.Time{}, err
	}

	if !sec.CheckPasscode(passcode, service.passcodeHash) {
		service.logger.Warn("failed login attempt")
		return "", time.Time{}, apperr.Unauthorized("Invalid passcode")
	}

	token, err := service.signer.Issue()
	if err != nil {
		return "", time.Time{}, apperr.Internal(err)
	}

	service.logger.Info("household login")
	return token, time.Now().Add(service.signer.TTL()), nil
}
