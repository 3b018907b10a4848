// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-blog-accounts/internal/utils"
)

const resetCodeBytes = 32

type codeGenerator struct {
	hashKey string
}

// NewCodeGenerator returns a [CodeGenerator]. Confirmation codes are
// HMAC digests keyed by hashKey over the email and a timestamp.
func NewCodeGenerator(hashKey string) CodeGenerator {
	return &codeGenerator{hashKey: hashKey}
}

// ConfirmationCode implements [CodeGenerator].
func (g *codeGenerator) ConfirmationCode(email string, timestamp time.Time) string {
	data := email + ":" + strconv.FormatInt(timestamp.UnixNano(), 10)
	return utils.HashString(data, g.hashKey)
}

// ResetCode implements [CodeGenerator].
func (g *codeGenerator) ResetCode() (string, error) {
	return randomHex(resetCodeBytes)
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRandomFailed, err)
	}
	return hex.EncodeToString(buf), nil
}
