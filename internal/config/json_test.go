// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	path := writeTempFile(t, `{
		"app": {"token_sign_key": "sign", "token_duration": "1h", "version": "1.2.3"},
		"credentials": {"bcrypt_cost": 11, "reset_ticket_ttl": 3600000000000, "default_locale": "ru"},
		"storage": {
			"db": {"dsn": "postgres://db"},
			"images": {"public_path": "/static", "s3": {"bucket": "avatars", "region": "eu-central-1"}}
		},
		"server": {"http_address": "localhost:8080", "request_timeout": "15s"},
		"mail": {"relay_url": "http://relay", "sender": "noreply@blog.io", "timeout": "2s"},
		"workers": {"ticket_purge_interval": "30m"}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, 11, cfg.Credentials.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Credentials.ResetTicketTTL)
	assert.Equal(t, "ru", cfg.Credentials.DefaultLocale)
	assert.Equal(t, "postgres://db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/static", cfg.Storage.Images.PublicPath)
	assert.Equal(t, "avatars", cfg.Storage.Images.S3.Bucket)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "noreply@blog.io", cfg.Mail.Sender)
	assert.Equal(t, 2*time.Second, cfg.Mail.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.Workers.TicketPurgeInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Errors(t *testing.T) {
	_, err := parseJSON("/does/not/exist.json")
	assert.Error(t, err)

	_, err = parseJSON(writeTempFile(t, `{"app":`))
	assert.Error(t, err)

	_, err = parseJSON(writeTempFile(t, `{"app":{"token_duration":"forever"}}`))
	assert.Error(t, err)

	_, err = parseJSON(writeTempFile(t, `{"app":{"token_duration":true}}`))
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
