// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration.
// Durations are written as strings ("48h") or nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey    string   `json:"token_sign_key"`
		TokenIssuer     string   `json:"token_issuer"`
		TokenDuration   Duration `json:"token_duration"`
		ConfirmationKey string   `json:"confirmation_key"`
		Version         string   `json:"version"`
		LogLevel        string   `json:"log_level"`
	} `json:"app"`

	Credentials struct {
		BcryptCost        int      `json:"bcrypt_cost"`
		ResetTicketTTL    Duration `json:"reset_ticket_ttl"`
		PasswordMinLength int      `json:"password_min_length"`
		HashWorkers       int      `json:"hash_workers"`
		DefaultLocale     string   `json:"default_locale"`
	} `json:"credentials"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
		Images struct {
			Dir        string `json:"dir"`
			PublicPath string `json:"public_path"`
			MaxSize    int64  `json:"max_size"`
			S3         S3     `json:"s3"`
		} `json:"images"`
	} `json:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server"`

	Mail struct {
		RelayURL      string   `json:"relay_url"`
		APIKey        string   `json:"api_key"`
		Sender        string   `json:"sender"`
		PublicBaseURL string   `json:"public_base_url"`
		Timeout       Duration `json:"timeout"`
		Retries       int      `json:"retries"`
	} `json:"mail"`

	Workers struct {
		TicketPurgeInterval Duration `json:"ticket_purge_interval"`
		TicketRetention     Duration `json:"ticket_retention"`
	} `json:"workers"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:    jsonCfg.App.TokenSignKey,
			TokenIssuer:     jsonCfg.App.TokenIssuer,
			TokenDuration:   time.Duration(jsonCfg.App.TokenDuration),
			ConfirmationKey: jsonCfg.App.ConfirmationKey,
			Version:         jsonCfg.App.Version,
			LogLevel:        jsonCfg.App.LogLevel,
		},
		Credentials: Credentials{
			BcryptCost:        jsonCfg.Credentials.BcryptCost,
			ResetTicketTTL:    time.Duration(jsonCfg.Credentials.ResetTicketTTL),
			PasswordMinLength: jsonCfg.Credentials.PasswordMinLength,
			HashWorkers:       jsonCfg.Credentials.HashWorkers,
			DefaultLocale:     jsonCfg.Credentials.DefaultLocale,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
			Images: Images{
				Dir:        jsonCfg.Storage.Images.Dir,
				PublicPath: jsonCfg.Storage.Images.PublicPath,
				MaxSize:    jsonCfg.Storage.Images.MaxSize,
				S3:         jsonCfg.Storage.Images.S3,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Mail: Mail{
			RelayURL:      jsonCfg.Mail.RelayURL,
			APIKey:        jsonCfg.Mail.APIKey,
			Sender:        jsonCfg.Mail.Sender,
			PublicBaseURL: jsonCfg.Mail.PublicBaseURL,
			Timeout:       time.Duration(jsonCfg.Mail.Timeout),
			Retries:       jsonCfg.Mail.Retries,
		},
		Workers: Workers{
			TicketPurgeInterval: time.Duration(jsonCfg.Workers.TicketPurgeInterval),
			TicketRetention:     time.Duration(jsonCfg.Workers.TicketRetention),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
