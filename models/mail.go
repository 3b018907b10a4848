// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MailMessage is a single plain-text message handed to the mail relay.
type MailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`

	// Template names the kind of message, so the relay can render a
	// localized HTML variant.
	Template string `json:"template"`

	// Data holds the template variables.
	Data map[string]string `json:"data,omitempty"`
}
