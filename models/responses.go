// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Profile is what a visitor receives when opening a user page.
type Profile struct {
	// Fields is either the public or the owner projection of the user.
	Fields map[string]any `json:"profile"`

	// FullName is derived from the last and the first name.
	FullName string `json:"fullName"`

	// IsOwner is true when the visitor is the profile owner.
	IsOwner bool `json:"isOwner"`

	// ProfileInfoEmpty is true when no profile-information field is filled in.
	ProfileInfoEmpty bool `json:"profileInfoEmpty"`
}

// SexOption is an entry of the sex selector of the profile editor.
type SexOption struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

// ImageUploadResponse is returned after a profile image upload.
type ImageUploadResponse struct {
	ProfileImg string `json:"profileImg"`
}

// ErrorResponse is the JSON body of every non-2xx API response.
// Error is either a plain message or a field -> message map.
type ErrorResponse struct {
	Error any `json:"error"`
}
