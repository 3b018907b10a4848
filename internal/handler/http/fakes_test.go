// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog-accounts/internal/config"
	"github.com/MKhiriev/go-blog-accounts/internal/identity"
	"github.com/MKhiriev/go-blog-accounts/internal/logger"
	"github.com/MKhiriev/go-blog-accounts/internal/service"
	"github.com/MKhiriev/go-blog-accounts/models"
	"github.com/stretchr/testify/require"
)

// fakeAuthService implements service.AuthService. Each method field can be
// overridden per test case.
type fakeAuthService struct {
	registerFn     func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	confirmEmailFn func(ctx context.Context, code string) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	authenticateFn func(ctx context.Context, tokenString string) (models.User, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) ConfirmEmail(ctx context.Context, code string) (models.User, error) {
	return f.confirmEmailFn(ctx, code)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if f.createTokenFn == nil {
		return models.Token{SignedString: "token-of-" + user.ID, UserID: user.ID}, nil
	}
	return f.createTokenFn(ctx, user)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return f.parseTokenFn(ctx, tokenString)
}

func (f *fakeAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	return f.authenticateFn(ctx, tokenString)
}

// fakeProfileService implements service.ProfileService. GetOwnerProfile
// defaults to projecting the caller from the context.
type fakeProfileService struct {
	getPublicProfileFn   func(ctx context.Context, userName string) (models.Profile, error)
	getOwnerProfileFn    func(ctx context.Context) (models.Profile, error)
	getProfileFn         func(ctx context.Context, userName string) (models.Profile, error)
	updateProfileFn      func(ctx context.Context, userName string, rawUpdate map[string]any) (models.Profile, error)
	uploadProfileImageFn func(ctx context.Context, userName string, data []byte) (models.ImageUploadResponse, error)
	sexOptionsFn         func(ctx context.Context, userName string) ([]models.SexOption, error)
}

func (f *fakeProfileService) GetPublicProfile(ctx context.Context, userName string) (models.Profile, error) {
	return f.getPublicProfileFn(ctx, userName)
}

func (f *fakeProfileService) GetOwnerProfile(ctx context.Context) (models.Profile, error) {
	if f.getOwnerProfileFn != nil {
		return f.getOwnerProfileFn(ctx)
	}
	caller, err := identity.RequireAuthenticated(ctx)
	if err != nil {
		return models.Profile{}, err
	}
	return models.Profile{
		Fields:  map[string]any{"id": caller.ID, "userName": caller.UserName},
		IsOwner: true,
	}, nil
}

func (f *fakeProfileService) GetProfile(ctx context.Context, userName string) (models.Profile, error) {
	return f.getProfileFn(ctx, userName)
}

func (f *fakeProfileService) UpdateProfile(ctx context.Context, userName string, rawUpdate map[string]any) (models.Profile, error) {
	return f.updateProfileFn(ctx, userName, rawUpdate)
}

func (f *fakeProfileService) UploadProfileImage(ctx context.Context, userName string, data []byte) (models.ImageUploadResponse, error) {
	return f.uploadProfileImageFn(ctx, userName, data)
}

func (f *fakeProfileService) SexOptions(ctx context.Context, userName string) ([]models.SexOption, error) {
	return f.sexOptionsFn(ctx, userName)
}

// fakePasswordService implements service.PasswordService.
type fakePasswordService struct {
	updatePasswordFn func(ctx context.Context, userName string, req models.PasswordUpdateRequest) error
	remindPasswordFn func(ctx context.Context, req models.RemindPasswordRequest) error
	checkResetCodeFn func(ctx context.Context, code string) (models.ResetGrant, error)
	resetPasswordFn  func(ctx context.Context, req models.ResetPasswordRequest) error
}

func (f *fakePasswordService) UpdatePassword(ctx context.Context, userName string, req models.PasswordUpdateRequest) error {
	return f.updatePasswordFn(ctx, userName, req)
}

func (f *fakePasswordService) RemindPassword(ctx context.Context, req models.RemindPasswordRequest) error {
	return f.remindPasswordFn(ctx, req)
}

func (f *fakePasswordService) CheckResetCode(ctx context.Context, code string) (models.ResetGrant, error) {
	return f.checkResetCodeFn(ctx, code)
}

func (f *fakePasswordService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	return f.resetPasswordFn(ctx, req)
}

// fakeAppInfoService implements service.AppInfoService.
type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

// alice is the authenticated caller of most tests, with bearer token
// "alice-token".
var alice = models.User{ID: "u-alice", UserName: "alice", Email: "a@x.com"}

// newTestServices returns services whose AuthService authenticates
// "alice-token" as alice.
func newTestServices() (*service.Services, *fakeAuthService, *fakeProfileService, *fakePasswordService) {
	auth := &fakeAuthService{
		authenticateFn: func(_ context.Context, token string) (models.User, error) {
			if token == "alice-token" {
				return alice, nil
			}
			return models.User{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	profiles := &fakeProfileService{}
	passwords := &fakePasswordService{}

	return &service.Services{
		AuthService:     auth,
		ProfileService:  profiles,
		PasswordService: passwords,
		AppInfoService:  &fakeAppInfoService{version: "test-version"},
	}, auth, profiles, passwords
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, config.Server{}, logger.Nop())
}

// serve runs a request through the full router. token, if set, is sent as a
// bearer token.
func serve(t *testing.T, h *Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// errorBody decodes an ErrorResponse.
func errorBody(t *testing.T, rec *httptest.ResponseRecorder) any {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Error
}

// decode unmarshals the response body into v.
func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

// callerOf returns the authenticated user of ctx or an empty user.
func callerOf(ctx context.Context) models.User {
	if u, ok := identity.CurrentProfile(ctx); ok {
		return *u
	}
	return models.User{}
}
