// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-blog-accounts/internal/adapter"
	"github.com/MKhiriev/go-blog-accounts/internal/config"
	"github.com/MKhiriev/go-blog-accounts/internal/logger"
	"github.com/MKhiriev/go-blog-accounts/internal/store"
	"github.com/MKhiriev/go-blog-accounts/internal/utils"
	"github.com/MKhiriev/go-blog-accounts/internal/validators"
	"github.com/MKhiriev/go-blog-accounts/models"
	"golang.org/x/text/language"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, email confirmation, credential verification
// and the JWT session lifecycle.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	credentials *CredentialManager
	validator   *validators.UserValidator
	mailer      adapter.Mailer
	ids         *utils.UUIDGenerator

	// defaultLocale is assigned when a registration carries no locale.
	defaultLocale string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	credentials *CredentialManager,
	mailer adapter.Mailer,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		credentials:    credentials,
		validator:      validators.NewUserValidator(cfg.Credentials.PasswordMinLength),
		mailer:         mailer,
		ids:            utils.NewUUIDGenerator(),
		defaultLocale:  cfg.Credentials.DefaultLocale,
		tokenSignKey:   cfg.App.TokenSignKey,
		tokenIssuer:    cfg.App.TokenIssuer,
		tokenDuration:  cfg.App.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new, unconfirmed account and mails the confirmation
// link.
//
// The steps run strictly in order: validation, duplicate checks, password
// hashing, confirmation code generation, insert. Returns:
//   - [ValidationError] for malformed input or a taken user name or email,
//     whether caught by the pre-check or by the storage unique index.
//   - [ErrServerBusy] if hashing or storage fails.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.UserName = strings.TrimSpace(req.UserName)
	req.Email = normalizeEmail(req.Email)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Register").Msg("invalid registration data")
		return models.User{}, fromFieldErrors(err)
	}

	locale, err := normalizeLocale(req.Locale, a.defaultLocale)
	if err != nil {
		return models.User{}, err
	}

	if err = a.checkDuplicates(ctx, req.UserName, req.Email); err != nil {
		return models.User{}, err
	}

	hash, err := a.credentials.HashPassword(ctx, req.Password)
	if err != nil {
		return models.User{}, err
	}
	code := a.credentials.GenerateConfirmationCode(req.Email, a.credentials.now())

	user, err := a.userRepository.CreateUser(ctx, models.User{
		ID:               a.ids.Generate(),
		UserName:         req.UserName,
		Email:            req.Email,
		PasswordHash:     hash,
		ConfirmationCode: code,
		Locale:           locale,
	})
	switch {
	case errors.Is(err, store.ErrUserNameAlreadyExists):
		return models.User{}, NewValidationError(models.FieldUserName, msgUserNameTaken)
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.User{}, NewValidationError(models.FieldEmail, msgEmailTaken)
	case err != nil:
		return models.User{}, busy(ctx, "*authService.Register", err)
	}

	if err = a.mailer.SendEmailConfirmationMail(ctx, user.Email, user.UserName, user.ConfirmationCode); err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("user_id", user.ID).Msg("email confirmation mail was not sent")
	}

	log.Info().Str("func", "*authService.Register").Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

func (a *authService) checkDuplicates(ctx context.Context, userName, email string) error {
	var verr ValidationError

	_, err := a.userRepository.FindUserByUserName(ctx, userName)
	switch {
	case err == nil:
		verr.Add(models.FieldUserName, msgUserNameTaken)
	case !errors.Is(err, store.ErrUserNotFound):
		return busy(ctx, "*authService.checkDuplicates", err)
	}

	_, err = a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		verr.Add(models.FieldEmail, msgEmailTaken)
	case !errors.Is(err, store.ErrUserNotFound):
		return busy(ctx, "*authService.checkDuplicates", err)
	}

	return verr.OrNil()
}

// ConfirmEmail marks the email of the user holding code as confirmed.
// Returns [ErrUserNotFound] for unknown codes and
// [ErrEmailAlreadyConfirmed] when the email was confirmed before.
func (a *authService) ConfirmEmail(ctx context.Context, code string) (models.User, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return models.User{}, ErrUserNotFound
	}

	user, err := a.userRepository.FindUserByConfirmationCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, busy(ctx, "*authService.ConfirmEmail", err)
	}
	if user.EmailConfirmed {
		return models.User{}, ErrEmailAlreadyConfirmed
	}

	changed, err := a.userRepository.ConfirmEmail(ctx, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, busy(ctx, "*authService.ConfirmEmail", err)
	}
	if !changed {
		return models.User{}, ErrEmailAlreadyConfirmed
	}

	user.EmailConfirmed = true
	return user, nil
}

// Login authenticates a user by email and password.
//
// An unknown email and a wrong password both yield
// [ErrInvalidCredentials], so the answer does not reveal which accounts
// exist.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req, models.FieldEmail); err != nil {
		return models.User{}, fromFieldErrors(err)
	}
	if req.Password == "" {
		return models.User{}, NewValidationError(fieldPassword, humanize(validators.ErrPasswordBlank.Error()))
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("func", "*authService.Login").Msg("login with unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, busy(ctx, "*authService.Login", err)
	}

	if !a.credentials.VerifyPassword(ctx, req.Password, user.PasswordHash) {
		log.Debug().Str("func", "*authService.Login").Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Msg("error generating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Authenticate implements [AuthService]. A valid token of a deleted user is
// treated as invalid.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrTokenIsExpiredOrInvalid
		}
		return models.User{}, busy(ctx, "*authService.Authenticate", err)
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizeLocale canonicalizes a BCP 47 tag. Empty input yields fallback.
func normalizeLocale(raw, fallback string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = fallback
	}
	if raw == "" {
		return language.English.String(), nil
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return "", NewValidationError(models.FieldLocale, msgLocaleInvalid)
	}
	return tag.String(), nil
}
