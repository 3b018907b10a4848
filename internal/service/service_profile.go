// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"path"
	"strings"

	"github.com/MKhiriev/go-blog-accounts/internal/identity"
	"github.com/MKhiriev/go-blog-accounts/internal/logger"
	"github.com/MKhiriev/go-blog-accounts/internal/policy"
	"github.com/MKhiriev/go-blog-accounts/internal/projection"
	"github.com/MKhiriev/go-blog-accounts/internal/store"
	"github.com/MKhiriev/go-blog-accounts/internal/utils"
	"github.com/MKhiriev/go-blog-accounts/internal/validators"
	"github.com/MKhiriev/go-blog-accounts/models"
)

// DefaultMaxImageSize is the upload limit of profile images.
const DefaultMaxImageSize = 5 << 20

// imageExtensions lists the accepted sniffed content types.
var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type profileService struct {
	userRepository store.UserRepository
	images         store.ImageStorage

	sanitizer  *validators.Sanitizer
	projection *projection.Engine
	ids        *utils.UUIDGenerator

	defaultLocale string
	maxImageSize  int64

	logger *logger.Logger
}

// NewProfileService constructs a [ProfileService]. A non-positive
// maxImageSize falls back to [DefaultMaxImageSize].
func NewProfileService(
	userRepository store.UserRepository,
	images store.ImageStorage,
	defaultLocale string,
	maxImageSize int64,
	logger *logger.Logger,
) ProfileService {
	if maxImageSize <= 0 {
		maxImageSize = DefaultMaxImageSize
	}
	return &profileService{
		userRepository: userRepository,
		images:         images,
		sanitizer:      validators.NewSanitizer(policy.Users),
		projection:     projection.Default,
		ids:            utils.NewUUIDGenerator(),
		defaultLocale:  defaultLocale,
		maxImageSize:   maxImageSize,
		logger:         logger,
	}
}

// GetPublicProfile returns the public view of the user named userName,
// regardless of who is asking.
func (p *profileService) GetPublicProfile(ctx context.Context, userName string) (models.Profile, error) {
	user, err := p.findByUserName(ctx, userName)
	if err != nil {
		return models.Profile{}, err
	}
	return p.profile(user, false), nil
}

// GetOwnerProfile returns the owner view of the caller's own record, read
// fresh from storage.
func (p *profileService) GetOwnerProfile(ctx context.Context) (models.Profile, error) {
	caller, err := identity.RequireAuthenticated(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	user, err := p.userRepository.FindUserByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Profile{}, ErrUserNotFound
		}
		return models.Profile{}, busy(ctx, "*profileService.GetOwnerProfile", err)
	}

	return p.profile(user, true), nil
}

// GetProfile implements [ProfileService].
func (p *profileService) GetProfile(ctx context.Context, userName string) (models.Profile, error) {
	user, err := p.findByUserName(ctx, userName)
	if err != nil {
		return models.Profile{}, err
	}
	return p.profile(user, identity.IsOwnerOf(ctx, &user)), nil
}

// UpdateProfile applies rawUpdate to the profile of userName.
//
// Only the owner may edit: anonymous callers get [identity.ErrUnauthorized],
// other users [identity.ErrForbidden]. The update is sanitized first, so
// unknown and read-only keys are dropped before anything is checked; a
// remaining value of the wrong shape is [ErrBadRequest]. An update that is
// empty after sanitizing changes nothing and returns the current profile.
func (p *profileService) UpdateProfile(ctx context.Context, userName string, rawUpdate map[string]any) (models.Profile, error) {
	caller, err := identity.RequireOwnerByUserName(ctx, userName)
	if err != nil {
		return models.Profile{}, err
	}

	update, err := p.sanitizer.Sanitize(rawUpdate)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*profileService.UpdateProfile").Msg("rejected profile update")
		return models.Profile{}, ErrBadRequest
	}
	if err = p.validateUpdate(update); err != nil {
		return models.Profile{}, err
	}

	if len(update) == 0 {
		return p.GetOwnerProfile(ctx)
	}

	user, err := p.updateFields(ctx, caller.ID, update)
	if err != nil {
		return models.Profile{}, err
	}

	return p.profile(user, true), nil
}

// validateUpdate checks the values of a sanitized update that have a
// closed set of allowed values.
func (p *profileService) validateUpdate(update map[string]any) error {
	if raw, ok := update[models.FieldLocale]; ok {
		s, _ := raw.(string)
		locale, err := normalizeLocale(s, p.defaultLocale)
		if err != nil {
			return err
		}
		update[models.FieldLocale] = locale
	}

	if raw, ok := update[models.FieldSex]; ok && raw != nil {
		if s := raw.(string); s != projection.SexMale && s != projection.SexFemale {
			return NewValidationError(models.FieldSex, msgSexInvalid)
		}
	}

	return nil
}

// UploadProfileImage stores a new profile image of userName and points the
// profileImg field at it. Stored images are named <userID>-<uuid>.<ext>.
// The previous image is deleted best-effort, and only when its name carries
// the owner's prefix: profileImg is editable, so it may point anywhere.
func (p *profileService) UploadProfileImage(ctx context.Context, userName string, data []byte) (models.ImageUploadResponse, error) {
	log := logger.FromContext(ctx)

	if _, err := identity.RequireOwnerByUserName(ctx, userName); err != nil {
		return models.ImageUploadResponse{}, err
	}

	if len(data) == 0 {
		return models.ImageUploadResponse{}, NewValidationError(models.FieldProfileImg, msgImageMissing)
	}
	if int64(len(data)) > p.maxImageSize {
		return models.ImageUploadResponse{}, NewValidationError(models.FieldProfileImg, msgImageTooLarge)
	}

	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		log.Debug().Str("func", "*profileService.UploadProfileImage").Str("content_type", contentType).Msg("unsupported image type")
		return models.ImageUploadResponse{}, NewValidationError(models.FieldProfileImg, msgImageUnsupported)
	}

	// the caller's cached profile may be stale, the old image name is read fresh
	current, err := p.findByUserName(ctx, userName)
	if err != nil {
		return models.ImageUploadResponse{}, err
	}

	location, err := p.images.SaveImage(ctx, imageName(current.ID, p.ids.Generate(), ext), contentType, data)
	if err != nil {
		return models.ImageUploadResponse{}, busy(ctx, "*profileService.UploadProfileImage", err)
	}

	update, err := p.sanitizer.Sanitize(map[string]any{models.FieldProfileImg: location})
	if err != nil {
		p.deleteImage(ctx, location)
		return models.ImageUploadResponse{}, busy(ctx, "*profileService.UploadProfileImage", err)
	}
	if _, err = p.updateFields(ctx, current.ID, update); err != nil {
		p.deleteImage(ctx, location)
		return models.ImageUploadResponse{}, err
	}

	if current.ProfileImg != nil && ownsImage(current.ID, *current.ProfileImg) {
		p.deleteImage(ctx, *current.ProfileImg)
	}

	return models.ImageUploadResponse{ProfileImg: location}, nil
}

// SexOptions returns the sex selector entries of the profile of userName.
func (p *profileService) SexOptions(ctx context.Context, userName string) ([]models.SexOption, error) {
	user, err := p.findByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}
	return projection.SexOptions(&user), nil
}

func (p *profileService) findByUserName(ctx context.Context, userName string) (models.User, error) {
	if userName == "" {
		return models.User{}, ErrUserNotFound
	}

	user, err := p.userRepository.FindUserByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, busy(ctx, "*profileService.findByUserName", err)
	}

	return user, nil
}

func (p *profileService) updateFields(ctx context.Context, id string, update map[string]any) (models.User, error) {
	user, err := p.userRepository.UpdateUserFields(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, busy(ctx, "*profileService.updateFields", err)
	}
	return user, nil
}

func imageName(userID, id, ext string) string {
	return userID + "-" + id + ext
}

// ownsImage reports whether location names an image stored for userID.
func ownsImage(userID, location string) bool {
	if userID == "" || location == "" {
		return false
	}
	return strings.HasPrefix(path.Base(location), userID+"-")
}

func (p *profileService) deleteImage(ctx context.Context, location string) {
	if err := p.images.DeleteImage(ctx, location); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*profileService.deleteImage").
			Str("location", location).Msg("error deleting profile image")
	}
}

func (p *profileService) profile(user models.User, owner bool) models.Profile {
	fields := p.projection.PublicView(user)
	if owner {
		fields = p.projection.OwnerView(user)
	}

	return models.Profile{
		Fields:           fields,
		FullName:         user.FullName(),
		IsOwner:          owner,
		ProfileInfoEmpty: p.projection.IsProfileInfoEmpty(user),
	}
}
