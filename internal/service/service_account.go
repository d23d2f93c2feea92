// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clevercastle/gowarden/internal/config"
	"github.com/clevercastle/gowarden/internal/crypto"
	"github.com/clevercastle/gowarden/internal/logger"
	"github.com/clevercastle/gowarden/internal/store"
	"github.com/clevercastle/gowarden/internal/utils"
	"github.com/clevercastle/gowarden/models"
)

type accountService struct {
	repos *store.Repositories
	cfg   *config.StructuredConfig
	log   *logger.Logger
}

// NewAccountService returns the AccountService over repos.
func NewAccountService(repos *store.Repositories, cfg *config.StructuredConfig, log *logger.Logger) AccountService {
	log.Debug().Msg("account service created")
	return &accountService{repos: repos, cfg: cfg, log: log}
}

// PreLogin answers with the stored KDF parameters, or the system defaults
// when the email is unknown. The response shape is identical either way.
func (s *accountService) PreLogin(ctx context.Context, req *models.PreLoginRequest) (*models.PreLoginResponse, error) {
	user, err := s.repos.Users.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if user == nil {
		return &models.PreLoginResponse{
			Kdf:           s.cfg.App.KdfType,
			KdfIterations: s.cfg.App.KdfIterations,
		}, nil
	}

	return &models.PreLoginResponse{
		Kdf:           user.Kdf,
		KdfIterations: user.KdfIterations,
	}, nil
}

func (s *accountService) Register(ctx context.Context, req *models.RegisterRequest) error {
	email := normalizeEmail(req.Email)
	if email == "" || req.MasterPasswordHash == "" {
		return fmt.Errorf("%w: email and master password hash are required", ErrValidation)
	}
	if !s.cfg.IsSignupAllowed(email) {
		return fmt.Errorf("%w: registration is not open for this email domain", ErrPermissionDenied)
	}

	existing, err := s.repos.Users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if existing != nil {
		return fmt.Errorf("%w: email is already registered", ErrConflict)
	}

	kdf := s.cfg.App.KdfType
	if req.Kdf != nil {
		kdf = *req.Kdf
	}
	iterations := s.cfg.App.KdfIterations
	if req.KdfIterations != nil {
		iterations = *req.KdfIterations
	}
	if iterations <= 0 {
		return fmt.Errorf("%w: kdf iterations must be positive", ErrValidation)
	}

	now := time.Now().UTC()
	salt := utils.NewSalt()
	user := &models.User{
		ID:                 utils.NewUserID(),
		Email:              email,
		Name:               req.Name,
		Salt:               salt,
		MasterPasswordHash: crypto.HashPassword(req.MasterPasswordHash, salt, iterations),
		MasterPasswordHint: req.MasterPasswordHint,
		Kdf:                kdf,
		KdfIterations:      iterations,
		Key:                req.Key,
		SecurityStamp:      utils.NewSecurityStamp(),
		Enabled:            true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if req.Keys != nil {
		user.EncryptedPrivateKey = req.Keys.EncryptedPrivateKey
		user.PublicKey = req.Keys.PublicKey
	}

	if err := s.repos.Users.Save(ctx, user); err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.log.Info().Str("userID", user.ID).Msg("account registered")
	return nil
}

func (s *accountService) Profile(ctx context.Context, principal models.Principal) (*models.ProfileResponse, error) {
	user, err := s.repos.Users.FindByID(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: account %q", ErrNotFound, principal.ID)
	}

	organizations, err := profileOrganizations(ctx, s.repos, principal.ID, s.log)
	if err != nil {
		return nil, err
	}

	profile := models.ToProfileResponse(user, organizations)
	return &profile, nil
}

// UpdateKdf re-verifies the current master password, then installs the new
// KDF parameters, password hash and vault key under a fresh salt and
// security stamp. Concurrent updates resolve last-write-wins.
func (s *accountService) UpdateKdf(ctx context.Context, principal models.Principal, req *models.KdfRequest) error {
	if req.NewMasterPasswordHash == "" || req.Key == "" {
		return fmt.Errorf("%w: new master password hash and key are required", ErrValidation)
	}
	if req.KdfIterations <= 0 {
		return fmt.Errorf("%w: kdf iterations must be positive", ErrValidation)
	}

	user, err := s.repos.Users.FindByID(ctx, principal.ID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if user == nil {
		return fmt.Errorf("%w: account %q", ErrNotFound, principal.ID)
	}

	if !crypto.VerifyPassword(req.MasterPasswordHash, user.Salt, user.MasterPasswordHash, user.KdfIterations) {
		return ErrAuthentication
	}

	salt := utils.NewSalt()
	user.Salt = salt
	user.MasterPasswordHash = crypto.HashPassword(req.NewMasterPasswordHash, salt, req.KdfIterations)
	user.Kdf = req.Kdf
	user.KdfIterations = req.KdfIterations
	user.Key = req.Key
	user.SecurityStamp = utils.NewSecurityStamp()
	user.UpdatedAt = time.Now().UTC()

	if err := s.repos.Users.Save(ctx, user); err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.log.Info().Str("userID", user.ID).Msg("kdf parameters rotated")
	return nil
}

// profileOrganizations joins the confirmed memberships of userID with their
// organizations. A membership pointing at a missing organization is logged
// and dropped rather than failing the whole profile.
func profileOrganizations(ctx context.Context, repos *store.Repositories, userID string, log *logger.Logger) ([]models.ProfileOrganizationResponse, error) {
	memberships, err := repos.Memberships.ListConfirmedByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if len(memberships) == 0 {
		return []models.ProfileOrganizationResponse{}, nil
	}

	ids := make([]string, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.OrganizationID)
	}
	organizations, err := repos.Organizations.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	byID := make(map[string]*models.Organization, len(organizations))
	for i := range organizations {
		byID[organizations[i].ID] = &organizations[i]
	}

	result := make([]models.ProfileOrganizationResponse, 0, len(memberships))
	for i := range memberships {
		organization, ok := byID[memberships[i].OrganizationID]
		if !ok {
			log.Warn().
				Str("userID", userID).
				Str("organizationID", memberships[i].OrganizationID).
				Msg("membership points at a missing organization, dropping")
			continue
		}
		result = append(result, models.ToProfileOrganizationResponse(&memberships[i], organization))
	}
	return result, nil
}

// normalizeEmail lower-cases and trims an email so lookups are
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
