// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package service

import (
	"context"
	"fmt"

	"github.com/clevercastle/gowarden/internal/config"
	"github.com/clevercastle/gowarden/internal/crypto"
	"github.com/clevercastle/gowarden/internal/logger"
	"github.com/clevercastle/gowarden/internal/store"
	"github.com/clevercastle/gowarden/internal/utils"
	"github.com/clevercastle/gowarden/models"
)

// requiredScope is the only scope the token endpoint issues.
const requiredScope = "api offline_access"

type identityService struct {
	repos *store.Repositories
	cfg   *config.StructuredConfig
	log   *logger.Logger
}

// NewIdentityService returns the IdentityService over repos.
func NewIdentityService(repos *store.Repositories, cfg *config.StructuredConfig, log *logger.Logger) IdentityService {
	log.Debug().Msg("identity service created")
	return &identityService{repos: repos, cfg: cfg, log: log}
}

func (s *identityService) Connect(ctx context.Context, req *models.ConnectRequest) (*models.LoginResponse, error) {
	switch req.GrantType {
	case "password":
		return s.passwordLogin(ctx, req)
	default:
		return nil, fmt.Errorf("%w: unsupported grant type %q", ErrValidation, req.GrantType)
	}
}

// passwordLogin verifies the master password proof and issues a bearer
// token. Unknown account, wrong password and disabled account are all
// reported as the same authentication failure.
func (s *identityService) passwordLogin(ctx context.Context, req *models.ConnectRequest) (*models.LoginResponse, error) {
	if req.Scope != requiredScope {
		return nil, fmt.Errorf("%w: scope must be %q", ErrValidation, requiredScope)
	}

	user, err := s.repos.Users.FindByEmail(ctx, normalizeEmail(req.Username))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if user == nil {
		return nil, ErrAuthentication
	}
	if !crypto.VerifyPassword(req.Password, user.Salt, user.MasterPasswordHash, user.KdfIterations) {
		return nil, ErrAuthentication
	}
	if !user.Enabled {
		s.log.Warn().Str("userID", user.ID).Msg("login attempt on disabled account")
		return nil, ErrAuthentication
	}

	principal := models.Principal{ID: user.ID, Email: user.Email}
	token, err := utils.GeneratePrincipalToken(s.cfg.App.TokenIssuer, principal, s.cfg.App.TokenDuration, s.cfg.App.TokenSignKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.log.Info().Str("userID", user.ID).Msg("password login succeeded")
	return &models.LoginResponse{
		AccessToken:         token,
		ExpiresIn:           int64(s.cfg.App.TokenDuration.Seconds()),
		TokenType:           "Bearer",
		Key:                 user.Key,
		PrivateKey:          user.EncryptedPrivateKey,
		Kdf:                 user.Kdf,
		KdfIterations:       user.KdfIterations,
		ResetMasterPassword: false,
		Scope:               requiredScope,
		UnofficialServer:    true,
	}, nil
}
