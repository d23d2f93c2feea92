// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/clevercastle/gowarden/internal/logger"
	"github.com/clevercastle/gowarden/internal/store"
	"github.com/clevercastle/gowarden/internal/utils"
	"github.com/clevercastle/gowarden/models"
)

type organizationService struct {
	repos *store.Repositories
	log   *logger.Logger
}

// NewOrganizationService returns the OrganizationService over repos.
func NewOrganizationService(repos *store.Repositories, log *logger.Logger) OrganizationService {
	log.Debug().Msg("organization service created")
	return &organizationService{repos: repos, log: log}
}

// Create writes the organization, the creator's Owner membership and the
// default collection as three independent writes, in that order. A crash in
// between leaves a repairable prefix: an organization without members is
// invisible, one without collections is empty.
func (s *organizationService) Create(ctx context.Context, principal models.Principal, req *models.OrganizationCreateRequest) (*models.ProfileOrganizationResponse, error) {
	if req.Name == "" || req.CollectionName == "" {
		return nil, fmt.Errorf("%w: organization and collection names are required", ErrValidation)
	}
	if req.Key == "" {
		return nil, fmt.Errorf("%w: organization key is required", ErrValidation)
	}

	now := time.Now().UTC()
	organization := &models.Organization{
		ID:           utils.NewOrganizationID(),
		Name:         req.Name,
		BillingEmail: req.BillingEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Keys != nil {
		organization.EncryptedPrivateKey = req.Keys.EncryptedPrivateKey
		organization.PublicKey = req.Keys.PublicKey
	}
	if err := s.repos.Organizations.Save(ctx, organization); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	membership := &models.Membership{
		UserID:         principal.ID,
		OrganizationID: organization.ID,
		Role:           models.MembershipRoleOwner,
		Status:         models.MembershipStatusConfirmed,
		AccessAll:      true,
		Key:            req.Key,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repos.Memberships.Save(ctx, membership); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	collection := &models.Collection{
		ID:             utils.NewCollectionID(),
		OrganizationID: organization.ID,
		Name:           req.CollectionName,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repos.Collections.Save(ctx, collection); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.log.Info().Str("organizationID", organization.ID).Str("userID", principal.ID).Msg("organization created")
	resp := models.ToProfileOrganizationResponse(membership, organization)
	return &resp, nil
}

func (s *organizationService) Get(ctx context.Context, principal models.Principal, id string) (*models.ProfileOrganizationResponse, error) {
	membership, err := s.requireMembership(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	organization, err := s.repos.Organizations.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if organization == nil {
		return nil, fmt.Errorf("%w: organization %q", ErrNotFound, id)
	}

	resp := models.ToProfileOrganizationResponse(membership, organization)
	return &resp, nil
}

func (s *organizationService) Update(ctx context.Context, principal models.Principal, id string, req *models.OrganizationUpdateRequest) (*models.ProfileOrganizationResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: organization name is required", ErrValidation)
	}

	membership, err := s.requireAdministrator(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	organization, err := s.repos.Organizations.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if organization == nil {
		return nil, fmt.Errorf("%w: organization %q", ErrNotFound, id)
	}

	organization.Name = req.Name
	organization.BillingEmail = req.BillingEmail
	organization.UpdatedAt = time.Now().UTC()
	if err := s.repos.Organizations.Save(ctx, organization); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	resp := models.ToProfileOrganizationResponse(membership, organization)
	return &resp, nil
}

func (s *organizationService) CreateCollection(ctx context.Context, principal models.Principal, organizationID string, req *models.CollectionRequest) (*models.CollectionResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: collection name is required", ErrValidation)
	}
	if _, err := s.requireAdministrator(ctx, principal, organizationID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	collection := &models.Collection{
		ID:             utils.NewCollectionID(),
		OrganizationID: organizationID,
		Name:           req.Name,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repos.Collections.Save(ctx, collection); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	resp := models.ToCollectionResponse(collection)
	return &resp, nil
}

func (s *organizationService) ListCollections(ctx context.Context, principal models.Principal, organizationID string) ([]models.CollectionResponse, error) {
	if _, err := s.requireMembership(ctx, principal, organizationID); err != nil {
		return nil, err
	}

	collections, err := s.repos.Collections.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	responses := make([]models.CollectionResponse, 0, len(collections))
	for i := range collections {
		responses = append(responses, models.ToCollectionResponse(&collections[i]))
	}
	return responses, nil
}

// ListUserCollections unions two sources of visibility: every collection of
// each access-all membership, and the explicitly granted ones. Duplicates
// collapse by collection id.
func (s *organizationService) ListUserCollections(ctx context.Context, principal models.Principal) ([]models.CollectionResponse, error) {
	memberships, err := s.repos.Memberships.ListConfirmedByUser(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	seen := make(map[string]bool)
	responses := []models.CollectionResponse{}

	for i := range memberships {
		if !memberships[i].AccessAll {
			continue
		}
		collections, err := s.repos.Collections.ListByOrganization(ctx, memberships[i].OrganizationID)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInternal, err)
		}
		for j := range collections {
			if seen[collections[j].ID] {
				continue
			}
			seen[collections[j].ID] = true
			responses = append(responses, models.ToCollectionResponse(&collections[j]))
		}
	}

	grants, err := s.repos.UserCollections.ListByUser(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	granted := make([]string, 0, len(grants))
	for _, grant := range grants {
		if !seen[grant.CollectionID] {
			granted = append(granted, grant.CollectionID)
		}
	}
	collections, err := s.repos.Collections.ListByIDs(ctx, granted)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	for i := range collections {
		if seen[collections[i].ID] {
			continue
		}
		seen[collections[i].ID] = true
		responses = append(responses, models.ToCollectionResponse(&collections[i]))
	}

	return responses, nil
}

// ListMembers joins the membership rows of an organization with their user
// accounts. A membership pointing at a missing account is logged and
// dropped.
func (s *organizationService) ListMembers(ctx context.Context, principal models.Principal, organizationID string) ([]models.OrganizationMemberResponse, error) {
	if _, err := s.requireMembership(ctx, principal, organizationID); err != nil {
		return nil, err
	}

	memberships, err := s.repos.Memberships.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	ids := make([]string, 0, len(memberships))
	for i := range memberships {
		ids = append(ids, memberships[i].UserID)
	}
	users, err := s.repos.Users.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	byID := make(map[string]*models.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	responses := make([]models.OrganizationMemberResponse, 0, len(memberships))
	for i := range memberships {
		user, ok := byID[memberships[i].UserID]
		if !ok {
			s.log.Warn().
				Str("organizationID", organizationID).
				Str("userID", memberships[i].UserID).
				Msg("membership points at a missing account, dropping")
			continue
		}
		responses = append(responses, models.OrganizationMemberResponse{
			Object:    "organizationUserUserDetails",
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			Status:    memberships[i].Status,
			Type:      memberships[i].Role,
			AccessAll: memberships[i].AccessAll,
		})
	}
	return responses, nil
}

// requireMembership resolves the caller's confirmed membership in
// organizationID or refuses.
func (s *organizationService) requireMembership(ctx context.Context, principal models.Principal, organizationID string) (*models.Membership, error) {
	membership, err := s.repos.Memberships.FindConfirmed(ctx, principal.ID, organizationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if membership == nil {
		return nil, fmt.Errorf("%w: not a confirmed member of organization %q", ErrPermissionDenied, organizationID)
	}
	return membership, nil
}

// requireAdministrator resolves a confirmed Owner or Admin membership.
func (s *organizationService) requireAdministrator(ctx context.Context, principal models.Principal, organizationID string) (*models.Membership, error) {
	membership, err := s.requireMembership(ctx, principal, organizationID)
	if err != nil {
		return nil, err
	}
	if membership.Role != models.MembershipRoleOwner && membership.Role != models.MembershipRoleAdmin {
		return nil, fmt.Errorf("%w: requires an administrative role in organization %q", ErrPermissionDenied, organizationID)
	}
	return membership, nil
}
