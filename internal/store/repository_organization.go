// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/clevercastle/gowarden/internal/logger"
	"github.com/clevercastle/gowarden/models"
)

type organizationRepository struct {
	client *Client
	log    *logger.Logger
}

// NewOrganizationRepository returns the OrganizationRepository backed by
// the organizations table.
func NewOrganizationRepository(client *Client, log *logger.Logger) OrganizationRepository {
	log.Debug().Msg("organization repository created")
	return &organizationRepository{client: client, log: log}
}

func (r *organizationRepository) FindByID(ctx context.Context, id string) (*models.Organization, error) {
	var organization models.Organization
	found, err := r.client.getItem(ctx, organizationsTable, organizationKey(id), &organization)
	if err != nil {
		return nil, fmt.Errorf("error finding organization %q: %w", id, err)
	}
	if !found {
		return nil, nil
	}
	return &organization, nil
}

func (r *organizationRepository) ListByIDs(ctx context.Context, ids []string) ([]models.Organization, error) {
	keys := make([]map[string]types.AttributeValue, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, organizationKey(id))
	}

	var organizations []models.Organization
	if err := r.client.batchGet(ctx, organizationsTable, keys, &organizations); err != nil {
		return nil, fmt.Errorf("error batch-getting organizations: %w", err)
	}
	return organizations, nil
}

func (r *organizationRepository) Save(ctx context.Context, organization *models.Organization) error {
	organization.SK = organization.ID
	if err := r.client.putItem(ctx, organizationsTable, organization); err != nil {
		return fmt.Errorf("error saving organization %q: %w", organization.ID, err)
	}
	return nil
}

func organizationKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"Id": attrS(id),
		"Sk": attrS(id),
	}
}
