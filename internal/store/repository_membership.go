// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/clevercastle/gowarden/internal/logger"
	"github.com/clevercastle/gowarden/models"
)

type membershipRepository struct {
	client *Client
	log    *logger.Logger
}

// NewMembershipRepository returns the MembershipRepository backed by the
// memberships table, keyed (user id, organization id) with an organization
// index for the reverse direction.
func NewMembershipRepository(client *Client, log *logger.Logger) MembershipRepository {
	log.Debug().Msg("membership repository created")
	return &membershipRepository{client: client, log: log}
}

func (r *membershipRepository) FindConfirmed(ctx context.Context, userID, organizationID string) (*models.Membership, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key("UserId").Equal(expression.Value(userID)).
			And(expression.Key("OrganizationId").Equal(expression.Value(organizationID)))).
		WithFilter(expression.Name("Status").Equal(expression.Value(models.MembershipStatusConfirmed))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("error building membership query: %w", err)
	}

	var memberships []models.Membership
	if err := r.client.query(ctx, &dynamodb.QueryInput{
		TableName:                 r.client.table(membershipsTable),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}, &memberships); err != nil {
		return nil, fmt.Errorf("error querying membership of user %q in organization %q: %w", userID, organizationID, err)
	}

	switch len(memberships) {
	case 0:
		return nil, nil
	case 1:
		return &memberships[0], nil
	default:
		return nil, fmt.Errorf("user %q in organization %q: %w", userID, organizationID, ErrDuplicateMembership)
	}
}

func (r *membershipRepository) ListConfirmedByUser(ctx context.Context, userID string) ([]models.Membership, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key("UserId").Equal(expression.Value(userID))).
		WithFilter(expression.Name("Status").Equal(expression.Value(models.MembershipStatusConfirmed))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("error building membership query: %w", err)
	}

	var memberships []models.Membership
	if err := r.client.query(ctx, &dynamodb.QueryInput{
		TableName:                 r.client.table(membershipsTable),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}, &memberships); err != nil {
		return nil, fmt.Errorf("error listing memberships of user %q: %w", userID, err)
	}
	return memberships, nil
}

func (r *membershipRepository) ListByOrganization(ctx context.Context, organizationID string) ([]models.Membership, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key("OrganizationId").Equal(expression.Value(organizationID))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("error building membership query: %w", err)
	}

	var memberships []models.Membership
	if err := r.client.query(ctx, &dynamodb.QueryInput{
		TableName:                 r.client.table(membershipsTable),
		IndexName:                 aws.String(organizationIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}, &memberships); err != nil {
		return nil, fmt.Errorf("error listing memberships of organization %q: %w", organizationID, err)
	}
	return memberships, nil
}

func (r *membershipRepository) Save(ctx context.Context, membership *models.Membership) error {
	if err := r.client.putItem(ctx, membershipsTable, membership); err != nil {
		return fmt.Errorf("error saving membership of user %q: %w", membership.UserID, err)
	}
	return nil
}
