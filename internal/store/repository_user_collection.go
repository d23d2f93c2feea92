// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/clevercastle/gowarden/internal/logger"
	"github.com/clevercastle/gowarden/models"
)

type userCollectionRepository struct {
	client *Client
	log    *logger.Logger
}

// NewUserCollectionRepository returns the UserCollectionRepository backed
// by the user_collections grant table, partitioned by user id.
func NewUserCollectionRepository(client *Client, log *logger.Logger) UserCollectionRepository {
	log.Debug().Msg("user collection repository created")
	return &userCollectionRepository{client: client, log: log}
}

func (r *userCollectionRepository) ListByUser(ctx context.Context, userID string) ([]models.UserCollection, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key("UserId").Equal(expression.Value(userID))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("error building user collection query: %w", err)
	}

	var grants []models.UserCollection
	if err := r.client.query(ctx, &dynamodb.QueryInput{
		TableName:                 r.client.table(userCollectionsTable),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}, &grants); err != nil {
		return nil, fmt.Errorf("error listing collection grants of user %q: %w", userID, err)
	}
	return grants, nil
}

func (r *userCollectionRepository) Save(ctx context.Context, grant *models.UserCollection) error {
	if err := r.client.putItem(ctx, userCollectionsTable, grant); err != nil {
		return fmt.Errorf("error saving collection grant of user %q: %w", grant.UserID, err)
	}
	return nil
}
