// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/clevercastle/gowarden/internal/logger"
	"github.com/clevercastle/gowarden/models"
)

type collectionRepository struct {
	client *Client
	log    *logger.Logger
}

// NewCollectionRepository returns the CollectionRepository backed by the
// collections table with an organization index.
func NewCollectionRepository(client *Client, log *logger.Logger) CollectionRepository {
	log.Debug().Msg("collection repository created")
	return &collectionRepository{client: client, log: log}
}

func (r *collectionRepository) FindByID(ctx context.Context, id string) (*models.Collection, error) {
	var collection models.Collection
	found, err := r.client.getItem(ctx, collectionsTable, collectionKey(id), &collection)
	if err != nil {
		return nil, fmt.Errorf("error finding collection %q: %w", id, err)
	}
	if !found {
		return nil, nil
	}
	return &collection, nil
}

func (r *collectionRepository) ListByOrganization(ctx context.Context, organizationID string) ([]models.Collection, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key("OrganizationId").Equal(expression.Value(organizationID))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("error building collection query: %w", err)
	}

	var collections []models.Collection
	if err := r.client.query(ctx, &dynamodb.QueryInput{
		TableName:                 r.client.table(collectionsTable),
		IndexName:                 aws.String(organizationIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}, &collections); err != nil {
		return nil, fmt.Errorf("error listing collections of organization %q: %w", organizationID, err)
	}
	return collections, nil
}

func (r *collectionRepository) ListByIDs(ctx context.Context, ids []string) ([]models.Collection, error) {
	keys := make([]map[string]types.AttributeValue, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, collectionKey(id))
	}

	var collections []models.Collection
	if err := r.client.batchGet(ctx, collectionsTable, keys, &collections); err != nil {
		return nil, fmt.Errorf("error batch-getting collections: %w", err)
	}
	return collections, nil
}

func (r *collectionRepository) Save(ctx context.Context, collection *models.Collection) error {
	collection.SK = collection.ID
	if err := r.client.putItem(ctx, collectionsTable, collection); err != nil {
		return fmt.Errorf("error saving collection %q: %w", collection.ID, err)
	}
	return nil
}

func collectionKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"Id": attrS(id),
		"Sk": attrS(id),
	}
}
