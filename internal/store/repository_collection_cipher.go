// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/clevercastle/gowarden/internal/logger"
	"github.com/clevercastle/gowarden/models"
)

type collectionCipherRepository struct {
	client *Client
	log    *logger.Logger
}

// NewCollectionCipherRepository returns the CollectionCipherRepository
// backed by the collection_ciphers link table, partitioned by cipher id.
func NewCollectionCipherRepository(client *Client, log *logger.Logger) CollectionCipherRepository {
	log.Debug().Msg("collection cipher repository created")
	return &collectionCipherRepository{client: client, log: log}
}

func (r *collectionCipherRepository) ListByCipher(ctx context.Context, cipherID string) ([]models.CollectionCipher, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key("CipherId").Equal(expression.Value(cipherID))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("error building collection cipher query: %w", err)
	}

	var links []models.CollectionCipher
	if err := r.client.query(ctx, &dynamodb.QueryInput{
		TableName:                 r.client.table(collectionCiphersTable),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}, &links); err != nil {
		return nil, fmt.Errorf("error listing collections of cipher %q: %w", cipherID, err)
	}
	return links, nil
}

// Replace diffs the stored link set against collectionIDs and applies only
// the changes, so a repeated call with the same list is a no-op.
func (r *collectionCipherRepository) Replace(ctx context.Context, cipherID string, collectionIDs []string) error {
	existing, err := r.ListByCipher(ctx, cipherID)
	if err != nil {
		return err
	}

	wanted := make(map[string]bool, len(collectionIDs))
	for _, id := range collectionIDs {
		wanted[id] = true
	}

	for _, link := range existing {
		if wanted[link.CollectionID] {
			delete(wanted, link.CollectionID)
			continue
		}
		if err := r.client.deleteItem(ctx, collectionCiphersTable, collectionCipherKey(cipherID, link.CollectionID)); err != nil {
			return fmt.Errorf("error unlinking cipher %q from collection %q: %w", cipherID, link.CollectionID, err)
		}
	}

	for collectionID := range wanted {
		link := models.CollectionCipher{CipherID: cipherID, CollectionID: collectionID}
		if err := r.client.putItem(ctx, collectionCiphersTable, &link); err != nil {
			return fmt.Errorf("error linking cipher %q to collection %q: %w", cipherID, collectionID, err)
		}
	}

	return nil
}

func collectionCipherKey(cipherID, collectionID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"CipherId":     attrS(cipherID),
		"CollectionId": attrS(collectionID),
	}
}
