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

type cipherRepository struct {
	client *Client
	log    *logger.Logger
}

// NewCipherRepository returns the CipherRepository backed by the ciphers
// table, partitioned by owner id.
func NewCipherRepository(client *Client, log *logger.Logger) CipherRepository {
	log.Debug().Msg("cipher repository created")
	return &cipherRepository{client: client, log: log}
}

func (r *cipherRepository) FindByID(ctx context.Context, ownerID, id string) (*models.Cipher, error) {
	var cipher models.Cipher
	found, err := r.client.getItem(ctx, ciphersTable, cipherKey(ownerID, id), &cipher)
	if err != nil {
		return nil, fmt.Errorf("error finding cipher %q: %w", id, err)
	}
	if !found {
		return nil, nil
	}
	return &cipher, nil
}

func (r *cipherRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Cipher, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key("OwnerId").Equal(expression.Value(ownerID))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("error building cipher query: %w", err)
	}

	var ciphers []models.Cipher
	if err := r.client.query(ctx, &dynamodb.QueryInput{
		TableName:                 r.client.table(ciphersTable),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}, &ciphers); err != nil {
		return nil, fmt.Errorf("error listing ciphers of owner %q: %w", ownerID, err)
	}
	return ciphers, nil
}

// Save derives the partition key from the single set owner reference and
// upserts the item.
func (r *cipherRepository) Save(ctx context.Context, cipher *models.Cipher) error {
	owner, err := cipher.Owner()
	if err != nil {
		return fmt.Errorf("error saving cipher %q: %w", cipher.ID, err)
	}
	cipher.OwnerID = owner

	if err := r.client.putItem(ctx, ciphersTable, cipher); err != nil {
		return fmt.Errorf("error saving cipher %q: %w", cipher.ID, err)
	}
	return nil
}

func (r *cipherRepository) Delete(ctx context.Context, ownerID, id string) error {
	if err := r.client.deleteItem(ctx, ciphersTable, cipherKey(ownerID, id)); err != nil {
		return fmt.Errorf("error deleting cipher %q: %w", id, err)
	}
	return nil
}

func cipherKey(ownerID, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"OwnerId": attrS(ownerID),
		"Id":      attrS(id),
	}
}
