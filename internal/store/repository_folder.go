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

type folderRepository struct {
	client *Client
	log    *logger.Logger
}

// NewFolderRepository returns the FolderRepository backed by the folders
// table, partitioned by user id.
func NewFolderRepository(client *Client, log *logger.Logger) FolderRepository {
	log.Debug().Msg("folder repository created")
	return &folderRepository{client: client, log: log}
}

func (r *folderRepository) FindByID(ctx context.Context, userID, id string) (*models.Folder, error) {
	var folder models.Folder
	found, err := r.client.getItem(ctx, foldersTable, folderKey(userID, id), &folder)
	if err != nil {
		return nil, fmt.Errorf("error finding folder %q: %w", id, err)
	}
	if !found {
		return nil, nil
	}
	return &folder, nil
}

func (r *folderRepository) ListByUser(ctx context.Context, userID string) ([]models.Folder, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key("UserId").Equal(expression.Value(userID))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("error building folder query: %w", err)
	}

	var folders []models.Folder
	if err := r.client.query(ctx, &dynamodb.QueryInput{
		TableName:                 r.client.table(foldersTable),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}, &folders); err != nil {
		return nil, fmt.Errorf("error listing folders of user %q: %w", userID, err)
	}
	return folders, nil
}

func (r *folderRepository) Save(ctx context.Context, folder *models.Folder) error {
	if err := r.client.putItem(ctx, foldersTable, folder); err != nil {
		return fmt.Errorf("error saving folder %q: %w", folder.ID, err)
	}
	return nil
}

func (r *folderRepository) Delete(ctx context.Context, userID, id string) error {
	if err := r.client.deleteItem(ctx, foldersTable, folderKey(userID, id)); err != nil {
		return fmt.Errorf("error deleting folder %q: %w", id, err)
	}
	return nil
}

func folderKey(userID, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"UserId": attrS(userID),
		"Id":     attrS(id),
	}
}
