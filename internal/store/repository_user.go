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

type userRepository struct {
	client *Client
	log    *logger.Logger
}

// NewUserRepository returns the UserRepository backed by the users table.
func NewUserRepository(client *Client, log *logger.Logger) UserRepository {
	log.Debug().Msg("user repository created")
	return &userRepository{client: client, log: log}
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	found, err := r.client.getItem(ctx, usersTable, userKey(id), &user)
	if err != nil {
		return nil, fmt.Errorf("error finding user %q: %w", id, err)
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

// FindByEmail resolves a user through the email index. Emails are unique by
// construction; if the index ever returns several rows only the first is
// used.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key("Email").Equal(expression.Value(email))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("error building email query: %w", err)
	}

	var users []models.User
	if err := r.client.query(ctx, &dynamodb.QueryInput{
		TableName:                 r.client.table(usersTable),
		IndexName:                 aws.String(emailIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}, &users); err != nil {
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}

	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *userRepository) ListByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	keys := make([]map[string]types.AttributeValue, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, userKey(id))
	}

	var users []models.User
	if err := r.client.batchGet(ctx, usersTable, keys, &users); err != nil {
		return nil, fmt.Errorf("error batch-getting users: %w", err)
	}
	return users, nil
}

func (r *userRepository) Save(ctx context.Context, user *models.User) error {
	user.SK = user.ID
	if err := r.client.putItem(ctx, usersTable, user); err != nil {
		return fmt.Errorf("error saving user %q: %w", user.ID, err)
	}
	return nil
}

// userKey builds the full primary key of a user item. The sort key repeats
// the id; the attribute exists to keep room for satellite rows later.
func userKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"Id": attrS(id),
		"Sk": attrS(id),
	}
}
