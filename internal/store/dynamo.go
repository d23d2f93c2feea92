// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

// Package store implements the persistence layer: one thin DynamoDB client
// exposing the store primitives (point lookup, indexed range query,
// batch-get, idempotent upsert, idempotent delete) and a typed repository
// per entity on top of it. Repositories carry no business logic and report
// absence as nil, never as an error.
package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/clevercastle/gowarden/internal/config"
	"github.com/clevercastle/gowarden/internal/logger"
)

// Table names, prefixed at runtime with the configured table prefix.
const (
	usersTable             = "users"
	ciphersTable           = "ciphers"
	foldersTable           = "folders"
	organizationsTable     = "organizations"
	membershipsTable       = "memberships"
	collectionsTable       = "collections"
	collectionCiphersTable = "collection_ciphers"
	userCollectionsTable   = "user_collections"
)

// Secondary index names.
const (
	emailIndex        = "email-index"
	organizationIndex = "organization-index"
)

// batchGetLimit is the DynamoDB cap on keys per BatchGetItem call.
const batchGetLimit = 100

// dynamoAPI is the slice of the DynamoDB client surface the store depends
// on; tests substitute a fake.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// Client wraps the DynamoDB API behind the store primitives. Safe for
// concurrent use; all state is read-only after construction.
type Client struct {
	api         dynamoAPI
	tablePrefix string
}

// NewClient builds a *Client from the dynamo configuration section.
//
// The AWS configuration is resolved through the default chain; a configured
// region, static credential pair, or endpoint override (local emulator)
// takes precedence over the chain.
func NewClient(ctx context.Context, cfg config.Dynamo, log *logger.Logger) (*Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	api := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	log.Debug().
		Str("region", cfg.Region).
		Str("endpoint", cfg.Endpoint).
		Str("tablePrefix", cfg.TablePrefix).
		Msg("dynamodb client created")

	return &Client{api: api, tablePrefix: cfg.TablePrefix}, nil
}

// table returns the fully prefixed table name.
func (c *Client) table(name string) *string {
	return aws.String(c.tablePrefix + name)
}

// attrS wraps a string as a DynamoDB attribute value.
func attrS(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

// getItem performs a point lookup by full primary key. Returns false when
// the item is absent; out is only written on a hit.
func (c *Client) getItem(ctx context.Context, table string, key map[string]types.AttributeValue, out any) (bool, error) {
	resp, err := c.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: c.table(table),
		Key:       key,
	})
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStoreRequest, err)
	}
	if len(resp.Item) == 0 {
		return false, nil
	}

	if err := attributevalue.UnmarshalMap(resp.Item, out); err != nil {
		return false, fmt.Errorf("%w: %w", ErrUnmarshalItem, err)
	}
	return true, nil
}

// query runs an indexed range query, following pagination until exhaustion,
// and unmarshals all items into out (a pointer to a slice).
func (c *Client) query(ctx context.Context, in *dynamodb.QueryInput, out any) error {
	var items []map[string]types.AttributeValue
	for {
		resp, err := c.api.Query(ctx, in)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrStoreRequest, err)
		}
		items = append(items, resp.Items...)

		if len(resp.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = resp.LastEvaluatedKey
	}

	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return fmt.Errorf("%w: %w", ErrUnmarshalItem, err)
	}
	return nil
}

// batchGet fetches the items named by keys, re-queueing unprocessed keys
// until the store has answered for every one. Items arrive in no particular
// order; absent keys are simply missing from the result.
func (c *Client) batchGet(ctx context.Context, table string, keys []map[string]types.AttributeValue, out any) error {
	if len(keys) == 0 {
		return nil
	}

	tableName := *c.table(table)
	var items []map[string]types.AttributeValue

	pending := keys
	for len(pending) > 0 {
		chunk := pending
		if len(chunk) > batchGetLimit {
			chunk = pending[:batchGetLimit]
		}
		pending = pending[len(chunk):]

		resp, err := c.api.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
			RequestItems: map[string]types.KeysAndAttributes{
				tableName: {Keys: chunk},
			},
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrStoreRequest, err)
		}

		items = append(items, resp.Responses[tableName]...)
		if unprocessed, ok := resp.UnprocessedKeys[tableName]; ok && len(unprocessed.Keys) > 0 {
			pending = append(pending, unprocessed.Keys...)
		}
	}

	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return fmt.Errorf("%w: %w", ErrUnmarshalItem, err)
	}
	return nil
}

// putItem upserts one item, idempotent by primary key. The backing store
// resolves racing writers last-write-wins; there is no optimistic
// concurrency token.
func (c *Client) putItem(ctx context.Context, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMarshalItem, err)
	}

	if _, err := c.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: c.table(table),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreRequest, err)
	}
	return nil
}

// deleteItem removes one item by full primary key, idempotent: deleting an
// absent key succeeds.
func (c *Client) deleteItem(ctx context.Context, table string, key map[string]types.AttributeValue) error {
	if _, err := c.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: c.table(table),
		Key:       key,
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreRequest, err)
	}
	return nil
}
