// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package models

import "time"

// Folder is a per-user grouping of ciphers. The primary key is (UserID, ID);
// folders are never shared and never owned by an organization.
type Folder struct {
	ID     string `dynamodbav:"Id" json:"id"`
	UserID string `dynamodbav:"UserId" json:"-"`

	Name string `dynamodbav:"Name" json:"name"`

	CreatedAt time.Time `dynamodbav:"CreatedAt" json:"-"`
	UpdatedAt time.Time `dynamodbav:"UpdatedAt" json:"revisionDate"`
}
