// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package models

import "time"

// Organization is a shared vault scope. The primary key is (ID, SK) with SK
// always equal to ID.
type Organization struct {
	ID string `dynamodbav:"Id" json:"id"`
	SK string `dynamodbav:"Sk" json:"-"`

	Name         string `dynamodbav:"Name" json:"name"`
	BillingEmail string `dynamodbav:"BillingEmail" json:"billingEmail"`

	// EncryptedPrivateKey and PublicKey form the organization key pair; the
	// private half is wrapped client-side with the organization key.
	EncryptedPrivateKey string `dynamodbav:"EncryptedPrivateKey" json:"-"`
	PublicKey           string `dynamodbav:"PublicKey" json:"-"`

	CreatedAt time.Time `dynamodbav:"CreatedAt" json:"-"`
	UpdatedAt time.Time `dynamodbav:"UpdatedAt" json:"-"`
}

// Membership roles, ordered by privilege.
type MembershipRole int

const (
	MembershipRoleOwner   MembershipRole = 0
	MembershipRoleAdmin   MembershipRole = 1
	MembershipRoleUser    MembershipRole = 2
	MembershipRoleManager MembershipRole = 3
)

// Membership confirmation states. The normal flow is monotonic:
// Invited → Accepted → Confirmed. Only confirmed memberships grant
// visibility into organization data.
type MembershipStatus int

const (
	MembershipStatusInvited   MembershipStatus = 0
	MembershipStatusAccepted  MembershipStatus = 1
	MembershipStatusConfirmed MembershipStatus = 2
)

// Membership is the (user, organization) association. The primary key is
// (UserID, OrganizationID); a secondary index keyed by OrganizationID serves
// the reverse lookup. The pair is unique by schema; a duplicate confirmed
// row is a data-integrity violation.
type Membership struct {
	UserID         string `dynamodbav:"UserId" json:"userId"`
	OrganizationID string `dynamodbav:"OrganizationId" json:"organizationId"`

	Role   MembershipRole   `dynamodbav:"Role" json:"type"`
	Status MembershipStatus `dynamodbav:"Status" json:"status"`

	// AccessAll grants implicit visibility into every collection of the
	// organization, bypassing per-collection grants.
	AccessAll bool `dynamodbav:"AccessAll" json:"accessAll"`

	// Key is the organization symmetric key wrapped with the member's
	// public key.
	Key string `dynamodbav:"Key" json:"-"`

	CreatedAt time.Time `dynamodbav:"CreatedAt" json:"-"`
	UpdatedAt time.Time `dynamodbav:"UpdatedAt" json:"-"`
}
