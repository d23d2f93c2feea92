// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package models

import "encoding/json"

// ToCipherResponse builds the wire shape of cipher, decoding the payload
// variant and the custom field list. Edit and ViewPassword are granted
// unconditionally: visibility filtering happens before a cipher reaches a
// response.
func ToCipherResponse(cipher *Cipher) (CipherResponse, error) {
	resp := CipherResponse{
		Object:         "cipher",
		ID:             cipher.ID,
		Type:           cipher.Type,
		Name:           cipher.Name,
		Notes:          cipher.Notes,
		FolderID:       cipher.FolderID,
		OrganizationID: cipher.OwnerOrganizationID,
		Reprompt:       cipher.Reprompt,
		Edit:           true,
		ViewPassword:   true,
		RevisionDate:   cipher.UpdatedAt,
	}

	if err := DecodeCipherPayload(cipher, &resp); err != nil {
		return CipherResponse{}, err
	}

	if cipher.Fields != "" {
		if err := json.Unmarshal([]byte(cipher.Fields), &resp.Fields); err != nil {
			return CipherResponse{}, err
		}
	}
	if cipher.PasswordHistory != "" {
		if err := json.Unmarshal([]byte(cipher.PasswordHistory), &resp.PasswordHistory); err != nil {
			return CipherResponse{}, err
		}
	}

	return resp, nil
}

// EncodeFields serializes a custom field list for storage; empty lists are
// stored as the empty string.
func EncodeFields(fields []Field) (string, error) {
	if len(fields) == 0 {
		return "", nil
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ToFolderResponse builds the wire shape of folder.
func ToFolderResponse(folder *Folder) FolderResponse {
	return FolderResponse{
		Object:       "folder",
		ID:           folder.ID,
		Name:         folder.Name,
		RevisionDate: folder.UpdatedAt,
	}
}

// ToCollectionResponse builds the wire shape of collection.
func ToCollectionResponse(collection *Collection) CollectionResponse {
	return CollectionResponse{
		Object:         "collection",
		ID:             collection.ID,
		OrganizationID: collection.OrganizationID,
		Name:           collection.Name,
	}
}

// ToProfileOrganizationResponse joins one membership with its organization.
func ToProfileOrganizationResponse(membership *Membership, organization *Organization) ProfileOrganizationResponse {
	return ProfileOrganizationResponse{
		Object:    "profileOrganization",
		ID:        organization.ID,
		Name:      organization.Name,
		Key:       membership.Key,
		Status:    membership.Status,
		Type:      membership.Role,
		AccessAll: membership.AccessAll,
		Enabled:   true,
	}
}

// ToProfileResponse builds the profile of user with its confirmed
// organization memberships.
func ToProfileResponse(user *User, organizations []ProfileOrganizationResponse) ProfileResponse {
	if organizations == nil {
		organizations = []ProfileOrganizationResponse{}
	}
	return ProfileResponse{
		Object:        "profile",
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Key:           user.Key,
		PrivateKey:    user.EncryptedPrivateKey,
		SecurityStamp: user.SecurityStamp,
		Organizations: organizations,
	}
}
