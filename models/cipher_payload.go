// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package models

import (
	"encoding/json"
	"fmt"
)

// LoginData is the payload variant of CipherTypeLogin. All values are
// client-side ciphertext.
type LoginData struct {
	URI      string `json:"uri,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	TOTP     string `json:"totp,omitempty"`
}

// SecureNoteData is the payload variant of CipherTypeSecureNote.
type SecureNoteData struct {
	Type int `json:"type"`
}

// CardData is the payload variant of CipherTypeCard.
type CardData struct {
	CardholderName string `json:"cardholderName,omitempty"`
	Brand          string `json:"brand,omitempty"`
	Number         string `json:"number,omitempty"`
	ExpMonth       string `json:"expMonth,omitempty"`
	ExpYear        string `json:"expYear,omitempty"`
	Code           string `json:"code,omitempty"`
}

// IdentityData is the payload variant of CipherTypeIdentity.
type IdentityData struct {
	Title      string `json:"title,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	MiddleName string `json:"middleName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Address1   string `json:"address1,omitempty"`
	Address2   string `json:"address2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
	Company    string `json:"company,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	SSN        string `json:"ssn,omitempty"`
	Username   string `json:"username,omitempty"`
}

// EncodeCipherPayload serializes the payload variant selected by req.Type.
// The switch is exhaustive over the four known discriminants; anything else
// is an error, never a default.
func EncodeCipherPayload(req *CipherRequest) (string, error) {
	var v any
	switch req.Type {
	case CipherTypeLogin:
		v = req.Login
	case CipherTypeSecureNote:
		v = req.SecureNote
	case CipherTypeCard:
		v = req.Card
	case CipherTypeIdentity:
		v = req.Identity
	default:
		return "", fmt.Errorf("unknown cipher type %d", req.Type)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("error encoding cipher payload: %w", err)
	}
	return string(data), nil
}

// DecodeCipherPayload attaches the decoded payload variant of cipher to resp,
// switching exhaustively on the stored discriminant.
func DecodeCipherPayload(cipher *Cipher, resp *CipherResponse) error {
	switch cipher.Type {
	case CipherTypeLogin:
		resp.Login = &LoginData{}
		return json.Unmarshal([]byte(cipher.Data), resp.Login)
	case CipherTypeSecureNote:
		resp.SecureNote = &SecureNoteData{}
		return json.Unmarshal([]byte(cipher.Data), resp.SecureNote)
	case CipherTypeCard:
		resp.Card = &CardData{}
		return json.Unmarshal([]byte(cipher.Data), resp.Card)
	case CipherTypeIdentity:
		resp.Identity = &IdentityData{}
		return json.Unmarshal([]byte(cipher.Data), resp.Identity)
	default:
		return fmt.Errorf("unknown cipher type %d", cipher.Type)
	}
}
