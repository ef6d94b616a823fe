// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	errEmptySignKey = errors.New("empty sign key")
	errEmptyUserID  = errors.New("empty user id")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT carrying the user
// identifier in the "id" claim and the issue time in "iat". No expiry is
// embedded: the token stays valid until signKey changes.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("0190c8a4-...", "secret")
func GenerateJWTToken(userID string, signKey string) (models.Token, error) {
	if signKey == "" {
		return models.Token{}, errEmptySignKey
	}
	if userID == "" {
		return models.Token{}, errEmptyUserID
	}

	claims := &models.Claims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken verifies the signature of tokenString with
// signKey and extracts the "id" claim.
//
// Only HS256 is accepted; tokens signed with any other algorithm (including
// "none") are rejected. A missing or empty "id" claim is an error.
func ValidateAndParseJWTToken(tokenString, signKey string) (models.Token, error) {
	if signKey == "" {
		return models.Token{}, errEmptySignKey
	}

	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.ID == "" {
		return models.Token{}, errEmptyUserID
	}

	return models.Token{SignedString: tokenString, UserID: claims.ID}, nil
}
