// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-flight-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildCreateUserQuery(t *testing.T) {
	at := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	user := models.User{UserID: "id", Username: "alice", PasswordHash: "hash", CreatedAt: at}

	tests := []struct {
		name   string
		format sq.PlaceholderFormat
		want   string
	}{
		{
			name:   "postgres",
			format: sq.Dollar,
			want:   "INSERT INTO users (id,username,password_hash,created_at) VALUES ($1,$2,$3,$4) RETURNING id, username, password_hash",
		},
		{
			name:   "sqlite",
			format: sq.Question,
			want:   "INSERT INTO users (id,username,password_hash,created_at) VALUES (?,?,?,?) RETURNING id, username, password_hash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildCreateUserQuery(tt.format, user)
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{"id", "alice", "hash", at}, args)
		})
	}
}

func Test_buildFindUserByUsernameQuery(t *testing.T) {
	query, args, err := buildFindUserByUsernameQuery(sq.Dollar, "alice")

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, username, password_hash, created_at FROM users WHERE username = $1 LIMIT 1", query)
	assert.Equal(t, []any{"alice"}, args)
}
