// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The CipherShare Authors

package store

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciphershare/go-cipher-share/models"
)

func Test_buildSearchUsersQuery_SQLContainsParts(t *testing.T) {
	selfID := uuid.New()

	tests := []struct {
		name       string
		req        models.SearchUsersRequest
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name: "success: first page with default limit",
			req:  models.SearchUsersRequest{Query: "alice", Page: 1, Limit: models.DefaultPageLimit},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				// query structure
				require.Contains(t, q, "select")
				require.Contains(t, q, "from users")
				require.Contains(t, q, "where")
				require.Contains(t, q, "email ilike $1")
				require.Contains(t, q, "public_key is not null")
				require.Contains(t, q, "id <> $2")
				require.Contains(t, q, "order by email")
				require.Contains(t, q, "limit 10")
				require.Contains(t, q, "offset 0")

				// selected columns
				for _, col := range []string{"id", "name", "email", "public_key"} {
					require.Contains(t, q, col, "query should contain column %q", col)
				}

				// args: the substring pattern followed by the excluded user id
				require.Len(t, args, 2)
				assert.Equal(t, "%alice%", args[0])
				assert.Equal(t, selfID, args[1])
			},
		},
		{
			name: "success: second page shifts the offset",
			req:  models.SearchUsersRequest{Query: "bob", Page: 2, Limit: 25},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "limit 25")
				require.Contains(t, q, "offset 25")

				require.Len(t, args, 2)
				assert.Equal(t, "%bob%", args[0])
			},
		},
		{
			name: "success: empty query matches every email",
			req:  models.SearchUsersRequest{Query: "", Page: 1, Limit: models.DefaultPageLimit},
			checkQuery: func(t *testing.T, query string, args []any) {
				// An empty query string produces the %% pattern, which
				// matches everything; filtering decisions stay at the
				// service layer.
				require.Len(t, args, 2)
				assert.Equal(t, "%%", args[0])
			},
		},
		{
			name: "success: idempotent for same request",
			req:  models.SearchUsersRequest{Query: "carol", Page: 3, Limit: 5},
			checkQuery: func(t *testing.T, query string, args []any) {
				query2, args2, err2 := buildSearchUsersQuery(models.SearchUsersRequest{Query: "carol", Page: 3, Limit: 5}, selfID)
				require.NoError(t, err2)
				require.Equal(t, query, query2)
				require.Equal(t, args, args2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSearchUsersQuery(tt.req, selfID)

			require.NoError(t, err)
			require.NotEmpty(t, query)
			require.NotNil(t, args)

			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildCountSearchUsersQuery_SQLContainsParts(t *testing.T) {
	selfID := uuid.New()
	req := models.SearchUsersRequest{Query: "alice", Page: 4, Limit: 10}

	query, args, err := buildCountSearchUsersQuery(req, selfID)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "count(*)")
	require.Contains(t, q, "from users")
	require.Contains(t, q, "email ilike $1")
	require.Contains(t, q, "public_key is not null")
	require.Contains(t, q, "id <> $2")

	// the count ignores pagination: same filters, no LIMIT/OFFSET
	require.NotContains(t, q, "limit")
	require.NotContains(t, q, "offset")

	require.Len(t, args, 2)
	assert.Equal(t, "%alice%", args[0])
	assert.Equal(t, selfID, args[1])
}

func Test_buildSentFilesQuery_SQLContainsParts(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name       string
		req        models.ListRequest
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name: "success: joins resolve the recipient email",
			req:  models.ListRequest{Page: 1, Limit: models.DefaultPageLimit},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "from files f")
				require.Contains(t, q, "join shared_links sl on sl.file_id = f.id")
				require.Contains(t, q, "join users u on u.id = sl.recipient_user_id")
				require.Contains(t, q, "f.user_id = $1")
				require.Contains(t, q, "order by sl.created_at desc")

				// selected columns with their aliases
				require.Contains(t, q, "f.id as file_id")
				require.Contains(t, q, "f.file_name")
				require.Contains(t, q, "u.email as recipient_email")
				require.Contains(t, q, "sl.expiration_date")
				require.Contains(t, q, "sl.created_at")

				require.Len(t, args, 1)
				assert.Equal(t, ownerID, args[0])
			},
		},
		{
			name: "success: pagination lands in LIMIT and OFFSET",
			req:  models.ListRequest{Page: 3, Limit: 20},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "limit 20")
				require.Contains(t, q, "offset 40")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSentFilesQuery(ownerID, tt.req)

			require.NoError(t, err)
			require.NotEmpty(t, query)
			require.NotNil(t, args)

			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildReceivedFilesQuery_SQLContainsParts(t *testing.T) {
	recipientID := uuid.New()

	tests := []struct {
		name       string
		req        models.ListRequest
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name: "success: joins resolve the sender email through the file owner",
			req:  models.ListRequest{Page: 1, Limit: models.DefaultPageLimit},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "from shared_links sl")
				require.Contains(t, q, "join files f on f.id = sl.file_id")
				require.Contains(t, q, "join users u on u.id = f.user_id")
				require.Contains(t, q, "sl.recipient_user_id = $1")
				require.Contains(t, q, "order by sl.created_at desc")

				// the listing returns the link id, not the file id
				require.Contains(t, q, "sl.id as link_id")
				require.Contains(t, q, "u.email as sender_email")

				// expired shares stay visible: no expiration filter here
				require.NotContains(t, q, "expiration_date >")
				require.NotContains(t, q, "now()")

				require.Len(t, args, 1)
				assert.Equal(t, recipientID, args[0])
			},
		},
		{
			name: "success: pagination lands in LIMIT and OFFSET",
			req:  models.ListRequest{Page: 2, Limit: 15},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "limit 15")
				require.Contains(t, q, "offset 15")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildReceivedFilesQuery(recipientID, tt.req)

			require.NoError(t, err)
			require.NotEmpty(t, query)
			require.NotNil(t, args)

			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildCountQueries_SQLContainsParts(t *testing.T) {
	id := uuid.New()

	t.Run("sent count joins links to count per share", func(t *testing.T) {
		query, args, err := buildCountSentFilesQuery(id)
		require.NoError(t, err)

		q := strings.ToLower(query)
		require.Contains(t, q, "count(*)")
		require.Contains(t, q, "from files f")
		require.Contains(t, q, "join shared_links sl on sl.file_id = f.id")
		require.Contains(t, q, "f.user_id = $1")

		require.Len(t, args, 1)
		assert.Equal(t, id, args[0])
	})

	t.Run("received count needs no join", func(t *testing.T) {
		query, args, err := buildCountReceivedFilesQuery(id)
		require.NoError(t, err)

		q := strings.ToLower(query)
		require.Contains(t, q, "count(*)")
		require.Contains(t, q, "from shared_links sl")
		require.Contains(t, q, "sl.recipient_user_id = $1")
		require.NotContains(t, q, "join")

		require.Len(t, args, 1)
		assert.Equal(t, id, args[0])
	})
}
