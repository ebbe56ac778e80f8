// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The CipherShare Authors

package store

const (
	createClientIdentitiesTable = `
		CREATE TABLE IF NOT EXISTS identities (
			email              TEXT PRIMARY KEY,
			user_id            TEXT NOT NULL,
			name               TEXT NOT NULL,
			public_key         TEXT NOT NULL,
			sealed_private_key BLOB NOT NULL,
			key_salt           BLOB NOT NULL,
			updated_at         TIMESTAMP NOT NULL
		);`

	createClientDownloadsTable = `
		CREATE TABLE IF NOT EXISTS downloads (
			id            TEXT PRIMARY KEY,
			user_id       TEXT NOT NULL,
			link_id       TEXT NOT NULL,
			file_name     TEXT NOT NULL,
			file_size     INTEGER NOT NULL,
			sender_email  TEXT NOT NULL,
			checksum      TEXT NOT NULL,
			saved_to      TEXT NOT NULL,
			downloaded_at TIMESTAMP NOT NULL
		);`

	saveIdentity = `
		INSERT INTO identities (
			email,
			user_id,
			name,
			public_key,
			sealed_private_key,
			key_salt,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT(email) DO UPDATE SET
			user_id            = excluded.user_id,
			name               = excluded.name,
			public_key         = excluded.public_key,
			sealed_private_key = excluded.sealed_private_key,
			key_salt           = excluded.key_salt,
			updated_at         = excluded.updated_at;`

	getIdentity = `
		SELECT
			email,
			user_id,
			name,
			public_key,
			sealed_private_key,
			key_salt,
			updated_at
		FROM identities
		WHERE email = $1;`

	deleteIdentity = `
		DELETE FROM identities
		WHERE email = $1;`

	recordDownload = `
		INSERT INTO downloads (
			id,
			user_id,
			link_id,
			file_name,
			file_size,
			sender_email,
			checksum,
			saved_to,
			downloaded_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

	listDownloads = `
		SELECT
			id,
			user_id,
			link_id,
			file_name,
			file_size,
			sender_email,
			checksum,
			saved_to,
			downloaded_at
		FROM downloads
		WHERE user_id = $1
		ORDER BY downloaded_at DESC;`
)
