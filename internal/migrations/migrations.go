// Package migrations holds the ordered schema history for the service.
// Every migration has a working rollback so the schema can walk forward and
// backward between any two revisions.
package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// Run applies all pending migrations.
func Run(db *gorm.DB) error {
	return gormigrate.New(db, gormigrate.DefaultOptions, All()).Migrate()
}

// RollbackLast reverts the most recent applied migration.
func RollbackLast(db *gorm.DB) error {
	return gormigrate.New(db, gormigrate.DefaultOptions, All()).RollbackLast()
}

func All() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "0001_create_posts_table",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec(`CREATE TABLE posts (
					id SERIAL PRIMARY KEY,
					title VARCHAR NOT NULL
				)`).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Exec(`DROP TABLE posts`).Error
			},
		},
		{
			ID: "0002_add_content_to_posts",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec(`ALTER TABLE posts ADD COLUMN content VARCHAR NOT NULL`).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Exec(`ALTER TABLE posts DROP COLUMN content`).Error
			},
		},
		{
			ID: "0003_create_users_table",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec(`CREATE TABLE users (
					id SERIAL PRIMARY KEY,
					email VARCHAR NOT NULL UNIQUE,
					password VARCHAR NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT now()
				)`).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Exec(`DROP TABLE users`).Error
			},
		},
		{
			ID: "0004_add_owner_to_posts",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.Exec(`ALTER TABLE posts ADD COLUMN owner_id INTEGER NOT NULL`).Error; err != nil {
					return err
				}
				return tx.Exec(`ALTER TABLE posts ADD CONSTRAINT posts_users_fk
					FOREIGN KEY (owner_id) REFERENCES users (id) ON DELETE CASCADE`).Error
			},
			Rollback: func(tx *gorm.DB) error {
				if err := tx.Exec(`ALTER TABLE posts DROP CONSTRAINT posts_users_fk`).Error; err != nil {
					return err
				}
				return tx.Exec(`ALTER TABLE posts DROP COLUMN owner_id`).Error
			},
		},
		{
			ID: "0005_add_published_created_at_to_posts",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.Exec(`ALTER TABLE posts ADD COLUMN published BOOLEAN NOT NULL DEFAULT TRUE`).Error; err != nil {
					return err
				}
				return tx.Exec(`ALTER TABLE posts ADD COLUMN created_at TIMESTAMPTZ NOT NULL DEFAULT now()`).Error
			},
			Rollback: func(tx *gorm.DB) error {
				if err := tx.Exec(`ALTER TABLE posts DROP COLUMN published`).Error; err != nil {
					return err
				}
				return tx.Exec(`ALTER TABLE posts DROP COLUMN created_at`).Error
			},
		},
		{
			ID: "0006_create_votes_table",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec(`CREATE TABLE votes (
					post_id INTEGER NOT NULL REFERENCES posts (id) ON DELETE CASCADE,
					user_id INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
					PRIMARY KEY (post_id, user_id)
				)`).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Exec(`DROP TABLE votes`).Error
			},
		},
		{
			ID: "0007_add_phone_number_to_users",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec(`ALTER TABLE users ADD COLUMN phone_number VARCHAR`).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Exec(`ALTER TABLE users DROP COLUMN phone_number`).Error
			},
		},
	}
}
