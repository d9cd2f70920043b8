package schema

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// statements are ordered so that referenced tables exist before the tables
// that point at them. All of them are idempotent.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS shops (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(64) NOT NULL,
		slug VARCHAR(64) NOT NULL,
		image VARCHAR(256) NOT NULL DEFAULT '',
		PRIMARY KEY (id),
		UNIQUE KEY uq_shops_name (name),
		UNIQUE KEY uq_shops_slug (slug)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS categories (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(64) NOT NULL,
		image VARCHAR(256) NOT NULL DEFAULT '',
		PRIMARY KEY (id),
		UNIQUE KEY uq_categories_name (name)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS products (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(128) NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		image VARCHAR(256) NOT NULL DEFAULT '',
		description TEXT NOT NULL,
		shop_id BIGINT UNSIGNED NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY uq_products_name_shop (name, shop_id),
		CONSTRAINT fk_products_shop FOREIGN KEY (shop_id)
			REFERENCES shops (id) ON DELETE CASCADE
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS product_category (
		product_id BIGINT UNSIGNED NOT NULL,
		category_id BIGINT UNSIGNED NOT NULL,
		PRIMARY KEY (product_id, category_id),
		CONSTRAINT fk_product_category_product FOREIGN KEY (product_id)
			REFERENCES products (id) ON DELETE CASCADE,
		CONSTRAINT fk_product_category_category FOREIGN KEY (category_id)
			REFERENCES categories (id) ON DELETE CASCADE
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS shop_reviews (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		username VARCHAR(64) NOT NULL,
		text TEXT NOT NULL,
		shop_id BIGINT UNSIGNED NOT NULL,
		PRIMARY KEY (id),
		CONSTRAINT fk_shop_reviews_shop FOREIGN KEY (shop_id)
			REFERENCES shops (id) ON DELETE CASCADE
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		username VARCHAR(36) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(128) NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_username (username),
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB`,
}

// Init creates the storefront tables if they do not exist yet. It must run
// to completion before any repository is used; the caller treats an error as
// fatal.
func Init(ctx context.Context, conn *sqlx.DB) error {
	for _, stmt := range statements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
