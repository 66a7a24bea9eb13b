package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
)

type migration struct {
	version string
	sql     string
}

var migrations = []migration{
	{
		version: "000_create_body_tests",
		sql: `
			CREATE TABLE IF NOT EXISTS body_tests (
				id                 CHAR(36) PRIMARY KEY,
				user_id            VARCHAR(64) NOT NULL,
				measurement_date   DATE NOT NULL,
				weight             DOUBLE NOT NULL,
				height             DOUBLE NOT NULL,
				age                DOUBLE NOT NULL,
				gender             VARCHAR(10) NOT NULL,
				measurement_method VARCHAR(30) NOT NULL,
				skinfolds          JSON,
				bio_impedance      JSON,
				manual_body_fat    DOUBLE,
				training_level     VARCHAR(20) NOT NULL,
				activity_level     VARCHAR(30) NOT NULL,
				body_fat           DOUBLE NOT NULL,
				lean_body_mass     DOUBLE NOT NULL,
				fat_mass           DOUBLE NOT NULL,
				muscle_mass        DOUBLE NOT NULL,
				total_body_water   DOUBLE NOT NULL,
				bmr                DOUBLE NOT NULL,
				tdee               DOUBLE NOT NULL,
				bench_press_1rm    DOUBLE NOT NULL,
				squat_1rm          DOUBLE NOT NULL,
				deadlift_1rm       DOUBLE NOT NULL,
				wilks_score        DOUBLE NOT NULL,
				notes              TEXT,
				created_at         DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at         DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
				UNIQUE KEY uq_body_tests_user_day (user_id, measurement_date)
			)`,
	},
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    VARCHAR(255) PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		applied, err := isMigrationApplied(ctx, db, m.version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		if err := executeMigration(ctx, db, m); err != nil {
			return err
		}

		log.Printf("applied migration: %s", m.version)
	}

	return nil
}

func isMigrationApplied(ctx context.Context, db *sql.DB, version string) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM schema_migrations WHERE version = ?",
		version,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check migration %s: %w", version, err)
	}
	return count > 0, nil
}

func executeMigration(ctx context.Context, db *sql.DB, m migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", m.version, err)
	}

	for _, stmt := range strings.Split(m.sql, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to execute migration %s: %w", m.version, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version) VALUES (?)",
		m.version,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %s: %w", m.version, err)
	}

	return tx.Commit()
}
