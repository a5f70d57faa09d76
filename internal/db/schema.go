package db

import (
	"context"
	"fmt"

	"tripplanner/internal/utils"

	"go.uber.org/zap"
)

// Tables lists the application tables in creation order.
var Tables = []string{"users", "trips", "budgets", "expenses", "itineraries", "travelers"}

var schemaDDL = map[string]string{
	"users": `
		CREATE TABLE IF NOT EXISTS users (
			id            BIGINT AUTO_INCREMENT PRIMARY KEY,
			name          VARCHAR(120) NOT NULL DEFAULT '',
			username      VARCHAR(60)  NOT NULL,
			email         VARCHAR(160) NOT NULL,
			phone         VARCHAR(40)  NOT NULL DEFAULT '',
			password_hash VARCHAR(100) NOT NULL DEFAULT '',
			role          VARCHAR(20)  NOT NULL DEFAULT 'user',
			status        TINYINT(1)   NOT NULL DEFAULT 1,
			created_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uq_users_username (username),
			UNIQUE KEY uq_users_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	"trips": `
		CREATE TABLE IF NOT EXISTS trips (
			id          BIGINT AUTO_INCREMENT PRIMARY KEY,
			trip_code   CHAR(6)      NOT NULL,
			name        VARCHAR(160) NOT NULL DEFAULT '',
			destination VARCHAR(160) NOT NULL DEFAULT '',
			description TEXT NULL,
			start_date  DATETIME     NOT NULL,
			end_date    DATETIME     NOT NULL,
			status      TINYINT(1)   NOT NULL DEFAULT 1,
			user_id     BIGINT       NOT NULL,
			created_at  DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at  DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			KEY idx_trips_user (user_id),
			KEY idx_trips_code (trip_code),
			CONSTRAINT fk_trips_user FOREIGN KEY (user_id) REFERENCES users(id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	"budgets": `
		CREATE TABLE IF NOT EXISTS budgets (
			id          BIGINT AUTO_INCREMENT PRIMARY KEY,
			trip_id     BIGINT        NOT NULL,
			amount      DECIMAL(14,2) NOT NULL DEFAULT 0,
			description VARCHAR(255)  NULL,
			status      TINYINT(1)    NOT NULL DEFAULT 1,
			CONSTRAINT fk_budgets_trip FOREIGN KEY (trip_id) REFERENCES trips(id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	"expenses": `
		CREATE TABLE IF NOT EXISTS expenses (
			id                   BIGINT AUTO_INCREMENT PRIMARY KEY,
			trip_id              BIGINT        NOT NULL,
			user_id              BIGINT        NOT NULL,
			amount               DECIMAL(14,2) NOT NULL DEFAULT 0,
			paid_on              DATETIME      NULL,
			split_type           VARCHAR(40)   NOT NULL DEFAULT '',
			category             VARCHAR(60)   NULL,
			category_description VARCHAR(255)  NOT NULL DEFAULT '',
			status               TINYINT(1)    NOT NULL DEFAULT 1,
			CONSTRAINT fk_expenses_trip FOREIGN KEY (trip_id) REFERENCES trips(id) ON DELETE CASCADE,
			CONSTRAINT fk_expenses_user FOREIGN KEY (user_id) REFERENCES users(id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	"itineraries": `
		CREATE TABLE IF NOT EXISTS itineraries (
			id      BIGINT AUTO_INCREMENT PRIMARY KEY,
			trip_id BIGINT     NOT NULL,
			date    DATETIME   NOT NULL,
			notes   TEXT NULL,
			status  TINYINT(1) NOT NULL DEFAULT 1,
			KEY idx_itineraries_trip_date (trip_id, date),
			CONSTRAINT fk_itineraries_trip FOREIGN KEY (trip_id) REFERENCES trips(id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	"travelers": `
		CREATE TABLE IF NOT EXISTS travelers (
			id      BIGINT AUTO_INCREMENT PRIMARY KEY,
			trip_id BIGINT     NOT NULL,
			user_id BIGINT     NOT NULL,
			status  TINYINT(1) NOT NULL DEFAULT 1,
			CONSTRAINT fk_travelers_trip FOREIGN KEY (trip_id) REFERENCES trips(id) ON DELETE CASCADE,
			CONSTRAINT fk_travelers_user FOREIGN KEY (user_id) REFERENCES users(id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates any missing application table.
func EnsureSchema(ctx context.Context, q DBTX) error {
	log := utils.Logger()
	for _, table := range Tables {
		if HasTable(ctx, q, table) {
			continue
		}
		if _, err := q.ExecContext(ctx, schemaDDL[table]); err != nil {
			return fmt.Errorf("create table %s: %w", table, err)
		}
		log.Info("created table", zap.String("table", table))
	}
	return nil
}
