package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users(
	id SERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	email VARCHAR(150) UNIQUE NOT NULL,
	age INT,
	phone VARCHAR(15),
	address TEXT,
	created_at TIMESTAMP DEFAULT NOW(),
	updated_at TIMESTAMP DEFAULT NOW()
)`

const createTodosTable = `
CREATE TABLE IF NOT EXISTS todos(
	id SERIAL PRIMARY KEY,
	user_id INT REFERENCES users(id) ON DELETE CASCADE,
	title VARCHAR(200),
	description TEXT,
	completed BOOLEAN DEFAULT false,
	due_date DATE,
	created_at TIMESTAMP DEFAULT NOW(),
	updated_at TIMESTAMP DEFAULT NOW()
)`

// Bootstrap creates the tables if they are missing. Order matters: todos references users.
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	for _, statement := range []struct {
		table string
		ddl   string
	}{
		{table: "users", ddl: createUsersTable},
		{table: "todos", ddl: createTodosTable},
	} {
		if _, err := db.ExecContext(ctx, statement.ddl); err != nil {
			return fmt.Errorf("failed to create table %s: %w", statement.table, err)
		}

		log.Debug().Str("table", statement.table).Msg("Table ensured")
	}

	return nil
}
