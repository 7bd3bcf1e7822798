package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const schemaMigrationsTable = "schema_migrations"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Migrate aplica, em ordem de nome, os arquivos de migrations ainda não registrados.
// Cada arquivo roda na sua própria transação junto com o registro em schema_migrations.
func Migrate(ctx context.Context, conn Conn) ([]string, error) {
	_, err := conn.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+schemaMigrationsTable+` (
		name       VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar tabela de migrations: %w", err)
	}

	names, err := migrationNames()
	if err != nil {
		return nil, err
	}

	applied := make([]string, 0, len(names))
	for _, name := range names {
		done, err := isApplied(ctx, conn, name)
		if err != nil {
			return applied, err
		}
		if done {
			continue
		}

		script, err := migrationFiles.ReadFile("migrations/" + name)
		if err != nil {
			return applied, fmt.Errorf("erro ao ler migration %s: %w", name, err)
		}

		err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, string(script)); err != nil {
				return err
			}

			query, args, err := psql.Insert(schemaMigrationsTable).Columns("name").Values(name).ToSql()
			if err != nil {
				return err
			}

			_, err = tx.ExecContext(ctx, query, args...)
			return err
		})
		if err != nil {
			return applied, fmt.Errorf("erro ao aplicar migration %s: %w", name, err)
		}

		logrus.WithField("migration", name).Info("postgres: migration aplicada")
		applied = append(applied, name)
	}

	return applied, nil
}

func migrationNames() ([]string, error) {
	entries, err := fs.ReadDir(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("erro ao listar migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}

func isApplied(ctx context.Context, conn Queryer, name string) (bool, error) {
	query, args, err := psql.Select("1").From(schemaMigrationsTable).Where(squirrel.Eq{"name": name}).ToSql()
	if err != nil {
		return false, err
	}

	var exists int
	err = conn.QueryRowContext(ctx, query, args...).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("erro ao consultar migration %s: %w", name, err)
	}

	return true, nil
}
