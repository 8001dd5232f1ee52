// Package sqlite provides a SQLite-backed tool catalog.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/utility.tools/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/utility.tools/internal/services/catalog"
	"github.com/louisbranch/utility.tools/internal/services/catalog/storage"
	"github.com/louisbranch/utility.tools/internal/services/catalog/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists catalog entries in SQLite.
type Store struct {
	sqlDB *sql.DB
	clock func() time.Time
}

var _ storage.Store = (*Store)(nil)

// Open opens a SQLite catalog store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, clock: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateTool inserts a new tool and fails with storage.ErrAlreadyExists when
// the id is taken.
func (s *Store) CreateTool(ctx context.Context, tool catalog.Tool) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	tool, err := normalizeTool(tool)
	if err != nil {
		return err
	}
	now := s.now()
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO tools (id, name, description, category, icon, href, position, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tool.ID, tool.Name, tool.Description, tool.Category, tool.Icon, tool.Href, tool.Position,
		now.UnixMilli(), now.UnixMilli(),
	)
	if err != nil {
		if isToolUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create tool: %w", err)
	}
	return nil
}

// PutTool inserts tool or replaces the stored entry with the same id.
func (s *Store) PutTool(ctx context.Context, tool catalog.Tool) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return s.upsertTool(ctx, s.sqlDB, tool)
}

// SeedBuiltin upserts catalog.Builtin in one transaction.
func (s *Store) SeedBuiltin(ctx context.Context) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	for _, tool := range catalog.Builtin() {
		if err := s.upsertTool(ctx, tx, tool); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}

// ListTools returns every tool ordered by position then id.
func (s *Store) ListTools(ctx context.Context) ([]catalog.Tool, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, name, description, category, icon, href, position
		 FROM tools
		 ORDER BY position, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	defer rows.Close()

	var tools []catalog.Tool
	for rows.Next() {
		tool, err := scanTool(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tool: %w", err)
		}
		tools = append(tools, tool)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tools: %w", err)
	}
	return tools, nil
}

// GetTool returns one tool by id.
func (s *Store) GetTool(ctx context.Context, id string) (catalog.Tool, error) {
	if err := s.ready(ctx); err != nil {
		return catalog.Tool{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return catalog.Tool{}, fmt.Errorf("tool id is required")
	}
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, name, description, category, icon, href, position
		 FROM tools
		 WHERE id = ?`,
		id,
	)
	tool, err := scanTool(row)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Tool{}, storage.ErrNotFound
	}
	if err != nil {
		return catalog.Tool{}, fmt.Errorf("get tool %s: %w", id, err)
	}
	return tool, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) upsertTool(ctx context.Context, exec execer, tool catalog.Tool) error {
	tool, err := normalizeTool(tool)
	if err != nil {
		return err
	}
	now := s.now()
	_, err = exec.ExecContext(ctx,
		`INSERT INTO tools (id, name, description, category, icon, href, position, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   description = excluded.description,
		   category = excluded.category,
		   icon = excluded.icon,
		   href = excluded.href,
		   position = excluded.position,
		   updated_at = excluded.updated_at`,
		tool.ID, tool.Name, tool.Description, tool.Category, tool.Icon, tool.Href, tool.Position,
		now.UnixMilli(), now.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put tool %s: %w", tool.ID, err)
	}
	return nil
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

func (s *Store) now() time.Time {
	if s.clock == nil {
		return time.Now().UTC()
	}
	return s.clock().UTC()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTool(row rowScanner) (catalog.Tool, error) {
	var tool catalog.Tool
	err := row.Scan(&tool.ID, &tool.Name, &tool.Description, &tool.Category, &tool.Icon, &tool.Href, &tool.Position)
	return tool, err
}

func normalizeTool(tool catalog.Tool) (catalog.Tool, error) {
	tool.ID = strings.TrimSpace(tool.ID)
	tool.Name = strings.TrimSpace(tool.Name)
	tool.Description = strings.TrimSpace(tool.Description)
	tool.Category = strings.TrimSpace(tool.Category)
	tool.Href = strings.TrimSpace(tool.Href)
	if err := tool.Validate(); err != nil {
		return catalog.Tool{}, err
	}
	return tool, nil
}

func isToolUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, "tools.id")
}
