// Package repository implements link and user persistence on PostgreSQL.
package repository

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/atinyakov/url-cutter/internal/storage"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const linkColumns = "id, original_url, short_code, user_id, is_anonymous, is_active, clicks, created_at, last_used_at, expires_at"

// InitDB opens the database, checks the connection and applies pending migrations.
func InitDB(ctx context.Context, dsn string, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Info("Database connected and schema is up to date")
	return db, nil
}

// RunMigrations applies the embedded schema migrations.
func RunMigrations(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}

	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

type URLRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func CreateURLRepository(db *sql.DB, logger *zap.Logger) *URLRepository {
	return &URLRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a link. A unique violation on short_code is reported as storage.ErrConflict.
func (r *URLRepository) Create(ctx context.Context, l storage.Link) (*storage.Link, error) {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}

	row := r.db.QueryRowContext(ctx,
		`INSERT INTO links (original_url, short_code, user_id, is_anonymous, is_active, clicks, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, 0, $6, $7)
		RETURNING `+linkColumns+`;`,
		l.OriginalURL, l.ShortCode, l.UserID, l.IsAnonymous, l.IsActive, l.CreatedAt, l.ExpiresAt,
	)

	created, err := scanLink(row)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Debug("short code already taken", zap.String("short_code", l.ShortCode))
			return nil, storage.ErrConflict
		}
		return nil, err
	}

	return created, nil
}

func (r *URLRepository) ExistsShort(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM links WHERE short_code = $1);", code).Scan(&exists)
	return exists, err
}

func (r *URLRepository) FindByShort(ctx context.Context, code string) (*storage.Link, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+linkColumns+" FROM links WHERE short_code = $1;", code)
	return notFound(scanLink(row))
}

func (r *URLRepository) FindResolvable(ctx context.Context, code string, now time.Time) (*storage.Link, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+linkColumns+" FROM links WHERE short_code = $1 AND is_active AND (expires_at IS NULL OR expires_at > $2);",
		code, now,
	)
	return notFound(scanLink(row))
}

// RecordClicks adds n clicks in a single statement so concurrent
// resolutions never overwrite each other's increments.
func (r *URLRepository) RecordClicks(ctx context.Context, code string, n int64, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE links SET clicks = clicks + $2, last_used_at = GREATEST(last_used_at, $3)
		WHERE short_code = $1 AND is_active AND (expires_at IS NULL OR expires_at > $3);`,
		code, n, at,
	)
	if err != nil {
		return err
	}

	return affectedOrNotFound(res)
}

func (r *URLRepository) Update(ctx context.Context, code string, p storage.LinkPatch) (*storage.Link, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE links SET original_url = COALESCE($2, original_url), expires_at = COALESCE($3, expires_at)
		WHERE short_code = $1
		RETURNING `+linkColumns+`;`,
		code, p.OriginalURL, p.ExpiresAt,
	)
	return notFound(scanLink(row))
}

func (r *URLRepository) DeleteByShort(ctx context.Context, code string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM links WHERE short_code = $1;", code)
	if err != nil {
		return err
	}

	return affectedOrNotFound(res)
}

func (r *URLRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM links WHERE expires_at IS NOT NULL AND expires_at < $1;", now)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (r *URLRepository) FindByOriginal(ctx context.Context, original string, f storage.OwnerFilter) ([]storage.Link, error) {
	query, args := ownerClause("SELECT "+linkColumns+" FROM links WHERE original_url = $1", []any{original}, f)

	return r.queryLinks(ctx, query+" ORDER BY id;", args...)
}

func (r *URLRepository) FindByOwner(ctx context.Context, userID int64, offset, limit int) ([]storage.Link, error) {
	return r.queryLinks(ctx,
		"SELECT "+linkColumns+" FROM links WHERE user_id = $1 ORDER BY id OFFSET $2 LIMIT $3;",
		userID, offset, limit,
	)
}

func (r *URLRepository) CountLinks(ctx context.Context, f storage.OwnerFilter) (int64, error) {
	query, args := ownerClause("SELECT count(*) FROM links WHERE TRUE", nil, f)

	var n int64
	err := r.db.QueryRowContext(ctx, query+";", args...).Scan(&n)
	return n, err
}

func (r *URLRepository) CreateUser(ctx context.Context, u storage.User) (*storage.User, error) {
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO users (email, username, is_active, is_superuser) VALUES ($1, $2, $3, $4) RETURNING id;",
		u.Email, u.Username, u.IsActive, u.IsSuperuser,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrConflict
		}
		return nil, err
	}

	return &u, nil
}

func (r *URLRepository) FindUserByID(ctx context.Context, id int64) (*storage.User, error) {
	var u storage.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, email, username, is_active, is_superuser FROM users WHERE id = $1;", id,
	).Scan(&u.ID, &u.Email, &u.Username, &u.IsActive, &u.IsSuperuser)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *URLRepository) GetStats(ctx context.Context) (*storage.Stats, error) {
	var s storage.Stats
	err := r.db.QueryRowContext(ctx,
		"SELECT (SELECT count(*) FROM links), (SELECT count(*) FROM users);",
	).Scan(&s.Links, &s.Users)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *URLRepository) PingContext(c context.Context) error {
	return r.db.PingContext(c)
}

func (r *URLRepository) queryLinks(ctx context.Context, query string, args ...any) ([]storage.Link, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := make([]storage.Link, 0)
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, *l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return links, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLink(s scanner) (*storage.Link, error) {
	var (
		l          storage.Link
		userID     sql.NullInt64
		lastUsedAt sql.NullTime
		expiresAt  sql.NullTime
	)

	err := s.Scan(&l.ID, &l.OriginalURL, &l.ShortCode, &userID, &l.IsAnonymous, &l.IsActive,
		&l.Clicks, &l.CreatedAt, &lastUsedAt, &expiresAt)
	if err != nil {
		return nil, err
	}

	if userID.Valid {
		l.UserID = &userID.Int64
	}
	if lastUsedAt.Valid {
		l.LastUsedAt = &lastUsedAt.Time
	}
	if expiresAt.Valid {
		l.ExpiresAt = &expiresAt.Time
	}

	return &l, nil
}

// ownerClause appends the filter conditions to query and returns the extended argument list.
func ownerClause(query string, args []any, f storage.OwnerFilter) (string, []any) {
	if f.UserID != nil {
		args = append(args, *f.UserID)
		query += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if f.AnonymousOnly {
		query += " AND is_anonymous"
	}
	return query, args
}

func notFound(l *storage.Link, err error) (*storage.Link, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	return l, err
}

func affectedOrNotFound(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
