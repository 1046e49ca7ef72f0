package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/uubo/memberhub/internal/domain/errors"
	"github.com/uubo/memberhub/internal/domain/model"
	"github.com/uubo/memberhub/internal/domain/repository"
)

// PgxPool is the pool capability surface the storage uses. Both
// *pgxpool.Pool and pgxmock pools satisfy it; no operation here needs
// transactions or multi-document atomicity.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   PgxPool
	logger *slog.Logger
}

type memberRepository struct {
	storage *Storage
}

type syncLogRepository struct {
	storage *Storage
}

type contentRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Members() repository.MemberRepository {
	return &memberRepository{storage: s}
}

func (s *Storage) SyncLogs() repository.SyncLogRepository {
	return &syncLogRepository{storage: s}
}

func (s *Storage) Content() repository.ContentRepository {
	return &contentRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS members (
            id TEXT PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            customer_id BIGINT,
            customer_code TEXT,
            full_name TEXT,
            last_name TEXT,
            first_name TEXT,
            last_kana TEXT,
            first_kana TEXT,
            status TEXT,
            rank TEXT,
            staff_rank TEXT,
            sex TEXT,
            birth_date TEXT,
            point BIGINT,
            point_expire_date TEXT,
            mile BIGINT,
            point_giving_unit_price BIGINT,
            point_giving_unit TEXT,
            last_come_date_time TEXT,
            entry_date TEXT,
            leave_date TEXT,
            post_code TEXT,
            address TEXT,
            phone_number TEXT,
            mobile_number TEXT,
            fax_number TEXT,
            note TEXT,
            note2 TEXT,
            pin_code TEXT,
            customer_no TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS sync_logs (
            id SERIAL PRIMARY KEY,
            request_id TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT '',
            success_count BIGINT NOT NULL DEFAULT 0,
            error_count BIGINT NOT NULL DEFAULT 0,
            type TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS site_settings (
            id TEXT PRIMARY KEY,
            data JSONB NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS pages (
            id TEXT PRIMARY KEY,
            content JSONB NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS images (
            id TEXT PRIMARY KEY,
            file_name TEXT NOT NULL,
            data TEXT NOT NULL,
            uploaded_by TEXT NOT NULL,
            uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_members_customer_code ON members(customer_code)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const memberColumns = `id, email, password_hash, customer_id, customer_code,
        full_name, last_name, first_name, last_kana, first_kana,
        status, rank, staff_rank, sex, birth_date,
        point, point_expire_date, mile, point_giving_unit_price, point_giving_unit,
        last_come_date_time, entry_date, leave_date,
        post_code, address, phone_number, mobile_number, fax_number,
        note, note2, pin_code, customer_no, created_at`

type memberRow interface {
	Scan(dest ...any) error
}

func scanMember(row memberRow) (*model.Member, error) {
	var m model.Member
	err := row.Scan(
		&m.ID, &m.Email, &m.PasswordHash, &m.CustomerID, &m.CustomerCode,
		&m.FullName, &m.LastName, &m.FirstName, &m.LastKana, &m.FirstKana,
		&m.Status, &m.Rank, &m.StaffRank, &m.Sex, &m.BirthDate,
		&m.Point, &m.PointExpireDate, &m.Mile, &m.PointGivingUnitPrice, &m.PointGivingUnit,
		&m.LastComeDateTime, &m.EntryDate, &m.LeaveDate,
		&m.PostCode, &m.Address, &m.PhoneNumber, &m.MobileNumber, &m.FaxNumber,
		&m.Note, &m.Note2, &m.PinCode, &m.CustomerNo, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// --- MemberRepository implementation ---

func (r *memberRepository) Create(ctx context.Context, member *model.Member) (*model.Member, error) {
	const query = `INSERT INTO members (id, email, password_hash, full_name, customer_code)
                   VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		member.ID, member.Email, member.PasswordHash, member.FullName, member.CustomerCode,
	).Scan(&member.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return member, nil
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*model.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id=$1`
	m, err := scanMember(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*model.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE email=$1`
	m, err := scanMember(r.storage.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// FindByCustomerCode resolves duplicate codes by creation order, which
// keeps "first match" stable for a fixed data set.
func (r *memberRepository) FindByCustomerCode(ctx context.Context, code string) (*model.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE customer_code=$1 ORDER BY created_at LIMIT 1`
	m, err := scanMember(r.storage.pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *memberRepository) ScanAll(ctx context.Context, limit int) ([]model.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY created_at LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *memberRepository) MergeProfile(ctx context.Context, id string, patch model.ProfilePatch) error {
	const query = `UPDATE members SET
                       full_name = COALESCE($2, full_name),
                       last_name = COALESCE($3, last_name),
                       first_name = COALESCE($4, first_name),
                       last_kana = COALESCE($5, last_kana),
                       first_kana = COALESCE($6, first_kana),
                       post_code = COALESCE($7, post_code),
                       address = COALESCE($8, address),
                       phone_number = COALESCE($9, phone_number),
                       mobile_number = COALESCE($10, mobile_number),
                       fax_number = COALESCE($11, fax_number)
                   WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id,
		patch.FullName, patch.LastName, patch.FirstName, patch.LastKana, patch.FirstKana,
		patch.PostCode, patch.Address, patch.PhoneNumber, patch.MobileNumber, patch.FaxNumber,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- SyncLogRepository implementation ---

func (r *syncLogRepository) Append(ctx context.Context, entry model.SyncLogEntry) (*model.SyncLogEntry, error) {
	const query = `INSERT INTO sync_logs (request_id, status, success_count, error_count, type)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		entry.RequestID, entry.Status, entry.SuccessCount, entry.ErrorCount, entry.Type,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// --- ContentRepository implementation ---

const settingsDocID = "main"

func (r *contentRepository) GetSettings(ctx context.Context) (model.Document, error) {
	const query = `SELECT data FROM site_settings WHERE id=$1`
	return r.storage.queryDocument(ctx, query, settingsDocID)
}

func (r *contentRepository) MergeSettings(ctx context.Context, doc model.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	const query = `INSERT INTO site_settings (id, data) VALUES ($1, $2)
                   ON CONFLICT (id) DO UPDATE SET data = site_settings.data || EXCLUDED.data`
	_, err = r.storage.pool.Exec(ctx, query, settingsDocID, raw)
	return err
}

func (r *contentRepository) GetPage(ctx context.Context, id string) (model.Document, error) {
	const query = `SELECT content FROM pages WHERE id=$1`
	return r.storage.queryDocument(ctx, query, id)
}

func (r *contentRepository) SavePage(ctx context.Context, id string, content model.Document) error {
	raw, err := json.Marshal(content)
	if err != nil {
		return err
	}
	const query = `INSERT INTO pages (id, content) VALUES ($1, $2)
                   ON CONFLICT (id) DO UPDATE SET content = pages.content || EXCLUDED.content`
	_, err = r.storage.pool.Exec(ctx, query, id, raw)
	return err
}

func (r *contentRepository) ListPages(ctx context.Context) ([]model.Page, error) {
	const query = `SELECT id, content FROM pages ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Page
	for rows.Next() {
		var (
			page model.Page
			raw  []byte
		)
		if err := rows.Scan(&page.ID, &raw); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &page.Content); err != nil {
			return nil, err
		}
		result = append(result, page)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *contentRepository) AddImage(ctx context.Context, img model.Image) (*model.Image, error) {
	const query = `INSERT INTO images (id, file_name, data, uploaded_by)
                   VALUES ($1, $2, $3, $4) RETURNING uploaded_at`
	err := r.storage.pool.QueryRow(ctx, query, img.ID, img.FileName, img.Data, img.UploadedBy).Scan(&img.UploadedAt)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (s *Storage) queryDocument(ctx context.Context, query string, args ...any) (model.Document, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, query, args...).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Pool exposes raw connection pool for advanced use.
func (s *Storage) Pool() PgxPool {
	return s.pool
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
