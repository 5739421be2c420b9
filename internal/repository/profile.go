package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/securepass/securepass-go/internal/model"
)

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrDuplicateProfile = errors.New("profile name already exists")
)

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

// ProfileRepository handles profile persistence operations.
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a new profile and sets the generated ID on it.
func (r *ProfileRepository) Create(ctx context.Context, p *model.Profile) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (name, passphrase_hash) VALUES (?, ?)`,
		p.Name, p.PassphraseHash,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateProfile
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// GetByName retrieves a profile by its unique name.
func (r *ProfileRepository) GetByName(ctx context.Context, name string) (*model.Profile, error) {
	return r.getOne(ctx, `SELECT id, name, passphrase_hash, created_at, updated_at FROM profiles WHERE name = ?`, name)
}

// GetByID retrieves a profile by ID.
func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*model.Profile, error) {
	return r.getOne(ctx, `SELECT id, name, passphrase_hash, created_at, updated_at FROM profiles WHERE id = ?`, id)
}

func (r *ProfileRepository) getOne(ctx context.Context, query string, arg any) (*model.Profile, error) {
	p := &model.Profile{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&p.ID, &p.Name, &p.PassphraseHash, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func isDuplicateEntryError(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}
