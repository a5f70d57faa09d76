package repositories

import (
	"context"
	"time"

	intdb "tripplanner/internal/db"
	"tripplanner/internal/domain/models"
)

const userColumns = `id, name, username, email, phone, password_hash, role, status, created_at, updated_at`

type UserRepository struct {
	DB intdb.DBTX
}

func scanUser(s rowScanner) (models.User, error) {
	var u models.User
	err := s.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r UserRepository) Create(ctx context.Context, u *models.User) error {
	db, err := conn(r.DB)
	if err != nil {
		return storeErr("user", "insert", 0, err)
	}
	now := time.Now()
	res, err := db.ExecContext(ctx, `
		INSERT INTO users (name, username, email, phone, password_hash, role, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, u.Name, u.Username, u.Email, u.Phone, u.PasswordHash, u.Role, u.Status, now, now)
	if err != nil {
		return storeErr("user", "insert", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return storeErr("user", "insert", 0, err)
	}
	u.ID = id
	u.CreatedAt = now
	u.UpdatedAt = now
	return nil
}

func (r UserRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	db, err := conn(r.DB)
	if err != nil {
		return models.User{}, storeErr("user", "select", id, err)
	}
	u, err := scanUser(db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id=? LIMIT 1`, id))
	if err != nil {
		return models.User{}, storeErr("user", "select", id, err)
	}
	return u, nil
}

// GetByLogin looks a user up by email or username.
func (r UserRepository) GetByLogin(ctx context.Context, login string) (models.User, error) {
	db, err := conn(r.DB)
	if err != nil {
		return models.User{}, storeErr("user", "select", 0, err)
	}
	u, err := scanUser(db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email=? OR username=? LIMIT 1`, login, login))
	if err != nil {
		return models.User{}, storeErr("user", "select", 0, err)
	}
	return u, nil
}

// CountByEmailOrUsername is used to reject duplicate registrations early.
func (r UserRepository) CountByEmailOrUsername(ctx context.Context, email, username string) (int, error) {
	db, err := conn(r.DB)
	if err != nil {
		return 0, storeErr("user", "count", 0, err)
	}
	var n int
	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE email=? OR username=?`, email, username).Scan(&n)
	if err != nil {
		return 0, storeErr("user", "count", 0, err)
	}
	return n, nil
}

func (r UserRepository) List(ctx context.Context) ([]models.User, error) {
	db, err := conn(r.DB)
	if err != nil {
		return nil, storeErr("user", "list", 0, err)
	}
	rows, err := db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, storeErr("user", "list", 0, err)
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return out, storeErr("user", "list", 0, err)
		}
		out = append(out, u)
	}
	return out, storeErr("user", "list", 0, rows.Err())
}

// Update writes every column; callers carry the existing hash forward when
// the password is unchanged.
func (r UserRepository) Update(ctx context.Context, u models.User) error {
	db, err := conn(r.DB)
	if err != nil {
		return storeErr("user", "update", u.ID, err)
	}
	res, err := db.ExecContext(ctx, `
		UPDATE users
		SET name=?, username=?, email=?, phone=?, password_hash=?, role=?, status=?, updated_at=?
		WHERE id=?
	`, u.Name, u.Username, u.Email, u.Phone, u.PasswordHash, u.Role, u.Status, time.Now(), u.ID)
	if err != nil {
		return storeErr("user", "update", u.ID, err)
	}
	return expectOne("user", "update", u.ID, res)
}

func (r UserRepository) Delete(ctx context.Context, id int64) error {
	db, err := conn(r.DB)
	if err != nil {
		return storeErr("user", "delete", id, err)
	}
	res, err := db.ExecContext(ctx, `DELETE FROM users WHERE id=?`, id)
	if err != nil {
		return storeErr("user", "delete", id, err)
	}
	return expectOne("user", "delete", id, res)
}
