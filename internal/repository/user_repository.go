package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/Alena-Semenova/plan-d-back/internal/model"
)

// mysqlDupEntry is the server error number for a unique-key collision.
const mysqlDupEntry = 1062

const userColumns = "id,username,password,email,diabetes_type,age,gender,height,weight,created_at,updated_at"

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// FindByUsername fetches a user by exact username match. No normalization
// is applied; lookup equality is string equality as stored. Returns
// ErrUserNotFound when no row matches.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE username=? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.DiabetesType,
		&u.Age, &u.Gender, &u.Height, &u.Weight, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

// Create inserts a new user with the given username and already-hashed
// password and returns the persisted record. The store assigns the
// identity and both timestamps. A unique-key collision, including one
// lost to a concurrent registration race, becomes ErrUsernameTaken.
func (r *UserRepo) Create(ctx context.Context, username, hashedPassword string) (model.User, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, password) VALUES (?,?)",
		username, hashedPassword)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDupEntry {
			return model.User{}, ErrUsernameTaken
		}
		return model.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.User{}, err
	}
	return r.findByID(ctx, uint64(id))
}

// findByID reads a row back after insert so callers see the identity and
// timestamps exactly as the store assigned them.
func (r *UserRepo) findByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.DiabetesType,
		&u.Age, &u.Gender, &u.Height, &u.Weight, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}
