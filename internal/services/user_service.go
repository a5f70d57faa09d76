package services

import (
	"context"
	"net/mail"
	"strings"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/repositories"
	"tripplanner/internal/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type UserService struct {
	Store     UserStore
	RequestID string
	HashCost  int
}

func NewUserService(requestID string) UserService {
	return UserService{Store: repositories.UserRepository{}, RequestID: requestID}
}

func (s UserService) hashCost() int {
	if s.HashCost > 0 {
		return s.HashCost
	}
	return bcrypt.DefaultCost
}

func normalizeUser(u models.User) models.User {
	u.Name = utils.NormalizeSpace(u.Name)
	u.Username = utils.TrimOrEmpty(u.Username)
	u.Email = strings.ToLower(utils.TrimOrEmpty(u.Email))
	u.Phone = utils.TrimOrEmpty(u.Phone)
	u.Role = strings.ToLower(utils.TrimOrEmpty(u.Role))
	return u
}

func validateUser(u models.User) error {
	if u.Username == "" {
		return domain.ValidationError{Field: "username", Msg: "username is required"}
	}
	if u.Email == "" {
		return domain.ValidationError{Field: "email", Msg: "email is required"}
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return domain.ValidationError{Field: "email", Msg: "email is not valid", Err: err}
	}
	switch u.Role {
	case domain.RoleUser, domain.RoleAdmin:
	default:
		return domain.ValidationError{Field: "role", Msg: "unknown role " + u.Role}
	}
	return nil
}

func (s UserService) hashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", domain.ValidationError{Field: "password", Msg: "password must be at least 6 characters"}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost())
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register signs up a regular user from the public auth endpoint.
func (s UserService) Register(ctx context.Context, u models.User, password string) (models.User, error) {
	u.Role = domain.RoleUser
	u.Status = true
	return s.create(ctx, u, password, "register")
}

// CreateUser is the admin path; the role is taken from the payload.
func (s UserService) CreateUser(ctx context.Context, u models.User, password string) (models.User, error) {
	if strings.TrimSpace(u.Role) == "" {
		u.Role = domain.RoleUser
	}
	return s.create(ctx, u, password, "create")
}

func (s UserService) create(ctx context.Context, u models.User, password, action string) (models.User, error) {
	u = normalizeUser(u)
	if err := validateUser(u); err != nil {
		return models.User{}, err
	}

	n, err := s.Store.CountByEmailOrUsername(ctx, u.Email, u.Username)
	if err != nil {
		return models.User{}, err
	}
	if n > 0 {
		return models.User{}, domain.ConflictError{Resource: "user", Msg: "email or username already registered"}
	}

	if u.PasswordHash, err = s.hashPassword(password); err != nil {
		return models.User{}, err
	}
	if err := s.Store.Create(ctx, &u); err != nil {
		return models.User{}, err
	}
	utils.LogEvent(s.RequestID, "user", action, "user created", zap.Int64("user_id", u.ID), zap.String("role", u.Role))
	return u, nil
}

func (s UserService) Get(ctx context.Context, id int64) (models.User, error) {
	if err := requireID("userId", id); err != nil {
		return models.User{}, err
	}
	return s.Store.GetByID(ctx, id)
}

func (s UserService) List(ctx context.Context) ([]models.User, error) {
	return s.Store.List(ctx)
}

// Update replaces profile fields. An empty password keeps the current hash.
func (s UserService) Update(ctx context.Context, u models.User, id int64, password string) (models.User, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	u = normalizeUser(u)
	u.ID = id
	u.Name = utils.FirstNonEmpty(u.Name, existing.Name)
	u.Username = utils.FirstNonEmpty(u.Username, existing.Username)
	u.Email = utils.FirstNonEmpty(u.Email, existing.Email)
	u.Phone = utils.FirstNonEmpty(u.Phone, existing.Phone)
	u.Role = utils.FirstNonEmpty(u.Role, existing.Role)
	u.CreatedAt = existing.CreatedAt
	if err := validateUser(u); err != nil {
		return models.User{}, err
	}

	u.PasswordHash = existing.PasswordHash
	if password != "" {
		if u.PasswordHash, err = s.hashPassword(password); err != nil {
			return models.User{}, err
		}
	}
	if err := s.Store.Update(ctx, u); err != nil {
		return models.User{}, err
	}
	utils.LogEvent(s.RequestID, "user", "update", "user updated", zap.Int64("user_id", id))
	return u, nil
}

func (s UserService) Delete(ctx context.Context, id int64) error {
	if err := requireID("userId", id); err != nil {
		return err
	}
	return s.Store.Delete(ctx, id)
}

// Authenticate checks login (email or username) and password.
func (s UserService) Authenticate(ctx context.Context, login, password string) (models.User, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return models.User{}, domain.ValidationError{Msg: "login and password are required"}
	}

	u, err := s.Store.GetByLogin(ctx, login)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.User{}, domain.UnauthorizedError{Msg: "invalid email/username or password"}
		}
		return models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return models.User{}, domain.UnauthorizedError{Msg: "invalid email/username or password"}
	}
	if !u.Status {
		return models.User{}, domain.UnauthorizedError{Msg: "account is disabled"}
	}
	utils.LogEvent(s.RequestID, "auth", "login", "user logged in", zap.Int64("user_id", u.ID))
	return u, nil
}
