package register

import (
	"context"
	"fmt"
	"strings"

	"sellerhub-service/internal/domain/user"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// UserStore is the persistence surface the registration flow needs.
type UserStore interface {
	// FindByUsernameOrEmail returns the matching row, or nil when no user
	// claims either value.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*user.User, error)

	// Create inserts the row transactionally and returns it as stored.
	Create(ctx context.Context, u *user.NewUser) (*user.User, error)
}

// ValidationError carries per-field messages for a rejected registration.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Service validates registrations, hashes passwords and persists new users.
type Service struct {
	users  UserStore
	logger *zap.Logger
}

func New(users UserStore, logger *zap.Logger) *Service {
	return &Service{users: users, logger: logger}
}

// Register creates a user account. Missing fields and username/email
// conflicts both come back as *ValidationError; anything else is an internal
// failure.
func (s *Service) Register(ctx context.Context, req *user.RegisterRequest) (*user.User, error) {
	if verr := validate(req); verr != nil {
		return nil, verr
	}

	existing, err := s.users.FindByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing users: %w", err)
	}
	if existing != nil {
		fields := map[string]string{}
		if existing.Username == req.Username {
			fields["username"] = "Username already taken"
		}
		if strings.EqualFold(existing.Email, req.Email) {
			fields["email"] = "Email already registered"
		}
		return nil, &ValidationError{
			Message: "Username or email already exists",
			Fields:  fields,
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	record := &user.NewUser{
		Username:     req.Username,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
	}
	if req.Phone != "" {
		record.Phone = &req.Phone
	}

	created, err := s.users.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered",
		zap.String("username", created.Username),
		zap.Int64("user_id", created.UserID),
	)
	return created, nil
}

func validate(req *user.RegisterRequest) *ValidationError {
	fields := map[string]string{}
	if req.Username == "" {
		fields["username"] = "Username is required"
	}
	if req.FirstName == "" {
		fields["first_name"] = "First name is required"
	}
	if req.LastName == "" {
		fields["last_name"] = "Last name is required"
	}
	if req.Email == "" {
		fields["email"] = "Email is required"
	}
	if req.Password == "" {
		fields["password"] = "Password is required"
	}
	if !req.Terms {
		fields["terms"] = "You must accept the terms"
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{
		Message: "All fields are required",
		Fields:  fields,
	}
}
