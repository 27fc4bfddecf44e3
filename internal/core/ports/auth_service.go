package ports

import (
	"context"

	"github.com/ankitSharma645/store-rating-api/internal/core/domain"
)

// RegisterInput carries a self-registration request. Payload shape is
// validated at the transport layer; the service enforces uniqueness,
// role membership and hashing.
type RegisterInput struct {
	Name     string
	Email    string
	Address  string
	Password string
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login returns a signed token and the user. Unknown email and wrong
	// password both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
	// ChangePassword re-hashes and issues a fresh token on success.
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) (string, *domain.User, error)
}
