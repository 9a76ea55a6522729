package service

import (
	"time"

	"github.com/glamzz/glamzz-store/internal/errors"
	"github.com/glamzz/glamzz-store/internal/models"
	repository "github.com/glamzz/glamzz-store/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserService is a deliberate authentication stub: any submission establishes
// the session user, no credential is ever verified or stored. The JWT it
// mints only identifies the session to subsequent requests.
type UserService struct {
	session *repository.SessionStore
	jwtKey  []byte
}

func NewUserService(session *repository.SessionStore, jwtKey []byte) *UserService {
	return &UserService{session: session, jwtKey: jwtKey}
}

// Authenticate serves both login and signup.
func (s *UserService) Authenticate(req *models.AuthRequest) (*models.AuthResponse, error) {

	name := req.Name
	if name == "" {
		name = "Guest User"
	}

	user := &models.User{
		ID:    uuid.New(),
		Name:  name,
		Email: req.Email,
	}

	s.session.Set(user)

	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, errors.InternalError("Failed to generate session token").WithError(err)
	}

	return &models.AuthResponse{
		Success:   true,
		Token:     tokenString,
		ExpiresIn: int(time.Until(claims.ExpiresAt.Time).Seconds()),
		User:      user,
	}, nil
}

// Logout clears the session user. Cart and order history survive it by
// design: neither is scoped to the user identity.
func (s *UserService) Logout() {
	s.session.Clear()
}

func (s *UserService) Profile() (*models.User, error) {

	user := s.session.Get()
	if user == nil {
		return nil, errors.UnauthorizedError("Not logged in")
	}

	return user, nil
}
