package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/maituanhoang070/ytcreatorapp/internal/apperr"
	"github.com/maituanhoang070/ytcreatorapp/internal/model"
	"github.com/maituanhoang070/ytcreatorapp/internal/store"
)

// TokenExchanger is the OAuth bridge collaborator: it trades an authorization
// code for the YouTube credential bundle.
type TokenExchanger interface {
	Exchange(ctx context.Context, code string) (model.YouTubeCredentials, error)
}

// UserService handles registration, login, and YouTube account linking.
type UserService struct {
	store store.Store
	yt    TokenExchanger
}

// NewUserService creates a UserService.
func NewUserService(st store.Store, yt TokenExchanger) *UserService {
	return &UserService{store: st, yt: yt}
}

// Register creates a user after checking username/email uniqueness. Passwords
// are stored as bcrypt hashes, never plaintext.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	if _, err := s.store.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, apperr.Conflict("Email already in use")
	} else if !apperr.IsNotFound(err) {
		return nil, err
	}

	if _, err := s.store.GetUserByUsername(ctx, req.Username); err == nil {
		return nil, apperr.Conflict("Username already in use")
	} else if !apperr.IsNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.store.CreateUser(ctx, model.NewUser{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
}

// Login verifies a username/password pair. An unknown username and a wrong
// password produce the same error so the response does not leak which it was.
func (s *UserService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Auth("Invalid username or password")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperr.Auth("Invalid username or password")
	}
	return user, nil
}

// ConnectYouTube exchanges an OAuth code and persists the resulting
// credentials on the user record. An exchange failure leaves the user's
// credential fields untouched.
func (s *UserService) ConnectYouTube(ctx context.Context, userID int, code string) (*model.User, error) {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	creds, err := s.yt.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	return s.store.UpdateUserYouTubeCredentials(ctx, userID, creds)
}
