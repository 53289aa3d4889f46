package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Marga-Ghale/projectflow/internal/config"
	"github.com/Marga-Ghale/projectflow/internal/repository"
	"github.com/Marga-Ghale/projectflow/internal/socket"
	"github.com/Marga-Ghale/projectflow/internal/types"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Auth states
const (
	AuthAnonymous      = "anonymous"
	AuthAuthenticating = "authenticating"
	AuthAuthenticated  = "authenticated"
)

// ============================================
// Auth Service
// ============================================

// AuthService is a demo sign-in flow: passwords are accepted but never
// checked, and any registered email signs in.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*repository.User, string, error)
	Register(ctx context.Context, name, email, password string) (*repository.User, string, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*repository.User, error)
	State(ctx context.Context) (string, error)

	// Authenticate accepts a token only while its user is the signed-in user.
	Authenticate(ctx context.Context, token string) (*repository.User, error)
	ValidateToken(token string) (*jwt.Token, error)
	GetUserIDFromToken(token *jwt.Token) (string, error)
	UserIDFromToken(token string) (string, error)
}

type authService struct {
	cfg         *config.Config
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	uiState     UIStateService
	broadcaster *socket.Broadcaster
	now         func() time.Time

	pending atomic.Int32
}

func NewAuthService(
	cfg *config.Config,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	uiState UIStateService,
	broadcaster *socket.Broadcaster,
	now func() time.Time,
) AuthService {
	return &authService{
		cfg:         cfg,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		uiState:     uiState,
		broadcaster: broadcaster,
		now:         now,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*repository.User, string, error) {
	email = strings.TrimSpace(email)

	s.pending.Add(1)
	defer s.pending.Add(-1)

	if err := s.delay(ctx); err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		log.Printf("⚠️  [Auth] Login failed, unknown email: %s", email)
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	return s.signIn(ctx, user)
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*repository.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, "", fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}

	s.pending.Add(1)
	defer s.pending.Add(-1)

	if err := s.delay(ctx); err != nil {
		return nil, "", err
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return nil, "", ErrUserExists
	}

	user := &repository.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Avatar:    AvatarURL(name),
		Role:      types.RoleMember,
		CreatedAt: s.now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}
	log.Printf("✅ [Auth] Registered %s", user.Email)

	return s.signIn(ctx, user)
}

func (s *authService) signIn(ctx context.Context, user *repository.User) (*repository.User, string, error) {
	if err := s.sessionRepo.Set(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to store session: %w", err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastSignedIn(user)
	}
	return user, token, nil
}

// Logout clears the session and sends navigation back to the dashboard.
// Signing out twice is not an error.
func (s *authService) Logout(ctx context.Context) error {
	current, err := s.sessionRepo.Current(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}

	if err := s.sessionRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	if _, err := s.uiState.SetActiveTab(types.TabDashboard); err != nil {
		return err
	}

	if current != nil && s.broadcaster != nil {
		s.broadcaster.BroadcastSignedOut(current.ID)
	}
	return nil
}

func (s *authService) CurrentUser(ctx context.Context) (*repository.User, error) {
	return s.sessionRepo.Current(ctx)
}

func (s *authService) State(ctx context.Context) (string, error) {
	if s.pending.Load() > 0 {
		return AuthAuthenticating, nil
	}
	current, err := s.sessionRepo.Current(ctx)
	if err != nil {
		return "", err
	}
	if current == nil {
		return AuthAnonymous, nil
	}
	return AuthAuthenticated, nil
}

func (s *authService) Authenticate(ctx context.Context, tokenString string) (*repository.User, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, ErrInvalidToken
	}
	userID, err := s.GetUserIDFromToken(token)
	if err != nil {
		return nil, err
	}

	current, err := s.sessionRepo.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if current == nil || current.ID != userID {
		return nil, ErrUnauthorized
	}
	return current, nil
}

func (s *authService) UserIDFromToken(tokenString string) (string, error) {
	user, err := s.Authenticate(context.Background(), tokenString)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func (s *authService) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}
	return token, nil
}

func (s *authService) GetUserIDFromToken(token *jwt.Token) (string, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}

func (s *authService) generateToken(userID string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": now.Add(time.Hour * time.Duration(s.cfg.JWTExpiry)).Unix(),
		"iat": now.Unix(),
	})
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// delay simulates a slow backend; cancelling ctx aborts the wait.
func (s *authService) delay(ctx context.Context) error {
	if s.cfg.AuthDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.cfg.AuthDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// AvatarURL builds a generated-initials avatar for name.
func AvatarURL(name string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
	return "https://ui-avatars.com/api/?name=" + escaped + "&background=random"
}
