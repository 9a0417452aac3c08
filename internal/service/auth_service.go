package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/skelectricals/backend/internal/domain"
	ierr "github.com/skelectricals/backend/internal/errors"
	"github.com/skelectricals/backend/internal/logger"
	"github.com/skelectricals/backend/internal/repository"
	"github.com/skelectricals/backend/internal/types"
)

// AuthService handles registration, login and JWT validation. Accounts
// register with the user role; admins promote accounts to client and link
// them to a client record, or to admin.
type AuthService interface {
	// Register creates an account with the user role
	Register(ctx context.Context, email, password, name string) (*AuthResponse, error)

	// Login verifies credentials and issues a token pair
	Login(ctx context.Context, email, password string) (*AuthResponse, error)

	// RefreshAccessToken exchanges a refresh token for a new token pair
	RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenPair, error)

	// ValidateAccessToken parses and verifies an access token
	ValidateAccessToken(tokenString string) (*Claims, error)

	// GetUserByID retrieves one user
	GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// UpdateUserRole changes a user's role; companyName is required for the
	// client role and ignored otherwise
	UpdateUserRole(ctx context.Context, userID uuid.UUID, role types.UserRole, companyName string) (*domain.User, error)
}

// AuthResponse contains authentication response data
type AuthResponse struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int64        `json:"expiresIn"` // seconds
}

// TokenPair contains access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"` // seconds
}

// Claims represents JWT claims
type Claims struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	CompanyName string `json:"companyName,omitempty"`
	jwt.RegisteredClaims
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	UserRepo             repository.UserRepository
	ClientRepo           repository.ClientRepository
	Logger               *logger.Logger
	JWTSecret            string
	JWTAccessExpiration  time.Duration
	JWTRefreshExpiration time.Duration
}

type authService struct {
	userRepo             repository.UserRepository
	clientRepo           repository.ClientRepository
	logger               *logger.Logger
	jwtSecret            []byte
	jwtAccessExpiration  time.Duration
	jwtRefreshExpiration time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(config AuthServiceConfig) AuthService {
	return &authService{
		userRepo:             config.UserRepo,
		clientRepo:           config.ClientRepo,
		logger:               config.Logger,
		jwtSecret:            []byte(config.JWTSecret),
		jwtAccessExpiration:  config.JWTAccessExpiration,
		jwtRefreshExpiration: config.JWTRefreshExpiration,
	}
}

func (s *authService) Register(ctx context.Context, email, password, name string) (*AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to process password").
			Mark(ierr.ErrInternal)
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         types.RoleUser,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Infow("registered user", "email", email)
	return s.authResponse(user)
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, invalidCredentials()
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ierr.NewError("account disabled").
			WithHint("This account has been disabled").
			Mark(ierr.ErrPermissionDenied)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, invalidCredentials()
	}

	return s.authResponse(user)
}

func (s *authService) RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.parseToken(refreshToken)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, invalidToken()
	}

	// Re-read the user so role changes take effect on refresh.
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.generateTokens(user)
}

func (s *authService) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.parseToken(tokenString)
}

func (s *authService) GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *authService) UpdateUserRole(ctx context.Context, userID uuid.UUID, role types.UserRole, companyName string) (*domain.User, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	if role == types.RoleClient {
		if companyName == "" {
			return nil, ierr.NewError("missing company name").
				WithHint("companyName is required when assigning the client role").
				Mark(ierr.ErrValidation)
		}
		// The company must exist as a client record before an account can be
		// linked to it.
		if _, err := s.clientRepo.GetByCompanyName(ctx, companyName); err != nil {
			return nil, err
		}
	} else {
		companyName = ""
	}

	user, err := s.userRepo.UpdateRole(ctx, userID, role, companyName)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("changed user role", "userId", userID, "role", role, "company", companyName)
	return user, nil
}

func (s *authService) authResponse(user *domain.User) (*AuthResponse, error) {
	tokens, err := s.generateTokens(user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		User:         user,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}

func (s *authService) generateTokens(user *domain.User) (*TokenPair, error) {
	access, err := s.signToken(user, s.jwtAccessExpiration)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signToken(user, s.jwtRefreshExpiration)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.jwtAccessExpiration.Seconds()),
	}, nil
}

func (s *authService) signToken(user *domain.User, expiration time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:      user.ID.String(),
		Email:       user.Email,
		Role:        user.Role.String(),
		CompanyName: user.CompanyName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to sign token").
			Mark(ierr.ErrInternal)
	}
	return signed, nil
}

func (s *authService) parseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, invalidToken()
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, invalidToken()
	}
	return claims, nil
}

func invalidCredentials() error {
	return ierr.NewError("invalid credentials").
		WithHint("Invalid email or password").
		Mark(ierr.ErrPermissionDenied)
}

func invalidToken() error {
	return ierr.NewError("invalid token").
		WithHint("Invalid or expired token").
		Mark(ierr.ErrPermissionDenied)
}
