package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/azamatb/notekeeper/internal/domain"
	"github.com/azamatb/notekeeper/internal/email"
	"github.com/azamatb/notekeeper/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase struct {
	users      repository.UserRepository
	email      email.Sender
	logger     *slog.Logger
	jwtKey     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthUsecase(users repository.UserRepository, emailSender email.Sender, logger *slog.Logger, jwtKey []byte, accessTTL time.Duration) *AuthUsecase {
	return &AuthUsecase{
		users:      users,
		email:      emailSender,
		logger:     logger.With("component", "auth_usecase"),
		jwtKey:     jwtKey,
		accessTTL:  accessTTL,
		refreshTTL: domain.RefreshTokenTTL,
	}
}

// Signup hashes the password with bcrypt and stores the new account.
// Duplicate emails surface as domain.ErrEmailTaken from the store's unique
// constraint.
func (u *AuthUsecase) Signup(ctx context.Context, emailAddr, password string) (string, error) {
	if emailAddr == "" || password == "" {
		return "", domain.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        emailAddr,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return "", domain.ErrEmailTaken
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	// Welcome email is best-effort and must not block or fail the signup.
	go u.sendWelcome(user.Email)

	return user.ID, nil
}

// Login verifies the credentials and issues an access/refresh token pair.
// Unknown email and wrong password collapse into the same error so callers
// cannot probe which accounts exist.
func (u *AuthUsecase) Login(ctx context.Context, emailAddr, password string) (accessToken, refreshToken string, err error) {
	user, err := u.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", "", domain.ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return "", "", domain.ErrInvalidCredentials
	}

	accessToken, err = u.issueToken(user.ID, domain.TokenKindAccess, u.accessTTL)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = u.issueToken(user.ID, domain.TokenKindRefresh, u.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// VerifyToken checks the signature, expiry, and kind claim, and returns the
// user ID the token was issued for. Tokens are stateless; there is no
// server-side revocation.
func (u *AuthUsecase) VerifyToken(rawToken string, kind domain.TokenKind) (string, error) {
	token, err := jwt.Parse(rawToken, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return u.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrTokenInvalid
	}
	if k, _ := claims["kind"].(string); k != string(kind) {
		return "", domain.ErrTokenInvalid
	}
	userID, _ := claims["sub"].(string)
	if userID == "" {
		return "", domain.ErrTokenInvalid
	}
	return userID, nil
}

// Refresh mints a new access token from a valid refresh token. The refresh
// token itself is not rotated and stays valid until its own expiry.
func (u *AuthUsecase) Refresh(refreshToken string) (string, error) {
	userID, err := u.VerifyToken(refreshToken, domain.TokenKindRefresh)
	if err != nil {
		return "", err
	}
	return u.issueToken(userID, domain.TokenKindAccess, u.accessTTL)
}

func (u *AuthUsecase) issueToken(userID string, kind domain.TokenKind, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"kind": string(kind),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(u.jwtKey)
	if err != nil {
		return "", fmt.Errorf("sign jwt: %w", err)
	}
	return signed, nil
}

func (u *AuthUsecase) sendWelcome(to string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	subject := "Welcome to Notekeeper"
	body := `<p>Your account is ready. Sign in to start writing notes.</p>`
	if err := u.email.Send(ctx, to, subject, body); err != nil {
		u.logger.Error("send welcome email", "error", err)
	}
}
