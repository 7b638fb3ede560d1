package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"breakfastpos/internal/common"
	"breakfastpos/internal/models"
	"breakfastpos/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the JWT claims issued at login and checked by the
// middleware on every protected route.
type TokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// LoginResponse is the payload returned by a successful login.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
	User        *models.User `json:"user"`
}

// AuthService authenticates staff accounts and issues HS256 access tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
	RegisterUser(ctx context.Context, username, password, role string) (*models.User, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  int // seconds
}

func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenTTLSeconds int) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTLSeconds,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	if username == "" || password == "" {
		return nil, common.NewInvalidRequest("username and password are required")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, common.NewInternal("look up user", err)
	}
	// The same error for an unknown user and a wrong password, so login
	// probing cannot enumerate accounts.
	if user == nil || !verifyPassword(password, user.PasswordHash) {
		return nil, common.NewInvalidRequest("invalid username or password")
	}

	now := time.Now()
	claims := TokenClaims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "breakfastpos-auth",
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.tokenTTL) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, common.NewInternal("sign access token", err)
	}

	log.Printf("user %s logged in with role %s", user.Username, user.Role)

	return &LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   s.tokenTTL,
		User:        user,
	}, nil
}

func (s *authService) RegisterUser(ctx context.Context, username, password, role string) (*models.User, error) {
	if err := common.ValidateRequiredString(username, "username"); err != nil {
		return nil, common.NewInvalidRequest("%s", err.Error())
	}
	if len(password) < 8 {
		return nil, common.NewInvalidRequest("password must be at least 8 characters")
	}
	if role != models.RoleAdmin && role != models.RoleStaff {
		return nil, common.NewInvalidRequest("role must be admin or staff")
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, common.NewInternal("look up user", err)
	}
	if existing != nil {
		return nil, common.NewConflict("username already taken: %s", username)
	}

	user := models.NewUser(username, HashPassword(password), role)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, common.NewInternal("create user", err)
	}
	return user, nil
}

// HashPassword derives a salted SHA-256 digest stored as "salt$digest" in
// hex.
func HashPassword(password string) string {
	salt := make([]byte, 16)
	rand.Read(salt)

	hasher := sha256.New()
	hasher.Write(salt)
	hasher.Write([]byte(password))
	return hex.EncodeToString(salt) + "$" + hex.EncodeToString(hasher.Sum(nil))
}

func verifyPassword(password, stored string) bool {
	saltHex, digestHex, found := strings.Cut(stored, "$")
	if !found {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}

	hasher := sha256.New()
	hasher.Write(salt)
	hasher.Write([]byte(password))
	computed := hex.EncodeToString(hasher.Sum(nil))

	return subtle.ConstantTimeCompare([]byte(computed), []byte(digestHex)) == 1
}

// ParseToken validates a signed token string and returns its claims.
func ParseToken(tokenString string, jwtSecret []byte) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %v", err)
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
