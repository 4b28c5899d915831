package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-wallet-admin/internal/config"
	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/store"
	"github.com/MKhiriev/go-wallet-admin/internal/utils"
	"github.com/MKhiriev/go-wallet-admin/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// Operators are stored through an AdminRepository with bcrypt password
// hashes; sessions are HS256 JWTs.
type authService struct {
	adminRepository store.AdminRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	uuidGenerator *utils.UUIDGenerator
	logger        *logger.Logger
}

// NewAuthService constructs an AuthService wired to adminRepository and
// populated with token parameters from cfg.
func NewAuthService(adminRepository store.AdminRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		adminRepository: adminRepository,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		uuidGenerator:   utils.NewUUIDGenerator(),
		logger:          logger,
	}
}

// Login verifies the credentials of an operator.
//
// Unknown logins and wrong passwords both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, login, password string) (models.Admin, error) {
	log := logger.FromContext(ctx)

	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return models.Admin{}, ErrEmptyCredentials
	}

	admin, err := a.adminRepository.FindAdminByLogin(ctx, login)
	if errors.Is(err, store.ErrAdminNotFound) {
		log.Info().Str("login", login).Msg("login attempt for unknown admin")
		return models.Admin{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("error finding admin")
		return models.Admin{}, fmt.Errorf("error finding admin: %w", err)
	}

	if err = utils.CheckPassword(admin.PasswordHash, password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Info().Str("login", login).Msg("wrong password")
			return models.Admin{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("error checking password")
		return models.Admin{}, fmt.Errorf("error checking password: %w", err)
	}

	return admin, nil
}

// EnsureAdmin creates the operator unless one with login already exists.
// An existing operator keeps its password.
func (a *authService) EnsureAdmin(ctx context.Context, login, password string) (models.Admin, error) {
	log := logger.FromContext(ctx)

	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return models.Admin{}, ErrEmptyCredentials
	}

	existing, err := a.adminRepository.FindAdminByLogin(ctx, login)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrAdminNotFound) {
		return models.Admin{}, fmt.Errorf("error finding admin: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.Admin{}, err
	}

	created, err := a.adminRepository.CreateAdmin(ctx, models.Admin{
		AdminID:      a.uuidGenerator.Generate(),
		Login:        login,
		PasswordHash: hash,
	})
	if errors.Is(err, store.ErrLoginAlreadyExists) {
		// created concurrently by another instance
		return a.adminRepository.FindAdminByLogin(ctx, login)
	}
	if err != nil {
		return models.Admin{}, fmt.Errorf("error creating admin: %w", err)
	}

	log.Info().Str("login", login).Msg("bootstrap admin created")
	return created, nil
}

func (a *authService) CreateToken(ctx context.Context, admin models.Admin) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, admin.AdminID, admin.Login, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Msg("error generating token")
		return models.Token{}, fmt.Errorf("error generating token: %w", err)
	}
	return token, nil
}

// ParseToken validates tokenString. Expired tokens yield ErrTokenIsExpired,
// every other failure ErrInvalidToken.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("invalid session token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return token, nil
}
