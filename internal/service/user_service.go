package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"aula-match/internal/domain"
	"aula-match/internal/email"
	"aula-match/internal/repository"
)

// UserService coordina reglas de negocio para docentes: alta, login con
// password y verificacion de correo por OTP.
type UserService struct {
	logger      *zap.Logger
	users       repository.UserRepository
	emailSender email.Sender
	otpLimiter  RateLimiter
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrOTPNotRequested    = errors.New("otp not requested")
	ErrOTPExpired         = errors.New("otp expired")
	ErrOTPInvalid         = errors.New("otp invalid")
	ErrEmailSendFailure   = errors.New("email send failed")
	ErrRateLimited        = errors.New("rate limited")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("invalid email")
)

const otpTTL = 10 * time.Minute

func NewUserService(logger *zap.Logger, users repository.UserRepository, emailSender email.Sender, otpLimiter RateLimiter) *UserService {
	if otpLimiter == nil {
		otpLimiter = NewMemoryRateLimiter(otpTTL, 3)
	}
	return &UserService{
		logger:      logger,
		users:       users,
		emailSender: emailSender,
		otpLimiter:  otpLimiter,
	}
}

type CreateUserInput struct {
	Email       string
	DisplayName string
	Password    string
}

func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (domain.User, error) {
	if s.users == nil {
		return domain.User{}, errors.New("user service not configured")
	}

	emailAddr := normalizeEmail(input.Email)
	if emailAddr == "" {
		return domain.User{}, ErrInvalidEmail
	}

	passwordHash := ""
	if password := strings.TrimSpace(input.Password); password != "" {
		hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return domain.User{}, err
		}
		passwordHash = string(hashBytes)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        emailAddr,
		DisplayName:  strings.TrimSpace(input.DisplayName),
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *UserService) Authenticate(ctx context.Context, emailAddr, password string) (domain.User, error) {
	if s.users == nil {
		return domain.User{}, errors.New("user service not configured")
	}

	emailAddr = normalizeEmail(emailAddr)
	password = strings.TrimSpace(password)
	if emailAddr == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}
	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if user.PasswordHash == "" {
		return domain.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// RequestOTP genera y envia un codigo de verificacion. Si el correo no existe
// crea el usuario en el mismo paso.
func (s *UserService) RequestOTP(ctx context.Context, emailAddr, displayName string) (domain.User, error) {
	if s.users == nil {
		return domain.User{}, errors.New("user service not configured")
	}

	emailAddr = normalizeEmail(emailAddr)
	if emailAddr == "" {
		return domain.User{}, ErrInvalidEmail
	}
	if s.otpLimiter != nil && !s.otpLimiter.Allow(emailAddr) {
		return domain.User{}, ErrRateLimited
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, err
		}
		user = domain.User{
			ID:          uuid.NewString(),
			Email:       emailAddr,
			DisplayName: strings.TrimSpace(displayName),
			CreatedAt:   time.Now().UTC(),
		}
		if err := s.users.Create(ctx, user); err != nil {
			return domain.User{}, err
		}
	}

	code, hash, expiresAt, err := generateOTP()
	if err != nil {
		return domain.User{}, err
	}
	if err := s.users.UpdateOTP(ctx, user.ID, hash, expiresAt); err != nil {
		return domain.User{}, err
	}

	if s.emailSender == nil {
		return domain.User{}, ErrEmailSendFailure
	}
	if err := s.emailSender.SendVerificationOTP(ctx, emailAddr, code, expiresAt); err != nil {
		if s.logger != nil {
			s.logger.Warn("send verification otp failed", zap.Error(err), zap.String("email", emailAddr))
		}
		return domain.User{}, ErrEmailSendFailure
	}

	user.OtpExpiresAt = &expiresAt
	return user, nil
}

func (s *UserService) VerifyOTP(ctx context.Context, emailAddr, code string) (domain.User, error) {
	if s.users == nil {
		return domain.User{}, errors.New("user service not configured")
	}

	emailAddr = normalizeEmail(emailAddr)
	code = strings.TrimSpace(code)
	if emailAddr == "" {
		return domain.User{}, ErrInvalidEmail
	}
	if !isValidOTPCode(code) {
		return domain.User{}, ErrOTPInvalid
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}

	if user.OtpCodeHash == "" || user.OtpExpiresAt == nil {
		return domain.User{}, ErrOTPNotRequested
	}
	if time.Now().UTC().After(*user.OtpExpiresAt) {
		return domain.User{}, ErrOTPExpired
	}
	if !verifyOTP(code, user.OtpCodeHash) {
		return domain.User{}, ErrOTPInvalid
	}

	verifiedAt := time.Now().UTC()
	if err := s.users.VerifyEmail(ctx, user.ID, verifiedAt); err != nil {
		return domain.User{}, err
	}

	user.EmailVerifiedAt = &verifiedAt
	user.OtpCodeHash = ""
	user.OtpExpiresAt = nil
	return user, nil
}

func generateOTP() (string, string, time.Time, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", "", time.Time{}, err
	}
	code := fmt.Sprintf("%06d", n.Int64())

	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", "", time.Time{}, err
	}
	saltStr := base64.StdEncoding.EncodeToString(salt)
	hashBytes := sha256.Sum256([]byte(saltStr + ":" + code))
	hash := base64.StdEncoding.EncodeToString(hashBytes[:])

	expiresAt := time.Now().UTC().Add(otpTTL)
	return code, saltStr + ":" + hash, expiresAt, nil
}

func verifyOTP(code, stored string) bool {
	parts := strings.Split(stored, ":")
	if len(parts) != 2 {
		return false
	}
	saltStr := parts[0]
	expectedHash := parts[1]
	hashBytes := sha256.Sum256([]byte(saltStr + ":" + code))
	hash := base64.StdEncoding.EncodeToString(hashBytes[:])
	return subtle.ConstantTimeCompare([]byte(hash), []byte(expectedHash)) == 1
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidOTPCode(code string) bool {
	if len(code) != 6 {
		return false
	}
	for _, r := range code {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
