// Package services содержит логику бизнес-уровня для регистрации, входа
// и проверки сессий пользователей.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/highschool-prep/internal/lib/jwt"
	"github.com/magabrotheeeer/highschool-prep/internal/lib/password"
	"github.com/magabrotheeeer/highschool-prep/internal/lib/sl"
	"github.com/magabrotheeeer/highschool-prep/internal/metrics"
	"github.com/magabrotheeeer/highschool-prep/internal/models"
	"github.com/magabrotheeeer/highschool-prep/internal/storage"
)

var (
	// ErrDuplicateEmail возвращается при регистрации на уже занятый email.
	ErrDuplicateEmail = errors.New("email already used")
	// ErrInvalidCredentials возвращается при неизвестном email и при неверном пароле.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingCookie возвращается, если сессионный токен не передан.
	ErrMissingCookie = errors.New("missing session cookie")
	// ErrInvalidToken возвращается для токена, не прошедшего проверку.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrUserNotFound возвращается, если пользователь из токена больше не существует.
	ErrUserNotFound = errors.New("user not found")
	// ErrPasswordTooLong возвращается для пароля или uid длиннее password.MaxLength байт.
	ErrPasswordTooLong = errors.New("password is too long")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// Create сохраняет нового пользователя и возвращает его с присвоенным ID.
	Create(ctx context.Context, user models.User) (*models.User, error)
	// FindByEmail возвращает пользователя по email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// FindByID возвращает пользователя по ID.
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// PasswordHasher хэширует и сверяет пароли.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Session результат успешной аутентификации.
type Session struct {
	Profile models.Profile
	Token   string
}

// AuthService отвечает за регистрацию, вход и проверку сессий.
type AuthService struct {
	users    UserRepository
	hasher   PasswordHasher
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, hasher PasswordHasher, jwtMaker jwt.Maker, log *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// Register создаёт пользователя с хэшированным паролем и выпускает сессию.
func (s *AuthService) Register(ctx context.Context, name, email, rawPassword, image string) (*Session, error) {
	const op = "services.auth.Register"

	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		metrics.RecordAuthAttempt("register", metrics.OutcomeFailure)
		return nil, fmt.Errorf("%s: %w", op, ErrDuplicateEmail)
	case !errors.Is(err, storage.ErrUserNotFound):
		metrics.RecordAuthAttempt("register", metrics.OutcomeError)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	session, err := s.create(ctx, name, email, rawPassword, image)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) || errors.Is(err, ErrPasswordTooLong) {
			metrics.RecordAuthAttempt("register", metrics.OutcomeFailure)
		} else {
			metrics.RecordAuthAttempt("register", metrics.OutcomeError)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.RecordAuthAttempt("register", metrics.OutcomeSuccess)
	s.log.Info("user registered", slog.String("op", op), sl.UserID(session.Profile.ID))
	return session, nil
}

// Login проверяет пароль и выпускает сессию. Неизвестный email и неверный
// пароль неразличимы для вызывающего.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*Session, error) {
	const op = "services.auth.Login"

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			metrics.RecordAuthAttempt("login", metrics.OutcomeFailure)
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		metrics.RecordAuthAttempt("login", metrics.OutcomeError)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.hasher.Compare(user.PasswordHash, rawPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			metrics.RecordAuthAttempt("login", metrics.OutcomeFailure)
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		metrics.RecordAuthAttempt("login", metrics.OutcomeError)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	session, err := s.issue(user)
	if err != nil {
		metrics.RecordAuthAttempt("login", metrics.OutcomeError)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	metrics.RecordAuthAttempt("login", metrics.OutcomeSuccess)
	return session, nil
}

// LoginWithGoogle входит существующим пользователем, сверяя uid Google
// с сохранённым хэшем, либо создаёт нового пользователя. created сообщает,
// был ли пользователь создан.
func (s *AuthService) LoginWithGoogle(ctx context.Context, name, email, image, uid string) (session *Session, created bool, err error) {
	const op = "services.auth.LoginWithGoogle"

	user, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if cmpErr := s.hasher.Compare(user.PasswordHash, uid); cmpErr != nil {
			if errors.Is(cmpErr, password.ErrMismatch) {
				metrics.RecordAuthAttempt("google", metrics.OutcomeFailure)
				return nil, false, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
			}
			metrics.RecordAuthAttempt("google", metrics.OutcomeError)
			return nil, false, fmt.Errorf("%s: %w", op, cmpErr)
		}
		session, err = s.issue(user)
		if err != nil {
			metrics.RecordAuthAttempt("google", metrics.OutcomeError)
			return nil, false, fmt.Errorf("%s: %w", op, err)
		}
		metrics.RecordAuthAttempt("google", metrics.OutcomeSuccess)
		return session, false, nil
	case !errors.Is(err, storage.ErrUserNotFound):
		metrics.RecordAuthAttempt("google", metrics.OutcomeError)
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	session, err = s.create(ctx, name, email, uid, image)
	if err != nil {
		if errors.Is(err, ErrPasswordTooLong) {
			metrics.RecordAuthAttempt("google", metrics.OutcomeFailure)
		} else {
			metrics.RecordAuthAttempt("google", metrics.OutcomeError)
		}
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	metrics.RecordAuthAttempt("google", metrics.OutcomeSuccess)
	s.log.Info("user registered with google", slog.String("op", op), sl.UserID(session.Profile.ID))
	return session, true, nil
}

// VerifySession проверяет токен и возвращает профиль, сохранённый в нём при выпуске.
func (s *AuthService) VerifySession(token string) (*models.Profile, error) {
	const op = "services.auth.VerifySession"
	if token == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingCookie)
	}
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidToken, err)
	}
	profile := claims.User
	profile.ID = claims.UserID()
	return &profile, nil
}

// CurrentUser перечитывает пользователя уже проверенной сессии и выпускает
// свежую сессию, отражающую текущее состояние премиум-доступа.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*Session, error) {
	const op = "services.auth.CurrentUser"
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	session, err := s.issue(user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return session, nil
}

func (s *AuthService) create(ctx context.Context, name, email, secret, image string) (*Session, error) {
	hashed, err := s.hasher.Hash(secret)
	if errors.Is(err, password.ErrTooLong) {
		return nil, ErrPasswordTooLong
	}
	if err != nil {
		return nil, err
	}
	user, err := s.users.Create(ctx, models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		Image:        image,
	})
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return s.issue(user)
}

func (s *AuthService) issue(user *models.User) (*Session, error) {
	profile := user.Profile()
	token, err := s.jwtMaker.GenerateToken(profile)
	if err != nil {
		return nil, err
	}
	return &Session{Profile: profile, Token: token}, nil
}
