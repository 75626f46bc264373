package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"directorio/internal/apperr"
	"directorio/internal/config"
	"directorio/internal/dto"
	"directorio/internal/model"
	"directorio/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrSesionInvalida is returned for missing, malformed, expired or revoked tokens.
var ErrSesionInvalida = errors.New("sesion invalida o expirada")

const msgUsuarioExiste = "El usuario o email ya existe"

type AuthService interface {
	Registrar(ctx context.Context, form dto.RegistroForm) (uint, error)
	Autenticar(ctx context.Context, form dto.LoginForm) (*dto.Sesion, error)
	// Verificar validates a session token and returns its identity.
	Verificar(ctx context.Context, token string) (*dto.Identidad, error)
	CerrarSesion(ctx context.Context, id dto.Identidad) error
}

// Revocaciones remembers logged-out token ids until they would have expired.
type Revocaciones interface {
	Revocar(ctx context.Context, tokenID string, ttl time.Duration) error
	Revocado(ctx context.Context, tokenID string) (bool, error)
}

// SinRevocaciones is used when no Redis is configured: logout only clears
// the cookie.
type SinRevocaciones struct{}

func (SinRevocaciones) Revocar(context.Context, string, time.Duration) error { return nil }
func (SinRevocaciones) Revocado(context.Context, string) (bool, error)       { return false, nil }

type claimsSesion struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type authService struct {
	repo         repository.UsuarioRepository
	revocaciones Revocaciones
	secreto      []byte
	ttl          time.Duration
	costo        int
	// hashFicticio is compared against when the user does not exist so both
	// failure paths cost the same.
	hashFicticio []byte
	ahora        func() time.Time
}

// CostoBcrypt is the configured BCRYPT_COST, or bcrypt.DefaultCost when it
// is outside the range bcrypt accepts.
func CostoBcrypt(cfg *config.Config) int {
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return cfg.BcryptCost
}

func NewAuthService(repo repository.UsuarioRepository, revocaciones Revocaciones, cfg *config.Config) AuthService {
	costo := CostoBcrypt(cfg)
	if revocaciones == nil {
		revocaciones = SinRevocaciones{}
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), costo)
	return &authService{
		repo:         repo,
		revocaciones: revocaciones,
		secreto:      []byte(cfg.SecretKey),
		ttl:          cfg.SessionTTL(),
		costo:        costo,
		hashFicticio: hash,
		ahora:        time.Now,
	}
}

func (s *authService) Registrar(ctx context.Context, f dto.RegistroForm) (uint, error) {
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)
	if err := validar(f); err != nil {
		return 0, err
	}

	// Best effort: a concurrent insert still hits the unique index below.
	existe, err := s.repo.Existe(ctx, f.Username, f.Email)
	if err != nil {
		return 0, err
	}
	if existe {
		return 0, apperr.Duplicado(msgUsuarioExiste, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(f.Password), s.costo)
	if err != nil {
		return 0, err
	}
	u := &model.Usuario{Username: f.Username, Email: f.Email, PasswordHash: string(hash)}
	if err := s.repo.Crear(ctx, u); err != nil {
		if errors.Is(err, apperr.ErrDuplicado) {
			return 0, apperr.Duplicado(msgUsuarioExiste, err)
		}
		return 0, err
	}
	return u.ID, nil
}

func (s *authService) Autenticar(ctx context.Context, f dto.LoginForm) (*dto.Sesion, error) {
	f.Username = strings.TrimSpace(f.Username)
	if f.Username == "" || f.Password == "" {
		return nil, apperr.Validacion("Ingrese usuario y contraseña")
	}

	user, err := s.repo.ObtenerPorUsername(ctx, f.Username)
	if err != nil {
		if errors.Is(err, apperr.ErrNoEncontrado) {
			_ = bcrypt.CompareHashAndPassword(s.hashFicticio, []byte(f.Password))
			return nil, apperr.Credenciales()
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(f.Password)); err != nil {
		return nil, apperr.Credenciales()
	}

	return s.emitir(user)
}

func (s *authService) Verificar(ctx context.Context, token string) (*dto.Identidad, error) {
	if token == "" {
		return nil, ErrSesionInvalida
	}
	claims := &claimsSesion{}
	tok, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secreto, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.ahora))
	if err != nil || !tok.Valid || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, ErrSesionInvalida
	}

	revocado, err := s.revocaciones.Revocado(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revocado {
		return nil, ErrSesionInvalida
	}

	return &dto.Identidad{
		UsuarioID: claims.UserID,
		Username:  claims.Username,
		TokenID:   claims.ID,
		Expira:    claims.ExpiresAt.Time,
	}, nil
}

func (s *authService) CerrarSesion(ctx context.Context, id dto.Identidad) error {
	ttl := id.Expira.Sub(s.ahora())
	if id.TokenID == "" || ttl <= 0 {
		return nil
	}
	return s.revocaciones.Revocar(ctx, id.TokenID, ttl)
}

func (s *authService) emitir(user *model.Usuario) (*dto.Sesion, error) {
	ahora := s.ahora()
	claims := claimsSesion{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(ahora),
			ExpiresAt: jwt.NewNumericDate(ahora.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secreto)
	if err != nil {
		return nil, err
	}
	return &dto.Sesion{
		Token: signed,
		Identidad: dto.Identidad{
			UsuarioID: user.ID,
			Username:  user.Username,
			TokenID:   claims.ID,
			Expira:    claims.ExpiresAt.Time,
		},
	}, nil
}
