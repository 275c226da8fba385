package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/damda-market/storefront/internal/repository"
)

var (
	ErrPasswordRequired = errors.New("비밀번호를 입력해주세요.")
	ErrWrongPassword    = errors.New("비밀번호가 틀렸습니다.")
	ErrInvalidToken     = errors.New("인증이 필요합니다.")
)

// TokenTTL 세션 토큰 유효기간
const TokenTTL = 24 * time.Hour

// AuthService 시트에 저장된 단일 공유 비밀번호를 서명된 세션 토큰으로 교환한다.
type AuthService struct {
	backup *repository.SheetBackup
	secret []byte
	now    func() time.Time
}

func NewAuthService(backup *repository.SheetBackup, jwtSecret string) *AuthService {
	return &AuthService{backup: backup, secret: []byte(jwtSecret), now: time.Now}
}

// comparePassword 저장값이 bcrypt 해시면 해시 비교, 아니면 평문 비교
func comparePassword(input, stored string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(input)) == nil
	}
	return input == stored
}

// Login 비밀번호 검증 후 admin 토큰 발급
func (s *AuthService) Login(ctx context.Context, password string) (string, error) {
	password = strings.TrimSpace(password)
	if password == "" {
		return "", ErrPasswordRequired
	}
	stored, err := s.backup.GetPassword(ctx)
	if err != nil {
		return "", err
	}
	if !comparePassword(password, stored) {
		return "", ErrWrongPassword
	}
	return s.GenerateToken()
}

// GenerateToken HS256 서명, 24시간 만료
func (s *AuthService) GenerateToken() (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(TokenTTL).Unix(),
	})
	return token.SignedString(s.secret)
}

// VerifyToken 쿠키에서 꺼낸 토큰 검증. 실패 사유는 구분하지 않는다.
func (s *AuthService) VerifyToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

// ChangePassword 현재 비밀번호 확인 후 시트의 비밀번호 셀 갱신
func (s *AuthService) ChangePassword(ctx context.Context, current, next string) error {
	if strings.TrimSpace(current) == "" || strings.TrimSpace(next) == "" {
		return ErrPasswordRequired
	}
	stored, err := s.backup.GetPassword(ctx)
	if err != nil {
		return err
	}
	if !comparePassword(current, stored) {
		return ErrWrongPassword
	}
	return s.backup.UpdatePassword(ctx, next)
}
