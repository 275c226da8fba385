package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ValuesAPI 구글 시트 values 연산의 얇은 추상화.
// 원장/백업 어댑터는 이 인터페이스만 사용하고, 테스트는 가짜 구현을 꽂는다.
type ValuesAPI interface {
	Get(ctx context.Context, rng string) ([][]interface{}, error)
	Update(ctx context.Context, rng string, values [][]interface{}) error
	Append(ctx context.Context, rng string, values [][]interface{}) error
	Clear(ctx context.Context, rng string) error
}

// SheetsCredentials 서비스 계정 자격증명
type SheetsCredentials struct {
	ClientEmail string
	PrivateKey  string
	ProjectID   string
}

type sheetsValues struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewSheetsValues 서비스 계정으로 인증된 values 클라이언트 생성
func NewSheetsValues(ctx context.Context, spreadsheetID string, creds SheetsCredentials) (ValuesAPI, error) {
	credJSON, err := json.Marshal(map[string]string{
		"type":         "service_account",
		"client_email": creds.ClientEmail,
		"private_key":  creds.PrivateKey,
		"project_id":   creds.ProjectID,
		"token_uri":    "https://oauth2.googleapis.com/token",
	})
	if err != nil {
		return nil, err
	}
	jwtConf, err := google.JWTConfigFromJSON(credJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("구글 서비스 계정 자격증명 파싱 실패: %w", err)
	}
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(jwtConf.Client(ctx)))
	if err != nil {
		return nil, err
	}
	return &sheetsValues{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (s *sheetsValues) Get(ctx context.Context, rng string) ([][]interface{}, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func (s *sheetsValues) Update(ctx context.Context, rng string, values [][]interface{}) error {
	_, err := s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, rng, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	return err
}

func (s *sheetsValues) Append(ctx context.Context, rng string, values [][]interface{}) error {
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, rng, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	return err
}

func (s *sheetsValues) Clear(ctx context.Context, rng string) error {
	_, err := s.svc.Spreadsheets.Values.
		Clear(s.spreadsheetID, rng, &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	return err
}
