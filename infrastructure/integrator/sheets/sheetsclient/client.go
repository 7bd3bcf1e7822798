package sheetsclient

import (
	"context"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/larscobian/Pizzana-Dashboard/internal/config"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNoCredentials indica que nenhuma credencial de conta de serviço foi configurada
var ErrNoCredentials = errors.New("sheetsclient: credenciais não configuradas")

// SpreadsheetInfo traz os metadados usados no teste de conexão
type SpreadsheetInfo struct {
	Title  string
	Sheets []string
}

type Client interface {
	BatchGet(ctx context.Context, spreadsheetID string, ranges []string) ([][][]interface{}, error)
	GetSpreadsheet(ctx context.Context, spreadsheetID string) (*SpreadsheetInfo, error)
}

// SheetsClient encapsula o sheets.Service, criado na primeira chamada
type SheetsClient struct {
	cfg     config.GoogleSheets
	mu      sync.Mutex
	service *sheets.Service
}

func NewClient(cfg *config.Config) Client {
	return &SheetsClient{cfg: cfg.GoogleSheets}
}

func (c *SheetsClient) BatchGet(ctx context.Context, spreadsheetID string, ranges []string) ([][][]interface{}, error) {
	srv, err := c.getService(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := srv.Spreadsheets.Values.BatchGet(spreadsheetID).
		Ranges(ranges...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "sheetsclient: erro no batchGet")
	}

	// Mantém uma posição por range pedido, mesmo que a API omita algum
	result := make([][][]interface{}, len(ranges))
	for i, vr := range resp.ValueRanges {
		if i >= len(result) || vr == nil {
			continue
		}
		result[i] = vr.Values
	}

	return result, nil
}

func (c *SheetsClient) GetSpreadsheet(ctx context.Context, spreadsheetID string) (*SpreadsheetInfo, error) {
	srv, err := c.getService(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := srv.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(err, "sheetsclient: erro ao obter planilha")
	}

	info := &SpreadsheetInfo{Sheets: make([]string, 0, len(resp.Sheets))}
	if resp.Properties != nil {
		info.Title = resp.Properties.Title
	}
	for _, sheet := range resp.Sheets {
		if sheet == nil || sheet.Properties == nil {
			continue
		}
		info.Sheets = append(info.Sheets, sheet.Properties.Title)
	}

	return info, nil
}

func (c *SheetsClient) getService(ctx context.Context) (*sheets.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.service != nil {
		return c.service, nil
	}

	opts, err := clientOptions(c.cfg)
	if err != nil {
		return nil, err
	}

	// O contexto da requisição não deve cancelar o transporte reaproveitado
	srv, err := sheets.NewService(context.WithoutCancel(ctx), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "sheetsclient: erro ao criar serviço")
	}

	c.service = srv
	return srv, nil
}

// clientOptions monta as credenciais a partir do e-mail e da chave privada da conta
// de serviço ou, na falta deles, do arquivo de credenciais
func clientOptions(cfg config.GoogleSheets) ([]option.ClientOption, error) {
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsReadonlyScope)}

	switch {
	case strings.TrimSpace(cfg.ClientEmail) != "" && strings.TrimSpace(cfg.PrivateKey) != "":
		credentials, err := serviceAccountJSON(cfg.ClientEmail, cfg.PrivateKey)
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithCredentialsJSON(credentials))
	case strings.TrimSpace(cfg.CredentialsFile) != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	default:
		return nil, ErrNoCredentials
	}

	return opts, nil
}

func serviceAccountJSON(clientEmail, privateKey string) ([]byte, error) {
	credentials, err := json.Marshal(map[string]string{
		"type":         "service_account",
		"client_email": clientEmail,
		"private_key":  privateKey,
		"token_uri":    "https://oauth2.googleapis.com/token",
	})
	if err != nil {
		return nil, errors.Wrap(err, "sheetsclient: erro ao montar credenciais")
	}
	return credentials, nil
}
