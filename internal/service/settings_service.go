package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fernet/fernet-go"

	"github.com/kingao12/investment-platform/internal/apperrors"
	"github.com/kingao12/investment-platform/internal/repository"
)

// settingKeyEquityAPIKey is where the Alpha Vantage API key lives in the
// setting table. The stored value is a fernet token, never the plain key.
const settingKeyEquityAPIKey = "alpha_vantage_api_key"

// SettingsService handles application settings, encrypting sensitive values
// with fernet before they reach the database. It implements
// alphavantage.KeySource: the stored key wins, the environment key is the
// fallback.
type SettingsService struct {
	settingsRepo   *repository.SettingsRepository
	fernetKey      *fernet.Key
	fallbackAPIKey string
}

// NewSettingsService creates a new SettingsService. fernetKey is the base64
// fernet key from configuration; an empty key disables encrypted settings and
// EquityAPIKey serves only the fallback.
func NewSettingsService(settingsRepo *repository.SettingsRepository, fernetKey, fallbackAPIKey string) (*SettingsService, error) {
	s := &SettingsService{
		settingsRepo:   settingsRepo,
		fallbackAPIKey: fallbackAPIKey,
	}

	if fernetKey != "" {
		key, err := fernet.DecodeKey(fernetKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decode fernet key: %w", err)
		}
		s.fernetKey = key
	}

	return s, nil
}

// EquityAPIKey returns the Alpha Vantage API key: the decrypted stored value
// when one exists, otherwise the key from the environment. Returns an error
// only when neither source yields a key; the price source maps that to a
// no-data outcome.
func (s *SettingsService) EquityAPIKey() (string, error) {
	value, encrypted, err := s.settingsRepo.GetSetting(settingKeyEquityAPIKey)
	if errors.Is(err, apperrors.ErrSettingNotFound) {
		return s.fallback()
	}
	if err != nil {
		return "", err
	}

	if !encrypted {
		return value, nil
	}
	if s.fernetKey == nil {
		return s.fallback()
	}

	plain := fernet.VerifyAndDecrypt([]byte(value), 0, []*fernet.Key{s.fernetKey})
	if plain == nil {
		return "", fmt.Errorf("failed to decrypt stored setting %s", settingKeyEquityAPIKey)
	}
	return string(plain), nil
}

// SetEquityAPIKey encrypts and stores the Alpha Vantage API key. Without a
// configured fernet key the value is stored in the clear and flagged as such.
func (s *SettingsService) SetEquityAPIKey(ctx context.Context, apiKey string) error {
	if s.fernetKey == nil {
		return s.settingsRepo.UpsertSetting(ctx, settingKeyEquityAPIKey, apiKey, false)
	}

	token, err := fernet.EncryptAndSign([]byte(apiKey), s.fernetKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt setting %s: %w", settingKeyEquityAPIKey, err)
	}
	return s.settingsRepo.UpsertSetting(ctx, settingKeyEquityAPIKey, string(token), true)
}

func (s *SettingsService) fallback() (string, error) {
	if s.fallbackAPIKey == "" {
		return "", fmt.Errorf("no equity API key configured")
	}
	return s.fallbackAPIKey, nil
}
