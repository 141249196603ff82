package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/models/db_models"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/pkg/utils"
)

type fakeConfigRepo struct {
	configs map[string]*db_models.TerminalConfig
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{configs: map[string]*db_models.TerminalConfig{}}
}

func (f *fakeConfigRepo) key(code, model string) string { return code + "/" + model }

func (f *fakeConfigRepo) Save(_ context.Context, cfg *db_models.TerminalConfig) error {
	stored := *cfg
	f.configs[f.key(cfg.Code, cfg.Model)] = &stored
	return nil
}

func (f *fakeConfigRepo) FindByID(_ context.Context, code, model string) (*db_models.TerminalConfig, error) {
	cfg, ok := f.configs[f.key(code, model)]
	if !ok {
		return nil, utils.ErrNotFound
	}
	found := *cfg
	return &found, nil
}

func (f *fakeConfigRepo) FindAll(context.Context) ([]db_models.TerminalConfig, error) {
	all := make([]db_models.TerminalConfig, 0, len(f.configs))
	for _, cfg := range f.configs {
		all = append(all, *cfg)
	}
	return all, nil
}

func (f *fakeConfigRepo) CountByMACAddressExcluding(_ context.Context, mac, code, model string) (int64, error) {
	var count int64
	for _, cfg := range f.configs {
		if cfg.MACAddress == mac && f.key(cfg.Code, cfg.Model) != f.key(code, model) {
			count++
		}
	}
	return count, nil
}

func validConfig() *db_models.TerminalConfig {
	return &db_models.TerminalConfig{
		Code:         "POS1234567",
		Model:        "MODELX",
		MACAddress:   "aa:bb:cc:dd:ee:ff",
		MerchantCode: 42,
	}
}

func TestConfigCreateValid(t *testing.T) {
	svc := NewTerminalConfigService(newFakeConfigRepo())

	cfg, err := svc.Create(context.Background(), validConfig())
	require.NoError(t, err)
	require.Equal(t, "POS1234567", cfg.Code)
}

func TestConfigCreateValidation(t *testing.T) {
	future := time.Now().Add(48 * time.Hour)

	cases := []struct {
		name    string
		mutate  func(*db_models.TerminalConfig)
		wantErr error
	}{
		{"code too short", func(c *db_models.TerminalConfig) { c.Code = "POS1" }, utils.ErrInvalidData},
		{"code not alphanumeric", func(c *db_models.TerminalConfig) { c.Code = "POS-123456" }, utils.ErrInvalidData},
		{"model too long", func(c *db_models.TerminalConfig) { c.Model = "MODELTOOLONG" }, utils.ErrInvalidData},
		{"model empty", func(c *db_models.TerminalConfig) { c.Model = "" }, utils.ErrInvalidData},
		{"bad mac", func(c *db_models.TerminalConfig) { c.MACAddress = "not-a-mac" }, utils.ErrInvalidData},
		{"future activation", func(c *db_models.TerminalConfig) { c.ActivatedAt = &future }, utils.ErrInvalidData},
		{"merchant code zero", func(c *db_models.TerminalConfig) { c.MerchantCode = 0 }, utils.ErrInvalidData},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewTerminalConfigService(newFakeConfigRepo())
			cfg := validConfig()
			tc.mutate(cfg)

			_, err := svc.Create(context.Background(), cfg)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestConfigCreateDuplicateMAC(t *testing.T) {
	repo := newFakeConfigRepo()
	svc := NewTerminalConfigService(repo)

	_, err := svc.Create(context.Background(), validConfig())
	require.NoError(t, err)

	other := validConfig()
	other.Code = "POS7654321"
	_, err = svc.Create(context.Background(), other)
	require.ErrorIs(t, err, utils.ErrDuplicate)
}

func TestGetCurrentSingleton(t *testing.T) {
	repo := newFakeConfigRepo()
	svc := NewTerminalConfigService(repo)

	_, err := svc.GetCurrent(context.Background())
	require.ErrorIs(t, err, utils.ErrNotFound)

	_, err = svc.Create(context.Background(), validConfig())
	require.NoError(t, err)

	current, err := svc.GetCurrent(context.Background())
	require.NoError(t, err)
	require.Equal(t, 42, current.MerchantCode)

	second := validConfig()
	second.Code = "POS7654321"
	second.MACAddress = "11:22:33:44:55:66"
	_, err = svc.Create(context.Background(), second)
	require.NoError(t, err)

	_, err = svc.GetCurrent(context.Background())
	require.ErrorIs(t, err, utils.ErrDuplicate)
}

func TestUpdateActivationDate(t *testing.T) {
	repo := newFakeConfigRepo()
	svc := NewTerminalConfigService(repo)

	_, err := svc.Create(context.Background(), validConfig())
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	cfg, err := svc.UpdateActivationDate(context.Background(), "POS1234567", "MODELX", past)
	require.NoError(t, err)
	require.WithinDuration(t, past, *cfg.ActivatedAt, time.Second)

	_, err = svc.UpdateActivationDate(context.Background(), "POS1234567", "MODELX", time.Now().Add(time.Hour))
	require.ErrorIs(t, err, utils.ErrInvalidData)

	_, err = svc.UpdateActivationDate(context.Background(), "UNKNOWN999", "MODELX", past)
	require.ErrorIs(t, err, utils.ErrNotFound)
}
