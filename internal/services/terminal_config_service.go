package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/models/db_models"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/repositories"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/pkg/utils"
)

const (
	terminalCodeLength = 10
	terminalModelMax   = 10
)

var (
	macAddressPattern = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}([0-9A-Fa-f]{2})$`)
	alphanumericOnly  = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

type TerminalConfigServiceInterface interface {
	GetByID(ctx context.Context, code, model string) (*db_models.TerminalConfig, error)
	Create(ctx context.Context, cfg *db_models.TerminalConfig) (*db_models.TerminalConfig, error)
	// GetCurrent returns the single active terminal configuration.
	// Zero rows is ErrNotFound, more than one is ErrDuplicate; neither is a
	// silent default.
	GetCurrent(ctx context.Context) (*db_models.TerminalConfig, error)
	List(ctx context.Context) ([]db_models.TerminalConfig, error)
	UpdateActivationDate(ctx context.Context, code, model string, date time.Time) (*db_models.TerminalConfig, error)
}

type TerminalConfigService struct {
	configRepo repositories.TerminalConfigRepositoryInterface
}

func NewTerminalConfigService(configRepo repositories.TerminalConfigRepositoryInterface) TerminalConfigServiceInterface {
	return &TerminalConfigService{configRepo: configRepo}
}

func (s *TerminalConfigService) GetByID(ctx context.Context, code, model string) (*db_models.TerminalConfig, error) {
	return s.configRepo.FindByID(ctx, code, model)
}

func (s *TerminalConfigService) Create(ctx context.Context, cfg *db_models.TerminalConfig) (*db_models.TerminalConfig, error) {
	if err := s.validateConfig(ctx, cfg); err != nil {
		return nil, err
	}

	if err := s.configRepo.Save(ctx, cfg); err != nil {
		return nil, err
	}
	log.Printf("Configuracion creada para POS %s/%s", cfg.Code, cfg.Model)
	return cfg, nil
}

func (s *TerminalConfigService) GetCurrent(ctx context.Context) (*db_models.TerminalConfig, error) {
	configs, err := s.configRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(configs) == 0 {
		log.Printf("No existe configuracion para este POS")
		return nil, fmt.Errorf("%w: configuracion actual", utils.ErrNotFound)
	}
	if len(configs) > 1 {
		log.Printf("Se encontraron multiples configuraciones para el POS")
		return nil, fmt.Errorf("%w: multiples configuraciones", utils.ErrDuplicate)
	}
	return &configs[0], nil
}

func (s *TerminalConfigService) List(ctx context.Context) ([]db_models.TerminalConfig, error) {
	return s.configRepo.FindAll(ctx)
}

func (s *TerminalConfigService) UpdateActivationDate(ctx context.Context, code, model string, date time.Time) (*db_models.TerminalConfig, error) {
	cfg, err := s.configRepo.FindByID(ctx, code, model)
	if err != nil {
		return nil, err
	}

	if date.After(time.Now()) {
		return nil, fmt.Errorf("%w: la fecha de activacion no puede ser posterior a la actual", utils.ErrInvalidData)
	}

	cfg.ActivatedAt = &date
	if err := s.configRepo.Save(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *TerminalConfigService) validateConfig(ctx context.Context, cfg *db_models.TerminalConfig) error {
	if len(cfg.Code) != terminalCodeLength || !alphanumericOnly.MatchString(cfg.Code) {
		return fmt.Errorf("%w: codigo POS invalido: %s", utils.ErrInvalidData, cfg.Code)
	}
	if cfg.Model == "" || len(cfg.Model) > terminalModelMax || !alphanumericOnly.MatchString(cfg.Model) {
		return fmt.Errorf("%w: modelo invalido: %s", utils.ErrInvalidData, cfg.Model)
	}
	if !macAddressPattern.MatchString(cfg.MACAddress) {
		return fmt.Errorf("%w: direccion MAC con formato incorrecto: %s", utils.ErrInvalidData, cfg.MACAddress)
	}
	if cfg.ActivatedAt != nil && cfg.ActivatedAt.After(time.Now()) {
		return fmt.Errorf("%w: fecha de activacion posterior a la actual", utils.ErrInvalidData)
	}
	if cfg.MerchantCode <= 0 {
		return fmt.Errorf("%w: codigo de comercio invalido: %d", utils.ErrInvalidData, cfg.MerchantCode)
	}

	duplicates, err := s.configRepo.CountByMACAddressExcluding(ctx, cfg.MACAddress, cfg.Code, cfg.Model)
	if err != nil {
		return err
	}
	if duplicates > 0 {
		return fmt.Errorf("%w: direccion MAC ya registrada: %s", utils.ErrDuplicate, cfg.MACAddress)
	}
	return nil
}
