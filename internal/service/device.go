package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/crash_alert_system/internal/config"
	"github.com/shenikar/crash_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=device.go -destination=mocks/device_mock.go -package=mocks

// DeviceRepository определяет контракт реестра устройств.
// Каждая операция атомарна в пределах пользователя.
type DeviceRepository interface {
	// Upsert обновляет активное устройство, реактивирует удаленное или создает новое.
	// Первое активное устройство пользователя становится primary.
	Upsert(ctx context.Context, reg models.DeviceRegistration) (*models.DeviceEntry, error)
	// SetPrimary снимает primary с предыдущего устройства и ставит на deviceID в одной транзакции
	SetPrimary(ctx context.Context, userID, deviceID string) error
	// Deactivate мягко удаляет устройство; если оно было primary, продвигает самое свежее из оставшихся
	Deactivate(ctx context.Context, userID, deviceID string) (promoted *models.DeviceEntry, err error)
	// ListActive возвращает активные устройства, самые свежие первыми
	ListActive(ctx context.Context, userID string) ([]*models.DeviceEntry, error)
}

// DeviceService определяет контракт реестра токенов доставки
type DeviceService interface {
	RegisterDevice(ctx context.Context, userID, deviceID, deliveryAddress string) (*models.DeviceEntry, error)
	SetPrimary(ctx context.Context, userID, deviceID string) error
	DeactivateDevice(ctx context.Context, userID, deviceID string) error
	GetActiveDevices(ctx context.Context, userID string) ([]*models.DeviceEntry, error)
	GetPrimary(ctx context.Context, userID string) (*models.DeviceEntry, error)
}

type deviceService struct {
	repo   DeviceRepository
	logger *logrus.Logger
	cfg    *config.Config
	now    func() time.Time
}

func NewDeviceService(repo DeviceRepository, logger *logrus.Logger, cfg *config.Config) DeviceService {
	return &deviceService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// RegisterDevice регистрирует устройство или обновляет его токен
func (s *deviceService) RegisterDevice(ctx context.Context, userID, deviceID, deliveryAddress string) (*models.DeviceEntry, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "device",
		"method":    "RegisterDevice",
		"user_id":   userID,
		"device_id": deviceID,
	})

	reg := models.DeviceRegistration{
		UserID:          userID,
		DeviceID:        deviceID,
		DeliveryAddress: deliveryAddress,
		At:              s.now(),
	}
	if err := reg.Validate(); err != nil {
		log.WithError(err).Warn("Rejected invalid device registration")
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()

	entry, err := s.repo.Upsert(ctx, reg)
	if err != nil {
		log.WithError(err).Error("Failed to register device in repository")
		return nil, fmt.Errorf("service: could not register device: %w", err)
	}

	log.WithField("is_primary", entry.IsPrimary).Info("Device registered")
	return entry, nil
}

// SetPrimary назначает основное устройство пользователя
func (s *deviceService) SetPrimary(ctx context.Context, userID, deviceID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "device",
		"method":    "SetPrimary",
		"user_id":   userID,
		"device_id": deviceID,
	})
	if userID == "" || deviceID == "" {
		return fmt.Errorf("%w: user_id and device_id are required", models.ErrInvalidInput)
	}

	ctx, cancel := withTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()

	if err := s.repo.SetPrimary(ctx, userID, deviceID); err != nil {
		if errors.Is(err, models.ErrDeviceNotFound) {
			log.Warn("Attempted to set primary on unknown or inactive device")
			return fmt.Errorf("service: device %s not found for set primary: %w", deviceID, err)
		}
		log.WithError(err).Error("Failed to set primary device")
		return fmt.Errorf("service: could not set primary device: %w", err)
	}

	log.Info("Primary device reassigned")
	return nil
}

// DeactivateDevice мягко удаляет устройство (logout)
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "device",
		"method":    "DeactivateDevice",
		"user_id":   userID,
		"device_id": deviceID,
	})
	if userID == "" || deviceID == "" {
		return fmt.Errorf("%w: user_id and device_id are required", models.ErrInvalidInput)
	}

	ctx, cancel := withTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()

	promoted, err := s.repo.Deactivate(ctx, userID, deviceID)
	if err != nil {
		if errors.Is(err, models.ErrDeviceNotFound) {
			log.Warn("Attempted to deactivate unknown device")
			return fmt.Errorf("service: device %s not found for deactivate: %w", deviceID, err)
		}
		log.WithError(err).Error("Failed to deactivate device")
		return fmt.Errorf("service: could not deactivate device: %w", err)
	}

	if promoted != nil {
		log.WithField("promoted_device_id", promoted.DeviceID).Info("Device deactivated, primary promoted")
		return nil
	}
	log.Info("Device deactivated")
	return nil
}

func (s *deviceService) GetActiveDevices(ctx context.Context, userID string) ([]*models.DeviceEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", models.ErrInvalidInput)
	}
	ctx, cancel := withTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()

	devices, err := s.repo.ListActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list active devices: %w", err)
	}
	return devices, nil
}

// GetPrimary возвращает основное устройство или nil, если активных устройств нет
func (s *deviceService) GetPrimary(ctx context.Context, userID string) (*models.DeviceEntry, error) {
	devices, err := s.GetActiveDevices(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, d := range devices {
		if d.IsPrimary {
			return d, nil
		}
	}
	return nil, nil
}
