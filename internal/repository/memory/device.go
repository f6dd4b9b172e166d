package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shenikar/crash_alert_system/internal/models"
)

type DeviceStore struct {
	mu      sync.Mutex
	devices map[string]map[string]*models.DeviceEntry // user_id -> device_id -> entry
}

func NewDeviceStore() *DeviceStore {
	return &DeviceStore{devices: make(map[string]map[string]*models.DeviceEntry)}
}

func (s *DeviceStore) Upsert(_ context.Context, reg models.DeviceRegistration) (*models.DeviceEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userDevices, ok := s.devices[reg.UserID]
	if !ok {
		userDevices = make(map[string]*models.DeviceEntry)
		s.devices[reg.UserID] = userDevices
	}

	otherPrimary := false
	for id, d := range userDevices {
		if id != reg.DeviceID && d.IsActive && d.IsPrimary {
			otherPrimary = true
			break
		}
	}

	entry, ok := userDevices[reg.DeviceID]
	if !ok {
		entry = &models.DeviceEntry{
			UserID:    reg.UserID,
			DeviceID:  reg.DeviceID,
			CreatedAt: reg.At,
		}
		userDevices[reg.DeviceID] = entry
	}
	entry.DeliveryAddress = reg.DeliveryAddress
	entry.LastActiveAt = reg.At
	entry.IsActive = true
	entry.IsPrimary = !otherPrimary

	c := *entry
	return &c, nil
}

func (s *DeviceStore) SetPrimary(_ context.Context, userID, deviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.devices[userID][deviceID]
	if !ok || !target.IsActive {
		return fmt.Errorf("device %s: %w", deviceID, models.ErrDeviceNotFound)
	}
	for _, d := range s.devices[userID] {
		d.IsPrimary = false
	}
	target.IsPrimary = true
	return nil
}

func (s *DeviceStore) Deactivate(_ context.Context, userID, deviceID string) (*models.DeviceEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.devices[userID][deviceID]
	if !ok {
		return nil, fmt.Errorf("device %s: %w", deviceID, models.ErrDeviceNotFound)
	}
	if !target.IsActive {
		return nil, nil
	}

	wasPrimary := target.IsPrimary
	target.IsActive = false
	target.IsPrimary = false
	if !wasPrimary {
		return nil, nil
	}

	active := s.activeLocked(userID)
	if len(active) == 0 {
		return nil, nil
	}
	active[0].IsPrimary = true
	c := *active[0]
	return &c, nil
}

func (s *DeviceStore) ListActive(_ context.Context, userID string) ([]*models.DeviceEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := s.activeLocked(userID)
	out := make([]*models.DeviceEntry, len(active))
	for i, d := range active {
		c := *d
		out[i] = &c
	}
	return out, nil
}

// activeLocked - активные устройства, самые свежие первыми; вызывать под mu
func (s *DeviceStore) activeLocked(userID string) []*models.DeviceEntry {
	active := make([]*models.DeviceEntry, 0)
	for _, d := range s.devices[userID] {
		if d.IsActive {
			active = append(active, d)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		if !active[i].LastActiveAt.Equal(active[j].LastActiveAt) {
			return active[i].LastActiveAt.After(active[j].LastActiveAt)
		}
		return active[i].DeviceID < active[j].DeviceID
	})
	return active
}
