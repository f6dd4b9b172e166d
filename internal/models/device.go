package models

import "time"

// DeviceEntry - физическое устройство пользователя с адресом доставки (push token)
type DeviceEntry struct {
	UserID          string    `json:"user_id"`
	DeviceID        string    `json:"device_id"`
	DeliveryAddress string    `json:"delivery_address"`
	LastActiveAt    time.Time `json:"last_active_at"`
	IsPrimary       bool      `json:"is_primary"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// DeviceRegistration - запрос на регистрацию или обновление токена
type DeviceRegistration struct {
	UserID          string
	DeviceID        string
	DeliveryAddress string
	At              time.Time
}

func (r DeviceRegistration) Validate() error {
	switch {
	case r.UserID == "":
		return invalid("user_id is required")
	case r.DeviceID == "":
		return invalid("device_id is required")
	case r.DeliveryAddress == "":
		return invalid("delivery_address is required")
	}
	return nil
}
