package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrIncidentNotFound = errors.New("incident not found")
	ErrDeviceNotFound   = errors.New("device not found")
)

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

// ErrPermanentDelivery помечает ошибки шлюза, которые нет смысла повторять (например, невалидный токен)
var ErrPermanentDelivery = errors.New("permanent delivery failure")
