// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-qr-notes/internal/service"
	"github.com/MKhiriev/go-qr-notes/internal/share"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}

// humanizeLookupError translates import-flow failures into actionable
// wording. A stale token and a malformed paste are user-fixable and get
// their own messages.
func humanizeLookupError(err error) string {
	switch {
	case errors.Is(err, share.ErrInvalidCodeFormat):
		return "Неверный формат кода"
	case errors.Is(err, service.ErrTokenMismatch):
		return "Код устарел. Попросите владельца поделиться заново"
	case errors.Is(err, service.ErrNoteNotFound):
		return "Заметка не найдена"
	default:
		return humanizeServerUnavailableError(err)
	}
}

func gateErrorMessage(err error) string {
	if errors.Is(err, service.ErrEmptySecurityPassword) {
		return "Введите пароль безопасности"
	}
	return "Неверный пароль безопасности"
}
