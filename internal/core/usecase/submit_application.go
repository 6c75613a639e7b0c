package usecase

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"catalog-gateway/internal/contextkeys"
	"catalog-gateway/internal/contracts"
	"catalog-gateway/internal/core/domain"
	"catalog-gateway/internal/core/port"
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type SubmitApplicationUseCase struct {
	applications port.ApplicationsBackendPort
}

func NewSubmitApplicationUseCase(applications port.ApplicationsBackendPort) *SubmitApplicationUseCase {
	return &SubmitApplicationUseCase{applications: applications}
}

// Execute валидирует заявку, нормализует телефон и отправляет в backend.
// В отличие от операций чтения, ошибки здесь всегда возвращаются
// наверх: пользователь должен увидеть, что заявка не ушла.
func (uc *SubmitApplicationUseCase) Execute(ctx context.Context, form domain.ApplicationForm) (json.RawMessage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SubmitApplicationUseCase",
		"kind":     form.Kind,
	})

	ucLogger.Info("Use case started", nil)

	if err := validateForm(&form); err != nil {
		ucLogger.Warn("Application form validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	// Схема — второй рубеж после ручной проверки: ловит то, что
	// просочилось бы мимо (лишние пробелы, сломанный формат)
	if err := contracts.ValidateApplicationForm(form); err != nil {
		ucLogger.Warn("Application form failed schema validation", port.Fields{"error": err.Error()})
		return nil, &domain.ValidationError{Field: "form", Message: "Проверьте правильность заполнения формы"}
	}

	var (
		resp json.RawMessage
		err  error
	)
	switch form.Kind {
	case domain.ApplicationKindContact:
		resp, err = uc.applications.SubmitContactApplication(ctx, form)
	case domain.ApplicationKindLandPlot:
		resp, err = uc.applications.SubmitLandPlotApplication(ctx, form)
	default:
		resp, err = uc.applications.SubmitRequest(ctx, form)
	}
	if err != nil {
		ucLogger.Error("Failed to submit application", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)

	return resp, nil
}

// validateForm проверяет обязательные поля и нормализует телефон.
// Сообщения показываются пользователю рядом с полями формы.
func validateForm(form *domain.ApplicationForm) error {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Message = strings.TrimSpace(form.Message)

	if form.Name == "" {
		return &domain.ValidationError{Field: "name", Message: "Пожалуйста, укажите ваше имя"}
	}

	if strings.TrimSpace(form.Phone) == "" {
		return &domain.ValidationError{Field: "phone", Message: "Пожалуйста, укажите номер телефона"}
	}

	clean := domain.CleanPhoneNumber(form.Phone)
	if domain.PhoneDigitCount(clean) < 11 {
		return &domain.ValidationError{Field: "phone", Message: "Пожалуйста, укажите корректный номер телефона"}
	}
	form.Phone = clean

	if form.Email != "" && !emailRegexp.MatchString(form.Email) {
		return &domain.ValidationError{Field: "email", Message: "Пожалуйста, укажите корректный email"}
	}

	return nil
}
