// Package service реализует бизнес-логику сервиса проверки NIT.
package service

import (
	"github.com/mmeshcher/nitcheck/internal/model"
	"github.com/mmeshcher/nitcheck/internal/validation"
)

// Service выполняет проверку номеров NIT в обоих режимах представления.
type Service struct {
	formatted   *validation.Validator
	unformatted *validation.Validator
}

// NewService создаёт сервис с валидаторами для обоих режимов и
// производителем сообщений по умолчанию.
func NewService() *Service {
	return NewServiceWithMessages(validation.SimpleMessageProducer{})
}

// NewServiceWithMessages создаёт сервис с указанным производителем сообщений.
func NewServiceWithMessages(messages validation.MessageProducer) *Service {
	return &Service{
		formatted:   validation.NewValidatorWithMessages(true, messages),
		unformatted: validation.NewValidatorWithMessages(false, messages),
	}
}

func (s *Service) validator(formatted bool) *validation.Validator {
	if formatted {
		return s.formatted
	}
	return s.unformatted
}

// Validate проверяет номер NIT и возвращает итог с кодами и текстами ошибок.
// Для nit == nil ошибки не возвращаются: исходный контракт валидатора
// считает отсутствующее значение корректным.
func (s *Service) Validate(nit *string, formatted bool) model.ValidationResult {
	if nit == nil {
		return model.ValidationResult{Valid: true, Errors: []model.FieldError{}}
	}

	v := s.validator(formatted)
	kinds := v.Validate(*nit)

	errs := make([]model.FieldError, 0, len(kinds))
	for _, k := range kinds {
		errs = append(errs, model.FieldError{
			Code:    string(k),
			Message: v.Message(k),
		})
	}

	return model.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ValidateBatch проверяет каждый номер из списка, сохраняя порядок элементов.
func (s *Service) ValidateBatch(nits []string, formatted bool) []model.BatchItem {
	items := make([]model.BatchItem, 0, len(nits))
	for _, nit := range nits {
		result := s.Validate(&nit, formatted)
		items = append(items, model.BatchItem{
			NIT:    nit,
			Valid:  result.Valid,
			Errors: result.Errors,
		})
	}
	return items
}

// IsEligible проверяет только соответствие формата выбранному режиму.
func (s *Service) IsEligible(nit string, formatted bool) bool {
	return s.validator(formatted).IsEligible(nit)
}
