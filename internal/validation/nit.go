// Package validation реализует проверку номера NIT (PIS/PASEP/CI).
package validation

import (
	"regexp"
	"strings"
)

// Шаблоны допустимых представлений NIT.
var (
	formattedPattern   = regexp.MustCompile(`^\d{3}\.\d{5}\.\d{2}-\d{1}$`)
	unformattedPattern = regexp.MustCompile(`^\d{11}$`)
)

var punctuation = strings.NewReplacer(".", "", "-", "")

// Validator проверяет формат и контрольную цифру номера NIT.
type Validator struct {
	formatted bool
	messages  MessageProducer
}

// NewValidator создаёт валидатор NIT. При formatted=true ожидается
// представление "ddd.ddddd.dd-d", иначе 11 цифр подряд.
func NewValidator(formatted bool) *Validator {
	return NewValidatorWithMessages(formatted, SimpleMessageProducer{})
}

// NewValidatorWithMessages создаёт валидатор с указанным производителем сообщений.
func NewValidatorWithMessages(formatted bool, messages MessageProducer) *Validator {
	if messages == nil {
		messages = SimpleMessageProducer{}
	}

	return &Validator{
		formatted: formatted,
		messages:  messages,
	}
}

// Validate возвращает список ошибок валидации в порядке обнаружения.
// Пустой список означает корректный номер. Контрольная цифра проверяется
// только после успешной проверки формата.
func (v *Validator) Validate(nit string) []ErrorKind {
	var errs []ErrorKind

	canonical := nit
	if v.formatted {
		if !formattedPattern.MatchString(nit) {
			errs = append(errs, ErrorInvalidFormat)
		}
		canonical = punctuation.Replace(nit)
	} else {
		if !unformattedPattern.MatchString(nit) {
			errs = append(errs, ErrorInvalidDigits)
		}
	}

	if len(errs) == 0 && !hasValidCheckDigit(canonical) {
		errs = append(errs, ErrorInvalidCheckDigits)
	}

	return errs
}

// IsValid сообщает, прошёл ли номер валидацию без ошибок.
func (v *Validator) IsValid(nit string) bool {
	return len(v.Validate(nit)) == 0
}

// IsEligible проверяет только соответствие строки формату выбранного режима,
// без проверки контрольной цифры.
func (v *Validator) IsEligible(nit string) bool {
	if v.formatted {
		return formattedPattern.MatchString(nit)
	}
	return unformattedPattern.MatchString(nit)
}

// Check выполняет валидацию и возвращает InvalidNITError для некорректного номера.
func (v *Validator) Check(nit string) error {
	kinds := v.Validate(nit)
	if len(kinds) == 0 {
		return nil
	}

	messages := make([]string, 0, len(kinds))
	for _, k := range kinds {
		messages = append(messages, v.messages.Message(k))
	}

	return &InvalidNITError{Kinds: kinds, Messages: messages}
}

// Message возвращает текст сообщения для указанного типа ошибки.
func (v *Validator) Message(kind ErrorKind) string {
	return v.messages.Message(kind)
}
