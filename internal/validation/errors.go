package validation

import "strings"

// ErrorKind идентифицирует тип ошибки валидации NIT.
type ErrorKind string

const (
	// ErrorInvalidFormat возвращается, если строка не соответствует формату "ddd.ddddd.dd-d".
	ErrorInvalidFormat ErrorKind = "INVALID_FORMAT"
	// ErrorInvalidDigits возвращается, если строка не состоит ровно из 11 цифр.
	ErrorInvalidDigits ErrorKind = "INVALID_DIGITS"
	// ErrorInvalidCheckDigits возвращается, если контрольная цифра не сходится.
	ErrorInvalidCheckDigits ErrorKind = "INVALID_CHECK_DIGITS"
)

// MessageProducer формирует человекочитаемый текст для ошибки валидации.
type MessageProducer interface {
	Message(kind ErrorKind) string
}

// SimpleMessageProducer — производитель сообщений по умолчанию.
type SimpleMessageProducer struct{}

// Message возвращает текст сообщения для указанного типа ошибки.
func (SimpleMessageProducer) Message(kind ErrorKind) string {
	switch kind {
	case ErrorInvalidFormat:
		return "NIT must be formatted as ddd.ddddd.dd-d"
	case ErrorInvalidDigits:
		return "NIT must contain exactly 11 digits"
	case ErrorInvalidCheckDigits:
		return "NIT check digit does not match"
	default:
		return "NIT is invalid"
	}
}

// InvalidNITError агрегирует ошибки валидации одного номера NIT.
type InvalidNITError struct {
	Kinds    []ErrorKind
	Messages []string
}

// Error возвращает объединённый текст всех сообщений об ошибках.
func (e *InvalidNITError) Error() string {
	return strings.Join(e.Messages, "; ")
}
