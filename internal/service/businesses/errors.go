package businesses

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business not found")

	// ErrTemplateNotFound возвращается, когда email-шаблон не найден
	ErrTemplateNotFound = errors.New("email template not found")

	// ErrPaymentDetailsNotConfigured возвращается, когда для бизнеса
	// не заданы банковские реквизиты в конфигурации
	ErrPaymentDetailsNotConfigured = errors.New("payment details not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
