package emailtemplate

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда шаблон письма не найден
	ErrTemplateNotFound = errors.New("emailtemplate.repository: template not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("emailtemplate.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("emailtemplate.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("emailtemplate.repository: failed to scan row")
)
