package emailtemplate

import (
	"github.com/emkoumo/bookingapp/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
