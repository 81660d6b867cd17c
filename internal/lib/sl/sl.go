// Package sl содержит вспомогательные функции для работы с логгером slog.
// Основная цель — упростить формирование структурированных полей лога,
// например, для передачи информации об ошибках.
package sl

import "log/slog"

// Err возвращает slog.Attr с ключом "error" и значением текста ошибки.
// Для nil возвращается пустая строка, чтобы лог не падал на необязательных ошибках.
//
// Пример:
//
//	log.Error("failed to do something", sl.Err(err))
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// UserID возвращает атрибут с идентификатором пользователя.
func UserID(id string) slog.Attr {
	return slog.String("user_id", id)
}
