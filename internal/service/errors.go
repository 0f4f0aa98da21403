package service

import "errors"

// Закрытый набор ошибок сервиса ссылок. Обработчики HTTP сопоставляют
// их со статусами ответа на границе транспорта, внутренние детали
// (текст запроса, причина отказа хранилища) наружу не выходят.
var (
	// ErrEmptyURL возвращается когда в запросе на создание не передан URL
	ErrEmptyURL = errors.New("destination URL is required")

	// ErrInvalidURL возвращается когда URL не является абсолютным
	// http/https адресом
	ErrInvalidURL = errors.New("invalid URL format")

	// ErrInvalidCustomCode возвращается когда пользовательский код
	// не соответствует формату ^[A-Za-z0-9]{6,8}$
	ErrInvalidCustomCode = errors.New("invalid custom code format")

	// ErrCodeTaken возвращается когда запрошенный код уже занят
	ErrCodeTaken = errors.New("short code already taken")

	// ErrLinkNotFound возвращается когда код не разрешается в ссылку
	ErrLinkNotFound = errors.New("link not found")

	// ErrGenerationExhausted возвращается когда не удалось сгенерировать
	// уникальный код за отведенное число попыток
	ErrGenerationExhausted = errors.New("unable to generate unique short code")
)
