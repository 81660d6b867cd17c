// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков вида {success, data|message}.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// Сообщения, которые видит клиент.
const (
	MsgEmailUsed        = "This email already used"
	MsgWrongCredentials = "Email or password is wrong"
	MsgSomethingWrong   = "Something went wrong"
	MsgInvalidBody      = "Invalid request body"
	MsgUnknownPackage   = "Unknown package"
	MsgUnauthorized     = "Unauthorized"
	MsgUserVerified     = "User verified"
	MsgInvalidID        = "Invalid id"
	MsgLoggedOut        = "Logged out"
	MsgPasswordTooLong  = "Password must be at most 72 bytes"
)

// Response описывает стандартную структуру JSON‑ответа сервера.
// Поле Success — признак успешного выполнения.
// Поле Data — данные ответа (при успехе).
// Поле Message — текст сообщения (при неуспехе или для информационных ответов).
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse — структура ошибки для Swagger-документации.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Something went wrong"`
}

// CheckoutResponse ответ с адресом страницы оплаты.
type CheckoutResponse struct {
	URL string `json:"url" example:"https://checkout.stripe.com/c/pay/cs_test_123"`
}

// OKWithData возвращает успешный Response с переданными данными.
func OKWithData(data any) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// OKWithMessage возвращает успешный Response с сообщением.
func OKWithMessage(msg string) Response {
	return Response{
		Success: true,
		Message: msg,
	}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) Response {
	return Response{
		Success: false,
		Message: msg,
	}
}

// ValidationError формирует Response с ошибкой на основе ошибок валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "url":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid url", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at least %s characters", err.Field(), err.Param()))
		case "max":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at most %s characters", err.Field(), err.Param()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Error(strings.Join(errsMsgs, ", "))
}
