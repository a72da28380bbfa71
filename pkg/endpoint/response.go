package endpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/skillpath/pkg/portal"
)

type Response struct {
	writer  http.ResponseWriter
	request *http.Request
	headers func(w http.ResponseWriter)
}

func NewNoCacheResponse(writer http.ResponseWriter, request *http.Request) *Response {
	return newResponse(writer, request, portal.JSONContentType)
}

// NewHTMLResponse builds a response for rendered pages. Pages carry per-user
// state, so they are never cached.
func NewHTMLResponse(writer http.ResponseWriter, request *http.Request) *Response {
	return newResponse(writer, request, portal.HTMLContentType)
}

func newResponse(writer http.ResponseWriter, request *http.Request, contentType string) *Response {
	return &Response{
		writer:  writer,
		request: request,
		headers: func(w http.ResponseWriter) {
			w.Header().Set("Content-Type", contentType)
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("Cache-Control", "no-store")
		},
	}
}

func (r *Response) WithHeaders(callback func(w http.ResponseWriter)) {
	callback(r.writer)
}

func (r *Response) RespondOk(payload any) error {
	r.headers(r.writer)
	r.writer.WriteHeader(http.StatusOK)

	return json.NewEncoder(r.writer).Encode(payload)
}

func (r *Response) RespondHTML(body []byte) error {
	r.headers(r.writer)
	r.writer.WriteHeader(http.StatusOK)

	_, err := r.writer.Write(body)

	return err
}

// RedirectTo navigates the browser to location with a 303 so a POST is
// followed by a GET.
func (r *Response) RedirectTo(location string) {
	r.writer.Header().Set("Cache-Control", "no-store")
	http.Redirect(r.writer, r.request, location, http.StatusSeeOther)
}

func InternalError(msg string) *ApiError {
	message := fmt.Sprintf("Internal server error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     errors.New(message),
	}
}

func LogInternalError(msg string, err error) *ApiError {
	slog.Error(err.Error(), "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Internal server error: %s", msg),
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func BadRequestError(msg string) *ApiError {
	message := fmt.Sprintf("Bad request error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     errors.New(message),
	}
}

func LogUnauthorisedError(msg string, err error) *ApiError {
	slog.Error(err.Error(), "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Unauthorised request: %s", msg),
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func Forbidden(msg string) *ApiError {
	message := fmt.Sprintf("Forbidden: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusForbidden,
		Err:     errors.New(message),
	}
}

func UnprocessableEntity(msg string, errs map[string]any) *ApiError {
	message := fmt.Sprintf("Unprocessable entity: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusUnprocessableEntity,
		Data:    errs,
		Err:     errors.New(message),
	}
}

func TooManyRequests(msg string) *ApiError {
	message := fmt.Sprintf("Too many requests: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusTooManyRequests,
		Err:     errors.New(message),
	}
}
