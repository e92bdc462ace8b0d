package response

import (
	"encoding/json"
	"net/http"
	"shareit/shared/constant"
	"shareit/shared/failure"
	"shareit/shared/i18n"
	"shareit/shared/logger"
)

const (
	MessageRequestLimitExceeded = "errors.429"
	MessagePreparingShutdown    = "errors.503"

	problemTypeBlank = "about:blank"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// Problem is an RFC 7807 problem document. Key carries the stable message key behind Detail.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance,omitempty"`
	Key      string `json:"key"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, constant.ContentTypeJSON, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	write(writer, code, constant.ContentTypeJSON, Data[any]{Data: &jsonPayload})
}

// WithError renders err as a problem document localized for the request's Accept-Language.
// Errors that are not a failure.Failure never leak their text.
func WithError(writer http.ResponseWriter, request *http.Request, err error) {
	code := failure.GetCode(err)
	key := failure.GetMessage(err)

	if code == http.StatusInternalServerError {
		key = failure.MessageInternal
	}

	problem := Problem{
		Type:   problemTypeBlank,
		Title:  http.StatusText(code),
		Status: code,
		Key:    key,
	}

	if request != nil {
		problem.Detail = i18n.Translate(i18n.Match(request.Header.Get(constant.RequestHeaderAcceptLanguage)), key)
		problem.Instance = request.URL.Path
	} else {
		problem.Detail = i18n.Translate(i18n.Supported[0], key)
	}

	write(writer, code, constant.ContentTypeProblemJSON, problem)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter, request *http.Request) {
	WithError(writer, request, &failure.Failure{Code: http.StatusTooManyRequests, Message: MessageRequestLimitExceeded})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter, request *http.Request) {
	WithError(writer, request, &failure.Failure{Code: http.StatusServiceUnavailable, Message: MessagePreparingShutdown})
}

func write(writer http.ResponseWriter, code int, contentType string, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.WriteHeader(code)

	if _, err = writer.Write(response); err != nil {
		logger.ErrorWithStack(err)
	}
}
