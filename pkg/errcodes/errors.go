package errcodes

import (
	"fmt"
	"net/http"
	"strings"
)

type Error struct {
	HTTPCode int
	Message  string
	Code     string
}

func (err *Error) Error() string {
	return err.Message
}

func (err *Error) As(target interface{}) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	te.HTTPCode = err.HTTPCode
	te.Message = err.Message
	te.Code = err.Code
	return true
}

func (err *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return te.HTTPCode == err.HTTPCode &&
		te.Message == err.Message &&
		te.Code == err.Code
}

// Unauthorized returns a 401 error. The message is shown to the caller as is,
// so it must not reveal which part of a credential was wrong.
func Unauthorized(msg string) error {
	return &Error{
		http.StatusUnauthorized,
		msg,
		"unauthorized",
	}
}

// NotFound returns a 404 error with a message indicating the given resource.
func NotFound(resource string) error {
	return &Error{
		http.StatusNotFound,
		resource + " not found.",
		"not_found",
	}
}

func UnsupportedMediaType() error {
	return &Error{
		http.StatusUnsupportedMediaType,
		"Unsupported Media Type",
		"unsupported_media_type",
	}
}

func UnknownParameter(param string) error {
	return &Error{
		http.StatusUnprocessableEntity,
		fmt.Sprintf("Unknown Parameter %q", param),
		"unknown_parameter",
	}
}

func ValidationTypeError(msg string) error {
	return &Error{
		http.StatusUnprocessableEntity,
		msg,
		"validation_type_error",
	}
}

func ValidationError(msg string) error {
	return &Error{
		http.StatusUnprocessableEntity,
		msg,
		"validation_error",
	}
}

// ValidationErrors reports several violations found in one validation pass
// as a single validation error.
func ValidationErrors(msgs []string) error {
	return ValidationError(strings.Join(msgs, "; "))
}

// Violations collects the failures of one validation pass. The zero value is
// ready to use.
type Violations struct {
	msgs []string
}

// Addf records a failure of the JSON field name. The field is quoted and
// prefixed to the formatted message.
func (v *Violations) Addf(field, format string, args ...interface{}) {
	v.msgs = append(v.msgs, fmt.Sprintf("%q ", field)+fmt.Sprintf(format, args...))
}

// Add records the message of an error that already names its field.
func (v *Violations) Add(err error) {
	if err != nil {
		v.msgs = append(v.msgs, err.Error())
	}
}

func (v *Violations) Len() int {
	return len(v.msgs)
}

// Err returns nil when nothing was recorded, and a validation error carrying
// every message in the order recorded otherwise.
func (v *Violations) Err() error {
	if len(v.msgs) == 0 {
		return nil
	}
	return ValidationErrors(v.msgs)
}

func MalformedPayload() error {
	return &Error{
		http.StatusBadRequest,
		"Malformed Payload",
		"malformed_payload",
	}
}

func EmptyRequestBody() error {
	return &Error{
		http.StatusBadRequest,
		"Request body can't be empty.",
		"empty_request_body",
	}
}
