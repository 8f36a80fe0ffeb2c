package graphql

import (
	"log"

	"flicks/internal/services"
)

// apiError is the protocol-facing error shape. It implements the engine's
// ExtendedError interface so the machine-readable code and HTTP status land
// in the response's error extensions.
type apiError struct {
	message string
	code    string
	status  int
}

func (e *apiError) Error() string {
	return e.message
}

// Extensions satisfies gqlerrors.ExtendedError.
func (e *apiError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": e.code,
		"http": map[string]interface{}{"status": e.status},
	}
}

// authError is the uniform response for operations requiring a session.
func authError() error {
	return &apiError{message: "please log in to continue", code: string(services.KindUnauthenticated), status: 401}
}

// validationError reports malformed input detected at the API layer.
func validationError(message string) error {
	return &apiError{message: message, code: string(services.KindValidation), status: 400}
}

// toAPIError translates a service-layer error into its protocol
// representation. Internal errors are logged server-side and collapsed into
// a generic message that leaks nothing.
func toAPIError(err error) error {
	kind := services.KindOf(err)
	status := 500
	switch kind {
	case services.KindUnauthenticated:
		status = 401
	case services.KindValidation:
		status = 400
	case services.KindConflict:
		status = 409
	case services.KindNotFound:
		status = 404
	case services.KindUpstream:
		status = 502
	case services.KindInternal:
		log.Printf("Internal error: %v", err)
		return &apiError{message: "something went wrong, please try again", code: string(services.KindInternal), status: 500}
	}
	return &apiError{message: err.Error(), code: string(kind), status: status}
}
