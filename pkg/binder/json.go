package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxJSONSize is the maximum accepted JSON body size (1MB).
const DefaultMaxJSONSize = 1 << 20

// JSON binds an application/json body. Unknown fields are ignored.
// A missing Content-Type is rejected with ErrMissingContentType; any other
// media type with ErrUnsupportedMediaType.
func JSON() func(r *http.Request, v any) error {
	return bindJSON(false)
}

// JSONOrSkip behaves like JSON but returns ErrBinderNotApplicable for
// non-JSON requests, for use in a binder chain.
func JSONOrSkip() func(r *http.Request, v any) error {
	return bindJSON(true)
}

func bindJSON(skip bool) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		switch mt := mediaType(r); {
		case mt == "application/json":
		case skip:
			return ErrBinderNotApplicable
		case mt == "":
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		default:
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mt)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return fmt.Errorf("%w: read body: %v", ErrFailedToParseJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return fmt.Errorf("%w: body too large (max %d bytes)", ErrFailedToParseJSON, DefaultMaxJSONSize)
		}
		if len(body) == 0 {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}

		if err := json.Unmarshal(body, v); err != nil {
			var syntaxErr *json.SyntaxError
			if errors.As(err, &syntaxErr) {
				return fmt.Errorf("%w: syntax error at offset %d", ErrFailedToParseJSON, syntaxErr.Offset)
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}
		return nil
	}
}
