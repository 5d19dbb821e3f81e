package resrel

import "fmt"

// APIError is the typed error raised for every non-2xx response. Status
// carries the HTTP status and Data the parsed response body, including
// field-level validation errors. Failures that never produced a structured
// response are raised as *TransportError instead.
type APIError struct {
	Message string
	Status  int
	Data    any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// TransportError wraps failures that never produced a structured HTTP
// response: DNS, TLS, timeouts, cancelled contexts, unreadable bodies,
// and bodies that fail to parse as JSON. No distinction between those
// causes is preserved beyond the message.
type TransportError struct {
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	return "transport error: " + e.Message
}

func (e *TransportError) Unwrap() error { return e.Err }

// FieldErrors extracts the field-to-messages map from the error payload,
// the shape backends return on 422 ({"errors": {"email": ["..."]}}).
// Returns nil when the payload carries no such map.
func (e *APIError) FieldErrors() map[string][]string {
	body, ok := e.Data.(map[string]any)
	if !ok {
		return nil
	}
	raw, ok := body["errors"].(map[string]any)
	if !ok || len(raw) == 0 {
		return nil
	}

	fields := make(map[string][]string, len(raw))
	for field, v := range raw {
		switch messages := v.(type) {
		case []any:
			for _, m := range messages {
				if s, ok := m.(string); ok {
					fields[field] = append(fields[field], s)
				}
			}
		case string:
			fields[field] = append(fields[field], messages)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
