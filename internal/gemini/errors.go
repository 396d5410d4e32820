package gemini

import "fmt"

// TransportError reports a failure to complete the network exchange:
// the request could not be sent, the body could not be read, or the body
// was not decodable as JSON at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gemini request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServiceError reports a non-success HTTP status from the API. Body holds
// the raw response text and is never parsed as the success schema.
type ServiceError struct {
	Status int
	Body   string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("gemini API error (status %d): %s", e.Status, e.Body)
}

// MalformedResponseError reports a response that decoded as JSON but did
// not contain the expected candidates/content/parts/text chain. Raw holds
// a rendering of the full response for diagnosis.
type MalformedResponseError struct {
	Raw string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("could not extract message from API response. Full response:\n%s", e.Raw)
}
