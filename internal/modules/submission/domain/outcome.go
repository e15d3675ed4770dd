package domain

import "fmt"

// FallbackMessage is shown whenever the backend gives no usable error detail.
const FallbackMessage = "Something went wrong."

type FailureClass string

const (
	FailureNone       FailureClass = ""
	FailureValidation FailureClass = "validation"
	FailureNetwork    FailureClass = "network"
	FailureServer     FailureClass = "server"
	FailureMalformed  FailureClass = "malformed"
)

// Outcome is either Success(text) or Failure(class, message).
type Outcome struct {
	text    string
	class   FailureClass
	message string
}

func Success(text string) Outcome {
	return Outcome{text: text}
}

func Failure(class FailureClass, message string) Outcome {
	if class == FailureNone {
		class = FailureServer
	}
	if message == "" {
		message = FallbackMessage
	}
	return Outcome{class: class, message: message}
}

func (o Outcome) IsSuccess() bool { return o.class == FailureNone }

func (o Outcome) Text() string { return o.text }

func (o Outcome) Class() FailureClass { return o.class }

func (o Outcome) Message() string { return o.message }

// Display is the text the result view shows: the result verbatim or "Error: <message>".
func (o Outcome) Display() string {
	if o.IsSuccess() {
		return o.text
	}
	return "Error: " + o.message
}

// ServerError is a non-2xx response. Detail is empty when the body carried no string
// "detail" field.
type ServerError struct {
	Status int
	Detail string
}

func (e *ServerError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Detail)
}
