package port

import "time"

type Sink interface {
	// Rendered report body with its generation timestamp
	WriteReport(generated time.Time, body string) error
}
