package console

import (
	"fmt"
	"time"

	"barops/internal/application/port"
)

type Sink struct{}

func NewSink() port.Sink { return &Sink{} }

func (s *Sink) WriteReport(generated time.Time, body string) error {
	fmt.Printf("generated %s\n", generated.Format("2006-01-02 15:04:05"))
	fmt.Print(body)
	return nil
}
