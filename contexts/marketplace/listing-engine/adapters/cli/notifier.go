package cli

import (
	"fmt"
	"io"

	"gaadi/contexts/marketplace/listing-engine/ports"
)

// Notifier is the terminal stand-in for the notification surface: every
// message goes to one writer, fire and forget.
type Notifier struct {
	Out io.Writer
}

func (n Notifier) Notify(message string) {
	fmt.Fprintln(n.Out, message)
}

var _ ports.Notifier = Notifier{}
