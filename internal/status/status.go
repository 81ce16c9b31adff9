// internal/status/status.go
package status

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Kind classifies a status message.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Status is the human-readable outcome of the last user action. The zero
// value means "no change".
type Status struct {
	Message string `json:"message"`
	Kind    Kind   `json:"type"`
}

func Info(format string, args ...any) Status {
	return Status{Message: fmt.Sprintf(format, args...), Kind: KindInfo}
}

func Success(format string, args ...any) Status {
	return Status{Message: fmt.Sprintf(format, args...), Kind: KindSuccess}
}

func Error(format string, args ...any) Status {
	return Status{Message: fmt.Sprintf(format, args...), Kind: KindError}
}

// IsZero reports whether s carries no message.
func (s Status) IsZero() bool {
	return s.Message == ""
}

// Or returns s, or fallback when s is zero.
func (s Status) Or(fallback Status) Status {
	if s.IsZero() {
		return fallback
	}
	return s
}

func (s Status) String() string {
	if s.IsZero() {
		return ""
	}
	return fmt.Sprintf("[%s] %s", s.Kind, s.Message)
}

var (
	plainPolicyOnce sync.Once
	plainPolicy     *bluemonday.Policy
)

// PlainText strips any markup from a message that came from an upstream
// service, leaving text that is safe to show in a status line.
func PlainText(msg string) string {
	plainPolicyOnce.Do(func() {
		plainPolicy = bluemonday.StrictPolicy()
	})
	cleaned := html.UnescapeString(plainPolicy.Sanitize(msg))
	return strings.Join(strings.Fields(cleaned), " ")
}
