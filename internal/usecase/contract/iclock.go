package usecasecontract

import "time"

// IClock abstracts wall-clock reads so creation timestamps and the daily tip
// are testable with a fixed time.
type IClock interface {
	Now() time.Time
}
