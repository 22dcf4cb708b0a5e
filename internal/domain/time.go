package domain

import "time"

// CurrentTimeProvider provides the current time.
// View states use it to stamp when their data was last refreshed.
type CurrentTimeProvider interface {
	Now() time.Time
}
