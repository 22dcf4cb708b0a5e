package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-userdirectory/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CurrentTimeProvider is an implementation of domain.CurrentTimeProvider backed by the system clock.
// View states are stamped in UTC so every inbound adapter reports the same zone.
type CurrentTimeProvider struct{}

// Now returns the current time in UTC.
func (ts CurrentTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

var _ domain.CurrentTimeProvider = CurrentTimeProvider{}

// InitCurrentTimeProvider registers the system clock as the domain.CurrentTimeProvider.
type InitCurrentTimeProvider struct {
}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (its InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](CurrentTimeProvider{})
	return ctx, nil
}
