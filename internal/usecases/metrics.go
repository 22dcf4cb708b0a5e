package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-userdirectory/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Operation names reported by RecordUserFetch.
const (
	OperationListUsers = "list_users"
	OperationGetUser   = "get_user"
)

var (
	meter            = otel.Meter("usecases")
	UserFetchesTotal metric.Int64Counter
)

func init() {
	var err error
	// One increment per use case call, labeled with its outcome
	UserFetchesTotal, err = meter.Int64Counter(
		"user_directory_fetches_total",
		metric.WithDescription("Total user directory fetches by operation and outcome"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordUserFetch records the outcome of a fetch: "ok" or the domain error kind.
func RecordUserFetch(ctx context.Context, operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = domain.ErrorKind(err)
	}
	UserFetchesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	))
}
