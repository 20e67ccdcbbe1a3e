package geocode

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/mapfront/extension/internal/geocode"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
