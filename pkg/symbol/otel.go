package symbol

import (
	"context"

	"github.com/OCAP2/polysymbol/pkg/core"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/OCAP2/polysymbol/pkg/symbol"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

type instrumented struct {
	Factory
	attrs  metric.MeasurementOption
	built  metric.Int64Counter
	failed metric.Int64Counter
}

// Instrument wraps f so every build is counted under the given kind name.
// A nil meter uses the global meter provider.
func Instrument(kind string, f Factory, m metric.Meter) (Factory, error) {
	if m == nil {
		m = meter()
	}

	built, err := m.Int64Counter(
		"polysymbol.symbols.built",
		metric.WithDescription("Total symbols built"),
		metric.WithUnit("{symbol}"),
	)
	if err != nil {
		return nil, err
	}
	failed, err := m.Int64Counter(
		"polysymbol.symbols.failed",
		metric.WithDescription("Total symbol builds that returned an error"),
		metric.WithUnit("{symbol}"),
	)
	if err != nil {
		return nil, err
	}

	return &instrumented{
		Factory: f,
		attrs:   metric.WithAttributes(attribute.String("kind", kind)),
		built:   built,
		failed:  failed,
	}, nil
}

func (i *instrumented) BuildSymbol(point *core.DirectionPoint, proj Projection, index, total int) (Shape, error) {
	shape, err := i.Factory.BuildSymbol(point, proj, index, total)
	if err != nil {
		i.failed.Add(context.Background(), 1, i.attrs)
		return shape, err
	}
	i.built.Add(context.Background(), 1, i.attrs)
	return shape, nil
}
