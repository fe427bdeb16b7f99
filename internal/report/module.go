package report

import (
	"go.uber.org/fx"
)

// Module exports the aggregator and the report writer
var Module = fx.Options(
	fx.Provide(NewAggregator),
	fx.Provide(NewWriter),
)
