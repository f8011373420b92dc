package observability

import (
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// localLogger is Logger as it was before InitLogging teed in the OTLP core.
// SDK errors are written there so a failing log exporter cannot feed itself.
var localLogger *zap.Logger

// InitErrorHandler sends errors reported by the OTel SDK (failed exports,
// dropped records) to Logger instead of the SDK's default stderr printer.
func InitErrorHandler() {
	otel.SetErrorHandler(otel.ErrorHandlerFunc(handleOTelError))
}

func handleOTelError(err error) {
	logger := Logger
	if localLogger != nil {
		logger = localLogger
	}
	logger.Warn("opentelemetry error", zap.Error(err))
}
