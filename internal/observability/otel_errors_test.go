package observability

import (
	"errors"
	"testing"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitErrorHandlerLogsSDKErrors(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	oldLogger, oldLocal := Logger, localLogger
	Logger, localLogger = zap.New(core), nil
	oldHandler := otel.GetErrorHandler()
	t.Cleanup(func() {
		Logger, localLogger = oldLogger, oldLocal
		otel.SetErrorHandler(oldHandler)
	})

	InitErrorHandler()
	otel.Handle(errors.New("traces export: connection refused"))

	entries := logs.FilterMessage("opentelemetry error").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 opentelemetry error entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["error"]; got != "traces export: connection refused" {
		t.Fatalf("expected the SDK error in the entry, got %#v", got)
	}
}

func TestOTelErrorsSkipTheExportCore(t *testing.T) {
	localCore, localLogs := observer.New(zap.WarnLevel)
	teedCore, teedLogs := observer.New(zap.WarnLevel)
	oldLogger, oldLocal := Logger, localLogger
	Logger, localLogger = zap.New(teedCore), zap.New(localCore)
	t.Cleanup(func() { Logger, localLogger = oldLogger, oldLocal })

	handleOTelError(errors.New("logs export: timeout"))

	if localLogs.Len() != 1 {
		t.Fatalf("expected the error on the local logger, got %d entries", localLogs.Len())
	}
	if teedLogs.Len() != 0 {
		t.Fatalf("expected nothing on the exporting logger, got %d entries", teedLogs.Len())
	}
}
