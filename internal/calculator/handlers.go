package calculator

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-calc/internal/handlers"
	"go-calc/internal/observability"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var (
	errOperandNotFinite = errors.New("operands must be finite to be encoded as JSON")
	errResultNotFinite  = errors.New("result must be finite to be encoded as JSON")
)

// HandleOperation handles POST /calculator/{operation}.
func HandleOperation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	op, err := ParseOperation(chi.URLParam(r, "operation"))
	if err != nil {
		handlers.WriteError(w, http.StatusNotFound, err.Error())
		return
	}

	var req CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Debug("invalid request body", zap.Error(err))
		handlers.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := parseOperand(req.A)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	b, err := parseOperand(req.B)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !a.IsFinite() || !b.IsFinite() {
		handlers.WriteError(w, http.StatusUnprocessableEntity, errOperandNotFinite.Error())
		return
	}

	result, err := Calculate(ctx, op, a, b)
	if err != nil {
		handlers.WriteError(w, statusFor(err), err.Error())
		return
	}

	// The arithmetic succeeded but the response cannot carry it.
	if !result.IsFinite() {
		observability.RecordError(ctx, trace.SpanFromContext(ctx), logger, errorCounter, op.String(), "non_finite", errResultNotFinite)
		handlers.WriteError(w, http.StatusUnprocessableEntity, errResultNotFinite.Error())
		return
	}

	resp := CalcResponse{
		Operation: op.String(),
		A:         json.Number(a.String()),
		B:         json.Number(b.String()),
		Result:    json.Number(result.String()),
		Kind:      result.Kind().String(),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

func parseOperand(raw json.RawMessage) (Number, error) {
	text, err := operandText(raw)
	if err != nil {
		return Number{}, err
	}
	return ParseNumber(text)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnknownOperation):
		return http.StatusNotFound
	case IsInvalidArgument(err), errors.Is(err, ErrDivisionByZero):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
