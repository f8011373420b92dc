package calculator

import (
	"encoding/json"
	"fmt"
)

// CalcRequest is the JSON body for POST /calculator/{operation}. Each
// operand may be a JSON number or a JSON string; either way its literal text
// decides between integer and float, as on the command line.
type CalcRequest struct {
	A json.RawMessage `json:"a"`
	B json.RawMessage `json:"b"`
}

// CalcResponse is the JSON response for a successful calculation.
type CalcResponse struct {
	Operation string      `json:"operation"`
	A         json.Number `json:"a"`
	B         json.Number `json:"b"`
	Result    json.Number `json:"result"`
	Kind      string      `json:"kind"` // "int" or "float"
}

// operandText extracts the literal text of a raw JSON operand.
func operandText(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("decode operand: %w", err)
		}
		return s, nil
	}
	return string(raw), nil
}
