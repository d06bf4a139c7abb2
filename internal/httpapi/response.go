package httpapi

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/santileortiz/layoutsolver/internal/format"
)

// buildResponse assembles the /solve JSON body: a top-level "success"
// boolean, a "diagnostics" array of the report's lines, and the solved
// symbols nested the same way format.EncodeSolvedJSON does.
func buildResponse(success bool, diagnostics []string, symbols []format.SolvedSymbol) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	data, err = sjson.SetBytes(data, "success", success)
	if err != nil {
		return nil, err
	}

	data, err = sjson.SetBytes(data, "diagnostics", diagnostics)
	if err != nil {
		return nil, err
	}

	symbolsJSON, err := format.EncodeSolvedJSON(symbols)
	if err != nil {
		return nil, err
	}
	return sjson.SetRawBytes(data, "symbols", symbolsAt(symbolsJSON))
}

// symbolsAt extracts the "symbols" object nested inside
// format.EncodeSolvedJSON's output, so buildResponse can splice it
// directly under the response's own "symbols" key rather than re-walking
// every symbol a second time.
func symbolsAt(symbolsDoc []byte) []byte {
	v := gjson.GetBytes(symbolsDoc, "symbols")
	if !v.Exists() {
		return []byte("{}")
	}
	return []byte(v.Raw)
}
