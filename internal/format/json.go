package format

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// DecodeJSON parses a JSON layout document using gjson's path queries
// rather than encoding/json's struct tags, so malformed or partial
// documents degrade to zero-valued fields instead of hard decode errors —
// matching gjson's usual read-tolerant idiom.
func DecodeJSON(data []byte) (*Document, error) {
	root := gjson.ParseBytes(data)
	doc := &Document{}

	root.Get("rectangles").ForEach(func(_, v gjson.Result) bool {
		doc.Rectangles = append(doc.Rectangles, RectangleDoc{
			Ref:    v.Get("ref").String(),
			Width:  v.Get("width").Float(),
			Height: v.Get("height").Float(),
		})
		return true
	})

	root.Get("links").ForEach(func(_, v gjson.Result) bool {
		doc.Links = append(doc.Links, LinkDoc{
			Ref:       v.Get("ref").String(),
			Src:       v.Get("src").String(),
			SrcAnchor: v.Get("src_anchor").String(),
			Dst:       v.Get("dst").String(),
			DstAnchor: v.Get("dst_anchor").String(),
			DX:        v.Get("dx").Float(),
			DY:        v.Get("dy").Float(),
		})
		return true
	})

	root.Get("fixes").ForEach(func(_, v gjson.Result) bool {
		doc.Fixes = append(doc.Fixes, FixDoc{
			Rectangle: v.Get("rectangle").String(),
			Anchor:    v.Get("anchor").String(),
			X:         v.Get("x").Float(),
			Y:         v.Get("y").Float(),
		})
		return true
	})

	root.Get("equations").ForEach(func(_, v gjson.Result) bool {
		doc.Equations = append(doc.Equations, v.String())
		return true
	})

	root.Get("assignments").ForEach(func(_, v gjson.Result) bool {
		doc.Assignments = append(doc.Assignments, AssignmentDoc{
			Symbol: v.Get("symbol").String(),
			Value:  v.Get("value").Float(),
		})
		return true
	})

	return doc, nil
}

// EncodeJSON renders doc as JSON, for the `fmt` CLI subcommand's round-trip
// between formats. It is built with sjson.SetBytes rather than
// encoding/json so the whole format package stays on one JSON library:
// every array element is appended with sjson's "-1" append index, the same
// way DecodeJSON reads them back with gjson's path queries.
func EncodeJSON(doc *Document) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	for _, r := range doc.Rectangles {
		data, err = sjson.SetBytes(data, "rectangles.-1", map[string]any{
			"ref": r.Ref, "width": r.Width, "height": r.Height,
		})
		if err != nil {
			return nil, err
		}
	}

	for _, l := range doc.Links {
		data, err = sjson.SetBytes(data, "links.-1", map[string]any{
			"ref": l.Ref, "src": l.Src, "src_anchor": l.SrcAnchor,
			"dst": l.Dst, "dst_anchor": l.DstAnchor, "dx": l.DX, "dy": l.DY,
		})
		if err != nil {
			return nil, err
		}
	}

	for _, f := range doc.Fixes {
		data, err = sjson.SetBytes(data, "fixes.-1", map[string]any{
			"rectangle": f.Rectangle, "anchor": f.Anchor, "x": f.X, "y": f.Y,
		})
		if err != nil {
			return nil, err
		}
	}

	for _, eq := range doc.Equations {
		data, err = sjson.SetBytes(data, "equations.-1", eq)
		if err != nil {
			return nil, err
		}
	}

	for _, a := range doc.Assignments {
		data, err = sjson.SetBytes(data, "assignments.-1", map[string]any{
			"symbol": a.Symbol, "value": a.Value,
		})
		if err != nil {
			return nil, err
		}
	}

	if data == nil {
		data = []byte("{}")
	}
	return data, nil
}

// EncodeSolvedJSON renders a solved-symbol snapshot to JSON by building the
// document up one sjson.SetBytes call per symbol rather than marshaling a
// Go value wholesale, so internal/httpapi can build its response body
// without allocating an intermediate map for a potentially large symbol
// table.
func EncodeSolvedJSON(symbols []SolvedSymbol) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	for _, s := range symbols {
		// Symbol names are themselves dotted ("0.min.x"), which would
		// otherwise be read as nested sjson path segments; escape them so
		// each symbol lands as a single flat key under "symbols".
		escaped := strings.ReplaceAll(s.Name, ".", `\.`)
		path := "symbols." + escaped
		data, err = sjson.SetBytes(data, path+".state", s.State)
		if err != nil {
			return nil, err
		}
		data, err = sjson.SetBytes(data, path+".value", s.Value)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}
