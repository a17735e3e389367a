package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"

	schematree "github.com/schematree/schematree"
)

// JSONBytes decodes one JSON value from b. Trailing non-whitespace input is
// an error.
func JSONBytes(b []byte) (any, error) {
	return JSONReader(bytes.NewReader(b))
}

// JSONReader decodes one JSON value from r using a token-level walk so that
// object key order is preserved. Numbers are decoded with UseNumber and
// narrowed to int64 or float64 by literal shape.
func JSONReader(r io.Reader) (any, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("source: trailing data after JSON value")
	}
	return v, nil
}

func decodeValue(dec *gojson.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *gojson.Decoder, tok gojson.Token) (any, error) {
	switch t := tok.(type) {
	case gojson.Delim:
		switch t {
		case '{':
			m := schematree.NewMap()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("source: object key is %T, not string", keyTok)
				}
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				m.Set(key, v)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return m, nil
		case '[':
			elems := []any{}
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				elems = append(elems, v)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return elems, nil
		}
		return nil, fmt.Errorf("source: unexpected delimiter %q", t.String())
	case string:
		return t, nil
	case bool:
		return t, nil
	case gojson.Number:
		return numberValue(string(t)), nil
	case float64:
		// Only reachable without UseNumber; kept for safety.
		return t, nil
	case nil:
		return nil, nil
	}
	return nil, fmt.Errorf("source: unexpected JSON token %v", tok)
}

// numberValue narrows a JSON number literal: fraction or exponent means
// float64, everything else int64. Literals that fit neither (int64 overflow)
// stay textual as a json.Number, which the inferencer still classifies by
// literal shape.
func numberValue(s string) any {
	if strings.ContainsAny(s, ".eE") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	} else if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return json.Number(s)
}
