package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	fieldTitle = "title"
	fieldPrice = "price"
)

var errMissingField = errors.New("missing field")

// parsePayload reads {"title": string, "price": number}. Title is read first;
// the first problem found is returned.
func parsePayload(body []byte) (string, decimal.Decimal, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return "", decimal.Zero, fmt.Errorf("json.Unmarshal: %w", err)
	}

	title, err := stringField(fields, fieldTitle)
	if err != nil {
		return "", decimal.Zero, err
	}

	price, err := numberField(fields, fieldPrice)
	if err != nil {
		return "", decimal.Zero, err
	}

	return title, price, nil
}

func rawField(fields map[string]json.RawMessage, name string) (json.RawMessage, error) {
	raw, ok := fields[name]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, fmt.Errorf("%w: %s", errMissingField, name)
	}
	return raw, nil
}

func stringField(fields map[string]json.RawMessage, name string) (string, error) {
	raw, err := rawField(fields, name)
	if err != nil {
		return "", err
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("field %s is not a string: %w", name, err)
	}

	return s, nil
}

// numberField keeps the literal digits of the JSON number, so 2.52 stays exactly 2.52.
func numberField(fields map[string]json.RawMessage, name string) (decimal.Decimal, error) {
	raw, err := rawField(fields, name)
	if err != nil {
		return decimal.Zero, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return decimal.Zero, fmt.Errorf("field %s: %w", name, err)
	}

	n, ok := v.(json.Number)
	if !ok {
		return decimal.Zero, fmt.Errorf("field %s is not a number", name)
	}

	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("field %s: decimal.NewFromString: %w", name, err)
	}

	return d, nil
}
