package repository

import (
	"bytes"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"

	"homecalc/domain"
)

// Encode serializes v with msgpack, naming fields by their json tags.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	enc.SetSortMapKeys(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode is the inverse of Encode.
func Decode(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}

// CacheKey derives a stable key for a calculator input.
func CacheKey(kind domain.CalculatorKind, input any) (string, error) {
	data, err := Encode(input)
	if err != nil {
		return "", err
	}
	return "calc:" + kind.String() + ":" + strconv.FormatUint(xxhash.Sum64(data), 16), nil
}
