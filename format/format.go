// Package format renders calculation results for people: currency with
// thousands separators and percentages with one or two decimals.
package format

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Currency formats whole currency units, e.g. "$1,896".
func Currency(v float64) string {
	return money(v, 0)
}

// Cents formats currency with two decimals, e.g. "$1,896.20".
func Cents(v float64) string {
	return money(v, 2)
}

// Percent formats v (already in percent) with the given decimals, e.g. "0.48%".
func Percent(v float64, decimals int) string {
	return strconv.FormatFloat(clean(v, decimals), 'f', decimals, 64) + "%"
}

func money(v float64, decimals int) string {
	v = clean(v, decimals)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	pattern := "#,###."
	if decimals > 0 {
		pattern += strings.Repeat("#", decimals)
	}
	return sign + "$" + humanize.FormatFloat(pattern, v)
}

// clean rounds to the displayed precision so that values such as -0.004 do not
// print as negative zero.
func clean(v float64, decimals int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	scale := math.Pow(10, float64(decimals))
	r := math.Round(v*scale) / scale
	if r == 0 {
		return 0
	}
	return r
}

// Field is one formatted value of a result.
type Field struct {
	Key   string
	Value string
}

// Fields walks a result struct and formats every field carrying a display
// tag, in declaration order, keyed by its JSON name. Nested structs are
// prefixed with their field name ("current.loanToValue"), slice elements with
// their index ("breakdown[1].amount"). Supported tags: currency, cents,
// percent1, percent2, years, count.
func Fields(result any) []Field {
	var out []Field
	walk(reflect.ValueOf(result), "", &out)
	return out
}

// Display is Fields as a map.
func Display(result any) map[string]string {
	fields := Fields(result)
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}

func walk(v reflect.Value, prefix string, out *[]Field) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		key := prefix + jsonName(field)
		fv := v.Field(i)

		if tag, ok := field.Tag.Lookup("display"); ok {
			if s, ok := render(tag, fv); ok {
				*out = append(*out, Field{Key: key, Value: s})
			}
			continue
		}

		switch fv.Kind() {
		case reflect.Struct, reflect.Pointer:
			walk(fv, key+".", out)
		case reflect.Slice, reflect.Array:
			for j := 0; j < fv.Len(); j++ {
				walk(fv.Index(j), key+"["+strconv.Itoa(j)+"].", out)
			}
		}
	}
}

func render(tag string, v reflect.Value) (string, bool) {
	var f float64
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		f = v.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f = float64(v.Int())
	default:
		return "", false
	}

	switch tag {
	case "currency":
		return Currency(f), true
	case "cents":
		return Cents(f), true
	case "percent1":
		return Percent(f, 1), true
	case "percent2":
		return Percent(f, 2), true
	case "years":
		return strconv.FormatFloat(clean(f, 1), 'f', 1, 64), true
	case "count":
		return humanize.Comma(int64(math.Round(f))), true
	}
	return "", false
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}
