package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// dateLayouts are tried in order; the first one that parses wins.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// FieldError is one entry of a 422 response body.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

var registerOnce sync.Once

// RegisterValidators wires the custom "datetime" rule and json field naming
// into gin's validator engine. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonName)
		_ = v.RegisterValidation("flexdate", func(fl validator.FieldLevel) bool {
			_, err := ParseDate(fl.Field().String())
			return err == nil
		})
	})
}

// ParseDate accepts RFC3339, a zone-less ISO-8601 date-time (read as UTC) or
// a bare YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", s)
}

func parseDatePtr(s *string) *time.Time {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil
	}
	return &t
}

// Bind decodes a JSON object body into obj, a pointer to a request struct,
// and validates it. Every offending field is reported: a value of the wrong
// type does not stop the remaining fields from being decoded and checked.
// It returns nil when the payload is acceptable.
func Bind(body io.Reader, obj any) []FieldError {
	var raw map[string]json.RawMessage
	if body == nil {
		return []FieldError{{Loc: []string{"body"}, Msg: "Field required", Type: "missing"}}
	}
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return []FieldError{{Loc: []string{"body"}, Msg: "Field required", Type: "missing"}}
		}
		return ValidationDetails(err)
	}

	rv := reflect.ValueOf(obj)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return []FieldError{{Loc: []string{"body"}, Msg: fmt.Sprintf("cannot bind into %T", obj), Type: "json_invalid"}}
	}
	sv := rv.Elem()
	st := sv.Type()

	typeErrs := map[string]FieldError{}
	for i := 0; i < st.NumField(); i++ {
		name := jsonName(st.Field(i))
		msg, ok := raw[name]
		if name == "" || !ok {
			continue
		}
		if err := json.Unmarshal(msg, sv.Field(i).Addr().Interface()); err != nil {
			typeErrs[name] = fieldTypeError(name, err)
			sv.Field(i).Set(reflect.Zero(st.Field(i).Type))
		}
	}

	ruleErrs := map[string][]FieldError{}
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		for _, fe := range ValidationDetails(err) {
			field := fe.Loc[len(fe.Loc)-1]
			ruleErrs[field] = append(ruleErrs[field], fe)
		}
	}

	var out []FieldError
	for i := 0; i < st.NumField(); i++ {
		name := jsonName(st.Field(i))
		if fe, ok := typeErrs[name]; ok {
			out = append(out, fe)
			continue
		}
		out = append(out, ruleErrs[name]...)
		delete(ruleErrs, name)
	}
	for _, rest := range ruleErrs {
		out = append(out, rest...)
	}
	return out
}

func jsonName(f reflect.StructField) string {
	if !f.IsExported() {
		return ""
	}
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func fieldTypeError(name string, err error) FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return FieldError{
			Loc:  []string{"body", name},
			Msg:  fmt.Sprintf("Input should be a valid %s", describeKind(typeErr.Type)),
			Type: "type_error",
		}
	}
	return FieldError{Loc: []string{"body", name}, Msg: err.Error(), Type: "type_error"}
}

// ValidationDetails turns a binding error into per-field entries.
// Errors that cannot be tied to a field are reported against the body.
func ValidationDetails(err error) []FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, fromFieldError(fe))
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []FieldError{{
			Loc:  []string{"body", typeErr.Field},
			Msg:  fmt.Sprintf("Input should be a valid %s", describeKind(typeErr.Type)),
			Type: "type_error",
		}}
	}

	return []FieldError{{
		Loc:  []string{"body"},
		Msg:  err.Error(),
		Type: "json_invalid",
	}}
}

func fromFieldError(fe validator.FieldError) FieldError {
	loc := []string{"body", fe.Field()}
	switch fe.Tag() {
	case "required":
		return FieldError{Loc: loc, Msg: "Field required", Type: "missing"}
	case "flexdate":
		return FieldError{Loc: loc, Msg: "Input should be a valid datetime", Type: "datetime_parsing"}
	default:
		return FieldError{Loc: loc, Msg: fmt.Sprintf("Failed on the '%s' rule", fe.Tag()), Type: fe.Tag()}
	}
}

func describeKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Ptr:
		return describeKind(t.Elem())
	default:
		return t.Kind().String()
	}
}
