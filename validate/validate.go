// Package validate applies struct-tag validation rules to request payloads.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required    field must not be empty
//	nullable    if empty, skip all remaining rules for this field
//	email       valid email address
//	min=N       string: minimum char length | number: minimum value
//	max=N       string: maximum char length | number: maximum value
//	in=a b c    value must be one of the space-separated items
//	date        parseable date (RFC 3339 or YYYY-MM-DD)
//
// Only the first failing rule per field is reported. Field names in error
// messages come from the json tag.
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Struct validates all exported fields of v that carry a `validate` tag and
// returns the failures in field declaration order. An empty slice means the
// payload is valid.
func Struct(v interface{}) []FieldError {
	var errs []FieldError

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		value := rv.Field(i)
		rules := strings.Split(tag, ",")

		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			if rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, name, value); msg != "" {
				errs = append(errs, FieldError{Field: name, Message: msg})
				break
			}
		}
	}

	return errs
}

func applyRule(rule, field string, v reflect.Value) string {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			if rule == "required" {
				return fmt.Sprintf("Le champ %s est requis", field)
			}
			return ""
		}
		v = v.Elem()
	}

	raw := fmt.Sprintf("%v", v.Interface())
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("Le champ %s est requis", field)
		}
	case "email":
		if !emailRE.MatchString(raw) {
			return fmt.Sprintf("Le champ %s doit être une adresse email valide", field)
		}
	case "min":
		n, _ := strconv.Atoi(param)
		if v.Kind() == reflect.String {
			if utf8.RuneCountInString(raw) < n {
				return fmt.Sprintf("Le champ %s doit contenir au moins %d caractères", field, n)
			}
		} else if num, ok := toFloat(v); ok && num < float64(n) {
			return fmt.Sprintf("Le champ %s doit être supérieur ou égal à %d", field, n)
		}
	case "max":
		n, _ := strconv.Atoi(param)
		if v.Kind() == reflect.String {
			if utf8.RuneCountInString(raw) > n {
				return fmt.Sprintf("Le champ %s doit contenir au plus %d caractères", field, n)
			}
		} else if num, ok := toFloat(v); ok && num > float64(n) {
			return fmt.Sprintf("Le champ %s doit être inférieur ou égal à %d", field, n)
		}
	case "in":
		for _, item := range strings.Split(param, " ") {
			if raw == item {
				return ""
			}
		}
		return fmt.Sprintf("Le champ %s doit être l'une des valeurs: %s", field, strings.Join(strings.Split(param, " "), ", "))
	case "date":
		if !parseableDate(raw) {
			return fmt.Sprintf("Le champ %s doit être une date valide", field)
		}
	}

	return ""
}

func jsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name
	}
	return name
}

func hasRule(rules []string, name string) bool {
	for _, r := range rules {
		if r == name {
			return true
		}
	}
	return false
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	}
	return v.IsZero()
}

func toFloat(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}

func parseableDate(raw string) bool {
	layouts := []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"}
	for _, layout := range layouts {
		if _, err := time.Parse(layout, raw); err == nil {
			return true
		}
	}
	return false
}
