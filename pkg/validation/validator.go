package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/oksasatya/gudimart-store/pkg/nullable"
)

// Init applies Register to the validator behind gin's binding. Call it once
// before serving.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

// Register makes v report fields by their json (or form) name and adds the
// alias tags request structs use.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		tag := fld.Tag.Get("json")
		if tag == "" {
			tag = fld.Tag.Get("form")
		}
		name := strings.SplitN(tag, ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	for _, al := range aliases {
		v.RegisterAlias(al.tag, al.rule)
	}
	// Patch fields validate their value; absent or null counts as empty.
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		switch n := f.Interface().(type) {
		case nullable.Field[string]:
			return n.Raw()
		case nullable.Field[int64]:
			return n.Raw()
		}
		return nil
	}, nullable.Field[string]{}, nullable.Field[int64]{})
}

// alias names a domain rule once so request structs and error messages
// agree on it.
type alias struct {
	tag, rule, msg string
}

var aliases = []alias{
	{"pwd", "min=6", "must be at least 6 characters long"},
	{"poststatus", "oneof=draft scheduled published failed", ""},
	{"approvalstatus", "oneof=pending approved rejected", ""},
	{"entrytype", "oneof=post milestone reminder", ""},
	{"productsort", "oneof=price_asc price_desc rating newest", ""},
	{"postsort", "oneof=scheduled_asc scheduled_desc created_asc created_desc", ""},
	{"clock", "datetime=15:04", "must be a time of day like 14:30"},
}

// aliasMessage returns the message for an alias tag. oneof aliases without
// their own message list the allowed values.
func aliasMessage(tag string) (string, bool) {
	for _, al := range aliases {
		if al.tag != tag {
			continue
		}
		if al.msg != "" {
			return al.msg, true
		}
		if values, ok := strings.CutPrefix(al.rule, "oneof="); ok {
			return oneOf(values), true
		}
	}
	return "", false
}

func oneOf(values string) string {
	return "must be one of: " + strings.Join(strings.Fields(values), ", ")
}

// ToDetails converts validation/binding errors into a map[field]message suitable for API error.details.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) {
		return map[string]string{"payload": "invalid json"}
	}
	if errors.As(err, &ute) {
		if ute.Field != "" {
			return map[string]string{ute.Field: "must be a " + ute.Type.String()}
		}
		return map[string]string{"payload": "invalid json"}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	if msg, ok := aliasMessage(fe.Tag()); ok {
		return msg
	}
	param := fe.Param()
	unit := " characters long"
	switch {
	case isNumberKind(fe.Kind()):
		unit = ""
	case fe.Kind() == reflect.Slice:
		unit = " items"
	}

	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "hexcolor":
		return "must be a hex colour like #2874f0"
	case "min":
		return "must be at least " + param + unit
	case "max":
		return "must be at most " + param + unit
	case "gt":
		return "must be greater than " + param
	case "oneof":
		return oneOf(param)
	case "datetime":
		return "must match time format " + param
	}
	if param != "" {
		return fmt.Sprintf("failed %s=%s", fe.Tag(), param)
	}
	return "failed " + fe.Tag()
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
