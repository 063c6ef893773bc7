// ============================================================================
// textkit - Code point safe string tooling
// ============================================================================
//
// Package:     pipeline
// Description: Built-in operations available to pipeline steps
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package pipeline

import (
	"fmt"
	"math"
	"sort"

	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

// Parameter types
const (
	TypeInt    = "int"
	TypeString = "string"
	TypeBool   = "bool"
)

// Params holds the parameters of a step as decoded from YAML or TOML
type Params map[string]interface{}

// ParameterDef defines an operation parameter
type ParameterDef struct {
	Type        string
	Description string
	Required    bool
}

// OperationHandler transforms one input with the step parameters
type OperationHandler func(s string, p Params) (string, error)

// Operation is a named string transformation usable as a pipeline step
type Operation struct {
	Name        string
	Description string
	Parameters  map[string]ParameterDef
	Handler     OperationHandler
}

var operations = builtinOperations()

// Lookup returns the operation registered under name
func Lookup(name string) (*Operation, bool) {
	op, ok := operations[name]
	return op, ok
}

// Operations returns all operation names, sorted
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParameterNames returns the parameter names of the operation, sorted
func (o *Operation) ParameterNames() []string {
	names := make([]string, 0, len(o.Parameters))
	for name := range o.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CaseConversions lists the targets accepted by ConvertCase
var CaseConversions = []string{
	"snake", "kebab", "camel", "pascal", "title",
	"upper", "lower", "swap", "capitalize", "uncapitalize",
}

// ConvertCase converts s to the named case
func ConvertCase(s, to string) (string, error) {
	switch to {
	case "snake":
		return stringx.ToSnakeCase(s), nil
	case "kebab":
		return stringx.ToKebabCase(s), nil
	case "camel":
		return stringx.ToCamelCase(s), nil
	case "pascal":
		return stringx.ToPascalCase(s), nil
	case "title":
		return stringx.ToTitleCase(s), nil
	case "upper":
		return stringx.UpperCase(s), nil
	case "lower":
		return stringx.LowerCase(s), nil
	case "swap":
		return stringx.SwapCase(s), nil
	case "capitalize":
		return stringx.Capitalize(s), nil
	case "uncapitalize":
		return stringx.Uncapitalize(s), nil
	default:
		return "", errors.InvalidArgument(errors.ModulePipeline, "case",
			fmt.Sprintf("unknown case %q", to))
	}
}

func builtinOperations() map[string]*Operation {
	width := func(desc string) ParameterDef {
		return ParameterDef{Type: TypeInt, Description: desc, Required: true}
	}
	unary := func(name, desc string, fn func(string) string) *Operation {
		return &Operation{
			Name:        name,
			Description: desc,
			Parameters:  map[string]ParameterDef{},
			Handler:     func(s string, _ Params) (string, error) { return fn(s), nil },
		}
	}
	pad := func(name, desc string, fn func(string, int, string) string) *Operation {
		return &Operation{
			Name:        name,
			Description: desc,
			Parameters: map[string]ParameterDef{
				"width": width("target width in code points"),
				"pad":   {Type: TypeString, Description: "pad string, cycled (default space)"},
			},
			Handler: func(s string, p Params) (string, error) {
				return fn(s, p.Int("width", 0), p.String("pad", stringx.Space)), nil
			},
		}
	}

	ops := []*Operation{
		{
			Name:        "abbreviate",
			Description: "Shorten to a maximum width with a marker",
			Parameters: map[string]ParameterDef{
				"width":  width("maximum width in code points"),
				"marker": {Type: TypeString, Description: "marker for elided content (default ...)"},
				"offset": {Type: TypeInt, Description: "keep content at this code point visible"},
			},
			Handler: func(s string, p Params) (string, error) {
				return stringx.AbbreviateFull(s, p.String("marker", stringx.DefaultMarker), p.Int("offset", 0), p.Int("width", 0))
			},
		},
		{
			Name:        "abbreviate_middle",
			Description: "Replace the middle to reach an exact width",
			Parameters: map[string]ParameterDef{
				"width":  width("resulting width in code points"),
				"middle": {Type: TypeString, Description: "replacement for the middle (default ...)"},
			},
			Handler: func(s string, p Params) (string, error) {
				return stringx.AbbreviateMiddle(s, p.String("middle", stringx.DefaultMarker), p.Int("width", 0)), nil
			},
		},
		{
			Name:        "truncate",
			Description: "Cut to a maximum width, ending with an ellipsis if it fits",
			Parameters: map[string]ParameterDef{
				"width":    width("maximum width in code points"),
				"ellipsis": {Type: TypeString, Description: "ellipsis (default ...)"},
			},
			Handler: func(s string, p Params) (string, error) {
				return stringx.TruncateWithValidation(s, p.Int("width", 0), p.String("ellipsis", stringx.DefaultMarker))
			},
		},
		{
			Name:        "strip",
			Description: "Remove code points from both ends",
			Parameters: map[string]ParameterDef{
				"chars": {Type: TypeString, Description: "code points to strip (default whitespace)"},
			},
			Handler: func(s string, p Params) (string, error) {
				return stringx.Strip(s, p.String("chars", "")), nil
			},
		},
		{
			Name:        "remove",
			Description: "Remove all occurrences of a substring",
			Parameters: map[string]ParameterDef{
				"text": {Type: TypeString, Description: "substring to remove", Required: true},
			},
			Handler: func(s string, p Params) (string, error) {
				return stringx.Remove(s, p.String("text", "")), nil
			},
		},
		{
			Name:        "case",
			Description: "Convert case or naming convention",
			Parameters: map[string]ParameterDef{
				"to": {Type: TypeString, Description: "target case", Required: true},
			},
			Handler: func(s string, p Params) (string, error) {
				return ConvertCase(s, p.String("to", ""))
			},
		},
		{
			Name:        "wrap",
			Description: "Word wrap at a width",
			Parameters: map[string]ParameterDef{
				"width":      width("line width in code points"),
				"newline":    {Type: TypeString, Description: "line separator (default \\n)"},
				"long_words": {Type: TypeBool, Description: "break words longer than width"},
			},
			Handler: func(s string, p Params) (string, error) {
				return stringx.Wrap(s, p.Int("width", 0), p.String("newline", stringx.LF), p.Bool("long_words", false)), nil
			},
		},
		pad("pad_left", "Pad on the left", stringx.LeftPad),
		pad("pad_right", "Pad on the right", stringx.RightPad),
		pad("center", "Pad on both sides", stringx.Center),
		unary("trim", "Remove control characters and spaces from both ends", stringx.Trim),
		unary("normalize_space", "Collapse whitespace runs to one space", stringx.NormalizeSpace),
		unary("strip_accents", "Remove diacritical marks", stringx.StripAccents),
		unary("reverse", "Reverse the code points", stringx.Reverse),
	}

	registry := make(map[string]*Operation, len(ops))
	for _, op := range ops {
		registry[op.Name] = op
	}
	return registry
}

// Int returns the integer parameter key, or def when it is absent.
// Decoders deliver int, int64, uint64 or integral float64 values.
func (p Params) Int(key string, def int) int {
	if n, ok := toInt(p[key]); ok {
		return n
	}
	return def
}

// String returns the string parameter key, or def when it is absent
func (p Params) String(key, def string) string {
	if s, ok := p[key].(string); ok {
		return s
	}
	return def
}

// Bool returns the boolean parameter key, or def when it is absent
func (p Params) Bool(key string, def bool) bool {
	if b, ok := p[key].(bool); ok {
		return b
	}
	return def
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) || n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// checkType reports whether v has the declared parameter type
func checkType(typ string, v interface{}) bool {
	switch typ {
	case TypeInt:
		_, ok := toInt(v)
		return ok
	case TypeString:
		_, ok := v.(string)
		return ok
	case TypeBool:
		_, ok := v.(bool)
		return ok
	default:
		return false
	}
}
