package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/signadot/nbtedit/tag"
)

type debug struct {
	Edit      bool
	Codec     bool
	Inventory bool
	Patch     bool
	Query     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Edit = boolEnv("NBTEDIT_DEBUG_EDIT")
	d.Codec = boolEnv("NBTEDIT_DEBUG_CODEC")
	d.Inventory = boolEnv("NBTEDIT_DEBUG_INVENTORY")
	d.Patch = boolEnv("NBTEDIT_DEBUG_PATCH")
	d.Query = boolEnv("NBTEDIT_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Edit() bool {
	return d.Edit
}
func Codec() bool {
	return d.Codec
}
func Inventory() bool {
	return d.Inventory
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}

// Logf writes to stderr, rendering tag arguments in their typed JSON form.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *tag.Compound, *tag.List:
			d, err := tag.MarshalJSON(x.(tag.Tag))
			if err != nil {
				args[i] = fmt.Sprintf("[raw tag] %v", x)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
