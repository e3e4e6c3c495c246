// Package debug gates diagnostic logging on FORMPATH_DEBUG_* environment
// variables.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Set     bool
	Flatten bool
	Diff    bool
	Resolve bool
}

var d *debug

func init() {
	d = &debug{}
	d.Set = boolEnv("FORMPATH_DEBUG_SET")
	d.Flatten = boolEnv("FORMPATH_DEBUG_FLATTEN")
	d.Diff = boolEnv("FORMPATH_DEBUG_DIFF")
	d.Resolve = boolEnv("FORMPATH_DEBUG_RESOLVE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Set() bool {
	return d.Set
}
func Flatten() bool {
	return d.Flatten
}
func Diff() bool {
	return d.Diff
}
func Resolve() bool {
	return d.Resolve
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func JSON(v any) string {
	d, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}
