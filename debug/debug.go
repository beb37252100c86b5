// Package debug gates diagnostic logging behind GRAFT_DEBUG_*
// environment variables.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Map     bool
	Find    bool
	Replace bool
	Stale   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Map = boolEnv("GRAFT_DEBUG_MAP")
	d.Find = boolEnv("GRAFT_DEBUG_FIND")
	d.Replace = boolEnv("GRAFT_DEBUG_REPLACE")
	d.Stale = boolEnv("GRAFT_DEBUG_STALE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Map() bool {
	return d.Map
}
func Find() bool {
	return d.Find
}
func Replace() bool {
	return d.Replace
}
func Stale() bool {
	return d.Stale
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
