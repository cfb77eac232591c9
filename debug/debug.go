package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Expand bool
	Parse  bool
	Patch  bool
	Match  bool
	Replay bool
}

var d *debug

func init() {
	d = &debug{}
	d.Expand = boolEnv("DDLW_DEBUG_EXPAND")
	d.Parse = boolEnv("DDLW_DEBUG_PARSE")
	d.Patch = boolEnv("DDLW_DEBUG_PATCH")
	d.Match = boolEnv("DDLW_DEBUG_MATCH")
	d.Replay = boolEnv("DDLW_DEBUG_REPLAY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Expand() bool {
	return d.Expand
}
func Parse() bool {
	return d.Parse
}
func Patch() bool {
	return d.Patch
}
func Match() bool {
	return d.Match
}
func Replay() bool {
	return d.Replay
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
