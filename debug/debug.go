package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Gen   bool
	Sat   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("PROP_DEBUG_PARSE")
	d.Gen = boolEnv("PROP_DEBUG_GEN")
	d.Sat = boolEnv("PROP_DEBUG_SAT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Gen() bool {
	return d.Gen
}
func Sat() bool {
	return d.Sat
}
