package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
	Human  bool
	Limits bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("DX_DEBUG_PARSE")
	d.Encode = boolEnv("DX_DEBUG_ENCODE")
	d.Human = boolEnv("DX_DEBUG_HUMAN")
	d.Limits = boolEnv("DX_DEBUG_LIMITS")
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
func Encode() bool {
	return d.Encode
}
func Human() bool {
	return d.Human
}
func Limits() bool {
	return d.Limits
}
