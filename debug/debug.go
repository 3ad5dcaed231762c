package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Frame bool
	Patch bool
	Query bool
	RPC   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Frame = boolEnv("QJSON_DEBUG_FRAME")
	d.Patch = boolEnv("QJSON_DEBUG_PATCH")
	d.Query = boolEnv("QJSON_DEBUG_QUERY")
	d.RPC = boolEnv("QJSON_DEBUG_RPC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Frame() bool {
	return d.Frame
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}
func RPC() bool {
	return d.RPC
}
