package scenario

import (
	"bytes"
	_ "embed"
)

//go:embed demo.yaml
var demo []byte

// Demo returns the built-in demonstration scenario, with prices driven by seed.
func Demo(seed int64) *Scenario {
	s, err := Decode(bytes.NewReader(demo))
	if err != nil {
		panic(err) // the embedded scenario is valid.
	}
	s.Seed = seed
	return s
}
