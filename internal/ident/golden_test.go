package ident

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TestNormalize_Golden pins the exact normalization output for a fixed set
// of inputs. Normalization feeds the denylist comparison, so any drift here
// silently changes which identifiers are allowed on disk.
//
// To regenerate, run:
//
//	go test ./internal/ident -update
func TestNormalize_Golden(t *testing.T) {
	inputs := []string{
		"Admin",
		"a-d_m in",
		"Trouble Brewing",
		"G4-X9",
		"Café",
		"__-- ",
		"washerwoman",
	}

	var buf bytes.Buffer
	for _, in := range inputs {
		fmt.Fprintf(&buf, "%s\n", Normalize(in))
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
	)
	g.Assert(t, "normalize", buf.Bytes())
}
