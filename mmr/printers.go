package mmr

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// debug utilities

func proofPathStringer(path [][]byte, sep string) string {
	var spath []string

	for _, it := range path {
		spath = append(spath, hex.EncodeToString(it))
	}
	return strings.Join(spath, sep)
}

func (p Proof) String() string {
	return fmt.Sprintf(
		"root: %x, width: %d, peak bagging: [%s], siblings: [%s]",
		p.Root, p.Width, proofPathStringer(p.PeakBagging, ", "), proofPathStringer(p.Siblings, ", "))
}
