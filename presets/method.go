// SPDX-License-Identifier: MIT

package presets

import (
	"fmt"
	"strings"
)

// Method names the tool an input came from.
type Method int

const (
	SparCC Method = iota
	Naive
	BrayCurtis
	MIC
	LSA
	CoNet
	RMT
)

var methodNames = [...]string{
	SparCC:     "sparcc",
	Naive:      "naive",
	BrayCurtis: "braycurtis",
	MIC:        "mic",
	LSA:        "lsa",
	CoNet:      "conet",
	RMT:        "rmt",
}

// String returns the configuration tag of m.
func (m Method) String() string {
	if m < SparCC || m > RMT {
		return fmt.Sprintf("method(%d)", int(m))
	}

	return methodNames[m]
}

// Itemized reports whether the tool delivers an edge list instead of a
// square matrix.
func (m Method) Itemized() bool { return m == LSA || m == CoNet || m == RMT }

// ParseMethod maps a tag to a Method, ignoring case, surrounding space and
// a "-" or "_" inside the name ("bray-curtis").
func ParseMethod(tag string) (Method, error) {
	t := strings.ToLower(strings.TrimSpace(tag))
	t = strings.NewReplacer("-", "", "_", "").Replace(t)
	for i, name := range methodNames {
		if name == t {
			return Method(i), nil
		}
	}

	return 0, presetErrorf(fmt.Sprintf("ParseMethod(%q)", tag), ErrUnknownMethod)
}

// MethodNames lists every tag ParseMethod accepts, in Method order.
func MethodNames() []string {
	out := make([]string, len(methodNames))
	copy(out, methodNames[:])

	return out
}
