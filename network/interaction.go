// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"strings"
)

// Interaction is the polarity of a significant relationship.
type Interaction int

const (
	// Copresence is a positive association.
	Copresence Interaction = iota
	// MutualExclusion is a negative association.
	MutualExclusion
)

const (
	labelCopresence      = "copresence"
	labelMutualExclusion = "mutualExclusion"
)

// String returns the canonical label.
func (in Interaction) String() string {
	switch in {
	case Copresence:
		return labelCopresence
	case MutualExclusion:
		return labelMutualExclusion
	default:
		return fmt.Sprintf("interaction(%d)", int(in))
	}
}

// Sign returns +1 for Copresence and -1 for MutualExclusion.
func (in Interaction) Sign() float64 {
	if in == MutualExclusion {
		return -1
	}

	return 1
}

// ParseInteraction accepts the canonical labels, case-insensitively.
func ParseInteraction(label string) (Interaction, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case strings.ToLower(labelCopresence):
		return Copresence, nil
	case strings.ToLower(labelMutualExclusion):
		return MutualExclusion, nil
	default:
		return 0, networkErrorf(fmt.Sprintf("ParseInteraction(%q)", label), ErrUnknownInteraction)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (in Interaction) MarshalText() ([]byte, error) { return []byte(in.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (in *Interaction) UnmarshalText(b []byte) error {
	v, err := ParseInteraction(string(b))
	if err != nil {
		return err
	}
	*in = v

	return nil
}

// Classifier assigns an Interaction to a surviving pair.
type Classifier int

const (
	// Signed: score >= 0 is Copresence, score < 0 is MutualExclusion.
	Signed Classifier = iota
	// Unsigned: every edge is Copresence; the measure has no sign.
	Unsigned
	// Given keeps the label delivered with a pre-formed edge and falls back
	// to Signed when the edge has none.
	Given
)

// String names the classifier.
func (c Classifier) String() string {
	switch c {
	case Signed:
		return "signed"
	case Unsigned:
		return "unsigned"
	case Given:
		return "given"
	default:
		return fmt.Sprintf("classifier(%d)", int(c))
	}
}

// Classify labels a score. The boundary 0 is Copresence (non-strict).
// Given behaves as Signed here; labels are applied by the extractor.
func (c Classifier) Classify(score float64) Interaction {
	if c == Unsigned {
		return Copresence
	}
	if score >= 0 {
		return Copresence
	}

	return MutualExclusion
}
