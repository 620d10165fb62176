package noise

import (
	"fmt"
	"strings"

	"github.com/cwbudde/signalnoise/dsp/core"
)

// Kind selects the noise model. The zero value is not a valid kind.
type Kind int

const (
	Gaussian Kind = iota + 1
	Impulse
	Random
)

var kindNames = map[Kind]string{
	Gaussian: "gaussian",
	Impulse:  "impulse",
	Random:   "random",
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{Gaussian, Impulse, Random}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind maps a tag such as "gaussian" to its Kind.
// Matching ignores case and surrounding whitespace.
func ParseKind(tag string) (Kind, error) {
	want := strings.ToLower(strings.TrimSpace(tag))
	for _, k := range Kinds() {
		if kindNames[k] == want {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", core.ErrInvalidNoiseType, tag)
}

// Spec pairs a noise model with its intensity.
type Spec struct {
	Kind      Kind
	Intensity float64
}

// Validate checks the kind tag and the intensity range.
func (s Spec) Validate() error {
	if !s.Kind.Valid() {
		return fmt.Errorf("%w: %v", core.ErrInvalidNoiseType, s.Kind)
	}
	if !core.IsFinite(s.Intensity) || s.Intensity < 0 {
		return fmt.Errorf("%w: noise intensity must be finite and >= 0: %v", core.ErrInvalidInput, s.Intensity)
	}
	return nil
}
