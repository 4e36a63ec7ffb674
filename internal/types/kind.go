package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind classifies how a source item was matched
type Kind int

const (
	// KindFuzzy is a single best candidate chosen by similarity
	KindFuzzy Kind = iota
	// KindAmbiguous has more than one candidate inside the threshold window
	KindAmbiguous
	// KindExact is a verbatim hit in the target list
	KindExact
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindExact:
		return "EXACT"
	case KindAmbiguous:
		return "AMBIGUOUS"
	case KindFuzzy:
		return "FUZZY"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON implements json.Marshaler
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (k *Kind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseKind(str)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind parses a string into a Kind
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(s) {
	case "EXACT":
		return KindExact, nil
	case "AMBIGUOUS":
		return KindAmbiguous, nil
	case "FUZZY":
		return KindFuzzy, nil
	default:
		return KindFuzzy, fmt.Errorf("unknown match kind: %s", s)
	}
}
