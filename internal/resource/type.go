package resource

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind enumerates the equipment categories known to the scheduler.
type Kind int

const (
	// KindOther is a category that is not one of the known kinds. The
	// original label is kept on the Type.
	KindOther Kind = iota
	// KindFermentor is a vessel for storage during fermentation.
	KindFermentor
	// KindKettle heats water and boils sweet wort.
	KindKettle
	// KindMashTun converts raw grain into sweet wort.
	KindMashTun
	// KindLauterTun separates the liquid and solid parts of a mash.
	KindLauterTun
	// KindKeg carbonates, ages and serves beer.
	KindKeg
	// KindKegerator refrigerates kegs.
	KindKegerator
	// KindGasTank force-carbonates beer.
	KindGasTank
)

var kindLabels = map[Kind]string{
	KindFermentor: "fermentor",
	KindKettle:    "kettle",
	KindMashTun:   "mashtun",
	KindLauterTun: "lautertun",
	KindKeg:       "keg",
	KindKegerator: "kegerator",
	KindGasTank:   "gastank",
}

var labelKinds = func() map[string]Kind {
	m := make(map[string]Kind, len(kindLabels))
	for k, label := range kindLabels {
		m[label] = k
	}
	return m
}()

// Type is a resource category: one of the known kinds, or KindOther carrying
// the label it was read with. Types are comparable with ==.
type Type struct {
	kind  Kind
	label string
}

// Known resource types.
var (
	Fermentor = Type{kind: KindFermentor}
	Kettle    = Type{kind: KindKettle}
	MashTun   = Type{kind: KindMashTun}
	LauterTun = Type{kind: KindLauterTun}
	Keg       = Type{kind: KindKeg}
	Kegerator = Type{kind: KindKegerator}
	GasTank   = Type{kind: KindGasTank}
)

// KnownTypes returns every known type in Kind order.
func KnownTypes() []Type {
	out := make([]Type, 0, len(kindLabels))
	for k := KindFermentor; k <= KindGasTank; k++ {
		out = append(out, Type{kind: k})
	}
	return out
}

// Other returns a type outside the known kinds.
func Other(label string) Type {
	return Type{kind: KindOther, label: label}
}

// ParseType maps a label to a Type. Unrecognized labels become Other(label)
// rather than failing.
func ParseType(label string) Type {
	if k, ok := labelKinds[label]; ok {
		return Type{kind: k}
	}
	return Other(label)
}

// Kind returns the category of t.
func (t Type) Kind() Kind {
	return t.kind
}

// IsOther reports whether t is outside the known kinds.
func (t Type) IsOther() bool {
	return t.kind == KindOther
}

// String returns the label t serializes to.
func (t Type) String() string {
	if t.kind == KindOther {
		return t.label
	}
	return kindLabels[t.kind]
}

// MarshalYAML implements yaml.Marshaler.
func (t Type) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Type) UnmarshalYAML(value *yaml.Node) error {
	var label string
	if err := value.Decode(&label); err != nil {
		return fmt.Errorf("resource type: %w", err)
	}
	*t = ParseType(label)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	*t = ParseType(string(text))
	return nil
}
