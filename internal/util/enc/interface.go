package enc

import (
	"github.com/pkg/errors"
	"strings"
)

type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Return a list of test patterns for the specified encoding
	TestPatterns() []string
}

// DefaultEncoder is used when no format has been selected
var DefaultEncoder Encoder = &Base64Encoder{}

var encoders = []Encoder{
	DefaultEncoder,
	&Base64uEncoder{},
	&Base32Encoder{},
	&Base85Encoder{},
	&Base91Encoder{},
	&Base128Encoder{},
	&RawEncoder{},
}

// Encoders returns all known encoders, the default one first.
func Encoders() []Encoder {
	res := make([]Encoder, len(encoders))
	copy(res, encoders)
	return res
}

// Lookup finds an encoder by its name (case insensitive) or by its one-letter code (case sensitive).
func Lookup(name string) (Encoder, error) {
	var available []string
	for _, e := range encoders {
		if strings.EqualFold(e.Name(), name) || (len(name) == 1 && name[0] == e.Code()) {
			return e, nil
		}
		available = append(available, e.Name())
	}
	return nil, errors.Errorf("Could not find encoder with name: '%s' among: %v", name, available)
}

// Format is the name or the one-letter code of an encoder. It can be used directly as a
// command line / YAML option.
type Format string

// Encoder returns the selected encoder or DefaultEncoder if nothing was selected.
func (f Format) Encoder() (Encoder, error) {
	if f == "" {
		return DefaultEncoder, nil
	}
	return Lookup(string(f))
}

// UnmarshalFlag validates the format while the command line is being parsed.
func (f *Format) UnmarshalFlag(value string) error {
	value = strings.TrimSpace(value)
	if _, err := Lookup(value); err != nil {
		return err
	}
	*f = Format(value)
	return nil
}

// MarshalFlag returns the name of the selected encoder, so defaults and configuration show the
// encoder by its name even when it was chosen by code.
func (f Format) MarshalFlag() (string, error) {
	encoder, err := f.Encoder()
	if err != nil {
		return "", err
	}
	return encoder.Name(), nil
}
