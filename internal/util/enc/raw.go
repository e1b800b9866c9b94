package enc

import "fmt"

// -------------------------------------------------------

// RawEncoder does not do any translation whatsoever. The output is only ASCII if the input is.
type RawEncoder struct {
}

func (b *RawEncoder) Name() string {
	return "Raw"
}

func (b *RawEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *RawEncoder) Code() byte {
	return 'R'
}

func (b *RawEncoder) Encode(data []byte) string {
	return string(data)
}

func (b *RawEncoder) TestPatterns() []string {
	return []string{}
}
