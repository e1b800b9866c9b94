package formats

import (
	"fmt"
	"github.com/bokysan/payloadenc/internal/util/enc"
	"github.com/k0kubun/go-ansi"
	"io"
)

const (
	Bold     = "\x1b[1m"
	Reset    = "\x1b[0m"
	DarkGray = "\x1b[90m"
	White    = "\x1b[97m"
)

// Command lists the available output formats
type Command struct {
}

func (c *Command) String() string {
	return "Output formats"
}

// List writes one line per encoder: its one-letter code, its name and whether it's the default.
func List(w io.Writer) error {
	for _, e := range enc.Encoders() {
		def := ""
		if e == enc.DefaultEncoder {
			def = DarkGray + " (default)"
		}
		if _, err := fmt.Fprintf(w, DarkGray+" %c  "+Bold+White+"%v"+def+Reset+"\n", e.Code(), e.Name()); err != nil {
			return err
		}
	}
	return nil
}

//noinspection GoUnusedParameter
func (c *Command) Execute(args []string) error {
	return List(ansi.NewAnsiStdout())
}
