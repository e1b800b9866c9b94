package encode

import (
	"github.com/bokysan/payloadenc/internal/logging"
	"github.com/bokysan/payloadenc/internal/payload"
	"github.com/bokysan/payloadenc/internal/util"
	"github.com/bokysan/payloadenc/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"io"
)

type Command struct {
	payload.Options `yaml:",inline"`

	Output string `yaml:"output" short:"o" long:"output" env:"OUTPUT" description:"Output file. If not set, defaults to stdout." default:"-"`
	Stream bool   `yaml:"stream"           long:"stream" env:"STREAM" description:"Encode UTF-8 input as it comes in, without loading it into memory. Only for the Base64 format."`

	Args struct {
		Files []string `positional-arg-name:"FILE" description:"Files to encode. Reads stdin if none are given."`
	} `positional-args:"yes"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) inputs() []string {
	if len(c.Args.Files) == 0 {
		return []string{util.StdStream}
	}
	return c.Args.Files
}

// Run encodes every input into w, each result followed by a line feed. Inputs which fail are
// skipped and reported together at the end.
func (c *Command) Run(w io.Writer) error {
	var errs error

	encoder, err := c.Format.Encoder()
	if err != nil {
		return err
	}
	if c.Stream && encoder != enc.DefaultEncoder {
		return errors.Errorf("Streaming is only supported for %v, not %v", enc.DefaultEncoder.Name(), encoder.Name())
	}
	if c.Stream && ((c.Charset != "" && c.Charset != payload.CharsetUTF8) || c.Strict) {
		return errors.Errorf("Streaming is only supported for non-strict %v input", payload.CharsetUTF8)
	}

	for _, name := range c.inputs() {
		var err error
		if c.Stream {
			err = c.stream(name, w)
		} else {
			err = c.encode(name, w)
		}
		if err != nil {
			log.WithError(err).Errorf("[Encode] Could not encode %v: %v", name, err)
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not encode %v", name))
		}
	}

	return errs
}

func (c *Command) encode(name string, w io.Writer) error {
	data, err := util.ReadInput(name)
	if err != nil {
		return err
	}

	encoded, err := c.Options.Encode(data)
	if err != nil {
		return err
	}
	log.Debugf("[Encode] %v: %v bytes -> %v characters", name, len(data), len(encoded))

	if _, err := io.WriteString(w, encoded+"\n"); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func (c *Command) stream(name string, w io.Writer) error {
	r, err := util.OpenInput(name)
	if err != nil {
		return err
	}
	defer r.Close()

	return streamFrom(r, name, w)
}

// streamFrom armors r into w. Invalid UTF-8 is replaced with U+FFFD byte by byte, the same way
// the buffered path decodes it. The output is always closed and terminated, even when reading
// fails partway, so the next input starts on a line of its own.
func streamFrom(r io.Reader, name string, w io.Writer) error {
	encoder := enc.NewWrappedWriter(w)
	n, copyErr := io.Copy(encoder, transform.NewReader(r, runes.ReplaceIllFormed()))
	closeErr := encoder.Close()
	_, writeErr := io.WriteString(w, "\n")

	if copyErr != nil {
		return errors.Wrapf(copyErr, "Could not stream %v", name)
	}
	if closeErr != nil {
		return errors.WithStack(closeErr)
	}
	if writeErr != nil {
		return errors.WithStack(writeErr)
	}
	log.Debugf("[Encode] %v: streamed %v bytes", name, n)
	return nil
}

//noinspection GoUnusedParameter
func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	out, err := util.OpenOutput(c.Output)
	if err != nil {
		return err
	}

	errs := c.Run(out)
	if err := out.Close(); err != nil {
		errs = multierror.Append(errs, errors.Wrapf(err, "Could not close %v", c.Output))
	}
	return errs
}
