package request

import (
	"bytes"
	"encoding/json"
	"github.com/bokysan/payloadenc/internal/logging"
	"github.com/bokysan/payloadenc/internal/payload"
	"github.com/bokysan/payloadenc/internal/util"
	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

type Command struct {
	payload.Options  `yaml:",inline"`
	payload.Metadata `yaml:",inline"`

	UploadFile string `yaml:"uploadFile" short:"u" long:"upload-file" env:"UPLOAD_FILE" description:"Build an upload request for this (already generated) file instead of a save request"`
	Output     string `yaml:"output"     short:"o" long:"output"      env:"OUTPUT"      description:"Output file. If not set, defaults to stdout." default:"-"`
	Indent     bool   `yaml:"indent"               long:"indent"      env:"INDENT"      description:"Pretty-print the JSON body"`

	Args struct {
		Files []string `positional-arg-name:"FILE" description:"Files with the text to save, one request per file. Reads stdin if none are given."`
	} `positional-args:"yes"`
}

func NewCommand() *Command {
	return &Command{}
}

// Requests builds the request bodies: a single upload request if an upload file was given,
// otherwise a save request per input.
func (c *Command) Requests() ([]payload.Request, error) {
	if c.UploadFile != "" {
		return []payload.Request{payload.NewUploadRequest(c.UploadFile, c.Metadata)}, nil
	}

	files := c.Args.Files
	if len(files) == 0 {
		files = []string{util.StdStream}
	}

	var errs error
	res := make([]payload.Request, 0, len(files))
	for _, name := range files {
		data, err := util.ReadInput(name)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		req, err := c.Options.NewSaveRequest(data, c.Metadata)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not encode %v", name))
			continue
		}
		log.Debugf("[Request] %v: %v", name, req)
		res = append(res, req)
	}
	return res, errs
}

// Run writes every request body into w, one per line.
func (c *Command) Run(w io.Writer) error {
	requests, errs := c.Requests()
	for _, req := range requests {
		log.Tracef("[Request] %s", spew.Sdump(req))

		data, err := req.JSON()
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		if c.Indent {
			buf := &bytes.Buffer{}
			if err := json.Indent(buf, data, "", "  "); err != nil {
				errs = multierror.Append(errs, errors.WithStack(err))
				continue
			}
			data = buf.Bytes()
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return multierror.Append(errs, errors.WithStack(err))
		}
	}
	return errs
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
