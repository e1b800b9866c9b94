package main

import (
	"fmt"
	"github.com/bokysan/payloadenc/internal/args"
	"github.com/bokysan/payloadenc/internal/commands/encode"
	"github.com/bokysan/payloadenc/internal/commands/formats"
	"github.com/bokysan/payloadenc/internal/commands/request"
	"github.com/bokysan/payloadenc/internal/commands/version"
	pFlags "github.com/bokysan/payloadenc/internal/flags"
	"github.com/bokysan/payloadenc/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// PayloadEnc is the main executable
type PayloadEnc struct {
	parser *flags.Parser
}

// NewPayloadEnc will create a new instance of PayloadEnc and initialize the parser
func NewPayloadEnc() *PayloadEnc {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	pe := &PayloadEnc{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	pe.setupGeneral()
	pe.setupConfig()
	pe.setupVersion()
	pe.setupFormats()
	pe.setupEncode()
	pe.setupRequest()

	return pe
}

// setupGeneral will configure general options
func (pe *PayloadEnc) setupGeneral() {
	if _, err := pe.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupConfig makes `-c/--config` read the YAML configuration into the options of this parser
func (pe *PayloadEnc) setupConfig() {
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := pFlags.NewYamlParser(pe.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}
}

// Run parses the command line and executes the selected command
func (pe *PayloadEnc) Run(arguments []string) error {
	_, err := pe.parser.ParseArgs(arguments)
	return err
}

// setupVersion adds the `version` command
func (pe *PayloadEnc) setupVersion() {
	_, err := pe.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		&version.Command{},
	)
	util.MustErrorNilOrExit(err)
}

// setupFormats adds the `formats` command
func (pe *PayloadEnc) setupFormats() {
	_, err := pe.parser.AddCommand(
		"formats",
		"List output formats",
		"List the available output formats together with their one-letter codes",
		&formats.Command{},
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (pe *PayloadEnc) setupEncode() {
	_, err := pe.parser.AddCommand(
		"encode",
		"Encode text",
		"Encode text as UTF-8 and armor it (MIME Base64 with CRLF every 76 characters by default)",
		encode.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// setupRequest adds the `request` command
func (pe *PayloadEnc) setupRequest() {
	_, err := pe.parser.AddCommand(
		"request",
		"Build a request body",
		"Encode text and print the JSON body of the save (or upload) request which carries it",
		request.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// main starts payloadenc and reads the configuration file
func main() {
	err := NewPayloadEnc().Run(os.Args[1:])
	util.MustErrorNilOrExit(err)
}
