package logging

import (
	"github.com/bokysan/payloadenc/internal/args"
	"github.com/bokysan/payloadenc/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
	"strings"
)

// SetupLogging configures logrus from the general options. Logs go to stderr (or a file) so
// they never mix with the encoded output on stdout.
func SetupLogging() {
	SetVerbosity(args.General.Verbose)

	// Caller fields come from the hook only; logrus' ReportCaller stays off.
	if args.General.LogReportCaller && !hasContextHook() {
		log.AddHook(&ContextHook{})
	}

	if args.General.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
			},
		})
	} else {
		color := strings.TrimSpace(strings.ToLower(args.General.LogColor))
		fullTimestamp := args.General.LogFullTimestamp
		log.SetFormatter(&log.TextFormatter{
			ForceColors:   color == "yes" || color == "true" || color == "1",
			DisableColors: color == "no" || color == "false" || color == "0",
			FullTimestamp: fullTimestamp,
		})
	}
	log.SetOutput(os.Stderr)
	log.Debugf("Verbosity level: %v", VerbosityName())

	if args.General.LogFile != nil && len(*args.General.LogFile) > 0 && *args.General.LogFile != "-" {
		f, err := os.OpenFile(*args.General.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			util.MustErrorNilOrExit(errors.WithStack(err))
		}
		log.SetOutput(f)
	}
}

func hasContextHook() bool {
	for _, hook := range log.StandardLogger().Hooks[log.InfoLevel] {
		if _, ok := hook.(*ContextHook); ok {
			return true
		}
	}
	return false
}
