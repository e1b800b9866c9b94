package flags

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
	"reflect"
	"strings"
	"unsafe"
)

// YamlParser is an argument parser for flags package but takes a YAML file instead of a standard INI.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses flags from an yaml formatted file. The returned errors
// can be of the type flags.Error.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)

	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	// Referenced files are resolved relative to the configuration file
	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse reads YAML documents from the stream one after another. This allows you to have
// multiple documents within one file, all separated by triple dashes (`---`).
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode document at position %v", i)
		}

		if err = y.parseDocument(obj); err != nil {
			return err
		}
	}
}

// parseDocument matches every top level key of the document to a command ("encode:") or to an
// option group ("general:", case insensitive) and fills its options from the value.
func (y *YamlParser) parseDocument(obj map[string]interface{}) error {
	for name, val := range obj {
		group := y.find(name)
		if group == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("could not find command or group '%s'", name),
			})
		}

		if err := fill(group, val); err != nil {
			return errors.Wrapf(err, "Invalid configuration for '%s'", name)
		}
	}
	return nil
}

func (y *YamlParser) find(name string) *flags.Group {
	if command := y.parser.Find(name); command != nil {
		return command.Group
	}
	for _, group := range y.parser.Groups() {
		if strings.EqualFold(group.ShortDescription, name) {
			return group
		}
	}
	return nil
}

// fill copies val into the structure behind the group. The flags library does not give access
// to it, so the unexported field is read through reflection.
//
// The flags library resets every option not given on the command line to its default once
// parsing is done, and the configuration file is read in the middle of parsing. Matching options
// therefore also get the configured value as their default.
func fill(group *flags.Group, val interface{}) error {
	dataField := reflect.Indirect(reflect.ValueOf(group)).FieldByName("data")
	dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
	target := dataField.Elem() // pointer to the options struct

	conv, err := yaml.Marshal(val)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := yaml.Unmarshal(conv, target.Interface()); err != nil {
		return errors.WithStack(err)
	}

	values := keyedValues(val)
	for _, option := range group.Options() {
		key := yamlKey(option.Field())
		if key == "" {
			continue
		}
		if v, found := values[key]; found {
			if literals := defaultLiterals(v); len(literals) > 0 {
				option.Default = literals
			}
		}
	}
	return nil
}

// yamlKey returns the key under which the field is read from the configuration, or an empty
// string if the field is excluded.
func yamlKey(field reflect.StructField) string {
	name := strings.Split(field.Tag.Get("yaml"), ",")[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return strings.ToLower(field.Name)
	}
	return name
}

func keyedValues(val interface{}) map[string]interface{} {
	res := make(map[string]interface{})
	v := reflect.ValueOf(val)
	if v.Kind() != reflect.Map {
		return res
	}
	iter := v.MapRange()
	for iter.Next() {
		res[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
	}
	return res
}

// defaultLiterals converts a configured value into the string form the flags library expects
// for defaults. Lists give one literal per element; nested structures are not supported.
func defaultLiterals(val interface{}) []string {
	if val == nil {
		return nil
	}
	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Map:
		return nil
	case reflect.Slice, reflect.Array:
		res := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			res = append(res, fmt.Sprint(v.Index(i).Interface()))
		}
		return res
	default:
		return []string{fmt.Sprint(val)}
	}
}
