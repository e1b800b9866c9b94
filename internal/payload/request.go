package payload

import (
	"encoding/json"
	"fmt"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

// Metadata describes where the saved document belongs to
type Metadata struct {
	InputImage  string `json:"inputImage"  yaml:"inputImage"  long:"image"     env:"INPUT_IMAGE"  description:"Source of the uploaded image shown next to the text"`
	DirectoryID string `json:"directoryId" yaml:"directoryId" long:"directory" env:"DIRECTORY_ID" description:"Folder the document is stored in"`
	LanguageID  string `json:"languageId"  yaml:"languageId"  long:"language"  env:"LANGUAGE_ID"  description:"Language of the document"`
}

// SaveRequest is the body of the "save" call: the armored text plus its metadata
type SaveRequest struct {
	Payload     string `json:"payload"`
	InputImage  string `json:"inputImage"`
	DirectoryID string `json:"directoryId"`
	LanguageID  string `json:"languageId"`
}

// UploadRequest is the body of the "uploadDoc" call, which references an already generated file
type UploadRequest struct {
	DirectoryID string `json:"directoryId"`
	LanguageID  string `json:"languageId"`
	OutputFile  string `json:"outputFile"`
}

// Request is a JSON request body
type Request interface {
	JSON() ([]byte, error)
}

// NewSaveRequest encodes text with the default encoder and attaches the metadata.
func NewSaveRequest(text string, meta Metadata) *SaveRequest {
	return newSaveRequest(EncodeText(text), meta)
}

// NewSaveRequest decodes and encodes raw input according to the options and attaches the metadata.
func (o *Options) NewSaveRequest(data []byte, meta Metadata) (*SaveRequest, error) {
	encoded, err := o.Encode(data)
	if err != nil {
		return nil, err
	}
	return newSaveRequest(encoded, meta), nil
}

func newSaveRequest(encoded string, meta Metadata) *SaveRequest {
	return &SaveRequest{
		Payload:     encoded,
		InputImage:  meta.InputImage,
		DirectoryID: meta.DirectoryID,
		LanguageID:  meta.LanguageID,
	}
}

// NewUploadRequest references outputFile in the given folder / language.
func NewUploadRequest(outputFile string, meta Metadata) *UploadRequest {
	return &UploadRequest{
		DirectoryID: meta.DirectoryID,
		LanguageID:  meta.LanguageID,
		OutputFile:  outputFile,
	}
}

func (r *SaveRequest) JSON() ([]byte, error) {
	return marshal(r)
}

func (r *SaveRequest) String() string {
	return fmt.Sprintf("SaveRequest(directory=%v, language=%v, payload=%v chars)", r.DirectoryID, r.LanguageID, len(r.Payload))
}

func (r *UploadRequest) JSON() ([]byte, error) {
	return marshal(r)
}

func (r *UploadRequest) String() string {
	return spew.Sprintf("UploadRequest%+v", *r)
}

func marshal(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not marshal %v", v)
	}
	return data, nil
}
