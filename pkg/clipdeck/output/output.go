// Package output encodes rendered decks for delivery.
package output

import (
	"encoding/base64"
	"encoding/json"
)

// PPTXMIMEType is the content type of a PPTX document.
const PPTXMIMEType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

const jsonContentType = "application/json; charset=UTF-8"

// Payload is an encoded response body.
type Payload struct {
	ContentType string
	// Filename is set when the body should be delivered as an attachment.
	Filename string
	Body     []byte
}

// Encoder turns a rendered deck or an error message into a response body.
type Encoder interface {
	Encode(pptx []byte) (*Payload, error)
	EncodeError(msg string) (*Payload, error)
}

// Envelope is the JSON body produced by Base64Envelope.
type Envelope struct {
	Filename   string `json:"filename"`
	MIMEType   string `json:"mimetype"`
	FileBase64 string `json:"file_base64"`
}

// Base64Envelope delivers the deck inside a JSON document.
type Base64Envelope struct {
	Filename string
	// ErrorKey is the JSON key of error messages.
	ErrorKey string
}

// NewBase64Envelope returns the envelope encoder of the staged route.
func NewBase64Envelope() Base64Envelope {
	return Base64Envelope{Filename: "relatorio.pptx", ErrorKey: "erro"}
}

func (b Base64Envelope) Encode(pptx []byte) (*Payload, error) {
	body, err := json.Marshal(Envelope{
		Filename:   b.Filename,
		MIMEType:   PPTXMIMEType,
		FileBase64: base64.StdEncoding.EncodeToString(pptx),
	})
	if err != nil {
		return nil, err
	}
	return &Payload{ContentType: jsonContentType, Body: body}, nil
}

func (b Base64Envelope) EncodeError(msg string) (*Payload, error) {
	return encodeError(b.ErrorKey, msg)
}

// DirectDownload delivers the raw deck as a file attachment.
type DirectDownload struct {
	Filename string
	ErrorKey string
}

// NewDirectDownload returns the attachment encoder of the in-memory route.
func NewDirectDownload() DirectDownload {
	return DirectDownload{Filename: "Clipping_Automatico_Design.pptx", ErrorKey: "error"}
}

func (d DirectDownload) Encode(pptx []byte) (*Payload, error) {
	return &Payload{ContentType: PPTXMIMEType, Filename: d.Filename, Body: pptx}, nil
}

func (d DirectDownload) EncodeError(msg string) (*Payload, error) {
	return encodeError(d.ErrorKey, msg)
}

func encodeError(key, msg string) (*Payload, error) {
	body, err := json.Marshal(map[string]string{key: msg})
	if err != nil {
		return nil, err
	}
	return &Payload{ContentType: jsonContentType, Body: body}, nil
}

// ToJSON serializes v to JSON.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
