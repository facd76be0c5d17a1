package exception

import (
	"encoding/json"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// Report is a serializable description of an error.
type Report struct {
	Fingerprint string   `json:"fingerprint" yaml:"fingerprint"`
	Type        string   `json:"type" yaml:"type"`
	Message     string   `json:"message" yaml:"message"`
	Data        *Data    `json:"data" yaml:"data"`
	Inner       []Inner  `json:"inner" yaml:"inner"`
	Stack       []string `json:"stack,omitempty" yaml:"stack,omitempty"`
}

// Describe builds a Report for err. Stack lines include file and line.
func Describe(err error, opts ...StackOption) Report {
	r := Report{
		Fingerprint: Fingerprint(err),
		Type:        TypeName(err),
		Message:     Message(err),
		Data:        bagOf(err).Compact(),
		Inner:       InnerErrors(err),
	}
	if trace := StackTrace(err, append([]StackOption{IncludeSource()}, opts...)...); trace != "" {
		for line := range strings.SplitSeq(trace, "\n") {
			r.Stack = append(r.Stack, strings.TrimSpace(line))
		}
	}
	return r
}

// JSON encodes the report as indented JSON.
func (r Report) JSON() ([]byte, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, errors.Join(ErrEncoding, err)
	}
	return b, nil
}

// YAML encodes the report as a YAML document.
func (r Report) YAML() ([]byte, error) {
	b, err := yaml.Marshal(r)
	if err != nil {
		return nil, errors.Join(ErrEncoding, err)
	}
	return b, nil
}
