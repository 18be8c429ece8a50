package request

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/cordova-labs/cordovagen/internal/errs"
)

// Load reads, validates and decodes the request file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.New(errs.Filesystem, "read request", err)
	}
	return Parse(data)
}

// Parse validates and decodes a request document.
func Parse(data []byte) (*File, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, errs.New(errs.InputValidation, "parse request", err)
	}
	if !result.Valid {
		msgs := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			msgs[i] = issue.String()
		}
		return nil, errs.Newf(errs.InputValidation, "validate request", "%s", strings.Join(msgs, "; "))
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errs.New(errs.InputValidation, "parse request", fmt.Errorf("decoding YAML: %w", err))
	}
	return &f, nil
}
