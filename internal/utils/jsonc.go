package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/matthewmueller/jsonc"
)

// JsonC implements a koanf parser for JSON with comments.
type JsonC struct{}

func ConfigParser() *JsonC {
	return &JsonC{}
}

// Unmarshal parses the given JSONC bytes.
func (p *JsonC) Unmarshal(b []byte) (map[string]interface{}, error) {
	jsonBytes, err := jsonc.Standardize(b)
	if err != nil {
		return nil, err
	}

	var out map[string]interface{}
	if err := json.Unmarshal(jsonBytes, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Marshal drops comments, koanf only calls it when writing a config back.
func (p *JsonC) Marshal(o map[string]interface{}) ([]byte, error) {
	return json.MarshalIndent(o, "", "  ")
}

type JsonPatchOperation struct {
	Op    string      `json:"op"`
	From  string      `json:"from,omitempty"`
	Path  string      `json:"path"`
	Value interface{} `json:"value,omitempty"`
}

type JsonPatch []JsonPatchOperation

// PatchFile applies patch to fp while keeping its comments. A missing
// file is created from an empty object.
func PatchFile(fp string, patch JsonPatch) error {
	b, err := os.ReadFile(fp)
	if errors.Is(err, fs.ErrNotExist) {
		b = []byte("{}")
	} else if err != nil {
		return fmt.Errorf("reading file %s: %w", fp, err)
	}

	parsed, err := jsonc.Parse(b)
	if err != nil {
		return fmt.Errorf("parsing JSONC file %s: %w", fp, err)
	}

	patchBytes, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("marshaling JSON patch for file %s: %w", fp, err)
	}

	if err := parsed.Patch(patchBytes); err != nil {
		return fmt.Errorf("applying JSON patch to file %s: %w", fp, err)
	}

	parsed.Format()
	packed := parsed.Pack()

	if err := os.MkdirAll(filepath.Dir(fp), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", fp, err)
	}

	if err := os.WriteFile(fp, packed, 0o644); err != nil {
		return fmt.Errorf("writing patched JSONC file %s: %w", fp, err)
	}

	return nil
}

// SetKey sets the dotted key in fp to value, creating parent objects.
func SetKey(fp string, key string, value any) error {
	current := map[string]interface{}{}
	if b, err := os.ReadFile(fp); err == nil {
		if current, err = ConfigParser().Unmarshal(b); err != nil {
			return fmt.Errorf("parsing JSONC file %s: %w", fp, err)
		}
	}

	var patch JsonPatch
	var pointer string
	parts := strings.Split(key, ".")
	for i, part := range parts {
		pointer += "/" + escapePointer(part)
		if i == len(parts)-1 {
			patch = append(patch, JsonPatchOperation{Op: "add", Path: pointer, Value: value})
			break
		}

		next, ok := current[part].(map[string]interface{})
		if !ok {
			patch = append(patch, JsonPatchOperation{Op: "add", Path: pointer, Value: map[string]interface{}{}})
			next = map[string]interface{}{}
		}
		current = next
	}

	return PatchFile(fp, patch)
}

func escapePointer(s string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(s)
}
