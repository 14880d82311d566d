package extract

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// reserializeJSON parses and re-serializes JSON compactly, which both
// validates the document and strips formatting noise.
func reserializeJSON(data []byte) (string, error) {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return "", fmt.Errorf("parsing json: %w", err)
	}
	compact, err := json.Marshal(decoded)
	if err != nil {
		return "", fmt.Errorf("serializing json: %w", err)
	}
	return string(compact), nil
}

// reserializeYAML parses and re-serializes YAML in canonical form.
func reserializeYAML(data []byte) (string, error) {
	var decoded any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return "", fmt.Errorf("parsing yaml: %w", err)
	}
	out, err := yaml.Marshal(decoded)
	if err != nil {
		return "", fmt.Errorf("serializing yaml: %w", err)
	}
	return string(out), nil
}
