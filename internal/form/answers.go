package form

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadAnswers reads a YAML file mapping field names to content. A value is
// either a (possibly multi-line) string or a list of lines.
func LoadAnswers(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file %s: %w", path, err)
	}
	return ParseAnswers(data)
}

// ParseAnswers decodes answers from YAML bytes.
func ParseAnswers(data []byte) (map[string]string, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse answers: %w", err)
	}

	out := make(map[string]string, len(raw))
	for name, node := range raw {
		switch node.Kind {
		case yaml.ScalarNode:
			out[name] = strings.TrimSuffix(node.Value, "\n")
		case yaml.SequenceNode:
			var lines []string
			if err := node.Decode(&lines); err != nil {
				return nil, fmt.Errorf("answer %q: %w", name, err)
			}
			out[name] = strings.Join(lines, "\n")
		default:
			return nil, fmt.Errorf("answer %q: expected a string or a list of lines", name)
		}
	}
	return out, nil
}
