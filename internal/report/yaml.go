package report

import "gopkg.in/yaml.v3"

// ToYAML marshals a Report with plain yaml.v3, no custom encoder. Used
// by the CLI's --format yaml flag.
func ToYAML(r Report) ([]byte, error) {
	return yaml.Marshal(r)
}
