// Package channels knows which channel IDs exist and what they are
// called on air.
package channels

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Directory maps channel IDs to their display names.
type Directory map[int]string

// Fallback when no channels file is configured.
var defaultDirectory = Directory{
	1: "AzTV",
	2: "İdman",
	3: "Mədəniyyət",
}

// Load reads the channel directory from a YAML file of the form
// "1: AzTV". An empty path returns the built-in directory.
func Load(path string) (Directory, error) {
	if path == "" {
		return defaultDirectory, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var dir Directory
	if err := yaml.Unmarshal(data, &dir); err != nil {
		return nil, err
	}
	if len(dir) == 0 {
		return nil, fmt.Errorf("channel directory %s is empty", path)
	}
	return dir, nil
}

// Name returns the display name for a channel, with a generic label for
// IDs missing from the directory.
func (d Directory) Name(id int) string {
	if name, ok := d[id]; ok {
		return name
	}
	return fmt.Sprintf("Kanal %d", id)
}
