// Package docs embeds the mgz user documentation as markdown topics.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var pages embed.FS

// Topic returns the markdown content of one documentation topic.
func Topic(name string) (string, error) {
	content, err := pages.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found, available topics: %s", name, strings.Join(Topics(), ", "))
	}
	return string(content), nil
}

// Topics lists the available topic names sorted alphabetically. The readme
// is served as the default topic and not listed.
func Topics() []string {
	entries, err := pages.ReadDir(".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
