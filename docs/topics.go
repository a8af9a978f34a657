// Package docs holds the user documentation of tb, one markdown file per topic.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var files embed.FS

// Index is the topic listing every other topic.
const Index = "readme"

// Topic returns the markdown content of a topic. "*" returns every topic.
func Topic(name string) (string, error) {
	if name == "*" {
		names, err := Names()
		if err != nil {
			return "", err
		}
		return Topics(names...)
	}
	content, err := files.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics returns the content of several topics, one after the other.
func Topics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		content, err := Topic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Names returns the sorted names of all the topics but the index.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ".md")
		if !ok || e.IsDir() || name == Index {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}
