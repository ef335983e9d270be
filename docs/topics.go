// Package docs embeds the documentation topics served by `pfd topic`.
//
// Every .md file in this directory is one topic, addressed by its base
// name. readme.md is the landing page: it lists the other topics, so it is
// not itself listed.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var pages embed.FS

// GetTopic returns the markdown content of one topic. The name "*" expands
// to every topic, concatenated in alphabetical order.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(all...)
	}
	content, err := pages.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics concatenates the requested topics in the order given.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// GetAllTopics returns the available topic names, sorted, readme excluded.
func GetAllTopics() ([]string, error) {
	matches, err := fs.Glob(pages, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, m := range matches {
		name := strings.TrimSuffix(m, ".md")
		if name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	sort.Strings(topics)
	return topics, nil
}
