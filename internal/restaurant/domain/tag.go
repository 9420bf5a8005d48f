package domain

import "strings"

// DefaultTagColor is used when a tag arrives without a color.
const DefaultTagColor = "#6b7280"

// FavoriteTagName marks the restaurants offered by the "favorites" roulette pool.
const FavoriteTagName = "Favorito"

// Tag is a colored label. Color is display-only.
type Tag struct {
	ID    string
	Name  string
	Color string
}

// TagSet holds tags with unique names. Order carries no meaning.
type TagSet []Tag

// NewTagSet trims names, drops empty ones and keeps the first tag for each name.
func NewTagSet(tags []Tag) TagSet {
	if len(tags) == 0 {
		return nil
	}
	result := make([]Tag, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		name := strings.TrimSpace(tag.Name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		color := strings.TrimSpace(tag.Color)
		if color == "" {
			color = DefaultTagColor
		}
		result = append(result, Tag{ID: strings.TrimSpace(tag.ID), Name: name, Color: color})
	}
	return TagSet(result)
}

// Has reports whether a tag with exactly this name is present.
func (s TagSet) Has(name string) bool {
	for _, tag := range s {
		if tag.Name == name {
			return true
		}
	}
	return false
}

// Names returns tag names in stored order.
func (s TagSet) Names() []string {
	result := make([]string, 0, len(s))
	for _, tag := range s {
		result = append(result, tag.Name)
	}
	return result
}
