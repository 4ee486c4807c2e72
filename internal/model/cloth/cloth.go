// Package cloth defines the catalog item entity and its tag filtering rules.
package cloth

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Cloth is one catalog item. ID and CreatedAt are assigned by the store and
// never change. TrendingScore is maintained outside this service.
type Cloth struct {
	ID            uuid.UUID `json:"id" db:"id"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	TrendingScore float64   `json:"trendingScore" db:"trending_score"`
	Data          Data      `json:"data" db:"data"`
}

// Data is the replaceable payload of a Cloth, stored as JSONB.
type Data struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"imageUrl"`
}

// Order names a column clothes can be listed by, newest or highest first.
type Order string

const (
	OrderNewest   Order = "created_at"
	OrderTrending Order = "trending_score"
)

// HasTag reports whether tag is one of the cloth's tags.
func (c Cloth) HasTag(tag string) bool {
	return slices.Contains(c.Data.Tags, tag)
}

// ParseTags splits a comma-separated tag list, trimming blanks and
// dropping empty entries.
func ParseTags(raw string) []string {
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// FilterByTags keeps the clothes carrying every one of tags.
//
// The result starts as the full list and is intersected with each tag's
// matches in turn, so input order is preserved. No tags returns the input.
func FilterByTags(clothes []Cloth, tags []string) []Cloth {
	result := clothes
	for _, tag := range tags {
		matches := make([]Cloth, 0, len(result))
		for _, c := range result {
			if c.HasTag(tag) {
				matches = append(matches, c)
			}
		}
		result = matches
	}
	return result
}
