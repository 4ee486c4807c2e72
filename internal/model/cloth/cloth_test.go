package cloth

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(clothes []Cloth) []string {
	out := make([]string, 0, len(clothes))
	for _, c := range clothes {
		out = append(out, c.Data.Name)
	}
	return out
}

func tagged(name string, tags ...string) Cloth {
	return Cloth{Data: Data{Name: name, Tags: tags}}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{raw: "", want: nil},
		{raw: "red", want: []string{"red"}},
		{raw: "red,blue", want: []string{"red", "blue"}},
		{raw: " red , ,blue,", want: []string{"red", "blue"}},
		{raw: ",,", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseTags(tt.raw)); diff != "" {
				t.Errorf("ParseTags(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestFilterByTags(t *testing.T) {
	clothes := []Cloth{
		tagged("shirt", "red", "cotton"),
		tagged("jeans", "blue"),
		tagged("hoodie", "red", "cotton", "winter"),
		tagged("plain"),
	}

	tests := []struct {
		name string
		tags []string
		want []string
	}{
		{name: "no tags keeps everything", tags: nil, want: []string{"shirt", "jeans", "hoodie", "plain"}},
		{name: "single tag", tags: []string{"cotton"}, want: []string{"shirt", "hoodie"}},
		{name: "every tag must match", tags: []string{"red", "winter"}, want: []string{"hoodie"}},
		{name: "order of tags is irrelevant", tags: []string{"winter", "red"}, want: []string{"hoodie"}},
		// Each tag narrows the running result, so the last tag alone
		// does not decide the outcome.
		{name: "disjoint tags match nothing", tags: []string{"red", "blue"}, want: []string{}},
		{name: "tags are case sensitive", tags: []string{"Red"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByTags(clothes, tt.tags)
			if diff := cmp.Diff(tt.want, names(got)); diff != "" {
				t.Errorf("FilterByTags(%v) mismatch (-want +got):\n%s", tt.tags, diff)
			}
		})
	}
}

func TestFilterByTagsLeavesInputIntact(t *testing.T) {
	clothes := []Cloth{tagged("a", "x"), tagged("b", "y")}

	FilterByTags(clothes, []string{"y"})

	assert.Equal(t, []string{"a", "b"}, names(clothes))
}

// The data column holds the JSON document as stored; pgx decodes jsonb
// through encoding/json, so the column keys must match the struct tags.
func TestDataDecodesStoredDocument(t *testing.T) {
	doc := `{
		"name": "Linen Shirt",
		"description": "Breathable",
		"price": 39.5,
		"tags": ["linen", "summer"],
		"imageUrl": "https://img.example.com/linen.jpg"
	}`

	var got Data
	require.NoError(t, json.Unmarshal([]byte(doc), &got))

	want := Data{
		Name:        "Linen Shirt",
		Description: "Breathable",
		Price:       39.5,
		Tags:        []string{"linen", "summer"},
		ImageURL:    "https://img.example.com/linen.jpg",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decoded data mismatch (-want +got):\n%s", diff)
	}
}

func TestPayloadData(t *testing.T) {
	price := 0.0
	p := Payload{
		Name:        "Sample",
		Description: "Free",
		Price:       &price,
		ImageURL:    "https://img.example.com/s.jpg",
	}

	data := p.Data()
	assert.Zero(t, data.Price)
	require.NotNil(t, data.Tags)
	assert.Empty(t, data.Tags)
}

func TestRequestValidation(t *testing.T) {
	price := 12.0
	valid := Payload{
		Name:        "Cap",
		Description: "Baseball cap",
		Price:       &price,
		Tags:        []string{"summer"},
		ImageURL:    "https://img.example.com/cap.jpg",
	}

	assert.NoError(t, (&CreateClothRequest{Payload: valid}).Validate())

	missingPrice := valid
	missingPrice.Price = nil
	assert.Error(t, (&CreateClothRequest{Payload: missingPrice}).Validate())

	blankTag := valid
	blankTag.Tags = []string{"summer", ""}
	assert.Error(t, (&CreateClothRequest{Payload: blankTag}).Validate())

	assert.Error(t, (&UpdateClothRequest{ID: "nope", Payload: valid}).Validate())

	list := &ListClothesRequest{Limit: "5", Tags: "a,b"}
	require.NoError(t, list.Validate())
	assert.Equal(t, 5, *list.LimitValue())
	assert.Equal(t, []string{"a", "b"}, list.TagList())

	assert.Nil(t, (&ListOrderedRequest{}).LimitValue())
	assert.Error(t, (&ListOrderedRequest{Limit: "-3"}).Validate())
}
