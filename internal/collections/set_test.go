package collections_test

import (
	"testing"

	"bennypowers.dev/abbrls/internal/collections"
	"github.com/stretchr/testify/assert"
)

func TestNewSet(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		s := collections.NewSet[string]()
		assert.NotNil(t, s)
		assert.Equal(t, 0, len(s))
	})

	t.Run("set with duplicate initial values", func(t *testing.T) {
		s := collections.NewSet("css", "scss", "css")
		assert.Equal(t, 2, len(s), "duplicates should be deduplicated")
		assert.True(t, s.Has("css"))
		assert.True(t, s.Has("scss"))
	})

	t.Run("zero value set is empty", func(t *testing.T) {
		var s collections.Set[string]
		assert.False(t, s.Has(""))
		assert.False(t, s.HasAny("a", "b"))
		assert.Empty(t, s.Members())
	})
}

func TestUnion(t *testing.T) {
	html := collections.NewSet("html", "vue")
	xml := collections.NewSet("xml", "xsl", "jsx")
	jsx := collections.NewSet("jsx", "tsx")

	u := collections.Union(html, xml, jsx)

	assert.Equal(t, []string{"html", "jsx", "tsx", "vue", "xml", "xsl"}, collections.Sorted(u))

	t.Run("does not alias its inputs", func(t *testing.T) {
		u.Add("pug")
		assert.False(t, html.Has("pug"))
		assert.False(t, xml.Has("pug"))
	})

	t.Run("no sets", func(t *testing.T) {
		assert.Empty(t, collections.Union[string]())
	})
}

func TestSetHasAny(t *testing.T) {
	s := collections.NewSet("css-inline", "html")

	assert.True(t, s.HasAny("stylesheet", "css", "css-inline"))
	assert.True(t, s.HasAny("html"))
	assert.False(t, s.HasAny("stylesheet", "css"))
	assert.False(t, s.HasAny())
}

func TestSetString(t *testing.T) {
	assert.Equal(t, "[]", collections.NewSet[string]().String())
	assert.Equal(t, "[a]", collections.NewSet("a").String())
}

func TestSorted(t *testing.T) {
	s := collections.NewSet(3, 1, 2)
	assert.Equal(t, []int{1, 2, 3}, collections.Sorted(s))
}
