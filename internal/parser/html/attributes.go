package html

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	htmllexer "github.com/tdewolff/parse/v2/html"
)

// Attributes scans the first opening tag named tagName in tagSource and returns
// its attributes in source order. An empty tagName matches the first tag found.
// Values have their quotes removed.
func Attributes(tagSource, tagName string) []Attribute {
	l := htmllexer.NewLexer(parse.NewInputString(tagSource))

	var attrs []Attribute
	inTag := false
	for {
		tt, _ := l.Next()
		switch tt {
		case htmllexer.ErrorToken:
			return attrs
		case htmllexer.StartTagToken:
			if inTag {
				return attrs
			}
			inTag = tagName == "" || strings.EqualFold(string(l.Text()), tagName)
		case htmllexer.AttributeToken:
			if inTag {
				attrs = append(attrs, Attribute{
					Name:  string(l.Text()),
					Value: unquote(l.AttrVal()),
				})
			}
		case htmllexer.StartTagCloseToken, htmllexer.StartTagVoidToken:
			if inTag {
				return attrs
			}
		}
	}
}

// AttributeMap is Attributes as a name to value mapping. Later duplicates win.
func AttributeMap(tagSource, tagName string) map[string]string {
	attrs := Attributes(tagSource, tagName)
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Name] = a.Value
	}
	return m
}

func unquote(v []byte) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return string(v[1 : len(v)-1])
	}
	if len(v) == 1 && (v[0] == '"' || v[0] == '\'') {
		return ""
	}
	return string(v)
}
