package html_test

import (
	"testing"

	"bennypowers.dev/abbrls/internal/parser/html"
	"github.com/stretchr/testify/assert"
)

func TestAttributes(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		tagName string
		want    []html.Attribute
	}{
		{
			name:    "style type",
			source:  `<style type="text/scss">.a { b: c }</style>`,
			tagName: "style",
			want:    []html.Attribute{{Name: "type", Value: "text/scss"}},
		},
		{
			name:    "mixed quoting and boolean attribute",
			source:  `<input type='checkbox' checked value=on>`,
			tagName: "input",
			want: []html.Attribute{
				{Name: "type", Value: "checkbox"},
				{Name: "checked", Value: ""},
				{Name: "value", Value: "on"},
			},
		},
		{
			name:    "only the first matching tag is scanned",
			source:  `<div id="outer"><div id="inner"></div></div>`,
			tagName: "div",
			want:    []html.Attribute{{Name: "id", Value: "outer"}},
		},
		{
			name:    "skips tags with other names",
			source:  `<span a="1"><p b="2"></p></span>`,
			tagName: "p",
			want:    []html.Attribute{{Name: "b", Value: "2"}},
		},
		{
			name:    "tag name match is case-insensitive",
			source:  `<STYLE type="text/less"></STYLE>`,
			tagName: "style",
			want:    []html.Attribute{{Name: "type", Value: "text/less"}},
		},
		{
			name:    "empty tag name matches first tag",
			source:  `<a href="#top">`,
			tagName: "",
			want:    []html.Attribute{{Name: "href", Value: "#top"}},
		},
		{
			name:    "no attributes",
			source:  `<style>.a{}</style>`,
			tagName: "style",
			want:    nil,
		},
		{
			name:    "no such tag",
			source:  `<div class="a">`,
			tagName: "style",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, html.Attributes(tt.source, tt.tagName))
		})
	}
}

func TestAttributeMap(t *testing.T) {
	m := html.AttributeMap(`<a href="/x" title='t' download>`, "a")
	assert.Equal(t, map[string]string{
		"href":     "/x",
		"title":    "t",
		"download": "",
	}, m)

	assert.Empty(t, html.AttributeMap("", "a"))
}
