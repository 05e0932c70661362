package encoder_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/golangee/lithe/dom"
	"github.com/golangee/lithe/dtd"
	"github.com/golangee/lithe/encoder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func el(name string, attrs dom.NamedNodeMap, children ...*dom.Element) *dom.Element {
	return &dom.Element{Name: name, Attributes: attrs, Children: children}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		doc  *dom.Document
		want string
	}{
		{
			name: "empty",
			doc:  dom.NewDocument(),
			want: "",
		},
		{
			name: "doctype only",
			doc:  &dom.Document{Type: dom.NewDocumentType(dtd.HTML, "5")},
			want: "<!DOCTYPE HTML>",
		},
		{
			name: "children without doctype",
			doc:  &dom.Document{Children: []*dom.Element{el("html", nil)}},
			want: "<html></html>",
		},
		{
			name: "nested",
			doc: &dom.Document{
				Type: dom.NewDocumentType(dtd.HTML, "5"),
				Children: []*dom.Element{
					el("html", dom.NamedNodeMap{{Name: "lang", Value: "en"}},
						el("head", nil,
							el("link", dom.NamedNodeMap{{Name: "rel", Value: "stylesheet"}, {Name: "href", Value: "style.css"}}),
						),
					),
				},
			},
			want: `<!DOCTYPE HTML><html lang="en"><head><link rel="stylesheet" href="style.css" /></head></html>`,
		},
		{
			name: "comments are invisible",
			doc: &dom.Document{Children: []*dom.Element{
				dom.NewComment(),
				el("body", nil, dom.NewComment(), el("p", nil)),
			}},
			want: "<body><p></p></body>",
		},
		{
			name: "only a comment",
			doc:  &dom.Document{Children: []*dom.Element{dom.NewComment()}},
			want: "",
		},
		{
			name: "void ignores children",
			doc:  &dom.Document{Children: []*dom.Element{el("br", nil, el("span", nil))}},
			want: "<br />",
		},
		{
			name: "duplicates and empty values",
			doc:  &dom.Document{Children: []*dom.Element{el("input", dom.NamedNodeMap{{Name: "class", Value: "a"}, {Name: "class", Value: "b"}, {Name: "disabled", Value: ""}})}},
			want: `<input class="a" class="b" disabled="" />`,
		},
		{
			name: "quotes in values",
			doc:  &dom.Document{Children: []*dom.Element{el("div", dom.NamedNodeMap{{Name: "title", Value: `say "hi" & go`}})}},
			want: `<div title="say &quot;hi&quot; & go"></div>`,
		},
		{
			name: "values are verbatim",
			doc:  &dom.Document{Children: []*dom.Element{el("a", dom.NamedNodeMap{{Name: "href", Value: "/q?a=1&b=<2>"}, {Name: "title", Value: "it's"}})}},
			want: `<a href="/q?a=1&b=<2>" title="it's"></a>`,
		},
		{
			name: "xml doctype",
			doc:  &dom.Document{Type: dom.NewDocumentType(dtd.XML, "xml"), Children: []*dom.Element{el("html", nil)}},
			want: "<html></html>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encoder.Render(tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderNil(t *testing.T) {
	_, err := encoder.Render(nil)
	assert.Error(t, err)
}

func TestDoctypeTag(t *testing.T) {
	tests := []struct {
		dialect dtd.Dialect
		name    string
		want    string
	}{
		{dtd.HTML, "5", `<!DOCTYPE HTML>`},
		{dtd.HTML, "html", `<!DOCTYPE HTML>`},
		{dtd.HTML, "strict", `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`},
		{dtd.HTML, "frameset", `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Frameset//EN" "http://www.w3.org/TR/html4/frameset.dtd">`},
		{dtd.HTML, "transitional", `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/html4/loose.dtd">`},
		{dtd.XHTML, "5", `<!DOCTYPE html PUBLIC "" "">`},
		{dtd.XHTML, "html", `<!DOCTYPE html PUBLIC "" "">`},
		{dtd.XHTML, "strict", `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">`},
		{dtd.XHTML, "1.1", `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.1//EN" "http://www.w3.org/TR/xhtml11/DTD/xhtml11.dtd">`},
		{dtd.XHTML, "mobile", `<!DOCTYPE html PUBLIC "-//WAPFORUM//DTD XHTML Mobile 1.2//EN" "http://www.openmobilealliance.org/tech/DTD/xhtml-mobile12.dtd">`},
		{dtd.XML, "xml", ``},
		{"unknown", "strict", ``},
	}

	for _, tt := range tests {
		t.Run(string(tt.dialect)+"/"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encoder.DoctypeTag(dom.NewDocumentType(tt.dialect, tt.name)))
		})
	}

	assert.Equal(t, "", encoder.DoctypeTag(nil))
}

func TestIsVoid(t *testing.T) {
	for _, name := range []string{"area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "source", "track", "wbr"} {
		assert.True(t, encoder.IsVoid(name), name)
	}

	for _, name := range []string{"", "html", "head", "body", "div", "LINK", "param", "custom-tag"} {
		assert.False(t, encoder.IsVoid(name), name)
	}
}

// The output must be understood by a real html parser with the same structure.
func TestRenderIsWellFormed(t *testing.T) {
	doc := &dom.Document{
		Type: dom.NewDocumentType(dtd.HTML, "5"),
		Children: []*dom.Element{
			el("html", dom.NamedNodeMap{{Name: "lang", Value: "en"}},
				el("head", nil, el("link", dom.NamedNodeMap{{Name: "rel", Value: "stylesheet"}, {Name: "href", Value: "style.css"}})),
				el("body", nil, el("div", dom.NamedNodeMap{{Name: "id", Value: "main"}}, el("br", nil))),
			),
		},
	}

	out, err := encoder.Render(doc)
	require.NoError(t, err)

	root, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)

	require.NotNil(t, root.FirstChild)
	assert.Equal(t, html.DoctypeNode, root.FirstChild.Type)

	var names []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			names = append(names, n.Data)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	assert.Equal(t, []string{"html", "head", "link", "body", "div", "br"}, names)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEncodeWriteError(t *testing.T) {
	doc := &dom.Document{Children: []*dom.Element{el("html", nil)}}
	err := encoder.NewHTMLEncoder(failingWriter{}).Encode(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
