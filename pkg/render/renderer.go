package render

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/vango-dev/minidom/pkg/dom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output, one node per line.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// IncludeIDs adds data-node="<id>" to every element and
	// data-on-<event> markers for registered listeners.
	IncludeIDs bool
}

// Renderer serializes dom nodes to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders n and its subtree to a string.
func (r *Renderer) RenderToString(n *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams n and its subtree to w.
func (r *Renderer) RenderToWriter(w io.Writer, n *dom.Node) error {
	return r.renderNode(w, n, 0)
}

// RenderChildren renders the children of n without n itself. It is used for
// the content of a container such as a document root.
func (r *Renderer) RenderChildren(w io.Writer, n *dom.Node) error {
	if n == nil {
		return nil
	}
	for _, c := range n.Children() {
		if err := r.renderNode(w, c, 0); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderNode(w io.Writer, n *dom.Node, depth int) error {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case dom.ElementNode:
		return r.renderElement(w, n, depth)
	case dom.TextNode:
		return r.renderText(w, n, depth)
	default:
		return fmt.Errorf("render: unknown node type %d", n.Type())
	}
}

func (r *Renderer) renderElement(w io.Writer, n *dom.Node, depth int) error {
	tag := n.Tag()
	r.writeIndent(w, depth)

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, n); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if isVoidElement(tag) {
		r.newline(w)
		return nil
	}

	children := n.Children()
	block := r.config.Pretty && len(children) > 0
	if block {
		r.newline(w)
	}
	for _, c := range children {
		if err := r.renderNode(w, c, depth+1); err != nil {
			return err
		}
	}
	if block {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	r.newline(w)
	return nil
}

func (r *Renderer) renderText(w io.Writer, n *dom.Node, depth int) error {
	r.writeIndent(w, depth)
	if _, err := io.WriteString(w, escapeHTML(n.Text())); err != nil {
		return err
	}
	r.newline(w)
	return nil
}

// renderAttributes writes attributes in sorted order, then live properties
// that have an HTML form, then the optional ID markers.
func (r *Renderer) renderAttributes(w io.Writer, n *dom.Node) error {
	names := n.AttrNames()
	for _, name := range names {
		value, _ := n.Attr(name)
		if isBooleanAttr(name) && (value == "true" || value == "") {
			if _, err := fmt.Fprintf(w, " %s", name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, name, escapeAttr(value)); err != nil {
			return err
		}
	}

	if v, ok := n.Property("value"); ok && !slices.Contains(names, "value") {
		if s := fmt.Sprint(v); s != "" {
			if _, err := fmt.Fprintf(w, ` value="%s"`, escapeAttr(s)); err != nil {
				return err
			}
		}
	}
	if v, ok := n.Property("checked"); ok && v == true {
		if _, err := io.WriteString(w, " checked"); err != nil {
			return err
		}
	}

	if !r.config.IncludeIDs {
		return nil
	}
	if _, err := fmt.Fprintf(w, ` data-node="%s"`, strconv.Itoa(n.ID())); err != nil {
		return err
	}
	for _, event := range n.Events() {
		if _, err := fmt.Fprintf(w, ` data-on-%s="true"`, event); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) writeIndent(w io.Writer, depth int) {
	if !r.config.Pretty {
		return
	}
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}

func (r *Renderer) newline(w io.Writer) {
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
}
