package render

import (
	"fmt"
	"io"

	"github.com/vango-dev/minidom/pkg/dom"
)

// PageData contains the data needed to render a complete HTML page.
type PageData struct {
	// Title is the page title.
	Title string

	// Body is the container whose children make up the page content. It is
	// rendered as <div id="root">.
	Body *dom.Node

	// Scripts are appended to the end of the body.
	Scripts []ScriptTag

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Inline string // inline script content, used when Src is empty
}

// RenderPage renders a complete HTML document to w.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n", escapeAttr(lang)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n", escapeHTML(page.Title)); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "<body>\n<div id=\"root\">"); err != nil {
		return err
	}
	if err := r.RenderChildren(w, page.Body); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "</div>\n"); err != nil {
		return err
	}

	for _, s := range page.Scripts {
		if err := renderScript(w, s); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}

func renderScript(w io.Writer, s ScriptTag) error {
	if s.Src != "" {
		_, err := fmt.Fprintf(w, "<script src=\"%s\"></script>\n", escapeAttr(s.Src))
		return err
	}
	_, err := fmt.Fprintf(w, "<script>\n%s\n</script>\n", s.Inline)
	return err
}
