package receipt

import (
	"fmt"
	"html"
	"strings"
)

// encodeHTML mirrors the ESC/POS structure in a fixed-width monospace
// document sized to the paper class. It is the fallback rendering path for
// a generic print dialog when no byte-stream printer channel exists.
func encodeHTML(lines []line, width PaperWidth) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	b.WriteString("@page { margin: 0; }\n")
	fmt.Fprintf(&b, "body { width: %s; margin: 0; padding: 2mm; font-family: \"Courier New\", monospace; font-size: %s; }\n", width, fontSize(width))
	b.WriteString("pre { margin: 0; white-space: pre; }\n")
	b.WriteString(".center { text-align: center; }\n")
	b.WriteString(".double { font-size: 1.4em; font-weight: bold; }\n")
	b.WriteString("</style>\n</head>\n<body>\n")

	for _, l := range lines {
		class := ""
		switch l.style {
		case styleCenter:
			class = "center"
		case styleCenterDouble:
			class = "center double"
		case styleDoubleLeft:
			class = "double"
		}
		if class != "" {
			fmt.Fprintf(&b, "<pre class=\"%s\">%s</pre>\n", class, html.EscapeString(l.text))
		} else {
			fmt.Fprintf(&b, "<pre>%s</pre>\n", html.EscapeString(l.text))
		}
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func fontSize(width PaperWidth) string {
	if width == Width80 {
		return "11px"
	}
	return "10px"
}
