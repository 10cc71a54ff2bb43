package scene

import (
	"bytes"
	"fmt"
	"html"
	"strings"
)

const fontFamily = "DejaVu Sans, sans-serif"

// RenderSVG serializes a scene to SVG markup. Primitives are emitted in
// scene order, which Build arranges as circles, curves, labels, so labels
// always paint on top. The output is deterministic byte for byte for a
// given scene.
func RenderSVG(sc *Scene) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		fnum(sc.Width), fnum(sc.Height), fnum(sc.Width), fnum(sc.Height))

	for _, p := range sc.Primitives {
		switch p := p.(type) {
		case Circle:
			fmt.Fprintf(&buf, `  <circle cx="%s" cy="%s" r="%s" fill="%s" stroke="black"/>`+"\n",
				fnum(p.Center.X), fnum(p.Center.Y), fnum(p.Radius), html.EscapeString(p.Fill))
		case Curve:
			if p.Bent {
				fmt.Fprintf(&buf, `  <path d="M %s %s Q %s %s %s %s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
					fnum(p.Start.X), fnum(p.Start.Y),
					fnum(p.Control.X), fnum(p.Control.Y),
					fnum(p.End.X), fnum(p.End.Y),
					html.EscapeString(p.Color), fnum(p.Width))
			} else {
				fmt.Fprintf(&buf, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
					fnum(p.Start.X), fnum(p.Start.Y),
					fnum(p.End.X), fnum(p.End.Y),
					html.EscapeString(p.Color), fnum(p.Width))
			}
		case Label:
			fmt.Fprintf(&buf, `  <text x="%s" y="%s" font-size="%spx" font-family="%s" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
				fnum(p.Anchor.X), fnum(p.Anchor.Y), fnum(p.Size), fontFamily,
				html.EscapeString(p.Color), html.EscapeString(p.Text))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// fnum formats a coordinate with up to two decimals and no trailing zeros,
// so whole numbers render as "500" rather than "500.00".
func fnum(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
