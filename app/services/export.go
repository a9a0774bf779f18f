package services

import (
	"fmt"
	"html"
	"strings"
)

// BuildExcelHTML renders rows as an HTML table that Excel opens
// natively when served as an .xls attachment. Numbers keep their
// formatting because every cell is emitted as text.
func BuildExcelHTML(title string, headers []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(`<html xmlns:x="urn:schemas-microsoft-com:office:excel"><head><meta charset="UTF-8"></head><body>`)
	if title != "" {
		fmt.Fprintf(&b, "<h3>%s</h3>", html.EscapeString(title))
	}
	b.WriteString(`<table border="1"><thead><tr>`)
	for _, h := range headers {
		fmt.Fprintf(&b, "<th>%s</th>", html.EscapeString(h))
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(&b, "<td>%s</td>", html.EscapeString(cell))
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table></body></html>")
	return b.String()
}
