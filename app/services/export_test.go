package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildExcelHTML(t *testing.T) {
	out := BuildExcelHTML("Bảng lương", []string{"Tên", "Giờ"}, [][]string{
		{"Nguyễn Văn A", "9.5"},
	})

	assert.Contains(t, out, "<h3>Bảng lương</h3>")
	assert.Contains(t, out, "<th>Tên</th>")
	assert.Contains(t, out, "<td>Nguyễn Văn A</td>")
	assert.Contains(t, out, "<td>9.5</td>")
}

func TestBuildExcelHTMLEscapesCells(t *testing.T) {
	out := BuildExcelHTML("", []string{"Name"}, [][]string{
		{`<script>alert("x")</script>`},
	})

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}
