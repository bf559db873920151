package utils

import (
	"strings"
	"testing"
)

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text without markdown",
			input:    "This is plain text",
			expected: "This is plain text",
		},
		{
			name:     "bold text",
			input:    "This is **bold** text",
			expected: "This is bold text",
		},
		{
			name:     "italic text",
			input:    "This is *italic* text",
			expected: "This is italic text",
		},
		{
			name:     "escaped asterisk",
			input:    "This is a \\*literal asterisk\\* not emphasis",
			expected: "This is a *literal asterisk* not emphasis",
		},
		{
			name:     "escaped underscore",
			input:    "This is a \\_literal underscore\\_",
			expected: "This is a _literal underscore_",
		},
		{
			name:     "link",
			input:    "Visit [Google](https://google.com) for search",
			expected: "Visit Google for search",
		},
		{
			name:     "heading",
			input:    "# Main Title\n\nSome content",
			expected: "Main Title\n\nSome content",
		},
		{
			name:     "code inline",
			input:    "Use the `StripMarkdown` function",
			expected: "Use the StripMarkdown function",
		},
		{
			name:     "code block",
			input:    "```go\nfunc main() {}\n```",
			expected: "func main() {}",
		},
		{
			name:     "mixed formatting",
			input:    "This has **bold**, *italic*, and [a link](http://example.com)",
			expected: "This has bold, italic, and a link",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StripMarkdown(tt.input)
			if result != tt.expected {
				t.Errorf("StripMarkdown(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestStripMarkdownReport(t *testing.T) {
	input := "## 事件排行\n\n### 1) 擴產 **NEW**\n\n| 公司 | 熱度 |\n|---|---:|\n| 台積電 | 30 |\n"

	result := StripMarkdown(input)
	for _, want := range []string{"事件排行", "擴產 NEW", "台積電", "30"} {
		if !strings.Contains(result, want) {
			t.Errorf("StripMarkdown() = %q, missing %q", result, want)
		}
	}
	for _, unwanted := range []string{"**", "|", "---", "##"} {
		if strings.Contains(result, unwanted) {
			t.Errorf("StripMarkdown() = %q, still contains %q", result, unwanted)
		}
	}
}

func TestRenderHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "heading and emphasis",
			input: "## 今日摘要\n\n- 事件數：**3**\n",
			want:  []string{"<h2", "今日摘要</h2>", "<li>", "<strong>3</strong>"},
		},
		{
			name:  "table",
			input: "| 公司 | 熱度 |\n|---|---:|\n| 台積電 | 30 |\n",
			want:  []string{"<table>", "<th>公司</th>", "<td>台積電</td>"},
		},
		{
			name:  "link opens in new tab",
			input: "[新聞](https://example.com/1)",
			want:  []string{`href="https://example.com/1"`, `target="_blank"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderHTML(tt.input)
			for _, w := range tt.want {
				if !strings.Contains(result, w) {
					t.Errorf("RenderHTML(%q) = %q, missing %q", tt.input, result, w)
				}
			}
		})
	}
}

func BenchmarkStripMarkdown(b *testing.B) {
	input := `## 事件排行（EventRadarPlus）

### 1) 擴產 **NEW**
- 極性：正向
- 公司：台積電
- 代表新聞：
  1. [台積電擴產](https://example.com/1)（經濟日報｜2026-02-09 08:00）

| 公司 | 熱度 | 出現篇數 |
|---|---:|---:|
| 台積電 | 30 | 10 |`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		StripMarkdown(input)
	}
}
