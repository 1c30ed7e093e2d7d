package view

import "testing"

func TestCleanMarkdown(t *testing.T) {
	in := "# 分析报告\n\n```markdown\n## 结论\n短期资金持续流入，建议关注。\n```\n"
	want := "分析报告\n\n结论\n短期资金持续流入，建议关注。"
	if got := CleanMarkdown(in); got != want {
		t.Errorf("CleanMarkdown = %q, want %q", got, want)
	}
}

func TestCleanMarkdownPassthrough(t *testing.T) {
	in := "纯文本，无标记。"
	if got := CleanMarkdown(in); got != in {
		t.Errorf("CleanMarkdown = %q, want unchanged", got)
	}
	if got := CleanMarkdown(""); got != "" {
		t.Errorf("CleanMarkdown(\"\") = %q, want \"\"", got)
	}
}

func TestExtractVerdict(t *testing.T) {
	t.Run("fenced malformed json is repaired", func(t *testing.T) {
		content := "## 结论\n\n```json\n{score: 8.2, action: 'buy', summary: \"主力净流入持续\",}\n```"
		v, ok := ExtractVerdict(content)
		if !ok {
			t.Fatal("ExtractVerdict ok = false, want true")
		}
		if v.Score == nil || *v.Score != 8.2 {
			t.Errorf("Score = %v, want 8.2", v.Score)
		}
		if v.Action != "buy" {
			t.Errorf("Action = %q, want buy", v.Action)
		}
		if v.Summary != "主力净流入持续" {
			t.Errorf("Summary = %q", v.Summary)
		}
	})

	t.Run("bare object without fence", func(t *testing.T) {
		content := "结论如下 {\"action\": \"hold\"} 以上。"
		v, ok := ExtractVerdict(content)
		if !ok {
			t.Fatal("ExtractVerdict ok = false, want true")
		}
		if v.Action != "hold" {
			t.Errorf("Action = %q, want hold", v.Action)
		}
	})

	t.Run("no verdict is not an error", func(t *testing.T) {
		if _, ok := ExtractVerdict("纯文字分析，没有结构化结论。"); ok {
			t.Error("ExtractVerdict ok = true, want false")
		}
		if _, ok := ExtractVerdict(""); ok {
			t.Error("ExtractVerdict(\"\") ok = true, want false")
		}
	})
}

func TestTruncateDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025-11-14T10:31:02", "2025-11-14"},
		{"2025-11-14 10:31:02", "2025-11-14"},
		{"2025-11-14", "2025-11-14"},
		{"2025", "2025"},
		{"", ""},
	}
	for _, c := range cases {
		if got := TruncateDate(c.in); got != c.want {
			t.Errorf("TruncateDate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		total, pageSize, want int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{23, 10, 3},
		{5, 0, 0},
		{-3, 10, 0},
	}
	for _, c := range cases {
		if got := PageCount(c.total, c.pageSize); got != c.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", c.total, c.pageSize, got, c.want)
		}
	}
}
