package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "joins wrapped sentence",
			in:   "This agreement is made between\nthe parties named below.",
			want: "This agreement is made between the parties named below.",
		},
		{
			name: "terminator ends logical line",
			in:   "The term is one year.\nRenewal is automatic",
			want: "The term is one year.\nRenewal is automatic",
		},
		{
			name: "question and exclamation marks",
			in:   "Is it binding?\nYes!\nAlways",
			want: "Is it binding?\nYes!\nAlways",
		},
		{
			name: "full-width terminators",
			in:   "甲方同意。\n乙方确认？\n双方签字！\n完毕",
			want: "甲方同意。\n乙方确认？\n双方签字！\n完毕",
		},
		{
			name: "list markers start new lines",
			in:   "Obligations include\n- delivery\n* payment\n• notice",
			want: "Obligations include\n- delivery\n* payment\n• notice",
		},
		{
			name: "numbered markers",
			in:   "Steps\n1. sign\n2. pay\n3. deliver",
			want: "Steps\n1. sign\n2. pay\n3. deliver",
		},
		{
			name: "only the first three numbers are markers",
			in:   "3. deliver\n4. archive",
			want: "3. deliver 4. archive",
		},
		{
			name: "ordinal markers",
			in:   "合同条款\n一、总则\n二、价款\n三、违约",
			want: "合同条款\n一、总则\n二、价款\n三、违约",
		},
		{
			name: "blank runs collapse",
			in:   "First.\n\n\n  \t\n\nSecond.",
			want: "First.\n\nSecond.",
		},
		{
			name: "blank line flushes unterminated line",
			in:   "Heading without period\n\nBody text",
			want: "Heading without period\n\nBody text",
		},
		{
			name: "lines are trimmed",
			in:   "   indented start\n\t  continues here   ",
			want: "indented start continues here",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestCleanText_UnicodeBlankLines(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"First.\n\u00a0\n\nSecond.", "First.\n\nSecond."},
		{"第一条。\n\u3000\u3000\n\n第二条。", "第一条。\n\n第二条。"},
		{"a.\n\u2003\n\u202f\nb.", "a.\n\nb."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanText(tt.in), "input %q", tt.in)
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	inputs := []string{
		"a\nb\n\n\nc.\nd",
		"\n\nleading blanks\nthen text.\n",
		"Title\n\n\n- x\n- y\nwrapped\nline.\n\n",
		"一、总则\n本合同\n适用于双方。\n\n  \n二、价款",
		"   \n \n",
		"First.\n\u00a0\n\nSecond.",
		"一、总则\n\u3000\n\n\u3000\u3000\n二、价款",
		"a.\n\u2003\t\u00a0\n\u202f\nb.",
	}

	for _, in := range inputs {
		once := CleanText(in)
		assert.Equal(t, once, CleanText(once), "input %q", in)
	}
}
