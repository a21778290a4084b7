package adapter

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	m "stylefit.dev/pkg/stylefit/internal/model"
)

// Settings understood by TextFormatter.
const (
	SettingIndentStyle            = "indent_style"
	SettingIndentWidth            = "indent_width"
	SettingTrimTrailingWhitespace = "trim_trailing_whitespace"
	SettingMaxBlankLines          = "max_blank_lines"
	SettingSpaceAfterKeyword      = "space_after_keyword"
	SettingSpaceAfterComment      = "space_after_comment"
	SettingSpaceBeforeBrace       = "space_before_brace"
	SettingInsertFinalNewline     = "insert_final_newline"
)

const (
	maxIndentWidth = 16
	maxBlankLimit  = 10
)

var keywordParen = regexp.MustCompile(`\b(if|for|while|switch|catch)[ \t]*\(`)

// textStyle is the parsed form of a configuration.
type textStyle struct {
	indent             string
	trimTrailing       bool
	maxBlankLines      int
	spaceAfterKeyword  bool
	spaceAfterComment  bool
	spaceBeforeBrace   bool
	insertFinalNewline bool
}

func defaultTextStyle() textStyle {
	return textStyle{
		indent:             "    ",
		trimTrailing:       true,
		maxBlankLines:      1,
		spaceAfterKeyword:  true,
		spaceAfterComment:  true,
		spaceBeforeBrace:   true,
		insertFinalNewline: true,
	}
}

// TextFormatter is a small reference formatter for brace-delimited languages.
// It re-indents lines by bracket depth and normalizes a handful of spacing
// rules. Texts with unbalanced brackets are rejected. Unset settings take
// their defaults; unknown settings are ignored.
//
// TextFormatter holds no state and is safe for concurrent use.
type TextFormatter struct{}

// NewTextFormatter constructs a TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format implements Formatter.
func (f *TextFormatter) Format(ctx context.Context, cfg m.Configuration, text string) (m.FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return m.FormatResult{}, err
	}

	style, err := parseTextStyle(cfg)
	if err != nil {
		return m.Rejected(err.Error()), nil
	}

	if text == "" {
		return m.Formatted(""), nil
	}

	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	hadFinalNewline := strings.HasSuffix(normalized, "\n")
	lines := strings.Split(strings.TrimSuffix(normalized, "\n"), "\n")

	out := make([]string, 0, len(lines))
	depth := 0
	blankRun := 0

	for i, line := range lines {
		content := strings.TrimLeft(line, " \t")
		body := strings.TrimRight(content, " \t")

		if body == "" {
			blankRun++
			if blankRun <= style.maxBlankLines {
				out = append(out, "")
			}

			continue
		}

		blankRun = 0

		code, comment := splitLineComment(body)
		next, leading, ok := trackBrackets(code, depth)

		if !ok {
			return m.Rejected(fmt.Sprintf("unbalanced brackets at line %d", i+1)), nil
		}

		lineDepth := depth - leading
		depth = next

		rendered := strings.Repeat(style.indent, lineDepth) + style.rewriteCode(code) + style.rewriteComment(comment)
		if !style.trimTrailing {
			rendered += content[len(body):]
		}

		out = append(out, rendered)
	}

	if depth != 0 {
		return m.Rejected(fmt.Sprintf("%d unclosed brackets at end of text", depth)), nil
	}

	result := strings.Join(out, "\n")
	if style.insertFinalNewline || hadFinalNewline {
		result += "\n"
	}

	return m.Formatted(result), nil
}

func parseTextStyle(cfg m.Configuration) (textStyle, error) {
	style := defaultTextStyle()
	width := 4
	useTabs := false

	for _, setting := range cfg.Keys() {
		value := cfg[setting]

		var err error

		switch setting {
		case SettingIndentStyle:
			switch value {
			case "space":
				useTabs = false
			case "tab":
				useTabs = true
			default:
				err = fmt.Errorf("invalid %s %q", setting, value)
			}
		case SettingIndentWidth:
			width, err = parseBounded(setting, value, 1, maxIndentWidth)
		case SettingMaxBlankLines:
			style.maxBlankLines, err = parseBounded(setting, value, 0, maxBlankLimit)
		case SettingTrimTrailingWhitespace:
			style.trimTrailing, err = parseFlag(setting, value)
		case SettingSpaceAfterKeyword:
			style.spaceAfterKeyword, err = parseFlag(setting, value)
		case SettingSpaceAfterComment:
			style.spaceAfterComment, err = parseFlag(setting, value)
		case SettingSpaceBeforeBrace:
			style.spaceBeforeBrace, err = parseFlag(setting, value)
		case SettingInsertFinalNewline:
			style.insertFinalNewline, err = parseFlag(setting, value)
		}

		if err != nil {
			return textStyle{}, err
		}
	}

	if useTabs {
		style.indent = "\t"
	} else {
		style.indent = strings.Repeat(" ", width)
	}

	return style, nil
}

func parseBounded(setting, value string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < lo || n > hi {
		return 0, fmt.Errorf("invalid %s %q", setting, value)
	}

	return n, nil
}

func parseFlag(setting, value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("invalid %s %q", setting, value)
	}
}

// rewriteCode applies keyword and brace spacing to the parts of code that are
// outside string literals.
func (s textStyle) rewriteCode(code string) string {
	if code == "" {
		return ""
	}

	keywordRepl := "${1}("
	if s.spaceAfterKeyword {
		keywordRepl = "${1} ("
	}

	var b strings.Builder

	for _, seg := range splitLiterals(code) {
		if seg.literal {
			b.WriteString(seg.text)
			continue
		}

		b.WriteString(keywordParen.ReplaceAllString(seg.text, keywordRepl))
	}

	out := b.String()

	if strings.HasSuffix(out, "{") && len(strings.TrimRight(out, "{ \t")) > 0 {
		head := strings.TrimRight(strings.TrimSuffix(out, "{"), " \t")
		if s.spaceBeforeBrace {
			return head + " {"
		}

		return head + "{"
	}

	return out
}

func (s textStyle) rewriteComment(comment string) string {
	if comment == "" {
		return ""
	}

	text := strings.TrimLeft(strings.TrimPrefix(comment, "//"), " ")
	if text == "" {
		return "//"
	}

	if s.spaceAfterComment {
		return "// " + text
	}

	return "//" + text
}

type segment struct {
	text    string
	literal bool
}

// splitLiterals cuts a line into code and quoted literal segments. Literals
// end at their closing quote or at the end of the line.
func splitLiterals(code string) []segment {
	var segments []segment

	start := 0
	i := 0

	for i < len(code) {
		quote := code[i]
		if quote != '"' && quote != '\'' && quote != '`' {
			i++
			continue
		}

		if i > start {
			segments = append(segments, segment{text: code[start:i]})
		}

		end := closingQuote(code, i)
		segments = append(segments, segment{text: code[i:end], literal: true})
		start = end
		i = end
	}

	if start < len(code) {
		segments = append(segments, segment{text: code[start:]})
	}

	return segments
}

// closingQuote returns the index just past the literal opening at i.
func closingQuote(code string, i int) int {
	quote := code[i]

	for j := i + 1; j < len(code); j++ {
		switch code[j] {
		case '\\':
			if quote != '`' {
				j++
			}
		case quote:
			return j + 1
		}
	}

	return len(code)
}

// splitLineComment separates a trailing // comment from the code before it.
func splitLineComment(line string) (string, string) {
	offset := 0

	for _, seg := range splitLiterals(line) {
		if !seg.literal {
			if idx := strings.Index(seg.text, "//"); idx >= 0 {
				cut := offset + idx
				return line[:cut], line[cut:]
			}
		}

		offset += len(seg.text)
	}

	return line, ""
}

// trackBrackets follows the bracket depth across code, skipping literals.
// It returns the depth after the line, the number of closers that start the
// line and false once the depth drops below zero.
func trackBrackets(code string, depth int) (int, int, bool) {
	leading := 0
	atStart := true

	for _, seg := range splitLiterals(code) {
		if seg.literal {
			atStart = false
			continue
		}

		for _, r := range seg.text {
			switch r {
			case '{', '(', '[':
				depth++
				atStart = false
			case '}', ')', ']':
				depth--
				if depth < 0 {
					return depth, leading, false
				}

				if atStart {
					leading++
				}
			default:
				atStart = false
			}
		}
	}

	return depth, leading, true
}
