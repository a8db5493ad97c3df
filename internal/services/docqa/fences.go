package docqa

import (
	"regexp"
	"sort"
	"strings"

	"docket/internal/domain"
)

// fence is a parsed fenced code block.
type fence struct {
	line   int // 1-based line of the opening fence
	info   string
	closed bool
	body   []string
}

// parseFences finds fenced code blocks following CommonMark's rules: an
// opening run of at least three backticks or tildes indented at most three
// spaces, closed by a run of the same character at least as long with
// nothing but whitespace after it.
func parseFences(lines []string) []fence {
	var (
		out     []fence
		current *fence
		char    byte
		length  int
	)
	for i, line := range lines {
		trimmed, ok := stripIndent(line)
		if !ok {
			if current != nil {
				current.body = append(current.body, line)
			}
			continue
		}
		if current == nil {
			c, n := fenceRun(trimmed)
			if n < 3 {
				continue
			}
			info := strings.TrimSpace(trimmed[n:])
			if c == '`' && strings.Contains(info, "`") {
				continue // inline code, not a fence
			}
			current = &fence{line: i + 1, info: info}
			char, length = c, n
			continue
		}
		c, n := fenceRun(trimmed)
		if c == char && n >= length && strings.TrimSpace(trimmed[n:]) == "" {
			current.closed = true
			out = append(out, *current)
			current = nil
			continue
		}
		current.body = append(current.body, line)
	}
	if current != nil {
		out = append(out, *current)
	}
	return out
}

// stripIndent removes up to three leading spaces; four or more means an
// indented code line which cannot open or close a fence.
func stripIndent(line string) (string, bool) {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	if n > 3 {
		return line, false
	}
	return line[n:], true
}

func fenceRun(s string) (byte, int) {
	if s == "" || (s[0] != '`' && s[0] != '~') {
		return 0, 0
	}
	c := s[0]
	n := 0
	for n < len(s) && s[n] == c {
		n++
	}
	return c, n
}

var (
	treeEntry = regexp.MustCompile(`(?:├──|└──|\|--|` + "`" + `--)\s*([^\s#]+)`)
	pathToken = regexp.MustCompile(`(?:^|[\s"'(=:])((?:[\w.-]+/)*[\w-]*\.(?:py|tex|go|js|ts|sh|md|json|ya?ml|toml|txt|env|cfg|ini|pdf|csv|sql))\b`)
	urlToken  = regexp.MustCompile(`[a-z]+://\S+`)
)

// fileReferences extracts the file and directory names a fence mentions.
func fileReferences(body []string) []string {
	seen := map[string]struct{}{}
	for _, line := range body {
		line = urlToken.ReplaceAllString(line, " ")
		for _, m := range treeEntry.FindAllStringSubmatch(line, -1) {
			seen[strings.TrimSuffix(m[1], "/")] = struct{}{}
		}
		for _, m := range pathToken.FindAllStringSubmatch(line, -1) {
			seen[strings.TrimPrefix(m[1], "./")] = struct{}{}
		}
	}
	delete(seen, "")
	out := make([]string, 0, len(seen))
	for ref := range seen {
		out = append(out, ref)
	}
	sort.Strings(out)
	return out
}

// tree indexes a repository's files and directories by relative path and base name.
type tree struct {
	paths map[string]struct{}
	bases map[string]struct{}
}

func newTree() *tree {
	return &tree{paths: map[string]struct{}{}, bases: map[string]struct{}{}}
}

func (t *tree) add(rel string) {
	t.paths[rel] = struct{}{}
	base := rel
	if i := strings.LastIndex(rel, "/"); i >= 0 {
		base = rel[i+1:]
	}
	t.bases[base] = struct{}{}
}

// has reports whether ref names something in the tree, either as a path
// relative to the root or, for bare names, anywhere by base name.
func (t *tree) has(ref string) bool {
	if _, ok := t.paths[ref]; ok {
		return true
	}
	if strings.Contains(ref, "/") {
		return false
	}
	_, ok := t.bases[ref]
	return ok
}

func resolveReferences(refs []string, t *tree) []domain.FileReference {
	out := make([]domain.FileReference, 0, len(refs))
	for _, ref := range refs {
		out = append(out, domain.FileReference{Name: ref, Present: t.has(ref)})
	}
	return out
}
