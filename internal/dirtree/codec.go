package dirtree

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"snapassert/internal/snaperr"
)

var (
	startRe = regexp.MustCompile(`^>>> (.+) >>>$`)
	endRe   = regexp.MustCompile(`^<<< (.+) <<<$`)
)

// StartMarker returns the line opening the section of rel.
func StartMarker(rel string) string { return ">>> " + rel + " >>>" }

// EndMarker returns the line closing the section of rel.
func EndMarker(rel string) string { return "<<< " + rel + " <<<" }

// Serialize streams the snapshot body for root into w.
func Serialize(w io.Writer, root string) error {
	entries, err := Walk(root)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for i, e := range entries {
		if i > 0 {
			bw.WriteString("\n\n")
		}
		bw.WriteString(StartMarker(e.Rel))
		bw.WriteString("\n")
		if err := copyFile(bw, e.Abs); err != nil {
			return err
		}
		bw.WriteString("\n")
		bw.WriteString(EndMarker(e.Rel))
	}
	return bw.Flush()
}

// SerializeString returns the snapshot body for root.
func SerializeString(root string) (string, error) {
	var sb strings.Builder
	if err := Serialize(&sb, root); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ListFiles returns the relative paths stored in a snapshot file, sorted
// case-insensitively.
func ListFiles(snapshotPath string) ([]string, error) {
	paths := []string{}
	err := scanFile(snapshotPath, func(line string) bool {
		if m := startRe.FindStringSubmatch(line); m != nil {
			paths = append(paths, m[1])
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	SortFold(paths)
	return paths, nil
}

// ExtractFile returns the stored lines of rel, without line terminators.
// Reading stops at the first end marker for rel.
func ExtractFile(snapshotPath, rel string) ([]string, error) {
	lines := []string{}
	buffering := false
	err := scanFile(snapshotPath, func(line string) bool {
		if !buffering {
			buffering = matches(startRe, line) == rel
			return true
		}
		if matches(endRe, line) == rel {
			return false
		}
		lines = append(lines, line)
		return true
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// ReadLines reads a live file with the same newline rule used for stored
// content: split on "\n", drop a trailing "\r", always keep the final segment.
func ReadLines(path string) ([]string, error) {
	lines := []string{}
	err := scanFile(path, func(line string) bool {
		lines = append(lines, line)
		return true
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func matches(re *regexp.Regexp, line string) string {
	if m := re.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

// scanFile calls fn for each line of path until fn returns false.
func scanFile(path string, fn func(line string) bool) error {
	f, err := os.Open(path)
	if err != nil {
		return snaperr.IO("open", path, err)
	}

	if err := eachLine(f, fn); err != nil {
		f.Close()
		return snaperr.IO("read", path, err)
	}
	return snaperr.IO("close", path, f.Close())
}

func eachLine(r io.Reader, fn func(line string) bool) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		last := err == io.EOF

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if !fn(line) || last {
			return nil
		}
	}
}

func copyFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return snaperr.IO("open", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return snaperr.IO("read", path, err)
	}
	return nil
}
