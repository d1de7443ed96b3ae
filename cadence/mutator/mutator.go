// Package mutator appends type-appropriate filler content
// to a file so the resulting diff reads like an incremental
// human edit. Plain formats get an appended snippet chosen
// by extension; structured line-oriented formats (JSON,
// YAML) are parsed and re-marshalled so a mutation can
// never corrupt them.
package mutator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/valyala/fasttemplate"
)

// tsLayout is the human-readable timestamp embedded in
// filler snippets.
const tsLayout = "2006-01-02 15:04:05"

// snippets maps extensions to fasttemplate bodies. {{TS}}
// expands to the timestamp and {{ID}} to the unix second,
// which keeps generated identifiers unique between edits.
var snippets = map[string]string{
	".md":  "\n## Notes\n\nRevised {{TS}}.\n",
	".txt": "\nupdated {{TS}}\n",
	".py": "\n\ndef touch_{{ID}}():\n" +
		"    \"\"\"Housekeeping pass at {{TS}}.\"\"\"\n" +
		"    return True\n",
	".sh": "\n# pass at {{TS}}\n" +
		"touch_{{ID}}() {\n    true\n}\n",
	".html": "\n<!-- revised {{TS}} -->\n",
	".xml":  "\n<!-- revised {{TS}} -->\n",
	".css": "\n/* revised {{TS}} */\n" +
		".note-{{ID}} {\n\tdisplay: block;\n}\n",
	".ini": "note_{{ID}} = {{TS}}\n",
	".cfg": "note_{{ID}} = {{TS}}\n",
}

// genericSnippet covers unrecognized extensions.
const genericSnippet = "\n# updated {{TS}}\n"

// Append mutates the file at path in place with filler
// content matching its extension, stamped with now. The
// file is created when absent.
func Append(path string, now time.Time) error {
	const errCtx = "mutating file"

	switch ext := strings.ToLower(
		filepath.Ext(path),
	); ext {
	case ".json":
		if err := insertJSONKey(path, now); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil

	case ".yml", ".yaml":
		if err := insertYAMLKey(path, now); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil

	default:
		tpl, ok := snippets[ext]
		if !ok {
			tpl = genericSnippet
		}

		if err := appendSnippet(
			path, tpl, now,
		); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil
	}
}

// appendSnippet expands tpl and appends it to the file,
// creating it when absent.
func appendSnippet(
	path string,
	tpl string,
	now time.Time,
) error {
	block := fasttemplate.ExecuteStringStd(
		tpl, "{{", "}}",
		map[string]any{
			"TS": now.Format(tsLayout),
			"ID": fmt.Sprintf("%d", now.Unix()),
		},
	)

	// A snippet that does not begin on a fresh line must
	// not merge into an unterminated final line.
	if block[0] != '\n' {
		terminated, err := endsWithNewline(path)
		if err != nil {
			return err
		}

		if !terminated {
			block = "\n" + block
		}
	}

	//nolint:gosec // repository content files
	fi, err := os.OpenFile(
		path,
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0o644,
	)
	if err != nil {
		return err
	}

	if _, err := fi.WriteString(block); err != nil {
		_ = fi.Close()

		return err
	}

	return fi.Close()
}

// endsWithNewline reports whether the file's last byte is
// a newline. Missing or empty files count as terminated.
func endsWithNewline(path string) (bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // repository content files
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return true, nil
		}

		return false, err
	}

	if len(data) == 0 {
		return true, nil
	}

	return data[len(data)-1] == '\n', nil
}

// insertJSONKey adds a "note_<unix>" key to a JSON object
// file. The file is decoded and re-encoded instead of
// text-appended: a blind append before the closing brace
// is the one mutation that would corrupt output.
func insertJSONKey(path string, now time.Time) error {
	obj, err := readObject(path, json.Unmarshal)
	if err != nil {
		return err
	}

	obj[noteKey(now)] = now.Format(tsLayout)

	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return err
	}

	data = append(data, '\n')

	//nolint:gosec // repository content files
	return os.WriteFile(path, data, 0o644)
}

// insertYAMLKey adds a "note_<unix>" key to a YAML mapping
// file, same guarded round-trip as insertJSONKey.
func insertYAMLKey(path string, now time.Time) error {
	obj, err := readObject(path, yaml.Unmarshal)
	if err != nil {
		return err
	}

	obj[noteKey(now)] = now.Format(tsLayout)

	data, err := yaml.Marshal(obj)
	if err != nil {
		return err
	}

	//nolint:gosec // repository content files
	return os.WriteFile(path, data, 0o644)
}

// readObject loads a top-level mapping from path using the
// given unmarshal function. A missing or empty file yields
// an empty mapping; malformed content is an error.
func readObject(
	path string,
	unmarshal func([]byte, any) error,
) (map[string]any, error) {
	data, err := os.ReadFile(path) //nolint:gosec // repository content files
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	obj := make(map[string]any)

	if len(strings.TrimSpace(string(data))) == 0 {
		return obj, nil
	}

	if err := unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf(
			"parse %s: %w", filepath.Base(path), err,
		)
	}

	return obj, nil
}

// noteKey derives the inserted key name from the mutation
// time.
func noteKey(now time.Time) string {
	return fmt.Sprintf("note_%d", now.Unix())
}
