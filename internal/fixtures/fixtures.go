// Package fixtures loads golden parser/type-engine test cases stored as
// txtar archives: a PHP source section and the expected rendered output
// sections it should produce, bundled into one file per case so a diff
// against a failing run shows the whole case, not a few assertion lines.
package fixtures

import (
	"fmt"

	"golang.org/x/tools/txtar"
)

// Case is one golden fixture: a source file plus the named expected
// outputs recorded alongside it (e.g. "ast.json", "print.php").
type Case struct {
	Name    string
	Source  string
	Wants   map[string]string
	Comment string
}

// Load parses a txtar archive at path into a Case. The archive's own
// comment (everything before the first "-- file --" marker) becomes
// Case.Comment; the file named "source.php" becomes Case.Source; every
// other file becomes a Wants entry keyed by its archive name.
func Load(path string) (*Case, error) {
	arc, err := txtar.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("parsing fixture %s: %w", path, err)
	}
	c := &Case{Name: path, Wants: make(map[string]string), Comment: string(arc.Comment)}
	for _, f := range arc.Files {
		if f.Name == "source.php" {
			c.Source = string(f.Data)
			continue
		}
		c.Wants[f.Name] = string(f.Data)
	}
	if c.Source == "" {
		return nil, fmt.Errorf("fixture %s has no source.php section", path)
	}
	return c, nil
}

// Format serializes a Case back into txtar form: the source.php section
// first, then each expected-output section.
func Format(c *Case) []byte {
	arc := &txtar.Archive{Comment: []byte(c.Comment)}
	arc.Files = append(arc.Files, txtar.File{Name: "source.php", Data: []byte(c.Source)})
	for name, data := range c.Wants {
		arc.Files = append(arc.Files, txtar.File{Name: name, Data: []byte(data)})
	}
	return txtar.Format(arc)
}
