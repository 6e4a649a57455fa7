package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed sql/*.sql
var FS embed.FS

// Migration is one embedded SQL file.
type Migration struct {
	Name string
	SQL  string
}

func readStatements(name string) (string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "--") {
			continue
		}
		out = append(out, s)
	}
	return strings.Join(out, "\n"), sc.Err()
}

// Migrations returns the embedded schema files in lexical order.
func Migrations() ([]Migration, error) {
	names, err := fs.Glob(FS, "sql/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	out := make([]Migration, 0, len(names))
	for _, name := range names {
		text, err := readStatements(name)
		if err != nil {
			return nil, err
		}
		out = append(out, Migration{Name: name, SQL: text})
	}
	return out, nil
}
