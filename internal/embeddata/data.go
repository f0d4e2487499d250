package embeddata

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed about.md tips.json demos/*.lin
var embeddedFS embed.FS

// FS returns the embedded filesystem with access to about.md, tips.json and
// the demo paths.
func FS() fs.FS {
	return embeddedFS
}

// ReadAboutMD returns the contents of about.md.
func ReadAboutMD() ([]byte, error) {
	return embeddedFS.ReadFile("about.md")
}

// ReadTips returns the contents of tips.json.
func ReadTips() ([]byte, error) {
	return embeddedFS.ReadFile("tips.json")
}

// Demo returns the encoded .lin file of a named demo path.
func Demo(name string) ([]byte, error) {
	b, err := embeddedFS.ReadFile(path.Join("demos", name+".lin"))
	if err != nil {
		return nil, fmt.Errorf("demo %q: %w", name, err)
	}
	return b, nil
}

// Demos lists the names of the embedded demo paths in lexical order.
func Demos() []string {
	entries, err := embeddedFS.ReadDir("demos")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".lin"))
	}
	return names
}
