// Package assets embeds the bundled levels.
package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/haunt/shared/leveldata"
)

const LevelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// FS returns the embedded asset tree. Levels live under LevelsDir.
func FS() fs.FS {
	return assetFS
}

// LoadLevels parses every bundled level. Names are sorted, which is also
// the play order.
func LoadLevels() (map[string]*leveldata.Level, []string, error) {
	return leveldata.LoadAllLevels(assetFS, LevelsDir)
}

// MustLoadLevels is LoadLevels for callers that cannot run without levels.
func MustLoadLevels() (map[string]*leveldata.Level, []string) {
	levels, names, err := LoadLevels()
	if err != nil {
		panic(err)
	}
	return levels, names
}
