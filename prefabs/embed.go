package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// LoadScript reads a script, preferring prefabs/scripts on disk so edits are
// picked up by hot reload.
func LoadScript(name string) ([]byte, error) {
	clean := ScriptName(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

//go:embed scenes/*.yaml
var ScenesFS embed.FS

// Load reads a scene file, preferring prefabs/scenes on disk.
func Load(name string) ([]byte, error) {
	clean := SceneName(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return ScenesFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	clean := SceneName(name)
	info, err := os.Stat(diskPrefabPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// SceneName normalises a scene reference ("prefabs/scenes/a.yaml",
// "scenes/a.yaml" or "a.yaml") to its path inside ScenesFS.
func SceneName(path string) string {
	return withExt(cleanPrefabPath(path, "scenes"), ".yaml")
}

// ScriptName normalises a script reference to its path inside ScriptsFS.
func ScriptName(path string) string {
	return withExt(cleanPrefabPath(path, "scripts"), ".tengo")
}

func withExt(name, ext string) string {
	if name == "" || filepath.Ext(name) != "" {
		return name
	}
	return name + ext
}

func cleanPrefabPath(path, dir string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if _, after, ok := strings.Cut(s, "prefabs/"+dir+"/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, dir+"/"); ok {
		s = after
	}

	return fmt.Sprintf("%s/%s", dir, s)
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
