package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tinytelemetry/courtside/internal/model"

	"gopkg.in/yaml.v3"
)

// Skin is a named palette loaded from skins/<name>.yml under the config dir.
//
//	name: midnight
//	colors:
//	  navy: "#000022"
//	  green: "#00FF88"
type Skin struct {
	Name   string  `yaml:"name"`
	Colors Palette `yaml:"colors"`
}

// LoadSkin reads a skin file. Colors it leaves empty keep their defaults.
func LoadSkin(path string) (Skin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Skin{}, fmt.Errorf("reading skin: %w", err)
	}
	var s Skin
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Skin{}, fmt.Errorf("parsing skin %s: %w", path, err)
	}
	s.Colors = mergePalette(defaultPalette, s.Colors)
	return s, nil
}

// InitializeSkin applies the named skin to the package styles. The default
// skin needs no file. On error the default palette stays in effect.
func InitializeSkin(name, configDir string) error {
	applyPalette(defaultPalette)
	if name == "" || name == model.DefaultSkin {
		return nil
	}
	s, err := LoadSkin(filepath.Join(configDir, "skins", name+".yml"))
	if err != nil {
		return err
	}
	applyPalette(s.Colors)
	return nil
}

func mergePalette(base, over Palette) Palette {
	pick := func(b, o string) string {
		if o != "" {
			return o
		}
		return b
	}
	return Palette{
		Navy:   pick(base.Navy, over.Navy),
		Blue:   pick(base.Blue, over.Blue),
		Gray:   pick(base.Gray, over.Gray),
		White:  pick(base.White, over.White),
		Green:  pick(base.Green, over.Green),
		Red:    pick(base.Red, over.Red),
		Orange: pick(base.Orange, over.Orange),
	}
}
