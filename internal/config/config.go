package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type FileConfig struct {
	GeminiKey string `json:"gemini_key,omitempty"`
	Model     string `json:"model,omitempty"`
	Style     string `json:"style,omitempty"`
}

func defaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gemmit.json")
}

func Load(path string) (FileConfig, error) {
	var cfg FileConfig
	if path == "" {
		path = defaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func Save(cfg FileConfig, path string) error {
	if path == "" {
		path = defaultPath()
	}

	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0600)
}

// LoadDotenv loads variables from a .env file in the working directory
// into the environment. A missing file is not an error.
func LoadDotenv() {
	_ = godotenv.Load()
}

func ResolveString(flagVal, envVal, fileVal, defVal string) string {
	if flagVal != "" {
		return flagVal
	}
	if envVal != "" {
		return envVal
	}
	if fileVal != "" {
		return fileVal
	}
	return defVal
}
