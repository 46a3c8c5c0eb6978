package confkit

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

const maxSearchDepth = 8

var dotenvOnce sync.Once

// LoadDotenvOnce reads a .env file into the process environment the first
// time it is called.
//
// ENV_FILE names an explicit file. Otherwise .env files are tried from the
// working directory upwards until the module root (go.mod or .git) is
// reached. Variables already set win unless DOTENV_OVERLOAD=1, and
// NO_DOTENV=1 disables loading entirely.
func LoadDotenvOnce() {
	dotenvOnce.Do(loadDotenv)
}

func loadDotenv() {
	if os.Getenv("NO_DOTENV") == "1" {
		return
	}

	load := godotenv.Load
	if os.Getenv("DOTENV_OVERLOAD") == "1" {
		load = godotenv.Overload
	}

	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		_ = load(envFile)
		return
	}

	wd, err := os.Getwd()
	if err != nil {
		_ = load(".env")
		return
	}
	walkUp(wd, func(dir string) bool {
		candidate := filepath.Join(dir, ".env")
		if fileExists(candidate) {
			_ = load(candidate)
		}
		return isModuleRoot(dir)
	})
}

// walkUp calls visit for dir and its parents until visit returns true or
// the filesystem root is reached.
func walkUp(dir string, visit func(string) bool) {
	for i := 0; i < maxSearchDepth; i++ {
		if visit(dir) {
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

func isModuleRoot(dir string) bool {
	return fileExists(filepath.Join(dir, "go.mod")) || fileExists(filepath.Join(dir, ".git"))
}

func fileExists(p string) bool {
	if p == "" {
		return false
	}
	_, err := os.Stat(p)
	return err == nil
}
