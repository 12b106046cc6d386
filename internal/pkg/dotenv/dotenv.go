// Package dotenv подгружает переменные окружения из .env файлов.
// Переменные, уже выставленные в окружении, не перезаписываются.
package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load разбирает флаги HTTP сервиса (-env-file, -port) и читает .env.
// -port важнее PORT из окружения и файла.
func Load(args []string) error {
	fs := flag.NewFlagSet("tracker", flag.ContinueOnError)
	envFile := fs.String("env-file", ".env", "dotenv file")
	port := fs.String("port", "", "server port (overrides PORT)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := LoadEnv(*envFile); err != nil {
		return fmt.Errorf("load %s: %w", *envFile, err)
	}

	if *port != "" {
		if err := os.Setenv("PORT", *port); err != nil {
			return fmt.Errorf("set PORT: %w", err)
		}
	}
	return nil
}

// LoadEnv только файлы, без флагов: воркер и trackerctl разбирают
// аргументы сами. Отсутствующие файлы пропускаются.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	existing := make([]string, 0, len(filenames))
	for _, name := range filenames {
		if _, err := os.Stat(name); err == nil {
			existing = append(existing, name)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}
