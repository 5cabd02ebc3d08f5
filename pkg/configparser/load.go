package configparser

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrNoFilePath = errors.New("no file path provided")

// LoadYamlFile reads a YAML file and loads its leaves into the environment.
// Nested keys are joined with "_" and upper-cased: server.port -> SERVER_PORT.
// Variables that are already set are left untouched.
func LoadYamlFile(filepath string) error {
	if filepath == "" {
		return ErrNoFilePath
	}

	raw, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("could not open YAML file: %w", err)
	}

	var tree map[string]any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return fmt.Errorf("error reading YAML file: %w", err)
	}

	vars := make(map[string]string)
	flatten(nil, tree, vars)

	for key, value := range vars {
		if os.Getenv(key) != "" {
			continue
		}
		if err := os.Setenv(key, expand(value)); err != nil {
			return fmt.Errorf("could not set env var %s: %w", key, err)
		}
	}

	return nil
}

// LoadAndParseYaml loads the YAML file (if any) into the environment and binds
// the environment onto dst using its env/default struct tags.
func LoadAndParseYaml(filepath string, dst any) error {
	if err := LoadYamlFile(filepath); err != nil && !errors.Is(err, ErrNoFilePath) && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return ParseEnv(dst)
}

func flatten(prefix []string, node map[string]any, out map[string]string) {
	for key, value := range node {
		path := append(append([]string{}, prefix...), key)
		switch v := value.(type) {
		case map[string]any:
			flatten(path, v, out)
		case nil:
			// "key:" with no value does not describe a variable
		default:
			out[strings.ToUpper(strings.Join(path, "_"))] = fmt.Sprint(v)
		}
	}
}

// expand handles the ${VAR:-default} substitution syntax.
func expand(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") || !strings.Contains(value, ":-") {
		return value
	}

	inner := value[2 : len(value)-1]
	name, def, _ := strings.Cut(inner, ":-")
	if env := os.Getenv(strings.TrimSpace(name)); env != "" {
		return env
	}
	return strings.TrimSpace(def)
}
