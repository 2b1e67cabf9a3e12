package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/palettes/internal/config"
)

var (
	initForce bool

	// configDirFunc is swapped out in tests.
	configDirFunc = defaultConfigDir

	configTemplate = mustConfigTemplate()
)

const examplePalette = `// Palettes in this directory are picked up by palettes list, show and browse.
Example {
    "ink": "#1b1b1f",
    "paper": "#f4f1e8",
    "accent": (0.9, 0.3, 0.1),
}
`

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
}

type initResult struct {
	name    string
	status  string // done, skipped or failed
	message string
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config and a project palette directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		results := []initResult{
			createConfigFile(),
			createProjectDir(resolveProjectDir()),
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			type jsonResult struct {
				Step    string `json:"step"`
				Status  string `json:"status"`
				Message string `json:"message"`
			}
			rows := make([]jsonResult, 0, len(results))
			for _, r := range results {
				rows = append(rows, jsonResult{Step: r.name, Status: r.status, Message: r.message})
			}
			if err := WriteOutput(out, rows); err != nil {
				return err
			}
		} else {
			for _, r := range results {
				fmt.Fprintf(out, "%s %s: %s\n", statusMark(r.status), r.name, r.message)
			}
		}

		for _, r := range results {
			if r.status == "failed" {
				return fmt.Errorf("%s failed: %s", r.name, r.message)
			}
		}
		return nil
	},
}

func statusMark(status string) string {
	switch status {
	case "done":
		return "[ok]"
	case "skipped":
		return "[--]"
	default:
		return "[!!]"
	}
}

func defaultConfigDir() string {
	return config.DefaultConfigDir()
}

func mustConfigTemplate() string {
	data, err := config.DefaultConfigYAML()
	if err != nil {
		panic(err)
	}
	return string(data)
}

func createConfigFile() initResult {
	result := initResult{name: "Config file"}

	dir := configDirFunc()
	path := filepath.Join(dir, "config.yaml")

	if _, err := os.Stat(path); err == nil && !initForce {
		result.status = "skipped"
		result.message = fmt.Sprintf("%s already exists (use --force to overwrite)", path)
		return result
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		result.status = "failed"
		result.message = fmt.Sprintf("create %s: %v", dir, err)
		return result
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o644); err != nil {
		result.status = "failed"
		result.message = fmt.Sprintf("write %s: %v", path, err)
		return result
	}

	result.status = "done"
	result.message = "wrote " + path
	return result
}

func createProjectDir(project string) initResult {
	result := initResult{name: "Project palettes"}

	dir := filepath.Join(project, ".palettes")
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		result.status = "skipped"
		result.message = dir + " already exists"
		return result
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		result.status = "failed"
		result.message = fmt.Sprintf("create %s: %v", dir, err)
		return result
	}
	path := filepath.Join(dir, "example.palette")
	if err := os.WriteFile(path, []byte(examplePalette), 0o644); err != nil {
		result.status = "failed"
		result.message = fmt.Sprintf("write %s: %v", path, err)
		return result
	}

	result.status = "done"
	result.message = "created " + path
	return result
}
