// commands.go
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexferrari88/spell-scanner/config"
	"github.com/alexferrari88/spell-scanner/scanner"
	"github.com/alexferrari88/spell-scanner/spelling"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	itemStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
)

var checkCmd = &cobra.Command{
	Use:   "check [path or GitHub URL]",
	Short: "Check the spelling of a project, a single file or a GitHub repository",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args, false)
	},
}

var fixCmd = &cobra.Command{
	Use:   "fix [path]",
	Short: "Correct misspelled words that have exactly one suggestion",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args, true)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new " + config.FileName + " file with sample configuration",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Args:  cobra.NoArgs,
	Run:   runLanguages,
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List supported rules",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printList("Supported rules:", scanner.SupportedRules())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version of " + appName,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(styled(headingStyle, fmt.Sprintf("%s v%s", appName, version)))
	},
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(appName + " v{{.Version}}\n")
	rootCmd.AddCommand(checkCmd, fixCmd, initCmd, languagesCmd, rulesCmd, versionCmd)
}

func styled(style lipgloss.Style, s string) string {
	if !useColor() {
		return s
	}
	return style.Render(s)
}

func printList(title string, items []string) {
	fmt.Println(styled(headingStyle, title))
	for _, item := range items {
		fmt.Println(styled(itemStyle, "  - "+item))
	}
}

func runCheck(cmd *cobra.Command, args []string, fix bool) error {
	ctx := cmd.Context()
	logger := newLogger()

	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	displayRoot := ""
	if looksLikeGitHubURL(target) {
		if fix || onlyModified {
			return fmt.Errorf("fix and --only-modified need a local path, got %s", target)
		}
		logger.Info("GitHub URL detected, cloning", "url", target)
		tempDir, err := scanner.CloneRepo(ctx, target)
		if err != nil {
			return fmt.Errorf("cloning repository '%s': %w", target, err)
		}
		defer func() {
			logger.Info("cleaning up temporary directory", "path", tempDir)
			if err := os.RemoveAll(tempDir); err != nil {
				logger.Warn("failed to remove temporary directory", "path", tempDir, "error", err)
			}
		}()
		target, displayRoot = tempDir, tempDir
	}

	if _, err := os.Stat(target); errors.Is(err, os.ErrNotExist) {
		return scanner.ErrPathNotFound
	}

	loaded, err := loadConfig(target)
	if err != nil {
		return err
	}
	dict, err := newDictionary(loaded, projectDir(target), logger)
	if err != nil {
		return err
	}

	out := newOutputs(displayRoot)
	session := scanner.New(loaded.Config, dict, out.reporter, scanOptions(fix), logger)
	result, err := session.Check(ctx, target)
	if err != nil {
		return err
	}
	return out.finish(result, fix)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving current directory: %w", err)
	}
	if _, err := config.CreateDefaultConfig(dir); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return fmt.Errorf("%s config file already exists", config.FileName)
		}
		return fmt.Errorf("error creating %s config file: %w", config.FileName, err)
	}
	fmt.Println(styled(headingStyle, config.FileName+" config file has been created successfully."))
	return nil
}

func runLanguages(cmd *cobra.Command, args []string) {
	dict := spelling.NewFuzzyDictionary(spelling.WithLogger(newLogger()))
	printList("Supported languages:", scanner.SupportedLanguages(dict))
}
