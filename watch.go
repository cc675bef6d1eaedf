// watch.go
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alexferrari88/spell-scanner/scanner"
	"github.com/spf13/cobra"
)

var (
	watchDebounce time.Duration
	watchFix      bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Re-check source files every time they are saved",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", scanner.DefaultDebounce, "Wait this long for further changes before checking")
	watchCmd.Flags().BoolVar(&watchFix, "fix", false, "Correct misspelled words with exactly one suggestion")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if jsonOutput {
		return errors.New("watch does not support --json")
	}
	logger := newLogger()
	target := "."
	if len(args) > 0 {
		target = args[0]
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

	out := newOutputs("")
	session := scanner.New(loaded.Config, dict, out.reporter, scanOptions(watchFix), logger)
	fmt.Fprintf(os.Stderr, "Watching %s for changes. Press Ctrl+C to stop.\n", target)
	return session.Watch(cmd.Context(), target, watchDebounce, func(result *scanner.CheckResult, err error) {
		if err != nil {
			logger.Warn("check failed", "error", err)
			return
		}
		if err := out.finish(result, watchFix); err != nil {
			logger.Warn("failed to write results", "error", err)
		}
	})
}
