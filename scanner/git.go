// scanner/git.go
package scanner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/alexferrari88/spell-scanner/utils"
)

// statuses of `git status --porcelain` that mark a file worth re-checking
var modifiedStatuses = map[string]bool{
	"M": true, "A": true, "MM": true, "AM": true, "R": true, "RM": true,
}

func runGit(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", dir}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w. Stderr: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// ModifiedFiles lists the added, modified and renamed files of the git repository that
// contains dir, as absolute paths.
func ModifiedFiles(ctx context.Context, dir string) ([]string, error) {
	if !utils.CommandExists("git") {
		return nil, fmt.Errorf("'git' command not found in PATH")
	}
	top, err := runGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, err
	}
	status, err := runGit(ctx, dir, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parsePorcelain(status, strings.TrimSpace(top)), nil
}

func parsePorcelain(output, top string) []string {
	var files []string
	for _, line := range strings.Split(output, "\n") {
		if len(line) < 4 {
			continue
		}
		status := strings.TrimSpace(line[:2])
		if !modifiedStatuses[status] {
			continue
		}
		path := line[3:]
		if strings.HasPrefix(status, "R") {
			if _, renamed, ok := strings.Cut(path, " -> "); ok {
				path = renamed
			}
		}
		path = strings.Trim(path, `"`)
		files = append(files, filepath.Join(top, filepath.FromSlash(path)))
	}
	return files
}

// CloneRepo shallow-clones a repository into a temporary directory. The caller removes it.
func CloneRepo(ctx context.Context, url string) (string, error) {
	if !utils.CommandExists("git") {
		return "", fmt.Errorf("'git' command not found in PATH. Cannot clone repository")
	}
	tempDir, err := os.MkdirTemp("", "spell-scan-repo-")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}

	cmd := exec.CommandContext(ctx, "git", "clone", "--depth", "1", url, tempDir)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		_ = os.RemoveAll(tempDir)
		return "", fmt.Errorf("failed to clone repo '%s': %w. Stderr: %s", url, err, stderr.String())
	}
	return tempDir, nil
}
