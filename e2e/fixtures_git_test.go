//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// RepoOption is a function that configures fixture repository creation
type RepoOption func(*repoOptions)

type repoOptions struct {
	files map[string]string // filename -> contents
}

// WithFiles creates the repository with specific files and contents
func WithFiles(files map[string]string) RepoOption {
	return func(opts *repoOptions) {
		opts.files = files
	}
}

// CreateTestWorkspace creates the temporary $HOME of the application
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// CreateFixtureRepo creates a committed git repository at
// <workspace>/fixtures/<owner>/<name> and returns its file:// URL, which
// the search stub hands out as the repository identifier.
func (tf *TUITestFramework) CreateFixtureRepo(owner, name string, options ...RepoOption) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	repoPath := filepath.Join(tf.workspace, "fixtures", owner, name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		return "", err
	}

	if err := tf.runGitCommand(repoPath, "init"); err != nil {
		return "", err
	}
	if err := tf.runGitCommand(repoPath, "checkout", "-b", "main"); err != nil {
		return "", err
	}

	opts := &repoOptions{}
	for _, opt := range options {
		opt(opts)
	}

	files := map[string]string{
		"README.md": fmt.Sprintf("# %s/%s\n\nFixture repository for repo-depot testing.", owner, name),
	}
	for filename, content := range opts.files {
		files[filename] = content
	}
	for filename, content := range files {
		if err := os.WriteFile(filepath.Join(repoPath, filename), []byte(content), 0644); err != nil {
			return "", err
		}
	}

	if err := tf.runGitCommand(repoPath, "add", "."); err != nil {
		return "", err
	}
	if err := tf.runGitCommand(repoPath, "commit", "-m", "Initial commit"); err != nil {
		return "", err
	}

	return "file://" + repoPath, nil
}

// ClonePath returns where repo-depot clones <owner>/<name>
func (tf *TUITestFramework) ClonePath(owner, name string) string {
	return filepath.Join(tf.workspace, ".repo-depot", owner, name)
}

func (tf *TUITestFramework) runGitCommand(dir string, args ...string) error {
	cmd := exec.Command("git", args...)
	if dir != "" {
		cmd.Dir = dir
	}
	// Set deterministic git environment
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=repo-depot Test",
		"GIT_AUTHOR_EMAIL=test@repo-depot.test",
		"GIT_COMMITTER_NAME=repo-depot Test",
		"GIT_COMMITTER_EMAIL=test@repo-depot.test",
		"GIT_CONFIG_GLOBAL=/dev/null", // ignore user ~/.gitconfig
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git %v failed: %v; out=%s", args, err, out)
	}
	return nil
}
