//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedGitsumPath holds the path to a shared gitsum binary built once for all tests.
	sharedGitsumPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getGitsumBinary returns the path to the gitsum binary, building it once if needed.
func getGitsumBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "gitsum-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		gitsumPath := filepath.Join(tempDir, "gitsum")
		buildCmd := exec.Command("go", "build", "-o", gitsumPath, "./cmd/gitsum")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build gitsum: %v", err))
		}

		sharedGitsumPath = gitsumPath
	})

	return sharedGitsumPath
}

// runGitsumCommand runs the built binary from the project root.
func runGitsumCommand(t *testing.T, args ...string) error {
	gitsumPath := getGitsumBinary()
	cmd := exec.Command(gitsumPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
