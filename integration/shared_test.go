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
	// sharedFullbackPath holds the path to a shared fullback binary built once for all tests.
	sharedFullbackPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getFullbackBinary returns the path to the fullback binary, building it once if needed.
func getFullbackBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "fullback-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		fullbackPath := filepath.Join(tempDir, "fullback")
		buildCmd := exec.Command("go", "build", "-o", fullbackPath, "./cmd/fullback")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build fullback: %v", err))
		}

		sharedFullbackPath = fullbackPath
	})

	return sharedFullbackPath
}

// runFullbackCommand runs the shared binary from the integration directory so
// relative testdata paths resolve.
func runFullbackCommand(t *testing.T, args ...string) (string, error) {
	fullbackPath := getFullbackBinary()
	cmd := exec.Command(fullbackPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
	}
	return string(output), err
}
