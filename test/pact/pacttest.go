//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "action-repo-api"
	ConsumerName = "action-repo-dashboard"

	StateUsersBaseline = "users baseline"
	StateUserExists    = "user with id 1 exists"
	StateUserMissing   = "no user with id 999999"
)

const (
	ExistingUserID int64 = 1
	MissingUserID  int64 = 999999
	CreatedUserID  int64 = 4
)

// ExampleUserPayload is the first seeded user.
func ExampleUserPayload() map[string]any {
	return map[string]any{
		"id":    ExistingUserID,
		"name":  "John Doe",
		"email": "john@example.com",
	}
}

// ExampleCreateUserPayload is the body sent when creating a user.
func ExampleCreateUserPayload() map[string]any {
	return map[string]any{
		"name":  "Alice",
		"email": "alice@example.com",
	}
}

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the dashboard consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
