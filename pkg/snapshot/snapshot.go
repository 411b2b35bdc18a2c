package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// UpdateEnv forces every snapshot to be rewritten when set to "1"
const UpdateEnv = "BLACKJACK_UPDATE_SNAPSHOTS"

var (
	mu    sync.Mutex
	calls = make(map[string]int)
)

// Validate compares obj, encoded as indented JSON, against the next snapshot for the test
// Snapshots live in testdata/<TestName>-<n>.json, where n counts the calls made by the test.
// A missing snapshot is written and the check passes.
func Validate(t *testing.T, obj interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()

	filename := nextFilename(t.Name())
	got, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not encode snapshot: %v", err)
	}

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) || os.Getenv(UpdateEnv) == "1" {
		write(t, filename, got)
		return true
	} else if err != nil {
		t.Fatalf("could not read snapshot %s: %v", filename, err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(got), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
		return false
	}

	return true
}

// Lines is Validate for rendered output, one element per line
func Lines(t *testing.T, s string, msgAndArgs ...interface{}) bool {
	t.Helper()
	return Validate(t, strings.Split(strings.TrimSuffix(s, "\n"), "\n"), msgAndArgs...)
}

func nextFilename(testName string) string {
	mu.Lock()
	defer mu.Unlock()

	call := calls[testName]
	calls[testName] = call + 1

	name := strings.NewReplacer("/", "_", " ", "_").Replace(testName)
	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))
}

func write(t *testing.T, filename string, data []byte) {
	t.Helper()

	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filename, append(data, '\n'), 0644); err != nil {
		t.Fatal(err)
	}
}
