package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// Validate compares obj, encoded as indented JSON, with testdata/<name>.json
// The file is written if it does not exist yet, or if UPDATE_SNAPSHOTS is set.
func Validate(t *testing.T, name string, obj interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if !assert.NoError(t, err, "could not encode the snapshot") {
		return false
	}

	filename := filepath.Join("testdata", name+".json")

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) || os.Getenv("UPDATE_SNAPSHOTS") != "" {
		return assert.NoError(t, create(filename, objJSON), "could not write the snapshot")
	}

	if !assert.NoError(t, err, "could not read the snapshot") {
		return false
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
		return false
	}

	return true
}

func create(filename string, b []byte) error {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	return os.WriteFile(filename, append(b, '\n'), 0644)
}
