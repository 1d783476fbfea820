package converter

import (
	"bytes"
	"io"
	"os"
	"os/exec"
)

// runner abstracts binary lookup and process execution so tests can drive
// the adapter without pandoc installed.
type runner interface {
	LookPath(file string) (string, error)
	FileExists(path string) bool
	Run(name string, args []string, stdin io.Reader) (stdout, stderr []byte, err error)
}

// osRunner is the production runner backed by os/exec.
type osRunner struct{}

func (osRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osRunner) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (osRunner) Run(name string, args []string, stdin io.Reader) ([]byte, []byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = stdin

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	err := cmd.Run()
	return out.Bytes(), errBuf.Bytes(), err
}
