package preflight

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"

	"voxify/internal/vocabulary"
)

// minFreeDiskBytes is the floor below which transcription runs are refused.
// Whisper scratch output plus exported transcripts fit comfortably under it.
const minFreeDiskBytes = 1 << 30

// CheckBinary verifies that the command resolves on PATH.
func CheckBinary(name, command string) Result {
	command = strings.TrimSpace(command)
	if command == "" {
		return Result{Name: name, Detail: "command not configured"}
	}
	if _, err := exec.LookPath(command); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("binary %q not found on PATH", command)}
	}
	return Result{Name: name, Passed: true, Detail: command}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckDiskSpace verifies the filesystem behind path has room for scratch
// output and exports.
func CheckDiskSpace(name, path string) Result {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", path, err)}
	}
	free := stat.Bavail * uint64(stat.Bsize)
	if free < minFreeDiskBytes {
		return Result{Name: name, Detail: fmt.Sprintf("%s (only %dMB free, need %dMB)", path, free>>20, int64(minFreeDiskBytes)>>20)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%dMB free)", path, free>>20)}
}

// CheckVocabulary reports training state. It always passes; an untrained or
// unreadable store only means transcripts pass through cleaning unchanged.
func CheckVocabulary(path string) Result {
	const name = "Vocabulary"
	vocab, err := vocabulary.Load(path)
	if err != nil {
		return Result{Name: name, Passed: true, Detail: "not trained (transcripts will pass through cleaning unchanged)"}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d terms, %d phrases", vocab.TermCount(), vocab.PhraseCount())}
}
