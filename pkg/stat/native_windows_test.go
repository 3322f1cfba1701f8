package stat

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/sys/windows"

	aclapi "github.com/hectane/go-acl/api"
)

func TestWindowsStatFile(t *testing.T) {
	// Create a test file.
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(path, []byte("0123456789"), 0600); err != nil {
		t.Fatal("unable to create test file:", err)
	}

	// Query its status.
	status, err := Stat(path)
	if err != nil {
		t.Fatal("unable to query status:", err)
	}

	// Verify the status.
	if status.Size() != 10 {
		t.Error("size mismatch:", status.Size())
	}
	if !status.Regular() || status.FileType() != "file" {
		t.Error("file type mismatch:", status.FileType())
	}
	if status.Mode() != 0100644 {
		t.Error("mode mismatch:", status.Mode())
	}
	if _, ok := status.Inode(); !ok {
		t.Error("inode unknown for ordinary file")
	}
	if blockSize, ok := status.BlockSize(); !ok || blockSize == 0 {
		t.Error("block size unknown for local file:", blockSize, ok)
	}
	if time.Since(status.ModificationTime()) > time.Hour {
		t.Error("modification time implausible:", status.ModificationTime())
	}
	if status.RDev() < 0 {
		t.Error("drive number unknown for local file")
	}
}

func TestWindowsStatReadonlyExecutable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tool.EXE")
	if err := os.WriteFile(path, nil, 0400); err != nil {
		t.Fatal("unable to create test file:", err)
	}
	defer os.Chmod(path, 0600)

	status, err := Stat(path)
	if err != nil {
		t.Fatal("unable to query status:", err)
	}
	if !status.Readonly() || !status.Executable() {
		t.Error("flags mismatch:", status.Readonly(), status.Executable())
	}
	if status.Mode() != 0100555 {
		t.Error("mode mismatch:", status.Mode())
	}
	if !status.Zero() {
		t.Error("empty file not reported as zero size")
	}
}

func TestWindowsStatDirectory(t *testing.T) {
	status, err := Stat(t.TempDir())
	if err != nil {
		t.Fatal("unable to query status:", err)
	}
	if !status.Directory() || status.FileType() != "directory" {
		t.Error("directory not classified as directory")
	}
	if status.Mode() != 040755 {
		t.Error("mode mismatch:", status.Mode())
	}
}

func TestWindowsStatSymbolicLink(t *testing.T) {
	directory := t.TempDir()
	target := filepath.Join(directory, "target.txt")
	if err := os.WriteFile(target, nil, 0600); err != nil {
		t.Fatal("unable to create target:", err)
	}
	link := filepath.Join(directory, "link.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Skip("unable to create symbolic link:", err)
	}

	status, err := Stat(link)
	if err != nil {
		t.Fatal("unable to query status:", err)
	}
	if !status.Symlink() || !status.ReparsePoint() {
		t.Error("symbolic link not classified as symbolic link")
	}
	if status.LinkTarget() != target {
		t.Error("link target mismatch:", status.LinkTarget())
	}
}

func TestWindowsStatOwnership(t *testing.T) {
	path := filepath.Join(t.TempDir(), "owned.txt")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatal("unable to create test file:", err)
	}

	// Resolve the owner and group through the named security API.
	var owner, group *windows.SID
	var descriptor windows.Handle
	if err := aclapi.GetNamedSecurityInfo(
		path,
		aclapi.SE_FILE_OBJECT,
		aclapi.OWNER_SECURITY_INFORMATION|aclapi.GROUP_SECURITY_INFORMATION,
		&owner,
		&group,
		nil,
		nil,
		&descriptor,
	); err != nil {
		t.Fatal("unable to query named security information:", err)
	}
	defer windows.LocalFree(descriptor)

	// Verify that the status agrees.
	status, err := Stat(path)
	if err != nil {
		t.Fatal("unable to query status:", err)
	}
	if status.UserSID() != owner.String() {
		t.Error("user SID mismatch:", status.UserSID(), "!=", owner.String())
	}
	if status.GroupSID() != group.String() {
		t.Error("group SID mismatch:", status.GroupSID(), "!=", group.String())
	}
}

func TestWindowsFindEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entry.txt")
	if err := os.WriteFile(path, []byte("0123"), 0600); err != nil {
		t.Fatal("unable to create test file:", err)
	}

	data, err := DefaultNative(nil).FindEntry(path)
	if err != nil {
		t.Fatal("unable to find entry:", err)
	}
	if data.FileSizeLow != 4 || data.FileSizeHigh != 0 {
		t.Error("entry size mismatch:", data.FileSizeHigh, data.FileSizeLow)
	}
}

func TestWindowsFindHandleCloseFailure(t *testing.T) {
	if err := findHandle(windows.InvalidHandle).Close(); err == nil {
		t.Error("closing invalid search handle succeeded")
	}
}

func TestWindowsLinkTargetReleasesHandle(t *testing.T) {
	directory := t.TempDir()
	target := filepath.Join(directory, "target.txt")
	if err := os.WriteFile(target, nil, 0600); err != nil {
		t.Fatal("unable to create target:", err)
	}
	link := filepath.Join(directory, "link.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Skip("unable to create symbolic link:", err)
	}

	if _, err := DefaultNative(nil).LinkTarget(link); err != nil {
		t.Fatal("unable to read link target:", err)
	}

	// The handle is opened without delete sharing, so removal only succeeds
	// once it has been released.
	if err := os.Remove(link); err != nil {
		t.Error("unable to remove link after reading target:", err)
	}
}

func TestWindowsStatNonExistent(t *testing.T) {
	if _, err := Stat(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("status query succeeded for non-existent path")
	}
}
