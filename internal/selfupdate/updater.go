package selfupdate

import (
	"archive/tar"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("refusing to update a development build")
	ErrAlreadyLatest = errors.New("current version is already the latest")
	ErrChecksum      = errors.New("release checksum mismatch")
)

// binaryName is the file looked up inside release archives.
const binaryName = "hana"

// Update installs the latest release over the running binary: it picks
// the tar.gz for this platform, verifies it against checksums.txt, and
// swaps the executable in place. notify receives a line per step.
func (c *Checker) Update(ctx context.Context, currentVersion string, notify func(string)) error {
	if currentVersion == "(devel)" {
		return ErrDevBuild
	}

	notify("Checking for latest version...")
	result, err := c.Check(ctx, &CheckInput{Version: currentVersion})
	if err != nil {
		return fmt.Errorf("check for updates: %w", err)
	}
	if !result.UpdateAvailable {
		return ErrAlreadyLatest
	}
	tag := result.LatestVersion

	archive, err := archiveName(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	notify("Downloading " + tag + "...")
	archiveData, err := c.fetchAsset(ctx, tag, archive)
	if err != nil {
		return fmt.Errorf("fetch release archive: %w", err)
	}

	notify("Verifying checksum...")
	sums, err := c.fetchAsset(ctx, tag, "checksums.txt")
	if err != nil {
		return fmt.Errorf("fetch checksums: %w", err)
	}
	want, ok := checksumFor(sums, archive)
	if !ok {
		return fmt.Errorf("checksums.txt has no entry for %s", archive)
	}
	if got := sha256Hex(archiveData); got != want {
		return fmt.Errorf("%w: want %s, got %s", ErrChecksum, want, got)
	}

	notify("Installing...")
	binary, err := binaryFromArchive(archiveData)
	if err != nil {
		return fmt.Errorf("extract %s: %w", binaryName, err)
	}
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("locate running binary: %w", err)
	}
	if err := installBinary(target, binary); err != nil {
		return err
	}

	notify("Updated to " + tag)
	return nil
}

// archiveName maps a platform to its release archive. Releases ship
// tar.gz archives for macOS (universal) and linux only.
func archiveName(goos, goarch string) (string, error) {
	switch goos {
	case "darwin":
		return "hana_Darwin_all.tar.gz", nil
	case "linux":
		switch goarch {
		case "amd64":
			return "hana_Linux_x86_64.tar.gz", nil
		case "arm64":
			return "hana_Linux_arm64.tar.gz", nil
		}
		return "", fmt.Errorf("no release archive for linux/%s", goarch)
	}
	return "", fmt.Errorf("no release archive for %s", goos)
}

// fetchAsset downloads one file attached to a release tag.
func (c *Checker) fetchAsset(ctx context.Context, tag, name string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s/%s/releases/download/%s/%s",
		strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, tag, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// checksumFor scans a goreleaser checksums.txt for the named file.
func checksumFor(sums []byte, name string) (string, bool) {
	sc := bufio.NewScanner(bytes.NewReader(sums))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 2 && fields[1] == name {
			return fields[0], true
		}
	}
	return "", false
}

func sha256Hex(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// binaryFromArchive pulls the hana binary out of a tar.gz archive.
func binaryFromArchive(data []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil, fmt.Errorf("%s not found in archive", binaryName)
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == binaryName {
			return io.ReadAll(tr)
		}
	}
}

// installBinary replaces target with data. The new binary is staged in
// a temp dir on the same filesystem, re-read to detect a torn or
// tampered write, then renamed over the target so the swap is atomic.
func installBinary(target string, data []byte) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	staging, err := os.MkdirTemp(filepath.Dir(target), ".hana-update-*")
	if err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(staging) }()

	staged := filepath.Join(staging, binaryName)
	if err := os.WriteFile(staged, data, 0600); err != nil {
		return fmt.Errorf("stage binary: %w", err)
	}

	written, err := os.ReadFile(staged)
	if err != nil {
		return fmt.Errorf("re-read staged binary: %w", err)
	}
	if sha256Hex(written) != sha256Hex(data) {
		return fmt.Errorf("%w: staged binary changed after write", ErrChecksum)
	}

	if err := os.Rename(staged, target); err != nil {
		return fmt.Errorf("replace binary: %w", err)
	}
	return os.Chmod(target, info.Mode())
}
