// Package archive extracts backup archives for the restore step. Routing
// is by file suffix over the formats the backup steps produce: zip, 7z,
// and tar with its gzip, bzip2 and xz compressions.
package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/xi2/xz"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/logger"
)

// Supported reports whether the file name has a suffix Extract can handle.
func Supported(path string) bool {
	switch {
	case strings.HasSuffix(path, ".zip"),
		strings.HasSuffix(path, ".7z"),
		strings.HasSuffix(path, ".tar"),
		strings.HasSuffix(path, ".tar.gz"),
		strings.HasSuffix(path, ".tgz"),
		strings.HasSuffix(path, ".tar.bz2"),
		strings.HasSuffix(path, ".tar.xz"):
		return true
	}
	return false
}

// Extract unpacks src into dest and returns the restore root: the single
// top-level directory when the archive wraps everything in one, otherwise
// dest itself. Entries escaping dest are rejected.
func Extract(src, dest string) (string, error) {
	switch {
	case strings.HasSuffix(src, ".zip"):
		logger.Debug("[DEBUG] Archive type is zip\n")
		return extractZip(src, dest)
	case strings.HasSuffix(src, ".7z"):
		logger.Debug("[DEBUG] Archive type is 7z\n")
		return extract7z(src, dest)
	case strings.HasSuffix(src, ".tar"), strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"),
		strings.HasSuffix(src, ".tar.bz2"), strings.HasSuffix(src, ".tar.xz"):
		logger.Debug("[DEBUG] Archive type is tar\n")
		return extractTar(src, dest)
	default:
		return "", fmt.Errorf("unsupported archive format: %s", src)
	}
}

// tracker collects top-level entry names so Extract can decide what the
// restore root is.
type tracker map[string]bool

func (t tracker) note(name string) {
	name = filepath.Clean(name)
	if name == "." || name == "" {
		return
	}
	parts := strings.Split(name, string(os.PathSeparator))
	t[parts[0]] = true
}

func (t tracker) root(dest string) string {
	if len(t) == 1 {
		for only := range t {
			return filepath.Join(dest, only)
		}
	}
	return dest
}

// safeJoin joins an archive entry name onto dest, refusing names that
// would land outside it.
func safeJoin(dest, name string) (string, error) {
	path := filepath.Join(dest, name)
	if path != dest && !strings.HasPrefix(path, dest+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry escapes destination: %s", name)
	}
	return path, nil
}

func extractTar(src, dest string) (string, error) {
	f, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var reader io.Reader = f
	switch {
	case strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return "", err
		}
		defer gr.Close()
		reader = gr
	case strings.HasSuffix(src, ".tar.bz2"):
		reader = bzip2.NewReader(f)
	case strings.HasSuffix(src, ".tar.xz"):
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			return "", err
		}
		reader = xzr
	}

	tops := make(tracker)
	tr := tar.NewReader(reader)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		target, err := safeJoin(dest, hdr.Name)
		if err != nil {
			return "", err
		}
		tops.note(hdr.Name)

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return "", err
			}
		case tar.TypeSymlink:
			// Backups of a home directory carry symlinks; recreate them.
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return "", err
			}
			if err := os.Symlink(hdr.Linkname, target); err != nil && !os.IsExist(err) {
				return "", err
			}
		case tar.TypeReg:
			if err := writeEntry(target, tr, hdr.FileInfo().Mode()); err != nil {
				return "", err
			}
		}
	}
	return tops.root(dest), nil
}

func extractZip(src, dest string) (string, error) {
	r, err := zip.OpenReader(src)
	if err != nil {
		return "", err
	}
	defer r.Close()

	tops := make(tracker)
	for _, f := range r.File {
		path, err := safeJoin(dest, f.Name)
		if err != nil {
			return "", err
		}
		tops.note(f.Name)

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(path, 0o755); err != nil {
				return "", err
			}
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		err = writeEntry(path, rc, f.Mode())
		rc.Close()
		if err != nil {
			return "", err
		}
	}
	return tops.root(dest), nil
}

func extract7z(src, dest string) (string, error) {
	r, err := sevenzip.OpenReader(src)
	if err != nil {
		return "", fmt.Errorf("opening 7z archive: %w", err)
	}
	defer r.Close()

	tops := make(tracker)
	for _, f := range r.File {
		path, err := safeJoin(dest, f.Name)
		if err != nil {
			return "", err
		}
		tops.note(f.Name)

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(path, 0o755); err != nil {
				return "", err
			}
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		err = writeEntry(path, rc, f.Mode())
		rc.Close()
		if err != nil {
			return "", err
		}
	}
	return tops.root(dest), nil
}

func writeEntry(path string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	perm := mode.Perm()
	if perm == 0 {
		perm = 0o644
	}
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
