// Package archive turns an uploaded zip (or a bare image file) into the
// folder-to-images map the assembly pipeline consumes.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sentivora/mlr-automation/internal/core/port"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
}

// IsImageFile reports whether the filename carries a supported image
// extension.
func IsImageFile(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// skipped filters archive noise: macOS resource forks, hidden files and
// anything that is not an image.
func skipped(name string) bool {
	clean := strings.ReplaceAll(name, "\\", "/")
	for _, part := range strings.Split(clean, "/") {
		if part == "__MACOSX" || strings.HasPrefix(part, ".") {
			return true
		}
	}
	return !IsImageFile(clean)
}

// Extract reads an uploaded file into a FolderMap. Zip archives are
// unpacked next to the upload; a single image upload becomes a one-entry
// map keyed by its directory. Folder keys are relative paths with '/'
// separators; images sit under the folder that directly contains them.
func Extract(uploadPath string) (port.FolderMap, error) {
	if strings.EqualFold(filepath.Ext(uploadPath), ".zip") {
		return extractZip(uploadPath)
	}
	if !IsImageFile(uploadPath) {
		return nil, fmt.Errorf("unsupported upload type %q", filepath.Ext(uploadPath))
	}
	if _, err := os.Stat(uploadPath); err != nil {
		return nil, fmt.Errorf("stat upload: %w", err)
	}
	folder := filepath.Base(filepath.Dir(uploadPath))
	return port.FolderMap{folder: {uploadPath}}, nil
}

func extractZip(zipPath string) (port.FolderMap, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	destDir := strings.TrimSuffix(zipPath, filepath.Ext(zipPath))
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("create extract dir: %w", err)
	}

	folders := make(port.FolderMap)
	for _, f := range r.File {
		if f.FileInfo().IsDir() || skipped(f.Name) {
			continue
		}
		rel := strings.ReplaceAll(f.Name, "\\", "/")
		// reject entries escaping the extraction root
		if strings.Contains(rel, "..") {
			continue
		}
		target := filepath.Join(destDir, filepath.FromSlash(rel))
		if err := writeEntry(f, target); err != nil {
			return nil, fmt.Errorf("extract %s: %w", f.Name, err)
		}
		folder := filepath.ToSlash(filepath.Dir(rel))
		if folder == "." {
			folder = strings.TrimSuffix(filepath.Base(zipPath), filepath.Ext(zipPath))
		}
		folders[folder] = append(folders[folder], target)
	}
	if len(folders) == 0 {
		return nil, fmt.Errorf("archive %s: %w", filepath.Base(zipPath), port.ErrNoAssets)
	}
	return folders, nil
}

// maxEntryBytes caps a single extracted file at 256 MiB to guard against
// decompression bombs.
const maxEntryBytes = 256 << 20

func copyBounded(dst io.Writer, src io.Reader) (int64, error) {
	n, err := io.Copy(dst, io.LimitReader(src, maxEntryBytes+1))
	if err != nil {
		return n, err
	}
	if n > maxEntryBytes {
		return n, fmt.Errorf("entry exceeds %d bytes", int64(maxEntryBytes))
	}
	return n, nil
}

func writeEntry(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := copyBounded(dst, src); err != nil {
		return err
	}
	return dst.Close()
}
