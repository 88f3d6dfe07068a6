package cli

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ddsEntry is one input's contribution to the skip-cache hash.
type ddsEntry struct {
	Path string
	Hash string
	Size int64
}

// computeInputsHash hashes every input .dds plus the pack options that
// change the output bytes, so toggling --linearize or --unnormalize
// invalidates the cache even when the inputs are untouched.
func computeInputsHash(opts *CmdPack, files []imageFile) (uint64, error) {
	root, err := filepath.Abs(opts.Args.Input)
	if err != nil {
		return 0, fmt.Errorf("resolve input path: %w", err)
	}

	entries := make([]ddsEntry, 0, len(files))
	for _, f := range files {
		absPath, err := filepath.Abs(f.path)
		if err != nil {
			return 0, fmt.Errorf("resolve file path %q: %w", f.path, err)
		}

		rel, err := filepath.Rel(root, absPath)
		if err != nil {
			return 0, fmt.Errorf("resolve relative path for %q: %w", absPath, err)
		}

		fileHash, size, err := hashFileXX(absPath)
		if err != nil {
			return 0, err
		}

		entries = append(entries, ddsEntry{
			Path: filepath.ToSlash(rel),
			Hash: fileHash,
			Size: size,
		})
	}

	// files arrive pre-sorted from readDdsFiles; id assignment and hash
	// order are the same.
	h := xxhash.New()
	_, _ = h.WriteString(fmt.Sprintf("linearize=%t;unnormalize=%t\n", opts.Linearize, opts.Unnormalize))
	for _, e := range entries {
		_, _ = h.WriteString(e.Path)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(e.Hash)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(strconv.FormatInt(e.Size, 10))
		_, _ = h.Write([]byte{'\n'})
	}

	return h.Sum64(), nil
}

// shouldSkipPack reports whether the .gtf is already up to date for the
// hashed inputs.
func shouldSkipPack(cachePath, gtfPath string, nextHash uint64) bool {
	prevHash, ok, err := readCacheHash(cachePath)
	if err != nil || !ok {
		return false
	}
	if prevHash != nextHash {
		return false
	}
	if _, err := os.Stat(gtfPath); err != nil {
		return false
	}

	return true
}

// readCacheHash reads the previous run's hash, if any.
func readCacheHash(path string) (uint64, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}

		return 0, false, fmt.Errorf("read cache: %w", err)
	}

	if len(data) != 8 {
		return 0, false, nil
	}

	return binary.LittleEndian.Uint64(data), true, nil
}

// writeCacheHash stores the hash next to the produced .gtf.
func writeCacheHash(path string, hash uint64) error {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, hash)
	if err := os.WriteFile(path, buf, 0600); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}

	return nil
}

// hashFileXX hashes one file's content with xxhash.
func hashFileXX(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return "", 0, fmt.Errorf("stat %q: %w", path, err)
	}

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", 0, fmt.Errorf("hash %q: %w", path, err)
	}

	return fmt.Sprintf("%016x", h.Sum64()), info.Size(), nil
}
