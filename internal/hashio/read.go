package hashio

import (
	"bytes"
	"crypto/md5" //nolint
	"crypto/sha1"
	"errors"
	"fmt"
	"hash"
	"io"
	"io/fs"
	"os"
)

const size = 512

var ErrHashFuncNotFound = errors.New("hash func not found")

// ReadAll reads in blocks by buf size and hashes
func ReadAll(r io.Reader, hasher hash.Hash) ([]byte, error) {
	buf := make([]byte, size)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			hasher.Write(buf[:n])
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, fmt.Errorf("read: %w", err)
		}
	}

	return hasher.Sum(nil), nil
}

// SumFile hashes the content of the file. A missing file results in an error wrapping fs.ErrNotExist
func SumFile(fileName string, hasherFunc func() hash.Hash) ([]byte, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	b, err := ReadAll(file, hasherFunc())
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", fileName, err)
	}

	return b, nil
}

// SameContent reports whether the file on disk hashes to the same sum as content.
// A file that does not exist yet is never the same
func SameContent(fileName string, content []byte, hasherFunc func() hash.Hash) (bool, error) {
	oldHash, err := SumFile(fileName, hasherFunc)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("hashing file content: %w", err)
	}

	newHash, err := ReadAll(bytes.NewReader(content), hasherFunc())
	if err != nil {
		return false, fmt.Errorf("hashing new content: %w", err)
	}

	return bytes.Equal(oldHash, newHash), nil
}

// ByName returns the hash constructor for the -hash flag value. An empty name selects MD5
func ByName(name string) (func() hash.Hash, error) {
	switch name {
	case "", "md5":
		return MD5(), nil
	case "sha1":
		return SHA1(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrHashFuncNotFound, name)
	}
}

func MD5() func() hash.Hash {
	return func() hash.Hash {
		return md5.New()
	}
}

func SHA1() func() hash.Hash {
	return func() hash.Hash {
		return sha1.New()
	}
}
