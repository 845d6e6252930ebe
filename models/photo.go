package models

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"path"
	"path/filepath"
	"strings"
)

// PhotoPrefixLength is the length of the random prefix of a photo key.
const PhotoPrefixLength = 5

// AllowedPhotoExtensions lists the accepted photo suffixes, without the dot.
var AllowedPhotoExtensions = []string{"png", "jpg", "jpeg"}

const randomAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// KeyGenerator produces the random part of storage keys.
type KeyGenerator interface {
	RandomString(n int) (string, error)
}

// CryptoKeyGenerator draws alphanumeric strings from crypto/rand.
type CryptoKeyGenerator struct{}

func (CryptoKeyGenerator) RandomString(length int) (string, error) {
	n := big.NewInt(int64(len(randomAlphabet)))
	buf := make([]byte, length)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, n)
		if err != nil {
			return "", fmt.Errorf("generate random string: %w", err)
		}
		buf[i] = randomAlphabet[idx.Int64()]
	}
	return string(buf), nil
}

// ValidatePhotoExtension rejects filenames whose extension is not an
// allowed image type. The comparison ignores case.
func ValidatePhotoExtension(filename string) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, allowed := range AllowedPhotoExtensions {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (allowed: %s)", ErrInvalidExtension, ext, strings.Join(AllowedPhotoExtensions, ", "))
}

// PhotoKey builds the storage key for an uploaded photo:
// "<random prefix>_<original filename>". Directory components of the
// uploaded name are dropped so keys never nest.
func PhotoKey(gen KeyGenerator, filename string) (string, error) {
	prefix, err := gen.RandomString(PhotoPrefixLength)
	if err != nil {
		return "", err
	}
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	return prefix + "_" + name, nil
}
