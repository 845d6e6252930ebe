package models

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedKeyGenerator string

func (g fixedKeyGenerator) RandomString(n int) (string, error) {
	return string(g)[:n], nil
}

type failingKeyGenerator struct{}

func (failingKeyGenerator) RandomString(int) (string, error) {
	return "", errors.New("entropy exhausted")
}

func TestValidatePhotoExtension(t *testing.T) {
	testCases := []struct {
		filename string
		valid    bool
	}{
		{"x.png", true},
		{"x.jpg", true},
		{"x.jpeg", true},
		{"X.PNG", true},
		{"holiday.photo.JpEg", true},
		{"x.gif", false},
		{"x.webp", false},
		{"x.png.gif", false},
		{"png", false},
		{"x.", false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.filename, func(t *testing.T) {
			err := ValidatePhotoExtension(tc.filename)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidExtension)
			}
		})
	}
}

func TestPhotoKey(t *testing.T) {
	gen := fixedKeyGenerator("aB3xZ9")

	testCases := []struct {
		name     string
		filename string
		expected string
	}{
		{"Plain filename", "table.png", "aB3xZ_table.png"},
		{"Unicode filename", "стол.jpg", "aB3xZ_стол.jpg"},
		{"Directories are dropped", "uploads/2024/table.jpeg", "aB3xZ_table.jpeg"},
		{"Windows path", `C:\Users\me\table.png`, "aB3xZ_table.png"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := PhotoKey(gen, tc.filename)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, key)
		})
	}
}

func TestPhotoKeyGeneratorError(t *testing.T) {
	_, err := PhotoKey(failingKeyGenerator{}, "x.png")
	assert.EqualError(t, err, "entropy exhausted")
}

func TestCryptoKeyGenerator(t *testing.T) {
	alnum := regexp.MustCompile(`^[a-zA-Z0-9]{5}$`)
	gen := CryptoKeyGenerator{}

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		s, err := gen.RandomString(PhotoPrefixLength)
		require.NoError(t, err)
		assert.Regexp(t, alnum, s)
		seen[s] = struct{}{}
	}
	assert.Greater(t, len(seen), 1, "generator should not repeat a single value")
}

func TestProductAttachPhoto(t *testing.T) {
	t.Run("Accepted extension", func(t *testing.T) {
		p := NewProduct("Стол", 2020, 1)

		err := p.AttachPhoto("table.jpg", fixedKeyGenerator("qwert"))

		require.NoError(t, err)
		require.NotNil(t, p.Photo)
		assert.Equal(t, "qwert_table.jpg", *p.Photo)
	})

	t.Run("Rejected extension leaves photo unset", func(t *testing.T) {
		p := NewProduct("Стол", 2020, 1)

		err := p.AttachPhoto("x.gif", fixedKeyGenerator("qwert"))

		assert.ErrorIs(t, err, ErrInvalidExtension)
		assert.Nil(t, p.Photo)
	})
}
