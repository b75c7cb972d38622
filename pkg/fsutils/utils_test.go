package fsutils

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestExpandHome(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", ExpandHome(""))
	})
	t.Run("no_tilde", func(t *testing.T) {
		assert.Equal(t, "/some/path", ExpandHome("/some/path"))
	})
	t.Run("only_tilde", func(t *testing.T) {
		home, _ := os.UserHomeDir()
		assert.Equal(t, home, ExpandHome("~"))
	})
	t.Run("tilde_with_path", func(t *testing.T) {
		home, _ := os.UserHomeDir()
		assert.Equal(t, filepath.Join(home, "abc"), ExpandHome("~/abc"))
	})
}

func TestReadYAMLFile(t *testing.T) {
	type A struct {
		B string `yaml:"b"`
	}

	t.Run("empty_not_required", func(t *testing.T) {
		var a A
		err := ReadYAMLFile("", false, &a)
		assert.NoError(t, err)
	})

	t.Run("not_found_not_required", func(t *testing.T) {
		var a A
		err := ReadYAMLFile("non_existent.yaml", false, &a)
		assert.NoError(t, err)
	})

	t.Run("not_found_required", func(t *testing.T) {
		var a A
		err := ReadYAMLFile("non_existent.yaml", true, &a)
		assert.Error(t, err)
	})

	t.Run("success", func(t *testing.T) {
		tmpFile, err := os.CreateTemp("", "test*.yaml")
		assert.NoError(t, err)
		defer func() {
			_ = os.Remove(tmpFile.Name())
		}()

		_, err = tmpFile.WriteString("b: test\n")
		assert.NoError(t, err)
		err = tmpFile.Close()
		assert.NoError(t, err)

		var a A
		err = ReadYAMLFile(tmpFile.Name(), true, &a)
		assert.NoError(t, err)
		assert.Equal(t, "test", a.B)
	})

	t.Run("invalid_yaml", func(t *testing.T) {
		tmpFile, err := os.CreateTemp("", "test*.yaml")
		assert.NoError(t, err)
		defer func() {
			_ = os.Remove(tmpFile.Name())
		}()

		_, err = tmpFile.WriteString("b: [unclosed\n")
		assert.NoError(t, err)
		err = tmpFile.Close()
		assert.NoError(t, err)

		var a A
		err = ReadYAMLFile(tmpFile.Name(), true, &a)
		assert.Error(t, err)
	})

	t.Run("empty_file", func(t *testing.T) {
		tmpFile, err := os.CreateTemp("", "test*.yaml")
		assert.NoError(t, err)
		defer func() {
			_ = os.Remove(tmpFile.Name())
		}()
		_ = tmpFile.Close()

		a := A{B: "kept"}
		err = ReadYAMLFile(tmpFile.Name(), true, &a)
		assert.NoError(t, err)
		assert.Equal(t, "kept", a.B)
	})

	t.Run("fail_to_close", func(t *testing.T) {
		// This is just to cover the defer close logic, though it's hard to make it fail and see the log
		tmpFile, err := os.CreateTemp("", "test*.yaml")
		assert.NoError(t, err)
		defer func() {
			_ = os.Remove(tmpFile.Name())
		}()
		_, _ = tmpFile.WriteString("{}")
		_ = tmpFile.Close()

		var a A
		_ = ReadYAMLFile(tmpFile.Name(), true, &a)
	})
}

type mockDecoder struct {
	err error
}

func (m mockDecoder) Decode(interface{}) error {
	return m.err
}

func TestReadFile_DecoderError(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "test*.yaml")
	assert.NoError(t, err)
	defer func() {
		_ = os.Remove(tmpFile.Name())
	}()

	err = ReadFile(tmpFile.Name(), true, nil, func(r io.Reader) Decoder {
		return mockDecoder{err: io.ErrUnexpectedEOF}
	})
	assert.Error(t, err)
}

func TestIsHiddenName(t *testing.T) {
	assert.True(t, IsHiddenName(".secret"))
	assert.True(t, IsHiddenName(".git"))
	assert.False(t, IsHiddenName("readme.txt"))
	assert.False(t, IsHiddenName("docs."))
}
