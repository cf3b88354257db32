package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsingjyujing/langsel/controller"
	"github.com/tsingjyujing/langsel/text"
)

// execute runs the root command with args and stdin, returning stdout
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	rootCmd := NewRootCommand()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestDetectCommand_Args(t *testing.T) {
	out, err := execute(t, "", "detect",
		"What is machine learning?",
		"機械学習とは？",
		"Học máy là gì?",
		"Bonjour, comment ça va?",
		"12345",
	)
	require.NoError(t, err)
	assert.Equal(t, "English\nJapanese\nVietnamese\nEnglish\nundetermined\n", out)
}

func TestDetectCommand_Stdin(t *testing.T) {
	out, err := execute(t, "Xin chào, bạn khỏe không?\nSecond line", "detect")
	require.NoError(t, err)
	assert.Equal(t, "Vietnamese\n", out)
}

func TestDetectCommand_JSON(t *testing.T) {
	out, err := execute(t, "", "detect", "--json", "What is 'machine learning'? second sentence")
	require.NoError(t, err)

	var result controller.DetectResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.NotNil(t, result.Language)
	assert.Equal(t, "English", *result.Language)
	assert.Equal(t, "en", result.Locale)
	assert.Equal(t, "What is ?", result.Fragment)
}

func TestDetectCommand_Raw(t *testing.T) {
	out, err := execute(t, "", "detect", "Hello world. Xin chào bạn")
	require.NoError(t, err)
	assert.Equal(t, "English\n", out)

	out, err = execute(t, "", "detect", "--raw", "Hello world. Xin chào bạn")
	require.NoError(t, err)
	assert.Equal(t, "Vietnamese\n", out)
}

func TestDetectCommand_InvalidInput(t *testing.T) {
	_, err := execute(t, "\xff\xfe broken", "detect")
	assert.ErrorIs(t, err, text.ErrInvalidInput)

	_, err = execute(t, "", "detect", "--max-chars", "0", "hello")
	assert.ErrorIs(t, err, text.ErrInvalidInput)

	_, err = execute(t, "", "detect", "--normalize", "nfd", "hello")
	assert.ErrorIs(t, err, text.ErrInvalidInput)
}

func TestExtractCommand(t *testing.T) {
	out, err := execute(t, "", "extract", "Explain NDA concept. More text.", "What is 'machine learning'? second sentence")
	require.NoError(t, err)
	assert.Equal(t, "Explain concept.\nWhat is ?\n", out)

	out, err = execute(t, "", "extract", "--max-chars", "3", "abcdef")
	require.NoError(t, err)
	assert.Equal(t, "abc\n", out)
}

func TestReadInputs(t *testing.T) {
	inputs, err := readInputs(strings.NewReader("ignored"), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, inputs)

	inputs, err = readInputs(strings.NewReader("from stdin"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"from stdin"}, inputs)

	_, err = readInputs(strings.NewReader(""), []string{"ok", "\xc3\x28"})
	assert.ErrorIs(t, err, text.ErrInvalidInput)
}
