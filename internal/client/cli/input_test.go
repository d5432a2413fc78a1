package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	assert.Error(t, err)
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\nb\n\n\n"), "Enter text", &out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)
}

func TestGetSecret(t *testing.T) {
	oldTerm, oldRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = oldTerm, oldRead })

	t.Run("terminal", func(t *testing.T) {
		isTerminal = func(int) bool { return true }
		readPassword = func(int) ([]byte, error) { return []byte(" tok123 \n"), nil }
		var out bytes.Buffer
		got, err := GetSecret(rdr("ignored\n"), "Access token", &out)
		require.NoError(t, err)
		assert.Equal(t, "tok123", got)
		assert.Equal(t, "Access token: \n", out.String())
	})

	t.Run("terminal error", func(t *testing.T) {
		isTerminal = func(int) bool { return true }
		readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
		var out bytes.Buffer
		_, err := GetSecret(rdr(""), "Access token", &out)
		assert.EqualError(t, err, "boom")
	})

	t.Run("piped", func(t *testing.T) {
		isTerminal = func(int) bool { return false }
		readPassword = func(int) ([]byte, error) { t.Fatal("unexpected terminal read"); return nil, nil }
		var out bytes.Buffer
		got, err := GetSecret(rdr("piped-token\n"), "Access token", &out)
		require.NoError(t, err)
		assert.Equal(t, "piped-token", got)
	})
}
