package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"domain-finder/internal/config"
	"domain-finder/internal/tld"
)

func TestRunMenuCustomSelection(t *testing.T) {
	cfg := config.Default()

	in := strings.NewReader("4\n1,2\ncustom\n5\n25\n")
	var out bytes.Buffer

	require.NoError(t, RunMenu(cfg, in, &out))

	assert.Equal(t, 4, cfg.Domain.Length)
	assert.Equal(t, []string{".com", ".net"}, cfg.Domain.TLDs)
	assert.Equal(t, config.StrategyCustom, cfg.Scanner.Strategy)
	assert.Equal(t, 5, cfg.Scanner.BatchSize)
	assert.Equal(t, 25, cfg.Scanner.Workers)
}

func TestRunMenuEmptyInputKeepsDefaults(t *testing.T) {
	cfg := config.Default()

	// Empty strategy falls back to custom, which asks for batch size
	// and workers as well.
	in := strings.NewReader("\n\n\n\n\n")
	var out bytes.Buffer

	require.NoError(t, RunMenu(cfg, in, &out))

	assert.Equal(t, 3, cfg.Domain.Length)
	assert.Equal(t, []string{".com"}, cfg.Domain.TLDs)
	assert.Equal(t, config.StrategyCustom, cfg.Scanner.Strategy)
	assert.Equal(t, 10, cfg.Scanner.BatchSize)
	assert.Equal(t, 30, cfg.Scanner.Workers)
}

func TestRunMenuRepromptsOnBadInput(t *testing.T) {
	cfg := config.Default()

	in := strings.NewReader("9\nx\n4\n0\nbogus\nfast\n")
	var out bytes.Buffer

	require.NoError(t, RunMenu(cfg, in, &out))

	assert.Equal(t, 4, cfg.Domain.Length)
	assert.Equal(t, tld.All(), cfg.Domain.TLDs)
	assert.Equal(t, config.StrategyFast, cfg.Scanner.Strategy)
	assert.Contains(t, out.String(), "between 2 and 6")
	assert.Contains(t, out.String(), "Unknown strategy")
}

func TestRunMenuEOF(t *testing.T) {
	cfg := config.Default()

	in := strings.NewReader("4\n")
	var out bytes.Buffer

	err := RunMenu(cfg, in, &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestParseTLDSelection(t *testing.T) {
	all := tld.All()

	t.Run("numbers", func(t *testing.T) {
		got, err := parseTLDSelection("1,3", all)
		require.NoError(t, err)
		assert.Equal(t, []string{all[0], all[2]}, got)
	})

	t.Run("zero selects all", func(t *testing.T) {
		got, err := parseTLDSelection("0", all)
		require.NoError(t, err)
		assert.Equal(t, all, got)
	})

	t.Run("all keyword", func(t *testing.T) {
		got, err := parseTLDSelection("ALL", all)
		require.NoError(t, err)
		assert.Equal(t, all, got)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		got, err := parseTLDSelection("2,2,2", all)
		require.NoError(t, err)
		assert.Equal(t, []string{all[1]}, got)
	})

	t.Run("range", func(t *testing.T) {
		got, err := parseTLDSelection("1-3", all)
		require.NoError(t, err)
		assert.Equal(t, []string{all[0], all[1], all[2]}, got)
	})

	t.Run("range mixed with numbers", func(t *testing.T) {
		got, err := parseTLDSelection("1-2,5", all)
		require.NoError(t, err)
		assert.Equal(t, []string{all[0], all[1], all[4]}, got)
	})

	t.Run("literal suffix", func(t *testing.T) {
		got, err := parseTLDSelection("1,.XYZ", all)
		require.NoError(t, err)
		assert.Equal(t, []string{all[0], ".xyz"}, got)
	})

	t.Run("reversed range", func(t *testing.T) {
		_, err := parseTLDSelection("5-2", all)
		assert.Error(t, err)
	})

	t.Run("range out of bounds", func(t *testing.T) {
		_, err := parseTLDSelection("1-999", all)
		assert.Error(t, err)
	})

	t.Run("spaces tolerated", func(t *testing.T) {
		got, err := parseTLDSelection(" 1 , 2 ", all)
		require.NoError(t, err)
		assert.Equal(t, []string{all[0], all[1]}, got)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := parseTLDSelection("999", all)
		assert.Error(t, err)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := parseTLDSelection("one", all)
		assert.Error(t, err)
	})

	t.Run("nothing picked", func(t *testing.T) {
		_, err := parseTLDSelection(",", all)
		assert.Error(t, err)
	})
}
