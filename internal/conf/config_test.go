//go:build unit

package conf

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParse(t *testing.T) {
	t.Run("uses defaults when nothing is given", func(t *testing.T) {
		// Execute
		cfg, err := Parse("test", []string{})

		// Check
		assert.NoError(t, err, "parses empty arguments")
		assert.Equal(t, "", cfg.File, "no file")
		assert.Equal(t, 0, cfg.Buckets, "buckets from header or default")
		assert.Equal(t, CRC32, cfg.HashAlgorithm, "default hash algorithm")
		assert.False(t, cfg.SkipInvalid, "aborts on invalid input by default")
		assert.True(t, cfg.SizeHeader, "expects a size header by default")
		assert.Equal(t, "info", cfg.LogLevel, "default log level")
	})

	t.Run("parses flags", func(t *testing.T) {
		// Execute
		cfg, err := Parse("test", []string{"-file", "bottin.txt", "-buckets", "2000", "-hash", "xxhash", "-skip-invalid", "-name", "Doe, John"})

		// Check
		assert.NoError(t, err, "parses flags")
		assert.Equal(t, "bottin.txt", cfg.File, "file preserved")
		assert.Equal(t, 2000, cfg.Buckets, "buckets preserved")
		assert.Equal(t, XXHash, cfg.HashAlgorithm, "hash algorithm preserved")
		assert.True(t, cfg.SkipInvalid, "skip invalid preserved")
		assert.Equal(t, "Doe, John", cfg.Name, "name preserved")
	})

	t.Run("takes defaults from environment", func(t *testing.T) {
		// Prepare
		t.Setenv(EnvPrefix+"BUCKETS", "500")
		t.Setenv(EnvPrefix+"HASH", FNV)
		t.Setenv(EnvPrefix+"SIZE_HEADER", "false")

		// Execute
		cfg, err := Parse("test", []string{})

		// Check
		assert.NoError(t, err, "parses with environment")
		assert.Equal(t, 500, cfg.Buckets, "buckets from environment")
		assert.Equal(t, FNV, cfg.HashAlgorithm, "hash algorithm from environment")
		assert.False(t, cfg.SizeHeader, "size header from environment")
	})

	t.Run("flags override environment", func(t *testing.T) {
		// Prepare
		t.Setenv(EnvPrefix+"BUCKETS", "500")

		// Execute
		cfg, err := Parse("test", []string{"-buckets", "7"})

		// Check
		assert.NoError(t, err, "parses flags")
		assert.Equal(t, 7, cfg.Buckets, "flag wins")
	})

	t.Run("error when buckets is negative", func(t *testing.T) {
		// Execute
		_, err := Parse("test", []string{"-buckets", "-1"})

		// Check
		assert.Error(t, err)
	})

	t.Run("error on unknown flag", func(t *testing.T) {
		// Execute
		_, err := Parse("test", []string{"-nope"})

		// Check
		assert.Error(t, err)
	})
}
