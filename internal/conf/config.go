package conf

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Config - Settings for the phonedirectory command
//   - File is the directory text file to load
//   - Buckets is the number of buckets for each index, 0 means take it from the file size header or DefaultTableSize
//   - HashAlgorithm is the name of the hash algorithm to use for both indices
//   - SkipInvalid set to true skips malformed lines and rejected records instead of aborting
//   - SizeHeader set to true expects the first line of the file to hold the table size
//   - Print set to true prints every record after loading
//   - Name is a "Last, First" name to look up
//   - Phone is a fixed phone number to look up
//   - LogLevel is the zap level name (debug, info, warn, error)
type Config struct {
	File          string
	Buckets       int
	HashAlgorithm string
	SkipInvalid   bool
	SizeHeader    bool
	Print         bool
	Name          string
	Phone         string
	LogLevel      string
}

// Parse - Parses the given arguments (typically os.Args[1:]) into a Config, using environment variables
// prefixed by EnvPrefix as defaults.
func Parse(name string, args []string) (cfg *Config, err error) {
	cfg = &Config{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.File, "file", envStr("FILE", ""), "directory file to load")
	fs.IntVar(&cfg.Buckets, "buckets", envInt("BUCKETS", 0), "buckets per index (0 = size header or default)")
	fs.StringVar(&cfg.HashAlgorithm, "hash", envStr("HASH", CRC32), "hash algorithm (crc32, xxhash, fnv)")
	fs.BoolVar(&cfg.SkipInvalid, "skip-invalid", envBool("SKIP_INVALID", false), "skip invalid lines and records instead of aborting")
	fs.BoolVar(&cfg.SizeHeader, "size-header", envBool("SIZE_HEADER", true), "first line of the file holds the table size")
	fs.BoolVar(&cfg.Print, "print", false, "print all records")
	fs.StringVar(&cfg.Name, "name", "", `look up a "Last, First" name`)
	fs.StringVar(&cfg.Phone, "phone", "", "look up a fixed phone number")
	fs.StringVar(&cfg.LogLevel, "log-level", envStr("LOG_LEVEL", "info"), "log level (debug, info, warn, error)")

	err = fs.Parse(args)
	if err != nil {
		return
	}

	if cfg.Buckets < 0 {
		err = fmt.Errorf("buckets must be 0 (zero) or a positive value")
	}

	return
}

func envStr(key, fallback string) string {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
