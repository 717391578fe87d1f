package main

import (
	"errors"
	"fmt"
	"github.com/gostonefire/phonedirectory"
	"github.com/gostonefire/phonedirectory/hashfunc"
	"github.com/gostonefire/phonedirectory/ingest"
	"github.com/gostonefire/phonedirectory/internal/conf"
	"github.com/gostonefire/phonedirectory/report"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"io"
	"os"
	"strings"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) (err error) {
	cfg, err := conf.Parse("phonedirectory", args)
	if err != nil {
		return
	}
	if cfg.File == "" {
		err = fmt.Errorf("a directory file must be given with -file")
		return
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	d, err := load(cfg, log)
	if err != nil {
		return
	}

	err = report.WriteStatistics(stdout, d)
	if err != nil {
		return
	}

	if cfg.Print {
		err = report.WriteRecords(stdout, d)
		if err != nil {
			return
		}
	}

	if cfg.Name != "" {
		lastName, firstName, _ := strings.Cut(cfg.Name, ",")
		err = lookup(stdout, log, func() (phonedirectory.Record, error) {
			return d.FindByName(strings.TrimSpace(lastName), strings.TrimSpace(firstName))
		})
		if err != nil {
			return
		}
	}

	if cfg.Phone != "" {
		err = lookup(stdout, log, func() (phonedirectory.Record, error) {
			return d.FindByPhone(cfg.Phone)
		})
	}

	return
}

// load - Parses the directory file and bulk loads it
func load(cfg *conf.Config, log *zap.SugaredLogger) (d *phonedirectory.Directory, err error) {
	f, err := os.Open(cfg.File)
	if err != nil {
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	parser := ingest.NewParser(
		ingest.WithLogger(log),
		ingest.WithSkipInvalid(cfg.SkipInvalid),
		ingest.WithSizeHeader(cfg.SizeHeader),
	)
	result, err := parser.Parse(f)
	if err != nil {
		if !skippable(cfg, err) {
			err = fmt.Errorf("error while parsing %s: %w", cfg.File, err)
			return
		}
		log.Warnw("skipped malformed lines", "file", cfg.File, "skipped", result.Skipped)
		err = nil
	}

	buckets := cfg.Buckets
	if buckets == 0 {
		buckets = result.TableSize
	}

	hashAlgorithm, err := hashfunc.ByName(cfg.HashAlgorithm)
	if err != nil {
		return
	}

	policy := phonedirectory.AbortOnError
	if cfg.SkipInvalid {
		policy = phonedirectory.SkipOnError
	}

	d, loaded, err := phonedirectory.NewFromRecords(phonedirectory.Conf{
		NameBuckets:   buckets,
		PhoneBuckets:  buckets,
		HashAlgorithm: hashAlgorithm,
	}, result.Records, policy)
	if err != nil {
		if d == nil || !skippable(cfg, err) {
			err = fmt.Errorf("error while loading %s: %w", cfg.File, err)
			return
		}
		log.Warnw("skipped rejected records", "file", cfg.File, "rejected", len(result.Records)-loaded, "error", err)
		err = nil
	}

	log.Infow("directory loaded", "file", cfg.File, "records", loaded, "buckets", buckets, "hash", cfg.HashAlgorithm)

	return
}

// lookup - Runs a find and writes the record, a miss is logged rather than failing the command
func lookup(stdout io.Writer, log *zap.SugaredLogger, find func() (phonedirectory.Record, error)) (err error) {
	record, err := find()
	if errors.Is(err, phonedirectory.NotFound{}) {
		log.Infow("no matching entry", "error", err)
		_, err = fmt.Fprintln(stdout, "not found")
		return
	}
	if err != nil {
		return
	}

	err = report.WriteRecord(stdout, record)

	return
}

// skippable - Returns true if err only collects skipped lines or records and the command runs with -skip-invalid
func skippable(cfg *conf.Config, err error) bool {
	var merr *multierror.Error
	return cfg.SkipInvalid && errors.As(err, &merr)
}

// newLogger - Returns a console logger writing to stderr at the given level
func newLogger(level string) (logger *zap.Logger, err error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return
	}

	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.DisableStacktrace = true
	logger, err = zc.Build()

	return
}
