package ingest

import (
	"bufio"
	"fmt"
	"github.com/gostonefire/phonedirectory"
	"github.com/gostonefire/phonedirectory/internal/utils"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// maxLineLength - Longest line accepted by the scanner
const maxLineLength int = 64 * 1024

// linePattern - One directory line: "Last, First<TAB>(418) 656-2131<TAB>(418) 555-1234<TAB>email".
// First names may carry a nickname in parentheses, phone area codes may be written with or without parentheses.
var linePattern = regexp.MustCompile(
	`^([A-Za-z\s.\-]+),\s([A-Za-z\s.\-()]+?)\s?(\(?\d{3}\)?\s*\d{3}-\d{4})\s+(\(?\d{3}\)?\s*\d{3}-\d{4})\s+([\w.\-]+@[\w.\-]+\.[a-z]{2,}),?$`,
)

// LineFormatError - Custom error to inform that a line of a directory file is malformed
type LineFormatError struct {
	Line   int
	Text   string
	Reason string
}

// Error - Used to notify a malformed line
func (L LineFormatError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", L.Line, L.Reason, L.Text)
}

// Result - What a call to Parse produced
//   - TableSize is the table size from the size header line, 0 (zero) if the parser doesn't expect one
//   - Records is the well-formed records, in file order
//   - Skipped is the number of malformed lines skipped
type Result struct {
	TableSize int
	Records   []phonedirectory.Record
	Skipped   int
}

// Option - Configures a Parser
type Option func(*Parser)

// WithLogger - Sets the logger used to report skipped lines
func WithLogger(log *zap.SugaredLogger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// WithSkipInvalid - Set to true to skip malformed lines instead of stopping at the first one
func WithSkipInvalid(skipInvalid bool) Option {
	return func(p *Parser) {
		p.skipInvalid = skipInvalid
	}
}

// WithSizeHeader - Set to false if the first line of the input is a record rather than the table size
func WithSizeHeader(sizeHeader bool) Option {
	return func(p *Parser) {
		p.sizeHeader = sizeHeader
	}
}

// Parser - Turns directory text files into records ready for phonedirectory.Directory.BulkLoad
type Parser struct {
	log         *zap.SugaredLogger
	skipInvalid bool
	sizeHeader  bool
}

// NewParser - Returns a pointer to a new Parser. By default it expects a size header, stops at the first
// malformed line and logs nothing.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{
		log:        zap.NewNop().Sugar(),
		sizeHeader: true,
	}
	for _, opt := range opts {
		opt(parser)
	}

	return parser
}

// Parse - Reads a directory from r.
// Blank lines are ignored. Phone numbers are returned as 10 digits without punctuation.
//   - r is the directory text
//
// It returns:
//   - result is the parsed records along with the table size header
//   - err is a LineFormatError for the first malformed line, or when skipping invalid lines a *multierror.Error
//     holding a LineFormatError per skipped line (result is then complete), or a standard error if reading failed
func (P *Parser) Parse(r io.Reader) (result Result, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)

	var skipped *multierror.Error
	lineNo := 0
	headerDone := !P.sizeHeader
	for scanner.Scan() {
		lineNo++
		text := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		if !headerDone {
			headerDone = true
			result.TableSize, err = parseSizeHeader(lineNo, text)
			if err != nil {
				return
			}
			continue
		}

		var record phonedirectory.Record
		record, err = ParseLine(lineNo, text)
		if err != nil {
			if !P.skipInvalid {
				return
			}
			P.log.Warnw("skipping malformed line", "line", lineNo, "text", text)
			skipped = multierror.Append(skipped, err)
			err = nil
			result.Skipped++
			continue
		}
		result.Records = append(result.Records, record)
	}

	err = scanner.Err()
	if err != nil {
		err = fmt.Errorf("error while reading directory at line %d: %w", lineNo+1, err)
		return
	}

	P.log.Debugw("parsed directory", "records", len(result.Records), "skipped", result.Skipped, "tableSize", result.TableSize)

	err = skipped.ErrorOrNil()

	return
}

// ParseLine - Parses one record line.
//   - lineNo is the line number used in errors
//   - text is the line without line terminator
//
// It returns:
//   - record is the parsed record with normalized phone numbers
//   - err is of type LineFormatError if the line is malformed
func ParseLine(lineNo int, text string) (record phonedirectory.Record, err error) {
	m := linePattern.FindStringSubmatch(text)
	if m == nil {
		err = LineFormatError{Line: lineNo, Text: text, Reason: "does not match directory line format"}
		return
	}

	record = phonedirectory.Record{
		LastName:    strings.TrimSpace(m[1]),
		FirstName:   strings.TrimSpace(m[2]),
		FixedPhone:  utils.NormalizePhone(m[3]),
		MobilePhone: utils.NormalizePhone(m[4]),
		Email:       m[5],
	}

	return
}

// parseSizeHeader - Parses the first line holding the table size
func parseSizeHeader(lineNo int, text string) (size int, err error) {
	size, err = strconv.Atoi(strings.TrimSpace(text))
	if err != nil || size <= 0 {
		size = 0
		err = LineFormatError{Line: lineNo, Text: text, Reason: "table size must be a positive integer"}
	}

	return
}
