package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultMaxLineSize is the longest line the scanner accepts.
const DefaultMaxLineSize = 1024 * 1024

// Option configures a parse.
type Option func(*options)

type options struct {
	logger      zerolog.Logger
	maxLineSize int
	source      string
}

// WithLogger sets the logger that receives dropped-row diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMaxLineSize overrides DefaultMaxLineSize.
func WithMaxLineSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLineSize = n
		}
	}
}

// WithSource records the origin of the stream in the document.
func WithSource(source string) Option {
	return func(o *options) {
		o.source = source
	}
}

// ParseFile opens path and parses it. Files ending in .gz or .zst are
// decompressed first. The file is closed on every return.
func ParseFile(ctx context.Context, path string, opts ...Option) (*LogDocument, error) {
	f, err := openLog(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(ctx, f, append([]Option{WithSource(path)}, opts...)...)
}

// Parse reads a simulation log from r.
//
// A stream without run markers yields a document with zero runs. Data lines
// that do not coerce to numbers are dropped; only read failures and context
// cancellation abort the parse.
func Parse(ctx context.Context, r io.Reader, opts ...Option) (*LogDocument, error) {
	o := options{
		logger:      zerolog.Nop(),
		maxLineSize: DefaultMaxLineSize,
	}
	for _, opt := range opts {
		opt(&o)
	}

	st := &state{
		doc:    &LogDocument{Source: o.source},
		logger: o.logger,
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, o.maxLineSize)), o.maxLineSize)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		st.doc.LinesRead++
		st.feed(strings.Fields(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		if o.source != "" {
			return nil, fmt.Errorf("reading %s: %w", o.source, err)
		}
		return nil, fmt.Errorf("reading log: %w", err)
	}

	for _, run := range st.doc.Runs {
		run.buildIndex()
	}
	return st.doc, nil
}

// state is the line-driven state machine behind Parse.
type state struct {
	doc          *LogDocument
	logger       zerolog.Logger
	current      *Run
	header       []string
	capturing    bool
	updateHeader bool
}

func (s *state) feed(tokens []string) {
	if len(tokens) < 2 {
		s.doc.LinesSkipped++
		return
	}

	switch classify(tokens) {
	case lineRun:
		s.startRun(tokens)
	case lineStep:
		s.capturing = true
		if s.updateHeader {
			s.captureHeader(tokens)
			return
		}
		// A repeated step line keeps the header; its values are data.
		s.appendRow(tokens[1:], tokens)
	case lineLoop:
		s.capturing = false
	case lineData:
		if s.capturing {
			s.appendRow(tokens, tokens)
		}
	}
}

// startRun opens a new run. The capturing state is left untouched.
func (s *state) startRun(tokens []string) {
	s.current = &Run{
		Index:  len(s.doc.Runs) + 1,
		Header: s.header,
		Every:  containsToken(tokens, "every"),
	}
	s.doc.Runs = append(s.doc.Runs, s.current)
	s.updateHeader = true
}

func (s *state) captureHeader(tokens []string) {
	s.updateHeader = false
	s.header = append([]string(nil), tokens...)
	if s.current != nil {
		s.current.Header = s.header
	}
}

func (s *state) appendRow(fields, line []string) {
	if s.current == nil {
		s.logger.Debug().Strs("line", line).Msg("data outside of any run")
		return
	}

	row, err := coerceRow(fields, len(s.current.Header))
	if err != nil {
		s.current.Dropped++
		s.logger.Debug().
			Int("run", s.current.Index).
			Strs("line", line).
			Err(err).
			Msg("dropped row")
		return
	}
	s.current.Rows = append(s.current.Rows, row)
}

// rowError explains why a data line was not appended. It never leaves the
// package.
type rowError struct {
	token string
	width int
	want  int
}

func (e *rowError) Error() string {
	if e.token != "" {
		return fmt.Sprintf("non-numeric token %q", e.token)
	}
	return fmt.Sprintf("row has %d fields, header has %d", e.width, e.want)
}

func coerceRow(fields []string, width int) ([]float64, error) {
	if len(fields) != width {
		return nil, &rowError{width: len(fields), want: width}
	}
	row := make([]float64, len(fields))
	for i, tok := range fields {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &rowError{token: tok}
		}
		row[i] = v
	}
	return row, nil
}
