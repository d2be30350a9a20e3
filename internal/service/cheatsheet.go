package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"oopcheatsheet/internal/calculator"
	"oopcheatsheet/internal/metrics"
	"oopcheatsheet/internal/model"
)

var (
	ErrUnknownSection = errors.New("unknown section")
	ErrWriterNil      = errors.New("writer is nil")
)

// Options tune the numeric output of the cheatsheet.
type Options struct {
	// Pi is the approximation used for circle areas. Zero means model.ApproxPi.
	Pi float64
	// Precision is the number of decimals areas are rounded to.
	Precision int
}

// DefaultOptions reproduces the classic output ("Area: 28.26").
func DefaultOptions() Options {
	return Options{Pi: model.ApproxPi, Precision: 2}
}

// Cheatsheet defines the demonstration use cases.
type Cheatsheet interface {
	// Sections returns the section names in execution order.
	Sections() []string

	// Run writes every section to w.
	Run(ctx context.Context, w io.Writer) error

	// RunSection writes a single section to w.
	RunSection(ctx context.Context, w io.Writer, name string) error

	// RunSections writes the named sections to w in the given order. All names
	// are validated before anything is written.
	RunSections(ctx context.Context, w io.Writer, names ...string) error
}

// section is one step of the demonstration.
type section struct {
	name string
	run  func(ctx context.Context, p *printer) error
}

// cheatsheet is a concrete implementation of Cheatsheet.
type cheatsheet struct {
	log      *slog.Logger
	rec      *metrics.Recorder
	tracer   trace.Tracer
	opts     Options
	calc     *calculator.Calculator
	sections []section
}

// NewCheatsheet constructs a new Cheatsheet. rec may be nil to disable metrics.
func NewCheatsheet(log *slog.Logger, rec *metrics.Recorder, opts Options) Cheatsheet {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if opts.Pi <= 0 {
		opts.Pi = model.ApproxPi
	}
	s := &cheatsheet{
		log:    log,
		rec:    rec,
		tracer: otel.Tracer("oopcheatsheet/internal/service"),
		opts:   opts,
		calc:   calculator.New(),
	}
	s.sections = []section{
		{name: "objects", run: s.objects},
		{name: "overloading", run: s.overloading},
		{name: "encapsulation", run: s.encapsulation},
		{name: "polymorphism", run: s.polymorphism},
		{name: "calculator", run: s.calculator},
		{name: "static", run: s.static},
	}
	return s
}

func (s *cheatsheet) Sections() []string {
	names := make([]string, 0, len(s.sections))
	for _, sec := range s.sections {
		names = append(names, sec.name)
	}
	return names
}

func (s *cheatsheet) Run(ctx context.Context, w io.Writer) error {
	return s.RunSections(ctx, w, s.Sections()...)
}

func (s *cheatsheet) RunSection(ctx context.Context, w io.Writer, name string) error {
	return s.RunSections(ctx, w, name)
}

func (s *cheatsheet) RunSections(ctx context.Context, w io.Writer, names ...string) error {
	if w == nil {
		return ErrWriterNil
	}

	// Resolve every name before writing anything
	selected := make([]section, 0, len(names))
	for _, name := range names {
		sec, ok := s.lookup(name)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSection, name)
		}
		selected = append(selected, sec)
	}

	runID := uuid.NewString()
	log := s.log.With(slog.String("run_id", runID))
	log.Info("run_started", slog.Int("sections", len(selected)))

	p := &printer{w: w}
	for _, sec := range selected {
		if err := ctx.Err(); err != nil {
			log.Warn("run_cancelled", slog.String("next_section", sec.name), slog.String("error", err.Error()))
			return err
		}
		if err := s.runOne(ctx, log, runID, sec, p); err != nil {
			return err
		}
	}

	log.Info("run_finished")
	return nil
}

func (s *cheatsheet) lookup(name string) (section, bool) {
	for _, sec := range s.sections {
		if sec.name == name {
			return sec, true
		}
	}
	return section{}, false
}

func (s *cheatsheet) runOne(ctx context.Context, log *slog.Logger, runID string, sec section, p *printer) error {
	ctx, span := s.tracer.Start(ctx, "section."+sec.name,
		trace.WithAttributes(
			attribute.String("run_id", runID),
			attribute.String("section", sec.name),
		),
	)
	defer span.End()

	ctx = withLogger(ctx, log.With(slog.String("section", sec.name)))
	s.rec.SectionRun(sec.name)

	if err := sec.run(ctx, p); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("section_failed", slog.String("section", sec.name), slog.String("error", err.Error()))
		return fmt.Errorf("section %s: %w", sec.name, err)
	}

	log.Debug("section_finished", slog.String("section", sec.name))
	return nil
}

// printer writes lines and remembers the first write error; later writes are
// skipped once one has failed.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(a ...any) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintln(p.w, a...); err != nil {
		p.err = fmt.Errorf("write output: %w", err)
	}
}

func (p *printer) printf(format string, a ...any) {
	p.println(fmt.Sprintf(format, a...))
}

type loggerKey struct{}

func withLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

func loggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return log
	}
	return fallback
}
