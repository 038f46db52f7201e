package birdhouse

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Exporter writes one panel's cut file into a directory, naming the file
// after the panel role. The render package provides DXF and SVG
// implementations.
type Exporter interface {
	Export(dir string, p Panel) error
}

// DisplaySink optionally visualizes generated panels. It is best-effort:
// a nil sink is skipped and sink failures never abort generation.
type DisplaySink interface {
	Display(p Panel) error
}

// Generate is the whole batch run: build every panel, verify the joint
// invariant, and write one cut file per panel and exporter into dir.
// Panel build failures and export failures are collected so the
// remaining panels still generate; the combined error reports them all.
func Generate(cfg Config, dir string, sink DisplaySink, exporters ...Exporter) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	var errs errlist
	panels, err := Panels(cfg)
	if err != nil {
		errs = append(errs, err)
	}
	if err := VerifyJoints(panels, Joints()); err != nil {
		errs = append(errs, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		errs = append(errs, fmt.Errorf("output directory: %w", err))
		return errs.orNil()
	}
	for _, p := range panels {
		for _, exp := range exporters {
			if err := exp.Export(dir, p); err != nil {
				errs = append(errs, fmt.Errorf("export %s: %w", p.Role, err))
			}
		}
		if sink != nil {
			if err := sink.Display(p); err != nil {
				errs = append(errs, fmt.Errorf("display %s: %w", p.Role, err))
			}
		}
	}
	return errs.orNil()
}

// errlist collects independent failures of a batch run.
type errlist []error

func (e errlist) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Is reports whether any collected error matches target.
func (e errlist) Is(target error) bool {
	for _, err := range e {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (e errlist) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
