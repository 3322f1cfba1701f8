package main

import (
	"fmt"
	"io"
	"strconv"
	"text/template"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	humanize "github.com/dustin/go-humanize"

	"github.com/mutagen-io/winstat/pkg/configuration/global"
	"github.com/mutagen-io/winstat/pkg/encoding"
	"github.com/mutagen-io/winstat/pkg/stat"
)

// renderer renders statuses. Statuses are added in output order and flush is
// called once all statuses have been added.
type renderer interface {
	// add renders or buffers a status.
	add(status *stat.Status) error
	// flush emits any buffered output.
	flush() error
}

// newRenderer creates a renderer for the specified format. If a template is
// provided, it takes precedence over the format.
func newRenderer(writer io.Writer, format string, human bool, tmpl *template.Template) (renderer, error) {
	if tmpl != nil {
		return &templateRenderer{writer: writer, template: tmpl}, nil
	}
	switch format {
	case global.FormatInspect:
		return &inspectRenderer{writer: writer}, nil
	case global.FormatPretty:
		return &prettyRenderer{writer: writer, human: human}, nil
	case global.FormatJSON:
		return &recordRenderer{writer: writer, encode: encoding.EncodeJSON}, nil
	case global.FormatYAML:
		return &recordRenderer{writer: writer, encode: encoding.EncodeYAML}, nil
	default:
		return nil, errors.Errorf("unknown output format: %s", format)
	}
}

// inspectRenderer renders each status on a single line.
type inspectRenderer struct {
	// writer is the output writer.
	writer io.Writer
}

func (r *inspectRenderer) add(status *stat.Status) error {
	_, err := fmt.Fprintln(r.writer, status)
	return err
}

func (r *inspectRenderer) flush() error {
	return nil
}

// prettyNameWidth is the width of the name column in pretty output, which is
// the length of the longest field name ("executable_real").
const prettyNameWidth = 15

// prettyRenderer renders each status as an aligned table of fields.
type prettyRenderer struct {
	// writer is the output writer.
	writer io.Writer
	// human indicates whether or not sizes should be rendered in IEC units.
	human bool
	// count is the number of statuses rendered so far.
	count int
}

// humanizeField renders size-valued fields in IEC units.
func humanizeField(field stat.Field) string {
	if field.Name != "size" && field.Name != "blksize" {
		return field.Value
	}
	value, err := strconv.ParseUint(field.Value, 10, 64)
	if err != nil {
		return field.Value
	}
	return humanize.IBytes(value)
}

func (r *prettyRenderer) add(status *stat.Status) error {
	// Separate statuses with an empty line.
	if r.count > 0 {
		if _, err := fmt.Fprintln(r.writer); err != nil {
			return err
		}
	}
	r.count++

	// Print the header.
	if _, err := fmt.Fprintln(r.writer, color.New(color.Bold).Sprint(status.Path())); err != nil {
		return err
	}

	// Print fields, dimming unknown values.
	for _, field := range status.Fields() {
		value := field.Value
		if value == "nil" {
			value = color.New(color.Faint).Sprint(value)
		} else if r.human {
			value = humanizeField(field)
		}
		if _, err := fmt.Fprintf(r.writer, "  %-*s %s\n", prettyNameWidth, field.Name, value); err != nil {
			return err
		}
	}
	return nil
}

func (r *prettyRenderer) flush() error {
	return nil
}

// recordRenderer buffers structured records and encodes them as a single
// list.
type recordRenderer struct {
	// writer is the output writer.
	writer io.Writer
	// encode is the encoding function.
	encode func(io.Writer, interface{}) error
	// records are the buffered records.
	records []*stat.Record
}

func (r *recordRenderer) add(status *stat.Status) error {
	r.records = append(r.records, status.Record())
	return nil
}

func (r *recordRenderer) flush() error {
	if r.records == nil {
		r.records = []*stat.Record{}
	}
	return r.encode(r.writer, r.records)
}

// templateRenderer renders each status's record with a user-provided
// template.
type templateRenderer struct {
	// writer is the output writer.
	writer io.Writer
	// template is the output template.
	template *template.Template
}

func (r *templateRenderer) add(status *stat.Status) error {
	if err := r.template.Execute(r.writer, status.Record()); err != nil {
		return errors.Wrap(err, "unable to execute template")
	}
	_, err := fmt.Fprintln(r.writer)
	return err
}

func (r *templateRenderer) flush() error {
	return nil
}
