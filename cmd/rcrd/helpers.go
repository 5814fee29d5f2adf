package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hupe1980/rcrd/codec"
	"github.com/hupe1980/rcrd/persistence"
	"github.com/hupe1980/rcrd/record"
	"github.com/hupe1980/rcrd/vector"
	"github.com/spf13/cobra"
)

// readInput reads a file, or stdin for "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

// printRecord writes r as a JSON document or as text.
func printRecord(cmd *cobra.Command, r *record.Record, format string) error {
	w := cmd.OutOrStdout()
	switch format {
	case "json":
		data, err := persistence.MarshalDocument(r, codec.JSON{})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "text":
		fmt.Fprintln(w, r)
		for _, f := range r.Fields() {
			fmt.Fprintf(w, "  %s: %s\n", f.Name, formatVector(f.Vector))
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (valid: json, text)", format)
	}
}

func formatVector(v vector.Vector) string {
	switch x := v.(type) {
	case interface{ Format() []string }:
		return strings.Join(x.Format(), " ")
	case *record.Record:
		return x.String()
	default:
		return v.Kind().String()
	}
}

// indexFlags holds the mutually exclusive index selectors of slice.
type indexFlags struct {
	at     string
	except string
	mask   string
}

func (f *indexFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.at, "at", "", "comma-separated 0-based positions")
	cmd.Flags().StringVar(&f.except, "except", "", "comma-separated 0-based positions to drop")
	cmd.Flags().StringVar(&f.mask, "mask", "", "comma-separated booleans, one per element or a single one")
	cmd.MarkFlagsMutuallyExclusive("at", "except", "mask")
}

func (f *indexFlags) index() (vector.Index, error) {
	switch {
	case f.at != "":
		pos, err := parseInts(f.at)
		return vector.At(pos...), err
	case f.except != "":
		pos, err := parseInts(f.except)
		return vector.Except(pos...), err
	case f.mask != "":
		mask, err := parseBools(f.mask)
		return vector.Mask(mask...), err
	default:
		return vector.All(), nil
	}
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid position %q", part)
		}
		out = append(out, n)
	}
	return out, nil
}

func parseBools(s string) ([]bool, error) {
	var out []bool
	for _, part := range strings.Split(s, ",") {
		b, err := strconv.ParseBool(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid mask value %q", part)
		}
		out = append(out, b)
	}
	return out, nil
}

// transformFlags selects where a transformed record goes.
type transformFlags struct {
	out     string
	inPlace bool
	format  string
}

func (f *transformFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.out, "out", "", "store the result under this name")
	cmd.Flags().BoolVar(&f.inPlace, "in-place", false, "replace the source record with the result")
	cmd.Flags().StringVar(&f.format, "format", "text", "output format: json or text")
	cmd.MarkFlagsMutuallyExclusive("out", "in-place")
}

var errNoRecord = errors.New("transform returned no record")

// runTransform applies fn to the record under name, stores the result as
// requested and prints it.
func (a *app) runTransform(cmd *cobra.Command, name string, f *transformFlags, fn func(*record.Record) (*record.Record, error)) error {
	ctx := cmd.Context()

	var (
		out *record.Record
		err error
	)
	if f.inPlace {
		out, err = a.db.Apply(ctx, name, fn)
	} else {
		var r *record.Record
		if r, err = a.db.Get(ctx, name); err != nil {
			return err
		}
		out, err = fn(r)
		if err == nil && out == nil {
			err = errNoRecord
		}
		if err == nil && f.out != "" {
			err = a.db.Put(ctx, f.out, out)
		}
	}
	if err != nil {
		return err
	}
	return printRecord(cmd, out, f.format)
}
