package main

import (
	"fmt"
	"strconv"

	"github.com/hupe1980/rcrd/codec"
	"github.com/hupe1980/rcrd/persistence"
	"github.com/hupe1980/rcrd/record"
	"github.com/hupe1980/rcrd/vector"
	"github.com/spf13/cobra"
)

func newPutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "put <name> <file|->",
		Short: "Store a record from a JSON document",
		Long: `Put reads a record document and stores it under name.

Example document:
  {"class":"record","len":2,"fields":[
    {"name":"id","kind":"int","ints":[1,2]},
    {"name":"name","kind":"string","strings":["ada",""],"missing":[1]}]}`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[1])
			if err != nil {
				return err
			}
			r, err := persistence.UnmarshalDocument(data, codec.JSON{})
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[1], err)
			}
			return a.db.Put(cmd.Context(), args[0], r)
		},
	}
}

func newGetCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "get <name> [name...]",
		Short: "Print stored records",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := a.db.GetMany(cmd.Context(), args)
			if err != nil {
				return err
			}
			for _, r := range rs {
				if err := printRecord(cmd, r, format); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or text")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "ls [prefix]",
		Aliases: []string{"list"},
		Short:   "List record names",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var prefix string
			if len(args) == 1 {
				prefix = args[0]
			}
			names, err := a.db.List(cmd.Context(), prefix)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <name> [name...]",
		Aliases: []string{"delete"},
		Short:   "Delete records",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				if err := a.db.Delete(cmd.Context(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newSliceCmd(a *app) *cobra.Command {
	var (
		idx     indexFlags
		tf      transformFlags
		element bool
	)
	cmd := &cobra.Command{
		Use:   "slice <name>",
		Short: "Select rows of a record",
		Long: `Slice selects rows by position, by exclusion or by logical mask.
With --element exactly one row must be selected.

Example:
  rcrd slice people --at 0,2
  rcrd slice people --except 1 --out people-trimmed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ix, err := idx.index()
			if err != nil {
				return err
			}
			return a.runTransform(cmd, args[0], &tf, func(r *record.Record) (*record.Record, error) {
				if element {
					return r.Element(ix)
				}
				return r.Slice(ix)
			})
		},
	}
	idx.register(cmd)
	tf.register(cmd)
	cmd.Flags().BoolVar(&element, "element", false, "select a single row")
	return cmd
}

func newResizeCmd(a *app) *cobra.Command {
	var tf transformFlags
	cmd := &cobra.Command{
		Use:   "resize <name> <n>",
		Short: "Truncate a record or pad it with missing rows",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid size %q", args[1])
			}
			return a.runTransform(cmd, args[0], &tf, func(r *record.Record) (*record.Record, error) {
				return r.Resize(n)
			})
		},
	}
	tf.register(cmd)
	return cmd
}

func newRepCmd(a *app) *cobra.Command {
	var (
		tf                    transformFlags
		times, each, lengthTo int
	)
	cmd := &cobra.Command{
		Use:   "rep <name>",
		Short: "Repeat the rows of a record",
		Long: `Rep repeats each row --each times, then the whole sequence --times
times. --length-out recycles rows up to an exact length and ignores --times.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := vector.Times(times).Each(each)
			if cmd.Flags().Changed("length-out") {
				p = p.LengthOut(lengthTo)
			}
			return a.runTransform(cmd, args[0], &tf, func(r *record.Record) (*record.Record, error) {
				return r.Repeat(p)
			})
		},
	}
	tf.register(cmd)
	cmd.Flags().IntVar(&times, "times", 1, "repeat the whole sequence")
	cmd.Flags().IntVar(&each, "each", 1, "repeat each row")
	cmd.Flags().IntVar(&lengthTo, "length-out", 0, "exact output length")
	return cmd
}
