package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/miretskiy/dtypes/dtype"
	"github.com/miretskiy/dtypes/internal/config"
	"github.com/miretskiy/dtypes/internal/log"
)

func newListCmd(a *app) *cobra.Command {
	var family string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every registered data type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var want dtype.Family
			if family != "" {
				f, err := dtype.ParseFamily(family)
				if err != nil {
					return err
				}
				want = f
			}

			var recs []record
			for _, d := range dtype.Values() {
				if want != 0 && d.Family() != want {
					continue
				}
				recs = append(recs, newRecord(d))
			}
			log.Debug(log.CatRegistry, "Listing data types", "family", family, "count", len(recs))
			return writeRecords(cmd.OutOrStdout(), a.cfg.Format, recs)
		},
	}
	cmd.Flags().StringVar(&family, "family", "",
		"only list one family: boolean, signed_int, unsigned_int, float, hybrid_float")
	return cmd
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect NAME...",
		Short: "Show the full record of the named data types",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs := make([]record, 0, len(args))
			for _, name := range args {
				d, err := dtype.Parse(name)
				if err != nil {
					log.ErrorErr(log.CatRegistry, "Lookup failed", err, "name", name)
					return err
				}
				log.Debug(log.CatRegistry, "Lookup", "name", name, "code", d.Code())
				recs = append(recs, newRecord(d))
			}
			return writeRecords(cmd.OutOrStdout(), a.cfg.Format, recs)
		},
	}
}

func newSizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "size NAME COUNT",
		Short: "Compute the bytes needed to store COUNT packed elements",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dtype.Parse(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("count %q: %w", args[1], err)
			}
			bytes, err := d.StorageBytes(n)
			if err != nil {
				return err
			}
			log.Debug(log.CatRegistry, "Storage size", "dtype", d, "count", n, "bytes", bytes)
			return writeSize(cmd.OutOrStdout(), a.cfg.Format, sizeResult{
				DType: d,
				Count: n,
				Bits:  d.Bits(),
				Bytes: bytes,
			})
		},
	}
}

func newConfigInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config-init [PATH]",
		Short: "Write a default config file",
		Args:  cobra.MaximumNArgs(1),
		// The target file usually does not exist yet, so skip reading it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd, false)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfgFile
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				p, err := config.DefaultConfigPath()
				if err != nil {
					return err
				}
				path = p
			}
			if err := config.WriteDefaultConfig(path); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}
}
