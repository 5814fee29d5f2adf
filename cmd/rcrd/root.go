package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/hupe1980/rcrd"
	"github.com/hupe1980/rcrd/codec"
	"github.com/spf13/cobra"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	configFile string
	db         *rcrd.DB
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "rcrd",
		Short: "rcrd stores and transforms record vectors",
		Long: `rcrd keeps record vectors (rows of named, equal-length fields) in a local
directory, MinIO or S3, and applies subscript operations to them.

Configuration is read from flags, RCRD_* environment variables and
rcrd.yaml (current directory or ~/.rcrd).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.open,
	}

	f := cmd.PersistentFlags()
	f.StringVar(&a.configFile, "config", "", "config file (default: ./rcrd.yaml or ~/.rcrd/rcrd.yaml)")
	f.String("backend", defaultBackend, "storage backend: local, memory, minio or s3")
	f.String("dir", defaultDir, "data directory for the local backend")
	f.String("bucket", "", "bucket for the minio and s3 backends")
	f.String("prefix", "", "key prefix for all records")
	f.String("endpoint", "", "endpoint for minio or an s3-compatible service")
	f.String("region", "", "bucket region")
	f.String("access-key", "", "minio access key")
	f.String("secret-key", "", "minio secret key")
	f.Bool("insecure", false, "use plain HTTP for minio")
	f.String("codec", "go-json", "codec for new records: json or go-json")
	f.String("compression", "none", "compression for new records: none, lz4 or zstd")
	f.Int("concurrency", 4, "parallel store calls for bulk commands")
	f.Int64("io-limit", 0, "blob traffic limit in bytes per second (0: unlimited)")
	f.Int64("cache-bytes", 0, "in-memory blob cache size (0: disabled)")
	f.String("log-level", "warn", "log level: debug, info, warn or error")

	cmd.AddCommand(
		newPutCmd(a),
		newGetCmd(a),
		newListCmd(a),
		newRemoveCmd(a),
		newSliceCmd(a),
		newResizeCmd(a),
		newRepCmd(a),
	)
	return cmd
}

// open loads configuration and opens the database.
func (a *app) open(cmd *cobra.Command, _ []string) error {
	v, err := loadConfig(a.configFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	c, ok := codec.ByName(v.GetString(cfgKeyCodec))
	if !ok {
		return fmt.Errorf("unknown codec %q (valid: %s)", v.GetString(cfgKeyCodec), strings.Join(codec.Names(), ", "))
	}
	comp, err := codec.ParseCompression(v.GetString(cfgKeyCompression))
	if err != nil {
		return err
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(cfgKeyLogLevel))); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	store, err := openStore(cmd.Context(), v)
	if err != nil {
		return err
	}

	a.db, err = rcrd.Open(store,
		rcrd.WithCodec(c),
		rcrd.WithCompression(comp),
		rcrd.WithPrefix(v.GetString(cfgKeyPrefix)),
		rcrd.WithConcurrency(v.GetInt(cfgKeyConcurrency)),
		rcrd.WithIOLimit(v.GetInt64(cfgKeyIOLimit)),
		rcrd.WithCache(v.GetInt64(cfgKeyCache), 0),
		rcrd.WithLogger(rcrd.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))),
	)
	return err
}
