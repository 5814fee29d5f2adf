package main

import (
	"context"
	"fmt"

	"github.com/hupe1980/rcrd/blobstore"
	minioblob "github.com/hupe1980/rcrd/blobstore/minio"
	s3blob "github.com/hupe1980/rcrd/blobstore/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/viper"
)

// openStore builds the blob store selected by the backend key.
// The key prefix is applied by the DB, not by the store.
func openStore(ctx context.Context, v *viper.Viper) (blobstore.Store, error) {
	switch backend := v.GetString(cfgKeyBackend); backend {
	case "local":
		return blobstore.NewLocalStore(v.GetString(cfgKeyDir)), nil
	case "memory":
		return blobstore.NewMemoryStore(), nil
	case "minio":
		bucket, err := requireKey(v, cfgKeyBucket)
		if err != nil {
			return nil, err
		}
		endpoint, err := requireKey(v, cfgKeyEndpoint)
		if err != nil {
			return nil, err
		}
		client, err := minio.New(endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(v.GetString(cfgKeyAccessKey), v.GetString(cfgKeySecretKey), ""),
			Secure: !v.GetBool(cfgKeyInsecure),
			Region: v.GetString(cfgKeyRegion),
		})
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		return minioblob.NewStore(client, bucket, ""), nil
	case "s3":
		bucket, err := requireKey(v, cfgKeyBucket)
		if err != nil {
			return nil, err
		}
		var opts []s3blob.Option
		if region := v.GetString(cfgKeyRegion); region != "" {
			opts = append(opts, s3blob.WithRegion(region))
		}
		if endpoint := v.GetString(cfgKeyEndpoint); endpoint != "" {
			opts = append(opts, s3blob.WithEndpoint(endpoint), s3blob.WithPathStyle())
		}
		return s3blob.New(ctx, bucket, opts...)
	default:
		return nil, fmt.Errorf("unknown backend %q (valid: local, memory, minio, s3)", backend)
	}
}

func requireKey(v *viper.Viper, key string) (string, error) {
	s := v.GetString(key)
	if s == "" {
		return "", fmt.Errorf("backend %q requires %q", v.GetString(cfgKeyBackend), key)
	}
	return s, nil
}
