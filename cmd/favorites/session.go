package main

import (
	migration "Recipe-Catalog/cmd/database/migrate"
	"Recipe-Catalog/internal/client"
	"Recipe-Catalog/pkg/favorite"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// session holds what one CLI invocation works against.
type session struct {
	replica *favorite.Replica
	catalog client.CatalogClient
	closers []func() error
}

type opener func(ctx context.Context, v *viper.Viper) (*session, error)

func (s *session) close() error {
	if s.replica != nil {
		s.replica.Close()
	}

	var errs []error
	for _, closeFn := range s.closers {
		errs = append(errs, closeFn())
	}
	return errors.Join(errs...)
}

func openSession(ctx context.Context, v *viper.Viper) (*session, error) {
	s := &session{}

	primary, err := openPrimary(ctx, v, s)
	if err != nil {
		_ = s.close()
		return nil, err
	}
	backup, err := openBackup(ctx, v, s)
	if err != nil {
		_ = s.close()
		return nil, err
	}

	s.replica = favorite.NewReplica(favorite.NewReplicator(primary, backup, nil))
	s.catalog = client.NewCatalogClient(v.GetString(cfgKeyAPIURL), v.GetDuration(cfgKeyTimeout))
	return s, nil
}

func openPrimary(ctx context.Context, v *viper.Viper, s *session) (favorite.Backend, error) {
	switch kind := v.GetString(cfgKeyPrimary); kind {
	case primarySQLite:
		path := v.GetString(cfgKeyDBPath)
		if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return nil, fmt.Errorf("open favorites database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, sqlDB.Close)
		if err := migration.MigrateStorage(db); err != nil {
			return nil, fmt.Errorf("migrate favorites database: %w", err)
		}
		return favorite.NewGormStore(db), nil

	case primaryS3:
		bucket := v.GetString(cfgKeyS3Bucket)
		if bucket == "" {
			return nil, fmt.Errorf("%s is required for the s3 primary", cfgKeyS3Bucket)
		}
		opts := []func(*awsconfig.LoadOptions) error{
			awsconfig.WithRegion(v.GetString(cfgKeyS3Region)),
		}
		if accessKey := v.GetString(cfgKeyAccessKey); accessKey != "" {
			opts = append(opts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(accessKey, v.GetString(cfgKeySecretKey), ""),
			))
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
			o.RetryMaxAttempts = 1
		})
		return favorite.NewS3Store(s3Client, bucket, v.GetString(cfgKeyS3Prefix)), nil

	default:
		return nil, fmt.Errorf("unknown primary backend %q (valid: %s, %s)", kind, primarySQLite, primaryS3)
	}
}

func openBackup(ctx context.Context, v *viper.Viper, s *session) (favorite.Backend, error) {
	switch kind := v.GetString(cfgKeyBackup); kind {
	case backupMemory:
		return favorite.NewMemoryStore(), nil

	case backupRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     v.GetString(cfgKeyRedisAddr),
			Password: v.GetString(cfgKeyRedisPassword),
		})
		s.closers = append(s.closers, rdb.Close)
		// An unreachable backup is tolerated; the replicator falls back per write.
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warnf("redis backup at %s unreachable: %v", v.GetString(cfgKeyRedisAddr), err)
		}
		return favorite.NewRedisStore(rdb, v.GetString(cfgKeySessionID), v.GetDuration(cfgKeySessionTTL)), nil

	default:
		return nil, fmt.Errorf("unknown backup backend %q (valid: %s, %s)", kind, backupMemory, backupRedis)
	}
}
