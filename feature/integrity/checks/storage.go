package checks

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"vehicle-reconciler/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// PrimaryObject is the archive object every replayable VIN folder must hold.
const PrimaryObject = "primary.json"

// StorageReport describes the state of the raw response archive.
type StorageReport struct {
	Bucket       string `json:"bucket"`
	Prefix       string `json:"prefix"`
	PrefixExists bool   `json:"prefixExists"`
	// Archived counts VIN folders under the prefix.
	Archived int `json:"archived"`
	// Incomplete lists VIN folders without a primary response; they cannot be replayed.
	Incomplete []string `json:"incomplete"`
}

// CheckStorage verifies the bucket exists and inspects every archived VIN folder.
func CheckStorage(ctx context.Context, client storage.Client, bucket, prefix string) (*StorageReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	root := folder(prefix)
	report := &StorageReport{Bucket: bucket, Prefix: root, Incomplete: []string{}}

	keys, err := storage.ListKeys(ctx, client, bucket, root, true)
	if err != nil {
		return nil, err
	}
	report.PrefixExists = root == "" || len(keys) > 0

	hasPrimary := make(map[string]bool)
	for _, key := range keys {
		rest := strings.TrimPrefix(key, root)
		vin, name, ok := strings.Cut(rest, "/")
		if !ok || vin == "" {
			continue
		}
		if _, seen := hasPrimary[vin]; !seen {
			hasPrimary[vin] = false
		}
		if name == PrimaryObject {
			hasPrimary[vin] = true
		}
	}

	report.Archived = len(hasPrimary)
	for vin, ok := range hasPrimary {
		if !ok {
			report.Incomplete = append(report.Incomplete, vin)
		}
	}
	sort.Strings(report.Incomplete)
	return report, nil
}

// FixStorage creates the archive prefix marker so that listings succeed on an empty archive.
func FixStorage(ctx context.Context, client storage.Client, bucket, prefix string, logger *zap.Logger) error {
	root := folder(prefix)
	if root == "" {
		return nil
	}
	_, err := client.PutObject(ctx, bucket, root, bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
	if err != nil {
		logger.Error("Failed to create archive folder", zap.String("folder", root), zap.Error(err))
		return err
	}
	logger.Info("Created archive folder", zap.String("folder", root))
	return nil
}

func folder(prefix string) string {
	p := strings.Trim(prefix, "/")
	if p == "" {
		return ""
	}
	return p + "/"
}
