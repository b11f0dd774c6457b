package vehicle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vehicle-reconciler/core/reconcile"
	"vehicle-reconciler/core/storage"
	"vehicle-reconciler/feature/vehicle/models"
)

// Archive object names under <prefix>/<VIN>/.
const (
	PrimaryObject   = "primary.json"
	SecondaryObject = "secondary.json"
	ResultObject    = "result.json"
)

// Archive keeps raw provider responses and reconciled results in object storage,
// so records can be replayed when mapping tables change.
type Archive struct {
	client storage.Client
	bucket string
	prefix string
}

// NewArchive creates an archive rooted at prefix inside bucket.
func NewArchive(client storage.Client, bucket, prefix string) *Archive {
	return &Archive{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// Key returns the object key of name for vin.
func (a *Archive) Key(vin, name string) string {
	return storage.Join(a.prefix, vin, name)
}

// SaveRaw stores the provider responses of vin. A nil secondary is not written.
func (a *Archive) SaveRaw(ctx context.Context, vin string, primary, secondary reconcile.RawResponse) error {
	if primary == nil {
		primary = reconcile.RawResponse{}
	}
	if err := storage.PutJSON(ctx, a.client, a.bucket, a.Key(vin, PrimaryObject), primary); err != nil {
		return err
	}
	if secondary == nil {
		return nil
	}
	return storage.PutJSON(ctx, a.client, a.bucket, a.Key(vin, SecondaryObject), secondary)
}

// SaveResult stores the reconciled record.
func (a *Archive) SaveResult(ctx context.Context, result *models.Result) error {
	return storage.PutJSON(ctx, a.client, a.bucket, a.Key(result.VIN, ResultObject), result)
}

// LoadRaw reads back the provider responses of vin.
// The secondary response is nil when none was archived.
func (a *Archive) LoadRaw(ctx context.Context, vin string) (primary, secondary reconcile.RawResponse, err error) {
	if err := storage.GetJSON(ctx, a.client, a.bucket, a.Key(vin, PrimaryObject), &primary); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, fmt.Errorf("no archived responses for %s: %w", vin, ErrNotFound)
		}
		return nil, nil, err
	}
	if err := storage.GetJSON(ctx, a.client, a.bucket, a.Key(vin, SecondaryObject), &secondary); err != nil {
		if !errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, err
		}
		secondary = nil
	}
	return primary, secondary, nil
}

// ListVINs returns every VIN whose archive folder holds a primary response, in listing order.
// Folders without one cannot be replayed and are skipped.
func (a *Archive) ListVINs(ctx context.Context) ([]string, error) {
	root := a.prefix
	if root != "" {
		root += "/"
	}
	keys, err := storage.ListKeys(ctx, a.client, a.bucket, root, true)
	if err != nil {
		return nil, err
	}
	var vins []string
	for _, k := range keys {
		vin, name, ok := strings.Cut(strings.TrimPrefix(k, root), "/")
		if !ok || name != PrimaryObject {
			continue
		}
		if ValidateVIN(vin) == nil {
			vins = append(vins, vin)
		}
	}
	return vins, nil
}

// Remove deletes everything archived for vin.
func (a *Archive) Remove(ctx context.Context, vin string) (int, error) {
	return storage.RemovePrefix(ctx, a.client, a.bucket, a.Key(vin, "")+"/")
}
