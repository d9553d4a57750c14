package openklant

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RetrieveFunc fetches one record by uuid; every resource client's Retrieve fits.
type RetrieveFunc[T any] func(ctx context.Context, uuid string) (*T, error)

// RetrieveMany retrieves uuids concurrently with at most limit requests in
// flight (limit <= 0 means unbounded). Results keep the order of uuids; a
// failed lookup leaves a nil entry and its error is collected in a MultiError.
func RetrieveMany[T any](ctx context.Context, retrieve RetrieveFunc[T], uuids []string, limit int) ([]*T, error) {
	results := make([]*T, len(uuids))
	errs := make([]error, len(uuids))

	var group errgroup.Group
	if limit > 0 {
		group.SetLimit(limit)
	}

	for i, uuid := range uuids {
		group.Go(func() error {
			record, err := retrieve(ctx, uuid)
			if err != nil {
				errs[i] = fmt.Errorf("retrieving %s: %w", uuid, err)

				return nil
			}

			results[i] = record

			return nil
		})
	}

	_ = group.Wait()

	multi := &MultiError{}

	for _, err := range errs {
		if err != nil {
			multi.Errors = append(multi.Errors, err)
		}
	}

	return results, multi.ErrorOrNil()
}
