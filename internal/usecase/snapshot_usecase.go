package usecase

import (
	"context"
	"io"
)

// ImportResult counts the records written by an import. Deactivated counts
// profiles switched off because another profile kept the code.
type ImportResult struct {
	Users       int `json:"users"`
	Profiles    int `json:"profiles"`
	Codes       int `json:"codes"`
	Deactivated int `json:"deactivated"`
}

// SnapshotUsecase moves the whole registry in and out as one JSON document.
type SnapshotUsecase interface {
	Export(ctx context.Context, w io.Writer) error
	Import(ctx context.Context, r io.Reader) (*ImportResult, error)
}
