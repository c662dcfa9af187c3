package usecase

import (
	"context"

	"parcel-pricing/internal/domain"
)

// RecordSource yields raw transaction records one at a time, in arrival
// order. The usecase layer depends on this interface, not on a concrete
// implementation.
//
//go:generate mockgen -destination=mocks/mock_stream.go -source=interface.go -package=mock_usecase
type RecordSource interface {
	// Next returns the next record, or io.EOF once the stream is done.
	Next(ctx context.Context) (string, error)
}

// ResultSink receives one priced result per record, in the same order
// the records were read.
type ResultSink interface {
	Write(ctx context.Context, result domain.PricedResult) error
}
