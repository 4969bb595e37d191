// Package service orchestrates multi-asset uploads for the admin surfaces.
package service

import (
	"context"

	"storefront-client/internal/core/logger"
	"storefront-client/internal/features/uploads/ports"

	"go.uber.org/zap"
)

// Service runs uploads against the configured media host.
type Service struct {
	uploader ports.Uploader
	logger   *zap.Logger
}

// NewService creates an upload Service.
func NewService(uploader ports.Uploader) *Service {
	return &Service{uploader: uploader, logger: logger.Get()}
}

// UploadAll uploads assets one at a time, in order, and returns their
// delivery URLs. The first failure aborts the run: a product form with half
// its gallery uploaded must not be submitted, and the sequential walk keeps
// the abort point well defined. Cancelling ctx stops between assets.
func (s *Service) UploadAll(ctx context.Context, assets []ports.Asset) ([]string, error) {
	urls := make([]string, 0, len(assets))

	for _, asset := range assets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		url, err := s.uploader.Upload(ctx, asset)
		if err != nil {
			s.logger.Warn("Asset upload failed, aborting batch",
				zap.String("filename", asset.Filename),
				zap.Int("uploaded", len(urls)),
				zap.Error(err),
			)
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, nil
}
