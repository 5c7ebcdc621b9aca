package balance

import (
	"context"

	"cwasset/core"

	"github.com/fox-one/pkg/logger"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Config balance service config
type Config struct {
	// Capacity max concurrent queries
	Capacity int64 `json:"capacity"`
}

// Service looks up balances of many assets at once
type Service struct {
	querier core.Querier
	cfg     Config
}

// New new balance service
func New(querier core.Querier, cfg Config) *Service {
	if cfg.Capacity <= 0 {
		cfg.Capacity = 1
	}

	return &Service{
		querier: querier,
		cfg:     cfg,
	}
}

// Balances balances address holds of infos, in the order infos are given.
// Repeated infos are queried once.
func (s *Service) Balances(ctx context.Context, address string, infos ...core.AssetInfo) (*core.AssetList, error) {
	log := logger.FromContext(ctx).WithField("address", address)

	unique := make([]core.AssetInfo, 0, len(infos))
	seen := make(map[core.AssetInfo]bool, len(infos))
	for _, info := range infos {
		if !seen[info] {
			seen[info] = true
			unique = append(unique, info)
		}
	}

	assets := make([]core.Asset, len(unique))
	sem := semaphore.NewWeighted(s.cfg.Capacity)
	g, gctx := errgroup.WithContext(ctx)

	var acquireErr error
	for idx := range unique {
		idx, info := idx, unique[idx]

		if err := sem.Acquire(gctx, 1); err != nil {
			acquireErr = err
			break
		}

		g.Go(func() error {
			defer sem.Release(1)

			amount, err := info.QueryBalance(gctx, s.querier, address)
			if err != nil {
				log.WithError(err).WithField("asset", info.String()).Errorln("query balance")
				return err
			}

			assets[idx] = core.NewAsset(info, amount)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if acquireErr != nil {
		return nil, acquireErr
	}

	return core.NewAssetList(assets...)
}
