package sheets

import (
	"context"
	"sync"
	"time"

	"github.com/larscobian/Pizzana-Dashboard/internal/domain"
	"github.com/larscobian/Pizzana-Dashboard/pkg/metrics"
	"golang.org/x/sync/singleflight"
)

const datasetKey = "dataset"

type fetchFunc func(ctx context.Context) (*domain.RawDataset, error)

// datasetCache guarda um único snapshot da planilha. Leituras concorrentes
// com o cache expirado compartilham a mesma chamada à API.
type datasetCache struct {
	ttl time.Duration
	now func() time.Time

	mu        sync.RWMutex
	dataset   *domain.RawDataset
	fetchedAt time.Time

	group singleflight.Group
}

func newDatasetCache(ttl time.Duration, now func() time.Time) *datasetCache {
	return &datasetCache{ttl: ttl, now: now}
}

func (c *datasetCache) get(ctx context.Context, fetch fetchFunc) (*domain.RawDataset, error) {
	if dataset, ok := c.fresh(); ok {
		metrics.DatasetCache.WithLabelValues("hit").Inc()
		return dataset, nil
	}

	metrics.DatasetCache.WithLabelValues("miss").Inc()
	return c.load(ctx, fetch)
}

func (c *datasetCache) refresh(ctx context.Context, fetch fetchFunc) (*domain.RawDataset, error) {
	metrics.DatasetCache.WithLabelValues("refresh").Inc()
	return c.load(ctx, fetch)
}

func (c *datasetCache) fresh() (*domain.RawDataset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.dataset == nil || c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.dataset, true
}

// load compartilha uma única leitura entre os chamadores. A leitura não herda o
// cancelamento de quem a iniciou; cada chamador desiste apenas pelo próprio contexto.
func (c *datasetCache) load(ctx context.Context, fetch fetchFunc) (*domain.RawDataset, error) {
	fetchCtx := context.WithoutCancel(ctx)

	ch := c.group.DoChan(datasetKey, func() (interface{}, error) {
		dataset, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.dataset = dataset
		c.fetchedAt = c.now()
		c.mu.Unlock()

		return dataset, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-ch:
		if result.Err != nil {
			return nil, result.Err
		}
		return result.Val.(*domain.RawDataset), nil
	}
}
