package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/tessera-games/loreforge/internal/domain"
	"github.com/tessera-games/loreforge/internal/logger"
	"github.com/tessera-games/loreforge/internal/repository"
	"github.com/tessera-games/loreforge/internal/rules/derive"
)

// snapshotCacheSize bounds the LRU; there are only three catalog kinds, so
// the bound exists for the expiry machinery rather than eviction pressure.
const snapshotCacheSize = 8

// Snapshots serves immutable catalog indexes to the derivation layer.
// Indexes are rebuilt from the database at most once per TTL so derivation
// requests never hit the database on the hot path.
type Snapshots interface {
	Index(ctx context.Context, kind domain.PartKind) (*derive.Index, error)
	Parts(ctx context.Context, kind domain.PartKind) ([]domain.Part, error)
	Invalidate(ctx context.Context)
}

type snapshotService struct {
	repo repository.Part
	lru  *expirable.LRU[domain.PartKind, *derive.Index]
}

// NewSnapshots creates a snapshot service backed by the part repository.
func NewSnapshots(repo repository.Part, ttl time.Duration) Snapshots {
	return &snapshotService{
		repo: repo,
		lru:  expirable.NewLRU[domain.PartKind, *derive.Index](snapshotCacheSize, nil, ttl),
	}
}

// Index returns the cached part index for a catalog kind, rebuilding it from
// the database when missing or expired.
func (s *snapshotService) Index(ctx context.Context, kind domain.PartKind) (*derive.Index, error) {
	if idx, found := s.lru.Get(kind); found {
		return idx, nil
	}

	parts, err := s.repo.GetPartsByKind(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadSnapshotFailed, kind, err)
	}

	idx := derive.NewIndex(parts)
	s.lru.Add(kind, idx)

	logger.FromContext(ctx).Info(LogMsgSnapshotRefreshed, "kind", kind, "parts", idx.Len())
	return idx, nil
}

// Parts returns the raw part records behind the cached index.
func (s *snapshotService) Parts(ctx context.Context, kind domain.PartKind) ([]domain.Part, error) {
	idx, err := s.Index(ctx, kind)
	if err != nil {
		return nil, err
	}
	return idx.Parts(), nil
}

// Invalidate drops all cached indexes, forcing a rebuild on next access.
// Called after an admin-triggered catalog reload.
func (s *snapshotService) Invalidate(ctx context.Context) {
	s.lru.Purge()
	logger.FromContext(ctx).Info(LogMsgSnapshotInvalidated)
}
