package discovery

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/luvbee/discovery/pkg/domain"
)

// filterInteractions removes locations the user already matched or rejected.
// Returns items unchanged for anonymous users or when interactions can't be loaded.
func (s *Service) filterInteractions(ctx context.Context, userID string, items []domain.FeedItem) []domain.FeedItem {
	if userID == "" || len(items) == 0 || s.interactions == nil {
		return items
	}

	var matched, rejected []string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if matched, err = s.interactions.MatchedIDs(gctx, userID); err != nil {
			return fmt.Errorf("load matches: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if rejected, err = s.interactions.RejectedIDs(gctx, userID); err != nil {
			return fmt.Errorf("load rejections: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		lgr.Printf("[WARN] can't filter interactions for user %s, returning unfiltered feed: %v", userID, err)
		return items
	}

	excluded := make(map[string]struct{}, len(matched)+len(rejected))
	for _, id := range matched {
		excluded[id] = struct{}{}
	}
	for _, id := range rejected {
		excluded[id] = struct{}{}
	}
	if len(excluded) == 0 {
		return items
	}

	res := make([]domain.FeedItem, 0, len(items))
	for _, item := range items {
		if _, ok := excluded[item.ID]; ok {
			continue
		}
		res = append(res, item)
	}
	return res
}
