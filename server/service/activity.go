package service

import (
	"context"
	"fmt"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/constant"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/dto"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/repository"
)

// FeedSource is one history kind feeding the merged activity stream.
// Fetch must return records ordered newest first.
type FeedSource struct {
	Kind  string
	Fetch func(offset, limit int) ([]dto.ActivityRecord, error)
}

// feedCursor pulls one source in chunks so the merge never materializes
// more rows per kind than it actually consumes.
type feedCursor struct {
	src       FeedSource
	buf       []dto.ActivityRecord
	offset    int
	chunk     int
	exhausted bool
}

func (c *feedCursor) peek() (*dto.ActivityRecord, error) {
	if len(c.buf) == 0 && !c.exhausted {
		rows, err := c.src.Fetch(c.offset, c.chunk)
		if err != nil {
			return nil, err
		}
		c.offset += len(rows)
		if len(rows) < c.chunk {
			c.exhausted = true
		}
		c.buf = rows
	}
	if len(c.buf) == 0 {
		return nil, nil
	}
	return &c.buf[0], nil
}

func (c *feedCursor) pop() {
	c.buf = c.buf[1:]
}

// MergeFeeds is a streaming k-way merge over the per-kind cursors,
// newest first. Correctness does not depend on any fetch-window
// heuristic: each cursor refills on demand, so a page deep into the feed
// still sees every kind.
func MergeFeeds(sources []FeedSource, page, pageSize int) (items []dto.ActivityRecord, hasMore bool, err error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	cursors := make([]*feedCursor, len(sources))
	for i := range sources {
		cursors[i] = &feedCursor{src: sources[i], chunk: pageSize}
	}

	skip := (page - 1) * pageSize
	items = make([]dto.ActivityRecord, 0, pageSize)
	for len(items) < pageSize {
		// pick the newest head among the cursors; ties break by kind
		// order so pagination is deterministic
		var best *feedCursor
		var bestRec *dto.ActivityRecord
		for _, c := range cursors {
			rec, err := c.peek()
			if err != nil {
				return nil, false, err
			}
			if rec == nil {
				continue
			}
			if bestRec == nil || rec.OccurredAt.After(bestRec.OccurredAt.Time) {
				best, bestRec = c, rec
			}
		}
		if bestRec == nil {
			return items, false, nil
		}
		best.pop()
		if skip > 0 {
			skip--
			continue
		}
		items = append(items, *bestRec)
	}

	// one more peek decides hasMore
	for _, c := range cursors {
		rec, err := c.peek()
		if err != nil {
			return nil, false, err
		}
		if rec != nil {
			return items, true, nil
		}
	}
	return items, false, nil
}

type activityService struct {
	baseService
}

// sources maps every history repository into the unified feed shape.
// A non-empty kind filter narrows the merge to that kind only.
func (s *activityService) sources(ctx context.Context, kindFilter string) []FeedSource {
	all := []FeedSource{
		{Kind: constant.OpCheckout, Fetch: func(offset, limit int) ([]dto.ActivityRecord, error) {
			rows, err := repository.CheckoutDao.FindPage(ctx, offset, limit)
			if err != nil {
				return nil, err
			}
			out := make([]dto.ActivityRecord, len(rows))
			for i, v := range rows {
				out[i] = dto.ActivityRecord{
					ID: v.ID, Kind: constant.OpCheckout, AssetID: v.AssetID,
					Actor:   v.EmployeeUserID,
					Summary: "Checked out to " + v.EmployeeUserID, OccurredAt: v.Created,
				}
			}
			return out, nil
		}},
		{Kind: constant.OpCheckin, Fetch: func(offset, limit int) ([]dto.ActivityRecord, error) {
			rows, err := repository.CheckinDao.FindPage(ctx, offset, limit)
			if err != nil {
				return nil, err
			}
			out := make([]dto.ActivityRecord, len(rows))
			for i, v := range rows {
				out[i] = dto.ActivityRecord{
					ID: v.ID, Kind: constant.OpCheckin, AssetID: v.AssetID,
					Summary: "Checked in", OccurredAt: v.Created,
				}
			}
			return out, nil
		}},
		{Kind: constant.OpMove, Fetch: func(offset, limit int) ([]dto.ActivityRecord, error) {
			rows, err := repository.MoveDao.FindPage(ctx, offset, limit)
			if err != nil {
				return nil, err
			}
			out := make([]dto.ActivityRecord, len(rows))
			for i, v := range rows {
				out[i] = dto.ActivityRecord{
					ID: v.ID, Kind: constant.OpMove, AssetID: v.AssetID,
					Summary:    fmt.Sprintf("Moved to %s / %s", v.ToSite, v.ToLocation),
					OccurredAt: v.Created,
				}
			}
			return out, nil
		}},
		{Kind: constant.OpReserve, Fetch: func(offset, limit int) ([]dto.ActivityRecord, error) {
			rows, err := repository.ReservationDao.FindPage(ctx, offset, limit)
			if err != nil {
				return nil, err
			}
			out := make([]dto.ActivityRecord, len(rows))
			for i, v := range rows {
				out[i] = dto.ActivityRecord{
					ID: v.ID, Kind: constant.OpReserve, AssetID: v.AssetID,
					Actor:   v.EmployeeUserID,
					Summary: "Reserved by " + v.EmployeeUserID, OccurredAt: v.Created,
				}
			}
			return out, nil
		}},
		{Kind: constant.OpLease, Fetch: func(offset, limit int) ([]dto.ActivityRecord, error) {
			rows, err := repository.LeaseDao.FindPage(ctx, offset, limit)
			if err != nil {
				return nil, err
			}
			out := make([]dto.ActivityRecord, len(rows))
			for i, v := range rows {
				out[i] = dto.ActivityRecord{
					ID: v.ID, Kind: constant.OpLease, AssetID: v.AssetID,
					Actor:   v.LesseeName,
					Summary: "Leased to " + v.LesseeName, OccurredAt: v.Created,
				}
			}
			return out, nil
		}},
		{Kind: constant.OpLeaseReturn, Fetch: func(offset, limit int) ([]dto.ActivityRecord, error) {
			rows, err := repository.LeaseReturnDao.FindPage(ctx, offset, limit)
			if err != nil {
				return nil, err
			}
			out := make([]dto.ActivityRecord, len(rows))
			for i, v := range rows {
				out[i] = dto.ActivityRecord{
					ID: v.ID, Kind: constant.OpLeaseReturn, AssetID: v.AssetID,
					Summary: "Lease returned", OccurredAt: v.Created,
				}
			}
			return out, nil
		}},
		{Kind: constant.OpDispose, Fetch: func(offset, limit int) ([]dto.ActivityRecord, error) {
			rows, err := repository.DisposalDao.FindPage(ctx, offset, limit)
			if err != nil {
				return nil, err
			}
			out := make([]dto.ActivityRecord, len(rows))
			for i, v := range rows {
				out[i] = dto.ActivityRecord{
					ID: v.ID, Kind: constant.OpDispose, AssetID: v.AssetID,
					Summary: "Disposed: " + v.DisposeReason, OccurredAt: v.Created,
				}
			}
			return out, nil
		}},
		{Kind: constant.OpMaintenance, Fetch: func(offset, limit int) ([]dto.ActivityRecord, error) {
			rows, err := repository.MaintenanceDao.FindPage(ctx, offset, limit)
			if err != nil {
				return nil, err
			}
			out := make([]dto.ActivityRecord, len(rows))
			for i, v := range rows {
				out[i] = dto.ActivityRecord{
					ID: v.ID, Kind: constant.OpMaintenance, AssetID: v.AssetID,
					Summary:    fmt.Sprintf("Maintenance %s: %s", v.MaintenanceStatus, v.Title),
					OccurredAt: v.Created,
				}
			}
			return out, nil
		}},
	}

	if kindFilter == "" {
		return all
	}
	for _, src := range all {
		if src.Kind == kindFilter {
			return []FeedSource{src}
		}
	}
	return nil
}

// Feed returns one page of the merged history feed, enriched with the
// asset tag and name of every referenced asset.
func (s *activityService) Feed(ctx context.Context, page, pageSize int, kindFilter string) (dto.ActivityPage, error) {
	items, hasMore, err := MergeFeeds(s.sources(ctx, kindFilter), page, pageSize)
	if err != nil {
		return dto.ActivityPage{}, err
	}

	ids := make([]string, 0, len(items))
	seen := map[string]bool{}
	for _, item := range items {
		if !seen[item.AssetID] {
			seen[item.AssetID] = true
			ids = append(ids, item.AssetID)
		}
	}
	if len(ids) > 0 {
		assets, err := repository.AssetDao.FindByIds(ctx, ids)
		if err != nil {
			return dto.ActivityPage{}, err
		}
		byId := map[string]int{}
		for i, a := range assets {
			byId[a.ID] = i
		}
		for i := range items {
			if j, ok := byId[items[i].AssetID]; ok {
				items[i].AssetTagID = assets[j].AssetTagID
				items[i].AssetName = assets[j].Name
			}
		}
	}

	return dto.ActivityPage{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		HasMore:  hasMore,
	}, nil
}
