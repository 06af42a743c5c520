package feed

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"discover-api/internal/domain/boost"
	"discover-api/internal/domain/media"

	"github.com/samber/lo"
)

type Composer struct {
	resolver media.URLResolver
}

func NewComposer(resolver media.URLResolver) *Composer {
	return &Composer{resolver: resolver}
}

// Compose orders posts newest first and joins each one with its media,
// merchant, logo, items and boost state.
//
// A post whose own media, merchant or logo cannot be resolved fails the
// whole composition. Items that cannot be resolved, either the item itself
// or its media, are left out of that post's item list.
func (c *Composer) Compose(posts []PostRecord, src Sources, now time.Time) ([]Entry, error) {
	ordered := SortNewestFirst(posts)

	entries := make([]Entry, 0, len(ordered))
	for _, p := range ordered {
		e, err := c.composeOne(p, src, now)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (c *Composer) composeOne(p PostRecord, src Sources, now time.Time) (Entry, error) {
	m, ok := src.Media[p.MediaID]
	if !ok {
		return Entry{}, fmt.Errorf("post %d references media %d: %w", p.ID, p.MediaID, ErrMediaNotFound)
	}
	merchant, ok := src.Merchants[p.MerchantID]
	if !ok {
		return Entry{}, fmt.Errorf("post %d references merchant %d: %w", p.ID, p.MerchantID, ErrMerchantNotFound)
	}
	logo, ok := src.Media[merchant.LogoID]
	if !ok {
		return Entry{}, fmt.Errorf("merchant %d references logo %d: %w", merchant.ID, merchant.LogoID, ErrLogoNotFound)
	}

	endTime, boosted := src.BoostEnds[p.ID]

	return Entry{
		ID:           p.ID,
		Title:        p.Title,
		DatePosted:   p.DatePosted,
		MediaURL:     c.url(m),
		MimeType:     m.MimeType,
		MerchantID:   merchant.ID,
		MerchantName: merchant.Name,
		LogoURL:      c.url(logo),
		LogoMimeType: logo.MimeType,
		Items:        c.resolveItems(p.ItemIDs, src),
		IsBoosted:    boosted && boost.IsActive(endTime, now),
	}, nil
}

func (c *Composer) resolveItems(ids []int64, src Sources) []EntryItem {
	out := make([]EntryItem, 0, len(ids))
	for _, id := range ids {
		it, ok := src.Items[id]
		if !ok {
			continue
		}
		m, ok := src.Media[it.MediaID]
		if !ok {
			continue
		}
		out = append(out, EntryItem{
			ID:          it.ID,
			Name:        it.Name,
			Price:       it.Price,
			Currency:    it.Currency,
			Description: it.Description,
			MediaURL:    c.url(m),
			MimeType:    m.MimeType,
		})
	}
	return out
}

func (c *Composer) url(m MediaRecord) string {
	return c.resolver.Resolve(m.StorageID, m.Name)
}

// SortNewestFirst returns a copy of posts ordered by date_posted descending,
// with id descending as the tie-break.
func SortNewestFirst(posts []PostRecord) []PostRecord {
	ordered := slices.Clone(posts)
	slices.SortStableFunc(ordered, func(a, b PostRecord) int {
		if c := b.DatePosted.Compare(a.DatePosted); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return ordered
}

func PostIDs(posts []PostRecord) []int64 {
	return lo.Uniq(lo.Map(posts, func(p PostRecord, _ int) int64 { return p.ID }))
}

func MerchantIDs(posts []PostRecord) []int64 {
	return lo.Uniq(lo.Map(posts, func(p PostRecord, _ int) int64 { return p.MerchantID }))
}

func ItemIDs(posts []PostRecord) []int64 {
	return lo.Uniq(lo.FlatMap(posts, func(p PostRecord, _ int) []int64 { return p.ItemIDs }))
}

// MediaIDs collects every media id the composition may need: post media,
// merchant logos and item media.
func MediaIDs(posts []PostRecord, merchants map[int64]MerchantRecord, items map[int64]ItemRecord) []int64 {
	ids := make([]int64, 0, len(posts)+len(merchants)+len(items))
	for _, p := range posts {
		ids = append(ids, p.MediaID)
	}
	for _, m := range merchants {
		ids = append(ids, m.LogoID)
	}
	for _, it := range items {
		ids = append(ids, it.MediaID)
	}
	ids = lo.Uniq(ids)
	slices.Sort(ids)
	return ids
}
