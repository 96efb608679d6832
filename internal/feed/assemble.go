// Package feed assembles the personalized content list shown on the
// home screen: filtered catalog rows, static channel rosters, and an
// optional sponsored slot.
package feed

import (
	"context"

	"github.com/user/amazstreme/internal/model"
)

// Entry is one renderable item in the assembled feed. Exactly one of
// VideoID (catalog-backed) and EphemeralID (roster/shorts) is set for
// playable entries; sponsored entries carry neither and no source.
type Entry struct {
	VideoID     uint
	EphemeralID string
	Title       string
	Channel     string
	Category    string
	Tags        string
	Likes       int
	Source      string
	Subscribed  bool
	Sponsored   bool
}

// Options selects and annotates feed content for one assembly
type Options struct {
	SearchText    string
	Category      string
	Subscriptions map[string]bool
	AdsEnabled    bool
}

// Assemble merges pre-filtered catalog videos, static channel rosters,
// and the sponsored-slot policy into an ordered feed. Pure: no I/O, no
// re-sorting; output order is catalog rows, then rosters in channel
// enumeration order, then the ad. Search and category filters apply
// only to catalog-backed entries; static rosters are always included.
func Assemble(videos []*model.Video, channels []Channel, opts Options) []Entry {
	entries := make([]Entry, 0, len(videos)+8)

	for _, v := range videos {
		entries = append(entries, Entry{
			VideoID:    v.ID,
			Title:      v.Title,
			Channel:    UserUploadsChannel,
			Category:   v.Category,
			Tags:       v.Tags,
			Likes:      v.Likes,
			Source:     v.FilePath,
			Subscribed: opts.Subscriptions[UserUploadsChannel],
		})
	}

	for _, ch := range channels {
		if ch.Name == UserUploadsChannel {
			continue
		}
		for _, rv := range ch.Videos {
			entries = append(entries, Entry{
				EphemeralID: rv.ID,
				Title:       rv.Title,
				Channel:     ch.Name,
				Category:    rv.Category,
				Source:      rv.Source,
				Subscribed:  opts.Subscriptions[ch.Name],
			})
		}
	}

	if opts.AdsEnabled {
		entries = append(entries, Entry{
			Title:     "Sponsored Ad",
			Category:  "Ad",
			Sponsored: true,
		})
	}

	return entries
}

// Catalog is the slice of the store the assembler reads
type Catalog interface {
	ListVideos(ctx context.Context, searchText, category string) ([]*model.Video, error)
}

// Assembler wires the pure assembly to the catalog store and the
// process-wide channel rosters.
type Assembler struct {
	catalog  Catalog
	channels []Channel
}

// NewAssembler creates a feed assembler over a catalog and rosters
func NewAssembler(catalog Catalog, channels []Channel) *Assembler {
	return &Assembler{catalog: catalog, channels: channels}
}

// Channels returns the static rosters this assembler serves
func (a *Assembler) Channels() []Channel {
	return a.channels
}

// Assemble fetches matching catalog rows and assembles the feed.
// Absence of matches yields an empty (or ad-only) feed, never an error.
func (a *Assembler) Assemble(ctx context.Context, opts Options) ([]Entry, error) {
	videos, err := a.catalog.ListVideos(ctx, opts.SearchText, opts.Category)
	if err != nil {
		return nil, err
	}
	return Assemble(videos, a.channels, opts), nil
}
