package feed

import (
	"github.com/google/uuid"
)

// UserUploadsChannel is the synthetic channel whose membership is the
// uploaded catalog; it never carries a static roster.
const UserUploadsChannel = "UserUploads"

// SampleSource is the playable source attached to roster and shorts
// entries, which have no ingested media file of their own.
const SampleSource = "https://sample-videos.com/video123/mp4/720/big_buck_bunny_720p_1mb.mp4"

// RosterVideo is an ephemeral video known only by display title. ID is a
// synthetic identifier assigned once at construction so like counting
// never keys on title text.
type RosterVideo struct {
	ID       string
	Title    string
	Category string
	Source   string
}

// Channel is a static, read-only channel roster. Not persisted.
type Channel struct {
	Name   string
	Logo   string
	Videos []RosterVideo
}

// DefaultChannels returns the process-wide channel rosters in their
// fixed enumeration order.
func DefaultChannels() []Channel {
	return []Channel{
		{
			Name: "TechReviews",
			Logo: "https://via.placeholder.com/100x100?text=Tech",
			Videos: roster("Tech", []string{
				"Tech Review",
				"New Gadgets Unboxing",
				"Smartphone Comparison",
			}),
		},
		{
			Name: "NatureChannel",
			Logo: "https://via.placeholder.com/100x100?text=Nature",
			Videos: roster("Nature", []string{
				"Nature Documentary",
				"Wildlife Adventures",
				"Ocean Exploration",
			}),
		},
	}
}

// DefaultShorts returns the ephemeral shorts roster
func DefaultShorts() []RosterVideo {
	return []RosterVideo{
		{ID: uuid.NewString(), Title: "Funny Clip", Category: "Entertainment", Source: SampleSource},
		{ID: uuid.NewString(), Title: "Cooking Hack", Category: "Food", Source: SampleSource},
		{ID: uuid.NewString(), Title: "Quick DIY", Category: "DIY", Source: SampleSource},
	}
}

// ChannelNames returns the channel names known to the feed, including
// the synthetic uploads channel.
func ChannelNames(channels []Channel) []string {
	names := make([]string, 0, len(channels)+1)
	for _, ch := range channels {
		names = append(names, ch.Name)
	}
	return append(names, UserUploadsChannel)
}

func roster(category string, titles []string) []RosterVideo {
	videos := make([]RosterVideo, 0, len(titles))
	for _, title := range titles {
		videos = append(videos, RosterVideo{
			ID:       uuid.NewString(),
			Title:    title,
			Category: category,
			Source:   SampleSource,
		})
	}
	return videos
}
