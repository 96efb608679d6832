package feed

import (
	"context"
	"strings"
	"testing"

	"github.com/user/amazstreme/internal/model"
)

func testVideos() []*model.Video {
	return []*model.Video{
		{ID: 1, Title: "Tech Talk", FilePath: "videos/1.mp4", Category: "Tech", Likes: 3},
		{ID: 2, Title: "Garden Tour", FilePath: "videos/2.mp4", Category: "Nature", Likes: 0},
	}
}

func TestAssemble_Order(t *testing.T) {
	entries := Assemble(testVideos(), DefaultChannels(), Options{AdsEnabled: true})

	// catalog (2) + TechReviews (3) + NatureChannel (3) + ad (1)
	if len(entries) != 9 {
		t.Fatalf("len(entries) = %d, want 9", len(entries))
	}

	wantChannels := []string{
		UserUploadsChannel, UserUploadsChannel,
		"TechReviews", "TechReviews", "TechReviews",
		"NatureChannel", "NatureChannel", "NatureChannel",
		"",
	}
	for i, want := range wantChannels {
		if entries[i].Channel != want {
			t.Errorf("entries[%d].Channel = %q, want %q", i, entries[i].Channel, want)
		}
	}

	last := entries[len(entries)-1]
	if !last.Sponsored {
		t.Error("last entry should be sponsored")
	}
	if last.Source != "" {
		t.Errorf("sponsored entry has source %q, want none", last.Source)
	}
}

func TestAssemble_ExactlyOneSponsoredEntry(t *testing.T) {
	entries := Assemble(testVideos(), DefaultChannels(), Options{AdsEnabled: true})

	sponsored := 0
	for _, e := range entries {
		if e.Sponsored {
			sponsored++
		}
	}
	if sponsored != 1 {
		t.Errorf("sponsored entries = %d, want 1", sponsored)
	}
}

func TestAssemble_NoAdWhenDisabled(t *testing.T) {
	entries := Assemble(testVideos(), DefaultChannels(), Options{AdsEnabled: false})

	for _, e := range entries {
		if e.Sponsored {
			t.Error("unexpected sponsored entry with ads disabled")
		}
	}
}

func TestAssemble_EmptyCatalogIsNotAnError(t *testing.T) {
	entries := Assemble(nil, nil, Options{})
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(entries))
	}

	entries = Assemble(nil, nil, Options{AdsEnabled: true})
	if len(entries) != 1 || !entries[0].Sponsored {
		t.Errorf("expected ad-only feed, got %+v", entries)
	}
}

func TestAssemble_SubscriptionAnnotation(t *testing.T) {
	subs := map[string]bool{"TechReviews": true, UserUploadsChannel: true}
	entries := Assemble(testVideos(), DefaultChannels(), Options{Subscriptions: subs})

	for _, e := range entries {
		want := subs[e.Channel]
		if e.Sponsored {
			want = false
		}
		if e.Subscribed != want {
			t.Errorf("entry %q (channel %q): Subscribed = %v, want %v", e.Title, e.Channel, e.Subscribed, want)
		}
	}
}

func TestAssemble_EphemeralIdentity(t *testing.T) {
	channels := DefaultChannels()
	entries := Assemble(nil, channels, Options{})

	seen := make(map[string]bool)
	for _, e := range entries {
		if e.VideoID != 0 {
			t.Errorf("roster entry %q has a catalog id", e.Title)
		}
		if e.EphemeralID == "" {
			t.Errorf("roster entry %q has no synthetic id", e.Title)
		}
		if e.EphemeralID == e.Title {
			t.Errorf("roster entry %q keyed by title", e.Title)
		}
		if seen[e.EphemeralID] {
			t.Errorf("duplicate synthetic id %q", e.EphemeralID)
		}
		seen[e.EphemeralID] = true
	}

	// Synthetic ids are stable across assemblies of the same rosters
	again := Assemble(nil, channels, Options{})
	for i := range entries {
		if entries[i].EphemeralID != again[i].EphemeralID {
			t.Errorf("synthetic id changed between assemblies: %q vs %q",
				entries[i].EphemeralID, again[i].EphemeralID)
		}
	}
}

// fakeCatalog returns canned rows and records the filters it saw
type fakeCatalog struct {
	videos     []*model.Video
	searchText string
	category   string
}

func (f *fakeCatalog) ListVideos(_ context.Context, searchText, category string) ([]*model.Video, error) {
	f.searchText = searchText
	f.category = category

	var out []*model.Video
	for _, v := range f.videos {
		if searchText != "" && !strings.Contains(strings.ToLower(v.Title), strings.ToLower(searchText)) {
			continue
		}
		if category != "" && v.Category != category {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func TestAssembler_FiltersCatalogOnly(t *testing.T) {
	catalog := &fakeCatalog{videos: testVideos()}
	assembler := NewAssembler(catalog, DefaultChannels())

	entries, err := assembler.Assemble(context.Background(), Options{SearchText: "tech"})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if catalog.searchText != "tech" {
		t.Errorf("search filter not forwarded, got %q", catalog.searchText)
	}

	var catalogEntries, rosterEntries int
	for _, e := range entries {
		if e.VideoID != 0 {
			catalogEntries++
			if !strings.Contains(strings.ToLower(e.Title), "tech") {
				t.Errorf("catalog entry %q does not match search", e.Title)
			}
		}
		if e.EphemeralID != "" {
			rosterEntries++
		}
	}

	if catalogEntries != 1 {
		t.Errorf("catalog entries = %d, want 1", catalogEntries)
	}
	// Static rosters are not filtered; every roster video survives
	if rosterEntries != 6 {
		t.Errorf("roster entries = %d, want 6", rosterEntries)
	}
}

func TestAssembler_CategoryFilterForwarded(t *testing.T) {
	catalog := &fakeCatalog{videos: testVideos()}
	assembler := NewAssembler(catalog, DefaultChannels())

	entries, err := assembler.Assemble(context.Background(), Options{Category: "Nature"})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if catalog.category != "Nature" {
		t.Errorf("category filter not forwarded, got %q", catalog.category)
	}

	for _, e := range entries {
		if e.VideoID != 0 && e.Category != "Nature" {
			t.Errorf("catalog entry %q has category %q", e.Title, e.Category)
		}
	}
}
