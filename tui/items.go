package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/thaisring/ticket-show-world/catalog"
	"github.com/thaisring/ticket-show-world/model"
)

type entryAction int

const (
	actionViewDetails entryAction = iota
	actionExplore
	actionSeeAllMovies
	actionSeeAllComedy
	actionSeeAllEvents
	actionSeeAllPremieres
	actionLiveCategory
)

// entryItem is a row in the home and browse lists. Selecting it either opens
// a catalog id or triggers a navigation action.
type entryItem struct {
	id     string
	label  string
	desc   string
	action entryAction
}

func (e entryItem) Title() string       { return e.label }
func (e entryItem) Description() string { return e.desc }
func (e entryItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{e.label, e.desc, e.id}, " "))
}

type showtimeItem struct {
	index    int
	showtime model.Showtime
}

func (s showtimeItem) Title() string {
	return fmt.Sprintf("%s • %s", s.showtime.Time, s.showtime.Venue)
}

func (s showtimeItem) Description() string {
	total := s.showtime.Seats.Rows() * s.showtime.Seats.Cols()
	return fmt.Sprintf("%d of %d seats available", s.showtime.Seats.Available(), total)
}

func (s showtimeItem) FilterValue() string {
	return strings.ToLower(s.Title())
}

func eventEntry(event model.Event) entryItem {
	return entryItem{
		id:     event.Id,
		label:  event.Title,
		desc:   fmt.Sprintf("%s • %s", event.Genre, event.Duration),
		action: actionViewDetails,
	}
}

func showEntry(show model.UserShow) entryItem {
	return entryItem{
		id:     show.Id,
		label:  show.Title,
		desc:   fmt.Sprintf("%s • %s • ₹%d", show.Venue, show.ShowDate, show.TicketPrice),
		action: actionViewDetails,
	}
}

func premiereEntry(index int, premiere model.Premiere) entryItem {
	return entryItem{
		id:     catalog.PremiereId(index),
		label:  premiere.Title,
		desc:   fmt.Sprintf("%s • %s", premiere.Language, premiere.Tag),
		action: actionViewDetails,
	}
}

func categoryEntry(category model.LiveCategory) entryItem {
	return entryItem{
		id:     category.Title,
		label:  category.Title,
		desc:   category.Count,
		action: actionLiveCategory,
	}
}

// Browse categories on the home screen. Only movies and events have sample
// listings; the rest exist so category cycling mirrors the real storefront.
var homeCategories = []string{"all", "movies", "stream", "events", "plays", "sports", "activities"}

func buildHomeItems(cat *catalog.Store, category string) []list.Item {
	var items []list.Item

	if category == "all" || category == "movies" {
		for _, event := range cat.Events() {
			items = append(items, eventEntry(event))
		}
		for i, premiere := range cat.Premieres() {
			items = append(items, premiereEntry(i, premiere))
		}
	}
	if category == "all" || category == "events" {
		for _, show := range cat.ApprovedShows() {
			items = append(items, showEntry(show))
		}
	}

	if category == "all" {
		items = append(items,
			list.Item(entryItem{label: "Explore live events", desc: "Browse by category", action: actionExplore}),
			list.Item(entryItem{label: "See all movies", desc: "Every movie in the catalog", action: actionSeeAllMovies}),
			list.Item(entryItem{label: "See all comedy", desc: "Stand-up and improv", action: actionSeeAllComedy}),
			list.Item(entryItem{label: "See all events", desc: "Community shows", action: actionSeeAllEvents}),
			list.Item(entryItem{label: "See all premieres", desc: "New releases", action: actionSeeAllPremieres}),
		)
	}
	return items
}

func buildMovieItems(cat *catalog.Store) []list.Item {
	events := append([]model.Event{}, cat.Events()...)
	sort.Slice(events, func(i, j int) bool {
		return strings.ToLower(events[i].Title) < strings.ToLower(events[j].Title)
	})
	items := make([]list.Item, 0, len(events))
	for _, event := range events {
		items = append(items, eventEntry(event))
	}
	return items
}

func buildComedyItems(cat *catalog.Store) []list.Item {
	var items []list.Item
	for _, event := range cat.Events() {
		if strings.Contains(strings.ToLower(event.Genre), "comedy") {
			items = append(items, eventEntry(event))
		}
	}
	for _, show := range cat.ApprovedShows() {
		if strings.Contains(strings.ToLower(show.Genre), "comedy") {
			items = append(items, showEntry(show))
		}
	}
	return items
}

func buildShowItems(cat *catalog.Store, liveCategory string) []list.Item {
	var items []list.Item
	for _, show := range cat.ApprovedShows() {
		if liveCategory != "" && !genreInCategory(show.Genre, liveCategory) {
			continue
		}
		items = append(items, showEntry(show))
	}
	return items
}

// Category titles read like "COMEDY SHOWS" while show genres are single words
// like "Comedy", so matching is by containment rather than equality.
func genreInCategory(genre, category string) bool {
	genre = strings.ToLower(strings.TrimSpace(genre))
	if genre == "" {
		return false
	}
	return strings.Contains(strings.ToLower(category), genre)
}

func buildPremiereItems(cat *catalog.Store) []list.Item {
	premieres := cat.Premieres()
	items := make([]list.Item, 0, len(premieres))
	for i, premiere := range premieres {
		items = append(items, premiereEntry(i, premiere))
	}
	return items
}

func buildCategoryItems(cat *catalog.Store) []list.Item {
	categories := cat.LiveCategories()
	items := make([]list.Item, 0, len(categories))
	for _, category := range categories {
		items = append(items, categoryEntry(category))
	}
	return items
}

func buildShowtimeItems(event *model.Event) []list.Item {
	items := make([]list.Item, 0, len(event.Showtimes))
	for i, showtime := range event.Showtimes {
		items = append(items, showtimeItem{index: i, showtime: showtime})
	}
	return items
}
