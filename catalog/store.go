package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thaisring/ticket-show-world/model"
)

const premiereIdPrefix = "premiere-"

// Kind discriminates what a catalog id resolved to.
type Kind int

const (
	KindNotFound Kind = iota
	KindPremiere
	KindUserShow
	KindEvent
)

// Resolution is the tagged result of a catalog lookup. Exactly the fields
// matching Kind are set; everything else is zero.
type Resolution struct {
	Kind          Kind
	Event         *model.Event
	Show          *model.UserShow
	Premiere      *model.Premiere
	PremiereIndex int
}

// Store is the read-only catalog handle. All seat mutation goes through
// MarkBooked; nothing else writes to the catalog after construction.
type Store struct {
	events     []model.Event
	shows      []model.UserShow
	premieres  []model.Premiere
	categories []model.LiveCategory
}

// New validates and assembles a catalog. Event and community-show ids must
// be disjoint, and neither may use the premiere index encoding, because
// Resolve decides what an id means by exactly that order.
func New(events []model.Event, shows []model.UserShow, premieres []model.Premiere, categories []model.LiveCategory) (*Store, error) {
	seen := make(map[string]string, len(events)+len(shows))
	for _, event := range events {
		if err := checkId(seen, event.Id, "event"); err != nil {
			return nil, err
		}
	}
	for _, show := range shows {
		if err := checkId(seen, show.Id, "show"); err != nil {
			return nil, err
		}
	}
	return &Store{
		events:     events,
		shows:      shows,
		premieres:  premieres,
		categories: categories,
	}, nil
}

func checkId(seen map[string]string, id string, kind string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("catalog %s with empty id", kind)
	}
	if _, isPremiere := parsePremiereId(id); isPremiere {
		return fmt.Errorf("catalog %s id %q collides with the premiere index namespace", kind, id)
	}
	if owner, ok := seen[id]; ok {
		return fmt.Errorf("catalog id %q used by both %s and %s", id, owner, kind)
	}
	seen[id] = kind
	return nil
}

func parsePremiereId(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, premiereIdPrefix)
	if !ok {
		return 0, false
	}
	index, err := strconv.Atoi(rest)
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}

// PremiereId returns the positional id for a premiere index.
func PremiereId(index int) string {
	return fmt.Sprintf("%s%d", premiereIdPrefix, index)
}

func (s *Store) Events() []model.Event { return s.events }

// ApprovedShows returns the community shows visible to the booking flow.
func (s *Store) ApprovedShows() []model.UserShow {
	approved := make([]model.UserShow, 0, len(s.shows))
	for _, show := range s.shows {
		if show.Status == model.ShowApproved {
			approved = append(approved, show)
		}
	}
	return approved
}

func (s *Store) Premieres() []model.Premiere { return s.premieres }

func (s *Store) LiveCategories() []model.LiveCategory { return s.categories }

// Event looks up a catalog event by id.
func (s *Store) Event(id string) (*model.Event, bool) {
	for i := range s.events {
		if s.events[i].Id == id {
			return &s.events[i], true
		}
	}
	return nil, false
}

// Resolve maps an id to a catalog entry: premiere index encoding first, then
// approved community shows, then catalog events. First match wins.
func (s *Store) Resolve(id string) Resolution {
	if index, ok := parsePremiereId(id); ok {
		if index < len(s.premieres) {
			return Resolution{Kind: KindPremiere, Premiere: &s.premieres[index], PremiereIndex: index}
		}
		return Resolution{Kind: KindNotFound}
	}
	for i := range s.shows {
		if s.shows[i].Id == id && s.shows[i].Status == model.ShowApproved {
			return Resolution{Kind: KindUserShow, Show: &s.shows[i]}
		}
	}
	if event, ok := s.Event(id); ok {
		return Resolution{Kind: KindEvent, Event: event}
	}
	return Resolution{Kind: KindNotFound}
}

// MarkBooked books seats on one showtime of a catalog event. This is the
// only mutation the store exposes; it is idempotent because the underlying
// seat map skips seats already booked.
func (s *Store) MarkBooked(eventId string, showtimeIndex int, seatIds []string) error {
	event, ok := s.Event(eventId)
	if !ok {
		return fmt.Errorf("event %q not found", eventId)
	}
	if showtimeIndex < 0 || showtimeIndex >= len(event.Showtimes) {
		return fmt.Errorf("event %q has no showtime %d", eventId, showtimeIndex)
	}
	event.Showtimes[showtimeIndex].Seats.MarkBooked(seatIds...)
	return nil
}
