package model

// Event is a catalog item: a movie or staged production with one or more
// scheduled showtimes. Events are immutable after catalog load except for
// seat status, which changes only through SeatMap.MarkBooked.
type Event struct {
	Id          string     `json:"id"`
	Title       string     `json:"title"`
	PosterUrl   string     `json:"posterUrl"`
	Description string     `json:"description"`
	Genre       string     `json:"genre"`
	Duration    string     `json:"duration"`
	Showtimes   []Showtime `json:"showtimes"`
}

// Showtime is one scheduled screening of its parent Event.
type Showtime struct {
	Time  string  `json:"time"`
	Venue string  `json:"venue"`
	Seats SeatMap `json:"seats"`
}

// Premiere is a read-only catalog entry addressed by positional index.
type Premiere struct {
	Title    string `json:"title"`
	Language string `json:"language"`
	Poster   string `json:"poster"`
	Tag      string `json:"tag"`
}

// LiveCategory groups live events on the explore surface.
type LiveCategory struct {
	Title string `json:"title"`
	Count string `json:"count"`
}
