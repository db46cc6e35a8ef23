package catalog

import (
	"time"

	"github.com/thaisring/ticket-show-world/model"
)

// Sample returns the built-in demo catalog, used when no catalog service URL
// is configured.
func Sample() *Store {
	store, err := New(sampleEvents(), sampleShows(), samplePremieres(), sampleCategories())
	if err != nil {
		// The sample data is fixed and covered by tests; a validation
		// failure here is a programming error.
		panic(err)
	}
	return store
}

func mustSeats(rows int, cols int, booked []string) model.SeatMap {
	grid, err := model.GenerateSeats(rows, cols, booked)
	if err != nil {
		panic(err)
	}
	return grid
}

func sampleEvents() []model.Event {
	return []model.Event{
		{
			Id:          "evt1",
			Title:       "Cosmic Adventure",
			PosterUrl:   "https://images.unsplash.com/photo-1440404653325-ab127d49abc1?w=400&h=600&fit=crop",
			Description: "A thrilling journey through space and time, exploring new galaxies and ancient mysteries. Join the crew of the Starship Odyssey as they face unimaginable dangers.",
			Genre:       "Sci-Fi",
			Duration:    "2h 30m",
			Showtimes: []model.Showtime{
				{Time: "3:00 PM", Venue: "Galaxy Hall", Seats: mustSeats(5, 8, []string{"B2", "C5", "A1"})},
				{Time: "7:00 PM", Venue: "Nova Theatre", Seats: mustSeats(6, 10, []string{"A1", "D5", "F8", "C2", "C3"})},
			},
		},
		{
			Id:          "evt2",
			Title:       "Mystery Manor",
			PosterUrl:   "https://images.unsplash.com/photo-1594736797933-d0401ba2fe65?w=400&h=600&fit=crop",
			Description: "A classic whodunit set in a creaky old mansion. A detective must solve a baffling murder before the killer strikes again.",
			Genre:       "Mystery",
			Duration:    "1h 55m",
			Showtimes: []model.Showtime{
				{Time: "4:30 PM", Venue: "Crimson Lounge", Seats: mustSeats(4, 6, []string{"A3", "B1"})},
				{Time: "8:00 PM", Venue: "Shadow Room", Seats: mustSeats(5, 7, []string{"C4", "D2", "E6"})},
			},
		},
		{
			Id:          "evt3",
			Title:       "Laugh Riot Comedy Fest",
			PosterUrl:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=600&fit=crop",
			Description: "Get ready for an evening of non-stop laughter with the best comedians in town.",
			Genre:       "Comedy Show",
			Duration:    "2h 00m",
			Showtimes: []model.Showtime{
				{Time: "7:00 PM", Venue: "The Funny Bone", Seats: mustSeats(7, 10, []string{"B5", "E7", "F2", "G9"})},
				{Time: "9:30 PM", Venue: "The Funny Bone", Seats: mustSeats(7, 10, []string{"A1", "C6", "D4", "E8"})},
			},
		},
	}
}

func sampleShows() []model.UserShow {
	created := time.Date(2025, time.May, 12, 10, 0, 0, 0, time.UTC)
	return []model.UserShow{
		{
			Id:              "show-acoustic-nights",
			Title:           "Acoustic Nights Unplugged",
			Description:     "An intimate evening of unplugged covers and originals.",
			Genre:           "MUSIC SHOWS",
			Venue:           "The Velvet Room",
			TicketPrice:     399,
			TotalSeats:      80,
			ShowDate:        "2025-09-20",
			ShowTime:        "19:30",
			DurationMinutes: 120,
			ContactEmail:    "book@velvetroom.example",
			ContactPhone:    "+91 98200 11223",
			Status:          model.ShowApproved,
			CreatedAt:       created,
			UpdatedAt:       created,
		},
		{
			Id:              "show-improv-jam",
			Title:           "Saturday Improv Jam",
			Description:     "Audience-suggested scenes from the city's quickest improvisers.",
			Genre:           "COMEDY SHOWS",
			Venue:           "Basement Theatre",
			TicketPrice:     299,
			TotalSeats:      60,
			ShowDate:        "2025-09-27",
			ShowTime:        "20:00",
			DurationMinutes: 90,
			ContactEmail:    "hello@basementtheatre.example",
			ContactPhone:    "+91 98111 44556",
			Status:          model.ShowApproved,
			CreatedAt:       created.AddDate(0, 0, 3),
			UpdatedAt:       created.AddDate(0, 0, 3),
		},
		{
			// Pending submissions stay invisible until approved.
			Id:          "show-pottery-workshop",
			Title:       "Wheel Throwing for Beginners",
			Genre:       "WORKSHOPS & MORE",
			Venue:       "Clay Collective",
			TicketPrice: 850,
			TotalSeats:  12,
			ShowDate:    "2025-10-04",
			ShowTime:    "11:00",
			Status:      model.ShowPending,
			CreatedAt:   created.AddDate(0, 0, 5),
			UpdatedAt:   created.AddDate(0, 0, 5),
		},
	}
}

func samplePremieres() []model.Premiere {
	return []model.Premiere{
		{Title: "Filmlovers!", Language: "French", Poster: "https://images.unsplash.com/photo-1489599063528-a0ba927cea8b?w=400&h=600&fit=crop", Tag: "PREMIERE"},
		{Title: "Juliette in Spring", Language: "French", Poster: "https://images.unsplash.com/photo-1518611012118-696072aa579a?w=400&h=600&fit=crop", Tag: "PREMIERE"},
		{Title: "Rita", Language: "Spanish", Poster: "https://images.unsplash.com/photo-1594736797933-d0401ba2fe65?w=400&h=600&fit=crop", Tag: "PREMIERE"},
	}
}

func sampleCategories() []model.LiveCategory {
	return []model.LiveCategory{
		{Title: "COMEDY SHOWS", Count: "15+ Events"},
		{Title: "KIDS", Count: "5 Events"},
		{Title: "MUSIC SHOWS", Count: "9 Events"},
		{Title: "ART & CRAFTS", Count: "3 Events"},
		{Title: "WORKSHOPS & MORE", Count: "6 Events"},
	}
}
