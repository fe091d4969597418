package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"hbnb/internal/config"
	"hbnb/internal/domain"
	"hbnb/internal/logger"
	"hbnb/internal/storage"
)

type seedPlace struct {
	city      string
	name      string
	rooms     int
	baths     int
	guests    int
	price     int
	lat, lng  float64
	amenities []string
}

var (
	seedStates = map[string][]string{
		"California": {"San Francisco", "Los Angeles", "San Diego"},
		"Nevada":     {"Reno", "Las Vegas"},
		"Oregon":     {"Portland"},
	}

	seedAmenities = []string{"Wifi", "Pool", "Kitchen", "Parking", "Air conditioning", "Hot tub"}

	seedPlaces = []seedPlace{
		{"San Francisco", "Painted Lady loft", 2, 1, 4, 180, 37.7764, -122.4328, []string{"Wifi", "Kitchen"}},
		{"San Francisco", "Mission studio", 1, 1, 2, 120, 37.7599, -122.4148, []string{"Wifi"}},
		{"Los Angeles", "Venice bungalow", 3, 2, 6, 260, 33.9850, -118.4695, []string{"Wifi", "Pool", "Parking"}},
		{"San Diego", "La Jolla cottage", 2, 1, 4, 210, 32.8328, -117.2713, []string{"Kitchen", "Parking"}},
		{"Reno", "Truckee river cabin", 2, 1, 5, 140, 39.5296, -119.8138, []string{"Hot tub", "Parking"}},
		{"Las Vegas", "Strip view condo", 1, 1, 3, 199, 36.1147, -115.1728, []string{"Wifi", "Pool", "Air conditioning"}},
		{"Portland", "Pearl district flat", 2, 2, 4, 150, 45.5272, -122.6819, []string{"Wifi", "Kitchen"}},
	}
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg)
	ctx := context.Background()

	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open storage")
	}
	defer store.Close()

	if err := seed(ctx, store, log); err != nil {
		log.Error().Err(err).Msg("seed failed")
		return
	}
	log.Info().Msg("seed complete")
}

func seed(ctx context.Context, store storage.Storage, log zerolog.Logger) error {
	// ================== STATES & CITIES ==================
	log.Info().Msg("creating states and cities")
	cities := map[string]*domain.City{}
	for stateName, cityNames := range seedStates {
		st := domain.NewState()
		st.Name = stateName
		if err := store.New(ctx, st); err != nil {
			return fmt.Errorf("state %s: %w", stateName, err)
		}
		for _, name := range cityNames {
			c := domain.NewCity()
			c.StateID = st.ID
			c.Name = name
			if err := store.New(ctx, c); err != nil {
				return fmt.Errorf("city %s: %w", name, err)
			}
			cities[name] = c
		}
	}

	// ================== AMENITIES ==================
	log.Info().Msg("creating amenities")
	amenities := map[string]*domain.Amenity{}
	for _, name := range seedAmenities {
		a := domain.NewAmenity()
		a.Name = name
		if err := store.New(ctx, a); err != nil {
			return fmt.Errorf("amenity %s: %w", name, err)
		}
		amenities[name] = a
	}

	// ================== USERS ==================
	host := domain.NewUser()
	host.Email = "host@hbnb.io"
	host.FirstName = "Betty"
	host.LastName = "Holberton"
	if err := host.SetPassword("host123"); err != nil {
		return err
	}
	guest := domain.NewUser()
	guest.Email = "guest@hbnb.io"
	guest.FirstName = "Alan"
	guest.LastName = "Turing"
	if err := guest.SetPassword("guest123"); err != nil {
		return err
	}
	for _, u := range []*domain.User{host, guest} {
		if err := store.New(ctx, u); err != nil {
			return fmt.Errorf("user %s: %w", u.Email, err)
		}
	}
	log.Info().Str("email", host.Email).Str("password", "host123").Msg("host created")

	// ================== PLACES ==================
	log.Info().Msg("creating places")
	for _, sp := range seedPlaces {
		p := domain.NewPlace()
		p.CityID = cities[sp.city].ID
		p.UserID = host.ID
		p.Name = sp.name
		p.Description = fmt.Sprintf("%s in %s", sp.name, sp.city)
		p.NumberRooms = sp.rooms
		p.NumberBathrooms = sp.baths
		p.MaxGuest = sp.guests
		p.PriceByNight = sp.price
		p.Latitude = sp.lat
		p.Longitude = sp.lng
		if err := store.New(ctx, p); err != nil {
			return fmt.Errorf("place %s: %w", sp.name, err)
		}

		for _, name := range sp.amenities {
			if err := store.LinkAmenity(ctx, p.ID, amenities[name].ID); err != nil {
				return fmt.Errorf("link %s to %s: %w", name, sp.name, err)
			}
		}

		rv := domain.NewReview()
		rv.PlaceID = p.ID
		rv.UserID = guest.ID
		rv.Text = fmt.Sprintf("Lovely stay at %s.", sp.name)
		if err := store.New(ctx, rv); err != nil {
			return fmt.Errorf("review of %s: %w", sp.name, err)
		}
	}

	return store.Save(ctx)
}
