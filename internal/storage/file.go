package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"hbnb/internal/domain"

	"github.com/pkg/errors"
)

// FileStorage holds every entity in memory and writes a JSON snapshot to
// path on Save. The snapshot maps "<Class>.<id>" to the entity
// representation; users also carry their password hash and places their
// amenity ids.
type FileStorage struct {
	path string

	// saveMu orders snapshot writes so the last rename carries the newest state.
	saveMu sync.Mutex

	mu      sync.RWMutex
	objects map[domain.Kind]map[string]domain.Entity
	links   map[string][]string // place id -> amenity ids, insertion order
}

type fileExtras struct {
	Password   string   `json:"password,omitempty"`
	AmenityIDs []string `json:"amenity_ids,omitempty"`
}

func NewFileStorage(path string) (*FileStorage, error) {
	s := &FileStorage{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func emptyObjects() map[domain.Kind]map[string]domain.Entity {
	objects := make(map[domain.Kind]map[string]domain.Entity, len(domain.Kinds))
	for _, k := range domain.Kinds {
		objects[k] = map[string]domain.Entity{}
	}
	return objects
}

// Reload replaces the in-memory state with the snapshot on disk. A missing
// file yields an empty store.
func (s *FileStorage) Reload() error {
	objects := emptyObjects()
	links := map[string][]string{}

	raw, err := os.ReadFile(s.path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return errors.Wrapf(err, "read %s", s.path)
	case len(strings.TrimSpace(string(raw))) > 0:
		var records map[string]json.RawMessage
		if err := json.Unmarshal(raw, &records); err != nil {
			return errors.Wrapf(err, "decode %s", s.path)
		}
		for key, rec := range records {
			e, extras, err := decodeRecord(rec)
			if err != nil {
				return errors.Wrapf(err, "decode record %s", key)
			}
			objects[e.Kind()][e.Meta().ID] = e
			if len(extras.AmenityIDs) > 0 {
				links[e.Meta().ID] = extras.AmenityIDs
			}
		}
	}

	s.mu.Lock()
	s.objects = objects
	s.links = links
	s.mu.Unlock()
	return nil
}

func decodeRecord(rec json.RawMessage) (domain.Entity, fileExtras, error) {
	var head struct {
		Class string `json:"__class__"`
		fileExtras
	}
	if err := json.Unmarshal(rec, &head); err != nil {
		return nil, fileExtras{}, err
	}
	kind, err := domain.ParseKind(head.Class)
	if err != nil {
		return nil, fileExtras{}, err
	}
	e, err := domain.New(kind)
	if err != nil {
		return nil, fileExtras{}, err
	}
	if err := json.Unmarshal(rec, e); err != nil {
		return nil, fileExtras{}, err
	}
	if u, ok := e.(*domain.User); ok {
		u.PasswordHash = head.Password
	}
	return e, head.fileExtras, nil
}

func (s *FileStorage) Get(_ context.Context, kind domain.Kind, id string) (domain.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byID, ok := s.objects[kind]
	if !ok {
		return nil, errors.Errorf("unknown entity kind %q", kind)
	}
	e, ok := byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e.Clone(), nil
}

func (s *FileStorage) All(_ context.Context, kind domain.Kind) ([]domain.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byID, ok := s.objects[kind]
	if !ok {
		return nil, errors.Errorf("unknown entity kind %q", kind)
	}
	out := make([]domain.Entity, 0, len(byID))
	for _, e := range byID {
		out = append(out, e.Clone())
	}
	sortEntities(out)
	return out, nil
}

func sortEntities(items []domain.Entity) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i].Meta(), items[j].Meta()
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

func (s *FileStorage) New(_ context.Context, e domain.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID, ok := s.objects[e.Kind()]
	if !ok {
		return errors.Errorf("unknown entity kind %q", e.Kind())
	}
	byID[e.Meta().ID] = e.Clone()
	return nil
}

func (s *FileStorage) Delete(_ context.Context, e domain.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[e.Kind()][e.Meta().ID]; !ok {
		return ErrNotFound
	}
	s.cascade(e.Kind(), e.Meta().ID)
	return nil
}

// cascade removes kind/id and everything that references it. Caller holds mu.
func (s *FileStorage) cascade(kind domain.Kind, id string) {
	switch kind {
	case domain.KindState:
		for cid, c := range s.objects[domain.KindCity] {
			if c.(*domain.City).StateID == id {
				s.cascade(domain.KindCity, cid)
			}
		}
	case domain.KindCity:
		for pid, p := range s.objects[domain.KindPlace] {
			if p.(*domain.Place).CityID == id {
				s.cascade(domain.KindPlace, pid)
			}
		}
	case domain.KindUser:
		for pid, p := range s.objects[domain.KindPlace] {
			if p.(*domain.Place).UserID == id {
				s.cascade(domain.KindPlace, pid)
			}
		}
		for rid, r := range s.objects[domain.KindReview] {
			if r.(*domain.Review).UserID == id {
				delete(s.objects[domain.KindReview], rid)
			}
		}
	case domain.KindPlace:
		for rid, r := range s.objects[domain.KindReview] {
			if r.(*domain.Review).PlaceID == id {
				delete(s.objects[domain.KindReview], rid)
			}
		}
		delete(s.links, id)
	case domain.KindAmenity:
		for pid, ids := range s.links {
			s.links[pid] = without(ids, id)
			if len(s.links[pid]) == 0 {
				delete(s.links, pid)
			}
		}
	}
	delete(s.objects[kind], id)
}

func without(ids []string, id string) []string {
	out := ids[:0:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// Save writes the snapshot to a temporary file and renames it over path.
func (s *FileStorage) Save(_ context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	records := make(map[string]any)
	for _, byID := range s.objects {
		for id, e := range byID {
			rec, err := domain.ToDict(e)
			if err != nil {
				s.mu.RUnlock()
				return errors.Wrapf(err, "encode %s.%s", e.Kind(), id)
			}
			switch v := e.(type) {
			case *domain.User:
				rec["password"] = v.PasswordHash
			case *domain.Place:
				if ids := s.links[id]; len(ids) > 0 {
					rec["amenity_ids"] = append([]string(nil), ids...)
				}
			}
			records[string(e.Kind())+"."+id] = rec
		}
	}
	s.mu.RUnlock()

	raw, err := json.Marshal(records)
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp snapshot")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write snapshot")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close snapshot")
	}
	return errors.Wrap(os.Rename(tmp.Name(), s.path), "replace snapshot")
}

func (s *FileStorage) Count(_ context.Context, kind domain.Kind) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byID, ok := s.objects[kind]
	if !ok {
		return 0, errors.Errorf("unknown entity kind %q", kind)
	}
	return int64(len(byID)), nil
}

func (s *FileStorage) Cities(_ context.Context, stateID string) ([]*domain.City, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return collect(s.objects[domain.KindCity], func(c *domain.City) bool {
		return c.StateID == stateID
	}), nil
}

func (s *FileStorage) Places(_ context.Context, cityID string) ([]*domain.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return collect(s.objects[domain.KindPlace], func(p *domain.Place) bool {
		return p.CityID == cityID
	}), nil
}

func (s *FileStorage) Reviews(_ context.Context, placeID string) ([]*domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return collect(s.objects[domain.KindReview], func(r *domain.Review) bool {
		return r.PlaceID == placeID
	}), nil
}

// collect clones the members of byID matching keep, in store order.
func collect[T domain.Entity](byID map[string]domain.Entity, keep func(T) bool) []T {
	matched := make([]domain.Entity, 0)
	for _, e := range byID {
		if t, ok := e.(T); ok && keep(t) {
			matched = append(matched, e.Clone())
		}
	}
	sortEntities(matched)
	out := make([]T, 0, len(matched))
	for _, e := range matched {
		out = append(out, e.(T))
	}
	return out
}

func (s *FileStorage) Amenities(_ context.Context, placeID string) ([]*domain.Amenity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.links[placeID]
	out := make([]*domain.Amenity, 0, len(ids))
	for _, id := range ids {
		if a, ok := s.objects[domain.KindAmenity][id]; ok {
			out = append(out, a.Clone().(*domain.Amenity))
		}
	}
	return out, nil
}

func (s *FileStorage) LinkAmenity(_ context.Context, placeID, amenityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[domain.KindPlace][placeID]; !ok {
		return ErrNotFound
	}
	if _, ok := s.objects[domain.KindAmenity][amenityID]; !ok {
		return ErrNotFound
	}
	for _, id := range s.links[placeID] {
		if id == amenityID {
			return ErrAlreadyLinked
		}
	}
	s.links[placeID] = append(s.links[placeID], amenityID)
	return nil
}

func (s *FileStorage) UnlinkAmenity(_ context.Context, placeID, amenityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.links[placeID]
	rest := without(ids, amenityID)
	if len(rest) == len(ids) {
		return ErrNotFound
	}
	if len(rest) == 0 {
		delete(s.links, placeID)
	} else {
		s.links[placeID] = rest
	}
	return nil
}

// Close is a no-op; unsaved changes are dropped.
func (s *FileStorage) Close() error {
	return nil
}
