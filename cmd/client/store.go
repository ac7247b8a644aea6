package main

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// SavedSearch is enough to replay a search later.
type SavedSearch struct {
	ID    string `yaml:"id"`
	Query string `yaml:"query"`

	Timestamp time.Time `yaml:"timestamp"`

	Model  string `yaml:"model"`
	Filter string `yaml:"filter"`
}

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()

	if err != nil {
		return "searches.yaml"
	}

	return filepath.Join(home, ".smartsearch", "searches.yaml")
}

// List returns the saved searches, newest first.
func (s *Store) List() ([]SavedSearch, error) {
	data, err := os.ReadFile(s.path)

	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	var searches []SavedSearch

	if err := yaml.Unmarshal(data, &searches); err != nil {
		return nil, err
	}

	return searches, nil
}

func (s *Store) Save(query, model, filter string) (*SavedSearch, error) {
	searches, err := s.List()

	if err != nil {
		return nil, err
	}

	search := SavedSearch{
		ID:    uuid.NewString(),
		Query: query,

		Timestamp: time.Now().UTC(),

		Model:  model,
		Filter: filter,
	}

	searches = append([]SavedSearch{search}, searches...)

	if err := s.write(searches); err != nil {
		return nil, err
	}

	return &search, nil
}

// Get finds a saved search by id or unique id prefix.
func (s *Store) Get(id string) (*SavedSearch, error) {
	searches, err := s.List()

	if err != nil {
		return nil, err
	}

	var matches []SavedSearch

	for _, search := range searches {
		if search.ID == id {
			return &search, nil
		}

		if id != "" && strings.HasPrefix(search.ID, id) {
			matches = append(matches, search)
		}
	}

	if len(matches) > 1 {
		return nil, errors.New("ambiguous saved search id: " + id)
	}

	if len(matches) == 0 {
		return nil, errors.New("saved search not found: " + id)
	}

	return &matches[0], nil
}

func (s *Store) Delete(id string) error {
	search, err := s.Get(id)

	if err != nil {
		return err
	}

	searches, err := s.List()

	if err != nil {
		return err
	}

	searches = slices.DeleteFunc(searches, func(item SavedSearch) bool {
		return item.ID == search.ID
	})

	return s.write(searches)
}

func (s *Store) write(searches []SavedSearch) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(searches)

	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0o600)
}
