package playbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Store persists one JSON file per category under Dir.
type Store struct {
	Dir string
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

func (s *Store) file(c Category) string {
	return filepath.Join(s.Dir, string(c)+".json")
}

// LoadOrCreate reads a category list from disk. A missing file is
// seeded with the defaults; an unreadable or malformed file is reset
// to the defaults with reset=true so the caller can tell the user.
func (s *Store) LoadOrCreate(c Category) (items []string, reset bool, err error) {
	data, err := os.ReadFile(s.file(c))
	if errors.Is(err, fs.ErrNotExist) {
		items = defaultList(c)
		if err := s.save(c, items); err != nil {
			return nil, false, err
		}
		return items, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", s.file(c), err)
	}

	if err := json.Unmarshal(data, &items); err != nil {
		items = defaultList(c)
		if err := s.save(c, items); err != nil {
			return nil, false, err
		}
		return items, true, nil
	}
	sort.Strings(items)
	return items, false, nil
}

// Add appends item to the category. An exact duplicate is rejected.
func (s *Store) Add(c Category, item string) error {
	if item == "" {
		return ErrEmpty
	}
	items, _, err := s.LoadOrCreate(c)
	if err != nil {
		return err
	}
	if contains(items, item) {
		return ErrDuplicate
	}
	items = append(items, item)
	sort.Strings(items)
	return s.save(c, items)
}

// Edit replaces old with new in the category. The new value must not
// collide with any other existing entry.
func (s *Store) Edit(c Category, old, new string) error {
	if new == "" {
		return ErrEmpty
	}
	items, _, err := s.LoadOrCreate(c)
	if err != nil {
		return err
	}
	idx := -1
	for i, it := range items {
		if it == old {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	for i, it := range items {
		if i != idx && it == new {
			return ErrDuplicate
		}
	}
	items[idx] = new
	sort.Strings(items)
	return s.save(c, items)
}

// Delete removes item from the category.
func (s *Store) Delete(c Category, item string) error {
	items, _, err := s.LoadOrCreate(c)
	if err != nil {
		return err
	}
	out := items[:0]
	found := false
	for _, it := range items {
		if it == item && !found {
			found = true
			continue
		}
		out = append(out, it)
	}
	if !found {
		return ErrNotFound
	}
	return s.save(c, out)
}

func (s *Store) save(c Category, items []string) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("create playbook dir: %w", err)
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.file(c), data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.file(c), err)
	}
	return nil
}
