package storage

import "sort"

// Alias returns the definition of a guild command alias.
func (s *Storage) Alias(guildID, name string) (string, bool) {
	record, err := s.guildRecord(guildID)
	if err != nil {
		return "", false
	}
	def, ok := record.Aliases[name]
	return def, ok
}

// Aliases lists a guild's alias names, sorted.
func (s *Storage) Aliases(guildID string) ([]string, error) {
	record, err := s.guildRecord(guildID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(record.Aliases))
	for name := range record.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// SetAlias stores a guild command alias definition.
func (s *Storage) SetAlias(guildID, name, definition string) error {
	record, err := s.guildRecord(guildID)
	if err != nil {
		return err
	}
	if record.Aliases == nil {
		record.Aliases = map[string]string{}
	}
	record.Aliases[name] = definition
	return s.putGuildRecord(guildID, record)
}

// RemoveAlias deletes a guild command alias. It reports whether the alias
// existed.
func (s *Storage) RemoveAlias(guildID, name string) (bool, error) {
	record, err := s.guildRecord(guildID)
	if err != nil {
		return false, err
	}
	if _, ok := record.Aliases[name]; !ok {
		return false, nil
	}
	delete(record.Aliases, name)
	if err := s.putGuildRecord(guildID, record); err != nil {
		return false, err
	}
	return true, nil
}
