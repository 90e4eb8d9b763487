// Package storage persists per-guild bot settings: the classic command
// prefix, command aliases and reaction-role mappings. Data lives in a JSON
// datastore keyed by guild id; the core never serializes its own data
// beyond the record types here.
package storage

import (
	"context"
	"fmt"

	"github.com/keshon/datastore"
)

// Storage wraps the persistent datastore.
type Storage struct {
	ds *datastore.DataStore
}

// ReactionRole maps one reaction emoji to a role.
type ReactionRole struct {
	Emoji string `json:"emoji"`
	Role  string `json:"role"`
}

// Record is the full per-guild settings document.
type Record struct {
	Prefix        string                    `json:"prefix,omitempty"`
	Aliases       map[string]string         `json:"aliases,omitempty"`
	ReactionRoles map[string][]ReactionRole `json:"reaction_roles,omitempty"`
}

// New opens or creates the datastore at the given path. The store's
// background workers run until ctx is cancelled and Close waits for them,
// so cancel ctx before calling Close.
func New(ctx context.Context, filePath string) (*Storage, error) {
	ds, err := datastore.New(ctx, filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

// Close flushes and closes the underlying datastore.
func (s *Storage) Close() error {
	return s.ds.Close()
}

// ReactionRolesKey builds the map key for a reaction-role mapping bound to
// one message.
func ReactionRolesKey(channelID, messageID string) string {
	return channelID + "/" + messageID
}

func (s *Storage) guildRecord(guildID string) (*Record, error) {
	var record Record
	found, err := s.ds.Get(guildID, &record)
	if err != nil {
		return nil, fmt.Errorf("read guild record: %w", err)
	}
	if !found {
		return &Record{}, nil
	}
	return &record, nil
}

func (s *Storage) putGuildRecord(guildID string, record *Record) error {
	if err := s.ds.Set(guildID, record); err != nil {
		return fmt.Errorf("write guild record: %w", err)
	}
	return nil
}

// GuildPrefix returns the guild-scoped classic prefix, if one is set.
func (s *Storage) GuildPrefix(guildID string) (string, bool) {
	record, err := s.guildRecord(guildID)
	if err != nil || record.Prefix == "" {
		return "", false
	}
	return record.Prefix, true
}

// SetGuildPrefix sets or clears the guild-scoped classic prefix.
func (s *Storage) SetGuildPrefix(guildID, prefix string) error {
	record, err := s.guildRecord(guildID)
	if err != nil {
		return err
	}
	record.Prefix = prefix
	return s.putGuildRecord(guildID, record)
}
