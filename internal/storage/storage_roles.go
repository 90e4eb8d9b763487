package storage

// ReactionRoles returns the reaction-role mapping bound to a message, if
// any.
func (s *Storage) ReactionRoles(guildID, channelID, messageID string) ([]ReactionRole, bool) {
	record, err := s.guildRecord(guildID)
	if err != nil {
		return nil, false
	}
	rr, ok := record.ReactionRoles[ReactionRolesKey(channelID, messageID)]
	return rr, ok
}

// SetReactionRoles binds a reaction-role mapping to a message.
func (s *Storage) SetReactionRoles(guildID, channelID, messageID string, mappings []ReactionRole) error {
	record, err := s.guildRecord(guildID)
	if err != nil {
		return err
	}
	if record.ReactionRoles == nil {
		record.ReactionRoles = map[string][]ReactionRole{}
	}
	record.ReactionRoles[ReactionRolesKey(channelID, messageID)] = mappings
	return s.putGuildRecord(guildID, record)
}

// RemoveReactionRoles drops the mapping bound to a message, for instance
// when the message is deleted.
func (s *Storage) RemoveReactionRoles(guildID, channelID, messageID string) error {
	record, err := s.guildRecord(guildID)
	if err != nil {
		return err
	}
	if record.ReactionRoles == nil {
		return nil
	}
	delete(record.ReactionRoles, ReactionRolesKey(channelID, messageID))
	return s.putGuildRecord(guildID, record)
}
