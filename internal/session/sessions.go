package session

import (
	"context"
	"log"
	"time"

	"drivethru/internal/domain"
)

// Append-only session log channels.
const (
	LogConversation = "conversation"
	LogCommands     = "commands"
	LogPerformance  = "performance"
)

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func sessionLogKey(sessionID, channel string) string {
	return "session:" + sessionID + ":" + channel
}

func validLogChannel(channel string) bool {
	return channel == LogConversation || channel == LogCommands || channel == LogPerformance
}

// CreateSession writes the session metadata record.
func (s *Store) CreateSession(ctx context.Context, sessionID string, restaurantID int) bool {
	now := time.Now().UTC()
	sess := domain.Session{
		ID:           sessionID,
		RestaurantID: restaurantID,
		State:        "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.kv.SetJSON(ctx, sessionKey(sessionID), &sess, s.sessionTTL); err != nil {
		log.Printf("[session] create session %s failed: %v", sessionID, err)
		return false
	}
	return true
}

// GetSession returns session metadata, or nil when missing or unreachable.
func (s *Store) GetSession(ctx context.Context, sessionID string) *domain.Session {
	var sess domain.Session
	ok, err := s.kv.GetJSON(ctx, sessionKey(sessionID), &sess)
	if err != nil {
		log.Printf("[session] get session %s failed: %v", sessionID, err)
		return nil
	}
	if !ok {
		return nil
	}
	return &sess
}

// UpdateSessionState updates the state and linked order on the metadata
// record, refreshing its TTL.
func (s *Store) UpdateSessionState(ctx context.Context, sessionID, state, currentOrderID string) bool {
	sess := s.GetSession(ctx, sessionID)
	if sess == nil {
		return false
	}
	if state != "" {
		sess.State = state
	}
	if currentOrderID != "" {
		sess.CurrentOrderID = currentOrderID
	}
	sess.UpdatedAt = time.Now().UTC()

	if err := s.kv.SetJSON(ctx, sessionKey(sessionID), sess, s.sessionTTL); err != nil {
		log.Printf("[session] update session %s failed: %v", sessionID, err)
		return false
	}
	return true
}

// DeleteSession removes the metadata record and its log channels.
func (s *Store) DeleteSession(ctx context.Context, sessionID string) bool {
	ok, err := s.kv.Delete(ctx, sessionKey(sessionID))
	if err != nil {
		log.Printf("[session] delete session %s failed: %v", sessionID, err)
		return false
	}
	for _, channel := range []string{LogConversation, LogCommands, LogPerformance} {
		if _, err := s.kv.Delete(ctx, sessionLogKey(sessionID, channel)); err != nil {
			log.Printf("[session] delete %s log for %s failed: %v", channel, sessionID, err)
		}
	}
	return ok
}

// AppendSessionLog appends one timestamped entry to a session log channel.
func (s *Store) AppendSessionLog(ctx context.Context, sessionID, channel string, entry domain.SessionLogEntry) bool {
	if !validLogChannel(channel) {
		log.Printf("[session] unknown log channel %q", channel)
		return false
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	key := sessionLogKey(sessionID, channel)
	entries := []domain.SessionLogEntry{}
	if _, err := s.kv.GetJSON(ctx, key, &entries); err != nil {
		log.Printf("[session] read %s log for %s failed: %v", channel, sessionID, err)
		return false
	}
	entries = append(entries, entry)

	if err := s.kv.SetJSON(ctx, key, entries, s.sessionTTL); err != nil {
		log.Printf("[session] append %s log for %s failed: %v", channel, sessionID, err)
		return false
	}
	return true
}

// SessionLog returns a session log channel, empty when missing.
func (s *Store) SessionLog(ctx context.Context, sessionID, channel string) []domain.SessionLogEntry {
	if !validLogChannel(channel) {
		return []domain.SessionLogEntry{}
	}
	entries := []domain.SessionLogEntry{}
	if _, err := s.kv.GetJSON(ctx, sessionLogKey(sessionID, channel), &entries); err != nil {
		log.Printf("[session] read %s log for %s failed: %v", channel, sessionID, err)
		return []domain.SessionLogEntry{}
	}
	return entries
}
