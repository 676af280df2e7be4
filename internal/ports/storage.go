// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these types, never on concrete implementations.
package ports

import (
	"fmt"
	"strings"
)

// Storage persists learner progress to durable storage.
// The backing store (bbolt) is profile-scoped: each profile gets its own
// namespace. Concurrent reads are safe; writes are serialized by the adapter.
//
// Crash safety: SaveMetWords and SaveSettings must be transactional.
// A crash mid-write must not corrupt previously committed data.
type Storage interface {
	MetWordsRepository

	// SaveMetWords replaces the full met-word history for a profile.
	SaveMetWords(profile string, words []MetWord) error

	// RecordTyped counts one completed typing of each word, assigning
	// first-met order to words not seen before.
	RecordTyped(profile string, typed ...string) error

	// LoadSettings retrieves the user settings for a profile.
	// Returns nil, nil if none were saved (fresh profile).
	LoadSettings(profile string) (*UserSettings, error)

	// SaveSettings persists the user settings for a profile.
	SaveSettings(profile string, settings *UserSettings) error

	// DeleteProfile removes all data (met words + settings) for a profile.
	// Idempotent: deleting a nonexistent profile is not an error.
	DeleteProfile(profile string) error
}

// MetWordsRepository is the read accessor over a learner's history.
// Words come back ordered by Count descending, ties broken by Seq
// (first-met order). An unknown profile yields an empty slice.
type MetWordsRepository interface {
	MetWords(profile string) ([]MetWord, error)
}

// Category is the learning state of a met word.
type Category string

const (
	CategoryNew      Category = "new"
	CategorySeen     Category = "seen"
	CategoryRetained Category = "retained"
)

// ParseCategory accepts a category name as used in flags and query strings.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryNew, CategorySeen, CategoryRetained:
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q (want new, seen or retained)", s)
}

// RetainedThreshold is the number of times a word must be typed before it
// counts as retained rather than merely seen.
const RetainedThreshold = 30

// MetWord is a word the learner has been shown and typed.
//
// Word keeps the spacing it was typed with (" the" when spaces are output
// before words); consumers trim it when projecting to a word list.
type MetWord struct {
	Word  string `json:"word"`
	Count uint32 `json:"count"`
	Seq   uint64 `json:"seq"` // first-met order, assigned by the recorder
}

// Category derives the learning state from the typed count.
func (w MetWord) Category() Category {
	switch {
	case w.Count == 0:
		return CategoryNew
	case w.Count < RetainedThreshold:
		return CategorySeen
	default:
		return CategoryRetained
	}
}
