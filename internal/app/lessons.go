package app

import (
	"context"
	"fmt"

	"github.com/jladdjr/typey-type/internal/domain/lesson"
	"github.com/jladdjr/typey-type/internal/domain/lookup"
	"github.com/jladdjr/typey-type/internal/domain/material"
	"github.com/jladdjr/typey-type/internal/domain/progress"
	"github.com/jladdjr/typey-type/internal/domain/wordlist"
	"github.com/jladdjr/typey-type/internal/ports"
)

// Lessons is the custom lesson setup service: it compiles word lists and
// met-word history into lessons against the current dictionary snapshot,
// and keeps a profile's progress and settings.
//
// Each call works on one snapshot. If the dictionary is not usable yet a
// background load is triggered and the call returns what resolves now.
type Lessons struct {
	dicts   *Dictionaries
	store   ports.Storage
	profile string
	opts    []lesson.Option
}

// NewLessons creates the service for one profile.
func NewLessons(dicts *Dictionaries, store ports.Storage, profile string, opts ...lesson.Option) *Lessons {
	return &Lessons{dicts: dicts, store: store, profile: profile, opts: opts}
}

// Profile returns the profile this service reads and writes.
func (l *Lessons) Profile() string {
	return l.profile
}

func (l *Lessons) snapshot(ctx context.Context) *lookup.Dictionary {
	l.dicts.EnsureLoaded(ctx)
	return l.dicts.Current()
}

// Compile turns a raw word list into lesson material.
func (l *Lessons) Compile(ctx context.Context, raw string) ports.Lesson {
	dict := l.snapshot(ctx)
	return newLesson(lesson.Compile(raw, dict, l.opts...), dict)
}

// Revise builds a lesson from every word the learner has met.
func (l *Lessons) Revise(ctx context.Context, categories ...ports.Category) (ports.Lesson, error) {
	words, err := l.MetWords(categories...)
	if err != nil {
		return ports.Lesson{}, err
	}
	dict := l.snapshot(ctx)
	out := newLesson(lesson.BuildFromHistory(words, dict, l.opts...), dict)
	out.Words = wordlist.Join(lesson.WordsFromHistory(words))
	return out, nil
}

func newLesson(entries []ports.DictionaryEntry, dict *lookup.Dictionary) ports.Lesson {
	if entries == nil {
		entries = []ports.DictionaryEntry{}
	}
	return ports.Lesson{
		Entries:           entries,
		TSV:               lesson.Render(entries),
		DictionaryReady:   dict.Ready(),
		DictionaryVersion: dict.Version(),
		DictionarySize:    dict.Size(),
	}
}

// Validate checks custom lesson material typed with its own strokes.
func (l *Lessons) Validate(raw string) lesson.Validation {
	return lesson.Validate(raw)
}

// Match compares typed text against an expected phrase using the
// profile's settings and returns the padded view.
func (l *Lessons) Match(expected, typed string, s material.Settings) (material.Display, error) {
	user, err := l.Settings()
	if err != nil {
		return material.Display{}, err
	}
	return material.Present(material.Match(expected, typed, s, user), user), nil
}

// MetWords returns the profile's history, optionally filtered by category.
func (l *Lessons) MetWords(categories ...ports.Category) ([]ports.MetWord, error) {
	words, err := l.store.MetWords(l.profile)
	if err != nil {
		return nil, fmt.Errorf("load met words: %w", err)
	}
	return progress.Filter(words, categories...), nil
}

// RecordTyped counts one completed typing of each word.
func (l *Lessons) RecordTyped(words ...string) error {
	if err := l.store.RecordTyped(l.profile, words...); err != nil {
		return fmt.Errorf("record typed words: %w", err)
	}
	return nil
}

// ResetProgress forgets every met word, keeping settings.
func (l *Lessons) ResetProgress() error {
	return l.store.SaveMetWords(l.profile, nil)
}

// Settings returns the profile's settings, or defaults for a fresh profile.
func (l *Lessons) Settings() (ports.UserSettings, error) {
	s, err := l.store.LoadSettings(l.profile)
	if err != nil {
		return ports.UserSettings{}, fmt.Errorf("load settings: %w", err)
	}
	if s == nil {
		return ports.DefaultUserSettings(), nil
	}
	return *s, nil
}

// SaveSettings persists the profile's settings.
func (l *Lessons) SaveSettings(s ports.UserSettings) error {
	if !s.SpacePlacement.Valid() {
		return fmt.Errorf("%w: space placement %q", ports.ErrInvalidSettings, s.SpacePlacement)
	}
	return l.store.SaveSettings(l.profile, &s)
}

// Lookup returns the candidate strokes for a word in the current snapshot,
// or close spellings when the word is unknown.
func (l *Lessons) Lookup(ctx context.Context, word string) ([]lookup.Candidate, []lookup.Suggestion) {
	dict := l.snapshot(ctx)
	if cands := dict.Lookup(word); len(cands) > 0 {
		return cands, nil
	}
	return nil, dict.Suggest(word, 5)
}
