// Package muse is the Composition Root for the Muse assistant.
//
// It connects the core question-answering logic (Domain Layer) with the
// infrastructure adapters (storage, notes, model capability) using the
// Hexagonal Architecture pattern.
//
// Philosophy:
//
// Muse is the AI companion of a personal notes application. Given a
// snapshot of the user's notes it produces a daily greeting, topic
// suggestions, conversational search answers, and a multi-turn follow-up
// conversation that extracts structured location data from free-text
// model output. Everything the model says is cached per note-collection
// fingerprint and refreshed daily; the cache is an optimization, never a
// source of truth.
//
// Features:
//
//   - **Content fingerprinting**: cache keys derived from the sorted note
//     IDs, stable under reordering of the snapshot.
//   - **Day-scoped caching**: entries are fresh only on the calendar day
//     they were computed, with a bounded most-recent-first search history.
//   - **Tolerant parsing**: line-list and ANSWER/LOCATIONS sectioned
//     responses degrade to empty values instead of failing.
//   - **Conversation cards**: an append-only question/answer sequence
//     where each answer seeds the next round of smart suggestions.
//   - **Pluggable adapters**: storage (memory, SQLite), note source
//     (Markdown vault), and model capability (Gemini) behind core ports.
//
// Usage:
//
//	// Assemble the assistant with functional options
//	assistant, err := muse.New(
//		muse.WithCachePath(cachePath),
//		muse.WithLogger(logger),
//	)
//
//	// Answer a question about a snapshot
//	result, err := assistant.Search(ctx, notes, "what did I buy")
package muse
