// Package entries provides the per-user entry document store.
//
// # Data Model
//
// Each user owns one JSON document, <dataDir>/<username>_entries.json,
// holding an ordered array of models.Entry. Every mutation loads the whole
// document, changes it in memory and rewrites it in full.
//
// # Concurrency
//
// None. One interactive user per data directory is assumed; two writers
// racing on the same document will lose updates.
//
// Typical Usage
//
//	repo := entries.NewJSONRepository(dataDir)
//	_ = repo.Append(ctx, "alice", *entry)
//	list, _ := repo.Load(ctx, "alice")
//	_, _ = repo.Replace(ctx, "alice", id, models.Content{Title: "new"})
//	_ = repo.Delete(ctx, "alice", id)
package entries
