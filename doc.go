// Package docstore is an in-process document repository with upsert,
// lookup by id and multi-criteria search over documents with a nested author.
//
// Saving a document without an ID assigns the next generated identifier.
// Saving a document whose ID is already stored either does nothing (the
// document is unchanged) or overwrites every field but the ID.
//
//	m, _ := docstore.New(docstore.WithLogger(zap.NewExample()))
//	saved, _ := m.Save(ctx, docstore.Document{
//	    Title:   "Go memory model",
//	    Author:  docstore.Author{ID: "rsc", Name: "Russ"},
//	    Created: time.Now(),
//	})
//	hits := m.Search(ctx, docstore.SearchRequest{TitlePrefixes: []string{"Go"}})
//
// A search combines its criteria with AND; values within one criterion
// combine with OR. Unset criteria do not constrain results.
//
// A Manager is not safe for concurrent use.
package docstore
