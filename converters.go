package docstore

import (
	dombatch "github.com/kailas-cloud/docstore/internal/domain/batch"
	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
	"github.com/kailas-cloud/docstore/internal/domain/search/request"
)

func toDomainDocument(d Document) domdoc.Document {
	return domdoc.Reconstruct(
		d.ID, d.Title, d.Content,
		domdoc.NewAuthor(d.Author.ID, d.Author.Name),
		d.Created,
	)
}

func fromDomainDocument(d domdoc.Document) Document {
	return Document{
		ID:      d.ID(),
		Title:   d.Title(),
		Content: d.Content(),
		Author:  Author{ID: d.Author().ID(), Name: d.Author().Name()},
		Created: d.Created(),
	}
}

func fromDomainDocuments(docs []domdoc.Document) []Document {
	out := make([]Document, len(docs))
	for i, d := range docs {
		out[i] = fromDomainDocument(d)
	}
	return out
}

func toDomainRequest(r SearchRequest) request.Request {
	return request.New(r.TitlePrefixes, r.ContainsContents, r.AuthorIDs, r.CreatedFrom, r.CreatedTo)
}

func fromDomainBatchResult(r dombatch.Result) BatchResult {
	return BatchResult{
		ID:     r.ID(),
		Status: BatchStatus(r.Status()),
		Err:    r.Err(),
	}
}
