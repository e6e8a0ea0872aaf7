package document

// Outcome describes what an upsert did to the store.
type Outcome string

// Upsert outcomes.
const (
	Inserted  Outcome = "inserted"
	Updated   Outcome = "updated"
	Unchanged Outcome = "unchanged"
)
