package models

import "github.com/google/uuid"

// ensureID fills in a primary key when the database does not. The Postgres
// schema defaults to gen_random_uuid(), but hook-generated IDs keep the models
// portable to drivers without that function (the test databases use sqlite).
func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
