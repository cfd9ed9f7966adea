// Package ai is the boundary to the external vision-language service that
// produces a one-time diagnosis for an activity. The service itself is an
// opaque collaborator; only the request/response mapping lives here.
package ai

import (
	"context"

	"kaju/entities"
)

type Client interface {
	// Diagnose inspects the activity photos and description and returns
	// disease/pest/ripeness findings plus free-text advice. kbCtx carries
	// optional growing-note snippets for extra context.
	Diagnose(ctx context.Context, photos []string, description, kbCtx string) (*entities.Diagnosis, error)
}
