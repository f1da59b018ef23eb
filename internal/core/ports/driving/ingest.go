package driving

import (
	"context"

	"github.com/drishti-labs/drishti-cli/internal/core/domain"
)

// IngestService builds the verse store from the corpus source.
type IngestService interface {
	// Ingest loads the corpus, converts it to embedding inputs and builds
	// the verse store index. When force is true the store is cleared and
	// rebuilt; otherwise an already-populated store is left untouched.
	Ingest(ctx context.Context, force bool) (domain.BuildReport, error)
}
