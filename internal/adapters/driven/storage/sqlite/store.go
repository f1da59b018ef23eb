package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/binary"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/drishti-labs/drishti-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/drishti-labs/drishti-cli/internal/core/domain"
	"github.com/drishti-labs/drishti-cli/internal/core/ports/driven"
	"github.com/drishti-labs/drishti-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.VerseStore = (*Store)(nil)

// CollectionName is the fixed logical name of the verse collection.
const CollectionName = "bhagavad_gita"

// Store is a SQLite-backed verse store. Vectors are stored as little
// endian float32 blobs; ranking is computed at query time.
type Store struct {
	db       *sql.DB
	embedder driven.EmbeddingService
	path     string
}

// NewStore creates a new SQLite verse store at the specified data
// directory. If dataDir is empty, defaults to ~/.drishti/data.
func NewStore(dataDir string, embedder driven.EmbeddingService) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".drishti", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "verses.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:       db,
		embedder: embedder,
		path:     dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Initialize prepares storage. The schema is created by migrations at
// construction time, so repeated calls only verify the connection.
func (s *Store) Initialize(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// BuildIndex embeds and inserts the given inputs.
func (s *Store) BuildIndex(ctx context.Context, inputs []domain.EmbeddingInput, forceRecreate bool) (domain.BuildReport, error) {
	existing, err := s.count(ctx)
	if err != nil {
		return domain.BuildReport{}, err
	}

	if existing > 0 && !forceRecreate {
		return domain.BuildReport{Skipped: true, Total: existing}, nil
	}

	// Guard before the destructive clear: a build cannot proceed without
	// an embedder, and existing data must survive the refusal.
	if s.embedder == nil {
		return domain.BuildReport{Total: existing}, domain.ErrEmbeddingUnavailable
	}

	if forceRecreate {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM verses"); err != nil {
			return domain.BuildReport{}, fmt.Errorf("clearing collection: %w", err)
		}
		existing = 0
	}

	deduped, dropped := dedupeByID(inputs)
	logger.Debug("Building index: %d inputs, %d duplicates dropped", len(deduped), dropped)

	embedded := 0
	for start := 0; start < len(deduped); start += driven.BuildBatchSize {
		end := start + driven.BuildBatchSize
		if end > len(deduped) {
			end = len(deduped)
		}

		if err := s.insertBatch(ctx, deduped[start:end]); err != nil {
			return domain.BuildReport{
				Embedded:          embedded,
				DuplicatesDropped: dropped,
				Total:             existing + embedded,
			}, err
		}
		embedded = end
		logger.Debug("Embedded %d/%d verses", embedded, len(deduped))
	}

	return domain.BuildReport{
		Embedded:          embedded,
		DuplicatesDropped: dropped,
		Total:             embedded,
	}, nil
}

// insertBatch embeds one batch and inserts it in a single transaction.
// The first embedding failure aborts the batch: a partially embedded
// corpus is indistinguishable from a complete one by size alone.
func (s *Store) insertBatch(ctx context.Context, batch []domain.EmbeddingInput) error {
	vectors := make([][]float32, len(batch))
	for i, input := range batch {
		vec, err := s.embedder.EmbedDocument(ctx, input.Text)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrEmbeddingFailure, input.ID, err)
		}
		vectors[i] = vec
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO verses (id, chapter, verse, document, embedding)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			chapter = excluded.chapter,
			verse = excluded.verse,
			document = excluded.document,
			embedding = excluded.embedding
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i, input := range batch {
		if _, err := stmt.ExecContext(ctx, input.ID, input.Metadata.Chapter,
			input.Metadata.Verse, input.Text, float32SliceToBytes(vectors[i])); err != nil {
			return fmt.Errorf("inserting verse %s: %w", input.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Search ranks stored verses by cosine similarity to the query.
// Known filter keys are pushed into the WHERE clause; ranking happens in
// process since plain SQLite has no vector index.
func (s *Store) Search(ctx context.Context, query string, topK int, filter domain.SearchFilter) ([]domain.VerseMatch, error) {
	if topK <= 0 {
		return nil, nil
	}
	if s.embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}

	queryVec, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		logger.Warn("Query embedding failed: %v", err)
		return nil, nil
	}

	where, args := filterClause(filter)
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, chapter, verse, document, embedding FROM verses"+where+" ORDER BY rowid", args...)
	if err != nil {
		return nil, fmt.Errorf("querying verses: %w", err)
	}
	defer rows.Close()

	var matches []domain.VerseMatch //nolint:prealloc // size unknown from query
	for rows.Next() {
		var (
			id, document string
			chapter, num int
			blob         []byte
		)
		if err := rows.Scan(&id, &chapter, &num, &document, &blob); err != nil {
			return nil, fmt.Errorf("scanning verse: %w", err)
		}

		meta := domain.VerseMeta{Chapter: chapter, Verse: num, VerseID: id}
		if filter != nil && !filter.Matches(meta) {
			continue
		}

		matches = append(matches, domain.VerseMatch{
			ID:       id,
			Text:     document,
			Metadata: meta,
			Distance: 1 - cosineSimilarity(queryVec, bytesToFloat32Slice(blob)),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating verses: %w", err)
	}

	// Ascending distance; rowid order makes the sort's stability a
	// tie-break on insertion order.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	if topK < len(matches) {
		matches = matches[:topK]
	}
	return matches, nil
}

// GetByID returns the stored verse with the given composite ID, or nil
// when absent.
func (s *Store) GetByID(ctx context.Context, id string) (*domain.VerseMatch, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, chapter, verse, document FROM verses WHERE id = ?", id)

	var (
		match        domain.VerseMatch
		chapter, num int
	)
	if err := row.Scan(&match.ID, &chapter, &num, &match.Text); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning verse: %w", err)
	}

	match.Metadata = domain.VerseMeta{Chapter: chapter, Verse: num, VerseID: match.ID}
	return &match, nil
}

// Stats returns a read-only projection of the store's current state.
func (s *Store) Stats(ctx context.Context) (domain.CollectionStats, error) {
	total, err := s.count(ctx)
	if err != nil {
		return domain.CollectionStats{}, err
	}
	return domain.CollectionStats{
		TotalVerses:    total,
		CollectionName: CollectionName,
		StoragePath:    s.path,
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// count returns the number of stored verses.
func (s *Store) count(ctx context.Context) (int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM verses").Scan(&total); err != nil {
		return 0, fmt.Errorf("counting verses: %w", err)
	}
	return total, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// filterClause builds a WHERE clause for the recognised filter keys.
// Unknown keys are left for SearchFilter.Matches, which rejects them.
func filterClause(filter domain.SearchFilter) (string, []any) {
	if len(filter) == 0 {
		return "", nil
	}

	var clauses []string
	var args []any
	if v, ok := filter["chapter"]; ok {
		clauses = append(clauses, "chapter = ?")
		args = append(args, v)
	}
	if v, ok := filter["verse"]; ok {
		clauses = append(clauses, "verse = ?")
		args = append(args, v)
	}
	if v, ok := filter["verse_id"]; ok {
		clauses = append(clauses, "id = ?")
		args = append(args, v)
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// dedupeByID drops inputs whose ID already appeared, keeping the first
// occurrence.
func dedupeByID(inputs []domain.EmbeddingInput) ([]domain.EmbeddingInput, int) {
	seen := make(map[string]struct{}, len(inputs))
	deduped := make([]domain.EmbeddingInput, 0, len(inputs))
	for _, input := range inputs {
		if _, ok := seen[input.ID]; ok {
			continue
		}
		seen[input.ID] = struct{}{}
		deduped = append(deduped, input)
	}
	return deduped, len(inputs) - len(deduped)
}

// cosineSimilarity computes dot(q, v) / (|q| * |v|), returning 0 for
// mismatched or zero-length vectors.
func cosineSimilarity(q, v []float32) float64 {
	if len(q) == 0 || len(q) != len(v) {
		return 0
	}

	var dot, qNorm, vNorm float64
	for i := range q {
		dot += float64(q[i]) * float64(v[i])
		qNorm += float64(q[i]) * float64(q[i])
		vNorm += float64(v[i]) * float64(v[i])
	}
	if qNorm == 0 || vNorm == 0 {
		return 0
	}
	return dot / (math.Sqrt(qNorm) * math.Sqrt(vNorm))
}

// float32SliceToBytes converts a []float32 to a byte slice for storage.
func float32SliceToBytes(floats []float32) []byte {
	if len(floats) == 0 {
		return nil
	}
	buf := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// bytesToFloat32Slice converts a byte slice back to []float32.
func bytesToFloat32Slice(data []byte) []float32 {
	if len(data) == 0 {
		return nil
	}
	floats := make([]float32, len(data)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return floats
}
