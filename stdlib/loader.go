package stdlib

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sysml-tools/semcore/astx"
	"github.com/sysml-tools/semcore/location"
	"github.com/sysml-tools/semcore/workspace"
)

// ParseFunc parses the standard-library file named by path into a syntax
// tree. path is whatever identifier the caller's file discovery produced
// (a filesystem path, an archive member name, ...); this package never
// interprets it beyond using it as the stdlib source's logical identity.
type ParseFunc func(path string) (astx.SyntaxFile, error)

// sourceIDPrefix gives every standard-library file a synthetic SourceID
// under the "stdlib://" scheme, per location.SourceID's own doc comment
// ("stdlib://sysml.library/Base") and spec.md §6's "sysml.library/..." as
// the stable logical root matched against editor-opened documents.
const sourceIDPrefix = "stdlib://"

// Loader ingests a fixed list of standard-library paths into a workspace,
// either immediately (Eager) or on first demand (Lazy), per spec.md §4.8.
// A Loader is safe for concurrent EnsureLoaded calls; only the first one
// does any work.
type Loader struct {
	workspace *workspace.Workspace
	paths     []string
	parse     ParseFunc
	manifest  Manifest
	logger    *slog.Logger

	mu sync.Mutex
}

// New creates a Loader over ws using manifest's Strict/Mode settings.
// paths is the already-discovered set of standard-library files; parse is
// the external grammar collaborator that turns one into a syntax tree.
// A nil logger defaults to slog.Default().
func New(ws *workspace.Workspace, paths []string, parse ParseFunc, manifest Manifest, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{workspace: ws, paths: paths, parse: parse, manifest: manifest, logger: logger}
}

// Mode reports the manifest's configured load mode.
func (l *Loader) Mode() Mode { return l.manifest.Mode }

// EnsureLoaded loads the standard library into the workspace if it has
// not been loaded yet; idempotent, so callers in both Eager mode (call
// once at construction) and Lazy mode (call on first demand) can use the
// same entry point. Parse failures on individual files are logged and
// skipped unless the manifest is Strict, in which case the first failure
// aborts the load and is returned; either way mark_stdlib_loaded is set
// once the walk completes, per spec.md §4.8.
func (l *Loader) EnsureLoaded(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.workspace.HasStdlib() {
		return nil
	}
	return l.load(ctx)
}

type parsedFile struct {
	sourceID location.SourceID
	syntax   astx.SyntaxFile
}

// load parses every configured path in parallel (spec.md §5's
// data-parallel fan-out at the edges), then serially inserts each
// successful result into the workspace and populates it. Population
// itself stays serial, matching spec.md §5's "shared mutation ... is
// cheaper to keep serial than to coordinate."
func (l *Loader) load(ctx context.Context) error {
	defer l.workspace.MarkStdlibLoaded()

	results := make([]*parsedFile, len(l.paths))
	group, gctx := errgroup.WithContext(ctx)
	for i, path := range l.paths {
		i, path := i, path
		group.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			syntax, err := l.parse(path)
			if err != nil {
				l.logger.Warn("stdlib: parse failed", "path", path, "error", err)
				if l.manifest.Strict {
					return fmt.Errorf("stdlib: parse %q: %w", path, err)
				}
				return nil
			}
			results[i] = &parsedFile{
				sourceID: location.NewSyntheticSourceID(sourceIDPrefix + path),
				syntax:   syntax,
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for i, res := range results {
		if res == nil {
			continue
		}
		if err := l.workspace.AddFile(res.sourceID, res.syntax); err != nil {
			l.logger.Warn("stdlib: add file failed", "path", l.paths[i], "error", err)
		}
	}

	// populate_all orders by dependency topology (importees before
	// importers), which also covers standard-library files that import
	// one another; this is the coordinator's serial insertion step
	// spec.md §5 describes, reusing the workspace's own ordering rather
	// than re-deriving it here.
	if err := l.workspace.PopulateAll(); err != nil {
		return fmt.Errorf("stdlib: populate: %w", err)
	}
	return nil
}
