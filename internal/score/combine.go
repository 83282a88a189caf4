package score

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vk/satb/internal/config"
	"github.com/vk/satb/internal/ctxlog"
	"github.com/vk/satb/internal/musicxml"
)

// FourPart re-assembles a closed-score arrangement as an open score with
// one part per mapped voice, in mapping order. The first voice is extracted
// first and serves as the lyric source; the remaining extractions run
// concurrently, bounded by workers.
func FourPart(ctx context.Context, s *musicxml.Score, mappings config.Mappings, workers int) (*musicxml.Score, error) {
	if len(mappings) == 0 {
		return nil, fmt.Errorf("no voice mappings")
	}
	if workers < 1 {
		workers = 1
	}

	first, err := ExtractPart(ctx, s, mappings[0], nil)
	if err != nil {
		return nil, err
	}

	extractions := make([]*musicxml.Score, len(mappings))
	extractions[0] = first

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 1; i < len(mappings); i++ {
		g.Go(func() error {
			ex, err := ExtractPart(gctx, s, mappings[i], first)
			if err != nil {
				return err
			}
			extractions[i] = ex
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &musicxml.Score{
		Version:        s.Version,
		Work:           s.Work,
		MovementNumber: s.MovementNumber,
		// The movement title is typically the source filename; a combined
		// score gets a fresh identity, so it is cleared.
		MovementTitle:  "",
		Identification: s.Identification,
		Defaults:       s.Defaults,
		Credits:        s.Credits,
	}

	for i, ex := range extractions {
		id := fmt.Sprintf("P%d", i+1)
		part := ex.Parts[0]
		part.ID = id
		sp := ex.PartList.ScoreParts[0]
		sp.ID = id
		out.PartList.ScoreParts = append(out.PartList.ScoreParts, sp)
		out.Parts = append(out.Parts, part)
	}

	ctxlog.FromContext(ctx).Debug("Combined score assembled.", "parts", len(out.Parts))
	return out, nil
}
