package certexpiry

import (
	"context"
	"log"
	"time"

	"github.com/function61/gokit/logex"
	"github.com/hashicorp/go-multierror"
)

type Scanner struct {
	Extractor Extractor
	Walker    *Walker
	Now       func() time.Time
	// log per-file failures and unreadable directories, continue, and return
	// all of them at the end. default is to stop at the first failure.
	KeepGoing bool
	logl      *logex.Leveled
}

func NewScanner(extractor Extractor, walker *Walker, logger *log.Logger) *Scanner {
	if walker == nil {
		walker = NewWalker(DefaultSuffix, nil)
	}

	return &Scanner{
		Extractor: extractor,
		Walker:    walker,
		Now:       time.Now,
		logl:      logex.Levels(logger),
	}
}

// reports go to sink in traversal order, as soon as each file is inspected
func (s *Scanner) Scan(
	ctx context.Context,
	root string,
	thresholdDays int,
	sink func(ExpiryReport),
) (ScanResult, error) {
	result := ScanResult{}
	var failures *multierror.Error

	walker := *s.Walker
	if s.KeepGoing {
		walker.OnUnreadableDir = func(err *TraversalError) error {
			s.logl.Error.Println(err.Error())
			failures = multierror.Append(failures, err)
			return nil
		}
	}

	err := walker.Walk(ctx, root, func(path string) error {
		result.Inspected++

		notAfter, err := s.Extractor.NotAfter(ctx, path)
		if err != nil {
			if !s.KeepGoing || ctx.Err() != nil {
				return err
			}

			s.logl.Error.Println(err.Error())
			failures = multierror.Append(failures, err)
			return nil
		}

		if report, expiring := Check(path, notAfter, s.Now(), thresholdDays); expiring {
			result.Flagged++
			sink(report)
		}

		return nil
	})
	if err != nil {
		return result, err
	}

	return result, failures.ErrorOrNil()
}
