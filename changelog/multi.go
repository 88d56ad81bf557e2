// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package changelog

import (
	"errors"

	"github.com/danielhkuo/gradebook/roster"
)

// Multi sends each record to every sink, even when an earlier one fails.
type Multi []roster.ChangeSink

func (m Multi) Record(rec roster.ChangeRecord) error {
	var errs []error
	for _, sink := range m {
		if err := sink.Record(rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
