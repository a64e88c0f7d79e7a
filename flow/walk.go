package flow

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// WalkFunc is called for each file a dataset may contain, in report order.
// path is the full path of the file. e describes its content; for pattern
// entries it is called once per matching file with e.Name set to the match.
// err is ErrMissingFile (wrapped) if the file does not exist, or the error
// from stat otherwise.
// Return nil to continue walking, or an error to stop.
type WalkFunc func(path string, e Entry, err error) error

// Walk visits the files of the dataset in dir without decoding them.
//
// Example:
//
//	flow.Walk(dir, func(path string, e flow.Entry, err error) error {
//	    if errors.Is(err, flow.ErrMissingFile) {
//	        return nil
//	    }
//	    fmt.Println(e.Label, path)
//	    return nil
//	})
func Walk(dir string, fn WalkFunc) error {
	dir = normalizeDir(dir)
	vessels, err := listVessels(dir)
	if err != nil {
		return fmt.Errorf("listing vessels: %w", err)
	}
	if err := walkEntries(dir, DatasetEntries(), fn); err != nil {
		return err
	}
	for _, v := range vessels {
		if err := walkEntries(join(dir, v), VesselEntries(), fn); err != nil {
			return err
		}
	}
	return nil
}

func walkEntries(dir string, entries []Entry, fn WalkFunc) error {
	for _, e := range entries {
		if !e.Pattern {
			p := join(dir, e.Name)
			if err := fn(p, e, statFile(p)); err != nil {
				return err
			}
			continue
		}
		names, err := matchFiles(dir, e.Name)
		if err != nil {
			return err
		}
		for _, name := range names {
			m := e
			m.Name, m.Pattern = name, false
			p := join(dir, name)
			if err := fn(p, m, statFile(p)); err != nil {
				return err
			}
		}
	}
	return nil
}

func statFile(path string) error {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", path, ErrMissingFile)
	}
	return err
}
