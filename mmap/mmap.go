// Package mmap provides a cursor whose backing buffer is a shared read-write
// memory mapping of a file on disk, so that everything written through the
// cursor is visible to other processes reading the file
package mmap

import (
	"os"
	"path"

	mm "github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bytespan/cursor"
)

// Cursor is a cursor.Cursor that is also mapped into memory
type Cursor struct {
	*cursor.Cursor
	mapping mm.MMap
	loc     string // location of the memory mapped file
	size    int    // size in bytes
}

// New will create and return a new instance of a memory mapped Cursor,
// replacing any existing file at loc with a zeroed file of the passed size
func New(loc string, size int) (*Cursor, error) {
	if _, err := os.Stat(loc); err == nil {
		err = os.Remove(loc)
		if err != nil {
			return nil, errors.Wrapf(err, "could not remove existing file at %v", loc)
		}
	}

	// ensure destination directory exists
	dir := path.Dir(loc)
	err := os.MkdirAll(dir, 0700)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create directory %v", dir)
	}

	f, err := os.OpenFile(loc, os.O_CREATE|os.O_RDWR|os.O_EXCL, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create file at %v", loc)
	}
	defer f.Close()

	if err = f.Truncate(int64(size)); err != nil {
		return nil, errors.Wrapf(err, "could not initialize %v bytes", size)
	}

	mapping, err := mm.MapRegion(f, size, mm.RDWR, 0, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "could not map %v", loc)
	}

	if logging {
		logger.Info("mapped file",
			zap.String("location", loc),
			zap.Int("size", size),
		)
	}

	return &Cursor{
		cursor.New(mapping),
		mapping,
		loc,
		size,
	}, nil
}

// Loc returns the location of the memory mapped file
func (c *Cursor) Loc() string { return c.loc }

// Flush syncs the mapped region with the file on disk
func (c *Cursor) Flush() error {
	return errors.Wrapf(c.mapping.Flush(), "could not flush %v", c.loc)
}

// Unmap will manually delete the memory mapping of the mapped file,
// optionally removing the file itself
func (c *Cursor) Unmap(removefile bool) error {
	if err := c.mapping.Unmap(); err != nil {
		return errors.Wrapf(err, "could not unmap %v", c.loc)
	}

	if removefile {
		if err := os.Remove(c.loc); err != nil {
			return errors.Wrapf(err, "could not remove %v", c.loc)
		}
	}

	if logging {
		logger.Info("unmapped file",
			zap.String("location", c.loc),
			zap.Bool("removed", removefile),
		)
	}

	return nil
}
