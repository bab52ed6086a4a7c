package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Local saves episode files to a directory on the local file system.
type Local struct {
	rootDir string
}

func NewLocal(rootDir string) (*Local, error) {
	if rootDir == "" {
		return nil, errors.New("download directory can't be empty")
	}

	return &Local{rootDir: rootDir}, nil
}

func (l *Local) Create(ctx context.Context, fileName string, reader io.Reader) (int64, error) {
	logger := log.WithField("file", fileName)

	logger.Debugf("creating directory: %s", l.rootDir)
	if err := os.MkdirAll(l.rootDir, 0755); err != nil {
		return 0, errors.Wrapf(err, "failed to create download directory: %s", l.rootDir)
	}

	filePath := filepath.Join(l.rootDir, fileName)

	logger.Debugf("copying to: %s", filePath)
	written, err := l.copyFile(reader, filePath)
	if err != nil {
		return 0, errors.Wrap(err, "failed to copy file")
	}

	logger.Debugf("copied %d bytes", written)
	return written, nil
}

func (l *Local) Delete(ctx context.Context, fileName string) error {
	path := filepath.Join(l.rootDir, fileName)
	return os.Remove(path)
}

func (l *Local) Size(ctx context.Context, fileName string) (int64, error) {
	path := filepath.Join(l.rootDir, fileName)

	stat, err := os.Stat(path)
	if err == nil {
		return stat.Size(), nil
	}

	return 0, err
}

// copyFile truncates the destination if it already exists. A failed copy
// leaves the partially written file on disk.
func (l *Local) copyFile(source io.Reader, destinationPath string) (int64, error) {
	dest, err := os.Create(destinationPath)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create destination file")
	}

	defer dest.Close()

	written, err := io.Copy(dest, source)
	if err != nil {
		return 0, errors.Wrap(err, "failed to copy data")
	}

	return written, nil
}
