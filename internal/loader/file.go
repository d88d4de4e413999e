package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

func loadFile(ctx context.Context, path string, maxBytes int64) ([]byte, error) {
	if path == "" {
		return nil, errors.New("loader: file path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	return readLimited(file, maxBytes, path)
}

func readLimited(r io.Reader, maxBytes int64, location string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("loader: %s exceeds %d bytes", location, maxBytes)
	}
	return data, nil
}
