package pipeline

import (
	"bytes"
	"fmt"
	"os"

	"github.com/coopcast/flocktree/pkg/errors"
	"github.com/coopcast/flocktree/pkg/gedcom"
	"github.com/coopcast/flocktree/pkg/pedigree"
)

// ReadSource reads the raw bytes of a GEDCOM file.
func ReadSource(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "source %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Decode parses GEDCOM bytes into records.
func Decode(data []byte) (pedigree.Records, error) {
	f, err := gedcom.Decode(bytes.NewReader(data))
	if err != nil {
		return pedigree.Records{}, errors.Wrap(errors.ErrCodeParseFailed, err, "decode GEDCOM")
	}
	return gedcom.Transform(f), nil
}

// LoadFile reads and decodes a GEDCOM file without caching.
func LoadFile(path string) (pedigree.Records, error) {
	data, err := ReadSource(path)
	if err != nil {
		return pedigree.Records{}, err
	}
	recs, err := Decode(data)
	if err != nil {
		return pedigree.Records{}, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
