package club

import (
	"errors"
	"fmt"
	"strings"
)

var ErrConflict = errors.New("club conflicts with an existing club")

// Club is keyed externally by its fbref id; the internal id never leaves the store
// as a merge key.
type Club struct {
	ID      int64
	Name    string
	FbrefID string
	Stadium *string
}

func (c Club) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("club name is required")
	}
	if len(c.Name) > 300 {
		return fmt.Errorf("club name must be at most 300 characters")
	}
	if strings.TrimSpace(c.FbrefID) == "" {
		return fmt.Errorf("club fbref id is required")
	}
	if len(c.FbrefID) > 50 {
		return fmt.Errorf("club fbref id must be at most 50 characters")
	}
	if c.Stadium != nil && len(*c.Stadium) > 200 {
		return fmt.Errorf("club stadium must be at most 200 characters")
	}

	return nil
}

type Filter struct {
	Name    string
	FbrefID string
	Stadium string
	Limit   int
	Offset  int
}
