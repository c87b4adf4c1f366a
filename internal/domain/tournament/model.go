package tournament

import (
	"fmt"
	"strings"
	"time"
)

type Tournament struct {
	ID        string
	Name      string
	Year      int
	CreatedAt time.Time
}

func (t Tournament) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tournament id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("tournament name is required")
	}
	if t.Year < 1900 || t.Year > 9999 {
		return fmt.Errorf("tournament year %d is out of range", t.Year)
	}

	return nil
}
